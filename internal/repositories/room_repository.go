package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "travellounge/internal/config"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const roomColumns = `id, service_id, name, description, base_price, max_guests, images, display_order`

// RoomRepo covers hotel_rooms and their room_daily_prices calendar.
type RoomRepo struct {
	DB *sql.DB
}

func (r RoomRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r RoomRepo) ListByService(ctx context.Context, serviceID int64) ([]models.HotelRoom, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	out := []models.HotelRoom{}
	query := `SELECT ` + roomColumns + ` FROM hotel_rooms`
	args := []any{}
	if serviceID > 0 {
		query += ` WHERE service_id=?`
		args = append(args, serviceID)
	}
	query += ` ORDER BY display_order ASC, id ASC`
	if err := db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r RoomRepo) GetByID(ctx context.Context, id int64) (models.HotelRoom, error) {
	var out models.HotelRoom
	if id <= 0 {
		return out, domain.ValidationError{Field: "room_id", Msg: "invalid id"}
	}
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+roomColumns+` FROM hotel_rooms WHERE id=? LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "room", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r RoomRepo) Create(ctx context.Context, m models.HotelRoom) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO hotel_rooms (service_id, name, description, base_price, max_guests, images, display_order)
		VALUES (?,?,?,?,?,?,?)`,
		m.ServiceID, m.Name, m.Description, m.BasePrice, m.MaxGuests, m.Images, m.DisplayOrder)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RoomRepo) Update(ctx context.Context, id int64, m models.HotelRoom) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		UPDATE hotel_rooms
		SET service_id=?, name=?, description=?, base_price=?, max_guests=?, images=?, display_order=?
		WHERE id=?`,
		m.ServiceID, m.Name, m.Description, m.BasePrice, m.MaxGuests, m.Images, m.DisplayOrder, id)
	return err
}

// Delete removes the room and its calendar rows.
func (r RoomRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM room_daily_prices WHERE room_id=?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM hotel_rooms WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "room"}
	}
	return tx.Commit()
}

// DailyPrices returns the stored rows of [from, to] keyed by YYYY-MM-DD.
func (r RoomRepo) DailyPrices(ctx context.Context, roomID int64, from, to time.Time) (map[string]domain.StoredDay, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	rows := []models.RoomDailyPrice{}
	if err := db.SelectContext(ctx, &rows, `
		SELECT room_id, date, price, is_blocked
		FROM room_daily_prices
		WHERE room_id=? AND date BETWEEN ? AND ?
		ORDER BY date ASC`,
		roomID, from.Format("2006-01-02"), to.Format("2006-01-02")); err != nil {
		return nil, err
	}
	out := make(map[string]domain.StoredDay, len(rows))
	for _, row := range rows {
		out[row.Date.Format("2006-01-02")] = domain.StoredDay{Price: row.Price, IsBlocked: row.IsBlocked}
	}
	return out, nil
}

// GetDay returns the stored row of one date; ok is false when none exists.
func (r RoomRepo) GetDay(ctx context.Context, roomID int64, date time.Time) (domain.StoredDay, bool, error) {
	days, err := r.DailyPrices(ctx, roomID, date, date)
	if err != nil {
		return domain.StoredDay{}, false, err
	}
	d, ok := days[date.Format("2006-01-02")]
	return d, ok, nil
}

// UpsertBlocked sets is_blocked for each date, leaving stored prices alone.
func (r RoomRepo) UpsertBlocked(ctx context.Context, roomID int64, dates []time.Time, blocked bool) error {
	if len(dates) == 0 {
		return nil
	}
	db, err := r.db()
	if err != nil {
		return err
	}
	values := make([]string, 0, len(dates))
	args := make([]any, 0, len(dates)*3)
	for _, d := range dates {
		values = append(values, "(?,?,?)")
		args = append(args, roomID, d.Format("2006-01-02"), blocked)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO room_daily_prices (room_id, date, is_blocked)
		VALUES `+strings.Join(values, ",")+`
		ON DUPLICATE KEY UPDATE is_blocked=VALUES(is_blocked)`, args...)
	return err
}

// UpsertPrices writes prices for the given days, leaving block flags alone.
func (r RoomRepo) UpsertPrices(ctx context.Context, roomID int64, days []domain.DayPrice) error {
	if len(days) == 0 {
		return nil
	}
	db, err := r.db()
	if err != nil {
		return err
	}
	values := make([]string, 0, len(days))
	args := make([]any, 0, len(days)*3)
	for _, d := range days {
		values = append(values, "(?,?,?)")
		args = append(args, roomID, d.Date.Format("2006-01-02"), d.Price)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO room_daily_prices (room_id, date, price)
		VALUES `+strings.Join(values, ",")+`
		ON DUPLICATE KEY UPDATE price=VALUES(price)`, args...)
	return err
}
