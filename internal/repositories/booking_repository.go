package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travellounge/internal/config"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const bookingColumns = `id, service_id, customer_info, service_details, status, total_amount, currency, created_at, updated_at`

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

// List returns one page of bookings, newest first, plus the total count.
func (r BookingRepo) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, int, error) {
	db, err := r.db()
	if err != nil {
		return nil, 0, err
	}
	page := domain.NormalizePagination(f.Page, f.Size)

	where := []string{}
	args := []any{}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "status=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, "(JSON_UNQUOTE(JSON_EXTRACT(customer_info, '$.name')) LIKE ? OR JSON_UNQUOTE(JSON_EXTRACT(customer_info, '$.email')) LIKE ?)")
		like := "%" + s + "%"
		args = append(args, like, like)
	}
	cond := ""
	if len(where) > 0 {
		cond = ` WHERE ` + strings.Join(where, " AND ")
	}

	var total int
	if err := db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`+cond, args...); err != nil {
		return nil, 0, err
	}

	out := []models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings` + cond + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &out, query, append(args, page.PageSize, page.Offset())...); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r BookingRepo) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	var out models.Booking
	if id <= 0 {
		return out, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r BookingRepo) Create(ctx context.Context, b models.Booking) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO bookings (service_id, customer_info, service_details, status, total_amount, currency)
		VALUES (?,?,?,?,?,?)`,
		b.ServiceID, b.CustomerInfo, b.ServiceDetails, b.Status, b.TotalAmount, b.Currency,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatus does not report missing rows; callers load the booking first.
func (r BookingRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE bookings SET status=? WHERE id=?`, status, id)
	return err
}

func (r BookingRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
