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

const serviceColumns = `id, name, category, description, pricing, images, location, inventory,
	itinerary, features, inclusions, exclusions, display_order, is_active, created_at, updated_at`

// ServiceRepo stores bookable products in the services table.
type ServiceRepo struct {
	DB *sql.DB
}

func (r ServiceRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r ServiceRepo) List(ctx context.Context, f models.ServiceFilter) ([]models.Service, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	where := []string{}
	args := []any{}
	if c := strings.TrimSpace(f.Category); c != "" {
		where = append(where, "category=?")
		args = append(args, c)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, "(name LIKE ? OR location LIKE ?)")
		like := "%" + s + "%"
		args = append(args, like, like)
	}
	if f.ActiveOnly {
		where = append(where, "is_active=1")
	}
	query := `SELECT ` + serviceColumns + ` FROM services`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY display_order ASC, id DESC`

	out := []models.Service{}
	if err := db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r ServiceRepo) GetByID(ctx context.Context, id int64) (models.Service, error) {
	var out models.Service
	if id <= 0 {
		return out, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+serviceColumns+` FROM services WHERE id=? LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "service", Err: err}
		}
		return out, err
	}
	return out, nil
}

func serviceArgs(s models.Service) []any {
	return []any{
		s.Name, s.Category, s.Description, s.Pricing, s.Images, s.Location, s.Inventory,
		s.Itinerary, s.Features, s.Inclusions, s.Exclusions, s.DisplayOrder, s.IsActive,
	}
}

func (r ServiceRepo) Create(ctx context.Context, s models.Service) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO services
			(name, category, description, pricing, images, location, inventory,
			 itinerary, features, inclusions, exclusions, display_order, is_active)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`, serviceArgs(s)...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ServiceRepo) Update(ctx context.Context, id int64, s models.Service) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	args := append(serviceArgs(s), id)
	_, err = db.ExecContext(ctx, `
		UPDATE services SET
			name=?, category=?, description=?, pricing=?, images=?, location=?, inventory=?,
			itinerary=?, features=?, inclusions=?, exclusions=?, display_order=?, is_active=?
		WHERE id=?`, args...)
	return err
}

func (r ServiceRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM services WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "service"}
	}
	return nil
}

func (r ServiceRepo) Reorder(ctx context.Context, items []domain.OrderItem) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	return reorderTx(ctx, db.DB, "services", items)
}
