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

const reviewColumns = `id, service_id, author_name, author_email, rating, comment, status, created_at`

type ReviewRepo struct {
	DB *sql.DB
}

func (r ReviewRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

// List filters by service (0 = all) and status ("" = all).
func (r ReviewRepo) List(ctx context.Context, serviceID int64, status string) ([]models.Review, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	where := []string{}
	args := []any{}
	if serviceID > 0 {
		where = append(where, "service_id=?")
		args = append(args, serviceID)
	}
	if status != "" {
		where = append(where, "status=?")
		args = append(args, status)
	}
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	out := []models.Review{}
	if err := db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r ReviewRepo) GetByID(ctx context.Context, id int64) (models.Review, error) {
	var out models.Review
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+reviewColumns+` FROM reviews WHERE id=? LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "review", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r ReviewRepo) Create(ctx context.Context, v models.Review) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO reviews (service_id, author_name, author_email, rating, comment, status)
		VALUES (?,?,?,?,?,?)`,
		v.ServiceID, v.AuthorName, v.AuthorEmail, v.Rating, v.Comment, v.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ReviewRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE reviews SET status=? WHERE id=?`, status, id)
	return err
}

func (r ReviewRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM reviews WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "review"}
	}
	return nil
}
