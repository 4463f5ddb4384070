package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "travellounge/internal/config"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type NewsletterRepo struct {
	DB *sql.DB
}

func (r NewsletterRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r NewsletterRepo) List(ctx context.Context, status string) ([]models.NewsletterSubscriber, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	out := []models.NewsletterSubscriber{}
	query := `SELECT id, email, status, source, created_at, updated_at FROM newsletter_subscribers`
	args := []any{}
	if status != "" {
		query += ` WHERE status=?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if err := db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe inserts the address or flips an existing row back to subscribed.
func (r NewsletterRepo) Subscribe(ctx context.Context, email, source string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO newsletter_subscribers (email, status, source) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE status=VALUES(status)`,
		email, domain.Subscribed, source)
	return err
}

// Unsubscribe reports NotFound for unknown addresses.
func (r NewsletterRepo) Unsubscribe(ctx context.Context, email string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	var id int64
	if err := db.GetContext(ctx, &id, `SELECT id FROM newsletter_subscribers WHERE email=? LIMIT 1`, email); err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "subscriber", Err: err}
		}
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE newsletter_subscribers SET status=? WHERE id=?`, domain.Unsubscribed, id)
	return err
}

func (r NewsletterRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM newsletter_subscribers WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "subscriber"}
	}
	return nil
}
