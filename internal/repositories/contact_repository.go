package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "travellounge/internal/config"
	"travellounge/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type ContactRepo struct {
	DB *sql.DB
}

func (r ContactRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r ContactRepo) Create(ctx context.Context, m models.ContactMessage) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, phone, subject, message)
		VALUES (?,?,?,?,?)`,
		m.Name, m.Email, m.Phone, m.Subject, m.Message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContactRepo) List(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	out := []models.ContactMessage{}
	if err := db.SelectContext(ctx, &out, `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT ?`, limit); err != nil {
		return nil, err
	}
	return out, nil
}
