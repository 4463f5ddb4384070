package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "travellounge/internal/config"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, email, password_hash, role, status, created_at`

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getWhere(ctx, "email=?", email)
}

func (r UserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getWhere(ctx, "id=?", id)
}

func (r UserRepo) getWhere(ctx context.Context, cond string, arg any) (models.User, error) {
	var out models.User
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+userColumns+` FROM users WHERE `+cond+` LIMIT 1`, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "user", Err: err}
		}
		return out, err
	}
	return out, nil
}

// Upsert creates the account or resets name/password/role of an existing email.
func (r UserRepo) Upsert(ctx context.Context, u models.User) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash, role, status)
		VALUES (?,?,?,?,?)
		ON DUPLICATE KEY UPDATE name=VALUES(name), password_hash=VALUES(password_hash),
			role=VALUES(role), status=VALUES(status)`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Status)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := db.GetContext(ctx, &id, `SELECT id FROM users WHERE email=? LIMIT 1`, u.Email); err != nil {
		return 0, err
	}
	return id, nil
}
