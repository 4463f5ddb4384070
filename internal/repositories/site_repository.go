package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intconfig "travellounge/internal/config"
	intdb "travellounge/internal/db"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

// SiteRepo holds the key/value tables: site_settings and pages.
type SiteRepo struct {
	DB *sql.DB
}

func (r SiteRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r SiteRepo) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	out := []models.SiteSetting{}
	if err := db.SelectContext(ctx, &out, "SELECT `key`, value, updated_at FROM site_settings ORDER BY `key` ASC"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r SiteRepo) GetSetting(ctx context.Context, key string) (models.SiteSetting, error) {
	var out models.SiteSetting
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, "SELECT `key`, value, updated_at FROM site_settings WHERE `key`=? LIMIT 1", key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "setting", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r SiteRepo) UpsertSetting(ctx context.Context, key string, value json.RawMessage) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO site_settings (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value=VALUES(value)",
		key, intdb.NewJSON(value))
	return err
}

func (r SiteRepo) DeleteSetting(ctx context.Context, key string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM site_settings WHERE `key`=?", key)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "setting"}
	}
	return nil
}

func (r SiteRepo) ListPages(ctx context.Context) ([]models.Page, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	out := []models.Page{}
	if err := db.SelectContext(ctx, &out, `SELECT slug, content, updated_at FROM pages ORDER BY slug ASC`); err != nil {
		return nil, err
	}
	return out, nil
}

func (r SiteRepo) GetPage(ctx context.Context, slug string) (models.Page, error) {
	var out models.Page
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT slug, content, updated_at FROM pages WHERE slug=? LIMIT 1`, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "page", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r SiteRepo) UpsertPage(ctx context.Context, slug string, content json.RawMessage) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO pages (slug, content) VALUES (?, ?) ON DUPLICATE KEY UPDATE content=VALUES(content)`,
		slug, intdb.NewJSON(content))
	return err
}

func (r SiteRepo) DeletePage(ctx context.Context, slug string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM pages WHERE slug=?`, slug)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "page"}
	}
	return nil
}
