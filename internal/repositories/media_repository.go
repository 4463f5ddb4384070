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

const mediaColumns = `id, file_name, path, url, mime_type, size_bytes, folder, alt_text, created_at`

type MediaRepo struct {
	DB *sql.DB
}

func (r MediaRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r MediaRepo) List(ctx context.Context, folder string) ([]models.MediaAsset, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	out := []models.MediaAsset{}
	query := `SELECT ` + mediaColumns + ` FROM media_assets`
	args := []any{}
	if folder != "" {
		query += ` WHERE folder=?`
		args = append(args, folder)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if err := db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r MediaRepo) GetByID(ctx context.Context, id int64) (models.MediaAsset, error) {
	var out models.MediaAsset
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+mediaColumns+` FROM media_assets WHERE id=? LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "media", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r MediaRepo) Create(ctx context.Context, m models.MediaAsset) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO media_assets (file_name, path, url, mime_type, size_bytes, folder, alt_text)
		VALUES (?,?,?,?,?,?,?)`,
		m.FileName, m.Path, m.URL, m.MimeType, m.SizeBytes, m.Folder, m.AltText)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r MediaRepo) UpdateAlt(ctx context.Context, id int64, alt string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE media_assets SET alt_text=? WHERE id=?`, alt, id)
	return err
}

func (r MediaRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM media_assets WHERE id=?`, id)
	return err
}
