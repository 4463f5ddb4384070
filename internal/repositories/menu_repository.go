package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "travellounge/internal/config"
	intdb "travellounge/internal/db"
	"travellounge/internal/domain"
	"travellounge/internal/domain/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const menuColumns = `id, name, location, items, updated_at`

type MenuRepo struct {
	DB *sql.DB
}

func (r MenuRepo) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r MenuRepo) List(ctx context.Context) ([]models.Menu, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	out := []models.Menu{}
	if err := db.SelectContext(ctx, &out, `SELECT `+menuColumns+` FROM menus ORDER BY location ASC`); err != nil {
		return nil, err
	}
	return out, nil
}

func (r MenuRepo) GetByID(ctx context.Context, id int64) (models.Menu, error) {
	return r.getWhere(ctx, "id=?", id)
}

func (r MenuRepo) GetByLocation(ctx context.Context, location string) (models.Menu, error) {
	return r.getWhere(ctx, "location=?", location)
}

func (r MenuRepo) getWhere(ctx context.Context, cond string, arg any) (models.Menu, error) {
	var out models.Menu
	db, err := r.db()
	if err != nil {
		return out, err
	}
	if err := db.GetContext(ctx, &out, `SELECT `+menuColumns+` FROM menus WHERE `+cond+` LIMIT 1`, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "menu", Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r MenuRepo) Create(ctx context.Context, m models.Menu) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `INSERT INTO menus (name, location, items) VALUES (?,?,?)`, m.Name, m.Location, m.Items)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "menu", Msg: "location already has a menu", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r MenuRepo) Update(ctx context.Context, id int64, name, location string) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `UPDATE menus SET name=?, location=? WHERE id=?`, name, location, id); err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "menu", Msg: "location already has a menu", Err: err}
		}
		return err
	}
	return nil
}

// SaveItems replaces the whole tree. Last write wins.
func (r MenuRepo) SaveItems(ctx context.Context, id int64, items []domain.MenuItem) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE menus SET items=? WHERE id=?`, intdb.NewJSON(items), id)
	return err
}

func (r MenuRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM menus WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "menu"}
	}
	return nil
}

// isDuplicate reports MySQL error 1062 (duplicate key).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
