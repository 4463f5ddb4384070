package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travellounge/internal/config"
	intdb "travellounge/internal/db"
	"travellounge/internal/domain"

	"github.com/jmoiron/sqlx"
)

// contentTable describes a simple admin-managed table: id + writable columns.
type contentTable struct {
	Name     string
	Resource string
	// Columns are writable, in the order Values returns them.
	Columns []string
	// ReadOnly columns are selected but never written (timestamps).
	ReadOnly []string
	OrderBy  string
	// HasOrder enables Reorder (display_order column).
	HasOrder bool
	// PublicWhere limits rows exposed to the public site; empty exposes all.
	PublicWhere string
}

func (t contentTable) selectList() string {
	cols := append([]string{"id"}, t.Columns...)
	cols = append(cols, t.ReadOnly...)
	return strings.Join(cols, ", ")
}

// ContentRepo is CRUD over one contentTable, scanning rows into T with sqlx.
type ContentRepo[T any] struct {
	DB     *sql.DB
	Table  contentTable
	Values func(T) []any
}

func (r ContentRepo[T]) db() (*sqlx.DB, error) {
	d := r.DB
	if d == nil {
		d = intconfig.DB
	}
	if d == nil {
		return nil, fmt.Errorf("db not available")
	}
	return sqlx.NewDb(d, "mysql"), nil
}

func (r ContentRepo[T]) Resource() string {
	if r.Table.Resource != "" {
		return r.Table.Resource
	}
	return r.Table.Name
}

func (r ContentRepo[T]) HasOrder() bool { return r.Table.HasOrder }

// List returns every row; publicOnly applies the table's PublicWhere.
func (r ContentRepo[T]) List(ctx context.Context, publicOnly bool) ([]T, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + r.Table.selectList() + ` FROM ` + r.Table.Name
	if publicOnly && r.Table.PublicWhere != "" {
		query += ` WHERE ` + r.Table.PublicWhere
	}
	if r.Table.OrderBy != "" {
		query += ` ORDER BY ` + r.Table.OrderBy
	}
	out := []T{}
	if err := db.SelectContext(ctx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}

func (r ContentRepo[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	if id <= 0 {
		return out, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db, err := r.db()
	if err != nil {
		return out, err
	}
	query := `SELECT ` + r.Table.selectList() + ` FROM ` + r.Table.Name + ` WHERE id=? LIMIT 1`
	if err := db.GetContext(ctx, &out, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: r.Resource(), Err: err}
		}
		return out, err
	}
	return out, nil
}

func (r ContentRepo[T]) Create(ctx context.Context, v T) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	args := r.Values(v)
	if len(args) != len(r.Table.Columns) {
		return 0, fmt.Errorf("%s: %d values for %d columns", r.Table.Name, len(args), len(r.Table.Columns))
	}
	query := `INSERT INTO ` + r.Table.Name + ` (` + strings.Join(r.Table.Columns, ", ") + `) VALUES (` + intdb.Placeholders(len(args)) + `)`
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every writable column. MySQL reports 0 affected rows for
// unchanged values, so existence is checked by the caller's follow-up Get.
func (r ContentRepo[T]) Update(ctx context.Context, id int64, v T) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db, err := r.db()
	if err != nil {
		return err
	}
	args := r.Values(v)
	if len(args) != len(r.Table.Columns) {
		return fmt.Errorf("%s: %d values for %d columns", r.Table.Name, len(args), len(r.Table.Columns))
	}
	sets := make([]string, len(r.Table.Columns))
	for i, c := range r.Table.Columns {
		sets[i] = c + "=?"
	}
	args = append(args, id)
	_, err = db.ExecContext(ctx, `UPDATE `+r.Table.Name+` SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r ContentRepo[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db, err := r.db()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM `+r.Table.Name+` WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: r.Resource()}
	}
	return nil
}

// Reorder writes display_order for every item in one transaction.
func (r ContentRepo[T]) Reorder(ctx context.Context, items []domain.OrderItem) error {
	if !r.Table.HasOrder {
		return domain.ValidationError{Field: "display_order", Msg: r.Resource() + " cannot be reordered"}
	}
	db, err := r.db()
	if err != nil {
		return err
	}
	return reorderTx(ctx, db.DB, r.Table.Name, items)
}

func reorderTx(ctx context.Context, db *sql.DB, table string, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `UPDATE `+table+` SET display_order=? WHERE id=?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.DisplayOrder, it.ID); err != nil {
			return fmt.Errorf("reorder %s id=%d: %w", table, it.ID, err)
		}
	}
	return tx.Commit()
}
