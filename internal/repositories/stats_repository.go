package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "travellounge/internal/config"
)

// StatsRepo runs the small aggregate queries behind the dashboard.
type StatsRepo struct {
	DB *sql.DB
}

func (r StatsRepo) db() (*sql.DB, error) {
	if r.DB != nil {
		return r.DB, nil
	}
	if intconfig.DB == nil {
		return nil, fmt.Errorf("db not available")
	}
	return intconfig.DB, nil
}

// Count runs SELECT COUNT(*) FROM table [WHERE cond].
func (r StatsRepo) Count(ctx context.Context, table, cond string, args ...any) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM ` + table
	if cond != "" {
		query += ` WHERE ` + cond
	}
	var n int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Revenue sums total_amount of bookings with status.
func (r StatsRepo) Revenue(ctx context.Context, status string) (float64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	var total sql.NullFloat64
	if err := db.QueryRowContext(ctx, `SELECT SUM(total_amount) FROM bookings WHERE status=?`, status).Scan(&total); err != nil {
		return 0, err
	}
	return total.Float64, nil
}
