package dashboard

import (
	"context"
	"database/sql"
	"time"
)

// OrderPoint is the minimal slice of an order the aggregator needs.
type OrderPoint struct {
	Total     float64
	CreatedAt time.Time
}

type Repository interface {
	CountProducts(ctx context.Context) (int, error)
	CountStores(ctx context.Context) (int, error)
	OrderPoints(ctx context.Context) ([]OrderPoint, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func (r *repository) CountStores(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stores`).Scan(&count)
	return count, err
}

func (r *repository) OrderPoints(ctx context.Context) ([]OrderPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT total, created_at FROM orders ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []OrderPoint
	for rows.Next() {
		var p OrderPoint
		if err := rows.Scan(&p.Total, &p.CreatedAt); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
