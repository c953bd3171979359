package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Counts(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stores`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	products, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, products)

	stores, err := repo.CountStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stores)
}

func TestRepository_OrderPoints(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT total, created_at FROM orders ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "created_at"}).
			AddRow(10.00, now).
			AddRow(25.50, now.Add(time.Hour)))

	points, err := repo.OrderPoints(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 10.00, points[0].Total)
}
