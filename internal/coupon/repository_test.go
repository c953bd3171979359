package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func couponRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "store_id", "code", "description", "discount", "expires_at", "created_at",
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	c := &Coupon{
		ID:        "c-1",
		StoreID:   "st-1",
		Code:      "SAVE10",
		Discount:  10,
		ExpiresAt: time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local),
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`INSERT INTO coupons`).
			WithArgs(c.ID, c.StoreID, c.Code, c.Description, c.Discount, c.ExpiresAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`INSERT INTO coupons`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "coupons_store_id_code_key"})

		err = repo.Create(ctx, c)
		assert.ErrorIs(t, err, ErrCodeExists)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateCode", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE coupons`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err = repo.Update(ctx, &Coupon{ID: "c-1", StoreID: "st-1", Code: "SAVE10"})
		assert.ErrorIs(t, err, ErrCodeExists)
	})

	t.Run("ScopedByStore", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE coupons\s+SET .* WHERE id = \$1 AND store_id = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.Update(ctx, &Coupon{ID: "c-1", StoreID: "other-store", Code: "SAVE10"})
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_GetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		expires := time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local)
		mock.ExpectQuery(`(?s)SELECT .* FROM coupons\s+WHERE store_id = \$1 AND code = \$2`).
			WithArgs("st-1", "SAVE10").
			WillReturnRows(couponRows().AddRow(
				"c-1", "st-1", "SAVE10", "", 10, expires, time.Now(),
			))

		c, err := repo.GetByCode(ctx, "st-1", "SAVE10")
		require.NoError(t, err)
		assert.Equal(t, 10, c.Discount)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM coupons`).
			WithArgs("st-1", "NOPE").
			WillReturnRows(couponRows())

		_, err = repo.GetByCode(ctx, "st-1", "NOPE")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM coupons WHERE id = \$1 AND store_id = \$2`).
		WithArgs("c-1", "st-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(ctx, "c-1", "st-1")
	assert.NoError(t, err)
	assert.True(t, deleted)
}
