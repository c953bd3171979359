package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "name", "username", "description", "email",
		"contact", "address", "logo", "status", "is_active", "created_at", "updated_at",
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	st := &Store{
		ID:       "st-1",
		OwnerID:  "user-1",
		Name:     "Shop A",
		Username: "shopa",
		Email:    "a@shop.test",
		Contact:  "12345",
		Address:  "1 Main St",
		Status:   StatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`INSERT INTO stores`).
			WithArgs(
				st.ID, st.OwnerID, st.Name, st.Username, st.Description,
				st.Email, st.Contact, st.Address, st.Logo, st.Status, st.IsActive,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, st))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`INSERT INTO stores`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: ConstraintUsernameLower})

		err = repo.Create(ctx, st)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("OwnerAlreadySubmitted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`INSERT INTO stores`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: ConstraintOwner})

		err = repo.Create(ctx, st)
		assert.ErrorIs(t, err, ErrAlreadySubmitted)
	})

	t.Run("OtherDBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`INSERT INTO stores`).
			WillReturnError(errors.New("connection reset"))

		err = repo.Create(ctx, st)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		now := time.Now()
		mock.ExpectQuery(`SELECT .* FROM stores WHERE id = \$1`).
			WithArgs("st-1").
			WillReturnRows(storeRows().AddRow(
				"st-1", "user-1", "Shop A", "shopa", "", "a@shop.test",
				"12345", "1 Main St", "", "pending", false, now, now,
			))

		st, err := repo.GetByID(ctx, "st-1")
		require.NoError(t, err)
		assert.Equal(t, "shopa", st.Username)
		assert.Equal(t, StatusPending, st.Status)
		assert.False(t, st.IsActive)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM stores WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(storeRows())

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE stores\s+SET status = \$3, updated_at = NOW\(\)\s+WHERE id = \$1 AND status = \$2`).
			WithArgs("st-1", StatusPending, StatusApproved).
			WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.UpdateStatus(ctx, "st-1", StatusPending, StatusApproved)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("GuardMiss", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE stores`).
			WithArgs("st-1", StatusPending, StatusRejected).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.UpdateStatus(ctx, "st-1", StatusPending, StatusRejected)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_SetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyApprovedStores", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE stores\s+SET is_active = \$2, updated_at = NOW\(\)\s+WHERE id = \$1 AND status = 'approved'`).
			WithArgs("st-1", true).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.SetActive(ctx, "st-1", true)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_GetActiveByUsername(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	// Inactive stores are filtered out by the query itself.
	mock.ExpectQuery(`(?s)SELECT .* FROM stores\s+WHERE lower\(username\) = lower\(\$1\) AND is_active = TRUE`).
		WithArgs("ShopA").
		WillReturnRows(storeRows())

	_, err = repo.GetActiveByUsername(ctx, "ShopA")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
