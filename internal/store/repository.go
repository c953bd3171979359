package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, st *Store) error
	GetByID(ctx context.Context, id string) (*Store, error)
	GetByOwner(ctx context.Context, ownerID string) (*Store, error)
	GetActiveByUsername(ctx context.Context, username string) (*Store, error)
	UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
	ListByStatus(ctx context.Context, status Status) ([]*Store, error)
	List(ctx context.Context) ([]*Store, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const storeColumns = `
	id, owner_id, name, username, COALESCE(description, ''), email, contact,
	address, COALESCE(logo, ''), status, is_active, created_at, updated_at
`

func scanStore(row interface{ Scan(dest ...any) error }) (*Store, error) {
	var st Store
	err := row.Scan(
		&st.ID, &st.OwnerID, &st.Name, &st.Username, &st.Description,
		&st.Email, &st.Contact, &st.Address, &st.Logo, &st.Status,
		&st.IsActive, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *repository) Create(ctx context.Context, st *Store) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stores (
			id, owner_id, name, username, description, email, contact,
			address, logo, status, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		st.ID, st.OwnerID, st.Name, st.Username, st.Description,
		st.Email, st.Contact, st.Address, st.Logo, st.Status, st.IsActive,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
		if pqErr.Constraint == ConstraintOwner {
			return ErrAlreadySubmitted
		}
		return ErrUsernameTaken
	}

	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Store, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)

	st, err := scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	return st, err
}

func (r *repository) GetByOwner(ctx context.Context, ownerID string) (*Store, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE owner_id = $1`, ownerID)

	st, err := scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	return st, err
}

// GetActiveByUsername backs the public shop page: suspended and
// not-yet-activated stores are invisible, not merely unapproved.
func (r *repository) GetActiveByUsername(ctx context.Context, username string) (*Store, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE lower(username) = lower($1) AND is_active = TRUE
	`, username)

	st, err := scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	return st, err
}

// UpdateStatus is a compare-and-swap: the transition applies only if the
// row is still in the expected prior status. The caller decodes a zero
// row count.
func (r *repository) UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stores
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, id, from, to)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

// SetActive only touches approved stores; activation is independent of
// the approval decision itself.
func (r *repository) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stores
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'approved'
	`, id, active)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) ListByStatus(ctx context.Context, status Status) ([]*Store, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE status = $1
		ORDER BY created_at DESC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStores(rows)
}

func (r *repository) List(ctx context.Context) ([]*Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+storeColumns+` FROM stores ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStores(rows)
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func collectStores(rows *sql.Rows) ([]*Store, error) {
	var stores []*Store
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, st)
	}
	return stores, rows.Err()
}
