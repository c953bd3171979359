package coupon

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, c *Coupon) error
	Update(ctx context.Context, c *Coupon) (bool, error)
	GetByID(ctx context.Context, id string) (*Coupon, error)
	GetByCode(ctx context.Context, storeID, code string) (*Coupon, error)
	ListByStore(ctx context.Context, storeID string) ([]*Coupon, error)
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const couponColumns = `
	id, store_id, code, COALESCE(description, ''), discount, expires_at, created_at
`

func scanCoupon(row interface{ Scan(dest ...any) error }) (*Coupon, error) {
	var c Coupon
	err := row.Scan(
		&c.ID, &c.StoreID, &c.Code, &c.Description,
		&c.Discount, &c.ExpiresAt, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Coupon) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coupons (id, store_id, code, description, discount, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, c.ID, c.StoreID, c.Code, c.Description, c.Discount, c.ExpiresAt)

	return mapUniqueViolation(err)
}

// Update is scoped by store id; the (store_id, code) unique index keeps
// the normalized code unique against every other coupon of the store
// while leaving the edited row itself out of the check.
func (r *repository) Update(ctx context.Context, c *Coupon) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE coupons
		SET code = $3, description = $4, discount = $5, expires_at = $6
		WHERE id = $1 AND store_id = $2
	`, c.ID, c.StoreID, c.Code, c.Description, c.Discount, c.ExpiresAt)
	if err != nil {
		return false, mapUniqueViolation(err)
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Coupon, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)

	c, err := scanCoupon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	return c, err
}

func (r *repository) GetByCode(ctx context.Context, storeID, code string) (*Coupon, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+couponColumns+`
		FROM coupons
		WHERE store_id = $1 AND code = $2
	`, storeID, code)

	c, err := scanCoupon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	return c, err
}

func (r *repository) ListByStore(ctx context.Context, storeID string) ([]*Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+couponColumns+`
		FROM coupons
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id, storeID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM coupons WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
		return ErrCodeExists
	}
	return err
}
