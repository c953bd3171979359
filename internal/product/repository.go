package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	ListByStore(ctx context.Context, storeID string) ([]*Product, error)
	ListVisibleByStore(ctx context.Context, storeID string) ([]*Product, error)
	Update(ctx context.Context, p *Product) (bool, error)
	Delete(ctx context.Context, id, storeID string) (bool, error)
	ToggleStock(ctx context.Context, id, storeID string, expect bool) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, store_id, name, COALESCE(description, ''), mrp, price,
	COALESCE(main_image, ''), images, in_stock, created_at, updated_at
`

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.StoreID, &p.Name, &p.Description, &p.MRP, &p.Price,
		&p.MainImage, pq.Array(&p.Images), &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (
			id, store_id, name, description, mrp, price,
			main_image, images, in_stock
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID, p.StoreID, p.Name, p.Description, p.MRP, p.Price,
		p.MainImage, pq.Array(p.Images), p.InStock,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (r *repository) ListByStore(ctx context.Context, storeID string) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListVisibleByStore is the shopper read path. Visibility is the join
// of in_stock and the store's is_active flag, computed here rather than
// denormalized so deactivating a store hides its catalog immediately.
func (r *repository) ListVisibleByStore(ctx context.Context, storeID string) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.store_id, p.name, COALESCE(p.description, ''), p.mrp,
			p.price, COALESCE(p.main_image, ''), p.images, p.in_stock,
			p.created_at, p.updated_at
		FROM products p
		JOIN stores s ON s.id = p.store_id
		WHERE p.store_id = $1 AND p.in_stock = TRUE AND s.is_active = TRUE
		ORDER BY p.created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Update and Delete are scoped by store id so ownership is part of the
// statement itself, not a separate read the row could drift under.
func (r *repository) Update(ctx context.Context, p *Product) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $3, description = $4, mrp = $5, price = $6,
			main_image = $7, images = $8, updated_at = NOW()
		WHERE id = $1 AND store_id = $2
	`,
		p.ID, p.StoreID, p.Name, p.Description, p.MRP, p.Price,
		p.MainImage, pq.Array(p.Images),
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) Delete(ctx context.Context, id, storeID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

// ToggleStock flips in_stock only if the row still holds the value the
// caller last saw, so two concurrent toggles cannot cancel each other
// silently.
func (r *repository) ToggleStock(ctx context.Context, id, storeID string, expect bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET in_stock = NOT in_stock, updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND in_stock = $3
	`, id, storeID, expect)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func collectProducts(rows *sql.Rows) ([]*Product, error) {
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
