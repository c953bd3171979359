package order

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"gocart-be/internal/coupon"
	"gocart-be/internal/logger"
	"gocart-be/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	PlaceTx(ctx context.Context, userID string, input PlaceInput) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	ListByStore(ctx context.Context, storeID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error)
	MarkPaid(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceTx is the single transactional boundary of checkout: store
// activity guard, per-product stock guard, coupon redemption and the
// order insert either all happen or none do.
func (r *repository) PlaceTx(ctx context.Context, userID string, input PlaceInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "PlaceTx"),
		zap.String("store_id", input.StoreID),
		zap.Int("item_count", len(input.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback checkout", zap.Error(rbErr))
			}
		}
	}()

	// 1. Store must exist and be active.
	var isActive bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_active FROM stores WHERE id = $1`, input.StoreID).
		Scan(&isActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	if !isActive {
		return nil, ErrStoreInactive
	}

	// 2. Optional coupon, redeemed inside the same transaction. Expiry
	// is checked against the database's current date so the coupon
	// works through its whole expiry day.
	var (
		couponID   *string
		couponCode string
		discount   int
	)
	if input.CouponCode != "" {
		var (
			id      string
			expired bool
		)
		err = tx.QueryRowContext(ctx, `
			SELECT id, code, discount, (expires_at < CURRENT_DATE)
			FROM coupons
			WHERE store_id = $1 AND code = $2
		`, input.StoreID, coupon.NormalizeCode(input.CouponCode)).
			Scan(&id, &couponCode, &discount, &expired)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coupon.ErrCouponNotFound
		}
		if err != nil {
			return nil, err
		}
		if expired {
			return nil, coupon.ErrCouponExpired
		}
		couponID = &id
	}

	// 3. Snapshot each line item from the live product while guarding
	// stock and store membership.
	o := &Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		StoreID:       input.StoreID,
		PaymentMethod: input.PaymentMethod,
		Status:        StatusOrderPlaced,
		CouponID:      couponID,
		CouponCode:    couponCode,
		Discount:      discount,
		Address:       input.Address,
	}

	var subtotal float64
	for _, item := range input.Items {
		var (
			name    string
			price   float64
			inStock bool
		)
		err = tx.QueryRowContext(ctx, `
			SELECT name, price, in_stock
			FROM products
			WHERE id = $1 AND store_id = $2
		`, item.ProductID, input.StoreID).
			Scan(&name, &price, &inStock)
		if errors.Is(err, sql.ErrNoRows) || (err == nil && !inStock) {
			return nil, ErrProductUnavailable
		}
		if err != nil {
			return nil, err
		}

		o.Items = append(o.Items, Item{
			ID:          uuid.NewString(),
			OrderID:     o.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       price,
		})
		subtotal += float64(item.Quantity) * price
	}

	o.Total = roundCents(subtotal * float64(100-discount) / 100)

	// 4. Persist the order and its items.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, store_id, total, payment_method, status, is_paid,
			coupon_id, coupon_code, discount,
			street, city, state, zip, country, phone
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		o.ID, o.UserID, o.StoreID, o.Total, o.PaymentMethod, o.Status, false,
		o.CouponID, o.CouponCode, o.Discount,
		o.Address.Street, o.Address.City, o.Address.State,
		o.Address.Zip, o.Address.Country, o.Address.Phone,
	)
	if err != nil {
		return nil, err
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, item.ID, item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.Price)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.Total),
	)

	return o, nil
}

const orderColumns = `
	id, user_id, store_id, total, payment_method, status, is_paid,
	coupon_id, COALESCE(coupon_code, ''), COALESCE(discount, 0),
	street, city, state, zip, country, phone, created_at, updated_at
`

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.StoreID, &o.Total, &o.PaymentMethod,
		&o.Status, &o.IsPaid, &o.CouponID, &o.CouponCode, &o.Discount,
		&o.Address.Street, &o.Address.City, &o.Address.State,
		&o.Address.Zip, &o.Address.Country, &o.Address.Phone,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, price
		FROM order_items
		WHERE order_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.Price,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return o, rows.Err()
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *repository) ListByStore(ctx context.Context, storeID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// UpdateStatus applies the transition only if the row still holds the
// status the service validated against.
func (r *repository) UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, id, from, to)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) MarkPaid(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET is_paid = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_paid = FALSE
	`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func collectOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
