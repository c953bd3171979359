package coupon

import (
	"fmt"

	"gocart-be/internal/apperr"
)

var (
	ErrCouponNotFound = fmt.Errorf("%w: coupon not found", apperr.ErrNotFound)
	ErrCodeExists     = fmt.Errorf("%w: coupon code already exists for this store", apperr.ErrConflict)
	ErrCouponExpired  = fmt.Errorf("%w: coupon has expired", apperr.ErrExpired)
	ErrNotOwner       = fmt.Errorf("%w: coupon belongs to another store", apperr.ErrForbidden)
)

const PgUniqueViolation = "23505"
