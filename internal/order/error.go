package order

import (
	"fmt"

	"gocart-be/internal/apperr"
)

var (
	ErrOrderNotFound      = fmt.Errorf("%w: order not found", apperr.ErrNotFound)
	ErrNotOwner           = fmt.Errorf("%w: order belongs to another store", apperr.ErrForbidden)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown order status", apperr.ErrValidation)
	ErrIllegalTransition  = fmt.Errorf("%w: illegal status transition", apperr.ErrConflict)
	ErrStatusRace         = fmt.Errorf("%w: order status changed concurrently", apperr.ErrConflict)
	ErrStoreInactive      = fmt.Errorf("%w: store is not accepting orders", apperr.ErrConflict)
	ErrProductUnavailable = fmt.Errorf("%w: product is unavailable", apperr.ErrConflict)
)
