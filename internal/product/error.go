package product

import (
	"fmt"

	"gocart-be/internal/apperr"
)

var (
	ErrProductNotFound  = fmt.Errorf("%w: product not found", apperr.ErrNotFound)
	ErrNotOwner         = fmt.Errorf("%w: product belongs to another store", apperr.ErrForbidden)
	ErrStoreNotApproved = fmt.Errorf("%w: store is not approved for product writes", apperr.ErrForbidden)
	ErrStockRace        = fmt.Errorf("%w: stock flag changed concurrently", apperr.ErrConflict)
)
