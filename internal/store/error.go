package store

import (
	"fmt"

	"gocart-be/internal/apperr"
)

var (
	ErrStoreNotFound    = fmt.Errorf("%w: store not found", apperr.ErrNotFound)
	ErrUsernameTaken    = fmt.Errorf("%w: username already taken", apperr.ErrConflict)
	ErrAlreadySubmitted = fmt.Errorf("%w: owner already has a store", apperr.ErrConflict)
	ErrDecisionRace     = fmt.Errorf("%w: store was decided concurrently", apperr.ErrConflict)
	ErrNotApproved      = fmt.Errorf("%w: store is not approved", apperr.ErrConflict)
	ErrInvalidDecision  = fmt.Errorf("%w: decision must be approved or rejected", apperr.ErrValidation)
)

// Postgres unique violation, see pq.Error.Code.
const PgUniqueViolation = "23505"

// Constraint names from migrations/001_init.sql, used to tell which
// uniqueness rule a 23505 came from.
const (
	ConstraintUsernameLower = "stores_username_lower_idx"
	ConstraintOwner         = "stores_owner_id_key"
)
