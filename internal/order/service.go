package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gocart-be/internal/apperr"
	"gocart-be/internal/logger"
	"gocart-be/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, userID string, input PlaceInput) (*Order, error)
	SetStatus(ctx context.Context, ownerID, orderID string, to Status, force bool) error
	MarkPaid(ctx context.Context, actorID string, isAdmin bool, orderID string) error
	Get(ctx context.Context, actorID string, isAdmin bool, orderID string) (*Order, error)
	ListMine(ctx context.Context, userID string) ([]*Order, error)
	ListForStore(ctx context.Context, ownerID string) ([]*Order, error)
}

type service struct {
	repo      Repository
	storeRepo store.Repository
}

func NewService(repo Repository, storeRepo store.Repository) Service {
	return &service{repo: repo, storeRepo: storeRepo}
}

// CanTransition pins down the lifecycle policy: the status only moves
// forward, one stage at a time, unless force permits a strictly-forward
// jump. Backward moves are never allowed, forced or not.
func CanTransition(from, to Status, force bool) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}

	fromRank, toRank := statusRank[from], statusRank[to]
	switch {
	case toRank < fromRank:
		return fmt.Errorf("%w: cannot move %s back to %s", ErrIllegalTransition, from, to)
	case toRank == fromRank+1:
		return nil
	case force:
		return nil
	default:
		return fmt.Errorf("%w: %s must advance to %s first", ErrIllegalTransition, from, nextStatus(from))
	}
}

func nextStatus(s Status) Status {
	for candidate, rank := range statusRank {
		if rank == statusRank[s]+1 {
			return candidate
		}
	}
	return s
}

func (s *service) Place(ctx context.Context, userID string, input PlaceInput) (*Order, error) {
	if userID == "" {
		return nil, apperr.Forbiddenf("missing acting principal")
	}
	if input.StoreID == "" {
		return nil, apperr.Validationf("store_id is required")
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, apperr.Validationf("payment_method is required")
	}
	if len(input.Items) == 0 {
		return nil, apperr.Validationf("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == "" {
			return nil, apperr.Validationf("item product_id is required")
		}
		if item.Quantity <= 0 {
			return nil, apperr.Validationf("item quantity must be positive")
		}
	}
	if strings.TrimSpace(input.Address.Street) == "" || strings.TrimSpace(input.Address.City) == "" {
		return nil, apperr.Validationf("shipping address is incomplete")
	}

	return s.repo.PlaceTx(ctx, userID, input)
}

// SetStatus is all-or-nothing: legality is checked against the status
// read here and the update only lands if the row still holds it, so a
// concurrent transition surfaces as a conflict instead of a silent
// overwrite.
func (s *service) SetStatus(ctx context.Context, ownerID, orderID string, to Status, force bool) error {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.StoreID != st.ID {
		return ErrNotOwner
	}

	if o.Status == to {
		return nil // idempotent re-apply
	}

	if err := CanTransition(o.Status, to, force); err != nil {
		return err
	}

	applied, err := s.repo.UpdateStatus(ctx, orderID, o.Status, to)
	if err != nil {
		return err
	}
	if !applied {
		return ErrStatusRace
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(to)),
	)

	return nil
}

// MarkPaid is idempotent; marking an already-paid order is a no-op.
// Only the purchaser, the order's store owner or an admin may mark.
func (s *service) MarkPaid(ctx context.Context, actorID string, isAdmin bool, orderID string) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, o, actorID, isAdmin); err != nil {
		return err
	}

	if o.IsPaid {
		return nil
	}

	// A concurrent mark losing the guard is the same no-op.
	if _, err := s.repo.MarkPaid(ctx, orderID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order marked paid", zap.String("order_id", orderID))
	return nil
}

func (s *service) Get(ctx context.Context, actorID string, isAdmin bool, orderID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, o, actorID, isAdmin); err != nil {
		return nil, err
	}
	return o, nil
}

// authorize admits the purchaser, the order's store owner and admins.
// Infra failures while resolving the actor's store propagate as-is
// instead of masquerading as a denial.
func (s *service) authorize(ctx context.Context, o *Order, actorID string, isAdmin bool) error {
	if isAdmin || o.UserID == actorID {
		return nil
	}

	st, err := s.storeRepo.GetByOwner(ctx, actorID)
	if errors.Is(err, store.ErrStoreNotFound) {
		return apperr.Forbiddenf("cannot access others' orders")
	}
	if err != nil {
		return err
	}
	if st.ID == o.StoreID {
		return nil
	}
	return apperr.Forbiddenf("cannot access others' orders")
}

func (s *service) ListMine(ctx context.Context, userID string) ([]*Order, error) {
	if userID == "" {
		return nil, apperr.Forbiddenf("missing acting principal")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListForStore(ctx context.Context, ownerID string) ([]*Order, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}
