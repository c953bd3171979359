package store

import (
	"context"
	"errors"
	"strings"

	"gocart-be/internal/apperr"
	"gocart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, ownerID string, input SubmitInput) (*Store, error)
	Decide(ctx context.Context, storeID string, decision Status) error
	SetActive(ctx context.Context, storeID string, active bool) error
	GetByOwner(ctx context.Context, ownerID string) (*Store, error)
	GetPublic(ctx context.Context, username string) (*Store, error)
	ListPending(ctx context.Context) ([]*Store, error)
	List(ctx context.Context) ([]*Store, error)
	Delete(ctx context.Context, storeID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Submit creates the store draft in pending/inactive. Username
// uniqueness is case-insensitive and enforced by the database, so two
// concurrent submissions with the same username resolve to exactly one
// winner.
func (s *service) Submit(ctx context.Context, ownerID string, input SubmitInput) (*Store, error) {
	if ownerID == "" {
		return nil, apperr.Forbiddenf("missing acting principal")
	}

	st := &Store{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Username:    strings.TrimSpace(input.Username),
		Description: strings.TrimSpace(input.Description),
		Email:       strings.TrimSpace(input.Email),
		Contact:     strings.TrimSpace(input.Contact),
		Address:     strings.TrimSpace(input.Address),
		Logo:        strings.TrimSpace(input.Logo),
		Status:      StatusPending,
		IsActive:    false,
	}

	for field, value := range map[string]string{
		"name":     st.Name,
		"username": st.Username,
		"email":    st.Email,
		"contact":  st.Contact,
		"address":  st.Address,
	} {
		if value == "" {
			return nil, apperr.Validationf("%s is required", field)
		}
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("store submitted for review",
		zap.String("store_id", st.ID),
		zap.String("username", st.Username),
	)

	return st, nil
}

// Decide applies an admin decision to a pending store. Re-applying a
// decision that already took effect is a no-op; losing a race against a
// different decision surfaces a conflict rather than silently
// overwriting it.
func (s *service) Decide(ctx context.Context, storeID string, decision Status) error {
	if decision != StatusApproved && decision != StatusRejected {
		return ErrInvalidDecision
	}

	applied, err := s.repo.UpdateStatus(ctx, storeID, StatusPending, decision)
	if err != nil {
		return err
	}

	if !applied {
		st, err := s.repo.GetByID(ctx, storeID)
		if err != nil {
			return err
		}
		if st.Status == decision {
			return nil // idempotent re-apply
		}
		return ErrDecisionRace
	}

	logger.FromCtx(ctx).Info("store decided",
		zap.String("store_id", storeID),
		zap.String("decision", string(decision)),
	)

	return nil
}

// SetActive toggles marketplace visibility. Approval alone never
// activates a store, and rejection never deactivates one; this is the
// only path that touches is_active.
func (s *service) SetActive(ctx context.Context, storeID string, active bool) error {
	applied, err := s.repo.SetActive(ctx, storeID, active)
	if err != nil {
		return err
	}

	if !applied {
		if _, err := s.repo.GetByID(ctx, storeID); err != nil {
			return err
		}
		return ErrNotApproved
	}

	logger.FromCtx(ctx).Info("store activation changed",
		zap.String("store_id", storeID),
		zap.Bool("is_active", active),
	)

	return nil
}

func (s *service) GetByOwner(ctx context.Context, ownerID string) (*Store, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

func (s *service) GetPublic(ctx context.Context, username string) (*Store, error) {
	return s.repo.GetActiveByUsername(ctx, username)
}

func (s *service) ListPending(ctx context.Context) ([]*Store, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *service) List(ctx context.Context) ([]*Store, error) {
	return s.repo.List(ctx)
}

// Delete removes the store; products and coupons cascade with it.
// Orders only reference the store id and keep their snapshots.
func (s *service) Delete(ctx context.Context, storeID string) error {
	deleted, err := s.repo.Delete(ctx, storeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStoreNotFound
	}

	logger.FromCtx(ctx).Info("store deleted", zap.String("store_id", storeID))
	return nil
}

// OwnedStore resolves the acting owner's store and is shared by the
// product and coupon services for their ownership checks.
func OwnedStore(ctx context.Context, repo Repository, ownerID string) (*Store, error) {
	if ownerID == "" {
		return nil, apperr.Forbiddenf("missing acting principal")
	}

	st, err := repo.GetByOwner(ctx, ownerID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrStoreNotFound
	}
	return st, err
}
