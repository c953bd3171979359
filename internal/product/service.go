package product

import (
	"context"
	"errors"
	"strings"

	"gocart-be/internal/apperr"
	"gocart-be/internal/logger"
	"gocart-be/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, ownerID string, input CreateInput) (*Product, error)
	Update(ctx context.Context, ownerID, productID string, input UpdateInput) (*Product, error)
	Delete(ctx context.Context, ownerID, productID string) error
	ToggleStock(ctx context.Context, ownerID, productID string, expect bool) (bool, error)
	ListOwn(ctx context.Context, ownerID string) ([]*Product, error)
	ListVisible(ctx context.Context, storeID string) ([]*Product, error)
}

type service struct {
	repo      Repository
	storeRepo store.Repository
}

func NewService(repo Repository, storeRepo store.Repository) Service {
	return &service{repo: repo, storeRepo: storeRepo}
}

func validateFields(name string, mrp, price float64) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validationf("name is required")
	}
	if mrp <= 0 {
		return apperr.Validationf("mrp must be positive")
	}
	if price <= 0 {
		return apperr.Validationf("price must be positive")
	}
	if price > mrp {
		return apperr.Validationf("price cannot exceed mrp")
	}
	return nil
}

// Create requires an approved store. The gate lives here, not in any
// calling surface.
func (s *service) Create(ctx context.Context, ownerID string, input CreateInput) (*Product, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}
	if st.Status != store.StatusApproved {
		return nil, ErrStoreNotApproved
	}

	if err := validateFields(input.Name, input.MRP, input.Price); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          uuid.NewString(),
		StoreID:     st.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		MRP:         input.MRP,
		Price:       input.Price,
		MainImage:   input.MainImage,
		Images:      input.Images,
		InStock:     true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", p.ID),
		zap.String("store_id", st.ID),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, ownerID, productID string, input UpdateInput) (*Product, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}

	if err := validateFields(input.Name, input.MRP, input.Price); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          productID,
		StoreID:     st.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		MRP:         input.MRP,
		Price:       input.Price,
		MainImage:   input.MainImage,
		Images:      input.Images,
	}

	applied, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, s.classifyMiss(ctx, productID)
	}

	return s.repo.GetByID(ctx, productID)
}

func (s *service) Delete(ctx context.Context, ownerID, productID string) error {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, productID, st.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.classifyMiss(ctx, productID)
	}

	logger.FromCtx(ctx).Info("product deleted",
		zap.String("product_id", productID),
		zap.String("store_id", st.ID),
	)

	return nil
}

// ToggleStock flips in_stock against the value the caller last read.
// On a conflict the caller reloads and retries; the UI applies the flip
// optimistically and rolls back when this returns an error.
func (s *service) ToggleStock(ctx context.Context, ownerID, productID string, expect bool) (bool, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return false, err
	}

	applied, err := s.repo.ToggleStock(ctx, productID, st.ID, expect)
	if err != nil {
		return false, err
	}
	if applied {
		return !expect, nil
	}

	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return false, err
	}
	if p.StoreID != st.ID {
		return false, ErrNotOwner
	}
	return false, ErrStockRace
}

func (s *service) ListOwn(ctx context.Context, ownerID string) ([]*Product, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}

func (s *service) ListVisible(ctx context.Context, storeID string) ([]*Product, error) {
	return s.repo.ListVisibleByStore(ctx, storeID)
}

// classifyMiss tells a stale reference apart from an ownership
// violation after a scoped write matched nothing.
func (s *service) classifyMiss(ctx context.Context, productID string) error {
	_, err := s.repo.GetByID(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	return ErrNotOwner
}
