package coupon

import (
	"context"
	"strings"
	"time"

	"gocart-be/internal/apperr"
	"gocart-be/internal/logger"
	"gocart-be/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Add(ctx context.Context, ownerID string, input Input) (*Coupon, error)
	Edit(ctx context.Context, ownerID, couponID string, input Input) (*Coupon, error)
	Delete(ctx context.Context, ownerID, couponID string) error
	List(ctx context.Context, ownerID string) ([]*Coupon, error)
	Redeem(ctx context.Context, storeID, code string) (*Coupon, error)
}

type service struct {
	repo      Repository
	storeRepo store.Repository
}

func NewService(repo Repository, storeRepo store.Repository) Service {
	return &service{repo: repo, storeRepo: storeRepo}
}

// NormalizeCode gives coupon codes their case-insensitive identity:
// "save10" and "SAVE10" are the same coupon.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *service) validate(input Input) (string, time.Time, error) {
	code := NormalizeCode(input.Code)
	if code == "" {
		return "", time.Time{}, apperr.Validationf("code is required")
	}
	if input.Discount < 1 || input.Discount > 100 {
		return "", time.Time{}, apperr.Validationf("discount must be between 1 and 100")
	}

	expiresAt, err := time.ParseInLocation(DateLayout, input.ExpiresAt, time.Local)
	if err != nil {
		return "", time.Time{}, apperr.Validationf("expires_at must be a %s date", DateLayout)
	}
	if expiresAt.Before(startOfDay(time.Now())) {
		return "", time.Time{}, apperr.Validationf("expires_at cannot be in the past")
	}

	return code, expiresAt, nil
}

func (s *service) Add(ctx context.Context, ownerID string, input Input) (*Coupon, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}

	code, expiresAt, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	c := &Coupon{
		ID:          uuid.NewString(),
		StoreID:     st.ID,
		Code:        code,
		Description: strings.TrimSpace(input.Description),
		Discount:    input.Discount,
		ExpiresAt:   expiresAt,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("coupon added",
		zap.String("coupon_id", c.ID),
		zap.String("store_id", st.ID),
		zap.String("code", c.Code),
	)

	return c, nil
}

func (s *service) Edit(ctx context.Context, ownerID, couponID string, input Input) (*Coupon, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}

	code, expiresAt, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	c := &Coupon{
		ID:          couponID,
		StoreID:     st.ID,
		Code:        code,
		Description: strings.TrimSpace(input.Description),
		Discount:    input.Discount,
		ExpiresAt:   expiresAt,
	}

	applied, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, s.classifyMiss(ctx, couponID)
	}

	return s.repo.GetByID(ctx, couponID)
}

func (s *service) Delete(ctx context.Context, ownerID, couponID string) error {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, couponID, st.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.classifyMiss(ctx, couponID)
	}

	return nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]*Coupon, error) {
	st, err := store.OwnedStore(ctx, s.storeRepo, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}

// Redeem resolves a code for the store and enforces expiry at date
// granularity: a coupon expiring today still works all day. It never
// consumes the coupon; coupons here are multi-use.
func (s *service) Redeem(ctx context.Context, storeID, code string) (*Coupon, error) {
	c, err := s.repo.GetByCode(ctx, storeID, NormalizeCode(code))
	if err != nil {
		return nil, err
	}

	if startOfDay(c.ExpiresAt).Before(startOfDay(time.Now())) {
		return nil, ErrCouponExpired
	}

	return c, nil
}

func (s *service) classifyMiss(ctx context.Context, couponID string) error {
	_, err := s.repo.GetByID(ctx, couponID)
	if err != nil {
		return err
	}
	return ErrNotOwner
}
