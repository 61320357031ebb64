package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponCodeExists     = errors.New("coupon code already exists")
	ErrCouponUsageExhausted = errors.New("coupon usage limit reached")
)

// CouponRepository persists the coupon catalog.
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	List(ctx context.Context) ([]*entity.Coupon, error)

	// ListAutoApplyCandidates returns active auto-apply coupons valid at now whose minimum
	// order value is met, ordered by discount value descending.
	ListAutoApplyCandidates(ctx context.Context, cartTotal float64, now time.Time) ([]*entity.Coupon, error)

	Deactivate(ctx context.Context, id uuid.UUID) error

	// IncrementUsage bumps used_count only while the coupon is active, valid at now and
	// below usage_limit. It returns ErrCouponUsageExhausted when no row qualified.
	IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) error
}
