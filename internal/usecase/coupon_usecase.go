package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// BestOfferInput is a cart evaluated against the auto-apply coupons.
type BestOfferInput struct {
	UserID       *uuid.UUID // nil for guests.
	CartTotal    float64
	ShippingCost float64
}

// BestOfferOutput is the outcome of an offer lookup. Offer is nil when Found is false.
type BestOfferOutput struct {
	Found   bool
	Offer   *entity.Offer
	Message string
}

// CreateCouponInput defines a new coupon.
type CreateCouponInput struct {
	Code           string
	Description    string
	DiscountType   entity.DiscountType
	DiscountValue  float64
	MaxDiscount    *float64
	MinOrderValue  *float64
	ValidFrom      time.Time
	ValidUntil     time.Time
	UsageLimit     *int64
	TargetAudience entity.Audience
	AutoApply      bool
	IsActive       bool
}

// CouponUsecase covers the best-offer lookup and coupon administration.
type CouponUsecase interface {
	FindBestOffer(ctx context.Context, input *BestOfferInput) (*BestOfferOutput, error)
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)
	DeactivateCoupon(ctx context.Context, couponID uuid.UUID) error
}
