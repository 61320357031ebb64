package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput places an order. CouponCode wins over AutoApply when both are set.
type CheckoutInput struct {
	UserID       uuid.UUID
	Subtotal     float64
	ShippingCost float64
	CouponCode   string
	AutoApply    bool
}

// CompleteOrderOutput reports what completing an order changed in the loyalty account.
type CompleteOrderOutput struct {
	Order             *entity.Order
	PointsAwarded     int64
	TierChanged       bool
	CurrentTier       *entity.Tier
	ReferralCompleted bool
}

// OrderUsecase covers checkout and order completion.
type OrderUsecase interface {
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
	CompleteOrder(ctx context.Context, orderID uuid.UUID) (*CompleteOrderOutput, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
