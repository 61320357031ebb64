package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a placed checkout. Completing it awards loyalty points.
type Order struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Subtotal     float64
	ShippingCost float64
	Discount     float64
	Total        float64 // Amount charged, shipping included unless waived.
	CouponID     *uuid.UUID
	CouponCode   string
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}

// NewOrder prices a pending order, optionally applying an offer.
func NewOrder(userID uuid.UUID, cart Cart, offer *Offer) *Order {
	order := &Order{
		ID:           uuid.New(),
		UserID:       userID,
		Subtotal:     RoundMoney(cart.Total),
		ShippingCost: RoundMoney(cart.ShippingCost),
		Status:       OrderPending,
		Total:        RoundMoney(math.Max(cart.Total, 0) + math.Max(cart.ShippingCost, 0)),
	}

	if offer == nil {
		return order
	}

	couponID := offer.Coupon.ID
	order.CouponID = &couponID
	order.CouponCode = offer.Coupon.Code
	order.Discount = offer.Savings

	if offer.Coupon.IsFreeShipping() {
		order.Total = offer.NewTotal
	} else {
		order.Total = RoundMoney(offer.NewTotal + math.Max(cart.ShippingCost, 0))
	}

	return order
}
