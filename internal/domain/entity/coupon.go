package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscountType selects how a coupon's DiscountValue is interpreted.
type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// IsValid checks if the DiscountType is a known value.
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed, DiscountFreeShipping:
		return true
	default:
		return false
	}
}

// Audience is the segment rule restricting who may use a coupon.
type Audience string

const (
	AudienceAll          Audience = "all"
	AudienceNewCustomers Audience = "new_customers"
	AudienceReturning    Audience = "returning"
	AudienceVIP          Audience = "vip"

	loyaltyAudiencePrefix = "loyalty_"
)

// Order-count thresholds for the returning and vip segments.
const (
	ReturningMinOrders = 1
	VIPMinOrders       = 5
)

// CustomerSegment describes the shopper asking for an offer.
type CustomerSegment struct {
	Authenticated bool
	OrderCount    int64  // Completed orders placed so far.
	TierName      string // Resolved loyalty tier, empty for guests.
}

// GuestSegment is the segment of an anonymous shopper.
func GuestSegment() CustomerSegment {
	return CustomerSegment{}
}

// IsValid checks if the audience is a known segment or loyalty_<tier>.
func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceNewCustomers, AudienceReturning, AudienceVIP:
		return true
	}

	return strings.HasPrefix(string(a), loyaltyAudiencePrefix) && len(a) > len(loyaltyAudiencePrefix)
}

// Matches reports whether a shopper belongs to the segment. Guests have zero orders
// and no tier, so they only qualify for "all" and "new_customers".
func (a Audience) Matches(seg CustomerSegment) bool {
	switch a {
	case "", AudienceAll:
		return true
	case AudienceNewCustomers:
		return seg.OrderCount == 0
	case AudienceReturning:
		return seg.Authenticated && seg.OrderCount >= ReturningMinOrders
	case AudienceVIP:
		return seg.Authenticated && seg.OrderCount >= VIPMinOrders
	}

	tier, ok := strings.CutPrefix(string(a), loyaltyAudiencePrefix)
	if !ok || !seg.Authenticated || seg.TierName == "" {
		return false
	}

	return strings.EqualFold(tier, seg.TierName)
}

// Coupon is an admin-defined discount rule.
type Coupon struct {
	ID             uuid.UUID
	Code           string
	Description    string
	DiscountType   DiscountType
	DiscountValue  float64
	MaxDiscount    *float64 // Cap for percentage coupons.
	MinOrderValue  *float64
	ValidFrom      time.Time
	ValidUntil     time.Time
	UsageLimit     *int64
	UsedCount      int64
	TargetAudience Audience
	AutoApply      bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Cart is the input of an offer lookup.
type Cart struct {
	Total        float64
	ShippingCost float64
}

// Reasons a coupon cannot be used for a cart.
const (
	RejectInactive       = "coupon is not active"
	RejectNotStarted     = "coupon is not valid yet"
	RejectExpired        = "coupon has expired"
	RejectBelowMinimum   = "order total is below the coupon minimum"
	RejectUsageExhausted = "coupon usage limit reached"
	RejectAudience       = "coupon is not available for this customer"
)

// IsFreeShipping reports whether the coupon waives shipping.
func (c *Coupon) IsFreeShipping() bool {
	return c.DiscountType == DiscountFreeShipping
}

// HasUsesLeft is false once UsedCount reaches UsageLimit.
func (c *Coupon) HasUsesLeft() bool {
	return c.UsageLimit == nil || c.UsedCount < *c.UsageLimit
}

// MeetsMinimum checks the minimum order value.
func (c *Coupon) MeetsMinimum(cartTotal float64) bool {
	return c.MinOrderValue == nil || cartTotal >= *c.MinOrderValue
}

// Eligibility returns the first reason the coupon cannot be used, or "" when it can.
func (c *Coupon) Eligibility(cart Cart, seg CustomerSegment, now time.Time) string {
	switch {
	case !c.IsActive:
		return RejectInactive
	case now.Before(c.ValidFrom):
		return RejectNotStarted
	case now.After(c.ValidUntil):
		return RejectExpired
	case !c.MeetsMinimum(cart.Total):
		return RejectBelowMinimum
	case !c.HasUsesLeft():
		return RejectUsageExhausted
	case !c.TargetAudience.Matches(seg):
		return RejectAudience
	}

	return ""
}

// Discount is the absolute amount the coupon takes off the cart.
func (c *Coupon) Discount(cart Cart) float64 {
	switch c.DiscountType {
	case DiscountFreeShipping:
		return math.Max(cart.ShippingCost, 0)
	case DiscountPercentage:
		amount := math.Max(cart.Total, 0) * c.DiscountValue / 100
		if c.MaxDiscount != nil {
			amount = math.Min(amount, *c.MaxDiscount)
		}

		return amount
	case DiscountFixed:
		return c.DiscountValue
	default:
		return 0
	}
}

// Offer is a coupon applied to a cart.
type Offer struct {
	Coupon   *Coupon
	Savings  float64
	NewTotal float64 // Cart total after the discount. Shipping is not part of it.
}

// NewOffer computes savings and the resulting total of applying c to cart.
func NewOffer(c *Coupon, cart Cart) *Offer {
	return newOffer(c, cart, c.Discount(cart))
}

func newOffer(c *Coupon, cart Cart, discount float64) *Offer {
	newTotal := cart.Total
	if !c.IsFreeShipping() {
		newTotal = math.Max(cart.Total-discount, 0)
	}

	return &Offer{
		Coupon:   c,
		Savings:  RoundMoney(discount),
		NewTotal: RoundMoney(newTotal),
	}
}

// SelectBestOffer scans coupons in the given order and returns the auto-apply coupon with the
// greatest discount, or nil. Equal discounts keep the coupon seen first.
func SelectBestOffer(coupons []*Coupon, cart Cart, seg CustomerSegment, now time.Time) *Offer {
	var (
		best         *Coupon
		bestDiscount float64
	)

	for _, c := range coupons {
		if !c.AutoApply || c.Eligibility(cart, seg, now) != "" {
			continue
		}

		discount := c.Discount(cart)
		if best == nil || discount > bestDiscount {
			best, bestDiscount = c, discount
		}
	}

	if best == nil {
		return nil
	}

	return newOffer(best, cart, bestDiscount)
}
