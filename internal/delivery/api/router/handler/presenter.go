package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ReferralCode string    `json:"referralCode"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ReferralCode: u.ReferralCode,
		Roles:        u.Roles().ToStrings(),
		CreatedAt:    u.CreatedAt,
	}
}

// OfferCouponResponse is the coupon part of a best-offer answer.
type OfferCouponResponse struct {
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	DiscountType   string   `json:"discountType"`
	DiscountValue  float64  `json:"discountValue"`
	MaxDiscount    *float64 `json:"maxDiscount"`
	MinOrderValue  *float64 `json:"minOrderValue"`
	IsFreeShipping bool     `json:"isFreeShipping"`
}

// BestOfferResponse carries coupon, savings and newTotal only when found.
type BestOfferResponse struct {
	Found    bool                 `json:"found"`
	Coupon   *OfferCouponResponse `json:"coupon,omitempty"`
	Savings  *float64             `json:"savings,omitempty"`
	NewTotal *float64             `json:"newTotal,omitempty"`
	Message  string               `json:"message"`
}

func toBestOfferResponse(out *usecase.BestOfferOutput) *BestOfferResponse {
	resp := &BestOfferResponse{Found: out.Found, Message: out.Message}
	if !out.Found || out.Offer == nil {
		resp.Found = false

		return resp
	}

	c := out.Offer.Coupon
	resp.Coupon = &OfferCouponResponse{
		Code:           c.Code,
		Description:    c.Description,
		DiscountType:   string(c.DiscountType),
		DiscountValue:  c.DiscountValue,
		MaxDiscount:    c.MaxDiscount,
		MinOrderValue:  c.MinOrderValue,
		IsFreeShipping: c.IsFreeShipping(),
	}
	savings, newTotal := out.Offer.Savings, out.Offer.NewTotal
	resp.Savings = &savings
	resp.NewTotal = &newTotal

	return resp
}

// CouponResponse is the admin view of a coupon.
type CouponResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Description    string    `json:"description"`
	DiscountType   string    `json:"discountType"`
	DiscountValue  float64   `json:"discountValue"`
	MaxDiscount    *float64  `json:"maxDiscount"`
	MinOrderValue  *float64  `json:"minOrderValue"`
	ValidFrom      time.Time `json:"validFrom"`
	ValidUntil     time.Time `json:"validUntil"`
	UsageLimit     *int64    `json:"usageLimit"`
	UsedCount      int64     `json:"usedCount"`
	TargetAudience string    `json:"targetAudience"`
	AutoApply      bool      `json:"autoApply"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toCouponResponse(c *entity.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:             c.ID,
		Code:           c.Code,
		Description:    c.Description,
		DiscountType:   string(c.DiscountType),
		DiscountValue:  c.DiscountValue,
		MaxDiscount:    c.MaxDiscount,
		MinOrderValue:  c.MinOrderValue,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		UsageLimit:     c.UsageLimit,
		UsedCount:      c.UsedCount,
		TargetAudience: string(c.TargetAudience),
		AutoApply:      c.AutoApply,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}

// TierResponse describes one loyalty tier.
type TierResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	MinSpend         float64   `json:"minSpend"`
	DiscountPercent  float64   `json:"discountPercent"`
	FreeShipping     bool      `json:"freeShipping"`
	PointsMultiplier float64   `json:"pointsMultiplier"`
}

func toTierResponse(t *entity.Tier) *TierResponse {
	if t == nil {
		return nil
	}

	return &TierResponse{
		ID:               t.ID,
		Name:             t.Name,
		MinSpend:         t.MinSpend,
		DiscountPercent:  t.DiscountPercent,
		FreeShipping:     t.FreeShipping,
		PointsMultiplier: t.PointsMultiplier,
	}
}

func toTierResponses(catalog entity.TierCatalog) []*TierResponse {
	out := make([]*TierResponse, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, toTierResponse(t))
	}

	return out
}

// LoyaltyBalanceResponse is the balance block of the loyalty status.
type LoyaltyBalanceResponse struct {
	TotalPoints    int64   `json:"totalPoints"`
	LifetimePoints int64   `json:"lifetimePoints"`
	LifetimeSpent  float64 `json:"lifetimeSpent"`
	RedeemedPoints int64   `json:"redeemedPoints"`
}

// TransactionResponse is one ledger row.
type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Points      int64      `json:"points"`
	Description string     `json:"description"`
	OrderID     *uuid.UUID `json:"orderId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ReferralResponse summarises the caller's referrals.
type ReferralResponse struct {
	Code               string `json:"code"`
	Link               string `json:"link"`
	TotalReferrals     int64  `json:"totalReferrals"`
	CompletedReferrals int64  `json:"completedReferrals"`
}

// LoyaltyStatusResponse only carries enabled when the program is switched off.
type LoyaltyStatusResponse struct {
	Enabled          bool                    `json:"enabled"`
	Loyalty          *LoyaltyBalanceResponse `json:"loyalty,omitempty"`
	CurrentTier      *TierResponse           `json:"currentTier"`
	NextTier         *TierResponse           `json:"nextTier"`
	Progress         float64                 `json:"progress"`
	AmountToNextTier float64                 `json:"amountToNextTier"`
	Transactions     []*TransactionResponse  `json:"transactions"`
	Referral         *ReferralResponse       `json:"referral,omitempty"`
}

// LoyaltyDisabledResponse is returned instead of the status while the program is off.
type LoyaltyDisabledResponse struct {
	Enabled bool `json:"enabled"`
}

func toLoyaltyStatusResponse(status *usecase.LoyaltyStatus) any {
	if !status.Enabled || status.Account == nil {
		return &LoyaltyDisabledResponse{Enabled: false}
	}

	a := status.Account
	resp := &LoyaltyStatusResponse{
		Enabled: true,
		Loyalty: &LoyaltyBalanceResponse{
			TotalPoints:    a.TotalPoints,
			LifetimePoints: a.LifetimePoints,
			LifetimeSpent:  a.LifetimeSpent,
			RedeemedPoints: a.RedeemedPoints,
		},
		CurrentTier:      toTierResponse(status.Progress.Current),
		NextTier:         toTierResponse(status.Progress.Next),
		Progress:         status.Progress.Progress,
		AmountToNextTier: status.Progress.AmountToNextTier,
		Transactions:     make([]*TransactionResponse, 0, len(status.Transactions)),
	}

	for _, tx := range status.Transactions {
		resp.Transactions = append(resp.Transactions, &TransactionResponse{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Points:      tx.Points,
			Description: tx.Description,
			OrderID:     tx.OrderID,
			CreatedAt:   tx.CreatedAt,
		})
	}

	if r := status.Referral; r != nil {
		resp.Referral = &ReferralResponse{
			Code:               r.Code,
			Link:               r.Link,
			TotalReferrals:     r.TotalReferrals,
			CompletedReferrals: r.CompletedReferrals,
		}
	}

	return resp
}

// OrderResponse is an order as seen by its owner.
type OrderResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Subtotal     float64    `json:"subtotal"`
	ShippingCost float64    `json:"shippingCost"`
	Discount     float64    `json:"discount"`
	Total        float64    `json:"total"`
	CouponCode   string     `json:"couponCode,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt"`
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		Subtotal:     o.Subtotal,
		ShippingCost: o.ShippingCost,
		Discount:     o.Discount,
		Total:        o.Total,
		CouponCode:   o.CouponCode,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
	}
}

// SettingsResponse mirrors entity.LoyaltySettings.
type SettingsResponse struct {
	Enabled             bool      `json:"enabled"`
	PointsPerTaka       float64   `json:"pointsPerTaka"`
	MinimumRedeemPoints int64     `json:"minimumRedeemPoints"`
	PointValue          float64   `json:"pointValue"`
	ReferrerBonus       int64     `json:"referrerBonus"`
	ReferredBonus       int64     `json:"referredBonus"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toSettingsResponse(s *entity.LoyaltySettings) *SettingsResponse {
	return &SettingsResponse{
		Enabled:             s.Enabled,
		PointsPerTaka:       s.PointsPerTaka,
		MinimumRedeemPoints: s.MinimumRedeemPoints,
		PointValue:          s.PointValue,
		ReferrerBonus:       s.ReferrerBonus,
		ReferredBonus:       s.ReferredBonus,
		UpdatedAt:           s.UpdatedAt,
	}
}
