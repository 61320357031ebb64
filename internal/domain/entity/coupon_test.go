package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func liveCoupon(code string, discountType DiscountType, value float64) *Coupon {
	return &Coupon{
		Code:           code,
		DiscountType:   discountType,
		DiscountValue:  value,
		ValidFrom:      testNow.Add(-24 * time.Hour),
		ValidUntil:     testNow.Add(24 * time.Hour),
		TargetAudience: AudienceAll,
		AutoApply:      true,
		IsActive:       true,
	}
}

func TestSelectBestOffer_FixedBeatsCappedPercentage(t *testing.T) {
	couponA := liveCoupon("A", DiscountPercentage, 10)
	couponA.MaxDiscount = ptr(80.0)
	couponB := liveCoupon("B", DiscountFixed, 150)

	offer := SelectBestOffer([]*Coupon{couponA, couponB}, Cart{Total: 1000, ShippingCost: 60}, GuestSegment(), testNow)

	require.NotNil(t, offer)
	assert.Equal(t, "B", offer.Coupon.Code)
	assert.Equal(t, 150.0, offer.Savings)
	assert.Equal(t, 850.0, offer.NewTotal)
}

func TestSelectBestOffer_NoCoupons(t *testing.T) {
	assert.Nil(t, SelectBestOffer(nil, Cart{Total: 100}, GuestSegment(), testNow))
}

func TestSelectBestOffer_SkipsIneligibleCoupons(t *testing.T) {
	inactive := liveCoupon("INACTIVE", DiscountFixed, 500)
	inactive.IsActive = false

	manual := liveCoupon("MANUAL", DiscountFixed, 400)
	manual.AutoApply = false

	expired := liveCoupon("EXPIRED", DiscountFixed, 300)
	expired.ValidUntil = testNow.Add(-time.Minute)

	future := liveCoupon("FUTURE", DiscountFixed, 300)
	future.ValidFrom = testNow.Add(time.Minute)

	exhausted := liveCoupon("EXHAUSTED", DiscountFixed, 250)
	exhausted.UsageLimit = ptr(int64(10))
	exhausted.UsedCount = 10

	minimum := liveCoupon("MINIMUM", DiscountFixed, 200)
	minimum.MinOrderValue = ptr(5000.0)

	vip := liveCoupon("VIP", DiscountFixed, 190)
	vip.TargetAudience = AudienceVIP

	fallback := liveCoupon("FALLBACK", DiscountFixed, 10)

	coupons := []*Coupon{inactive, manual, expired, future, exhausted, minimum, vip, fallback}
	offer := SelectBestOffer(coupons, Cart{Total: 1000}, CustomerSegment{Authenticated: true, OrderCount: 2}, testNow)

	require.NotNil(t, offer)
	assert.Equal(t, "FALLBACK", offer.Coupon.Code)
}

func TestSelectBestOffer_TieKeepsFirstCoupon(t *testing.T) {
	first := liveCoupon("FIRST", DiscountFixed, 100)
	second := liveCoupon("SECOND", DiscountPercentage, 10)

	offer := SelectBestOffer([]*Coupon{first, second}, Cart{Total: 1000}, GuestSegment(), testNow)

	require.NotNil(t, offer)
	assert.Equal(t, "FIRST", offer.Coupon.Code)
}

func TestSelectBestOffer_ZeroCartStillFound(t *testing.T) {
	percentage := liveCoupon("TENOFF", DiscountPercentage, 10)

	offer := SelectBestOffer([]*Coupon{percentage}, Cart{Total: 0}, GuestSegment(), testNow)

	require.NotNil(t, offer)
	assert.Equal(t, 0.0, offer.Savings)
	assert.Equal(t, 0.0, offer.NewTotal)
}

func TestSelectBestOffer_FreeShipping(t *testing.T) {
	shipping := liveCoupon("SHIPFREE", DiscountFreeShipping, 0)
	small := liveCoupon("SMALL", DiscountFixed, 20)

	offer := SelectBestOffer([]*Coupon{small, shipping}, Cart{Total: 500, ShippingCost: 60}, GuestSegment(), testNow)

	require.NotNil(t, offer)
	assert.Equal(t, "SHIPFREE", offer.Coupon.Code)
	assert.Equal(t, 60.0, offer.Savings)
	assert.Equal(t, 500.0, offer.NewTotal)
}

func TestSelectBestOffer_NeverReturnsCouponAboveCartMinimum(t *testing.T) {
	for total := 0.0; total <= 2000; total += 50 {
		coupons := make([]*Coupon, 0, 10)
		for i := range 10 {
			c := liveCoupon(fmt.Sprintf("C%d", i), DiscountFixed, float64(10*(i+1)))
			c.MinOrderValue = ptr(float64(200 * i))
			coupons = append(coupons, c)
		}

		offer := SelectBestOffer(coupons, Cart{Total: total}, GuestSegment(), testNow)
		require.NotNil(t, offer, "total=%v", total)
		assert.LessOrEqual(t, *offer.Coupon.MinOrderValue, total)
	}
}

func TestCoupon_Discount_PercentageRespectsCap(t *testing.T) {
	for _, total := range []float64{0, 10, 99.99, 500, 800, 801, 1000, 25000} {
		capped := liveCoupon("CAPPED", DiscountPercentage, 10)
		capped.MaxDiscount = ptr(80.0)
		uncapped := liveCoupon("UNCAPPED", DiscountPercentage, 10)

		cart := Cart{Total: total}
		assert.LessOrEqual(t, capped.Discount(cart), 80.0)
		assert.LessOrEqual(t, capped.Discount(cart), total*0.1+1e-9)
		assert.InDelta(t, total*0.1, uncapped.Discount(cart), 1e-9)
	}
}

func TestAudience_Matches(t *testing.T) {
	guest := GuestSegment()
	newcomer := CustomerSegment{Authenticated: true}
	returning := CustomerSegment{Authenticated: true, OrderCount: 1, TierName: "Bronze"}
	vip := CustomerSegment{Authenticated: true, OrderCount: 5, TierName: "Gold"}

	tests := []struct {
		audience Audience
		segment  CustomerSegment
		want     bool
	}{
		{AudienceAll, guest, true},
		{AudienceNewCustomers, guest, true},
		{AudienceNewCustomers, newcomer, true},
		{AudienceNewCustomers, returning, false},
		{AudienceReturning, guest, false},
		{AudienceReturning, returning, true},
		{AudienceVIP, returning, false},
		{AudienceVIP, vip, true},
		{Audience("loyalty_gold"), vip, true},
		{Audience("loyalty_gold"), returning, false},
		{Audience("loyalty_gold"), guest, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.audience), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.audience.Matches(tt.segment))
		})
	}
}

func TestAudience_IsValid(t *testing.T) {
	assert.True(t, AudienceVIP.IsValid())
	assert.True(t, Audience("loyalty_silver").IsValid())
	assert.False(t, Audience("loyalty_").IsValid())
	assert.False(t, Audience("everyone").IsValid())
}

func TestNewOrder_AppliesOffer(t *testing.T) {
	coupon := liveCoupon("B", DiscountFixed, 150)
	cart := Cart{Total: 1000, ShippingCost: 60}

	order := NewOrder(uuid.New(), cart, NewOffer(coupon, cart))

	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, 150.0, order.Discount)
	assert.Equal(t, 910.0, order.Total)
	assert.Equal(t, "B", order.CouponCode)
}

func TestNewOrder_FreeShippingWaivesShipping(t *testing.T) {
	coupon := liveCoupon("SHIP", DiscountFreeShipping, 0)
	cart := Cart{Total: 300, ShippingCost: 60}

	order := NewOrder(uuid.New(), cart, NewOffer(coupon, cart))

	assert.Equal(t, 60.0, order.Discount)
	assert.Equal(t, 300.0, order.Total)
}
