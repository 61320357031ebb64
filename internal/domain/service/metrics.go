package service

// LoyaltyMetrics records business counters for the loyalty and coupon flows.
type LoyaltyMetrics interface {
	PointsAwarded(points int64)
	PointsRedeemed(points int64)
	OfferLookup(found bool)
	CouponRedeemed(code string)
	TierChanged(tierName string)
}
