package entity

import (
	"time"

	"github.com/pkg/errors"
)

// LoyaltySettings is the store-wide loyalty program configuration, edited from the admin console.
type LoyaltySettings struct {
	Enabled             bool
	PointsPerTaka       float64 // Points earned per currency unit spent, before the tier multiplier.
	MinimumRedeemPoints int64
	PointValue          float64 // Currency value of one point when redeemed.
	ReferrerBonus       int64
	ReferredBonus       int64
	UpdatedAt           time.Time
}

// DefaultLoyaltySettings is used to seed an empty database.
func DefaultLoyaltySettings() *LoyaltySettings {
	return &LoyaltySettings{
		Enabled:             true,
		PointsPerTaka:       1,
		MinimumRedeemPoints: 100,
		PointValue:          0.1,
		ReferrerBonus:       500,
		ReferredBonus:       250,
	}
}

// RedemptionValue converts points into a currency discount.
func (s *LoyaltySettings) RedemptionValue(points int64) float64 {
	return RoundMoney(float64(points) * s.PointValue)
}

// Validate rejects settings that would make earning or redeeming meaningless.
func (s *LoyaltySettings) Validate() error {
	switch {
	case s.PointsPerTaka < 0:
		return errors.New("pointsPerTaka must not be negative")
	case s.MinimumRedeemPoints < 1:
		return errors.New("minimumRedeemPoints must be at least 1")
	case s.PointValue <= 0:
		return errors.New("pointValue must be positive")
	case s.ReferrerBonus < 0 || s.ReferredBonus < 0:
		return errors.New("referral bonuses must not be negative")
	}

	return nil
}
