package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferralSummary describes the caller's referral code and its results.
type ReferralSummary struct {
	Code               string
	Link               string
	TotalReferrals     int64
	CompletedReferrals int64
}

// LoyaltyStatus is the caller's loyalty overview. Only Enabled is set when the program is off.
type LoyaltyStatus struct {
	Enabled      bool
	Account      *entity.LoyaltyAccount
	Progress     entity.TierProgress
	Transactions []*entity.PointsTransaction
	Referral     *ReferralSummary
}

// RedeemOutput is the result of a successful redemption.
type RedeemOutput struct {
	DiscountValue   float64
	RemainingPoints int64
	Message         string
}

// LoyaltyUsecase covers the caller-facing loyalty operations.
type LoyaltyUsecase interface {
	GetStatus(ctx context.Context, userID uuid.UUID) (*LoyaltyStatus, error)
	Redeem(ctx context.Context, userID uuid.UUID, points int64) (*RedeemOutput, error)
	ReferralQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
