package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccount is the per-user points balance. Created lazily, never deleted.
type LoyaltyAccount struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TotalPoints    int64 // Spendable balance.
	LifetimePoints int64 // Every point ever credited.
	RedeemedPoints int64 // Every point ever spent.
	LifetimeSpent  float64
	TierID         *uuid.UUID // Cached tier, recomputed whenever LifetimeSpent changes.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Balanced reports whether TotalPoints = LifetimePoints - RedeemedPoints holds.
func (a *LoyaltyAccount) Balanced() bool {
	return a.TotalPoints == a.LifetimePoints-a.RedeemedPoints
}

// TransactionType classifies ledger rows.
type TransactionType string

const (
	TransactionEarn     TransactionType = "earn"
	TransactionRedeem   TransactionType = "redeem"
	TransactionReferral TransactionType = "referral"
)

// PointsTransaction is an append-only ledger row. Points is signed: redemptions are negative.
type PointsTransaction struct {
	ID               uuid.UUID
	LoyaltyAccountID uuid.UUID
	Type             TransactionType
	Points           int64
	Description      string
	OrderID          *uuid.UUID
	CreatedAt        time.Time
}

// earnEpsilon absorbs float error so that e.g. 1500 x 0.01 x 1.0 floors to 15, not 14.
const earnEpsilon = 1e-9

// PointsForOrder computes floor(orderTotal x pointsPerTaka x tierMultiplier).
func PointsForOrder(orderTotal, pointsPerTaka, tierMultiplier float64) int64 {
	if orderTotal <= 0 || pointsPerTaka <= 0 || tierMultiplier <= 0 {
		return 0
	}

	return int64(math.Floor(orderTotal*pointsPerTaka*tierMultiplier + earnEpsilon))
}
