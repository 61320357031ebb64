package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrReferralNotFound = errors.New("referral not found")
	ErrReferralExists   = errors.New("user has already been referred")
)

// ReferralRepository persists referrals.
type ReferralRepository interface {
	Create(ctx context.Context, referral *entity.Referral) error
	FindPendingByReferredID(ctx context.Context, referredID uuid.UUID) (*entity.Referral, error)
	// MarkCompleted only transitions pending referrals.
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	StatsByReferrer(ctx context.Context, referrerID uuid.UUID) (*entity.ReferralStats, error)
}
