package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when the requested value is not cached.
var ErrCacheMiss = errors.New("cache miss")

// SettingsCache holds the loyalty settings and tier catalog between requests.
// Writers must call Invalidate after changing either.
type SettingsCache interface {
	GetLoyaltySettings(ctx context.Context) (*entity.LoyaltySettings, error)
	SetLoyaltySettings(ctx context.Context, settings *entity.LoyaltySettings) error
	GetTiers(ctx context.Context) ([]*entity.Tier, error)
	SetTiers(ctx context.Context, tiers []*entity.Tier) error
	Invalidate(ctx context.Context) error
}
