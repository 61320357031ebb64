package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsUsecase loads the loyalty settings and tier catalog through the cache,
// and invalidates the cache on every change.
type SettingsUsecase interface {
	GetLoyaltySettings(ctx context.Context) (*entity.LoyaltySettings, error)
	UpdateLoyaltySettings(ctx context.Context, settings *entity.LoyaltySettings) (*entity.LoyaltySettings, error)
	GetTierCatalog(ctx context.Context) (entity.TierCatalog, error)
	ReplaceTiers(ctx context.Context, tiers []*entity.Tier) (entity.TierCatalog, error)
}
