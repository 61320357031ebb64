package cache

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// noopSettingsCache always misses, so every read goes to Postgres.
type noopSettingsCache struct{}

// NewNoopSettingsCache is used when Redis is not configured.
func NewNoopSettingsCache() service.SettingsCache {
	return noopSettingsCache{}
}

func (noopSettingsCache) GetLoyaltySettings(context.Context) (*entity.LoyaltySettings, error) {
	return nil, service.ErrCacheMiss
}

func (noopSettingsCache) SetLoyaltySettings(context.Context, *entity.LoyaltySettings) error {
	return nil
}

func (noopSettingsCache) GetTiers(context.Context) ([]*entity.Tier, error) {
	return nil, service.ErrCacheMiss
}

func (noopSettingsCache) SetTiers(context.Context, []*entity.Tier) error {
	return nil
}

func (noopSettingsCache) Invalidate(context.Context) error {
	return nil
}
