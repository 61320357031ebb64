// Package cache keeps the loyalty settings and tier catalog in Redis between requests.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	settingsKey = "loyalty:settings"
	tiersKey    = "loyalty:tiers"
)

// redisSettingsCache stores JSON snapshots under a configurable key prefix.
type redisSettingsCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisSettingsCache wraps an existing client. A non-positive ttl disables expiry.
func NewRedisSettingsCache(client redis.Cmdable, prefix string, ttl time.Duration) service.SettingsCache {
	return &redisSettingsCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *redisSettingsCache) key(name string) string {
	return c.prefix + name
}

func (c *redisSettingsCache) GetLoyaltySettings(ctx context.Context) (*entity.LoyaltySettings, error) {
	var settings entity.LoyaltySettings
	if err := c.get(ctx, settingsKey, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (c *redisSettingsCache) SetLoyaltySettings(ctx context.Context, settings *entity.LoyaltySettings) error {
	return c.set(ctx, settingsKey, settings)
}

func (c *redisSettingsCache) GetTiers(ctx context.Context) ([]*entity.Tier, error) {
	var tiers []*entity.Tier
	if err := c.get(ctx, tiersKey, &tiers); err != nil {
		return nil, err
	}

	return tiers, nil
}

func (c *redisSettingsCache) SetTiers(ctx context.Context, tiers []*entity.Tier) error {
	return c.set(ctx, tiersKey, tiers)
}

// Invalidate drops both snapshots in a single DEL.
func (c *redisSettingsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key(settingsKey), c.key(tiersKey)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate settings cache")
	}

	return nil
}

func (c *redisSettingsCache) get(ctx context.Context, name string, dst any) error {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return service.ErrCacheMiss
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s from cache", name)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// A snapshot written by an older build is treated as absent.
		return errors.Wrap(service.ErrCacheMiss, err.Error())
	}

	return nil
}

func (c *redisSettingsCache) set(ctx context.Context, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(name), raw, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s to cache", name)
	}

	return nil
}
