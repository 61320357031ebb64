package cache

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopSettingsCache_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewNoopSettingsCache()

	require.NoError(t, c.SetLoyaltySettings(ctx, entity.DefaultLoyaltySettings()))
	require.NoError(t, c.SetTiers(ctx, []*entity.Tier{{Name: "Bronze"}}))

	_, err := c.GetLoyaltySettings(ctx)
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	_, err = c.GetTiers(ctx)
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	assert.NoError(t, c.Invalidate(ctx))
}

func TestRedisSettingsCache_KeysUsePrefix(t *testing.T) {
	c := NewRedisSettingsCache(nil, "storefront:", time.Minute).(*redisSettingsCache)

	assert.Equal(t, "storefront:loyalty:settings", c.key(settingsKey))
	assert.Equal(t, "storefront:loyalty:tiers", c.key(tiersKey))
}

func TestRedisSettingsCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisSettingsCache(client, "test:", time.Minute)
	ctx := context.Background()

	_, err := c.GetLoyaltySettings(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrCacheMiss))

	assert.Error(t, c.SetTiers(ctx, nil))
	assert.Error(t, c.Invalidate(ctx))
}

func TestRedisOptions(t *testing.T) {
	t.Run("host and port", func(t *testing.T) {
		opts, err := redisOptions(&config.RedisConfig{Addr: "localhost:6379", DB: 2, Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, redisMaxRetries, opts.MaxRetries)
	})

	t.Run("url", func(t *testing.T) {
		opts, err := redisOptions(&config.RedisConfig{Addr: "redis://user:pw@cache:6380/1"})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, 1, opts.DB)
		assert.Equal(t, "user", opts.Username)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := redisOptions(&config.RedisConfig{Addr: "redis://cache:notaport/x"})
		assert.Error(t, err)
	})
}

func TestSettingsTTL(t *testing.T) {
	assert.Equal(t, 30*time.Second, settingsTTL(&config.RedisConfig{SettingsTTL: 30 * time.Second}))
	assert.Equal(t, time.Duration(constants.DefaultSettingsCacheTTL)*time.Second, settingsTTL(&config.RedisConfig{}))
}
