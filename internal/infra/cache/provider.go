package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	redisDialTimeout = 5 * time.Second
	redisMaxRetries  = 3
)

// CacheParams holds dependencies for SettingsCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSettingsCache returns a Redis-backed cache, or a no-op cache when redis.addr is empty.
func NewSettingsCache(params CacheParams) (service.SettingsCache, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || strings.TrimSpace(cfg.Addr) == "" {
		logger.Info("Redis not configured, settings cache disabled")

		return NewNoopSettingsCache(), nil
	}

	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			logger.Info("Redis settings cache connected", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisSettingsCache(client, cfg.KeyPrefix, settingsTTL(cfg)), nil
}

// redisOptions accepts either a redis:// URL or a host:port address.
func redisOptions(cfg *config.RedisConfig) (*redis.Options, error) {
	addr := strings.TrimSpace(cfg.Addr)

	var opts *redis.Options
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse redis url")
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr, DB: cfg.DB}
	}

	if cfg.Username != "" {
		opts.Username = cfg.Username
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DialTimeout = redisDialTimeout
	opts.MaxRetries = redisMaxRetries

	return opts, nil
}

func settingsTTL(cfg *config.RedisConfig) time.Duration {
	if cfg.SettingsTTL > 0 {
		return cfg.SettingsTTL
	}

	return constants.DefaultSettingsCacheTTL * time.Second
}

// Module provides the settings cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSettingsCache),
)
