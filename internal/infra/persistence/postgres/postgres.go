package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolSlowWaitWarnAt = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// New opens the primary/replica pool. On start it pings the primary and, when configured,
// migrates the schema and seeds the default tiers and loyalty settings.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil && params.Config.Metrics != nil && params.Config.Metrics.Enabled {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, "storefront")); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := prepareSchema(ctx, db, params.Config, params.Logger); err != nil {
				return err
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolWaits logs connection waits between ticks. Checkout and order completion hold
// a connection for the whole transaction, so sustained waits show up here first.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now := sqlDB.Stats()
		waits := now.WaitCount - last.WaitCount
		waited := now.WaitDuration - last.WaitDuration
		last = now
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolSlowWaitWarnAt {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", now.InUse),
			slog.Int("idle", now.Idle),
			slog.Int("maxOpen", now.MaxOpenConnections),
		)
	}
}
