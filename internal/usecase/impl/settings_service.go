package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	txManager    repository.TransactionManager
	settingsRepo repository.SettingsRepository
	tierRepo     repository.TierRepository
	cache        service.SettingsCache
	defaults     entity.LoyaltySettings
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SettingsRepo repository.SettingsRepository
	TierRepo     repository.TierRepository
	Cache        service.SettingsCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		txManager:    params.TxManager,
		settingsRepo: params.SettingsRepo,
		tierRepo:     params.TierRepo,
		cache:        params.Cache,
		defaults:     defaultSettingsFromConfig(params.Config),
		logger:       params.Logger,
	}
}

func defaultSettingsFromConfig(cfg *config.Config) entity.LoyaltySettings {
	if cfg == nil || cfg.Loyalty == nil || cfg.Loyalty.Defaults == nil {
		return *entity.DefaultLoyaltySettings()
	}
	d := cfg.Loyalty.Defaults

	return entity.LoyaltySettings{
		Enabled:             d.Enabled,
		PointsPerTaka:       d.PointsPerTaka,
		MinimumRedeemPoints: d.MinimumRedeemPoints,
		PointValue:          d.PointValue,
		ReferrerBonus:       d.ReferrerBonus,
		ReferredBonus:       d.ReferredBonus,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLoyaltySettings returns the cached settings, loading them from the primary on a miss.
// Defaults are served until an admin saves the first settings record.
func (srv *settingsService) GetLoyaltySettings(ctx context.Context) (*entity.LoyaltySettings, error) {
	cached, err := srv.cache.GetLoyaltySettings(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Settings cache read failed", slog.Any("error", err))
	}

	settings, err := srv.settingsRepo.GetLoyaltySettings(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		defaults := srv.defaults

		return &defaults, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load loyalty settings", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "load loyalty settings"), "failed to load loyalty settings")
	}

	if err := srv.cache.SetLoyaltySettings(ctx, settings); err != nil {
		srv.log(ctx).Warn("Failed to cache loyalty settings", slog.Any("error", err))
	}

	return settings, nil
}

// UpdateLoyaltySettings validates and stores the settings, then invalidates the cache.
func (srv *settingsService) UpdateLoyaltySettings(ctx context.Context, settings *entity.LoyaltySettings) (*entity.LoyaltySettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidLoyaltySettings.WithDetails(err.Error())
	}

	settings.UpdatedAt = time.Now().UTC()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SettingsRepo().SaveLoyaltySettings(ctx, settings)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save loyalty settings", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "save loyalty settings"), "failed to save loyalty settings")
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Loyalty settings updated",
		slog.Bool("enabled", settings.Enabled),
		slog.Float64("pointsPerTaka", settings.PointsPerTaka),
		slog.Int64("minimumRedeemPoints", settings.MinimumRedeemPoints))

	return settings, nil
}

// GetTierCatalog returns the validated tier catalog, cached like the settings.
func (srv *settingsService) GetTierCatalog(ctx context.Context) (entity.TierCatalog, error) {
	tiers, err := srv.cache.GetTiers(ctx)
	if err == nil {
		if catalog, catalogErr := entity.NewTierCatalog(tiers); catalogErr == nil {
			return catalog, nil
		}
		srv.log(ctx).Warn("Cached tier catalog is invalid, reloading")
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Tier cache read failed", slog.Any("error", err))
	}

	tiers, err = srv.tierRepo.ListTiers(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load tiers", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "load tiers"), "failed to load tiers")
	}

	catalog, err := entity.NewTierCatalog(tiers)
	if err != nil {
		srv.log(ctx).Error("Stored tier catalog is invalid", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "stored tier catalog is invalid")
	}

	if err := srv.cache.SetTiers(ctx, catalog); err != nil {
		srv.log(ctx).Warn("Failed to cache tiers", slog.Any("error", err))
	}

	return catalog, nil
}

// ReplaceTiers swaps the whole catalog in one transaction.
func (srv *settingsService) ReplaceTiers(ctx context.Context, tiers []*entity.Tier) (entity.TierCatalog, error) {
	catalog, err := entity.NewTierCatalog(tiers)
	if err != nil {
		return nil, domainerrors.ErrInvalidTierCatalog.WithDetails(err.Error())
	}
	if len(catalog) == 0 {
		return nil, domainerrors.ErrInvalidTierCatalog.WithDetails("at least one tier is required")
	}

	now := time.Now().UTC()
	for _, tier := range catalog {
		if tier.ID == uuid.Nil {
			tier.ID = uuid.New()
			tier.CreatedAt = now
		}
		tier.UpdatedAt = now
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TierRepo().ReplaceTiers(ctx, catalog)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to replace tiers", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "replace tiers"), "failed to replace tiers")
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Tier catalog replaced", slog.Int("tiers", len(catalog)))

	return catalog, nil
}

func (srv *settingsService) invalidate(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate settings cache", slog.Any("error", err))
	}
}
