package postgres

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// schemaModels lists every table in dependency order.
var schemaModels = []any{
	&model.UserModel{},
	&model.AuthenticationModel{},
	&model.RefreshTokenModel{},
	&model.TierModel{},
	&model.LoyaltyAccountModel{},
	&model.PointsTransactionModel{},
	&model.CouponModel{},
	&model.OrderModel{},
	&model.ReferralModel{},
	&model.LoyaltySettingsModel{},
}

// defaultTiers is the catalog seeded into an empty database.
func defaultTiers() []*entity.Tier {
	return []*entity.Tier{
		{Name: "Bronze", MinSpend: 0, PointsMultiplier: 1},
		{Name: "Silver", MinSpend: 5000, DiscountPercent: 2, PointsMultiplier: 1.25},
		{Name: "Gold", MinSpend: 15000, DiscountPercent: 5, PointsMultiplier: 1.5},
		{Name: "Platinum", MinSpend: 50000, DiscountPercent: 10, FreeShipping: true, PointsMultiplier: 2},
	}
}

func prepareSchema(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Database == nil {
		return nil
	}

	// DDL and seeds always go to the primary.
	db = db.WithContext(ctx).Clauses(dbresolver.Write)

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(schemaModels...); err != nil {
			return errors.Wrap(err, "failed to migrate schema")
		}
		logger.Info("Database schema migrated", slog.Int("tables", len(schemaModels)))
	}

	if cfg.Database.SeedDefaults {
		if err := seedDefaults(db, seedSettings(cfg)); err != nil {
			return err
		}
	}

	return nil
}

func seedSettings(cfg *config.Config) *entity.LoyaltySettings {
	if cfg.Loyalty == nil || cfg.Loyalty.Defaults == nil {
		return entity.DefaultLoyaltySettings()
	}
	d := cfg.Loyalty.Defaults

	return &entity.LoyaltySettings{
		Enabled:             d.Enabled,
		PointsPerTaka:       d.PointsPerTaka,
		MinimumRedeemPoints: d.MinimumRedeemPoints,
		PointValue:          d.PointValue,
		ReferrerBonus:       d.ReferrerBonus,
		ReferredBonus:       d.ReferredBonus,
	}
}

// seedDefaults inserts the default tier catalog into an empty tiers table and the
// settings row when it does not exist. Existing data is never touched.
func seedDefaults(db *gorm.DB, settings *entity.LoyaltySettings) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var tierCount int64
		if err := tx.Model(&model.TierModel{}).Count(&tierCount).Error; err != nil {
			return errors.Wrap(err, "failed to count tiers")
		}

		if tierCount == 0 {
			now := time.Now().UTC()
			tiers := make([]*model.TierModel, 0, 4)
			for _, tier := range defaultTiers() {
				tier.ID = uuid.New()
				tier.CreatedAt = now
				tier.UpdatedAt = now
				tiers = append(tiers, fromTierDomain(tier))
			}
			if err := tx.Create(&tiers).Error; err != nil {
				return errors.Wrap(err, "failed to seed tiers")
			}
		}

		settingsM := fromSettingsDomain(settings)
		settingsM.UpdatedAt = time.Now().UTC()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(settingsM).Error; err != nil {
			return errors.Wrap(err, "failed to seed loyalty settings")
		}

		return nil
	})
}
