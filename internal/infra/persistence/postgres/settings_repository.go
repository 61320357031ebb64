package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetLoyaltySettings reads the settings row from the primary so an admin edit is visible
// immediately, even when a read replica lags.
func (repo *settingsRepository) GetLoyaltySettings(ctx context.Context) (*entity.LoyaltySettings, error) {
	var settingsM model.LoyaltySettingsModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", model.LoyaltySettingsID).
		Take(&settingsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// SaveLoyaltySettings upserts the single settings row.
func (repo *settingsRepository) SaveLoyaltySettings(ctx context.Context, settings *entity.LoyaltySettings) error {
	settingsM := fromSettingsDomain(settings)
	if settingsM.UpdatedAt.IsZero() {
		settingsM.UpdatedAt = time.Now().UTC()
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settingsM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "loyalty settings rejected by database")
		}

		return errors.Wrap(err, "failed to save loyalty settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.LoyaltySettingsModel) *entity.LoyaltySettings {
	return &entity.LoyaltySettings{
		Enabled:             data.Enabled,
		PointsPerTaka:       data.PointsPerTaka,
		MinimumRedeemPoints: data.MinimumRedeemPoints,
		PointValue:          data.PointValue,
		ReferrerBonus:       data.ReferrerBonus,
		ReferredBonus:       data.ReferredBonus,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.LoyaltySettings) *model.LoyaltySettingsModel {
	return &model.LoyaltySettingsModel{
		ID:                  model.LoyaltySettingsID,
		Enabled:             data.Enabled,
		PointsPerTaka:       data.PointsPerTaka,
		MinimumRedeemPoints: data.MinimumRedeemPoints,
		PointValue:          data.PointValue,
		ReferrerBonus:       data.ReferrerBonus,
		ReferredBonus:       data.ReferredBonus,
		UpdatedAt:           data.UpdatedAt,
	}
}
