package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type tierRepository struct {
	db *gorm.DB
}

// NewTierRepository is the constructor for tierRepository.
func NewTierRepository(db *gorm.DB) repository.TierRepository {
	return &tierRepository{db: db}
}

// ListTiers returns the catalog ordered by ascending minimum spend. It reads from the
// primary: the result is written back to the settings cache right after an invalidation.
func (repo *tierRepository) ListTiers(ctx context.Context) ([]*entity.Tier, error) {
	var tierMs []*model.TierModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Order("min_spend ASC").Find(&tierMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	tiers := make([]*entity.Tier, 0, len(tierMs))
	for _, tierM := range tierMs {
		tiers = append(tiers, toTierDomain(tierM))
	}

	return tiers, nil
}

// ReplaceTiers removes tiers missing from the new catalog and upserts the rest by ID.
// Accounts pointing at a removed tier get a NULL tier until their next recompute.
func (repo *tierRepository) ReplaceTiers(ctx context.Context, tiers []*entity.Tier) error {
	db := repo.db.WithContext(ctx)

	keep := make([]uuid.UUID, 0, len(tiers))
	tierMs := make([]*model.TierModel, 0, len(tiers))
	for _, tier := range tiers {
		keep = append(keep, tier.ID)
		tierMs = append(tierMs, fromTierDomain(tier))
	}

	del := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if len(keep) > 0 {
		del = del.Where("id NOT IN ?", keep)
	}
	if err := del.Delete(&model.TierModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete removed tiers")
	}

	if len(tierMs) == 0 {
		return nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "min_spend", "discount_percent", "free_shipping", "points_multiplier", "updated_at",
		}),
	}).Create(&tierMs).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert tiers")
	}

	return nil
}

// --- Mapper Functions ---

func toTierDomain(data *model.TierModel) *entity.Tier {
	return &entity.Tier{
		ID:               data.ID,
		Name:             data.Name,
		MinSpend:         data.MinSpend,
		DiscountPercent:  data.DiscountPercent,
		FreeShipping:     data.FreeShipping,
		PointsMultiplier: data.PointsMultiplier,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromTierDomain(data *entity.Tier) *model.TierModel {
	return &model.TierModel{
		ID:               data.ID,
		Name:             data.Name,
		MinSpend:         data.MinSpend,
		DiscountPercent:  data.DiscountPercent,
		FreeShipping:     data.FreeShipping,
		PointsMultiplier: data.PointsMultiplier,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
