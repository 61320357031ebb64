package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{db: db}
}

func (repo *referralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	referralM := fromReferralDomain(referral)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(referralM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReferralExists
		}

		return errors.Wrap(err, "failed to create referral")
	}

	referral.CreatedAt = referralM.CreatedAt

	return nil
}

// FindPendingByReferredID locks the pending referral so the bonus is paid once.
func (repo *referralRepository) FindPendingByReferredID(ctx context.Context, referredID uuid.UUID) (*entity.Referral, error) {
	var referralM model.ReferralModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("referred_id = ? AND status = ?", referredID, string(entity.ReferralPending)).
		Take(&referralM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral")
	}

	return toReferralDomain(&referralM), nil
}

func (repo *referralRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Where("id = ? AND status = ?", id, string(entity.ReferralPending)).
		Updates(map[string]any{
			"status":       string(entity.ReferralCompleted),
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete referral")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReferralNotFound
	}

	return nil
}

type referralStatsRow struct {
	Total     int64
	Completed int64
}

func (repo *referralRepository) StatsByReferrer(ctx context.Context, referrerID uuid.UUID) (*entity.ReferralStats, error) {
	var row referralStatsRow

	err := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS completed", string(entity.ReferralCompleted)).
		Where("referrer_id = ?", referrerID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count referrals")
	}

	return &entity.ReferralStats{Total: row.Total, Completed: row.Completed}, nil
}

// --- Mapper Functions ---

func toReferralDomain(data *model.ReferralModel) *entity.Referral {
	return &entity.Referral{
		ID:            data.ID,
		ReferrerID:    data.ReferrerID,
		ReferredID:    data.ReferredID,
		Code:          data.Code,
		Status:        entity.ReferralStatus(data.Status),
		ReferrerBonus: data.ReferrerBonus,
		ReferredBonus: data.ReferredBonus,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
	}
}

func fromReferralDomain(data *entity.Referral) *model.ReferralModel {
	return &model.ReferralModel{
		ID:            data.ID,
		ReferrerID:    data.ReferrerID,
		ReferredID:    data.ReferredID,
		Code:          data.Code,
		Status:        string(data.Status),
		ReferrerBonus: data.ReferrerBonus,
		ReferredBonus: data.ReferredBonus,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
	}
}
