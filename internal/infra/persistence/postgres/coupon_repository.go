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
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCouponCodeExists
		}

		return errors.Wrap(err, "failed to create coupon")
	}

	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCode expects an already normalized (trimmed, uppercase) code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *couponRepository) findOne(ctx context.Context, query string, arg any) (*entity.Coupon, error) {
	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return toCouponDomain(&couponM), nil
}

// List returns the whole catalog, newest first.
func (repo *couponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	var couponMs []*model.CouponModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("code ASC").Find(&couponMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return toCouponDomains(couponMs), nil
}

// ListAutoApplyCandidates narrows the catalog in SQL. Audience and remaining usage are
// still checked in memory by the offer selector, which keeps this order for ties.
func (repo *couponRepository) ListAutoApplyCandidates(ctx context.Context, cartTotal float64, now time.Time) ([]*entity.Coupon, error) {
	var couponMs []*model.CouponModel

	err := repo.db.WithContext(ctx).
		Where("auto_apply = ? AND is_active = ?", true, true).
		Where("valid_from <= ? AND valid_until >= ?", now, now).
		Where("min_order_value IS NULL OR min_order_value <= ?", cartTotal).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Order("discount_value DESC").
		Order("created_at ASC").
		Order("code ASC").
		Find(&couponMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list auto-apply coupons")
	}

	return toCouponDomains(couponMs), nil
}

func (repo *couponRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// IncrementUsage is a guarded increment: two checkouts racing for the last use cannot both win,
// and a coupon deactivated or expired after it was priced is not applied.
func (repo *couponRepository) IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon usage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponUsageExhausted
	}

	return nil
}

// --- Mapper Functions ---

func toCouponDomains(data []*model.CouponModel) []*entity.Coupon {
	coupons := make([]*entity.Coupon, 0, len(data))
	for _, couponM := range data {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons
}

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	return &entity.Coupon{
		ID:             data.ID,
		Code:           data.Code,
		Description:    data.Description,
		DiscountType:   entity.DiscountType(data.DiscountType),
		DiscountValue:  data.DiscountValue,
		MaxDiscount:    data.MaxDiscount,
		MinOrderValue:  data.MinOrderValue,
		ValidFrom:      data.ValidFrom,
		ValidUntil:     data.ValidUntil,
		UsageLimit:     data.UsageLimit,
		UsedCount:      data.UsedCount,
		TargetAudience: entity.Audience(data.TargetAudience),
		AutoApply:      data.AutoApply,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	return &model.CouponModel{
		ID:             data.ID,
		Code:           data.Code,
		Description:    data.Description,
		DiscountType:   string(data.DiscountType),
		DiscountValue:  data.DiscountValue,
		MaxDiscount:    data.MaxDiscount,
		MinOrderValue:  data.MinOrderValue,
		ValidFrom:      data.ValidFrom,
		ValidUntil:     data.ValidUntil,
		UsageLimit:     data.UsageLimit,
		UsedCount:      data.UsedCount,
		TargetAudience: string(data.TargetAudience),
		AutoApply:      data.AutoApply,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

