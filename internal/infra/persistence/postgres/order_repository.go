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
	"gorm.io/plugin/dbresolver"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByIDForUpdate locks the order row so completion is processed once.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns a user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(entity.OrderPending)).
		Updates(map[string]any{
			"status":       string(entity.OrderCompleted),
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotPending
	}

	return nil
}

// CountCompletedByUser feeds the customer segment used for coupon audiences.
func (repo *orderRepository) CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.OrderModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.OrderCompleted)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		Subtotal:     data.Subtotal,
		ShippingCost: data.ShippingCost,
		Discount:     data.Discount,
		Total:        data.Total,
		CouponID:     data.CouponID,
		CouponCode:   data.CouponCode,
		Status:       entity.OrderStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		CompletedAt:  data.CompletedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Subtotal:     data.Subtotal,
		ShippingCost: data.ShippingCost,
		Discount:     data.Discount,
		Total:        data.Total,
		CouponID:     data.CouponID,
		CouponCode:   data.CouponCode,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		CompletedAt:  data.CompletedAt,
	}
}
