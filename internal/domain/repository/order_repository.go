package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending")
)

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	// MarkCompleted only transitions pending orders.
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
