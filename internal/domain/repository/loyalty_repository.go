package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrLoyaltyAccountNotFound = errors.New("loyalty account not found")
	ErrLoyaltyAccountExists   = errors.New("loyalty account already exists")
	ErrInsufficientPoints     = errors.New("insufficient points")
)

// LoyaltyRepository persists loyalty accounts and their points ledger.
// Balance changes are atomic increments; ledger rows are insert-only.
type LoyaltyRepository interface {
	FindAccountByUserID(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)
	// FindAccountByUserIDForUpdate locks the account row until the transaction ends.
	FindAccountByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)
	CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error

	// CreditPoints adds points to the balance and lifetime totals, and spent to the lifetime spend.
	CreditPoints(ctx context.Context, accountID uuid.UUID, points int64, spent float64) error
	// DebitPoints moves points from the balance to the redeemed total.
	// It returns ErrInsufficientPoints when the balance is smaller than points.
	DebitPoints(ctx context.Context, accountID uuid.UUID, points int64) error
	UpdateTier(ctx context.Context, accountID uuid.UUID, tierID *uuid.UUID) error

	InsertTransaction(ctx context.Context, txn *entity.PointsTransaction) error
	ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.PointsTransaction, error)
}
