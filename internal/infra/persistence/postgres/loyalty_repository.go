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

// loyaltyRepository implements the domain.LoyaltyRepository interface.
// Balances only move through single-statement increments so concurrent writers never lose updates.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

// FindAccountByUserID reads from the primary so a redeem or award is visible immediately.
func (repo *loyaltyRepository) FindAccountByUserID(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	return repo.findAccount(repo.db.WithContext(ctx).Clauses(dbresolver.Write), userID)
}

func (repo *loyaltyRepository) FindAccountByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	return repo.findAccount(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *loyaltyRepository) findAccount(db *gorm.DB, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel
	if err := db.Where("user_id = ?", userID).Take(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty account")
	}

	return toAccountDomain(&accountM), nil
}

// CreateAccount inserts the account unless the user already has one. The conflict is
// resolved with ON CONFLICT DO NOTHING so the surrounding transaction stays usable.
func (repo *loyaltyRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(accountM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to create loyalty account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoyaltyAccountExists
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// CreditPoints adds to the balance, the lifetime points and the lifetime spend in one statement.
func (repo *loyaltyRepository) CreditPoints(ctx context.Context, accountID uuid.UUID, points int64, spent float64) error {
	if points < 0 {
		return errors.Errorf("cannot credit negative points: %d", points)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"total_points":    gorm.Expr("total_points + ?", points),
			"lifetime_points": gorm.Expr("lifetime_points + ?", points),
			"lifetime_spent":  gorm.Expr("lifetime_spent + ?", spent),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to credit points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoyaltyAccountNotFound
	}

	return nil
}

// DebitPoints only succeeds while the balance covers the debit.
func (repo *loyaltyRepository) DebitPoints(ctx context.Context, accountID uuid.UUID, points int64) error {
	if points <= 0 {
		return errors.Errorf("cannot debit non-positive points: %d", points)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id = ? AND total_points >= ?", accountID, points).
		Updates(map[string]any{
			"total_points":    gorm.Expr("total_points - ?", points),
			"redeemed_points": gorm.Expr("redeemed_points + ?", points),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientPoints
		}

		return errors.Wrap(result.Error, "failed to debit points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientPoints
	}

	return nil
}

func (repo *loyaltyRepository) UpdateTier(ctx context.Context, accountID uuid.UUID, tierID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id = ?", accountID).
		Update("tier_id", tierID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoyaltyAccountNotFound
	}

	return nil
}

// InsertTransaction appends a ledger row.
func (repo *loyaltyRepository) InsertTransaction(ctx context.Context, txn *entity.PointsTransaction) error {
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(txnM).Error; err != nil {
		return errors.Wrap(err, "failed to insert points transaction")
	}

	txn.CreatedAt = txnM.CreatedAt

	return nil
}

// ListTransactions returns the newest ledger rows first.
func (repo *loyaltyRepository) ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.PointsTransaction, error) {
	query := repo.db.WithContext(ctx).
		Where("loyalty_account_id = ?", accountID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txnMs []*model.PointsTransactionModel
	if err := query.Find(&txnMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list points transactions")
	}

	txns := make([]*entity.PointsTransaction, 0, len(txnMs))
	for _, txnM := range txnMs {
		txns = append(txns, toTransactionDomain(txnM))
	}

	return txns, nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.LoyaltyAccountModel) *entity.LoyaltyAccount {
	return &entity.LoyaltyAccount{
		ID:             data.ID,
		UserID:         data.UserID,
		TotalPoints:    data.TotalPoints,
		LifetimePoints: data.LifetimePoints,
		RedeemedPoints: data.RedeemedPoints,
		LifetimeSpent:  data.LifetimeSpent,
		TierID:         data.TierID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.LoyaltyAccount) *model.LoyaltyAccountModel {
	return &model.LoyaltyAccountModel{
		ID:             data.ID,
		UserID:         data.UserID,
		TotalPoints:    data.TotalPoints,
		LifetimePoints: data.LifetimePoints,
		RedeemedPoints: data.RedeemedPoints,
		LifetimeSpent:  data.LifetimeSpent,
		TierID:         data.TierID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toTransactionDomain(data *model.PointsTransactionModel) *entity.PointsTransaction {
	return &entity.PointsTransaction{
		ID:               data.ID,
		LoyaltyAccountID: data.LoyaltyAccountID,
		Type:             entity.TransactionType(data.Type),
		Points:           data.Points,
		Description:      data.Description,
		OrderID:          data.OrderID,
		CreatedAt:        data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.PointsTransaction) *model.PointsTransactionModel {
	return &model.PointsTransactionModel{
		ID:               data.ID,
		LoyaltyAccountID: data.LoyaltyAccountID,
		Type:             string(data.Type),
		Points:           data.Points,
		Description:      data.Description,
		OrderID:          data.OrderID,
		CreatedAt:        data.CreatedAt,
	}
}
