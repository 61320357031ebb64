// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// toUpstream keeps domain errors as they are and turns anything else into an UpstreamFailure.
func toUpstream(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewUpstreamError(err, details)
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// resolveSegment describes the shopper for audience matching. A nil userID is a guest.
func resolveSegment(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	loyaltyRepo repository.LoyaltyRepository,
	catalog entity.TierCatalog,
	userID *uuid.UUID,
) (entity.CustomerSegment, error) {
	if userID == nil {
		return entity.GuestSegment(), nil
	}

	orderCount, err := orderRepo.CountCompletedByUser(ctx, *userID)
	if err != nil {
		return entity.CustomerSegment{}, errors.Wrap(err, "failed to count completed orders")
	}

	spent := 0.0
	account, err := loyaltyRepo.FindAccountByUserID(ctx, *userID)
	switch {
	case err == nil:
		spent = account.LifetimeSpent
	case !errors.Is(err, repository.ErrLoyaltyAccountNotFound):
		return entity.CustomerSegment{}, errors.Wrap(err, "failed to load loyalty account")
	}

	return entity.CustomerSegment{
		Authenticated: true,
		OrderCount:    orderCount,
		TierName:      catalog.Resolve(spent).TierName(),
	}, nil
}

// ensureAccount locks the user's loyalty account, creating it on first access.
func ensureAccount(
	ctx context.Context,
	loyaltyRepo repository.LoyaltyRepository,
	catalog entity.TierCatalog,
	userID uuid.UUID,
) (*entity.LoyaltyAccount, error) {
	account, err := loyaltyRepo.FindAccountByUserIDForUpdate(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrLoyaltyAccountNotFound) {
		return nil, errors.Wrap(err, "failed to lock loyalty account")
	}

	account = &entity.LoyaltyAccount{
		ID:     uuid.New(),
		UserID: userID,
		TierID: catalog.Resolve(0).TierID(),
	}
	err = loyaltyRepo.CreateAccount(ctx, account)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrLoyaltyAccountExists) {
		return nil, errors.Wrap(err, "failed to create loyalty account")
	}

	// A concurrent request created it first.
	account, err = loyaltyRepo.FindAccountByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock loyalty account after concurrent create")
	}

	return account, nil
}

// awardResult is what crediting an order changed in the account.
type awardResult struct {
	Account     *entity.LoyaltyAccount
	Points      int64
	Before      entity.TierProgress
	After       entity.TierProgress
	TierChanged bool
}

// awardPoints credits an order to the account and recomputes the cached tier.
// It must run inside a transaction. Spend is always tracked; points only while the program is enabled.
func awardPoints(
	ctx context.Context,
	loyaltyRepo repository.LoyaltyRepository,
	catalog entity.TierCatalog,
	settings *entity.LoyaltySettings,
	userID uuid.UUID,
	orderTotal float64,
	orderID uuid.UUID,
) (*awardResult, error) {
	account, err := ensureAccount(ctx, loyaltyRepo, catalog, userID)
	if err != nil {
		return nil, err
	}

	before := catalog.Resolve(account.LifetimeSpent)

	var points int64
	if settings.Enabled {
		points = entity.PointsForOrder(orderTotal, settings.PointsPerTaka, before.Multiplier())
	}

	if err := loyaltyRepo.CreditPoints(ctx, account.ID, points, orderTotal); err != nil {
		return nil, errors.Wrap(err, "failed to credit points")
	}

	if points > 0 {
		txn := &entity.PointsTransaction{
			ID:               uuid.New(),
			LoyaltyAccountID: account.ID,
			Type:             entity.TransactionEarn,
			Points:           points,
			Description:      "Points earned for order " + orderID.String(),
			OrderID:          &orderID,
		}
		if err := loyaltyRepo.InsertTransaction(ctx, txn); err != nil {
			return nil, errors.Wrap(err, "failed to insert earn transaction")
		}
	}

	account.TotalPoints += points
	account.LifetimePoints += points
	account.LifetimeSpent = entity.RoundMoney(account.LifetimeSpent + orderTotal)

	after := catalog.Resolve(account.LifetimeSpent)
	if newTierID := after.TierID(); !sameTier(account.TierID, newTierID) {
		if err := loyaltyRepo.UpdateTier(ctx, account.ID, newTierID); err != nil {
			return nil, errors.Wrap(err, "failed to update cached tier")
		}
		account.TierID = newTierID
	}

	return &awardResult{
		Account:     account,
		Points:      points,
		Before:      before,
		After:       after,
		TierChanged: before.Rank != after.Rank,
	}, nil
}

// creditBonus credits referral points without touching lifetime spend.
func creditBonus(
	ctx context.Context,
	loyaltyRepo repository.LoyaltyRepository,
	catalog entity.TierCatalog,
	userID uuid.UUID,
	points int64,
	description string,
) (*entity.LoyaltyAccount, error) {
	account, err := ensureAccount(ctx, loyaltyRepo, catalog, userID)
	if err != nil {
		return nil, err
	}
	if points <= 0 {
		return account, nil
	}

	if err := loyaltyRepo.CreditPoints(ctx, account.ID, points, 0); err != nil {
		return nil, errors.Wrap(err, "failed to credit referral bonus")
	}

	txn := &entity.PointsTransaction{
		ID:               uuid.New(),
		LoyaltyAccountID: account.ID,
		Type:             entity.TransactionReferral,
		Points:           points,
		Description:      description,
	}
	if err := loyaltyRepo.InsertTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to insert referral transaction")
	}

	account.TotalPoints += points
	account.LifetimePoints += points

	return account, nil
}

func sameTier(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// eventEmitter publishes loyalty events once their transaction has committed.
// Publishing failures are logged and never reach the caller.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e *eventEmitter) emit(ctx context.Context, events ...*service.LoyaltyEvent) {
	if e == nil || e.publisher == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, event := range events {
		if event == nil {
			continue
		}
		event.EventID = uuid.NewString()
		event.RequestID = requestID
		event.OccurredAt = time.Now().UTC()

		if err := e.publisher.PublishLoyaltyEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish loyalty event",
				slog.String("type", string(event.Type)),
				slog.String("userID", event.UserID),
				slog.Any("error", err))
		}
	}
}
