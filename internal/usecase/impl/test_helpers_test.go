package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Loyalty: &config.LoyaltyConfig{
			ReferralBaseURL:    "https://shop.example.com/signup",
			RecentTransactions: 5,
			Defaults: &config.LoyaltyDefaults{
				Enabled:             true,
				PointsPerTaka:       1,
				MinimumRedeemPoints: 200,
				PointValue:          0.5,
				ReferrerBonus:       500,
				ReferredBonus:       250,
			},
		},
	}
}

func testSettings() *entity.LoyaltySettings {
	return &entity.LoyaltySettings{
		Enabled:             true,
		PointsPerTaka:       1,
		MinimumRedeemPoints: 200,
		PointValue:          0.5,
		ReferrerBonus:       500,
		ReferredBonus:       250,
	}
}

func testCatalog(t *testing.T) entity.TierCatalog {
	t.Helper()

	catalog, err := entity.NewTierCatalog([]*entity.Tier{
		{ID: uuid.New(), Name: "Bronze", MinSpend: 0, PointsMultiplier: 1},
		{ID: uuid.New(), Name: "Silver", MinSpend: 5000, DiscountPercent: 2, PointsMultiplier: 1.25},
		{ID: uuid.New(), Name: "Gold", MinSpend: 15000, DiscountPercent: 5, PointsMultiplier: 1.5},
		{ID: uuid.New(), Name: "Platinum", MinSpend: 50000, DiscountPercent: 10, FreeShipping: true, PointsMultiplier: 2},
	})
	require.NoError(t, err)

	return catalog
}

// expectTx makes the transaction manager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}
