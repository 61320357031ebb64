package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	txManager          repository.TransactionManager
	userRepo           repository.UserRepository
	settings           usecase.SettingsUsecase
	qrService          service.QRCodeService
	metrics            service.LoyaltyMetrics
	events             *eventEmitter
	referralBaseURL    string
	recentTransactions int
	logger             *slog.Logger
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Settings  usecase.SettingsUsecase
	QRService service.QRCodeService
	Metrics   service.LoyaltyMetrics
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLoyaltyService creates a new loyalty service.
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	recent := constants.DefaultRecentTransactions
	baseURL := ""
	if params.Config != nil && params.Config.Loyalty != nil {
		baseURL = params.Config.Loyalty.ReferralBaseURL
		if params.Config.Loyalty.RecentTransactions > 0 {
			recent = params.Config.Loyalty.RecentTransactions
		}
	}

	return &loyaltyService{
		txManager:          params.TxManager,
		userRepo:           params.UserRepo,
		settings:           params.Settings,
		qrService:          params.QRService,
		metrics:            params.Metrics,
		events:             &eventEmitter{publisher: params.Publisher, logger: params.Logger},
		referralBaseURL:    baseURL,
		recentTransactions: recent,
		logger:             params.Logger,
	}
}

func (srv *loyaltyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStatus returns the caller's balance, tier progress, recent ledger rows and referral summary.
// The account is created on first access.
func (srv *loyaltyService) GetStatus(ctx context.Context, userID uuid.UUID) (*usecase.LoyaltyStatus, error) {
	settings, err := srv.settings.GetLoyaltySettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}
	if !settings.Enabled {
		return &usecase.LoyaltyStatus{Enabled: false}, nil
	}

	catalog, err := srv.settings.GetTierCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tier catalog")
	}

	status := &usecase.LoyaltyStatus{Enabled: true}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loyaltyRepo := repoFactory.LoyaltyRepo()

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "loyalty status")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		account, err := ensureAccount(ctx, loyaltyRepo, catalog, userID)
		if err != nil {
			return err
		}

		// Re-resolve on every read so catalog edits show up without waiting for the next order.
		status.Progress = catalog.Resolve(account.LifetimeSpent)
		if tierID := status.Progress.TierID(); !sameTier(account.TierID, tierID) {
			if err := loyaltyRepo.UpdateTier(ctx, account.ID, tierID); err != nil {
				return errors.Wrap(err, "failed to sync cached tier")
			}
			account.TierID = tierID
		}
		status.Account = account

		status.Transactions, err = loyaltyRepo.ListTransactions(ctx, account.ID, srv.recentTransactions)
		if err != nil {
			return errors.Wrap(err, "failed to list transactions")
		}

		stats, err := repoFactory.ReferralRepo().StatsByReferrer(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load referral stats")
		}
		status.Referral = &usecase.ReferralSummary{
			Code:               user.ReferralCode,
			Link:               entity.ReferralLink(srv.referralBaseURL, user.ReferralCode),
			TotalReferrals:     stats.Total,
			CompletedReferrals: stats.Completed,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load loyalty status", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "load loyalty status"), "failed to load loyalty status")
	}

	return status, nil
}

// Redeem converts points into a discount. Nothing is written unless both the minimum
// and the balance checks pass.
func (srv *loyaltyService) Redeem(ctx context.Context, userID uuid.UUID, points int64) (*usecase.RedeemOutput, error) {
	settings, err := srv.settings.GetLoyaltySettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}
	if !settings.Enabled {
		return nil, errors.Wrap(domainerrors.ErrLoyaltyDisabled, "redeem")
	}
	if points <= 0 || points < settings.MinimumRedeemPoints {
		return nil, domainerrors.ErrRedeemBelowMinimum.WithDetails(
			fmt.Sprintf("at least %d points must be redeemed", settings.MinimumRedeemPoints))
	}

	var account *entity.LoyaltyAccount

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loyaltyRepo := repoFactory.LoyaltyRepo()

		var err error
		account, err = loyaltyRepo.FindAccountByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrLoyaltyAccountNotFound) {
			return insufficientBalance(0, points)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock loyalty account")
		}
		if account.TotalPoints < points {
			return insufficientBalance(account.TotalPoints, points)
		}

		if err := loyaltyRepo.DebitPoints(ctx, account.ID, points); err != nil {
			if errors.Is(err, repository.ErrInsufficientPoints) {
				return insufficientBalance(account.TotalPoints, points)
			}

			return errors.Wrap(err, "failed to debit points")
		}

		txn := &entity.PointsTransaction{
			ID:               uuid.New(),
			LoyaltyAccountID: account.ID,
			Type:             entity.TransactionRedeem,
			Points:           -points,
			Description:      fmt.Sprintf("Redeemed %d points", points),
		}
		if err := loyaltyRepo.InsertTransaction(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to insert redeem transaction")
		}

		account.TotalPoints -= points
		account.RedeemedPoints += points

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Redemption rejected", slog.Any("userID", userID), slog.Int64("points", points), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "redeem points"), "failed to redeem points")
	}

	discount := settings.RedemptionValue(points)
	srv.metrics.PointsRedeemed(points)
	srv.events.emit(ctx, &service.LoyaltyEvent{
		Type:    service.EventPointsRedeemed,
		UserID:  userID.String(),
		Points:  points,
		Balance: account.TotalPoints,
	})
	srv.log(ctx).Info("Points redeemed", slog.Any("userID", userID), slog.Int64("points", points), slog.Int64("balance", account.TotalPoints))

	return &usecase.RedeemOutput{
		DiscountValue:   discount,
		RemainingPoints: account.TotalPoints,
		Message:         fmt.Sprintf("Redeemed %d points for a %.2f discount", points, discount),
	}, nil
}

func insufficientBalance(balance, requested int64) error {
	return domainerrors.ErrInsufficientBalance.WithDetails(
		fmt.Sprintf("balance is %d points, %d requested", balance, requested))
}

// ReferralQRCode renders the caller's referral link as a PNG.
func (srv *loyaltyService) ReferralQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "referral qr")
	}
	if err != nil {
		return nil, errors.Wrap(toUpstream(err, "load user"), "failed to load user")
	}

	link := entity.ReferralLink(srv.referralBaseURL, user.ReferralCode)
	if link == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("referral link is not configured")
	}

	png, err := srv.qrService.GenerateReferralQR(link)
	if err != nil {
		srv.log(ctx).Error("Failed to render referral QR code", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "render referral qr"), "failed to render referral QR code")
	}

	return png, nil
}
