package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	couponRepo  repository.CouponRepository
	orderRepo   repository.OrderRepository
	loyaltyRepo repository.LoyaltyRepository
	settings    usecase.SettingsUsecase
	metrics     service.LoyaltyMetrics
	events      *eventEmitter
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CouponRepo  repository.CouponRepository
	OrderRepo   repository.OrderRepository
	LoyaltyRepo repository.LoyaltyRepository
	Settings    usecase.SettingsUsecase
	Metrics     service.LoyaltyMetrics
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		couponRepo:  params.CouponRepo,
		orderRepo:   params.OrderRepo,
		loyaltyRepo: params.LoyaltyRepo,
		settings:    params.Settings,
		metrics:     params.Metrics,
		events:      &eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout prices the cart, applies the requested coupon and places a pending order.
// The coupon usage increment and the order insert commit together.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if !validAmount(input.Subtotal) || input.Subtotal == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subtotal must be a positive number")
	}
	if !validAmount(input.ShippingCost) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shippingCost must be a non-negative number")
	}

	cart := entity.Cart{Total: input.Subtotal, ShippingCost: input.ShippingCost}

	offer, err := srv.chooseOffer(ctx, input, cart)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(input.UserID, cart, offer)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if offer != nil {
			if err := repoFactory.CouponRepo().IncrementUsage(ctx, offer.Coupon.ID, srv.now()); err != nil {
				if errors.Is(err, repository.ErrCouponUsageExhausted) {
					return errors.Wrap(domainerrors.ErrCouponUsageExhausted, offer.Coupon.Code)
				}

				return errors.Wrap(err, "failed to increment coupon usage")
			}
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "checkout"), "failed to place order")
	}

	if offer != nil {
		srv.metrics.CouponRedeemed(offer.Coupon.Code)
	}
	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", order.UserID),
		slog.String("coupon", order.CouponCode),
		slog.Float64("total", order.Total))

	return order, nil
}

// chooseOffer resolves an explicit coupon code, or the best auto-apply offer when requested.
func (srv *orderService) chooseOffer(ctx context.Context, input *usecase.CheckoutInput, cart entity.Cart) (*entity.Offer, error) {
	if input.CouponCode == "" && !input.AutoApply {
		return nil, nil
	}

	now := srv.now()

	catalog, err := srv.settings.GetTierCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tier catalog")
	}

	segment, err := resolveSegment(ctx, srv.orderRepo, srv.loyaltyRepo, catalog, &input.UserID)
	if err != nil {
		return nil, errors.Wrap(toUpstream(err, "resolve customer segment"), "failed to resolve customer segment")
	}

	if input.CouponCode != "" {
		code := strings.ToUpper(strings.TrimSpace(input.CouponCode))

		coupon, err := srv.couponRepo.FindByCode(ctx, code)
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound.WithDetails(code)
		}
		if err != nil {
			return nil, errors.Wrap(toUpstream(err, "find coupon"), "failed to find coupon")
		}

		if reason := coupon.Eligibility(cart, segment, now); reason != "" {
			return nil, domainerrors.ErrCouponNotApplicable.WithDetails(reason)
		}

		return entity.NewOffer(coupon, cart), nil
	}

	candidates, err := srv.couponRepo.ListAutoApplyCandidates(ctx, cart.Total, now)
	if err != nil {
		return nil, errors.Wrap(toUpstream(err, "list coupons"), "failed to list coupon candidates")
	}

	return entity.SelectBestOffer(candidates, cart, segment, now), nil
}

// CompleteOrder marks a pending order completed, awards its points and settles a pending
// referral of the buyer, all in one transaction.
func (srv *orderService) CompleteOrder(ctx context.Context, orderID uuid.UUID) (*usecase.CompleteOrderOutput, error) {
	settings, err := srv.settings.GetLoyaltySettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	catalog, err := srv.settings.GetTierCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tier catalog")
	}

	var (
		order    *entity.Order
		award    *awardResult
		referral *entity.Referral
		referrer *entity.LoyaltyAccount
		referred *entity.LoyaltyAccount
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		loyaltyRepo := repoFactory.LoyaltyRepo()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "complete order")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}
		if order.Status != entity.OrderPending {
			return domainerrors.ErrOrderNotPending.WithDetails(string(order.Status))
		}

		completedAt := srv.now().UTC()
		if err := orderRepo.MarkCompleted(ctx, order.ID, completedAt); err != nil {
			if errors.Is(err, repository.ErrOrderNotPending) {
				return errors.Wrap(domainerrors.ErrOrderNotPending, "complete order")
			}

			return errors.Wrap(err, "failed to mark order completed")
		}
		order.Status = entity.OrderCompleted
		order.CompletedAt = &completedAt

		award, err = awardPoints(ctx, loyaltyRepo, catalog, settings, order.UserID, order.Total, order.ID)
		if err != nil {
			return err
		}

		if !settings.Enabled {
			return nil
		}

		referral, referrer, referred, err = srv.settleReferral(ctx, repoFactory, catalog, order.UserID, completedAt)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Order completion failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "complete order"), "failed to complete order")
	}

	srv.publishCompletion(ctx, order, award, referral, referrer, referred)

	return &usecase.CompleteOrderOutput{
		Order:             order,
		PointsAwarded:     award.Points,
		TierChanged:       award.TierChanged,
		CurrentTier:       award.After.Current,
		ReferralCompleted: referral != nil,
	}, nil
}

// settleReferral completes the buyer's pending referral, if any, and credits both bonuses.
func (srv *orderService) settleReferral(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	catalog entity.TierCatalog,
	referredID uuid.UUID,
	completedAt time.Time,
) (*entity.Referral, *entity.LoyaltyAccount, *entity.LoyaltyAccount, error) {
	referralRepo := repoFactory.ReferralRepo()
	loyaltyRepo := repoFactory.LoyaltyRepo()

	referral, err := referralRepo.FindPendingByReferredID(ctx, referredID)
	if errors.Is(err, repository.ErrReferralNotFound) {
		return nil, nil, nil, nil
	}
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to find pending referral")
	}

	if err := referralRepo.MarkCompleted(ctx, referral.ID, completedAt); err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to complete referral")
	}
	referral.Status = entity.ReferralCompleted
	referral.CompletedAt = &completedAt

	referrer, err := creditBonus(ctx, loyaltyRepo, catalog, referral.ReferrerID, referral.ReferrerBonus, "Referral bonus for inviting "+referredID.String())
	if err != nil {
		return nil, nil, nil, err
	}

	referred, err := creditBonus(ctx, loyaltyRepo, catalog, referredID, referral.ReferredBonus, "Welcome bonus for joining with code "+referral.Code)
	if err != nil {
		return nil, nil, nil, err
	}

	return referral, referrer, referred, nil
}

func (srv *orderService) publishCompletion(
	ctx context.Context,
	order *entity.Order,
	award *awardResult,
	referral *entity.Referral,
	referrer, referred *entity.LoyaltyAccount,
) {
	balance := award.Account.TotalPoints
	if referred != nil {
		balance = referred.TotalPoints
	}

	var events []*service.LoyaltyEvent

	if award.Points > 0 {
		srv.metrics.PointsAwarded(award.Points)
		events = append(events, &service.LoyaltyEvent{
			Type:     service.EventPointsEarned,
			UserID:   order.UserID.String(),
			Points:   award.Points,
			Balance:  balance,
			TierName: award.After.TierName(),
			OrderID:  order.ID.String(),
		})
	}

	if award.TierChanged {
		srv.metrics.TierChanged(award.After.TierName())
		events = append(events, &service.LoyaltyEvent{
			Type:     service.EventTierChanged,
			UserID:   order.UserID.String(),
			Balance:  balance,
			TierName: award.After.TierName(),
			OrderID:  order.ID.String(),
		})
	}

	if referral != nil {
		events = append(events,
			&service.LoyaltyEvent{
				Type:    service.EventReferralCompleted,
				UserID:  referral.ReferrerID.String(),
				Points:  referral.ReferrerBonus,
				Balance: referrer.TotalPoints,
				OrderID: order.ID.String(),
			},
			&service.LoyaltyEvent{
				Type:    service.EventReferralCompleted,
				UserID:  referral.ReferredID.String(),
				Points:  referral.ReferredBonus,
				Balance: balance,
				OrderID: order.ID.String(),
			},
		)
	}

	srv.events.emit(ctx, events...)
	srv.log(ctx).Info("Order completed",
		slog.Any("orderID", order.ID),
		slog.Int64("pointsAwarded", award.Points),
		slog.Bool("tierChanged", award.TierChanged),
		slog.Bool("referralCompleted", referral != nil))
}

// ListOrders returns the caller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "list orders"), "failed to list orders")
	}

	return orders, nil
}
