package impl

import (
	"context"
	"fmt"
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

const noOfferMessage = "No coupon applies to this cart"

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo  repository.CouponRepository
	orderRepo   repository.OrderRepository
	loyaltyRepo repository.LoyaltyRepository
	settings    usecase.SettingsUsecase
	metrics     service.LoyaltyMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo  repository.CouponRepository
	OrderRepo   repository.OrderRepository
	LoyaltyRepo repository.LoyaltyRepository
	Settings    usecase.SettingsUsecase
	Metrics     service.LoyaltyMetrics
	Logger      *slog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo:  params.CouponRepo,
		orderRepo:   params.OrderRepo,
		loyaltyRepo: params.LoyaltyRepo,
		settings:    params.Settings,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindBestOffer evaluates every auto-apply coupon against the cart and returns the largest saving.
// Finding nothing is a normal outcome.
func (srv *couponService) FindBestOffer(ctx context.Context, input *usecase.BestOfferInput) (*usecase.BestOfferOutput, error) {
	if !validAmount(input.CartTotal) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("total must be a non-negative number")
	}
	if !validAmount(input.ShippingCost) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shippingCost must be a non-negative number")
	}

	now := srv.now()
	cart := entity.Cart{Total: input.CartTotal, ShippingCost: input.ShippingCost}

	candidates, err := srv.couponRepo.ListAutoApplyCandidates(ctx, cart.Total, now)
	if err != nil {
		srv.log(ctx).Error("Failed to list coupon candidates", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "list coupons"), "failed to list coupon candidates")
	}

	segment := entity.GuestSegment()
	if input.UserID != nil && len(candidates) > 0 {
		segment, err = srv.segmentFor(ctx, *input.UserID)
		if err != nil {
			return nil, err
		}
	}

	offer := entity.SelectBestOffer(candidates, cart, segment, now)
	srv.metrics.OfferLookup(offer != nil)

	if offer == nil {
		srv.log(ctx).Debug("No applicable coupon", slog.Float64("total", cart.Total), slog.Int("candidates", len(candidates)))

		return &usecase.BestOfferOutput{Found: false, Message: noOfferMessage}, nil
	}

	srv.log(ctx).Debug("Best coupon selected", slog.String("code", offer.Coupon.Code), slog.Float64("savings", offer.Savings))

	return &usecase.BestOfferOutput{
		Found:   true,
		Offer:   offer,
		Message: fmt.Sprintf("Coupon %s saves %.2f", offer.Coupon.Code, offer.Savings),
	}, nil
}

func (srv *couponService) segmentFor(ctx context.Context, userID uuid.UUID) (entity.CustomerSegment, error) {
	catalog, err := srv.settings.GetTierCatalog(ctx)
	if err != nil {
		return entity.CustomerSegment{}, errors.Wrap(err, "failed to load tier catalog")
	}

	segment, err := resolveSegment(ctx, srv.orderRepo, srv.loyaltyRepo, catalog, &userID)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve customer segment", slog.Any("userID", userID), slog.Any("error", err))

		return entity.CustomerSegment{}, errors.Wrap(toUpstream(err, "resolve customer segment"), "failed to resolve customer segment")
	}

	return segment, nil
}

// CreateCoupon validates and stores a new coupon. Codes are stored uppercase.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	if err := validateCouponInput(input); err != nil {
		return nil, err
	}

	audience := input.TargetAudience
	if audience == "" {
		audience = entity.AudienceAll
	}

	coupon := &entity.Coupon{
		ID:             uuid.New(),
		Code:           strings.ToUpper(strings.TrimSpace(input.Code)),
		Description:    input.Description,
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		MaxDiscount:    input.MaxDiscount,
		MinOrderValue:  input.MinOrderValue,
		ValidFrom:      input.ValidFrom.UTC(),
		ValidUntil:     input.ValidUntil.UTC(),
		UsageLimit:     input.UsageLimit,
		TargetAudience: entity.Audience(strings.ToLower(string(audience))),
		AutoApply:      input.AutoApply,
		IsActive:       input.IsActive,
	}

	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrCouponCodeExists) {
			return nil, domainerrors.ErrCouponCodeTaken.WithDetails(coupon.Code)
		}
		srv.log(ctx).Error("Failed to create coupon", slog.String("code", coupon.Code), slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "create coupon"), "failed to create coupon")
	}

	srv.log(ctx).Info("Coupon created", slog.String("code", coupon.Code), slog.String("type", string(coupon.DiscountType)))

	return coupon, nil
}

func validateCouponInput(input *usecase.CreateCouponInput) error {
	invalid := func(details string) error {
		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	switch {
	case strings.TrimSpace(input.Code) == "":
		return invalid("code is required")
	case !input.DiscountType.IsValid():
		return invalid("discountType must be percentage, fixed or free_shipping")
	case !validAmount(input.DiscountValue):
		return invalid("discountValue must be a non-negative number")
	case input.DiscountType == entity.DiscountPercentage && (input.DiscountValue <= 0 || input.DiscountValue > 100):
		return invalid("percentage discountValue must be within (0, 100]")
	case input.DiscountType == entity.DiscountFixed && input.DiscountValue <= 0:
		return invalid("fixed discountValue must be positive")
	case input.MaxDiscount != nil && (!validAmount(*input.MaxDiscount) || *input.MaxDiscount == 0):
		return invalid("maxDiscount must be positive")
	case input.MinOrderValue != nil && !validAmount(*input.MinOrderValue):
		return invalid("minOrderValue must be a non-negative number")
	case input.UsageLimit != nil && *input.UsageLimit <= 0:
		return invalid("usageLimit must be positive")
	case input.ValidFrom.IsZero() || input.ValidUntil.IsZero():
		return invalid("validFrom and validUntil are required")
	case !input.ValidUntil.After(input.ValidFrom):
		return invalid("validUntil must be after validFrom")
	case input.TargetAudience != "" && !entity.Audience(strings.ToLower(string(input.TargetAudience))).IsValid():
		return invalid("targetAudience is not a known segment")
	}

	return nil
}

// ListCoupons returns the whole catalog for the admin console.
func (srv *couponService) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list coupons", slog.Any("error", err))

		return nil, errors.Wrap(toUpstream(err, "list coupons"), "failed to list coupons")
	}

	return coupons, nil
}

// DeactivateCoupon stops a coupon from being offered or applied.
func (srv *couponService) DeactivateCoupon(ctx context.Context, couponID uuid.UUID) error {
	if err := srv.couponRepo.Deactivate(ctx, couponID); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrap(domainerrors.ErrCouponNotFound, "deactivate coupon")
		}
		srv.log(ctx).Error("Failed to deactivate coupon", slog.Any("couponID", couponID), slog.Any("error", err))

		return errors.Wrap(toUpstream(err, "deactivate coupon"), "failed to deactivate coupon")
	}

	srv.log(ctx).Info("Coupon deactivated", slog.Any("couponID", couponID))

	return nil
}
