package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	CouponUC usecase.CouponUsecase
	Logger   *slog.Logger
}

// CouponHandler serves the best-offer lookup and coupon administration.
type CouponHandler struct {
	couponUC usecase.CouponUsecase
	logger   *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{
		couponUC: params.CouponUC,
		logger:   params.Logger,
	}
}

// BestOfferQuery is the query string of GET /coupons/best.
type BestOfferQuery struct {
	Total        float64 `query:"total" validate:"gte=0"`
	ShippingCost float64 `query:"shippingCost" validate:"gte=0"`
}

// CreateCouponRequest is the body of POST /admin/coupons.
type CreateCouponRequest struct {
	Code           string    `json:"code" validate:"required,min=3,max=32"`
	Description    string    `json:"description" validate:"max=255"`
	DiscountType   string    `json:"discountType" validate:"required,oneof=percentage fixed free_shipping"`
	DiscountValue  float64   `json:"discountValue" validate:"gte=0"`
	MaxDiscount    *float64  `json:"maxDiscount" validate:"omitnil,gt=0"`
	MinOrderValue  *float64  `json:"minOrderValue" validate:"omitnil,gte=0"`
	ValidFrom      time.Time `json:"validFrom" validate:"required"`
	ValidUntil     time.Time `json:"validUntil" validate:"required,gtfield=ValidFrom"`
	UsageLimit     *int64    `json:"usageLimit" validate:"omitnil,gt=0"`
	TargetAudience string    `json:"targetAudience"`
	AutoApply      bool      `json:"autoApply"`
	IsActive       *bool     `json:"isActive"`
}

// GetBestOffer returns the most valuable auto-apply coupon for the cart.
// Guests are evaluated as first-time customers without a tier.
func (h *CouponHandler) GetBestOffer(c echo.Context) error {
	var query BestOfferQuery
	err := echo.QueryParamsBinder(c).
		MustFloat64("total", &query.Total).
		Float64("shippingCost", &query.ShippingCost).
		BindError()
	if err != nil {
		return response.BindingError(c, codeValidationError, "total is required and both total and shippingCost must be numbers")
	}

	if err := c.Validate(&query); err != nil {
		return validationFailed(c, err)
	}

	input := &usecase.BestOfferInput{CartTotal: query.Total, ShippingCost: query.ShippingCost}
	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	out, err := h.couponUC.FindBestOffer(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBestOfferResponse(out))
}

// ListCoupons returns every coupon for the admin console.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.couponUC.ListCoupons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		out = append(out, toCouponResponse(coupon))
	}

	return response.Success(c, http.StatusOK, out)
}

// CreateCoupon adds a coupon. Coupons are active unless isActive is false.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var req CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input := &usecase.CreateCouponInput{
		Code:           req.Code,
		Description:    req.Description,
		DiscountType:   entity.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		MaxDiscount:    req.MaxDiscount,
		MinOrderValue:  req.MinOrderValue,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		UsageLimit:     req.UsageLimit,
		TargetAudience: entity.Audience(req.TargetAudience),
		AutoApply:      req.AutoApply,
		IsActive:       req.IsActive == nil || *req.IsActive,
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCouponResponse(coupon))
}

// DeactivateCoupon switches a coupon off without deleting its history.
func (h *CouponHandler) DeactivateCoupon(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, codeValidationError, "Invalid coupon ID")
	}

	if err := h.couponUC.DeactivateCoupon(c.Request().Context(), couponID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coupon deactivated"})
}
