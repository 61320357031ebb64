package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order completion.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CheckoutRequest is the body of POST /user/orders.
type CheckoutRequest struct {
	Subtotal     float64 `json:"subtotal" validate:"gt=0"`
	ShippingCost float64 `json:"shippingCost" validate:"gte=0"`
	CouponCode   string  `json:"couponCode" validate:"max=32"`
	AutoApply    bool    `json:"autoApply"`
}

// CompleteOrderResponse reports the loyalty effects of completing an order.
type CompleteOrderResponse struct {
	Order             *OrderResponse `json:"order"`
	PointsAwarded     int64          `json:"pointsAwarded"`
	TierChanged       bool           `json:"tierChanged"`
	CurrentTier       *TierResponse  `json:"currentTier"`
	ReferralCompleted bool           `json:"referralCompleted"`
}

// Checkout places a pending order, applying the coupon when one is requested.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		UserID:       userID,
		Subtotal:     req.Subtotal,
		ShippingCost: req.ShippingCost,
		CouponCode:   req.CouponCode,
		AutoApply:    req.AutoApply,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// ListOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, out)
}

// CompleteOrder marks a pending order completed and awards its points.
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, codeValidationError, "Invalid order ID")
	}

	out, err := h.orderUC.CompleteOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CompleteOrderResponse{
		Order:             toOrderResponse(out.Order),
		PointsAwarded:     out.PointsAwarded,
		TierChanged:       out.TierChanged,
		CurrentTier:       toTierResponse(out.CurrentTier),
		ReferralCompleted: out.ReferralCompleted,
	})
}
