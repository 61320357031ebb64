package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const actionRedeem = "redeem"

// LoyaltyHandlerParams holds dependencies for LoyaltyHandler, injected by Fx.
type LoyaltyHandlerParams struct {
	fx.In

	LoyaltyUC usecase.LoyaltyUsecase
	Logger    *slog.Logger
}

// LoyaltyHandler serves the caller's loyalty status and redemptions.
type LoyaltyHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
	logger    *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(params LoyaltyHandlerParams) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUC: params.LoyaltyUC,
		logger:    params.Logger,
	}
}

// LoyaltyActionRequest is the body of POST /user/loyalty.
type LoyaltyActionRequest struct {
	Action string `json:"action" validate:"required,oneof=redeem"`
	Points int64  `json:"points" validate:"gt=0"`
}

// RedeemResponse reports a successful redemption.
type RedeemResponse struct {
	Success         bool    `json:"success"`
	DiscountValue   float64 `json:"discountValue"`
	RemainingPoints int64   `json:"remainingPoints"`
	Message         string  `json:"message"`
}

// GetStatus returns balance, tier progress, recent transactions and referral stats.
func (h *LoyaltyHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
	}

	status, err := h.loyaltyUC.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoyaltyStatusResponse(status))
}

// PostAction dispatches on the action field. Only redeem exists today.
func (h *LoyaltyHandler) PostAction(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
	}

	var req LoyaltyActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid loyalty action")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	switch req.Action {
	case actionRedeem:
		out, err := h.loyaltyUC.Redeem(c.Request().Context(), userID, req.Points)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, &RedeemResponse{
			Success:         true,
			DiscountValue:   out.DiscountValue,
			RemainingPoints: out.RemainingPoints,
			Message:         out.Message,
		})
	default:
		return response.BadRequest(c, codeValidationError, "Unsupported action")
	}
}

// GetReferralQR renders the caller's referral link as a PNG image.
func (h *LoyaltyHandler) GetReferralQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication is required")
	}

	png, err := h.loyaltyUC.ReferralQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}
