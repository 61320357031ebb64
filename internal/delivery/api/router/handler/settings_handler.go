package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler serves the admin views of loyalty settings and the tier catalog.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// UpdateSettingsRequest replaces the whole settings record.
type UpdateSettingsRequest struct {
	Enabled             bool    `json:"enabled"`
	PointsPerTaka       float64 `json:"pointsPerTaka" validate:"gte=0"`
	MinimumRedeemPoints int64   `json:"minimumRedeemPoints" validate:"gte=1"`
	PointValue          float64 `json:"pointValue" validate:"gt=0"`
	ReferrerBonus       int64   `json:"referrerBonus" validate:"gte=0"`
	ReferredBonus       int64   `json:"referredBonus" validate:"gte=0"`
}

// TierRequest is one entry of the catalog. A missing ID creates a new tier.
type TierRequest struct {
	ID               *uuid.UUID `json:"id"`
	Name             string     `json:"name" validate:"required,max=50"`
	MinSpend         float64    `json:"minSpend" validate:"gte=0"`
	DiscountPercent  float64    `json:"discountPercent" validate:"gte=0,lte=100"`
	FreeShipping     bool       `json:"freeShipping"`
	PointsMultiplier float64    `json:"pointsMultiplier" validate:"gt=0"`
}

// ReplaceTiersRequest is the full catalog sent by PUT /admin/loyalty/tiers.
type ReplaceTiersRequest struct {
	Tiers []TierRequest `json:"tiers" validate:"dive"`
}

// GetSettings returns the current loyalty settings.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetLoyaltySettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings stores new settings and drops the cached copy.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	saved, err := h.settingsUC.UpdateLoyaltySettings(c.Request().Context(), &entity.LoyaltySettings{
		Enabled:             req.Enabled,
		PointsPerTaka:       req.PointsPerTaka,
		MinimumRedeemPoints: req.MinimumRedeemPoints,
		PointValue:          req.PointValue,
		ReferrerBonus:       req.ReferrerBonus,
		ReferredBonus:       req.ReferredBonus,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(saved))
}

// GetTiers returns the catalog ordered by minimum spend.
func (h *SettingsHandler) GetTiers(c echo.Context) error {
	catalog, err := h.settingsUC.GetTierCatalog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTierResponses(catalog))
}

// ReplaceTiers swaps the whole catalog. Thresholds must be strictly increasing.
func (h *SettingsHandler) ReplaceTiers(c echo.Context) error {
	var req ReplaceTiersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, codeValidationError, "Invalid tier catalog")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	tiers := make([]*entity.Tier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		tier := &entity.Tier{
			Name:             t.Name,
			MinSpend:         t.MinSpend,
			DiscountPercent:  t.DiscountPercent,
			FreeShipping:     t.FreeShipping,
			PointsMultiplier: t.PointsMultiplier,
		}
		if t.ID != nil {
			tier.ID = *t.ID
		}
		tiers = append(tiers, tier)
	}

	catalog, err := h.settingsUC.ReplaceTiers(c.Request().Context(), tiers)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTierResponses(catalog))
}
