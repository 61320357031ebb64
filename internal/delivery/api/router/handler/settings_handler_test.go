package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	usecasemocks "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSettingsHandler(t *testing.T) (*testAPI, *usecasemocks.MockSettingsUsecase) {
	t.Helper()

	settingsUC := usecasemocks.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(SettingsHandlerParams{
		SettingsUC: settingsUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	api := newTestAPI(t)
	admin := api.e.Group("/admin", api.auth.Authenticate, api.auth.RequireRole(entity.RoleAdmin))
	admin.GET("/loyalty/settings", h.GetSettings)
	admin.PUT("/loyalty/settings", h.UpdateSettings)
	admin.GET("/loyalty/tiers", h.GetTiers)
	admin.PUT("/loyalty/tiers", h.ReplaceTiers)

	return api, settingsUC
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	api, settingsUC := createTestSettingsHandler(t)

	settingsUC.EXPECT().GetLoyaltySettings(mock.Anything).Return(entity.DefaultLoyaltySettings(), nil).Once()

	rec := api.do(http.MethodGet, "/admin/loyalty/settings", adminToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, true, data["enabled"])
	assert.InDelta(t, 100.0, data["minimumRedeemPoints"], 1e-9)
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	api, settingsUC := createTestSettingsHandler(t)

	settingsUC.EXPECT().
		UpdateLoyaltySettings(mock.Anything, mock.MatchedBy(func(s *entity.LoyaltySettings) bool {
			return !s.Enabled && s.PointsPerTaka == 2 && s.MinimumRedeemPoints == 200 && s.PointValue == 0.5
		})).
		RunAndReturn(func(_ context.Context, s *entity.LoyaltySettings) (*entity.LoyaltySettings, error) {
			return s, nil
		}).Once()

	body := `{"enabled":false,"pointsPerTaka":2,"minimumRedeemPoints":200,"pointValue":0.5,"referrerBonus":100,"referredBonus":50}`
	rec := api.do(http.MethodPut, "/admin/loyalty/settings", adminToken, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, decodeData(t, rec)["enabled"])

	rec = api.do(http.MethodPut, "/admin/loyalty/settings", adminToken, `{"minimumRedeemPoints":0,"pointValue":0}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestSettingsHandler_ReplaceTiers(t *testing.T) {
	api, settingsUC := createTestSettingsHandler(t)
	existing := uuid.New()

	settingsUC.EXPECT().
		ReplaceTiers(mock.Anything, mock.MatchedBy(func(tiers []*entity.Tier) bool {
			return len(tiers) == 2 && tiers[0].ID == existing && tiers[1].ID == uuid.Nil && tiers[1].Name == "Gold"
		})).
		RunAndReturn(func(_ context.Context, tiers []*entity.Tier) (entity.TierCatalog, error) {
			return entity.NewTierCatalog(tiers)
		}).Once()

	body := `{"tiers":[{"id":"` + existing.String() + `","name":"Bronze","minSpend":0,"pointsMultiplier":1},` +
		`{"name":"Gold","minSpend":20000,"discountPercent":5,"freeShipping":true,"pointsMultiplier":2}]}`
	rec := api.do(http.MethodPut, "/admin/loyalty/tiers", adminToken, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"name":"Gold"`)
}

func TestSettingsHandler_ReplaceTiers_Rejected(t *testing.T) {
	api, settingsUC := createTestSettingsHandler(t)

	rec := api.do(http.MethodPut, "/admin/loyalty/tiers", adminToken, `{"tiers":[{"name":"","pointsMultiplier":0}]}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	settingsUC.EXPECT().ReplaceTiers(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidTierCatalog.WithDetails(`tier "Gold" minimum spend must be greater than "Silver"`)).Once()

	body := `{"tiers":[{"name":"Silver","minSpend":5000,"pointsMultiplier":1},{"name":"Gold","minSpend":5000,"pointsMultiplier":1}]}`
	rec = api.do(http.MethodPut, "/admin/loyalty/tiers", adminToken, body)
	errInfo := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	assert.Equal(t, `tier "Gold" minimum spend must be greater than "Silver"`, errInfo.Details)
}
