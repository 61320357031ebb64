package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	usecasemocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLoyaltyHandler(t *testing.T) (*testAPI, *usecasemocks.MockLoyaltyUsecase) {
	t.Helper()

	loyaltyUC := usecasemocks.NewMockLoyaltyUsecase(t)
	h := NewLoyaltyHandler(LoyaltyHandlerParams{
		LoyaltyUC: loyaltyUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	api := newTestAPI(t)
	user := api.e.Group("/user", api.auth.Authenticate)
	user.GET("/loyalty", h.GetStatus)
	user.POST("/loyalty", h.PostAction)
	user.GET("/loyalty/referral/qr", h.GetReferralQR)

	return api, loyaltyUC
}

func TestLoyaltyHandler_GetStatus(t *testing.T) {
	api, loyaltyUC := createTestLoyaltyHandler(t)

	catalog, err := entity.NewTierCatalog([]*entity.Tier{
		{ID: uuid.New(), Name: "Bronze", MinSpend: 0, PointsMultiplier: 1},
		{ID: uuid.New(), Name: "Silver", MinSpend: 5000, PointsMultiplier: 1.25},
	})
	require.NoError(t, err)

	orderID := uuid.New()
	loyaltyUC.EXPECT().GetStatus(mock.Anything, customerID).Return(&usecase.LoyaltyStatus{
		Enabled: true,
		Account: &entity.LoyaltyAccount{
			UserID:         customerID,
			TotalPoints:    1200,
			LifetimePoints: 1500,
			RedeemedPoints: 300,
			LifetimeSpent:  2500,
		},
		Progress: catalog.Resolve(2500),
		Transactions: []*entity.PointsTransaction{
			{ID: uuid.New(), Type: entity.TransactionEarn, Points: 500, Description: "Order reward", OrderID: &orderID},
		},
		Referral: &usecase.ReferralSummary{
			Code:               "AB12CD34",
			Link:               "https://shop.example/signup?ref=AB12CD34",
			TotalReferrals:     3,
			CompletedReferrals: 1,
		},
	}, nil).Once()

	rec := api.do(http.MethodGet, "/user/loyalty", customerToken, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, true, data["enabled"])
	assert.Equal(t, map[string]any{
		"totalPoints":    1200.0,
		"lifetimePoints": 1500.0,
		"lifetimeSpent":  2500.0,
		"redeemedPoints": 300.0,
	}, data["loyalty"])
	assert.Equal(t, "Bronze", data["currentTier"].(map[string]any)["name"])
	assert.Equal(t, "Silver", data["nextTier"].(map[string]any)["name"])
	assert.InDelta(t, 50.0, data["progress"], 1e-9)
	assert.InDelta(t, 2500.0, data["amountToNextTier"], 1e-9)
	assert.Len(t, data["transactions"], 1)
	assert.Equal(t, map[string]any{
		"code":               "AB12CD34",
		"link":               "https://shop.example/signup?ref=AB12CD34",
		"totalReferrals":     3.0,
		"completedReferrals": 1.0,
	}, data["referral"])
}

func TestLoyaltyHandler_GetStatus_Disabled(t *testing.T) {
	api, loyaltyUC := createTestLoyaltyHandler(t)

	loyaltyUC.EXPECT().GetStatus(mock.Anything, customerID).Return(&usecase.LoyaltyStatus{Enabled: false}, nil).Once()

	rec := api.do(http.MethodGet, "/user/loyalty", customerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"enabled": false}, decodeData(t, rec))
}

func TestLoyaltyHandler_RequiresAuthentication(t *testing.T) {
	api, _ := createTestLoyaltyHandler(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := api.do(method, "/user/loyalty", "", `{"action":"redeem","points":100}`)
		requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	}
}

func TestLoyaltyHandler_Redeem(t *testing.T) {
	api, loyaltyUC := createTestLoyaltyHandler(t)

	loyaltyUC.EXPECT().Redeem(mock.Anything, customerID, int64(500)).Return(&usecase.RedeemOutput{
		DiscountValue:   50,
		RemainingPoints: 700,
		Message:         "Redeemed 500 points for a 50.00 discount",
	}, nil).Once()

	rec := api.do(http.MethodPost, "/user/loyalty", customerToken, `{"action":"redeem","points":500}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{
		"success":         true,
		"discountValue":   50.0,
		"remainingPoints": 700.0,
		"message":         "Redeemed 500 points for a 50.00 discount",
	}, decodeData(t, rec))
}

func TestLoyaltyHandler_Redeem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail any
	}{
		{
			name:       "insufficient balance",
			err:        domainerrors.ErrInsufficientBalance.WithDetails("balance is 100 points, 500 requested"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INSUFFICIENT_BALANCE",
			wantDetail: "balance is 100 points, 500 requested",
		},
		{
			name:       "below minimum",
			err:        domainerrors.ErrRedeemBelowMinimum.WithDetails("at least 1000 points must be redeemed"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantDetail: "at least 1000 points must be redeemed",
		},
		{
			name:       "program disabled",
			err:        errors.Wrap(domainerrors.ErrLoyaltyDisabled, "redeem"),
			wantStatus: http.StatusForbidden,
			wantCode:   "LOYALTY_DISABLED",
		},
		{
			name:       "database failure",
			err:        domainerrors.NewUpstreamError(fmt.Errorf("deadlock detected"), "redeem points"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "UPSTREAM_FAILURE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, loyaltyUC := createTestLoyaltyHandler(t)
			loyaltyUC.EXPECT().Redeem(mock.Anything, customerID, int64(500)).Return(nil, tt.err).Once()

			rec := api.do(http.MethodPost, "/user/loyalty", customerToken, `{"action":"redeem","points":500}`)

			errInfo := requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)
			assert.Equal(t, tt.wantDetail, errInfo.Details)
		})
	}
}

func TestLoyaltyHandler_Redeem_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown action", body: `{"action":"transfer","points":500}`},
		{name: "missing action", body: `{"points":500}`},
		{name: "zero points", body: `{"action":"redeem","points":0}`},
		{name: "negative points", body: `{"action":"redeem","points":-10}`},
		{name: "fractional points", body: `{"action":"redeem","points":1.5}`},
		{name: "malformed json", body: `{"action":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := createTestLoyaltyHandler(t)

			rec := api.do(http.MethodPost, "/user/loyalty", customerToken, tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestLoyaltyHandler_GetReferralQR(t *testing.T) {
	api, loyaltyUC := createTestLoyaltyHandler(t)

	png := []byte{0x89, 'P', 'N', 'G'}
	loyaltyUC.EXPECT().ReferralQRCode(mock.Anything, customerID).Return(png, nil).Once()

	rec := api.do(http.MethodGet, "/user/loyalty/referral/qr", customerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
