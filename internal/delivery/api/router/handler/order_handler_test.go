package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	usecasemocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderHandler(t *testing.T) (*testAPI, *usecasemocks.MockOrderUsecase) {
	t.Helper()

	orderUC := usecasemocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	api := newTestAPI(t)
	user := api.e.Group("/user", api.auth.Authenticate)
	user.POST("/orders", h.Checkout)
	user.GET("/orders", h.ListOrders)
	admin := api.e.Group("/admin", api.auth.Authenticate, api.auth.RequireRole(entity.RoleAdmin))
	admin.POST("/orders/:id/complete", h.CompleteOrder)

	return api, orderUC
}

func TestOrderHandler_Checkout(t *testing.T) {
	api, orderUC := createTestOrderHandler(t)

	order := &entity.Order{
		ID:           uuid.New(),
		UserID:       customerID,
		Subtotal:     1000,
		ShippingCost: 60,
		Discount:     100,
		Total:        960,
		CouponCode:   "SAVE10",
		Status:       entity.OrderPending,
		CreatedAt:    time.Now(),
	}
	orderUC.EXPECT().
		Checkout(mock.Anything, &usecase.CheckoutInput{
			UserID:       customerID,
			Subtotal:     1000,
			ShippingCost: 60,
			CouponCode:   "SAVE10",
		}).
		Return(order, nil).Once()

	rec := api.do(http.MethodPost, "/user/orders", customerToken, `{"subtotal":1000,"shippingCost":60,"couponCode":"SAVE10"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, "pending", data["status"])
	assert.InDelta(t, 960.0, data["total"], 1e-9)
	assert.Equal(t, "SAVE10", data["couponCode"])
}

func TestOrderHandler_Checkout_Errors(t *testing.T) {
	api, orderUC := createTestOrderHandler(t)

	rec := api.do(http.MethodPost, "/user/orders", customerToken, `{"subtotal":0}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	orderUC.EXPECT().Checkout(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCouponUsageExhausted).Once()
	rec = api.do(http.MethodPost, "/user/orders", customerToken, `{"subtotal":100,"couponCode":"GONE"}`)
	requireErrorCode(t, rec, http.StatusConflict, "COUPON_USAGE_EXHAUSTED")
}

func TestOrderHandler_ListOrders(t *testing.T) {
	api, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().ListOrders(mock.Anything, customerID).Return([]*entity.Order{
		{ID: uuid.New(), UserID: customerID, Status: entity.OrderCompleted},
		{ID: uuid.New(), UserID: customerID, Status: entity.OrderPending},
	}, nil).Once()

	rec := api.do(http.MethodGet, "/user/orders", customerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"status":"completed"`)
	assert.Contains(t, string(env.Data), `"status":"pending"`)
}

func TestOrderHandler_CompleteOrder(t *testing.T) {
	api, orderUC := createTestOrderHandler(t)
	orderID := uuid.New()
	completedAt := time.Now()

	orderUC.EXPECT().CompleteOrder(mock.Anything, orderID).Return(&usecase.CompleteOrderOutput{
		Order:             &entity.Order{ID: orderID, UserID: customerID, Total: 960, Status: entity.OrderCompleted, CompletedAt: &completedAt},
		PointsAwarded:     960,
		TierChanged:       true,
		CurrentTier:       &entity.Tier{ID: uuid.New(), Name: "Silver", MinSpend: 5000, PointsMultiplier: 1.25},
		ReferralCompleted: true,
	}, nil).Once()

	rec := api.do(http.MethodPost, "/admin/orders/"+orderID.String()+"/complete", adminToken, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.InDelta(t, 960.0, data["pointsAwarded"], 1e-9)
	assert.Equal(t, true, data["tierChanged"])
	assert.Equal(t, true, data["referralCompleted"])
	assert.Equal(t, "Silver", data["currentTier"].(map[string]any)["name"])
}

func TestOrderHandler_CompleteOrder_NotPending(t *testing.T) {
	api, orderUC := createTestOrderHandler(t)
	orderID := uuid.New()

	orderUC.EXPECT().CompleteOrder(mock.Anything, orderID).Return(nil, domainerrors.ErrOrderNotPending).Once()

	rec := api.do(http.MethodPost, "/admin/orders/"+orderID.String()+"/complete", adminToken, "")
	requireErrorCode(t, rec, http.StatusConflict, "ORDER_NOT_PENDING")

	rec = api.do(http.MethodPost, "/admin/orders/"+orderID.String()+"/complete", customerToken, "")
	requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
}
