package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderTestNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

type orderServiceFixtures struct {
	service      *orderService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	couponRepo   *mockRepo.MockCouponRepository
	orderRepo    *mockRepo.MockOrderRepository
	loyaltyRepo  *mockRepo.MockLoyaltyRepository
	referralRepo *mockRepo.MockReferralRepository
	settings     *mockUsecase.MockSettingsUsecase
	metrics      *mockSvc.MockLoyaltyMetrics
	publisher    *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	settings := mockUsecase.NewMockSettingsUsecase(t)
	metrics := mockSvc.NewMockLoyaltyMetrics(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().CouponRepo().Return(couponRepo).Maybe()
	factory.EXPECT().OrderRepo().Return(orderRepo).Maybe()
	factory.EXPECT().LoyaltyRepo().Return(loyaltyRepo).Maybe()
	factory.EXPECT().ReferralRepo().Return(referralRepo).Maybe()

	svc := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		CouponRepo:  couponRepo,
		OrderRepo:   orderRepo,
		LoyaltyRepo: loyaltyRepo,
		Settings:    settings,
		Metrics:     metrics,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	}).(*orderService)
	svc.now = func() time.Time { return orderTestNow }

	return orderServiceFixtures{
		service:      svc,
		txManager:    txManager,
		factory:      factory,
		couponRepo:   couponRepo,
		orderRepo:    orderRepo,
		loyaltyRepo:  loyaltyRepo,
		referralRepo: referralRepo,
		settings:     settings,
		metrics:      metrics,
		publisher:    publisher,
	}
}

func orderCoupon(code string, discountType entity.DiscountType, value float64) *entity.Coupon {
	return &entity.Coupon{
		ID:             uuid.New(),
		Code:           code,
		DiscountType:   discountType,
		DiscountValue:  value,
		ValidFrom:      orderTestNow.Add(-time.Hour),
		ValidUntil:     orderTestNow.Add(time.Hour),
		TargetAudience: entity.AudienceAll,
		IsActive:       true,
	}
}

func (fx orderServiceFixtures) expectSegment(t *testing.T, ctx context.Context, userID uuid.UUID) {
	t.Helper()

	fx.settings.EXPECT().GetTierCatalog(ctx).Return(testCatalog(t), nil)
	fx.orderRepo.EXPECT().CountCompletedByUser(ctx, userID).Return(int64(2), nil)
	fx.loyaltyRepo.EXPECT().FindAccountByUserID(ctx, userID).Return(nil, repository.ErrLoyaltyAccountNotFound)
}

func TestOrderService_Checkout_WithoutCoupon(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{UserID: userID, Subtotal: 1000, ShippingCost: 60})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.InDelta(t, 1060.0, order.Total, 1e-9)
	assert.Nil(t, order.CouponID)
}

func TestOrderService_Checkout_ExplicitCouponIncrementsUsageInSameTransaction(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	limit := int64(10)
	coupon := orderCoupon("FLAT150", entity.DiscountFixed, 150)
	coupon.UsageLimit = &limit

	fx.expectSegment(t, ctx, userID)
	fx.couponRepo.EXPECT().FindByCode(ctx, "FLAT150").Return(coupon, nil)
	expectTx(fx.txManager, fx.factory)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, coupon.ID, orderTestNow).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.metrics.EXPECT().CouponRedeemed("FLAT150").Return()

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{
		UserID:       userID,
		Subtotal:     1000,
		ShippingCost: 60,
		CouponCode:   " flat150",
	})
	require.NoError(t, err)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, coupon.ID, *order.CouponID)
	assert.InDelta(t, 150.0, order.Discount, 1e-9)
	assert.InDelta(t, 910.0, order.Total, 1e-9)
}

func TestOrderService_Checkout_AutoApplyPicksBestOffer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	shipping := orderCoupon("FREESHIP", entity.DiscountFreeShipping, 0)
	shipping.AutoApply = true
	fixed := orderCoupon("FLAT20", entity.DiscountFixed, 20)
	fixed.AutoApply = true

	fx.expectSegment(t, ctx, userID)
	fx.couponRepo.EXPECT().
		ListAutoApplyCandidates(ctx, 500.0, orderTestNow).
		Return([]*entity.Coupon{fixed, shipping}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, shipping.ID, orderTestNow).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().CouponRedeemed("FREESHIP").Return()

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{UserID: userID, Subtotal: 500, ShippingCost: 60, AutoApply: true})
	require.NoError(t, err)
	assert.Equal(t, "FREESHIP", order.CouponCode)
	assert.InDelta(t, 500.0, order.Total, 1e-9)
}

func TestOrderService_Checkout_UsageExhaustedRollsBack(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	coupon := orderCoupon("LAST1", entity.DiscountFixed, 50)

	fx.expectSegment(t, ctx, userID)
	fx.couponRepo.EXPECT().FindByCode(ctx, "LAST1").Return(coupon, nil)
	expectTx(fx.txManager, fx.factory)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, coupon.ID, orderTestNow).Return(repository.ErrCouponUsageExhausted)

	_, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{UserID: userID, Subtotal: 300, CouponCode: "LAST1"})
	requireErrorCode(t, err, "COUPON_USAGE_EXHAUSTED")
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_CouponBelowMinimum(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	minimum := 1000.0
	coupon := orderCoupon("BIG", entity.DiscountFixed, 100)
	coupon.MinOrderValue = &minimum

	fx.expectSegment(t, ctx, userID)
	fx.couponRepo.EXPECT().FindByCode(ctx, "BIG").Return(coupon, nil)

	_, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{UserID: userID, Subtotal: 999, CouponCode: "BIG"})
	requireErrorCode(t, err, "COUPON_NOT_APPLICABLE")
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_UnknownCoupon(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectSegment(t, ctx, userID)
	fx.couponRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{UserID: userID, Subtotal: 100, CouponCode: "nope"})
	requireErrorCode(t, err, "COUPON_NOT_FOUND")
}

func TestOrderService_Checkout_RejectsEmptySubtotal(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{UserID: uuid.New(), Subtotal: 0})
	requireErrorCode(t, err, "VALIDATION_ERROR")
}

func pendingOrder(userID uuid.UUID, total float64) *entity.Order {
	return &entity.Order{
		ID:       uuid.New(),
		UserID:   userID,
		Subtotal: total,
		Total:    total,
		Status:   entity.OrderPending,
	}
}

func TestOrderService_CompleteOrder_AwardsPointsAndChangesTier(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	catalog := testCatalog(t)
	userID := uuid.New()
	order := pendingOrder(userID, 1500)
	account := &entity.LoyaltyAccount{
		ID:             uuid.New(),
		UserID:         userID,
		TotalPoints:    4000,
		LifetimePoints: 4000,
		LifetimeSpent:  4000,
		TierID:         &catalog[0].ID,
	}

	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	fx.settings.EXPECT().GetTierCatalog(ctx).Return(catalog, nil)
	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkCompleted(ctx, order.ID, orderTestNow).Return(nil)
	fx.loyaltyRepo.EXPECT().FindAccountByUserIDForUpdate(ctx, userID).Return(account, nil)
	fx.loyaltyRepo.EXPECT().CreditPoints(ctx, account.ID, int64(1500), 1500.0).Return(nil)
	fx.loyaltyRepo.EXPECT().
		InsertTransaction(ctx, mock.MatchedBy(func(txn *entity.PointsTransaction) bool {
			return txn.Type == entity.TransactionEarn && txn.Points == 1500 && txn.OrderID != nil && *txn.OrderID == order.ID
		})).
		Return(nil)
	fx.loyaltyRepo.EXPECT().UpdateTier(ctx, account.ID, &catalog[1].ID).Return(nil)
	fx.referralRepo.EXPECT().FindPendingByReferredID(ctx, userID).Return(nil, repository.ErrReferralNotFound)
	fx.metrics.EXPECT().PointsAwarded(int64(1500)).Return()
	fx.metrics.EXPECT().TierChanged("Silver").Return()
	fx.publisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.MatchedBy(func(e *service.LoyaltyEvent) bool { return e.Type == service.EventPointsEarned })).
		Return(nil)
	fx.publisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.MatchedBy(func(e *service.LoyaltyEvent) bool {
			return e.Type == service.EventTierChanged && e.TierName == "Silver"
		})).
		Return(nil)

	out, err := fx.service.CompleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), out.PointsAwarded)
	assert.True(t, out.TierChanged)
	require.NotNil(t, out.CurrentTier)
	assert.Equal(t, "Silver", out.CurrentTier.Name)
	assert.False(t, out.ReferralCompleted)
	assert.Equal(t, entity.OrderCompleted, out.Order.Status)
	assert.Equal(t, int64(5500), account.TotalPoints)
	assert.True(t, account.Balanced())
}

func TestOrderService_CompleteOrder_AppliesTierMultiplier(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	catalog := testCatalog(t)
	userID := uuid.New()
	order := pendingOrder(userID, 1000)
	account := &entity.LoyaltyAccount{ID: uuid.New(), UserID: userID, LifetimeSpent: 6000, TierID: &catalog[1].ID}

	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	fx.settings.EXPECT().GetTierCatalog(ctx).Return(catalog, nil)
	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkCompleted(ctx, order.ID, orderTestNow).Return(nil)
	fx.loyaltyRepo.EXPECT().FindAccountByUserIDForUpdate(ctx, userID).Return(account, nil)
	fx.loyaltyRepo.EXPECT().CreditPoints(ctx, account.ID, int64(1250), 1000.0).Return(nil)
	fx.loyaltyRepo.EXPECT().InsertTransaction(ctx, mock.Anything).Return(nil)
	fx.referralRepo.EXPECT().FindPendingByReferredID(ctx, userID).Return(nil, repository.ErrReferralNotFound)
	fx.metrics.EXPECT().PointsAwarded(int64(1250)).Return()
	fx.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(nil)

	out, err := fx.service.CompleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), out.PointsAwarded)
	assert.False(t, out.TierChanged)
	fx.loyaltyRepo.AssertNotCalled(t, "UpdateTier", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CompleteOrder_SettlesReferralOnFirstOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	catalog := testCatalog(t)
	referredID := uuid.New()
	referrerID := uuid.New()
	order := pendingOrder(referredID, 200)
	referral := &entity.Referral{
		ID:            uuid.New(),
		ReferrerID:    referrerID,
		ReferredID:    referredID,
		Code:          "REFCODE1",
		Status:        entity.ReferralPending,
		ReferrerBonus: 500,
		ReferredBonus: 250,
	}
	referrerAccount := &entity.LoyaltyAccount{ID: uuid.New(), UserID: referrerID, TotalPoints: 100, LifetimePoints: 100}
	referredAfterOrder := &entity.LoyaltyAccount{ID: uuid.New(), UserID: referredID, TotalPoints: 200, LifetimePoints: 200, LifetimeSpent: 200}

	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	fx.settings.EXPECT().GetTierCatalog(ctx).Return(catalog, nil)
	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkCompleted(ctx, order.ID, orderTestNow).Return(nil)

	// First access creates the buyer's account, the bonus credit then re-reads it.
	fx.loyaltyRepo.EXPECT().FindAccountByUserIDForUpdate(ctx, referredID).Return(nil, repository.ErrLoyaltyAccountNotFound).Once()
	fx.loyaltyRepo.EXPECT().CreateAccount(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).Return(nil)
	fx.loyaltyRepo.EXPECT().CreditPoints(ctx, mock.AnythingOfType("uuid.UUID"), int64(200), 200.0).Return(nil)
	fx.loyaltyRepo.EXPECT().
		InsertTransaction(ctx, mock.MatchedBy(func(txn *entity.PointsTransaction) bool { return txn.Type == entity.TransactionEarn })).
		Return(nil)

	fx.referralRepo.EXPECT().FindPendingByReferredID(ctx, referredID).Return(referral, nil)
	fx.referralRepo.EXPECT().MarkCompleted(ctx, referral.ID, orderTestNow).Return(nil)

	fx.loyaltyRepo.EXPECT().FindAccountByUserIDForUpdate(ctx, referrerID).Return(referrerAccount, nil)
	fx.loyaltyRepo.EXPECT().CreditPoints(ctx, referrerAccount.ID, int64(500), 0.0).Return(nil)
	fx.loyaltyRepo.EXPECT().FindAccountByUserIDForUpdate(ctx, referredID).Return(referredAfterOrder, nil).Once()
	fx.loyaltyRepo.EXPECT().CreditPoints(ctx, referredAfterOrder.ID, int64(250), 0.0).Return(nil)
	fx.loyaltyRepo.EXPECT().
		InsertTransaction(ctx, mock.MatchedBy(func(txn *entity.PointsTransaction) bool { return txn.Type == entity.TransactionReferral })).
		Return(nil).
		Times(2)

	fx.metrics.EXPECT().PointsAwarded(int64(200)).Return()
	fx.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(nil).Times(3)

	out, err := fx.service.CompleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, out.ReferralCompleted)
	assert.Equal(t, int64(200), out.PointsAwarded)
	assert.Equal(t, int64(600), referrerAccount.TotalPoints)
	assert.Equal(t, int64(450), referredAfterOrder.TotalPoints)
	assert.Equal(t, entity.ReferralCompleted, referral.Status)
}

func TestOrderService_CompleteOrder_DisabledProgramTracksSpendOnly(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	catalog := testCatalog(t)
	userID := uuid.New()
	order := pendingOrder(userID, 800)
	account := &entity.LoyaltyAccount{ID: uuid.New(), UserID: userID, TierID: &catalog[0].ID}
	settings := testSettings()
	settings.Enabled = false

	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(settings, nil)
	fx.settings.EXPECT().GetTierCatalog(ctx).Return(catalog, nil)
	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkCompleted(ctx, order.ID, orderTestNow).Return(nil)
	fx.loyaltyRepo.EXPECT().FindAccountByUserIDForUpdate(ctx, userID).Return(account, nil)
	fx.loyaltyRepo.EXPECT().CreditPoints(ctx, account.ID, int64(0), 800.0).Return(nil)

	out, err := fx.service.CompleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.PointsAwarded)
	assert.InDelta(t, 800.0, account.LifetimeSpent, 1e-9)
	fx.loyaltyRepo.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything)
	fx.referralRepo.AssertNotCalled(t, "FindPendingByReferredID", mock.Anything, mock.Anything)
}

func TestOrderService_CompleteOrder_NotPending(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := pendingOrder(uuid.New(), 100)
	order.Status = entity.OrderCompleted

	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	fx.settings.EXPECT().GetTierCatalog(ctx).Return(testCatalog(t), nil)
	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CompleteOrder(ctx, order.ID)
	requireErrorCode(t, err, "ORDER_NOT_PENDING")
}

func TestOrderService_CompleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.settings.EXPECT().GetLoyaltySettings(ctx).Return(testSettings(), nil)
	fx.settings.EXPECT().GetTierCatalog(ctx).Return(testCatalog(t), nil)
	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.CompleteOrder(ctx, id)
	requireErrorCode(t, err, "ORDER_NOT_FOUND")
}
