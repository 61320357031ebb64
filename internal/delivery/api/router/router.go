// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CouponHandler   *handler.CouponHandler
	LoyaltyHandler  *handler.LoyaltyHandler
	OrderHandler    *handler.OrderHandler
	SettingsHandler *handler.SettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	couponHandler   *handler.CouponHandler
	loyaltyHandler  *handler.LoyaltyHandler
	orderHandler    *handler.OrderHandler
	settingsHandler *handler.SettingsHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		couponHandler:   params.CouponHandler,
		loyaltyHandler:  params.LoyaltyHandler,
		orderHandler:    params.OrderHandler,
		settingsHandler: params.SettingsHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.POST("/google/callback", r.authHandler.GoogleCallback)
	}

	// Guests get the offers open to first-time customers
	couponsGroup := e.Group("/coupons")
	couponsGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		couponsGroup.GET("/best", r.couponHandler.GetBestOffer)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/loyalty", r.loyaltyHandler.GetStatus)
		userGroup.POST("/loyalty", r.loyaltyHandler.PostAction)
		userGroup.GET("/loyalty/referral/qr", r.loyaltyHandler.GetReferralQR)

		userGroup.POST("/orders", r.orderHandler.Checkout)
		userGroup.GET("/orders", r.orderHandler.ListOrders)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/coupons", r.couponHandler.ListCoupons)
		adminGroup.POST("/coupons", r.couponHandler.CreateCoupon)
		adminGroup.POST("/coupons/:id/deactivate", r.couponHandler.DeactivateCoupon)

		adminGroup.GET("/loyalty/settings", r.settingsHandler.GetSettings)
		adminGroup.PUT("/loyalty/settings", r.settingsHandler.UpdateSettings)
		adminGroup.GET("/loyalty/tiers", r.settingsHandler.GetTiers)
		adminGroup.PUT("/loyalty/tiers", r.settingsHandler.ReplaceTiers)

		adminGroup.POST("/orders/:id/complete", r.orderHandler.CompleteOrder)
	}
}
