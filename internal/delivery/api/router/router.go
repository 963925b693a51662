// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/router/handler"
	deliverymiddleware "estate/internal/delivery/middleware"
	"estate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	AdminHandler    *handler.AdminHandler
	PropertyHandler *handler.PropertyHandler
	NewsHandler     *handler.NewsHandler
	ContactHandler  *handler.ContactHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *deliverymiddleware.IPRateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	adminHandler    *handler.AdminHandler
	propertyHandler *handler.PropertyHandler
	newsHandler     *handler.NewsHandler
	contactHandler  *handler.ContactHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *deliverymiddleware.IPRateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		adminHandler:    params.AdminHandler,
		propertyHandler: params.PropertyHandler,
		newsHandler:     params.NewsHandler,
		contactHandler:  params.ContactHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimiter:     params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	bearer := r.authMiddleware.Authenticate
	sellerOnly := []echo.MiddlewareFunc{bearer, r.authMiddleware.RequireRole(entity.RoleSeller)}
	staffOnly := []echo.MiddlewareFunc{bearer, r.authMiddleware.RequireRole(entity.StaffRoles...)}

	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Auth routes, rate limited per client IP
	authGroup := e.Group("/auth", r.rateLimiter.Handle)
	{
		authGroup.POST("/register/user", r.authHandler.RegisterUser)
		authGroup.POST("/register/seller", r.authHandler.RegisterSeller)
		authGroup.POST("/verify", r.authHandler.Verify)
		authGroup.POST("/otp/resend", r.authHandler.ResendOTP)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.PUT("/password", r.authHandler.UpdatePassword, bearer)
	}

	// User routes that require authentication
	userGroup := e.Group("/users", bearer)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PATCH("/profile", r.profileHandler.UpdateProfile)
	}

	// Back-office routes
	adminGroup := e.Group("/admin", staffOnly...)
	{
		adminGroup.GET("/users/:id", r.adminHandler.GetAccount)
		adminGroup.GET("/sellers", r.adminHandler.ListSellers)
		adminGroup.GET("/sellers/:id", r.adminHandler.GetSeller)
		adminGroup.PATCH("/sellers/:id/status", r.adminHandler.UpdateSellerStatus)
		adminGroup.DELETE("/sellers/:id", r.adminHandler.DeleteSeller)
	}

	// Property routes mix public discovery, seller listings and user bookmarks
	propertyGroup := e.Group("/properties")
	{
		propertyGroup.GET("", r.propertyHandler.Search)
		propertyGroup.GET("/trending", r.propertyHandler.Trending)
		propertyGroup.GET("/nearby", r.propertyHandler.Nearby)
		propertyGroup.GET("/seller/:sellerId", r.propertyHandler.ListBySeller)
		propertyGroup.GET("/:id", r.propertyHandler.Get)
		propertyGroup.GET("/:id/qr", r.propertyHandler.ShareQR)

		propertyGroup.POST("", r.propertyHandler.Create, sellerOnly...)
		propertyGroup.GET("/me", r.propertyHandler.Portfolio, sellerOnly...)
		propertyGroup.PATCH("/:id", r.propertyHandler.Update, sellerOnly...)
		propertyGroup.DELETE("/:id", r.propertyHandler.Delete, sellerOnly...)

		propertyGroup.GET("/saved", r.propertyHandler.ListSaved, bearer)
		propertyGroup.POST("/:id/save", r.propertyHandler.Save, bearer)
		propertyGroup.DELETE("/:id/save", r.propertyHandler.Unsave, bearer)
	}

	newsGroup := e.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.List)
		newsGroup.GET("/recent", r.newsHandler.Recent)
		newsGroup.GET("/:id", r.newsHandler.Get)

		newsGroup.POST("", r.newsHandler.Create, staffOnly...)
		newsGroup.PUT("/:id", r.newsHandler.Update, staffOnly...)
		newsGroup.PATCH("/:id/status", r.newsHandler.UpdateStatus, staffOnly...)
		newsGroup.DELETE("/:id", r.newsHandler.Delete, staffOnly...)
	}

	contactGroup := e.Group("/contacts")
	{
		contactGroup.POST("", r.contactHandler.Create)

		contactGroup.GET("", r.contactHandler.List, staffOnly...)
		contactGroup.GET("/:id", r.contactHandler.Get, staffOnly...)
		contactGroup.PATCH("/:id/read", r.contactHandler.UpdateReadStatus, staffOnly...)
	}
}
