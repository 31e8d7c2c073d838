package router

import (
	"tradeport/internal/adapter/api/handler"
	"tradeport/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOnboardingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	onboardingHandler := handler.GetOnboardingHandler()

	// Seller routes
	seller := e.Group("/v1/seller/onboarding")
	seller.Use(authMiddleware.Authenticate)
	seller.GET("/status", onboardingHandler.GetStatus)
	seller.POST("/steps", onboardingHandler.RecordStep)
	seller.POST("/submit", onboardingHandler.SubmitForReview)

	// Admin routes
	admin := e.Group("/v1/admin/sellers")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PATCH("/:userId/status", onboardingHandler.AdminSetSellerStatus)
}
