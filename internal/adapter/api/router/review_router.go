package router

import (
	"tradeport/internal/adapter/api/handler"
	"tradeport/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	// Public routes
	e.GET("/v1/reviews", reviewHandler.ListProductReviews)

	// Protected routes (require authentication)
	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("/v1/reviews", reviewHandler.SubmitReview)
	authenticated.GET("/v1/users/me/reviews", reviewHandler.ListMyReviews)

	// Admin routes
	admin := e.Group("/v1/admin/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", reviewHandler.AdminListReviews)
	admin.PATCH("/:reviewId/status", reviewHandler.ModerateReview)
}
