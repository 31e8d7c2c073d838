package router

import (
	"tradeport/internal/adapter/api/handler"
	"tradeport/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupQuotationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	quotationHandler := handler.GetQuotationHandler()

	// Guests may request quotes; an actor is attached when a token is present.
	e.POST("/v1/quotations", quotationHandler.CreateQuotation,
		authMiddleware.OptionalAuthenticate, rateLimitMiddleware.LimitGuests)

	// Buyer routes
	buyer := e.Group("/v1/quotations")
	buyer.Use(authMiddleware.Authenticate)
	buyer.GET("", quotationHandler.ListMyQuotations)
	buyer.POST("/:id/accept", quotationHandler.BuyerAccept)
	buyer.POST("/:id/reject", quotationHandler.BuyerReject)

	// Seller routes
	seller := e.Group("/v1/seller/quotations")
	seller.Use(authMiddleware.Authenticate)
	seller.GET("", quotationHandler.ListSellerQuotations)
	seller.POST("/:id/respond", quotationHandler.SellerRespond)

	// Admin routes
	admin := e.Group("/v1/admin/quotations")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", quotationHandler.AdminListQuotations)
	admin.GET("/stats", quotationHandler.AdminQuotationStats)
}
