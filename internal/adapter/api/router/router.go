package router

import (
	"tradeport/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupQuotationRouter(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	SetupOnboardingRouter(e, authMiddleware, adminMiddleware)
	SetupReviewRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
