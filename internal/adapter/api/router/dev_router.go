package router

import (
	"tradeport/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}
	devTokenHandler := handler.GetDevTokenHandler()

	e.GET("/_dev/token/user", devTokenHandler.GenerateUserToken)
	e.GET("/_dev/token/seller", devTokenHandler.GenerateSellerToken)
	e.GET("/_dev/token/admin", devTokenHandler.GenerateAdminToken)
}
