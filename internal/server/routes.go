package server

import (
	"garageonline/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, catalogH *handler.CatalogHandler, cartH *handler.CartHandler, checkoutH *handler.CheckoutHandler) {
	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
}
