package server

import (
	"garageonline/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立ててルートを登録する。
func New(catalogH *handler.CatalogHandler, cartH *handler.CartHandler, checkoutH *handler.CheckoutHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, catalogH, cartH, checkoutH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
