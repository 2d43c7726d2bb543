package handler

import (
	"fmt"
	"net/http"

	"garageonline/internal/middleware"
	"garageonline/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name"`
	CardNumber   string `json:"card_number"`
}

// /checkout を登録
func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")
	g.Use(middleware.CartSession())

	g.POST("", h.checkout)
}

// 成功すると請求書PDFをダウンロードとして返す。
func (h *CheckoutHandler) checkout(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), sessionID, usecase.CheckoutInput{
		CustomerName: req.CustomerName,
		CardNumber:   req.CardNumber,
	})
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, out.Filename))
	return c.Blob(http.StatusOK, "application/pdf", out.Document)
}
