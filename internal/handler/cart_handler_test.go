package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garageonline/internal/domain/model"
	"garageonline/internal/handler"
	infraRepo "garageonline/internal/infra/repository"
	"garageonline/internal/middleware"
	"garageonline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// =====================
// レスポンス確認用（any禁止）
// =====================

type cartErrorResponse struct {
	Error string `json:"error"`
}

type cartItemBody struct {
	Code      int64  `json:"code"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	UnitPrice string `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type cartBody struct {
	Items      []cartItemBody `json:"items"`
	TotalItems int64          `json:"total_items"`
	Total      string         `json:"total"`
}

func newCartTestServer() *echo.Echo {
	catalog := infraRepo.NewCatalogMemoryRepository([]model.Vehicle{
		{Code: 1, Brand: "Toyota", Model: "Corolla", SalePrice: decimal.RequireFromString("15000.00")},
		{Code: 2, Brand: "Honda", Model: "CR-V", SalePrice: decimal.RequireFromString("28000.50")},
	})
	carts := infraRepo.NewCartMemoryRepository()

	e := echo.New()
	handler.NewCartHandler(usecase.NewCartUsecase(catalog, carts)).RegisterRoutes(e)
	return e
}

// 固定セッションでリクエストを送る
func doCartRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "test-session"})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_GetCart_Empty(t *testing.T) {
	e := newCartTestServer()

	rec := doCartRequest(e, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body cartBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
	assert.Equal(t, int64(0), body.TotalItems)
}

func TestCartHandler_AddItem(t *testing.T) {
	e := newCartTestServer()

	rec := doCartRequest(e, http.MethodPost, "/cart/items", `{"code":1,"quantity":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body cartBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, len(body.Items))
	assert.Equal(t, "Toyota", body.Items[0].Brand)
	assert.Equal(t, int64(2), body.Items[0].Quantity)
	assert.Equal(t, int64(2), body.TotalItems)
	assert.Equal(t, "30000.00", body.Total)
}

// Test: 同一コードの再追加は数量が加算される
func TestCartHandler_AddItem_Merges(t *testing.T) {
	e := newCartTestServer()

	doCartRequest(e, http.MethodPost, "/cart/items", `{"code":1,"quantity":1}`)
	rec := doCartRequest(e, http.MethodPost, "/cart/items", `{"code":1,"quantity":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body cartBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, len(body.Items))
	assert.Equal(t, int64(4), body.Items[0].Quantity)
}

func TestCartHandler_AddItem_NotFound(t *testing.T) {
	e := newCartTestServer()

	rec := doCartRequest(e, http.MethodPost, "/cart/items", `{"code":99,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body cartErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body.Error)
}

func TestCartHandler_AddItem_InvalidQuantity(t *testing.T) {
	e := newCartTestServer()

	rec := doCartRequest(e, http.MethodPost, "/cart/items", `{"code":1,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body cartErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid quantity", body.Error)
}

func TestCartHandler_Clear(t *testing.T) {
	e := newCartTestServer()

	doCartRequest(e, http.MethodPost, "/cart/items", `{"code":1,"quantity":2}`)
	rec := doCartRequest(e, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doCartRequest(e, http.MethodGet, "/cart", "")
	var body cartBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
}

// Test: cookieが無ければミドルウェアが新規セッションを発行する
func TestCartHandler_IssuesSessionCookie(t *testing.T) {
	e := newCartTestServer()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var issued bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			issued = true
		}
	}
	assert.True(t, issued)
}
