package handler

import (
	"net/http"
	"strconv"

	"garageonline/internal/domain/model"
	"garageonline/internal/format"
	"garageonline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /vehicles の公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// *_display は整形済みの表示用文字列。計算には使わない。
type VehicleResponse struct {
	Code           int64           `json:"code"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Category       string          `json:"category"`
	Type           string          `json:"type"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	PriceDisplay   string          `json:"price_display"`
	Mileage        int64           `json:"mileage"`
	MileageDisplay string          `json:"mileage_display"`
	Year           int64           `json:"year"`
	Transmission   string          `json:"transmission"`
	Fuel           string          `json:"fuel"`
	Image          string          `json:"image"`
	Logo           string          `json:"logo,omitempty"`
}

type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Total int               `json:"total"`
}

// /vehicles, /vehicles/{code} を登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/vehicles", h.list)
	e.GET("/vehicles/:code", h.detail)
}

func (h *CatalogHandler) list(c echo.Context) error {
	out, err := h.uc.ListVehicles(c.Request().Context(), usecase.ListVehiclesInput{
		Q: c.QueryParam("q"),
	})
	if err != nil {
		return writeError(c, err)
	}

	items := make([]VehicleResponse, 0, len(out.Items))
	for _, v := range out.Items {
		items = append(items, toVehicleResponse(v))
	}

	return c.JSON(http.StatusOK, VehicleListResponse{
		Items: items,
		Total: out.Total,
	})
}

func (h *CatalogHandler) detail(c echo.Context) error {
	code, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid code"})
	}

	v, err := h.uc.GetVehicleDetail(c.Request().Context(), code)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toVehicleResponse(v))
}

func toVehicleResponse(v model.Vehicle) VehicleResponse {
	return VehicleResponse{
		Code:           v.Code,
		Brand:          v.Brand,
		Model:          v.Model,
		Category:       v.Category,
		Type:           format.VehicleType(v.Type),
		SalePrice:      v.SalePrice,
		PriceDisplay:   format.Price(v.SalePrice),
		Mileage:        v.Mileage,
		MileageDisplay: format.Mileage(v.Mileage),
		Year:           v.Year,
		Transmission:   v.Transmission,
		Fuel:           v.Fuel,
		Image:          v.Image,
		Logo:           v.Logo,
	}
}
