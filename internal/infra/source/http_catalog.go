package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"garageonline/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 取得元JSONの形（スペイン語snake_caseキー）をそのまま受ける
type vehicleJSON struct {
	Codigo      int64           `json:"codigo"`
	Marca       string          `json:"marca"`
	Modelo      string          `json:"modelo"`
	Categoria   string          `json:"categoria"`
	Tipo        string          `json:"tipo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Kilometraje int64           `json:"kilometraje"`
	Anio        int64           `json:"año"`
	Transmision string          `json:"transmision"`
	Combustible string          `json:"combustible"`
	Imagen      string          `json:"imagen"`
	Logo        string          `json:"logo"`
}

// HTTPCatalogSource は車両カタログをHTTP GETで取得する。リトライはしない。
type HTTPCatalogSource struct {
	url    string
	client *http.Client
}

func NewHTTPCatalogSource(url string, timeout time.Duration) *HTTPCatalogSource {
	return &HTTPCatalogSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch は全件取得して内部モデルへ変換する。
// 失敗時は部分結果を返さない（全件成功かエラーのどちらか）。
func (s *HTTPCatalogSource) Fetch(ctx context.Context) ([]model.Vehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", res.StatusCode)
	}

	var rows []vehicleJSON
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("catalog fetch: decode: %w", err)
	}

	vehicles := make([]model.Vehicle, 0, len(rows))
	for _, r := range rows {
		vehicles = append(vehicles, model.Vehicle{
			Code:         r.Codigo,
			Brand:        r.Marca,
			Model:        r.Modelo,
			Category:     r.Categoria,
			Type:         r.Tipo,
			SalePrice:    r.PrecioVenta,
			Mileage:      r.Kilometraje,
			Year:         r.Anio,
			Transmission: r.Transmision,
			Fuel:         r.Combustible,
			Image:        r.Imagen,
			Logo:         r.Logo,
		})
	}
	return vehicles, nil
}
