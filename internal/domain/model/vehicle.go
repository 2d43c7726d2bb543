package model

import "github.com/shopspring/decimal"

// 外部カタログ由来の車両レコード。取得後は読み取り専用。
type Vehicle struct {
	Code         int64           `json:"code"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Mileage      int64           `json:"mileage"`
	Year         int64           `json:"year"`
	Transmission string          `json:"transmission"`
	Fuel         string          `json:"fuel"`
	Image        string          `json:"image"`
	Logo         string          `json:"logo,omitempty"`
}
