package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// チェックアウト確定時のカートのスナップショット。作成後は不変。
type Invoice struct {
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	Lines        []InvoiceLine   `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}

// 請求書の1行。Subtotalは丸め済みの 単価×数量。
type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
