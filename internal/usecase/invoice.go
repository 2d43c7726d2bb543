package usecase

import (
	"time"

	"garageonline/internal/domain/model"

	"github.com/shopspring/decimal"
)

// BuildInvoice はカートのスナップショットから請求書を組み立てる純関数。
// 前提: customerNameは空でない（呼び出し側が検証する）。
// 各行の小計は銀行丸めで2桁に揃え、合計は丸め済み小計の総和とする。
// 行の並びはカートの追加順のまま。
func BuildInvoice(cart model.Cart, customerName string, date time.Time) model.Invoice {
	lines := cart.Lines()

	invLines := make([]model.InvoiceLine, 0, len(lines))
	total := decimal.Zero

	for _, l := range lines {
		subtotal := l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)).RoundBank(2)

		invLines = append(invLines, model.InvoiceLine{
			Description: l.Brand + " " + l.Model,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    subtotal,
		})

		total = total.Add(subtotal)
	}

	return model.Invoice{
		CustomerName: customerName,
		Date:         date,
		Lines:        invLines,
		Total:        total,
	}
}
