package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 数量が1未満
var ErrInvalidQuantity = errors.New("invalid quantity")

// カートの明細
// 追加時点の価格を必ず保存。
type CartLine struct {
	Code      int64           `json:"code"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image"`
	Logo      string          `json:"logo,omitempty"`
	Quantity  int64           `json:"quantity"`
}

// Cart はセッション単位のカート台帳。
// 明細は最初に追加した順を保ち、同一コードは1行に数量加算でまとめる。
type Cart struct {
	lines []CartLine
}

// 追加。同一コードは数量加算（単価は据え置き）、新規は末尾に追記。
// 数量が1未満なら ErrInvalidQuantity を返し、台帳は変更しない。
func (c *Cart) AddItem(v Vehicle, qty int64) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.lines {
		if c.lines[i].Code == v.Code {
			c.lines[i].Quantity += qty
			return nil
		}
	}

	c.lines = append(c.lines, CartLine{
		Code:      v.Code,
		Brand:     v.Brand,
		Model:     v.Model,
		UnitPrice: v.SalePrice,
		Image:     v.Image,
		Logo:      v.Logo,
		Quantity:  qty,
	})
	return nil
}

// 全明細を削除
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// 明細のコピーを返す
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// 独立したコピーを返す
func (c *Cart) Snapshot() Cart {
	return Cart{lines: c.Lines()}
}

// 合計点数（保存せず毎回再計算）
func (c *Cart) TotalItems() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// 合計金額（保存せず毎回再計算）
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}
