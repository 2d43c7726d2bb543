package model_test

import (
	"testing"

	"garageonline/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func vehicle(code int64, brand, vmodel, price string) model.Vehicle {
	return model.Vehicle{
		Code:      code,
		Brand:     brand,
		Model:     vmodel,
		SalePrice: decimal.RequireFromString(price),
	}
}

// Test: 同一コードは1行に数量加算
func TestCart_AddItem_MergesSameCode(t *testing.T) {
	var cart model.Cart
	v := vehicle(7, "Toyota", "Corolla", "15000.00")

	assert.NoError(t, cart.AddItem(v, 2))
	assert.NoError(t, cart.AddItem(v, 3))

	lines := cart.Lines()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, int64(5), lines[0].Quantity)
	assert.Equal(t, int64(5), cart.TotalItems())
	assert.Equal(t, "75000.00", cart.TotalAmount().StringFixed(2))
}

// Test: 明細は最初に追加した順のまま（加算で並びは変わらない）
func TestCart_AddItem_KeepsInsertionOrder(t *testing.T) {
	var cart model.Cart
	v1 := vehicle(1, "Toyota", "Corolla", "15000.00")
	v2 := vehicle(2, "Honda", "Civic", "18000.00")

	assert.NoError(t, cart.AddItem(v1, 1))
	assert.NoError(t, cart.AddItem(v2, 1))
	assert.NoError(t, cart.AddItem(v1, 1))

	lines := cart.Lines()
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, int64(1), lines[0].Code)
	assert.Equal(t, int64(2), lines[1].Code)
}

// Test: 数量0と負数は拒否、台帳は変化しない
func TestCart_AddItem_InvalidQuantity(t *testing.T) {
	var cart model.Cart
	v := vehicle(7, "Toyota", "Corolla", "15000.00")

	assert.ErrorIs(t, cart.AddItem(v, 0), model.ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(v, -1), model.ErrInvalidQuantity)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.TotalItems())
	assert.Equal(t, "0.00", cart.TotalAmount().StringFixed(2))
}

// Test: 追加後にカタログ側の価格が変わっても、カートの単価は追加時点のまま
func TestCart_AddItem_UnitPriceStableOnMerge(t *testing.T) {
	var cart model.Cart
	v := vehicle(7, "Toyota", "Corolla", "15000.00")

	assert.NoError(t, cart.AddItem(v, 1))

	v.SalePrice = decimal.RequireFromString("16000.00")
	assert.NoError(t, cart.AddItem(v, 1))

	lines := cart.Lines()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, "15000.00", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "30000.00", cart.TotalAmount().StringFixed(2))
}

// Test: 合計は常に 単価×数量 の総和
func TestCart_TotalAmount_Recomputed(t *testing.T) {
	var cart model.Cart

	assert.NoError(t, cart.AddItem(vehicle(1, "Toyota", "Corolla", "19999.99"), 2))
	assert.Equal(t, "39999.98", cart.TotalAmount().StringFixed(2))

	assert.NoError(t, cart.AddItem(vehicle(2, "Honda", "Civic", "1.01"), 5))
	assert.Equal(t, "40005.03", cart.TotalAmount().StringFixed(2))
	assert.Equal(t, int64(7), cart.TotalItems())
}

// Test: Clear後は空カート
func TestCart_Clear(t *testing.T) {
	var cart model.Cart

	assert.NoError(t, cart.AddItem(vehicle(1, "Toyota", "Corolla", "15000.00"), 2))
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, len(cart.Lines()))
	assert.Equal(t, int64(0), cart.TotalItems())
	assert.Equal(t, "0.00", cart.TotalAmount().StringFixed(2))
}

// Test: Snapshotは元のカートと独立
func TestCart_Snapshot_Isolated(t *testing.T) {
	var cart model.Cart

	assert.NoError(t, cart.AddItem(vehicle(1, "Toyota", "Corolla", "15000.00"), 1))

	snap := cart.Snapshot()
	assert.NoError(t, cart.AddItem(vehicle(1, "Toyota", "Corolla", "15000.00"), 4))

	assert.Equal(t, int64(1), snap.TotalItems())
	assert.Equal(t, int64(5), cart.TotalItems())
}
