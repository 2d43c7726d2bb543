package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"garageonline/internal/domain/model"
	repo "garageonline/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// 車両はカタログから解決してから台帳に渡す。
type CartUsecase struct {
	catalogRepo repo.CatalogRepository
	cartRepo    repo.CartRepository
}

// DI
func NewCartUsecase(
	catalogRepo repo.CatalogRepository,
	cartRepo repo.CartRepository,
) *CartUsecase {
	return &CartUsecase{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
	}
}

// unit_price は追加時点の価格を返す。
type CartItemResponse struct {
	Code      int64           `json:"code"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	Total      decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	Code     int64
	Quantity int64
}

// カート取得（無ければ空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	snap, err := u.cartRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}

	return toCartResponse(snap), nil
}

// カートに追加（同一コードは数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}
	if in.Code <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid code")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 車両チェック（カタログに無いコードは追加できない）
	v, err := u.catalogRepo.FindByCode(ctx, in.Code)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	snap, err := u.cartRepo.AddItem(ctx, sessionID, v, in.Quantity)
	if errors.Is(err, model.ErrInvalidQuantity) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}

	return toCartResponse(snap), nil
}

// 全明細を削除
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	if err := u.cartRepo.Clear(ctx, sessionID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}

	return toCartResponse(model.Cart{}), nil
}

// スナップショットからCartResponseを作る。合計は常に再計算。
func toCartResponse(c model.Cart) CartResponse {
	lines := c.Lines()

	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			Code:      l.Code,
			Brand:     l.Brand,
			Model:     l.Model,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)),
		})
	}

	return CartResponse{
		Items:      items,
		TotalItems: c.TotalItems(),
		Total:      c.TotalAmount(),
	}
}
