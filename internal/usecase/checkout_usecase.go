package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"garageonline/internal/domain/model"
	repo "garageonline/internal/repository"
)

var (
	// 支払いフォームの入力が不正
	ErrMissingCustomerName = errors.New("customer name required")
	ErrMissingCardNumber   = errors.New("card number required")
	ErrInvalidCardNumber   = errors.New("invalid card number")
)

// 支払いフォームの入力を検証する約束
type CheckoutValidator interface {
	ValidateCheckout(customerName string, cardNumber string) error
}

// Invoice値から配布用ドキュメントを作る約束（PDFなど）
type InvoiceRenderer interface {
	Render(inv model.Invoice) ([]byte, error)
	Filename(inv model.Invoice) string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はチェックアウトの一連の流れだけを持つ。
// 独自の状態は持たない（検証 → 請求書作成 → 描画 → カートを空にする）。
type CheckoutUsecase struct {
	cartRepo  repo.CartRepository
	validator CheckoutValidator
	renderer  InvoiceRenderer
	clock     Clock
}

// DI
func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	validator CheckoutValidator,
	renderer InvoiceRenderer,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo:  cartRepo,
		validator: validator,
		renderer:  renderer,
		clock:     clock,
	}
}

type CheckoutInput struct {
	CustomerName string
	CardNumber   string
}

type CheckoutOutput struct {
	Invoice  model.Invoice
	Document []byte
	Filename string
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, sessionID string, in CheckoutInput) (CheckoutOutput, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	// 空カートのチェックアウトは拒否
	snap, err := u.cartRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	if snap.IsEmpty() {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// 支払いフォームのチェック
	if err := u.validator.ValidateCheckout(in.CustomerName, in.CardNumber); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv := BuildInvoice(snap, strings.TrimSpace(in.CustomerName), u.clock.Now())

	// 描画に失敗したらカートはそのまま残す
	doc, err := u.renderer.Render(inv)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "render error")
	}

	// 成功した場合のみカートを空にする
	if err := u.cartRepo.Clear(ctx, sessionID); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}

	return CheckoutOutput{
		Invoice:  inv,
		Document: doc,
		Filename: u.renderer.Filename(inv),
	}, nil
}
