package validator

import (
	"regexp"
	"strings"

	"garageonline/internal/usecase"
)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// 支払いフォームの入力を検証
func (v *checkoutValidator) ValidateCheckout(customerName string, cardNumber string) error {
	// 必須チェック
	if strings.TrimSpace(customerName) == "" {
		return usecase.ErrMissingCustomerName
	}

	card := strings.TrimSpace(cardNumber)
	if card == "" {
		return usecase.ErrMissingCardNumber
	}

	// カード番号形式
	if !isCardLike(card) {
		return usecase.ErrInvalidCardNumber
	}

	return nil
}

// 簡易カード番号形式をチェック（数字と区切りのみ、12〜23桁相当）
func isCardLike(s string) bool {
	re := regexp.MustCompile(`^[0-9][0-9 -]{10,21}[0-9]$`)
	return re.MatchString(s)
}
