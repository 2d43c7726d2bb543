package format

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// 表示用の整形。金額の計算はdecimalのまま行い、文字列化はここに閉じ込める。

var printer = message.NewPrinter(language.AmericanEnglish)

// $12,345.67 形式（表示通貨はUSD固定）
func Price(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// 12,345 km 形式
func Mileage(km int64) string {
	return printer.Sprintf("%v km", number.Decimal(km))
}

// tipoフィールドから飾り記号（絵文字など）を除いた表示用文字列
func VehicleType(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.In(r, unicode.So, unicode.Sk, unicode.Cf) || r == 0xFE0F {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
