// Package valueobject contains immutable value types shared across the domain.
package valueobject

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is the BRL symbol followed by a non-breaking space, as rendered by pt-BR locales.
const CurrencyPrefix = "R$\u00a0"

// FormatCurrency renders an amount as pt-BR BRL, e.g. "R$\u00a01.234,56".
// A nil amount renders as zero.
func FormatCurrency(amount *decimal.Decimal) string {
	value := decimal.Zero
	if amount != nil {
		value = amount.Round(2)
	}

	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Abs()
	}

	fixed := value.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + CurrencyPrefix + groupThousands(intPart, ".") + "," + fracPart
}

// FormatCurrencyValue is FormatCurrency for a non-pointer amount.
func FormatCurrencyValue(amount decimal.Decimal) string {
	return FormatCurrency(&amount)
}

// FormatSignedPercent renders a percentage with an explicit "+" for positive values, e.g. "+12.5%".
func FormatSignedPercent(value float64, decimals int) string {
	rounded := roundTo(value, decimals)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	s := strconv.FormatFloat(rounded, 'f', decimals, 64)
	if rounded > 0 {
		s = "+" + s
	}
	return s + "%"
}

// FormatPercent renders a percentage without an explicit sign, e.g. "85%".
func FormatPercent(value float64, decimals int) string {
	rounded := roundTo(value, decimals)
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', decimals, 64) + "%"
}

func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
