package pkg

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is the symbol used by FormatPrice.
const DefaultCurrencySymbol = "₪"

// FormatNumber renders a decimal with thousand separators and a fixed number
// of fraction digits, e.g. 322781 -> "322,781.00".
func FormatNumber(value decimal.Decimal, decimals int32) string {
	fixed := value.StringFixed(decimals)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatPrice renders a price with the currency symbol, e.g. "₪322,781.00".
func FormatPrice(price decimal.Decimal) string {
	return DefaultCurrencySymbol + FormatNumber(price, 2)
}
