package utils

import (
	"strings"

	"github.com/cxgw/currency_gateway_app/internal/currency"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a monetary amount as an en-US style currency string
// for the given canonical code: symbol prefix, thousands grouping and a fixed
// two-digit fraction. Example: 1234.5 with "USD" returns "$1,234.56" style
// output ("$1,234.50").
func FormatCurrency(amount decimal.Decimal, code string) string {
	fixed := amount.Round(2).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(currency.Symbol(code))
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
