package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a unit price with two decimal places.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatAmount renders an aggregate value with two decimal places and
// thousands separators, e.g. "1,234,567.89". Display-only; stored amounts
// keep full precision.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatShares renders a share count without trailing zeros, e.g. "10" or
// "2.5".
func FormatShares(d decimal.Decimal) string {
	return d.String()
}
