package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmountDigits caps how many digits an amount field accepts.
const maxAmountDigits = 15

// Format renders d with grouped thousands and between minFrac and maxFrac
// fraction digits, rounding half-even. Format(d, 2, 6) matches the pattern
// "#,##0.00####" and Format(d, 0, 2) matches "#,##0.##".
func Format(d decimal.Decimal, minFrac, maxFrac int) string {
	s := d.RoundBank(int32(maxFrac)).StringFixed(int32(maxFrac))

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	for len(frac) > minFrac && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}

	var b strings.Builder
	if neg && strings.Trim(intPart+frac, "0") != "" {
		b.WriteByte('-')
	}
	b.WriteString(group(intPart))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeAmount filters a keystroke in an amount field. It keeps digits only,
// rejects the edit (returning prev) when more than 15 digits would remain, and
// clears the field when a multi-digit value starts with zero.
func SanitizeAmount(prev, next string) string {
	d := digitsOnly(next)
	if len(d) > maxAmountDigits {
		return prev
	}
	if len(d) > 1 && d[0] == '0' {
		return ""
	}
	return d
}

// Group renders the digits of text with thousands separators ("#,###").
// Leading zeros are dropped; text without digits yields "".
func Group(text string) string {
	d := digitsOnly(text)
	if d == "" {
		return ""
	}
	d = strings.TrimLeft(d, "0")
	if d == "" {
		return "0"
	}
	return group(d)
}
