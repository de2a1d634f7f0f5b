package numeral

import (
	"strings"

	"numconv/internal/domain"
)

// digitValue returns the value of an ASCII digit in any of the supported
// bases, or -1.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	}
	return -1
}

// legal reports whether r is a digit of base.
func legal(r rune, base domain.NumeralBase) bool {
	v := digitValue(r)
	return v >= 0 && v < base.Radix()
}

// Sanitize returns text with every character that is not a digit of base
// removed. Order is preserved and hexadecimal letters are uppercased.
// Unknown bases yield "".
func Sanitize(text string, base domain.NumeralBase) string {
	if !base.Valid() {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if legal(r, base) {
			b.WriteRune(r)
		}
	}
	if base == domain.Hexadecimal {
		return strings.ToUpper(b.String())
	}
	return b.String()
}
