package numeral_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"numconv/internal/domain"
	"numconv/internal/numeral"
)

func TestSanitize_PerBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		base domain.NumeralBase
		want string
	}{
		{"decimal keeps digits", "12a3-4.5", domain.Decimal, "12345"},
		{"decimal drops unicode digits", "1٣2", domain.Decimal, "12"},
		{"binary keeps 0 and 1", "10201x1", domain.Binary, "10011"},
		{"octal drops 8 and 9", "0789123", domain.Octal, "07123"},
		{"hex uppercases", "de:ad-BEef!", domain.Hexadecimal, "DEADBEEF"},
		{"hex drops g-z", "xyz0fG", domain.Hexadecimal, "0F"},
		{"empty stays empty", "", domain.Decimal, ""},
		{"all illegal", "  +-_ ", domain.Binary, ""},
		{"unknown base", "123", domain.NumeralBase(7), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeral.Sanitize(tt.in, tt.base))
		})
	}
}

var sanitizeSamples = []string{
	"",
	"hello world 42",
	"0x7fFF_ffff",
	"  1010 1111  ",
	"€12,345.67",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
	"\t\n007\r",
}

func TestSanitize_Idempotent(t *testing.T) {
	for _, base := range domain.Bases {
		for _, s := range sanitizeSamples {
			once := numeral.Sanitize(s, base)
			assert.Equal(t, once, numeral.Sanitize(once, base), "base %s input %q", base, s)
		}
	}
}

func TestSanitize_NeverIntroducesCharacters(t *testing.T) {
	for _, base := range domain.Bases {
		for _, s := range sanitizeSamples {
			src := s
			if base == domain.Hexadecimal {
				src = strings.ToUpper(s)
			}
			out := numeral.Sanitize(s, base)
			assert.True(t, isSubsequence(out, src), "base %s: %q is not a subsequence of %q", base, out, src)
		}
	}
}

func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}
