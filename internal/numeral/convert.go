package numeral

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"numconv/internal/domain"
)

// Options tunes Convert. The zero value echoes the source field.
type Options struct {
	Echo domain.EchoPolicy
}

// Convert parses text in base and renders it in every base, echoing the
// trimmed input in the source base's own field.
func Convert(text string, base domain.NumeralBase) (domain.Conversion, error) {
	return Options{}.Convert(text, base)
}

// Display is Convert with every failure collapsed to domain.Failed().
func Display(text string, base domain.NumeralBase) domain.Conversion {
	return Options{}.Display(text, base)
}

// Display is Convert with every failure collapsed to domain.Failed().
func (o Options) Display(text string, base domain.NumeralBase) domain.Conversion {
	c, err := o.Convert(text, base)
	if err != nil {
		return domain.Failed()
	}
	return c
}

// Convert parses text in base and renders it in every base according to o.
func (o Options) Convert(text string, base domain.NumeralBase) (domain.Conversion, error) {
	if !base.Valid() {
		return domain.Failed(), fmt.Errorf("unsupported numeral base %d", int(base))
	}
	n, trimmed, err := Parse(text, base)
	if err != nil {
		return domain.Failed(), err
	}

	out := domain.Conversion{
		Decimal:     strconv.FormatInt(n, 10),
		Binary:      strconv.FormatInt(n, 2),
		Octal:       strconv.FormatInt(n, 8),
		Hexadecimal: strings.ToUpper(strconv.FormatInt(n, 16)),
	}
	if o.Echo == domain.Canonical {
		return out, nil
	}

	switch base {
	case domain.Decimal:
		out.Decimal = trimmed
	case domain.Binary:
		out.Binary = trimmed
	case domain.Octal:
		out.Octal = trimmed
	case domain.Hexadecimal:
		out.Hexadecimal = strings.ToUpper(trimmed)
	}
	return out, nil
}

// Parse validates text as an unsigned literal in base and returns its value
// together with the trimmed text.
func Parse(text string, base domain.NumeralBase) (int64, string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, "", ErrEmptyInput
	}
	for i, r := range trimmed {
		if !legal(r, base) {
			return 0, trimmed, fmt.Errorf("%w %q at offset %d for %s", ErrIllegalCharacter, r, i, base)
		}
	}

	// Only digits reach ParseInt, so the sole possible failure is range.
	n, err := strconv.ParseInt(trimmed, base.Radix(), 32)
	if err != nil {
		return 0, trimmed, fmt.Errorf("%w: %s exceeds %d", ErrMagnitudeOverflow, trimmed, math.MaxInt32)
	}
	return n, trimmed, nil
}
