package domain

import (
	"fmt"
	"strings"
)

// NumeralBase is one of the four positional numeral systems we convert between.
// Its value is the radix.
type NumeralBase int

const (
	Decimal     NumeralBase = 10
	Binary      NumeralBase = 2
	Octal       NumeralBase = 8
	Hexadecimal NumeralBase = 16
)

// Bases lists every supported base in display order.
var Bases = []NumeralBase{Decimal, Binary, Octal, Hexadecimal}

// Radix returns the base as an int suitable for strconv.
func (b NumeralBase) Radix() int { return int(b) }

// Valid reports whether b is one of the four supported bases.
func (b NumeralBase) Valid() bool {
	switch b {
	case Decimal, Binary, Octal, Hexadecimal:
		return true
	}
	return false
}

// String returns the display name of the base.
func (b NumeralBase) String() string {
	switch b {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Hexadecimal:
		return "Hexadecimal"
	}
	return fmt.Sprintf("NumeralBase(%d)", int(b))
}

// Alphabet describes the legal digits of the base for help output.
func (b NumeralBase) Alphabet() string {
	switch b {
	case Decimal:
		return "0-9"
	case Binary:
		return "0,1"
	case Octal:
		return "0-7"
	case Hexadecimal:
		return "0-9,A-F (case-insensitive)"
	}
	return ""
}

// ParseBase accepts a display name, a short name or a radix, case-insensitive.
func ParseBase(s string) (NumeralBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decimal", "dec", "d", "10":
		return Decimal, nil
	case "binary", "bin", "b", "2":
		return Binary, nil
	case "octal", "oct", "o", "8":
		return Octal, nil
	case "hexadecimal", "hex", "h", "x", "16":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("unknown numeral base %q", s)
}

// MarshalText encodes the base by display name.
func (b NumeralBase) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid numeral base %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes any form accepted by ParseBase.
func (b *NumeralBase) UnmarshalText(text []byte) error {
	v, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
