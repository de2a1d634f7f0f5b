package domain

// InvalidInput is the sentinel shown in every field when a conversion fails.
const InvalidInput = "Invalid Input"

// Conversion holds the textual form of one value in all four bases.
//
// A failed conversion is represented with every field set to InvalidInput, so
// callers can always treat the result as four strings to display.
type Conversion struct {
	Decimal     string `json:"decimal" yaml:"decimal"`
	Binary      string `json:"binary" yaml:"binary"`
	Octal       string `json:"octal" yaml:"octal"`
	Hexadecimal string `json:"hexadecimal" yaml:"hexadecimal"`
}

// Failed returns the uniform failure record.
func Failed() Conversion {
	return Conversion{
		Decimal:     InvalidInput,
		Binary:      InvalidInput,
		Octal:       InvalidInput,
		Hexadecimal: InvalidInput,
	}
}

// IsFailure reports whether c is the uniform failure record.
func (c Conversion) IsFailure() bool { return c == Failed() }

// Field returns the field for base b.
func (c Conversion) Field(b NumeralBase) string {
	switch b {
	case Decimal:
		return c.Decimal
	case Binary:
		return c.Binary
	case Octal:
		return c.Octal
	case Hexadecimal:
		return c.Hexadecimal
	}
	return ""
}

// EchoPolicy controls how the source base's own field is filled.
type EchoPolicy string

const (
	// EchoSource shows the trimmed input back unchanged (hex uppercased).
	EchoSource EchoPolicy = "echo"
	// Canonical re-derives the source field like every other field.
	Canonical EchoPolicy = "canonical"
)

// Valid reports whether p is a known policy.
func (p EchoPolicy) Valid() bool { return p == EchoSource || p == Canonical }
