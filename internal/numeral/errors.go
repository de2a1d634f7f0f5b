package numeral

import "errors"

var (
	// ErrEmptyInput is returned when the trimmed text has no characters.
	ErrEmptyInput = errors.New("empty input")
	// ErrIllegalCharacter is returned when a character is outside the base's alphabet.
	ErrIllegalCharacter = errors.New("illegal character")
	// ErrMagnitudeOverflow is returned when the value exceeds math.MaxInt32.
	ErrMagnitudeOverflow = errors.New("magnitude overflow")
)

// Kind names the failure class of err for diagnostics: "empty_input",
// "illegal_character", "magnitude_overflow", or "" when err is nil or foreign.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrIllegalCharacter):
		return "illegal_character"
	case errors.Is(err, ErrMagnitudeOverflow):
		return "magnitude_overflow"
	}
	return ""
}
