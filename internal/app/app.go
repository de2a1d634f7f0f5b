package app

import "numconv/internal/domain"

// Screen is the state of one converter screen: the selected base, the text
// in the input field and the last result shown.
type Screen struct {
	numerals domain.NumeralService

	Base   domain.NumeralBase
	Input  string
	Result domain.Conversion
}

func NewScreen(numerals domain.NumeralService, base domain.NumeralBase) *Screen {
	return &Screen{numerals: numerals, Base: base}
}

// Type replaces the input with the sanitized form of text and returns it.
func (s *Screen) Type(text string) string {
	s.Input = s.numerals.Sanitize(text, s.Base)
	return s.Input
}

// Select switches the input base. The current input is kept as typed, so a
// later Convert reports it as invalid if it is not legal in the new base.
func (s *Screen) Select(base domain.NumeralBase) {
	s.Base = base
}

// Convert converts the current input and remembers the result.
func (s *Screen) Convert() domain.Conversion {
	s.Result = s.numerals.Display(s.Input, s.Base)
	return s.Result
}
