// Package numeral converts unsigned integers between decimal, binary, octal and
// hexadecimal text.
//
// # Operations
//
//   - Sanitize drops every character that is not a digit of the base, keeping
//     order. Hexadecimal digits are uppercased. It never fails.
//   - Convert trims and validates the text, parses it and renders the value in
//     all four bases. The field of the source base echoes the trimmed input
//     unless the Canonical policy is requested.
//   - Display is Convert collapsed for presentation: any failure yields the
//     record with every field set to domain.InvalidInput.
//
// # Errors
//
// Convert wraps exactly one of ErrEmptyInput, ErrIllegalCharacter or
// ErrMagnitudeOverflow. Values must fit a signed 32-bit integer, so the
// largest accepted magnitude is 2147483647.
//
// All functions are pure. They hold no state between calls and are safe to
// call on every keystroke from any goroutine.
package numeral
