// Package converter serves numeral sanitizing and conversion to the CLI.
//
// It applies the configured echo policy and logs failure kinds at debug level.
package converter
