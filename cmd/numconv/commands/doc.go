// Package commands defines the numconv CLI and wires dependencies for subcommands.
//
// Commands
//
//   - convert         Convert a number into decimal, binary, octal and hexadecimal
//   - sanitize        Drop characters that are not digits of the chosen base
//   - bases           List the supported bases and their alphabets
//   - shell           Line-by-line converter session; each line is one input event
//   - currency list   Print the rate table
//   - currency convert
//     Convert an amount between two currencies
//
// # Implementation
//
// The root command loads the YAML config, builds a zap logger and the
// dependency graph (services, output format) before any subcommand runs.
// Conversion failures print "Invalid Input" in every field unless --strict is
// given, in which case the tagged error is returned and the exit code is 1.
package commands
