// Package app wires application dependencies for the CLI.
//
// It builds the logger, the numeral and currency services and the output
// format from Config, exposing them via the Wire struct for commands to use.
// Screen holds the state of an interactive converter session so the services
// themselves stay stateless.
package app
