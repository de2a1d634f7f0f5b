// Package render writes conversion records and currency quotes for the CLI in
// text, JSON or YAML.
package render
