// Package exchange converts currency amounts against the configured rate table.
package exchange
