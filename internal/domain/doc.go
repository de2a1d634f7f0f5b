// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (numeral bases, conversion records, currency quotes)
// and contracts (interfaces) only.
package domain
