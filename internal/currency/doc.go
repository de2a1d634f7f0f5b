// Package currency converts amounts through a static exchange-rate table.
//
// Rates are expressed in the table's reference currency (IDR by default), so
// converting amount from A to B is amount × rate(A) / rate(B). Arithmetic uses
// shopspring/decimal; results are formatted with grouped thousands and
// half-even rounding.
//
// The package also carries the small keystroke helpers used by an amount
// field: SanitizeAmount and Group.
package currency
