package domain

import "github.com/shopspring/decimal"

// CurrencyCode is an ISO 4217 code such as "USD".
type CurrencyCode string

// String returns the string form of the code.
func (c CurrencyCode) String() string { return string(c) }

// Currency is one row of the rate table. Rate is the value of one unit in the
// table's reference currency.
type Currency struct {
	Code CurrencyCode    `json:"code" yaml:"code"`
	Name string          `json:"name" yaml:"name"`
	Rate decimal.Decimal `json:"rate" yaml:"rate"`
}

// Quote is the outcome of a currency conversion, already formatted for display.
type Quote struct {
	From   CurrencyCode    `json:"from" yaml:"from"`
	To     CurrencyCode    `json:"to" yaml:"to"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Value  decimal.Decimal `json:"value" yaml:"value"`
	Result string          `json:"result" yaml:"result"` // e.g. "1.00 USD"
	Unit   string          `json:"unit" yaml:"unit"`     // e.g. "1 IDR = 0 USD"
}
