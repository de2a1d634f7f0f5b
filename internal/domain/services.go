package domain

// NumeralService sanitizes and converts numeral text for the presentation shell.
type NumeralService interface {
	Sanitize(text string, base NumeralBase) string
	Convert(text string, base NumeralBase) (Conversion, error)
	// Display never fails; on error every field is InvalidInput.
	Display(text string, base NumeralBase) Conversion
}

// RateTable is the static exchange-rate lookup consumed by currency conversion.
type RateTable interface {
	Lookup(code CurrencyCode) (Currency, bool)
	Codes() []CurrencyCode
}

// CurrencyService converts amounts between currencies in a RateTable.
type CurrencyService interface {
	Convert(amount string, from, to CurrencyCode) (Quote, error)
	List() []Currency
}
