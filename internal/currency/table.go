package currency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"numconv/internal/domain"
)

// Reference is the currency every default rate is expressed in.
const Reference domain.CurrencyCode = "IDR"

var defaultRates = map[domain.CurrencyCode]string{
	"IDR": "1",
	"USD": "16000",
	"JPY": "105",
	"EUR": "17400",
	"GBP": "20100",
	"AUD": "10600",
	"SGD": "11800",
	"CNY": "2225",
	"SAR": "4250",
	"MYR": "3375",
}

var defaultNames = map[domain.CurrencyCode]string{
	"IDR": "Indonesian Rupiah",
	"USD": "United States Dollar",
	"JPY": "Japanese Yen",
	"EUR": "Euro",
	"GBP": "British Pound Sterling",
	"AUD": "Australian Dollar",
	"SGD": "Singapore Dollar",
	"CNY": "Chinese Yuan",
	"SAR": "Saudi Riyal",
	"MYR": "Malaysian Ringgit",
}

// Table is an immutable rate table.
type Table struct {
	rows  map[domain.CurrencyCode]domain.Currency
	codes []domain.CurrencyCode
}

var _ domain.RateTable = (*Table)(nil)

// DefaultTable returns the built-in IDR-based table.
func DefaultTable() *Table {
	t, err := NewTable(nil, nil)
	if err != nil {
		panic(err) // built-in rates are constants
	}
	return t
}

// NewTable builds a table from the built-in rates with rates and names layered
// on top. Codes are case-insensitive; rates must be positive decimals.
func NewTable(rates, names map[string]string) (*Table, error) {
	merged := make(map[domain.CurrencyCode]string, len(defaultRates)+len(rates))
	for c, r := range defaultRates {
		merged[c] = r
	}
	for c, r := range rates {
		merged[normalize(c)] = r
	}

	t := &Table{rows: make(map[domain.CurrencyCode]domain.Currency, len(merged))}
	for code, raw := range merged {
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s: %w", code, ErrInvalidRate)
		}
		name := defaultNames[code]
		if n, ok := names[string(code)]; ok {
			name = n
		} else if n, ok := names[strings.ToLower(string(code))]; ok {
			name = n
		}
		if name == "" {
			name = string(code)
		}
		t.rows[code] = domain.Currency{Code: code, Name: name, Rate: rate}
		t.codes = append(t.codes, code)
	}
	sort.Slice(t.codes, func(i, j int) bool { return t.codes[i] < t.codes[j] })
	return t, nil
}

// Lookup returns the row for code, case-insensitive.
func (t *Table) Lookup(code domain.CurrencyCode) (domain.Currency, bool) {
	c, ok := t.rows[normalize(string(code))]
	return c, ok
}

// Codes returns every code in sorted order.
func (t *Table) Codes() []domain.CurrencyCode {
	out := make([]domain.CurrencyCode, len(t.codes))
	copy(out, t.codes)
	return out
}

// Rows returns every currency in code order.
func (t *Table) Rows() []domain.Currency {
	out := make([]domain.Currency, 0, len(t.codes))
	for _, c := range t.codes {
		out = append(out, t.rows[c])
	}
	return out
}

// Label renders "USD - United States Dollar".
func Label(c domain.Currency) string {
	return fmt.Sprintf("%s - %s", c.Code, c.Name)
}

func normalize(code string) domain.CurrencyCode {
	return domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(code)))
}
