package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"numconv/internal/currency"
	"numconv/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml)", s)
}

// Conversion writes the four fields in display order.
func Conversion(w io.Writer, f Format, c domain.Conversion) error {
	switch f {
	case JSON, YAML:
		return encode(w, f, c)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, b := range domain.Bases {
		fmt.Fprintf(tw, "%s:\t%s\n", b, c.Field(b))
	}
	return tw.Flush()
}

// Quote writes a currency conversion result and its unit rate.
func Quote(w io.Writer, f Format, q domain.Quote) error {
	switch f {
	case JSON, YAML:
		return encode(w, f, q)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", q.Result, q.Unit)
	return err
}

// Currencies writes the rate table.
func Currencies(w io.Writer, f Format, rows []domain.Currency) error {
	switch f {
	case JSON, YAML:
		return encode(w, f, rows)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", currency.Label(c), currency.Format(c.Rate, 0, 6))
	}
	return tw.Flush()
}

// baseRow describes one numeral base for listings.
type baseRow struct {
	Name     string `json:"name" yaml:"name"`
	Radix    int    `json:"radix" yaml:"radix"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
}

// Bases writes every supported base with its radix and alphabet.
func Bases(w io.Writer, f Format) error {
	rows := make([]baseRow, 0, len(domain.Bases))
	for _, b := range domain.Bases {
		rows = append(rows, baseRow{Name: b.String(), Radix: b.Radix(), Alphabet: b.Alphabet()})
	}
	switch f {
	case JSON, YAML:
		return encode(w, f, rows)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Name, r.Radix, r.Alphabet)
	}
	return tw.Flush()
}

func encode(w io.Writer, f Format, v any) error {
	if f == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
