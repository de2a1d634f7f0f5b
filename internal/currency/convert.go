package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"numconv/internal/domain"
)

var (
	ErrEmptyAmount     = errors.New("amount required")
	ErrInvalidAmount   = errors.New("please enter a valid number")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidRate     = errors.New("invalid rate")
)

// Convert converts amount from one currency of t to another.
func Convert(t domain.RateTable, amount string, from, to domain.CurrencyCode) (domain.Quote, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return domain.Quote{}, ErrEmptyAmount
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if amt.IsNegative() {
		return domain.Quote{}, ErrNegativeAmount
	}

	src, ok := t.Lookup(from)
	if !ok {
		return domain.Quote{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	dst, ok := t.Lookup(to)
	if !ok {
		return domain.Quote{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}
	if !src.Rate.IsPositive() || !dst.Rate.IsPositive() {
		return domain.Quote{}, ErrInvalidRate
	}

	unit := src.Rate.Div(dst.Rate)
	value := amt.Mul(unit)
	return domain.Quote{
		From:   src.Code,
		To:     dst.Code,
		Amount: amt,
		Value:  value,
		Result: fmt.Sprintf("%s %s", Format(value, 2, 6), dst.Code),
		Unit:   fmt.Sprintf("1 %s = %s %s", src.Code, Format(unit, 0, 2), dst.Code),
	}, nil
}

// Swap returns the pair reversed.
func Swap(from, to domain.CurrencyCode) (domain.CurrencyCode, domain.CurrencyCode) {
	return to, from
}
