package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numconv/internal/app"
	"numconv/internal/config"
	"numconv/internal/domain"
	"numconv/internal/render"
)

func TestNewWire_Defaults(t *testing.T) {
	w, err := app.NewWire(app.Config{})
	require.NoError(t, err)
	assert.Equal(t, domain.Decimal, w.Base)
	assert.Equal(t, render.Text, w.Output)
	assert.NotNil(t, w.Logger)

	q, err := w.Currency.Convert("16000", "IDR", "USD")
	require.NoError(t, err)
	assert.Equal(t, "1.00 USD", q.Result)
}

func TestNewWire_Settings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultBase = "oct"
	cfg.EchoPolicy = string(domain.Canonical)
	cfg.Output = "json"

	w, err := app.NewWire(app.Config{Settings: cfg})
	require.NoError(t, err)
	assert.Equal(t, domain.Octal, w.Base)
	assert.Equal(t, render.JSON, w.Output)

	got, err := w.Numerals.Convert("007", domain.Octal)
	require.NoError(t, err)
	assert.Equal(t, "7", got.Octal)
}

func TestNewWire_BadSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output = "xml"
	_, err := app.NewWire(app.Config{Settings: cfg})
	require.Error(t, err)
}

func TestScreen_KeystrokesThenConvert(t *testing.T) {
	w, err := app.NewWire(app.Config{})
	require.NoError(t, err)

	s := app.NewScreen(w.Numerals, domain.Hexadecimal)
	assert.Equal(t, "F", s.Type("f"))
	assert.Equal(t, "FF", s.Type("ff!"))
	assert.Equal(t, "255", s.Convert().Decimal)

	// Switching base keeps the typed text; FF is not binary.
	s.Select(domain.Binary)
	assert.Equal(t, "FF", s.Input)
	assert.True(t, s.Convert().IsFailure())

	assert.Equal(t, "", s.Type("FF"))
	assert.True(t, s.Convert().IsFailure())

	assert.Equal(t, "101", s.Type("1a0b1"))
	assert.Equal(t, "5", s.Convert().Decimal)
	assert.Equal(t, "5", s.Result.Decimal)
}
