package app

import (
	"fmt"

	"go.uber.org/zap"

	"numconv/internal/config"
	"numconv/internal/domain"
	"numconv/internal/render"
	"numconv/internal/services/converter"
	"numconv/internal/services/exchange"
)

// Wire bundles all services and resolved settings for the CLI.
type Wire struct {
	Numerals domain.NumeralService
	Currency domain.CurrencyService
	Base     domain.NumeralBase
	Output   render.Format
	Settings *config.Config
	Logger   *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = config.DefaultConfig()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	base, err := settings.Base()
	if err != nil {
		return nil, fmt.Errorf("default base: %w", err)
	}
	out, err := render.ParseFormat(settings.Output)
	if err != nil {
		return nil, err
	}
	rates, err := settings.RateTable()
	if err != nil {
		return nil, fmt.Errorf("rate table: %w", err)
	}

	return &Wire{
		Numerals: converter.New(settings.Echo(), log.Named("converter")),
		Currency: exchange.New(rates, log.Named("exchange")),
		Base:     base,
		Output:   out,
		Settings: settings,
		Logger:   log,
	}, nil
}
