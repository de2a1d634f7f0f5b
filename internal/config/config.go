package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"numconv/internal/currency"
	"numconv/internal/domain"
)

// FileName is the config file looked up under the home directory.
const FileName = "config.yaml"

// Config holds all numconv configuration.
type Config struct {
	DefaultBase string `yaml:"default_base"` // decimal, binary, octal, hexadecimal (or radix)
	EchoPolicy  string `yaml:"echo_policy"`  // echo, canonical
	Output      string `yaml:"output"`       // text, json, yaml
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error

	Currency CurrencyConfig `yaml:"currency"`
}

// CurrencyConfig layers rates and names over the built-in table.
type CurrencyConfig struct {
	From  string            `yaml:"from"`
	To    string            `yaml:"to"`
	Rates map[string]string `yaml:"rates"` // code -> value of one unit in IDR
	Names map[string]string `yaml:"names"`
}

// ValidOutputs lists the supported render formats.
var ValidOutputs = []string{"text", "json", "yaml"}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultBase: "decimal",
		EchoPolicy:  string(domain.EchoSource),
		Output:      "text",
		LogLevel:    "warn",
		Currency: CurrencyConfig{
			From: "IDR",
			To:   "USD",
		},
	}
}

// DefaultPath returns $HOME/.numconv/config.yaml, or "" if home is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numconv", FileName)
}

// Load reads path over DefaultConfig, applies environment overrides and
// validates the result. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if data != nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NUMCONV_DEFAULT_BASE"); v != "" {
		c.DefaultBase = v
	}
	if v := os.Getenv("NUMCONV_ECHO_POLICY"); v != "" {
		c.EchoPolicy = v
	}
	if v := os.Getenv("NUMCONV_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("NUMCONV_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks every enumerated setting and the rate overrides.
func (c *Config) Validate() error {
	if _, err := c.Base(); err != nil {
		return fmt.Errorf("default_base: %w", err)
	}
	if !domain.EchoPolicy(c.EchoPolicy).Valid() {
		return fmt.Errorf("invalid echo_policy: %q (valid: echo, canonical)", c.EchoPolicy)
	}
	validOutput := false
	for _, o := range ValidOutputs {
		if c.Output == o {
			validOutput = true
			break
		}
	}
	if !validOutput {
		return fmt.Errorf("invalid output: %q (valid: %v)", c.Output, ValidOutputs)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := c.RateTable(); err != nil {
		return fmt.Errorf("currency: %w", err)
	}
	return nil
}

// Base returns the parsed default base.
func (c *Config) Base() (domain.NumeralBase, error) {
	return domain.ParseBase(c.DefaultBase)
}

// Echo returns the echo policy.
func (c *Config) Echo() domain.EchoPolicy {
	return domain.EchoPolicy(c.EchoPolicy)
}

// Level returns the zap level for LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// RateTable builds the currency table with the configured overrides.
func (c *Config) RateTable() (*currency.Table, error) {
	return currency.NewTable(c.Currency.Rates, c.Currency.Names)
}
