package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"numconv/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
default_base: hex
echo_policy: canonical
output: json
log_level: debug
currency:
  from: usd
  to: jpy
  rates:
    USD: "15800"
  names:
    USD: US Dollar
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	base, err := cfg.Base()
	require.NoError(t, err)
	assert.Equal(t, domain.Hexadecimal, base)
	assert.Equal(t, domain.Canonical, cfg.Echo())
	assert.Equal(t, "json", cfg.Output)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	tbl, err := cfg.RateTable()
	require.NoError(t, err)
	usd, ok := tbl.Lookup("USD")
	require.True(t, ok)
	assert.Equal(t, "US Dollar", usd.Name)
	assert.Equal(t, "15800", usd.Rate.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad base":   "default_base: ternary\n",
		"bad policy": "echo_policy: sometimes\n",
		"bad output": "output: xml\n",
		"bad level":  "log_level: loud\n",
		"bad rate":   "currency:\n  rates:\n    USD: \"-1\"\n",
		"bad yaml":   "default_base: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NUMCONV_DEFAULT_BASE", "2")
	t.Setenv("NUMCONV_OUTPUT", "yaml")
	t.Setenv("NUMCONV_ECHO_POLICY", "")
	t.Setenv("NUMCONV_LOG_LEVEL", "")

	cfg, err := Load(writeConfig(t, "default_base: octal\noutput: text\n"))
	require.NoError(t, err)

	base, err := cfg.Base()
	require.NoError(t, err)
	assert.Equal(t, domain.Binary, base)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, string(domain.EchoSource), cfg.EchoPolicy)
}
