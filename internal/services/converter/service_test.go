package converter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"numconv/internal/domain"
	"numconv/internal/numeral"
	"numconv/internal/services/converter"
)

func TestService_EchoPolicy(t *testing.T) {
	echo := converter.New(domain.EchoSource, zap.NewNop())
	got, err := echo.Convert("0017", domain.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "0017", got.Decimal)
	assert.Equal(t, "11", got.Hexadecimal)

	canon := converter.New(domain.Canonical, nil)
	got, err = canon.Convert("0017", domain.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "17", got.Decimal)
}

func TestService_DisplayCollapses(t *testing.T) {
	s := converter.New(domain.EchoSource, zap.NewNop())
	assert.Equal(t, domain.Failed(), s.Display("12", domain.Binary))
	assert.Equal(t, "C", s.Display("12", domain.Decimal).Hexadecimal)
}

func TestService_SanitizeThenDisplay(t *testing.T) {
	s := converter.New(domain.EchoSource, zap.NewNop())
	clean := s.Sanitize("0xBeEf", domain.Hexadecimal)
	assert.Equal(t, "0BEEF", clean)
	assert.Equal(t, "48879", s.Display(clean, domain.Hexadecimal).Decimal)
}

func TestService_LogsFailureKind(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := converter.New(domain.EchoSource, zap.New(core))

	_, err := s.Convert("2147483648", domain.Decimal)
	require.ErrorIs(t, err, numeral.ErrMagnitudeOverflow)

	entries := logs.FilterMessage("conversion failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "magnitude_overflow", entries[0].ContextMap()["kind"])
}
