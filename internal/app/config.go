package app

import (
	"go.uber.org/zap"

	"numconv/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings *config.Config // loaded settings; defaults when nil
	Logger   *zap.Logger    // optional; defaults to zap.NewNop()
}
