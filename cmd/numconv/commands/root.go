package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"numconv/internal/app"
	"numconv/internal/config"
	"numconv/internal/domain"
)

var (
	configPath string
	outputFlag string
	verbose    bool

	logger *zap.Logger
	wire   *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numconv",
		Short:         "Numeral base and currency converter",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			settings, err := config.Load(path)
			if err != nil {
				return err
			}
			if outputFlag != "" {
				settings.Output = outputFlag
			}

			level, err := settings.Level()
			if err != nil {
				return err
			}
			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(level)
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			wire, err = app.NewWire(app.Config{Settings: settings, Logger: logger})
			if err != nil {
				return err
			}
			logger.Debug("configured",
				zap.String("config", path),
				zap.String("default_base", wire.Base.String()),
				zap.String("output", string(wire.Output)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.numconv/config.yaml)")
	root.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(convertCmd(), sanitizeCmd(), basesCmd(), shellCmd(), currencyCmd())
	return root
}

// resolveBase parses name, falling back to the configured default base.
func resolveBase(name string) (domain.NumeralBase, error) {
	if name == "" {
		return wire.Base, nil
	}
	return domain.ParseBase(name)
}
