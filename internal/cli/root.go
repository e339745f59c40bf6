// Package cli defines the cobra command tree for footprint.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/footprint-map/internal/config"
	"github.com/couchcryptid/footprint-map/internal/observability"
)

var (
	flagName   string
	flagOutput string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "footprint",
		Short:         "Record visited cities and render them on a world map",
		Long:          "Record visited cities with visit dates, notes, and marker colors, import them in bulk from CSV or JSON, and render an interactive world map with per-year markers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagName, "name", "", "user name for the personalized map (default: Visitor)")
	root.PersistentFlags().StringVar(&flagOutput, "output", "", "base output directory (default: OUTPUT_DIR or maps)")

	root.AddCommand(
		newImportCmd(),
		newAddCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// app bundles the pieces every command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagOutput != "" {
		cfg.OutputDir = flagOutput
	}

	return &app{
		cfg:     cfg,
		logger:  observability.NewLogger(cfg.LogLevel, cfg.LogFormat),
		metrics: observability.NewMetrics(),
	}, nil
}
