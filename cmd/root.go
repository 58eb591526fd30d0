// Package cmd defines and implements the CLI commands for the materialdb
// executable.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/config"
	"github.com/matforge/materialdb/internal/logging"
)

var cfgFile string

// appKeyType is the key for storing the App in the context.
type appKeyType string

const appKey appKeyType = "app"

// App bundles the services every command needs.
type App struct {
	Config config.Config
	Logger *zap.Logger
}

// Close flushes buffered log output.
func (a *App) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// newApp is the application factory. It's a variable so tests can replace
// it with a factory returning canned config and a test logger.
var newApp = func(_ context.Context) (*App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Logging.Development, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &App{Config: cfg, Logger: logger}, nil
}

func resolveApp(ctx context.Context) (*App, error) {
	appInstance, ok := ctx.Value(appKey).(*App)
	if !ok || appInstance == nil {
		return nil, errors.New("application services not initialized")
	}
	return appInstance, nil
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materialdb",
		Short: "Builds the 3D printing materials catalog.",
		Long: `materialdb maintains the resin and filament catalogs behind the material
picker. It scrapes manufacturer storefronts with per-site strategies,
classifies and validates what it finds, and merges the results into the
JSON files the front end reads.`,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := newApp(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialize application services: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if appInstance, ok := cmd.Context().Value(appKey).(*App); ok && appInstance != nil {
				appInstance.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in settings)")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
