package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/export"
	"github.com/matforge/materialdb/internal/store"
)

// newExportCmd creates the 'export' subcommand, which lifts the simple
// catalog files into the rich schema with stable sequential IDs.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Exports the catalogs in the rich schema",
		Long: `Reads the simple catalog files and writes rich-schema counterparts with
sequential IDs, commercial defaults, and per-printer print profiles broken
out as records.`,

		RunE: runExportCommand,
	}
}

func runExportCommand(cmd *cobra.Command, _ []string) error {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return err
	}
	cfg, logger := appInstance.Config, appInstance.Logger

	catalogStore, err := store.New(cfg.Output.Dir, logger)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	resins := export.Resins(catalogStore.Load(catalog.CategoryResin))
	if err := writeRich(cfg.Output.Dir, "resins_rich.json", resins, logger); err != nil {
		return err
	}

	filaments := export.Filaments(catalogStore.Load(catalog.CategoryFilament))
	if err := writeRich(cfg.Output.Dir, "filaments_rich.json", filaments, logger); err != nil {
		return err
	}

	logger.Info("Export command finished.")
	return nil
}

func writeRich(dir, name string, records any, logger *zap.Logger) error {
	payload, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("Wrote rich catalog", zap.String("path", path))
	return nil
}
