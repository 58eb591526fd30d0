package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/images"
	"github.com/matforge/materialdb/internal/merge"
	"github.com/matforge/materialdb/internal/scrape"
	"github.com/matforge/materialdb/internal/store"
)

type scrapeFlags struct {
	resins    bool
	filaments bool
	dryRun    bool
	noMerge   bool
	noImages  bool
}

// newScrapeCmd creates and configures the 'scrape' subcommand, the main
// catalog-building entry point.
func newScrapeCmd() *cobra.Command {
	var flags scrapeFlags
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrapes storefronts and updates the catalog files",
		Long: `Runs every configured source through its extraction strategy, classifies
and validates the results, and merges them into the catalog JSON files.
By default both the resin and the filament catalogs are updated.`,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScrapeCommand(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.resins, "resins", false, "only update the resin catalog")
	cmd.Flags().BoolVar(&flags.filaments, "filaments", false, "only update the filament catalog")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "scrape and report but write nothing")
	cmd.Flags().BoolVar(&flags.noMerge, "no-merge", false, "replace the catalog instead of merging into it")
	cmd.Flags().BoolVar(&flags.noImages, "no-images", false, "skip image localization")
	return cmd
}

func runScrapeCommand(cmd *cobra.Command, flags scrapeFlags) error {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return err
	}
	cfg, logger := appInstance.Config, appInstance.Logger

	scraper, err := scrape.New(cfg.ScrapeOptions(), logger)
	if err != nil {
		return fmt.Errorf("init scraper: %w", err)
	}
	if cfg.Images.Enabled && !flags.noImages && !flags.dryRun {
		scraper.WithImageStore(images.New(cfg.Output.Dir, scraper.PageFetcher(), logger))
	}

	catalogStore, err := store.New(cfg.Output.Dir, logger)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	// No category flag means both.
	runResins := flags.resins || !flags.filaments
	runFilaments := flags.filaments || !flags.resins

	if runResins {
		if err := runCategory(cmd, scraper, catalogStore, catalog.CategoryResin, cfg.ResinSources(), flags); err != nil {
			return err
		}
	}
	if runFilaments {
		if err := runCategory(cmd, scraper, catalogStore, catalog.CategoryFilament, cfg.FilamentSources(), flags); err != nil {
			return err
		}
	}

	logger.Info("Scrape command finished.")
	return nil
}

func runCategory(cmd *cobra.Command, scraper *scrape.Scraper, catalogStore *store.CatalogStore, target catalog.Category, sources []scrape.SourceConfig, flags scrapeFlags) error {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return err
	}
	logger := appInstance.Logger

	incoming := scraper.Run(cmd.Context(), target, sources)

	var existing []catalog.Entry
	if !flags.noMerge {
		existing = catalogStore.Load(target)
	}
	merged, stats := merge.Merge(incoming, existing, target, logger)

	logger.Info("Catalog reconciled",
		zap.String("category", string(target)),
		zap.Int("total", len(merged)),
		zap.Int("added", stats.Added),
		zap.Int("updated", stats.Updated),
		zap.Int("removed", stats.Removed),
	)

	if flags.dryRun {
		logger.Info("Dry run; catalog not written",
			zap.String("path", catalogStore.Path(target)))
		return nil
	}
	if err := catalogStore.Save(target, merged); err != nil {
		return fmt.Errorf("save %s catalog: %w", target, err)
	}
	return nil
}
