package scrape

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/classify"
	"github.com/matforge/materialdb/internal/validate"
)

// extractor is the contract every strategy implements. pageURL is empty for
// strategies that do no network work.
type extractor interface {
	Extract(ctx context.Context, src SourceConfig, pageURL string, target catalog.Category) ([]catalog.RawProduct, error)
}

// ImageStore localizes a remote product image and returns the relative path
// the catalog should reference. Empty path means keep the remote URL.
type ImageStore interface {
	Fetch(ctx context.Context, rawURL string, target catalog.Category, brand, name string) (string, error)
}

// Scraper runs the full extraction pipeline: dispatch each source to its
// strategy, filter, classify, validate, and build catalog entries. Sources
// run sequentially; per-source failures are contained and logged, never
// propagated.
type Scraper struct {
	fetcher Fetcher
	js      *jsExtractor
	images  ImageStore
	logger  *zap.Logger
}

// New builds a scraper with its own fetcher from the shared options.
func New(opts Options, logger *zap.Logger) (*Scraper, error) {
	fetcher, err := NewCollyFetcher(opts, logger)
	if err != nil {
		return nil, err
	}
	return &Scraper{
		fetcher: fetcher,
		js: &jsExtractor{
			userAgent: opts.UserAgent,
			timeout:   opts.JSTimeout,
			logger:    logger,
		},
		logger: logger,
	}, nil
}

// WithImageStore enables best-effort image localization during Run.
func (s *Scraper) WithImageStore(store ImageStore) *Scraper {
	s.images = store
	return s
}

// WithFetcher swaps the page fetcher. Tests use this to avoid the network.
func (s *Scraper) WithFetcher(f Fetcher) *Scraper {
	s.fetcher = f
	return s
}

// PageFetcher exposes the fetcher so other subsystems, such as the image
// downloader, share its politeness delay and retry policy.
func (s *Scraper) PageFetcher() Fetcher {
	return s.fetcher
}

func (s *Scraper) extractorFor(strategy Strategy) extractor {
	switch strategy {
	case StrategyShopify:
		return &shopifyExtractor{fetcher: s.fetcher, logger: s.logger}
	case StrategyHTML:
		return &htmlExtractor{fetcher: s.fetcher, logger: s.logger}
	case StrategyJSON:
		return &jsonExtractor{fetcher: s.fetcher, logger: s.logger}
	case StrategyWooCommerce:
		return &wooExtractor{fetcher: s.fetcher, logger: s.logger}
	case StrategyJS:
		return s.js
	case StrategyManual:
		return manualExtractor{}
	}
	return nil
}

// Collect extracts, filters, classifies, and validates raw products from
// every source, in source order.
func (s *Scraper) Collect(ctx context.Context, target catalog.Category, sources []SourceConfig) []catalog.RawProduct {
	runLogger := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("category", string(target)),
	)
	runLogger.Info("Starting extraction run", zap.Int("sources", len(sources)))

	var collected []catalog.RawProduct
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			runLogger.Warn("Extraction run cancelled", zap.Error(err))
			break
		}
		collected = append(collected, s.collectSource(ctx, runLogger, target, src)...)
	}

	runLogger.Info("Extraction run finished", zap.Int("products", len(collected)))
	return collected
}

// collectSource runs one source end to end. Any failure yields an empty
// batch for that source.
func (s *Scraper) collectSource(ctx context.Context, logger *zap.Logger, target catalog.Category, src SourceConfig) []catalog.RawProduct {
	srcLogger := logger.With(
		zap.String("brand", src.Brand),
		zap.String("strategy", string(src.Strategy)),
	)
	if err := src.Validate(); err != nil {
		srcLogger.Warn("Skipping misconfigured source", zap.Error(err))
		return nil
	}
	ext := s.extractorFor(src.Strategy)

	pageURLs := src.URLs
	if src.Strategy == StrategyManual {
		pageURLs = []string{""}
	}

	var batch []catalog.RawProduct
	for _, pageURL := range pageURLs {
		products, err := ext.Extract(ctx, src, pageURL, target)
		if err != nil {
			srcLogger.Warn("Extraction failed",
				zap.String("url", pageURL), zap.Error(err))
			continue
		}
		batch = append(batch, products...)
	}
	productsExtracted.WithLabelValues(string(src.Strategy)).Add(float64(len(batch)))

	kept := make([]catalog.RawProduct, 0, len(batch))
	for _, p := range batch {
		if p.Name == "" {
			continue
		}
		if !matchesFilter(p, src.Filter) {
			continue
		}
		p = classify.Enrich(p, target)
		if verdict := validate.Product(p, target); !verdict.OK {
			productsRejected.WithLabelValues(verdict.List).Inc()
			srcLogger.Debug("Rejected product",
				zap.String("name", p.Name),
				zap.String("list", verdict.List),
				zap.String("pattern", verdict.Matched),
			)
			continue
		}
		kept = append(kept, p)
	}

	srcLogger.Info("Source scraped",
		zap.Int("extracted", len(batch)),
		zap.Int("kept", len(kept)),
	)
	return kept
}

// matchesFilter applies the source's keyword filter against the product
// name and URL. An empty filter keeps everything.
func matchesFilter(p catalog.RawProduct, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.ProductURL), needle)
}

// Run collects raw products and builds finished catalog entries, localizing
// images when an image store is configured. Image failures fall back to the
// remote URL.
func (s *Scraper) Run(ctx context.Context, target catalog.Category, sources []SourceConfig) []catalog.Entry {
	products := s.Collect(ctx, target, sources)

	entries := make([]catalog.Entry, 0, len(products))
	for _, p := range products {
		var imagePath string
		if s.images != nil && p.ImageURL != "" {
			path, err := s.images.Fetch(ctx, p.ImageURL, target, p.Brand, p.Name)
			if err != nil {
				s.logger.Debug("Image download failed",
					zap.String("brand", p.Brand),
					zap.String("name", p.Name),
					zap.Error(err),
				)
			} else {
				imagePath = path
			}
		}
		entries = append(entries, catalog.BuildEntry(p, target, imagePath))
	}
	return entries
}
