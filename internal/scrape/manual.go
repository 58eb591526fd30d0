package scrape

import (
	"context"

	"github.com/matforge/materialdb/internal/catalog"
)

// DefaultPlaceholderImage is assigned to manually curated entries that have
// no image configured.
const DefaultPlaceholderImage = "https://placehold.co/600x600/1a1a1a/cccccc?text=No+Image"

// manualExtractor emits a hand-authored product list verbatim. No network
// work; the classifier downstream fills in type and color from the names.
type manualExtractor struct{}

func (manualExtractor) Extract(_ context.Context, src SourceConfig, _ string, _ catalog.Category) ([]catalog.RawProduct, error) {
	image := src.DefaultImage
	if image == "" {
		image = DefaultPlaceholderImage
	}
	products := make([]catalog.RawProduct, 0, len(src.Products))
	for _, name := range src.Products {
		if name == "" {
			continue
		}
		products = append(products, catalog.RawProduct{
			Brand:    src.Brand,
			Name:     name,
			ImageURL: image,
			Source:   "manual",
		})
	}
	return products, nil
}
