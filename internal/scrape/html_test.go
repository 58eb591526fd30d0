package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matforge/materialdb/internal/catalog"
)

const htmlFixture = `<html><body>
<div class="product-card">
  <h2 class="product-title">Tough Resin 2.0</h2>
  <img src="//cdn.example.com/tough.jpg">
  <span class="price">From $34.99 USD</span>
  <a href="/products/tough-resin">View</a>
</div>
<div class="product-card">
  <img src="/no-name.jpg">
</div>
<div class="product-card">
  <h2 class="product-title">Flexible Resin</h2>
  <img data-src="https://cdn.example.com/flex.jpg">
  <span class="price">€29,99</span>
  <a href="https://other.example.com/flex">View</a>
</div>
</body></html>`

func TestHTMLExtract(t *testing.T) {
	pageURL := "https://example.com/collections/resins"
	fetcher := newStubFetcher().add(pageURL, htmlFixture)

	e := &htmlExtractor{fetcher: fetcher, logger: testLogger()}
	products, err := e.Extract(context.Background(), SourceConfig{Brand: "Example"}, pageURL, catalog.CategoryResin)
	require.NoError(t, err)
	require.Len(t, products, 2, "nameless cards are discarded")

	first := products[0]
	require.Equal(t, "Tough Resin 2.0", first.Name)
	require.Equal(t, "https://cdn.example.com/tough.jpg", first.ImageURL,
		"protocol-relative image URLs are rewritten to https")
	require.NotNil(t, first.Price)
	require.Equal(t, 34.99, *first.Price)
	require.Equal(t, "https://example.com/products/tough-resin", first.ProductURL,
		"relative links resolve against the page URL")
	require.Equal(t, "html_scrape", first.Source)

	second := products[1]
	require.Equal(t, "https://cdn.example.com/flex.jpg", second.ImageURL,
		"lazy-loading attributes are consulted")
	require.NotNil(t, second.Price)
	require.Equal(t, 29.99, *second.Price)
	require.Equal(t, "https://other.example.com/flex", second.ProductURL,
		"absolute links pass through")
}

func TestHTMLExtractFallbackSelectors(t *testing.T) {
	pageURL := "https://example.com/shop"
	fetcher := newStubFetcher().add(pageURL, `<html><body>
<div class="grid-item">
  <h3>Castable Resin</h3>
</div>
</body></html>`)

	e := &htmlExtractor{fetcher: fetcher, logger: testLogger()}
	products, err := e.Extract(context.Background(), SourceConfig{Brand: "Example"}, pageURL, catalog.CategoryResin)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Castable Resin", products[0].Name)
}

func TestHTMLExtractConfiguredSelectors(t *testing.T) {
	pageURL := "https://example.com/shop"
	fetcher := newStubFetcher().add(pageURL, `<html><body>
<section class="tile">
  <span class="label">Dental Resin</span>
  <img src="https://cdn.example.com/dental.png">
</section>
</body></html>`)

	src := SourceConfig{
		Brand:     "Example",
		Selectors: Selectors{Card: ".tile", Name: ".label"},
	}
	e := &htmlExtractor{fetcher: fetcher, logger: testLogger()}
	products, err := e.Extract(context.Background(), src, pageURL, catalog.CategoryResin)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Dental Resin", products[0].Name)
	require.Equal(t, "https://cdn.example.com/dental.png", products[0].ImageURL)
}

func TestHTMLExtractFetchErrorPropagates(t *testing.T) {
	e := &htmlExtractor{fetcher: newStubFetcher(), logger: testLogger()}
	_, err := e.Extract(context.Background(), SourceConfig{Brand: "Example"},
		"https://example.com/missing", catalog.CategoryResin)
	require.Error(t, err)
}
