package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/classify"
)

// shopifyExtractor reads the public products.json API every Shopify
// storefront exposes. This covers the large majority of 3D-printing brands.
type shopifyExtractor struct {
	fetcher Fetcher
	logger  *zap.Logger
}

const shopifyLimit = "products.json?limit=250"

var originPattern = regexp.MustCompile(`^https?://[^/]+`)

// shopifyEndpoints derives the candidate products.json endpoints for an
// arbitrary storefront or collection URL. A collection URL is tried
// collection-scoped first, then falls back to the bare domain.
func shopifyEndpoints(baseURL string) []string {
	base := strings.TrimRight(baseURL, "/")
	endpoints := []string{base + "/" + shopifyLimit}
	if strings.Contains(base, "/collections/") {
		if origin := originPattern.FindString(base); origin != "" {
			endpoints = append(endpoints, origin+"/"+shopifyLimit)
		}
	}
	return endpoints
}

// shopifyStoreBase strips any collection path, leaving the store root that
// product URLs hang off.
func shopifyStoreBase(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if i := strings.Index(base, "/collections"); i >= 0 {
		return base[:i]
	}
	return base
}

type shopifyProduct struct {
	Title       string           `json:"title"`
	Handle      string           `json:"handle"`
	ProductType string           `json:"product_type"`
	BodyHTML    string           `json:"body_html"`
	Tags        shopifyTags      `json:"tags"`
	Images      []shopifyImage   `json:"images"`
	Variants    []shopifyVariant `json:"variants"`
}

type shopifyImage struct {
	Src string `json:"src"`
}

type shopifyVariant struct {
	Price string `json:"price"`
}

// shopifyTags absorbs both representations the API uses: a JSON array or a
// single comma-separated string.
type shopifyTags []string

func (t *shopifyTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("shopify tags: %w", err)
	}
	if joined == "" {
		*t = nil
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*t = out
	return nil
}

type shopifyResponse struct {
	Products []shopifyProduct `json:"products"`
}

// Extract tries each candidate endpoint in order and returns the first
// batch that yields at least one product.
func (e *shopifyExtractor) Extract(ctx context.Context, src SourceConfig, pageURL string, target catalog.Category) ([]catalog.RawProduct, error) {
	storeBase := shopifyStoreBase(pageURL)
	var lastErr error
	for _, endpoint := range shopifyEndpoints(pageURL) {
		page, err := e.fetcher.FetchJSON(ctx, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		var resp shopifyResponse
		if err := json.Unmarshal(page.Body, &resp); err != nil {
			lastErr = fmt.Errorf("decode %s: %w", endpoint, err)
			continue
		}
		if len(resp.Products) == 0 {
			continue
		}
		products := make([]catalog.RawProduct, 0, len(resp.Products))
		for _, p := range resp.Products {
			if p.Title == "" {
				continue
			}
			products = append(products, e.mapProduct(p, src.Brand, storeBase, target))
		}
		if len(products) > 0 {
			return products, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("no shopify endpoint succeeded for %s: %w", pageURL, lastErr)
	}
	return nil, nil
}

func (e *shopifyExtractor) mapProduct(p shopifyProduct, brand, storeBase string, target catalog.Category) catalog.RawProduct {
	materialType := classify.TypeOf(p.Title+" "+p.ProductType, target)
	colorHex, colorName := classify.ColorOf(p.Title)

	var image string
	if len(p.Images) > 0 {
		image = p.Images[0].Src
	}
	var price *float64
	if len(p.Variants) > 0 {
		price = parsePriceValue(p.Variants[0].Price)
	}
	tags := []string(p.Tags)
	if len(tags) > 5 {
		tags = tags[:5]
	}
	if len(tags) == 0 {
		tags = []string{materialType}
	}
	return catalog.RawProduct{
		Brand:       brand,
		Name:        p.Title,
		Type:        materialType,
		ImageURL:    image,
		ProductURL:  storeBase + "/products/" + p.Handle,
		Price:       price,
		ColorHex:    colorHex,
		ColorName:   colorName,
		Tags:        tags,
		Description: cleanDescription(p.BodyHTML, 200),
		Source:      "shopify_api",
	}
}
