package scrape

import (
	"context"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
)

// Candidate key names per field, consulted in priority order after any
// configured key. The Spanish aliases come from the storefronts in the
// curated source list.
var (
	jsonNameKeys  = []string{"name", "title", "product_name", "nombre"}
	jsonImageKeys = []string{"image", "image_url", "img", "thumbnail", "imagen"}
	jsonPriceKeys = []string{"price", "precio", "cost"}
)

// jsonExtractor reads product arrays from arbitrary JSON endpoints, using a
// configured gjson path to find the array and prioritized key lists to pull
// fields out of each item.
type jsonExtractor struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func (e *jsonExtractor) Extract(ctx context.Context, src SourceConfig, pageURL string, _ catalog.Category) ([]catalog.RawProduct, error) {
	page, err := e.fetcher.FetchJSON(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(page.Body)
	data := root
	if src.DataPath != "" {
		data = root.Get(src.DataPath)
	}

	items := data.Array()
	if !data.IsArray() && data.Exists() {
		items = []gjson.Result{data}
	}

	var products []catalog.RawProduct
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		name := firstKey(item, src.NameKey, jsonNameKeys)
		if !name.Exists() || name.String() == "" {
			continue
		}
		products = append(products, catalog.RawProduct{
			Brand:    src.Brand,
			Name:     name.String(),
			ImageURL: normalizeImageURL(jsonImage(item, src.ImageKey)),
			Price:    jsonPrice(item, src.PriceKey),
			Source:   "json_api",
		})
	}
	return products, nil
}

// firstKey returns the first existing non-empty value among the configured
// key and the fallback list.
func firstKey(item gjson.Result, configured string, fallbacks []string) gjson.Result {
	keys := fallbacks
	if configured != "" {
		keys = append([]string{configured}, fallbacks...)
	}
	for _, k := range keys {
		if v := item.Get(k); v.Exists() && v.String() != "" {
			return v
		}
	}
	return gjson.Result{}
}

// jsonImage resolves the image field, unwrapping the nested object and
// array representations some APIs use.
func jsonImage(item gjson.Result, configured string) string {
	v := firstKey(item, configured, jsonImageKeys)
	switch {
	case v.IsObject():
		if src := v.Get("src"); src.Exists() {
			return src.String()
		}
		return v.Get("url").String()
	case v.IsArray():
		arr := v.Array()
		if len(arr) == 0 {
			return ""
		}
		first := arr[0]
		if first.IsObject() {
			return first.Get("src").String()
		}
		return first.String()
	default:
		return v.String()
	}
}

func jsonPrice(item gjson.Result, configured string) *float64 {
	v := firstKey(item, configured, jsonPriceKeys)
	if !v.Exists() {
		return nil
	}
	return parsePriceValue(v.String())
}
