package scrape

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
)

// wooCardSelectors are the standard WooCommerce loop-item wrappers, from
// generic to theme-specific, tried in fixed order until one matches.
var wooCardSelectors = []string{
	".product", "li.product", ".type-product", ".product_item",
}

// wooTitleSelectors are tried per card after the configured title selector.
var wooTitleSelectors = []string{
	".woocommerce-loop-product__title", "h2", ".product-title",
}

// wooExtractor scrapes WordPress/WooCommerce shop pages.
type wooExtractor struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func (e *wooExtractor) Extract(ctx context.Context, src SourceConfig, pageURL string, _ catalog.Category) ([]catalog.RawProduct, error) {
	page, err := e.fetcher.FetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	var cards *goquery.Selection
	for _, sel := range wooCardSelectors {
		if cards = doc.Find(sel); cards.Length() > 0 {
			break
		}
	}
	if cards == nil || cards.Length() == 0 {
		return nil, nil
	}

	titleSelectors := wooTitleSelectors
	if src.Selectors.Name != "" {
		titleSelectors = append([]string{src.Selectors.Name}, wooTitleSelectors...)
	}

	var products []catalog.RawProduct
	cards.Each(func(_ int, card *goquery.Selection) {
		name := firstText(card, titleSelectors)
		if name == "" {
			return
		}

		var image string
		if img := card.Find("img").First(); img.Length() > 0 {
			image = imageAttr(img)
		}

		var price *float64
		if el := card.Find(".price").First(); el.Length() > 0 {
			price = parsePrice(el.Text())
		}

		link := card.Find("a.woocommerce-LoopProduct-link").First()
		if link.Length() == 0 {
			link = card.Find("a").First()
		}
		var productURL string
		if href, ok := link.Attr("href"); ok {
			productURL = resolveURL(pageURL, href)
		}

		products = append(products, catalog.RawProduct{
			Brand:      src.Brand,
			Name:       name,
			ImageURL:   image,
			ProductURL: productURL,
			Price:      price,
			Source:     "woocommerce_scrape",
		})
	})
	return products, nil
}
