package scrape

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
)

// fallbackCardSelectors are tried in order when the configured card
// selector matches nothing.
var fallbackCardSelectors = []string{
	".product", ".product-item", ".product-tile",
	"[data-product]", ".grid-item", ".collection-product",
}

// fallbackNameSelectors are tried in order when the configured name
// selector misses inside a card.
var fallbackNameSelectors = []string{
	"h2", "h3", "h4", ".title", ".name", "[data-product-title]",
}

// htmlExtractor scrapes product cards from server-rendered listing pages
// using CSS selectors.
type htmlExtractor struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func (e *htmlExtractor) Extract(ctx context.Context, src SourceConfig, pageURL string, _ catalog.Category) ([]catalog.RawProduct, error) {
	page, err := e.fetcher.FetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	cardSelector := src.Selectors.Card
	if cardSelector == "" {
		cardSelector = ".product-card"
	}
	cards := doc.Find(cardSelector)
	if cards.Length() == 0 {
		for _, sel := range fallbackCardSelectors {
			if cards = doc.Find(sel); cards.Length() > 0 {
				break
			}
		}
	}

	var products []catalog.RawProduct
	cards.Each(func(_ int, card *goquery.Selection) {
		p, ok := extractCard(card, src, pageURL)
		if !ok {
			return
		}
		p.Source = "html_scrape"
		products = append(products, p)
	})
	return products, nil
}

// extractCard pulls one raw product out of a card element. Returns false
// when no name could be found; nameless cards are discarded, not flagged.
func extractCard(card *goquery.Selection, src SourceConfig, pageURL string) (catalog.RawProduct, bool) {
	nameSelector := src.Selectors.Name
	if nameSelector == "" {
		nameSelector = ".product-title"
	}
	name := firstText(card, append([]string{nameSelector}, fallbackNameSelectors...))
	if name == "" {
		return catalog.RawProduct{}, false
	}

	imgSelector := src.Selectors.Image
	if imgSelector == "" {
		imgSelector = "img"
	}
	var image string
	if img := card.Find(imgSelector).First(); img.Length() > 0 {
		image = imageAttr(img)
	}

	priceSelector := src.Selectors.Price
	if priceSelector == "" {
		priceSelector = ".price"
	}
	var price *float64
	if el := card.Find(priceSelector).First(); el.Length() > 0 {
		price = parsePrice(el.Text())
	}

	linkSelector := src.Selectors.Link
	if linkSelector == "" {
		linkSelector = "a"
	}
	var productURL string
	if link := card.Find(linkSelector).First(); link.Length() > 0 {
		if href, ok := link.Attr("href"); ok {
			productURL = resolveURL(pageURL, href)
		}
	}

	return catalog.RawProduct{
		Brand:      src.Brand,
		Name:       name,
		ImageURL:   image,
		ProductURL: productURL,
		Price:      price,
	}, true
}

// firstText returns the trimmed text of the first selector that matches a
// non-empty element within sel.
func firstText(sel *goquery.Selection, selectors []string) string {
	for _, s := range selectors {
		if el := sel.Find(s).First(); el.Length() > 0 {
			if text := trimText(el.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}
