package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
)

// jsCardSelectors are the DOM-fallback card selectors, tried in order after
// the configured one.
var jsCardSelectors = []string{
	"div.product-item", "li.grid__item", "div.product-card",
	"article", ".product", ".grid-product",
}

// jsTitleSelectors are the per-card title candidates for the DOM fallback.
var jsTitleSelectors = []string{
	"h2", "h3", "h4", ".title", ".name", ".product-title",
	".product-item-link", ".grid-product__title", ".product-grid-item__title",
	".card-title",
}

// jsExtractor drives a headless browser for pages whose listings only exist
// after JavaScript runs. One browser is launched per source invocation and
// torn down before control returns, even on failure.
//
// Two paths produce records: background product-data responses intercepted
// off the network, and DOM scraping of the rendered page. Interception wins
// outright when it yields anything; the DOM fallback only runs otherwise.
type jsExtractor struct {
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

// interceptBuffer collects candidate product-data responses as the page
// loads. Listener callbacks run on the browser goroutine, hence the lock.
type interceptBuffer struct {
	mu  sync.Mutex
	ids []network.RequestID
}

func (b *interceptBuffer) add(id network.RequestID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ids = append(b.ids, id)
}

func (b *interceptBuffer) snapshot() []network.RequestID {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]network.RequestID, len(b.ids))
	copy(out, b.ids)
	return out
}

// interceptCandidate reports whether a network response looks like product
// listing data worth parsing.
func interceptCandidate(ev *network.EventResponseReceived) bool {
	if ev.Type != network.ResourceTypeXHR && ev.Type != network.ResourceTypeFetch {
		return false
	}
	if ev.Response == nil || ev.Response.Status != 200 {
		return false
	}
	return strings.Contains(strings.ToLower(ev.Response.URL), "product")
}

func (e *jsExtractor) Extract(ctx context.Context, src SourceConfig, pageURL string, _ catalog.Category) ([]catalog.RawProduct, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(e.userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	runCtx, cancelRun := context.WithTimeout(tabCtx, e.timeout)
	defer cancelRun()

	buffer := &interceptBuffer{}
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok && interceptCandidate(resp) {
			buffer.add(resp.RequestID)
		}
	})

	var html string
	if err := chromedp.Run(runCtx, e.renderTasks(pageURL, &html)...); err != nil {
		// A navigation timeout can still leave useful intercepted data or
		// a partially rendered DOM behind; only give up with nothing.
		if html == "" && len(buffer.snapshot()) == 0 {
			return nil, fmt.Errorf("render %s: %w", pageURL, err)
		}
		e.logger.Debug("Render finished with error; using partial results",
			zap.String("url", pageURL), zap.Error(err))
	}

	if products := e.collectIntercepted(runCtx, buffer, src.Brand, pageURL); len(products) > 0 {
		return products, nil
	}
	return e.scrapeDOM(html, src, pageURL)
}

// renderTasks loads the page and performs human-like interaction: an idle
// wait, a mouse move, and incremental scrolls to trigger lazy loading.
func (e *jsExtractor) renderTasks(pageURL string, html *string) chromedp.Tasks {
	tasks := chromedp.Tasks{
		network.Enable(),
		emulation.SetUserAgentOverride(e.userAgent),
		chromedp.Navigate(pageURL),
		chromedp.Sleep(2 * time.Second),
		input.DispatchMouseEvent(input.MouseMoved, 300, 400),
		chromedp.Sleep(time.Second),
	}
	for i := 0; i < 5; i++ {
		tasks = append(tasks,
			chromedp.Evaluate("window.scrollBy(0, 3000)", nil),
			chromedp.Sleep(1500*time.Millisecond),
		)
	}
	tasks = append(tasks, chromedp.OuterHTML("html", html, chromedp.ByQuery))
	return tasks
}

// collectIntercepted reads the bodies of the buffered responses and parses
// whatever product rows they contain.
func (e *jsExtractor) collectIntercepted(ctx context.Context, buffer *interceptBuffer, brand, pageURL string) []catalog.RawProduct {
	ids := buffer.snapshot()
	if len(ids) == 0 {
		return nil
	}
	origin := baseOrigin(pageURL)

	var products []catalog.RawProduct
	err := chromedp.Run(ctx, chromedp.ActionFunc(func(cdpCtx context.Context) error {
		for _, id := range ids {
			body, err := network.GetResponseBody(id).Do(cdpCtx)
			if err != nil {
				continue
			}
			products = append(products, parseInterceptPayload(body, brand, origin)...)
		}
		return nil
	}))
	if err != nil {
		e.logger.Debug("Reading intercepted bodies failed",
			zap.String("url", pageURL), zap.Error(err))
	}
	return products
}

// parseInterceptPayload extracts product rows from an intercepted JSON
// response. Rows live under "data" or "data.rows" on the storefront APIs
// this path targets.
func parseInterceptPayload(body []byte, brand, origin string) []catalog.RawProduct {
	data := gjson.GetBytes(body, "data")
	if data.IsObject() {
		data = data.Get("rows")
	}
	if !data.IsArray() {
		return nil
	}

	var products []catalog.RawProduct
	data.ForEach(func(_, row gjson.Result) bool {
		name := row.Get("name").String()
		if name == "" {
			return true
		}
		image := row.Get("image").String()
		if image == "" {
			image = row.Get("img").String()
		}
		var productURL string
		if slug := row.Get("slug").String(); slug != "" && origin != "" {
			productURL = origin + "/products/" + slug
		}
		products = append(products, catalog.RawProduct{
			Brand:      brand,
			Name:       name,
			ImageURL:   normalizeImageURL(image),
			ProductURL: productURL,
			Source:     "js_intercept",
		})
		return true
	})
	return products
}

// scrapeDOM is the fallback path: query cards out of the rendered HTML with
// cascading selectors. One card failing to parse never aborts the batch.
func (e *jsExtractor) scrapeDOM(html string, src SourceConfig, pageURL string) ([]catalog.RawProduct, error) {
	if html == "" {
		return nil, nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page %s: %w", pageURL, err)
	}

	selectors := jsCardSelectors
	if src.Selectors.Card != "" {
		selectors = append([]string{src.Selectors.Card}, jsCardSelectors...)
	}
	var cards *goquery.Selection
	for _, sel := range selectors {
		if cards = doc.Find(sel); cards.Length() > 0 {
			break
		}
	}
	if cards == nil || cards.Length() == 0 {
		return nil, nil
	}

	var products []catalog.RawProduct
	cards.Each(func(_ int, card *goquery.Selection) {
		name := firstText(card, jsTitleSelectors)
		if name == "" {
			// Last resort: the card's first text line.
			name = trimText(strings.SplitN(card.Text(), "\n", 2)[0])
		}
		name = truncateRunes(name, 100)
		if len([]rune(name)) <= 2 {
			return
		}

		var image string
		if img := card.Find("img").First(); img.Length() > 0 {
			image = imageAttr(img)
		}
		var productURL string
		if link := card.Find("a").First(); link.Length() > 0 {
			if href, ok := link.Attr("href"); ok {
				productURL = resolveURL(pageURL, href)
			}
		}
		products = append(products, catalog.RawProduct{
			Brand:      src.Brand,
			Name:       name,
			ImageURL:   image,
			ProductURL: productURL,
			Source:     "js_render",
		})
	})
	return products, nil
}
