package scrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var priceDigits = regexp.MustCompile(`[\d.,]+`)

// parsePrice extracts a decimal price from mixed-format text such as
// "€29,99" or "From $19.99 USD". Returns nil when nothing parses; a bad
// price never fails a record.
func parsePrice(text string) *float64 {
	match := priceDigits.FindString(text)
	if match == "" {
		return nil
	}
	// Comma is treated as a decimal separator; storefronts in the source
	// list never include thousands grouping on listing pages.
	match = strings.ReplaceAll(match, ",", ".")
	if i := strings.Index(match, "."); i >= 0 {
		// Collapse any extra separators (e.g. "1.299.00" -> "1.29900").
		match = match[:i+1] + strings.ReplaceAll(match[i+1:], ".", "")
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}

// parsePriceValue parses a plain numeric price string after stripping
// currency symbols, for JSON payloads.
func parsePriceValue(raw string) *float64 {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", ".").Replace(strings.TrimSpace(raw))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

// normalizeImageURL rewrites protocol-relative image URLs to https.
func normalizeImageURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

// resolveURL makes href absolute against the page URL. Already-absolute
// links pass through; anything unparsable yields empty.
func resolveURL(pageURL, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// baseOrigin returns scheme://host for a URL, or empty when unparsable.
func baseOrigin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

var whitespace = regexp.MustCompile(`\s+`)

// cleanDescription strips markup from an HTML fragment and truncates the
// text to maxRunes.
func cleanDescription(html string, maxRunes int) string {
	if html == "" {
		return ""
	}
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		doc.Find("script, style").Remove()
		text = doc.Text()
	}
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	return truncateRunes(text, maxRunes)
}

// trimText collapses internal whitespace and trims the result.
func trimText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// imageAttr pulls the image URL from an <img> selection, trying the lazy
// loading attributes storefront themes use.
func imageAttr(sel *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src", "data-lazy-src", "srcset"} {
		if v, ok := sel.Attr(attr); ok && v != "" {
			// srcset lists candidates; take the first URL.
			if attr == "srcset" {
				fields := strings.Fields(v)
				if len(fields) == 0 {
					continue
				}
				v = fields[0]
			}
			return normalizeImageURL(v)
		}
	}
	return ""
}
