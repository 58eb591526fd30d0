// Package scrape implements the multi-strategy extraction pipeline: source
// configuration, the per-strategy extractors, and the orchestrator that
// turns heterogeneous storefronts into raw product records.
package scrape

import (
	"fmt"
	"time"
)

// Strategy selects the extraction algorithm for a source. The set is closed;
// an unknown value fails source validation before any network work happens.
type Strategy string

// Known extraction strategies.
const (
	StrategyShopify     Strategy = "shopify"
	StrategyHTML        Strategy = "html"
	StrategyJSON        Strategy = "json"
	StrategyWooCommerce Strategy = "woocommerce"
	StrategyJS          Strategy = "js"
	StrategyManual      Strategy = "manual"
)

// Valid reports whether the strategy is one of the known variants.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyShopify, StrategyHTML, StrategyJSON, StrategyWooCommerce, StrategyJS, StrategyManual:
		return true
	}
	return false
}

// Selectors are the CSS selectors used by the HTML-shaped strategies.
// Empty fields fall back to strategy defaults.
type Selectors struct {
	Card  string `mapstructure:"card"`
	Name  string `mapstructure:"name"`
	Image string `mapstructure:"image"`
	Price string `mapstructure:"price"`
	Link  string `mapstructure:"link"`
}

// SourceConfig is one immutable scraping unit: a brand, the strategy that
// understands its storefront, and the strategy-specific parameters.
type SourceConfig struct {
	Brand    string   `mapstructure:"brand"`
	Strategy Strategy `mapstructure:"strategy"`
	URLs     []string `mapstructure:"urls"`
	// Filter keeps only products whose name or URL contains the keyword.
	Filter    string    `mapstructure:"filter"`
	Selectors Selectors `mapstructure:"selectors"`
	// DataPath is a dotted gjson path to the product array in a JSON
	// response, e.g. "data.products".
	DataPath string `mapstructure:"data_path"`
	NameKey  string `mapstructure:"name_key"`
	ImageKey string `mapstructure:"image_key"`
	PriceKey string `mapstructure:"price_key"`
	// Products is the hand-authored name list for strategy=manual.
	Products     []string `mapstructure:"products"`
	DefaultImage string   `mapstructure:"default_image"`
}

// Validate reports configuration errors. A failing source yields zero
// records; it never aborts the run.
func (c SourceConfig) Validate() error {
	if c.Brand == "" {
		return fmt.Errorf("source missing brand")
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("source %s: unknown strategy %q", c.Brand, c.Strategy)
	}
	if c.Strategy == StrategyManual {
		if len(c.Products) == 0 {
			return fmt.Errorf("source %s: manual strategy requires a product list", c.Brand)
		}
		return nil
	}
	if len(c.URLs) == 0 {
		return fmt.Errorf("source %s: strategy %s requires at least one url", c.Brand, c.Strategy)
	}
	return nil
}

// Options carries the runtime knobs shared by every strategy.
type Options struct {
	UserAgent      string
	RequestTimeout time.Duration
	// RequestDelay is the minimum politeness delay between outbound
	// requests, enforced per request regardless of source.
	RequestDelay time.Duration
	JSTimeout    time.Duration
}
