package scrape

import "github.com/matforge/materialdb/internal/catalog"

// Built-in source lists, used when the configuration file supplies none.
// Ordering is deliberate: well-behaved API sources first, browser-rendered
// sources next, manually curated fallbacks last.

// DefaultResinSources covers the resin storefronts known to work.
var DefaultResinSources = []SourceConfig{
	{
		Brand:    "Anycubic",
		Strategy: StrategyShopify,
		URLs:     []string{"https://store.anycubic.com/collections/uv-resin"},
	},
	{
		Brand:    "ELEGOO",
		Strategy: StrategyShopify,
		URLs:     []string{"https://www.elegoo.com/collections/resin"},
	},
	{
		Brand:    "Siraya Tech",
		Strategy: StrategyShopify,
		URLs:     []string{"https://siraya.tech/collections/all"},
	},
	{
		Brand:     "Phrozen",
		Strategy:  StrategyJS,
		URLs:      []string{"https://phrozen3d.com/collections/resins"},
		Selectors: Selectors{Card: ".product-item"},
	},
	{
		Brand:    "Sunlu",
		Strategy: StrategyManual,
		Products: []string{
			"Standard Resin", "ABS-Like Resin", "Water Washable Resin",
			"Plant Based Resin", "High Toughness Resin", "Standard-Plus Resin",
		},
		DefaultImage: "https://placehold.co/600x600/1a1a1a/cccccc?text=SUNLU",
	},
	{
		Brand:     "Creality",
		Strategy:  StrategyJS,
		URLs:      []string{"https://store.creality.com/eu"},
		Selectors: Selectors{Card: ".product-card"},
		Filter:    "resin",
	},
	{
		Brand:    "Monocure 3D",
		Strategy: StrategyManual,
		Products: []string{
			"RAPID Resin", "TENACIOUS Resin", "Standard Resin", "Gunmetal Grey Resin",
		},
	},
	{
		Brand:    "eSUN",
		Strategy: StrategyManual,
		Products: []string{
			"General Purpose Resin", "Water Washable Resin", "ABS-Like Resin",
			"Plant-based Resin", "Standard Resin",
		},
	},
	{
		Brand:    "AmeraLabs",
		Strategy: StrategyManual,
		Products: []string{
			"AMD-3 LED", "TGM-7 LED", "XV Light",
			"DMD-31 Dental Model", "DMD-21 Dental Model",
		},
	},
}

// DefaultFilamentSources covers the filament storefronts known to work.
var DefaultFilamentSources = []SourceConfig{
	{
		Brand:    "Polymaker",
		Strategy: StrategyShopify,
		URLs:     []string{"https://us.polymaker.com/collections/all"},
	},
	{
		Brand:    "Hatchbox",
		Strategy: StrategyShopify,
		URLs:     []string{"https://www.hatchbox3d.com/collections/all"},
	},
	{
		Brand:    "Overture",
		Strategy: StrategyShopify,
		URLs:     []string{"https://overture3d.com/collections/filaments"},
	},
	{
		Brand:    "Eryone",
		Strategy: StrategyShopify,
		URLs:     []string{"https://eryone3d.com/collections/filament"},
	},
	{
		Brand:    "Anycubic",
		Strategy: StrategyShopify,
		URLs:     []string{"https://store.anycubic.com/collections/filament"},
	},
	{
		Brand:    "ELEGOO",
		Strategy: StrategyShopify,
		URLs:     []string{"https://www.elegoo.com/collections/pla-filament"},
	},
	{
		Brand:    "Creality",
		Strategy: StrategyJS,
		URLs:     []string{"https://store.creality.com/eu"},
		Filter:   "filament",
	},
	{
		Brand:    "Prusament",
		Strategy: StrategyManual,
		Products: []string{
			"Prusament PLA", "Prusament PETG", "Prusament ASA",
			"Prusament PC Blend", "Prusament PVB",
		},
		DefaultImage: "https://placehold.co/600x600/fa6831/ffffff?text=Prusament",
	},
	{
		Brand:    "Bambu Lab",
		Strategy: StrategyManual,
		Products: []string{
			"Bambu PLA Basic", "Bambu PLA Matte", "Bambu PETG Basic",
			"Bambu ABS", "Bambu PAHT-CF",
		},
		DefaultImage: "https://placehold.co/600x600/00AE42/ffffff?text=Bambu+Lab",
	},
	{
		Brand:    "Fillamentum",
		Strategy: StrategyManual,
		Products: []string{
			"PLA Extrafill", "CPE HG100", "Flexfill 98A", "Nylon FX256", "Timberfill",
		},
		DefaultImage: "https://placehold.co/600x600/1a1a1a/ffffff?text=Fillamentum",
	},
	{
		Brand:    "ColorFabb",
		Strategy: StrategyManual,
		Products: []string{
			"PLA/PHA", "nGen", "XT-CF20", "woodFill", "bronzeFill",
		},
		DefaultImage: "https://placehold.co/600x600/1a1a1a/ffffff?text=ColorFabb",
	},
	{
		Brand:    "NinjaTek",
		Strategy: StrategyManual,
		Products: []string{
			"NinjaFlex", "Cheetah", "Armadillo", "Chinchilla",
		},
		DefaultImage: "https://placehold.co/600x600/1a1a1a/ffffff?text=NinjaTek",
	},
	{
		Brand:    "Fiberlogy",
		Strategy: StrategyManual,
		Products: []string{
			"Easy PLA", "Fiberlogy REFILL", "FiberSatin", "FiberSilk", "FiberWood",
		},
		DefaultImage: "https://placehold.co/600x600/1a1a1a/ffffff?text=Fiberlogy",
	},
	{
		Brand:    "eSUN",
		Strategy: StrategyManual,
		Products: []string{
			"PLA+ Filament", "PETG Filament", "ABS+ Filament", "eSilk-PLA", "ePA-CF",
		},
		DefaultImage: "https://placehold.co/600x600/2665b5/ffffff?text=eSUN",
	},
	{
		Brand:    "Sunlu",
		Strategy: StrategyManual,
		Products: []string{
			"Sunlu PLA", "Sunlu PETG", "Sunlu ABS", "Sunlu PLA+", "Sunlu TPU",
		},
		DefaultImage: "https://placehold.co/600x600/1a1a1a/ffffff?text=Sunlu",
	},
}

// DefaultSources returns the built-in source list for a category.
func DefaultSources(c catalog.Category) []SourceConfig {
	if c == catalog.CategoryResin {
		return DefaultResinSources
	}
	return DefaultFilamentSources
}
