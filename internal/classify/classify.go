// Package classify fills missing material type and color on raw products
// using ordered keyword tables. Table order is load-bearing: more specific
// keywords ("pla+") sit before their prefixes ("pla") and the first match
// wins, so these stay literal slices rather than maps.
package classify

import (
	"strings"

	"github.com/matforge/materialdb/internal/catalog"
)

type keywordLabel struct {
	keyword string
	label   string
}

// resinTypes maps name keywords to resin types, consulted in declared order.
var resinTypes = []keywordLabel{
	{"tough", "Tough"},
	{"abs-like", "ABS-Like"},
	{"abs like", "ABS-Like"},
	{"flexible", "Flexible"},
	{"elastic", "Elastic"},
	{"water wash", "Water Washable"},
	{"plant", "Plant Based"},
	{"castable", "Castable"},
	{"dental", "Dental"},
	{"high temp", "High Temp"},
	{"ceramic", "Ceramic"},
	{"clear", "Transparent"},
	{"transparent", "Transparent"},
	{"glow", "Glow in Dark"},
}

// filamentTypes maps name keywords to filament materials. "pla+" must stay
// ahead of "pla" and the carbon/silk/matte finishes ahead of the bare
// polymer names they decorate.
var filamentTypes = []keywordLabel{
	{"pla+", "PLA+"},
	{"pla plus", "PLA+"},
	{"petg", "PETG"},
	{"abs", "ABS"},
	{"asa", "ASA"},
	{"tpu", "TPU"},
	{"tpe", "TPE"},
	{"nylon", "Nylon"},
	{"pa12", "Nylon"},
	{"pa6", "Nylon"},
	{"carbon", "Carbon Fiber"},
	{"pa-cf", "Carbon Fiber"},
	{"silk", "Silk"},
	{"matte", "Matte"},
	{"wood", "Wood"},
	{"metal", "Metal Fill"},
	{"glow", "Glow"},
	{"flex", "TPU"},
	{"pla", "PLA"},
}

type colorEntry struct {
	keyword string
	hex     string
	name    string
}

// colors is shared between both catalogs.
var colors = []colorEntry{
	{"black", "#000000", "Black"},
	{"white", "#ffffff", "White"},
	{"grey", "#808080", "Grey"},
	{"gray", "#808080", "Grey"},
	{"red", "#ef4444", "Red"},
	{"blue", "#3b82f6", "Blue"},
	{"green", "#22c55e", "Green"},
	{"yellow", "#eab308", "Yellow"},
	{"orange", "#f97316", "Orange"},
	{"purple", "#a855f7", "Purple"},
	{"pink", "#ec4899", "Pink"},
	{"clear", "#e5e7eb", "Clear"},
	{"transparent", "#e5e7eb", "Transparent"},
	{"silver", "#c0c0c0", "Silver"},
	{"gold", "#ffd700", "Gold"},
	{"beige", "#d4a574", "Beige"},
	{"navy", "#3f4756", "Navy"},
	{"teal", "#14b8a6", "Teal"},
	{"cyan", "#06b6d4", "Cyan"},
}

// Default color when no keyword matches.
const (
	DefaultColorHex  = "#808080"
	DefaultColorName = "Grey"
)

// TypeOf detects the material type for the given catalog from free text,
// falling back to the category default.
func TypeOf(text string, c catalog.Category) string {
	lower := strings.ToLower(text)
	table := filamentTypes
	if c == catalog.CategoryResin {
		table = resinTypes
	}
	for _, kl := range table {
		if strings.Contains(lower, kl.keyword) {
			return kl.label
		}
	}
	return c.DefaultType()
}

// ColorOf detects a (hex, name) color pair from free text.
func ColorOf(text string) (hex, name string) {
	lower := strings.ToLower(text)
	for _, ce := range colors {
		if strings.Contains(lower, ce.keyword) {
			return ce.hex, ce.name
		}
	}
	return DefaultColorHex, DefaultColorName
}

// Enrich returns a copy of p with type, color, and tags filled when absent.
// Filling is additive only: values already set on the record (for example by
// the Shopify strategy, which detects inline) are authoritative.
func Enrich(p catalog.RawProduct, c catalog.Category) catalog.RawProduct {
	if p.Type == "" {
		p.Type = TypeOf(p.Name, c)
	}
	if p.ColorHex == "" {
		p.ColorHex, p.ColorName = ColorOf(p.Name)
	}
	if len(p.Tags) == 0 {
		p.Tags = []string{p.Type}
	}
	return p
}
