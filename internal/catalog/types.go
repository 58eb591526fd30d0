// Package catalog defines the core data model shared across the scraping
// pipeline: the transient records produced by extraction strategies and the
// persisted catalog entries consumed by the front end.
package catalog

import "strings"

// Category identifies which material catalog a record belongs to.
type Category string

// Supported catalog categories.
const (
	CategoryResin    Category = "resin"
	CategoryFilament Category = "filament"
)

// Valid reports whether the category is one of the supported catalogs.
func (c Category) Valid() bool {
	return c == CategoryResin || c == CategoryFilament
}

// DefaultType is the material type assigned when no keyword matches.
func (c Category) DefaultType() string {
	if c == CategoryResin {
		return "Standard"
	}
	return "PLA"
}

// FileName is the well-known catalog file name for the category.
func (c Category) FileName() string {
	if c == CategoryResin {
		return "resins_db.json"
	}
	return "filaments_db.json"
}

// RawProduct is the transient record emitted by an extraction strategy.
// A record must carry a non-empty Name to proceed past extraction; every
// other field is optional and may be filled later by classification.
type RawProduct struct {
	Brand       string
	Name        string
	Type        string
	ImageURL    string
	ProductURL  string
	Price       *float64
	ColorHex    string
	ColorName   string
	Tags        []string
	Description string
	// Source identifies the strategy that produced the record.
	Source string
}

// Profile is one named set of printer parameters.
type Profile map[string]float64

// Entry is a persisted catalog record, one per distinct (brand, name) pair.
type Entry struct {
	Brand       string             `json:"brand"`
	Name        string             `json:"name"`
	Type        string             `json:"type,omitempty"`
	Material    string             `json:"material,omitempty"`
	Image       string             `json:"image,omitempty"`
	Description string             `json:"description,omitempty"`
	Color       string             `json:"color,omitempty"`
	ColorName   string             `json:"colorName,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Profiles    map[string]Profile `json:"profiles,omitempty"`
	Params      Profile            `json:"params,omitempty"`
}

// Key is the case-insensitive identity of a catalog entry.
type Key struct {
	Brand string
	Name  string
}

// KeyOf builds the identity key for a (brand, name) pair.
func KeyOf(brand, name string) Key {
	return Key{
		Brand: strings.ToLower(brand),
		Name:  strings.ToLower(name),
	}
}

// Key returns the entry's identity key.
func (e Entry) Key() Key {
	return KeyOf(e.Brand, e.Name)
}

// MaterialType returns whichever of Type/Material is set, falling back to
// the category default. Resin entries carry Type, filament entries Material.
func (e Entry) MaterialType(c Category) string {
	if e.Type != "" {
		return e.Type
	}
	if e.Material != "" {
		return e.Material
	}
	return c.DefaultType()
}
