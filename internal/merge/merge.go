// Package merge reconciles freshly scraped catalog entries with a
// previously persisted catalog. The engine is pure: it takes the prior
// catalog as input and returns the new one, with no file-system coupling.
package merge

import (
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/validate"
)

// Stats summarizes one merge run for observability.
type Stats struct {
	Added   int
	Updated int
	Removed int
}

// Merge combines incoming entries with the existing catalog:
//
//  1. Entries are matched by case-insensitive (brand, name) key. On match
//     only the volatile fields (profiles, params, image, description, tags)
//     are updated, and each only when the incoming value is present, so a
//     sparse scrape never nulls out previously known data. On no match the
//     entry is appended.
//  2. The entire result, old entries included, is re-validated against the
//     current blacklist rules and failing entries are dropped. A rule added
//     today therefore cleans previously persisted bad data, not just new
//     scrapes.
//
// Existing order is preserved; new entries are appended at the end. Merging
// an empty incoming list is a no-op modulo the re-validation sweep, which
// makes repeated runs with unchanged rules idempotent.
func Merge(incoming, existing []catalog.Entry, target catalog.Category, logger *zap.Logger) ([]catalog.Entry, Stats) {
	var stats Stats

	merged := make([]catalog.Entry, len(existing))
	copy(merged, existing)

	for _, in := range incoming {
		idx := indexOf(merged, in.Key())
		if idx < 0 {
			merged = append(merged, in)
			stats.Added++
			continue
		}
		merged[idx] = updateVolatile(merged[idx], in)
		stats.Updated++
	}

	final := merged[:0:0]
	for _, e := range merged {
		verdict := validate.Entry(e, target)
		if !verdict.OK {
			stats.Removed++
			if logger != nil {
				logger.Debug("Dropping blacklisted entry",
					zap.String("brand", e.Brand),
					zap.String("name", e.Name),
					zap.String("list", verdict.List),
					zap.String("pattern", verdict.Matched),
				)
			}
			continue
		}
		final = append(final, e)
	}

	if logger != nil {
		logger.Info("Merged catalog",
			zap.String("category", string(target)),
			zap.Int("added", stats.Added),
			zap.Int("updated", stats.Updated),
			zap.Int("removed", stats.Removed),
			zap.Int("total", len(final)),
		)
	}
	return final, stats
}

func indexOf(entries []catalog.Entry, key catalog.Key) int {
	for i, e := range entries {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// updateVolatile merges the incoming entry's volatile fields into the
// existing one. Fields absent on the incoming entry keep their prior value.
func updateVolatile(existing, in catalog.Entry) catalog.Entry {
	if in.Profiles != nil {
		existing.Profiles = in.Profiles
	}
	if in.Params != nil {
		existing.Params = in.Params
	}
	if in.Image != "" {
		existing.Image = in.Image
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if len(in.Tags) > 0 {
		existing.Tags = in.Tags
	}
	return existing
}
