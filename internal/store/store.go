// Package store persists material catalogs as human-formatted JSON files,
// one per category. The merge engine stays file-system free; this is the
// narrow load/save boundary around it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
)

// CatalogStore reads and writes catalog files under a root directory.
type CatalogStore struct {
	root   string
	logger *zap.Logger
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string, logger *zap.Logger) (*CatalogStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create catalog dir %s: %w", dir, err)
	}
	return &CatalogStore{root: dir, logger: logger}, nil
}

// Path returns the catalog file path for the category.
func (s *CatalogStore) Path(c catalog.Category) string {
	return filepath.Join(s.root, c.FileName())
}

// Load reads the persisted catalog for the category. A missing or corrupt
// file degrades to an empty catalog; a run must never abort because the
// previous output is unreadable.
func (s *CatalogStore) Load(c catalog.Category) []catalog.Entry {
	path := s.Path(c)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Could not read existing catalog; starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	var entries []catalog.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("Existing catalog is not valid JSON; starting empty",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	return entries
}

// Save writes the catalog as an indented UTF-8 JSON array. The slice order
// is preserved as written.
func (s *CatalogStore) Save(c catalog.Category, entries []catalog.Entry) error {
	if entries == nil {
		entries = []catalog.Entry{}
	}
	payload, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s catalog: %w", c, err)
	}
	path := s.Path(c)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	s.logger.Info("Saved catalog",
		zap.String("path", path), zap.Int("entries", len(entries)))
	return nil
}
