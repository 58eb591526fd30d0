// Package images localizes product images so the catalog does not depend on
// storefront CDNs staying up. Downloads are best effort: a failure leaves
// the entry pointing at the remote URL.
package images

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/scrape"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify reduces text to a filesystem-safe lowercase token.
func Slugify(text string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(text), "_")
	return strings.Trim(slug, "_")
}

// Downloader fetches product images through the shared page fetcher, so
// image traffic obeys the same politeness delay and retry policy as page
// traffic.
type Downloader struct {
	root    string
	fetcher scrape.Fetcher
	logger  *zap.Logger
}

// New builds a downloader rooted at dir; category subdirectories are
// created on demand.
func New(dir string, fetcher scrape.Fetcher, logger *zap.Logger) *Downloader {
	return &Downloader{root: dir, fetcher: fetcher, logger: logger}
}

func categoryDir(c catalog.Category) string {
	if c == catalog.CategoryResin {
		return "resins"
	}
	return "filaments"
}

// fileExt picks the image extension from the URL path, defaulting to jpg.
func fileExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}
	switch ext := strings.ToLower(path.Ext(u.Path)); ext {
	case ".png", ".webp", ".jpeg", ".jpg", ".gif":
		return ext
	}
	return ".jpg"
}

// Fetch downloads the image for one product and returns the relative path
// to store in the catalog. A previously downloaded file is reused without
// touching the network.
func (d *Downloader) Fetch(ctx context.Context, rawURL string, target catalog.Category, brand, name string) (string, error) {
	if rawURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", fmt.Errorf("image url %q is not absolute", rawURL)
	}

	relDir := filepath.Join("images", categoryDir(target))
	fileName := Slugify(brand) + "_" + Slugify(name) + fileExt(rawURL)
	relPath := filepath.Join(relDir, fileName)
	absPath := filepath.Join(d.root, relPath)

	if _, err := os.Stat(absPath); err == nil {
		return relPath, nil
	}

	page, err := d.fetcher.FetchHTML(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	if len(page.Body) == 0 {
		return "", fmt.Errorf("download image: empty body from %s", rawURL)
	}

	if err := os.MkdirAll(filepath.Join(d.root, relDir), 0o750); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(absPath, page.Body, 0o600); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	d.logger.Debug("Image saved",
		zap.String("brand", brand),
		zap.String("name", name),
		zap.String("path", relPath),
	)
	return relPath, nil
}
