package images

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matforge/materialdb/internal/catalog"
	"github.com/matforge/materialdb/internal/scrape"
)

type countingFetcher struct {
	body  []byte
	calls int
}

func (f *countingFetcher) FetchHTML(_ context.Context, rawURL string) (scrape.Page, error) {
	f.calls++
	if f.body == nil {
		return scrape.Page{}, fmt.Errorf("no body for %s", rawURL)
	}
	return scrape.Page{URL: rawURL, StatusCode: http.StatusOK, Body: f.body}, nil
}

func (f *countingFetcher) FetchJSON(ctx context.Context, rawURL string) (scrape.Page, error) {
	return f.FetchHTML(ctx, rawURL)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "esun_pla_filament", Slugify("eSUN PLA+ Filament"))
	require.Equal(t, "monocure_3d", Slugify("Monocure 3D"))
	require.Equal(t, "abs_like_resin_v2", Slugify("ABS-Like Resin (V2)"))
	require.Equal(t, "", Slugify("++--"))
}

func TestFetchWritesAndCaches(t *testing.T) {
	dir := t.TempDir()
	fetcher := &countingFetcher{body: []byte("image-bytes")}
	d := New(dir, fetcher, zap.NewNop())

	rel, err := d.Fetch(context.Background(), "https://cdn.example.com/pic.png",
		catalog.CategoryResin, "Anycubic", "Standard Resin")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("images", "resins", "anycubic_standard_resin.png"), rel)

	data, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	require.Equal(t, []byte("image-bytes"), data)

	// Second fetch is served from disk.
	rel2, err := d.Fetch(context.Background(), "https://cdn.example.com/pic.png",
		catalog.CategoryResin, "Anycubic", "Standard Resin")
	require.NoError(t, err)
	require.Equal(t, rel, rel2)
	require.Equal(t, 1, fetcher.calls)
}

func TestFetchDefaultsExtension(t *testing.T) {
	dir := t.TempDir()
	d := New(dir, &countingFetcher{body: []byte("x")}, zap.NewNop())

	rel, err := d.Fetch(context.Background(), "https://cdn.example.com/image?id=9",
		catalog.CategoryFilament, "eSUN", "PLA+")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("images", "filaments", "esun_pla.jpg"), rel)
}

func TestFetchRejectsRelativeURLs(t *testing.T) {
	d := New(t.TempDir(), &countingFetcher{}, zap.NewNop())
	_, err := d.Fetch(context.Background(), "/local/path.png",
		catalog.CategoryResin, "X", "Y")
	require.Error(t, err)
}

func TestFetchEmptyURLIsNoop(t *testing.T) {
	fetcher := &countingFetcher{}
	d := New(t.TempDir(), fetcher, zap.NewNop())
	rel, err := d.Fetch(context.Background(), "", catalog.CategoryResin, "X", "Y")
	require.NoError(t, err)
	require.Empty(t, rel)
	require.Zero(t, fetcher.calls)
}

func TestFetchDownloadFailure(t *testing.T) {
	d := New(t.TempDir(), &countingFetcher{}, zap.NewNop())
	_, err := d.Fetch(context.Background(), "https://cdn.example.com/gone.jpg",
		catalog.CategoryResin, "X", "Y")
	require.Error(t, err)
}
