package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matforge/materialdb/internal/catalog"
)

func TestStrategyValid(t *testing.T) {
	for _, s := range []Strategy{
		StrategyShopify, StrategyHTML, StrategyJSON,
		StrategyWooCommerce, StrategyJS, StrategyManual,
	} {
		require.True(t, s.Valid(), string(s))
	}
	require.False(t, Strategy("playwright").Valid())
	require.False(t, Strategy("").Valid())
}

func TestSourceConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		src     SourceConfig
		wantErr string
	}{
		{
			name:    "missing brand",
			src:     SourceConfig{Strategy: StrategyShopify, URLs: []string{"https://x.com"}},
			wantErr: "missing brand",
		},
		{
			name:    "unknown strategy",
			src:     SourceConfig{Brand: "X", Strategy: "selenium"},
			wantErr: "unknown strategy",
		},
		{
			name:    "manual without products",
			src:     SourceConfig{Brand: "X", Strategy: StrategyManual},
			wantErr: "requires a product list",
		},
		{
			name: "manual with products",
			src:  SourceConfig{Brand: "X", Strategy: StrategyManual, Products: []string{"A"}},
		},
		{
			name:    "network strategy without urls",
			src:     SourceConfig{Brand: "X", Strategy: StrategyShopify},
			wantErr: "requires at least one url",
		},
		{
			name: "network strategy with urls",
			src:  SourceConfig{Brand: "X", Strategy: StrategyHTML, URLs: []string{"https://x.com"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.src.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDefaultSourcesAreValid(t *testing.T) {
	for _, src := range append(append([]SourceConfig{}, DefaultResinSources...), DefaultFilamentSources...) {
		require.NoError(t, src.Validate(), src.Brand)
	}
}

func TestDefaultSourcesPerCategory(t *testing.T) {
	require.Equal(t, DefaultResinSources, DefaultSources(catalog.CategoryResin))
	require.Equal(t, DefaultFilamentSources, DefaultSources(catalog.CategoryFilament))
}
