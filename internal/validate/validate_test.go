package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matforge/materialdb/internal/catalog"
)

func TestCheckResinTarget(t *testing.T) {
	cases := []struct {
		name    string
		tags    []string
		ok      bool
		list    string
		comment string
	}{
		{name: "Standard ABS Filament", ok: false, list: "filament",
			comment: "filament product in the resin catalog"},
		{name: "ABS-Like Resin V2", ok: true,
			comment: "abs with like is a legitimate resin type"},
		{name: "Standard ABS Resin", ok: false, list: "filament",
			comment: "standalone abs without like"},
		{name: "Water Washable Resin 1kg", ok: true},
		{name: "Wash and Cure Station 2.0", ok: false, list: "hardware"},
		{name: "Halot Mage Pro", ok: false, list: "hardware"},
		{name: "Resin Black Friday Bundle", ok: false, list: "spam"},
		{name: "Nice Resin", tags: []string{"PLA"}, ok: false, list: "filament",
			comment: "tags participate for the resin target"},
		{name: "Photon Mono Resin Printer", ok: false, list: "hardware"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Check(tc.name, tc.tags, catalog.CategoryResin)
			require.Equal(t, tc.ok, v.OK, tc.comment)
			if !tc.ok {
				require.Equal(t, tc.list, v.List)
				require.NotEmpty(t, v.Matched)
			}
		})
	}
}

func TestCheckFilamentTarget(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		ok   bool
		list string
	}{
		{name: "Standard ABS Filament", ok: true},
		{name: "ABS-Like Resin V2", ok: false, list: "resin"},
		{name: "eSUN PLA+", ok: true},
		{name: "Ender 3 Nozzle Kit", ok: false, list: "hardware"},
		{name: "PLA Filament Guide", ok: false, list: "spam"},
		{name: "PLA Special", tags: []string{"discount"}, ok: false, list: "spam"},
		// Resin and hardware sets only see the name on the filament target.
		{name: "Galaxy PLA", tags: []string{"resin compatible"}, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Check(tc.name, tc.tags, catalog.CategoryFilament)
			require.Equal(t, tc.ok, v.OK)
			if !tc.ok {
				require.Equal(t, tc.list, v.List)
			}
		})
	}
}

func TestCheckIsDeterministic(t *testing.T) {
	first := Check("Creality Halot Mage", nil, catalog.CategoryResin)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Check("Creality Halot Mage", nil, catalog.CategoryResin))
	}
}

func TestProductAndEntryAgree(t *testing.T) {
	p := catalog.RawProduct{Name: "Standard ABS Filament", Tags: []string{"abs"}}
	e := catalog.Entry{Name: "Standard ABS Filament", Tags: []string{"abs"}}
	require.Equal(t,
		Product(p, catalog.CategoryResin),
		Entry(e, catalog.CategoryResin),
	)
}
