package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matforge/materialdb/internal/catalog"
)

func TestIDFormats(t *testing.T) {
	require.Equal(t, "RES-0001", ResinID(1))
	require.Equal(t, "RES-0042", ResinID(42))
	require.Equal(t, "FIL-0007", FilamentID(7))
	require.Equal(t, "FIL-1234", FilamentID(1234))
}

func TestResinRoundTrip(t *testing.T) {
	entry := catalog.Entry{
		Brand:       "Anycubic",
		Name:        "Water Washable Resin",
		Type:        "Water Washable",
		Image:       "images/resins/anycubic_water_washable_resin.jpg",
		Description: "Rinses with tap water.",
		Color:       "#808080",
		ColorName:   "Grey",
		Tags:        []string{"Water Washable"},
		Profiles:    catalog.SLAProfiles("Anycubic", "Water Washable"),
	}

	rich := ResinFromEntry(entry, "RES-0001")
	require.Equal(t, "RES-0001", rich.ID)
	require.Equal(t, "Water Washable", rich.Type)
	require.Equal(t, []int{405}, rich.WavelengthsNM)
	require.Equal(t, "EUR", rich.Commercial.Currency)
	require.True(t, rich.Commercial.Available)
	require.Len(t, rich.PrintProfiles, 7)
	require.Equal(t, "Default", rich.PrintProfiles[0].PrinterModel, "Default sorts first")
	require.Equal(t, 2.5, rich.PrintProfiles[0].ExposureTimeS)

	back := rich.SimpleEntry()
	require.Equal(t, entry.Brand, back.Brand)
	require.Equal(t, entry.Name, back.Name)
	require.Equal(t, entry.Type, back.Type)
	require.Equal(t, entry.Profiles, back.Profiles)
}

func TestFilamentRoundTrip(t *testing.T) {
	entry := catalog.Entry{
		Brand:    "eSUN",
		Name:     "PLA+ Filament",
		Material: "PLA+",
		Params:   catalog.Profile{"printTemp": 210, "bedTemp": 60},
	}

	rich := FilamentFromEntry(entry, "FIL-0001")
	require.Equal(t, "PLA+", rich.Material)
	require.Equal(t, 1.75, rich.Physical.DiameterMM)
	require.Len(t, rich.PrintProfiles, 1)
	require.Equal(t, 210, rich.PrintProfiles[0].ExtruderTempC)

	back := rich.SimpleEntry()
	require.Equal(t, "PLA+", back.Material)
	require.Equal(t, 210.0, back.Params["printTemp"])
	require.Equal(t, 60.0, back.Params["bedTemp"])
	require.Equal(t, 1.24, back.Params["density"], "density defaults when unknown")
}

func TestFilamentWithoutParamsGetsDefaults(t *testing.T) {
	rich := FilamentFromEntry(catalog.Entry{Brand: "X", Name: "Mystery"}, "FIL-0001")
	require.Empty(t, rich.PrintProfiles)
	require.Equal(t, "PLA", rich.Material, "material falls back to the category default")

	back := rich.SimpleEntry()
	require.Equal(t, 200.0, back.Params["printTemp"])
	require.Equal(t, 50.0, back.Params["bedTemp"])
}

func TestBatchExportAssignsSequentialIDs(t *testing.T) {
	entries := []catalog.Entry{
		{Brand: "A", Name: "One", Type: "Standard"},
		{Brand: "B", Name: "Two", Type: "Tough"},
	}
	resins := Resins(entries)
	require.Len(t, resins, 2)
	require.Equal(t, "RES-0001", resins[0].ID)
	require.Equal(t, "RES-0002", resins[1].ID)

	filaments := Filaments(entries[:1])
	require.Len(t, filaments, 1)
	require.Equal(t, "FIL-0001", filaments[0].ID)
}
