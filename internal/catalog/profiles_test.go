package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSLAProfiles(t *testing.T) {
	profiles := SLAProfiles("Anycubic", "Standard")
	require.Len(t, profiles, 7, "Default plus six printers")

	def := profiles["Default"]
	require.Equal(t, 0.05, def["layerHeight"])
	require.Equal(t, 5.0, def["bottomLayerCount"])
	require.Equal(t, 2.5, def["exposureTime"])
	require.Equal(t, 30.0, def["bottomExposure"])

	monoX := profiles["Anycubic Photon Mono X"]
	require.Equal(t, 2.0, monoX["exposureTime"])
	require.Equal(t, 25.0, monoX["bottomExposure"])
	require.Equal(t, 6.0, monoX["bottomLayerCount"])
}

func TestFDMProfilesTemperatures(t *testing.T) {
	cases := []struct {
		material  string
		printTemp float64
		bedTemp   float64
	}{
		{"PLA", 210, 60},
		{"PLA+", 210, 60},
		{"Silk", 210, 60},
		{"PETG", 240, 80},
		{"ABS", 250, 100},
		{"Nylon", 250, 100},
	}
	for _, tc := range cases {
		t.Run(tc.material, func(t *testing.T) {
			profiles := FDMProfiles("Generic", tc.material)
			require.Equal(t, tc.printTemp, profiles["Default"]["printTemp"])
			require.Equal(t, tc.bedTemp, profiles["Default"]["bedTemp"])
			require.Equal(t, tc.printTemp+5, profiles["Fast / Draft (0.28mm)"]["printTemp"])
			require.Equal(t, tc.printTemp-5, profiles["Fine Detail (0.12mm)"]["printTemp"])
			require.Equal(t, tc.printTemp+10, profiles["Bambu Lab X1C / P1S"]["printTemp"])
		})
	}
}

func TestBuildEntryResin(t *testing.T) {
	p := RawProduct{
		Brand:     "ELEGOO",
		Name:      "Water Washable Resin",
		Type:      "Water Washable",
		ImageURL:  "https://cdn.example.com/resin.jpg",
		ColorHex:  "#808080",
		ColorName: "Grey",
		Tags:      []string{"Water Washable"},
	}
	e := BuildEntry(p, CategoryResin, "")
	require.Equal(t, "Water Washable", e.Type)
	require.Empty(t, e.Material)
	require.Equal(t, "https://cdn.example.com/resin.jpg", e.Image)
	require.Len(t, e.Profiles, 7)
}

func TestBuildEntryFilament(t *testing.T) {
	p := RawProduct{
		Brand: "eSUN",
		Name:  "PLA+ Filament",
		Type:  "PLA+",
	}
	e := BuildEntry(p, CategoryFilament, "images/filaments/esun_pla_filament.jpg")
	require.Equal(t, "PLA+", e.Material)
	require.Empty(t, e.Type)
	require.Equal(t, "images/filaments/esun_pla_filament.jpg", e.Image,
		"local image path beats the remote URL")
	require.Equal(t, []string{"PLA+"}, e.Tags, "tags default to the material type")
	require.Equal(t, 210.0, e.Profiles["Default"]["printTemp"])
}

func TestBuildEntryDefaultsType(t *testing.T) {
	e := BuildEntry(RawProduct{Brand: "X", Name: "Something"}, CategoryResin, "")
	require.Equal(t, "Standard", e.Type)

	e = BuildEntry(RawProduct{Brand: "X", Name: "Something"}, CategoryFilament, "")
	require.Equal(t, "PLA", e.Material)
}
