// Package export converts between the simple catalog files the front end
// reads and a richer schema carrying technical data: physical properties,
// commercial info, and per-printer print profiles. The rich side is the
// superset; converting rich to simple is lossy on purpose.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/matforge/materialdb/internal/catalog"
)

// CommercialProperties describe pricing and availability of one product.
type CommercialProperties struct {
	CostPerUnit *float64 `json:"cost_per_unit,omitempty"`
	Currency    string   `json:"currency"`
	VolumeML    *int     `json:"volume_ml,omitempty"`
	PurchaseURL string   `json:"purchase_url,omitempty"`
	Available   bool     `json:"available"`
}

func defaultCommercial() CommercialProperties {
	return CommercialProperties{Currency: "EUR", Available: true}
}

// ResinPhysical are the physical properties of a resin, all optional.
type ResinPhysical struct {
	DensityGML          *float64 `json:"density_g_ml,omitempty"`
	ViscosityCPS        *int     `json:"viscosity_cps,omitempty"`
	ShoreHardness       string   `json:"shore_hardness,omitempty"`
	ShrinkagePct        *float64 `json:"shrinkage_pct,omitempty"`
	TensileStrengthMPa  *float64 `json:"tensile_strength_mpa,omitempty"`
	ElongationBreakPct  *float64 `json:"elongation_break_pct,omitempty"`
	FlexuralModulusMPa  *float64 `json:"flexural_modulus_mpa,omitempty"`
	HeatDeflectionTempC *float64 `json:"heat_deflection_temp_c,omitempty"`
}

// ResinPrintProfile is one printer's exposure settings for a resin.
type ResinPrintProfile struct {
	PrinterModel     string  `json:"printer_model"`
	LayerHeightMM    float64 `json:"layer_height_mm"`
	BottomLayerCount int     `json:"bottom_layer_count"`
	ExposureTimeS    float64 `json:"exposure_time_s"`
	BottomExposureS  float64 `json:"bottom_exposure_s"`
	LiftDistanceMM   float64 `json:"lift_distance_mm"`
	LiftSpeedMMS     float64 `json:"lift_speed_mm_s"`
	RetractSpeedMMS  float64 `json:"retract_speed_mm_s"`
}

// Resin is the rich-schema record for one resin product.
type Resin struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Color       string   `json:"color,omitempty"`
	ColorName   string   `json:"color_name,omitempty"`
	Tags        []string `json:"tags"`

	Physical   ResinPhysical        `json:"physical_properties"`
	Commercial CommercialProperties `json:"commercial_properties"`

	Certifications []string `json:"certifications"`
	WavelengthsNM  []int    `json:"wavelengths_nm"`

	PrintProfiles []ResinPrintProfile `json:"print_profiles"`

	UpdatedAt       string `json:"updated_at"`
	DataSource      string `json:"data_source"`
	ManufacturerURL string `json:"manufacturer_url,omitempty"`
	DatasheetURL    string `json:"datasheet_url,omitempty"`
}

// FilamentPhysical are the physical properties of a filament.
type FilamentPhysical struct {
	DensityGCM3        *float64 `json:"density_g_cm3,omitempty"`
	DiameterMM         float64  `json:"diameter_mm"`
	ToleranceMM        float64  `json:"tolerance_mm"`
	TensileStrengthMPa *float64 `json:"tensile_strength_mpa,omitempty"`
	ElongationBreakPct *float64 `json:"elongation_break_pct,omitempty"`
	FlexuralModulusMPa *float64 `json:"flexural_modulus_mpa,omitempty"`
	MeltingTempC       *float64 `json:"melting_temp_c,omitempty"`
	GlassTransitionC   *float64 `json:"glass_transition_c,omitempty"`
	WaterAbsorptionPct *float64 `json:"water_absorption_pct,omitempty"`
}

func defaultFilamentPhysical() FilamentPhysical {
	return FilamentPhysical{DiameterMM: 1.75, ToleranceMM: 0.02}
}

// FilamentPrintProfile is one temperature/speed profile for a filament.
type FilamentPrintProfile struct {
	PrinterModel     string   `json:"printer_model,omitempty"`
	ExtruderTempC    int      `json:"extruder_temp_c"`
	BedTempC         int      `json:"bed_temp_c"`
	PrintSpeedMMS    *int     `json:"print_speed_mm_s,omitempty"`
	FanPct           int      `json:"fan_pct"`
	RetractionMM     *float64 `json:"retraction_mm,omitempty"`
	RequiresEnclosed bool     `json:"requires_enclosure"`
}

// Filament is the rich-schema record for one filament product.
type Filament struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Material    string   `json:"material"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Color       string   `json:"color,omitempty"`
	ColorName   string   `json:"color_name,omitempty"`
	Tags        []string `json:"tags"`

	Physical   FilamentPhysical     `json:"physical_properties"`
	Commercial CommercialProperties `json:"commercial_properties"`

	Certifications []string `json:"certifications"`

	PrintProfiles []FilamentPrintProfile `json:"print_profiles"`

	UpdatedAt       string `json:"updated_at"`
	DataSource      string `json:"data_source"`
	ManufacturerURL string `json:"manufacturer_url,omitempty"`
	DatasheetURL    string `json:"datasheet_url,omitempty"`
}

// ResinID formats the sequential resin identifier, 1-based.
func ResinID(n int) string { return fmt.Sprintf("RES-%04d", n) }

// FilamentID formats the sequential filament identifier, 1-based.
func FilamentID(n int) string { return fmt.Sprintf("FIL-%04d", n) }

func today() string { return time.Now().Format("2006-01-02") }

// sortedProfileNames gives a stable ordering with Default first.
func sortedProfileNames(profiles map[string]catalog.Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == "Default" {
			return true
		}
		if names[j] == "Default" {
			return false
		}
		return names[i] < names[j]
	})
	return names
}

// ResinFromEntry lifts a simple catalog entry into the rich schema.
func ResinFromEntry(e catalog.Entry, id string) Resin {
	profiles := make([]ResinPrintProfile, 0, len(e.Profiles))
	for _, printer := range sortedProfileNames(e.Profiles) {
		p := e.Profiles[printer]
		profiles = append(profiles, ResinPrintProfile{
			PrinterModel:     printer,
			LayerHeightMM:    p["layerHeight"],
			BottomLayerCount: int(p["bottomLayerCount"]),
			ExposureTimeS:    p["exposureTime"],
			BottomExposureS:  p["bottomExposure"],
			LiftDistanceMM:   p["liftDistance1"],
			LiftSpeedMMS:     p["liftSpeed1"],
			RetractSpeedMMS:  p["retractSpeed1"],
		})
	}
	return Resin{
		ID:            id,
		Brand:         e.Brand,
		Name:          e.Name,
		Type:          e.MaterialType(catalog.CategoryResin),
		Description:   e.Description,
		ImageURL:      e.Image,
		Color:         e.Color,
		ColorName:     e.ColorName,
		Tags:          append([]string{}, e.Tags...),
		Commercial:    defaultCommercial(),
		WavelengthsNM: []int{405},
		PrintProfiles: profiles,
		UpdatedAt:     today(),
		DataSource:    "scraped",
	}
}

// SimpleEntry projects the rich resin back onto the catalog schema.
func (r Resin) SimpleEntry() catalog.Entry {
	profiles := make(map[string]catalog.Profile, len(r.PrintProfiles))
	for _, p := range r.PrintProfiles {
		profiles[p.PrinterModel] = catalog.Profile{
			"layerHeight":      p.LayerHeightMM,
			"bottomLayerCount": float64(p.BottomLayerCount),
			"exposureTime":     p.ExposureTimeS,
			"bottomExposure":   p.BottomExposureS,
			"liftDistance1":    p.LiftDistanceMM,
			"liftSpeed1":       p.LiftSpeedMMS,
			"retractSpeed1":    p.RetractSpeedMMS,
		}
	}
	if len(profiles) == 0 {
		profiles = catalog.SLAProfiles(r.Brand, r.Type)
	}
	return catalog.Entry{
		Brand:       r.Brand,
		Name:        r.Name,
		Type:        r.Type,
		Image:       r.ImageURL,
		Description: r.Description,
		Color:       r.Color,
		ColorName:   r.ColorName,
		Tags:        append([]string{}, r.Tags...),
		Profiles:    profiles,
	}
}

// FilamentFromEntry lifts a simple catalog entry into the rich schema.
func FilamentFromEntry(e catalog.Entry, id string) Filament {
	var profiles []FilamentPrintProfile
	if len(e.Params) > 0 {
		profiles = append(profiles, FilamentPrintProfile{
			ExtruderTempC: int(e.Params["printTemp"]),
			BedTempC:      int(e.Params["bedTemp"]),
			FanPct:        100,
		})
	}
	return Filament{
		ID:            id,
		Brand:         e.Brand,
		Name:          e.Name,
		Material:      e.MaterialType(catalog.CategoryFilament),
		Description:   e.Description,
		ImageURL:      e.Image,
		Color:         e.Color,
		ColorName:     e.ColorName,
		Tags:          append([]string{}, e.Tags...),
		Physical:      defaultFilamentPhysical(),
		Commercial:    defaultCommercial(),
		PrintProfiles: profiles,
		UpdatedAt:     today(),
		DataSource:    "scraped",
	}
}

// SimpleEntry projects the rich filament back onto the catalog schema.
func (f Filament) SimpleEntry() catalog.Entry {
	params := catalog.Profile{
		"printTemp": 200,
		"bedTemp":   50,
		"fanSpeed":  100,
	}
	if len(f.PrintProfiles) > 0 {
		p := f.PrintProfiles[0]
		params = catalog.Profile{
			"printTemp": float64(p.ExtruderTempC),
			"bedTemp":   float64(p.BedTempC),
			"fanSpeed":  float64(p.FanPct),
		}
	}
	if f.Physical.DensityGCM3 != nil {
		params["density"] = *f.Physical.DensityGCM3
	} else {
		params["density"] = 1.24
	}
	return catalog.Entry{
		Brand:       f.Brand,
		Name:        f.Name,
		Material:    f.Material,
		Image:       f.ImageURL,
		Description: f.Description,
		Color:       f.Color,
		ColorName:   f.ColorName,
		Tags:        append([]string{}, f.Tags...),
		Params:      params,
	}
}

// Resins lifts a whole catalog, assigning sequential IDs in slice order.
func Resins(entries []catalog.Entry) []Resin {
	out := make([]Resin, 0, len(entries))
	for i, e := range entries {
		out = append(out, ResinFromEntry(e, ResinID(i+1)))
	}
	return out
}

// Filaments lifts a whole catalog, assigning sequential IDs in slice order.
func Filaments(entries []catalog.Entry) []Filament {
	out := make([]Filament, 0, len(entries))
	for i, e := range entries {
		out = append(out, FilamentFromEntry(e, FilamentID(i+1)))
	}
	return out
}
