package catalog

// Printer profiles are filled deterministically from brand and material
// using lookup tables, never scraped. The exposure values come from the
// community baselines the front end ships with.

type slaPrinter struct {
	model          string
	exposure       float64
	bottomExposure float64
}

var slaPrinters = []slaPrinter{
	{"Anycubic Photon Mono X", 2.0, 25},
	{"Anycubic Photon M3 Plus", 1.8, 20},
	{"Elegoo Mars 3", 2.5, 30},
	{"Elegoo Saturn 2", 2.2, 25},
	{"Phrozen Sonic Mighty 8K", 2.1, 25},
	{"Creality Halot Mage", 2.3, 28},
}

// SLAProfiles returns the print profile set for a resin entry.
func SLAProfiles(brand, resinType string) map[string]Profile {
	profiles := map[string]Profile{
		"Default": {
			"layerHeight":      0.05,
			"bottomLayerCount": 5,
			"exposureTime":     2.5,
			"bottomExposure":   30,
			"liftDistance1":    5,
			"liftSpeed1":       60,
			"retractSpeed1":    150,
		},
	}
	for _, p := range slaPrinters {
		profiles[p.model] = Profile{
			"layerHeight":      0.05,
			"bottomLayerCount": 6,
			"exposureTime":     p.exposure,
			"bottomExposure":   p.bottomExposure,
			"liftDistance1":    6,
			"liftSpeed1":       65,
			"retractSpeed1":    180,
		}
	}
	return profiles
}

// fdmTemps returns nozzle and bed temperatures for a filament material.
func fdmTemps(material string) (printTemp, bedTemp float64) {
	switch material {
	case "PLA", "PLA+", "Silk", "Silk PLA", "Matte", "Matte PLA", "Wood":
		return 210, 60
	case "PETG":
		return 240, 80
	default:
		return 250, 100
	}
}

// FDMProfiles returns the print profile set for a filament entry.
func FDMProfiles(brand, material string) map[string]Profile {
	temp, bed := fdmTemps(material)
	return map[string]Profile{
		"Default": {
			"printTemp":          temp,
			"bedTemp":            bed,
			"fanSpeed":           100,
			"retractionDistance": 1.0,
			"retractionSpeed":    40,
		},
		"Fast / Draft (0.28mm)": {
			"printTemp":          temp + 5,
			"bedTemp":            bed,
			"fanSpeed":           100,
			"retractionDistance": 1.2,
			"retractionSpeed":    45,
		},
		"Fine Detail (0.12mm)": {
			"printTemp":          temp - 5,
			"bedTemp":            bed,
			"fanSpeed":           100,
			"retractionDistance": 0.8,
			"retractionSpeed":    35,
		},
		"Bambu Lab X1C / P1S": {
			"printTemp":          temp + 10,
			"bedTemp":            bed,
			"fanSpeed":           100,
			"retractionDistance": 0.8,
			"retractionSpeed":    50,
		},
	}
}

// BuildEntry converts an enriched raw product into a persisted entry for the
// given category. imagePath, when non-empty, is a locally cached image path
// that takes precedence over the remote URL.
func BuildEntry(p RawProduct, c Category, imagePath string) Entry {
	image := p.ImageURL
	if imagePath != "" {
		image = imagePath
	}
	tags := p.Tags
	if len(tags) == 0 && p.Type != "" {
		tags = []string{p.Type}
	}
	e := Entry{
		Brand:       p.Brand,
		Name:        p.Name,
		Image:       image,
		Description: p.Description,
		Color:       p.ColorHex,
		ColorName:   p.ColorName,
		Tags:        tags,
	}
	materialType := p.Type
	if materialType == "" {
		materialType = c.DefaultType()
	}
	if c == CategoryResin {
		e.Type = materialType
		e.Profiles = SLAProfiles(p.Brand, materialType)
	} else {
		e.Material = materialType
		e.Profiles = FDMProfiles(p.Brand, materialType)
	}
	return e
}
