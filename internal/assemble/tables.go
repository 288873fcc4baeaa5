package assemble

// Category lookup tables. These are pure data, loaded once; nothing mutates
// them at runtime.

// categoryTypes maps a category to the generic product type used in titles.
var categoryTypes = map[string]string{
	"Access Equipment":        "Access Platform",
	"Air Compressors & Tools": "Air Compressor",
	"Breaking & Drilling":     "Breaker",
	"Cleaning Equipment":      "Cleaner",
	"Compaction Equipment":    "Compactor",
	"Concrete Equipment":      "Concrete Mixer",
	"Cutting & Grinding":      "Cut Off Saw",
	"Dehumidifiers":           "Dehumidifier",
	"Electrical Equipment":    "Transformer",
	"Fans & Ventilation":      "Ventilation Fan",
	"Floor Care":              "Floor Sander",
	"Garden Equipment":        "Garden Machine",
	"Generators":              "Generator",
	"Heating":                 "Space Heater",
	"Lifting Equipment":       "Hoist",
	"Lighting":                "Lighting Tower",
	"Power Tools":             "Power Tool",
	"Pumps":                   "Water Pump",
	"Welding Equipment":       "Welder",
}

// categoryBenefits supplies benefit phrases per category. Unlisted
// categories use genericBenefits.
var categoryBenefits = map[string][]string{
	"Generators": {
		"Reliable power supply for sites without mains",
		"Fuel efficient running keeps hire costs down",
		"Stable output protects sensitive equipment",
	},
	"Breaking & Drilling": {
		"High impact energy for fast demolition",
		"Low vibration design reduces operator fatigue",
		"Handles concrete, masonry, and tarmac",
	},
	"Access Equipment": {
		"Safe working at height without scaffolding",
		"Compact footprint fits restricted sites",
		"Quick setup gets crews working sooner",
	},
	"Compaction Equipment": {
		"Consistent compaction for a stable sub-base",
		"Manoeuvrable on trenches and confined areas",
	},
	"Pumps": {
		"Rapid water shifting for flooded sites",
		"Handles dirty water and solids in suspension",
	},
	"Concrete Equipment": {
		"Consistent mixes batch after batch",
		"Built to withstand daily site conditions",
	},
	"Heating": {
		"Fast heat-up keeps work moving in cold weather",
		"Dries out buildings between trades",
	},
	"Cleaning Equipment": {
		"Cuts cleaning time on large areas",
		"Professional results on stubborn grime",
	},
	"Lighting": {
		"Bright, even coverage for safe night working",
		"Extends the working day on winter sites",
	},
	"Welding Equipment": {
		"Stable arc for clean, strong welds",
		"Suits site and workshop fabrication",
	},
	"Cutting & Grinding": {
		"Clean, accurate cuts in hard materials",
		"Power to spare for continuous cutting",
	},
	"Dehumidifiers": {
		"Pulls moisture fast after floods or plastering",
		"Protects finishes while buildings dry",
	},
}

// genericBenefits is the fallback for categories without a benefits entry.
var genericBenefits = []string{
	"Robust construction for site conditions",
	"Straightforward operation with minimal training",
	"Regularly serviced and safety tested",
	"Suitable for trade and domestic use",
}

// categoryApplications supplies typical-use phrases per category. Unlisted
// categories use genericApplications.
var categoryApplications = map[string][]string{
	"Generators": {
		"powering sites without mains electricity",
		"outdoor events and temporary installations",
		"backup power during outages",
	},
	"Breaking & Drilling": {
		"concrete and masonry demolition",
		"breaking up floors and foundations",
	},
	"Access Equipment": {
		"maintenance and installation at height",
		"ceiling work in warehouses and retail units",
	},
	"Compaction Equipment": {
		"preparing sub-bases for paving and slabs",
		"backfilling trenches and footings",
	},
	"Pumps": {
		"clearing flooded basements and excavations",
		"dewatering trenches and footings",
	},
	"Concrete Equipment": {
		"mixing mortar and concrete on site",
		"small to medium pours and repairs",
	},
	"Heating": {
		"heating workshops and site cabins",
		"drying out new plaster and screed",
	},
	"Cleaning Equipment": {
		"cleaning driveways, patios, and cladding",
		"end of build site clean-ups",
	},
	"Lighting": {
		"illuminating night works and compounds",
		"emergency and event lighting",
	},
	"Welding Equipment": {
		"structural steel fabrication and repair",
		"site welding of railings and gates",
	},
}

// genericApplications is the fallback for categories without an entry.
var genericApplications = []string{
	"general construction and refurbishment work",
	"trade and professional projects",
	"property maintenance tasks",
	"domestic and commercial jobs",
}

// categoryEssentialSpecs lists spec fields every product in a category
// should present, beyond brand, model, and power type.
var categoryEssentialSpecs = map[string][]string{
	"Generators":          {"Power Output", "Fuel Tank", "Run Time"},
	"Breaking & Drilling": {"Impact Energy", "Chuck Type"},
	"Access Equipment":    {"Platform Height", "Safe Working Load"},
	"Pumps":               {"Max Flow Rate", "Max Head"},
	"Compaction Equipment": {
		"Plate Size", "Centrifugal Force",
	},
	"Concrete Equipment": {"Drum Capacity"},
	"Lifting Equipment":  {"Safe Working Load"},
	"Heating":            {"Heat Output"},
	"Welding Equipment":  {"Output Range"},
}

// categoryFixedSpecs supplies constant spec values known for a category.
var categoryFixedSpecs = map[string]map[string]string{
	"Breaking & Drilling": {"Chuck Type": "SDS-Max"},
}

// typeForCategory returns the generic product type for a category, or a
// generic label for unknown categories.
func typeForCategory(category string) string {
	if productType, ok := categoryTypes[category]; ok {
		return productType
	}
	return "Equipment"
}

// benefitsForCategory returns the benefit phrases for a category, falling
// back to the generic list.
func benefitsForCategory(category string) []string {
	if benefits, ok := categoryBenefits[category]; ok {
		return benefits
	}
	return genericBenefits
}

// applicationsForCategory returns the typical-use phrases for a category,
// falling back to the generic list.
func applicationsForCategory(category string) []string {
	if applications, ok := categoryApplications[category]; ok {
		return applications
	}
	return genericApplications
}

// essentialSpecsForCategory returns the spec fields expected for a category.
func essentialSpecsForCategory(category string) []string {
	return categoryEssentialSpecs[category]
}
