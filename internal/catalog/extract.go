package catalog

import (
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// knownBrands lists manufacturers commonly seen in hire fleets. Order matters:
// extraction returns the first brand whose name appears in the text.
var knownBrands = []string{
	"Honda", "Stihl", "Makita", "Bosch", "Husqvarna", "DeWalt", "Hilti",
	"Karcher", "JCB", "Kubota", "Yanmar", "Bomag", "Weber", "Belle",
	"Wacker", "Mikasa", "Altrad", "Evolution", "Festool", "Metabo",
}

// modelRegex matches alphanumeric model designations like "GX390" or "TE 70".
var modelRegex = regexp.MustCompile(`\b([A-Z]{1,4}[\s-]?\d{2,5}[A-Za-z]{0,3})\b`)

// ExtractBrand returns the first known manufacturer named in the text, or
// an empty string when none match.
func ExtractBrand(text string) string {
	lower := strings.ToLower(text)
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return ""
}

// ExtractModel pulls a model designation out of a product title, skipping
// over the brand name when one is present.
func ExtractModel(title, brand string) string {
	search := title
	if brand != "" {
		if idx := strings.Index(strings.ToLower(title), strings.ToLower(brand)); idx >= 0 {
			search = title[idx+len(brand):]
		}
	}
	match := modelRegex.FindString(search)
	return strings.TrimSpace(match)
}

// powerTypeKeywords maps power-source terms to the canonical power type.
var powerTypeKeywords = []struct {
	keywords []string
	label    string
}{
	{[]string{"petrol", "gasoline", "4-stroke", "2-stroke"}, "Petrol"},
	{[]string{"diesel"}, "Diesel"},
	{[]string{"battery", "cordless", "18v", "36v", "li-ion", "lithium"}, "Battery"},
	{[]string{"110v", "240v", "electric", "mains"}, "Electric"},
	{[]string{"air", "pneumatic"}, "Pneumatic"},
	{[]string{"hydraulic"}, "Hydraulic"},
	{[]string{"manual", "hand operated", "hand-operated"}, "Manual"},
}

// ExtractPowerType infers the power source from descriptive text.
func ExtractPowerType(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range powerTypeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.label
			}
		}
	}
	return ""
}
