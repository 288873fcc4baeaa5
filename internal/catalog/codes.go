package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"hiregen/internal/core"
)

// categoryByPrefix maps the two-digit SKU prefix to the hire catalog category.
var categoryByPrefix = map[string]string{
	"01": "Access Equipment",
	"02": "Air Compressors & Tools",
	"03": "Breaking & Drilling",
	"04": "Cleaning Equipment",
	"05": "Compaction Equipment",
	"06": "Concrete Equipment",
	"07": "Cutting & Grinding",
	"08": "Dehumidifiers",
	"09": "Electrical Equipment",
	"10": "Fans & Ventilation",
	"11": "Floor Care",
	"12": "Garden Equipment",
	"13": "Generators",
	"14": "Hand Tools",
	"15": "Heating",
	"16": "Lifting Equipment",
	"17": "Lighting",
	"18": "Power Tools",
	"19": "Pumps",
	"20": "Safety Equipment",
	"21": "Site Equipment",
	"22": "Temporary Structures",
	"23": "Testing Equipment",
	"24": "Waste Management",
	"25": "Welding Equipment",
}

var codePrefixRegex = regexp.MustCompile(`^(\d{2})/`)
var skuPrefixRegex = regexp.MustCompile(`^(\d{2})[/\-]`)

// AnalyzeProductCode parses a product code like "13/GEN001" into its category
// prefix, mapped category, and identifier. Unmapped prefixes yield "Unknown".
func AnalyzeProductCode(productCode string) core.CodeAnalysis {
	if m := codePrefixRegex.FindStringSubmatch(productCode); m != nil {
		prefix := m[1]
		category, ok := categoryByPrefix[prefix]
		if !ok {
			category = "Unknown"
		}
		return core.CodeAnalysis{
			Prefix:     prefix,
			Category:   category,
			FullCode:   productCode,
			Identifier: identifierFromCode(productCode),
		}
	}

	return core.CodeAnalysis{
		Category:   "Unknown",
		FullCode:   productCode,
		Identifier: productCode,
	}
}

// CategoryFromSKU extracts a category from a catalog SKU, which may use "/"
// or "-" as separator. Unmapped or unparseable SKUs yield "Equipment".
func CategoryFromSKU(sku string) string {
	if m := skuPrefixRegex.FindStringSubmatch(sku); m != nil {
		if category, ok := categoryByPrefix[m[1]]; ok {
			return category
		}
	}
	return "Equipment"
}

// Categories returns the catalog category names in prefix order.
func Categories() []string {
	categories := make([]string, 0, len(categoryByPrefix))
	for i := 1; i <= len(categoryByPrefix); i++ {
		prefix := fmt.Sprintf("%02d", i)
		if category, ok := categoryByPrefix[prefix]; ok {
			categories = append(categories, category)
		}
	}
	return categories
}

func identifierFromCode(productCode string) string {
	if idx := strings.LastIndex(productCode, "/"); idx >= 0 {
		return productCode[idx+1:]
	}
	return productCode
}
