package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hiregen/internal/core"
)

// brandDescriptors supplies a reputation phrase per known brand, used on the
// new-product path when no manufacturer facts or further info exist. Kept as
// data so new brands are a table entry, not a code change.
var brandDescriptors = map[string]string{
	"dewalt":    "known for durable trade-grade tools",
	"makita":    "trusted for reliable professional power tools",
	"bosch":     "recognised for precision German engineering",
	"hilti":     "specialists in heavy-duty construction tools",
	"stihl":     "leaders in outdoor power equipment",
	"honda":     "renowned for dependable engines",
	"husqvarna": "established in forestry and construction equipment",
	"karcher":   "specialists in professional cleaning equipment",
}

// RecordFromNewProduct converts caller-supplied product details into a
// record usable by the feature and spec pipelines.
func RecordFromNewProduct(info core.NewProductInfo) core.ProductRecord {
	return core.ProductRecord{
		StockNumber:         info.Name,
		Title:               info.Name,
		Description:         info.FurtherInfo,
		Category:            info.Category,
		Brand:               info.Brand,
		Model:               info.Model,
		PowerType:           info.PowerType,
		ManufacturerWebsite: info.ManufacturerWebsite,
		TechnicalSpecs:      map[string]string{},
		Found:               false,
	}
}

// AssembleNewProduct composes content for a product with no catalog history.
// There is no pattern analysis to ground on, so confidence is the flat
// new-product value.
func (a *Assembler) AssembleNewProduct(info core.NewProductInfo, facts core.FactBundle, featureList []string) core.GeneratedContent {
	record := RecordFromNewProduct(info)
	title := a.newProductTitle(info)

	return core.GeneratedContent{
		ID:              uuid.NewString(),
		ProductCode:     info.Name,
		Category:        info.Category,
		Title:           title,
		Description:     a.newProductDescription(info),
		KeyFeatures:     append([]string{}, featureList...),
		TechnicalSpecs:  BuildSpecTable(record, facts, core.StylePattern{}),
		MetaSummary:     a.metaSummary(title, info.Category),
		Confidence:      NewProductConfidence,
		ResearchSummary: researchSummary(facts),
		Placeholder:     false,
		GeneratedAt:     time.Now().UTC(),
	}
}

// newProductTitle follows the same component order as catalog titles, with
// the caller-supplied differentiator included.
func (a *Assembler) newProductTitle(info core.NewProductInfo) string {
	var parts []string
	if info.Brand != "" {
		parts = append(parts, info.Brand)
	}
	if info.Model != "" {
		parts = append(parts, info.Model)
	}
	if len(parts) > 0 {
		parts = append(parts, typeForCategory(info.Category))
		if info.Differentiator != "" {
			parts = append(parts, "- "+info.Differentiator)
		}
		if info.PowerType != "" {
			parts = append(parts, "- "+info.PowerType)
		}
		return strings.Join(parts, " ")
	}

	if info.Name != "" {
		return fmt.Sprintf("Professional %s - %s", info.Category, info.Name)
	}
	return fmt.Sprintf("Professional %s", info.Category)
}

func (a *Assembler) newProductDescription(info core.NewProductInfo) string {
	intro := a.styles.GetCategoryIntro(info.Category)
	productType := strings.ToLower(typeForCategory(info.Category))

	var builder strings.Builder
	switch {
	case info.Brand != "" && info.Model != "":
		builder.WriteString(fmt.Sprintf("The %s %s is a new addition to our %s range, %s.",
			info.Brand, info.Model, strings.ToLower(info.Category), intro))
	case info.Brand != "":
		builder.WriteString(fmt.Sprintf("This new %s %s joins our fleet %s.", info.Brand, productType, intro))
	default:
		builder.WriteString(fmt.Sprintf("This new %s joins our fleet %s.", productType, intro))
	}

	if descriptor, ok := brandDescriptors[strings.ToLower(info.Brand)]; ok && info.FurtherInfo == "" {
		builder.WriteString(fmt.Sprintf(" %s are %s.", info.Brand, descriptor))
	}
	if info.Differentiator != "" {
		builder.WriteString(fmt.Sprintf(" It stands out for its %s.", strings.ToLower(info.Differentiator)))
	}
	if info.FurtherInfo != "" {
		further := strings.TrimSpace(info.FurtherInfo)
		if !strings.HasSuffix(further, ".") {
			further += "."
		}
		builder.WriteString(" ")
		builder.WriteString(further)
	}

	benefit := a.pick(benefitsForCategory(info.Category))
	if benefit != "" {
		builder.WriteString(" ")
		builder.WriteString(benefit)
		builder.WriteString(".")
	}

	return builder.String()
}
