// Package assemble composes structured marketing content from catalog
// records, style patterns, researched facts, and feature lists.
package assemble

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"hiregen/internal/catalog"
	"hiregen/internal/core"
	"hiregen/internal/textutil"
)

const (
	// PlaceholderConfidence marks the not-found/empty generation path.
	PlaceholderConfidence = 0.2
	// NewProductConfidence reflects explicit input with no historical grounding.
	NewProductConfidence = 0.8

	specPlaceholder   = "Specification available on request"
	maxSpecTopUps     = 10
	metaSummaryLength = 160
)

// boilerplateTerms disqualify existing description sentences that talk about
// the hire transaction rather than the product.
var boilerplateTerms = []string{
	"hire", "delivery", "contact us", "call us", "visit our", "order online",
}

// titleBrands maps analyzer tokens to canonical brand names. Peer products
// in a category often share a dominant manufacturer, so a frequent brand
// token stands in for a missing brand field.
var titleBrands = map[string]string{
	"honda":     "Honda",
	"stihl":     "Stihl",
	"makita":    "Makita",
	"bosch":     "Bosch",
	"husqvarna": "Husqvarna",
	"dewalt":    "DeWalt",
	"hilti":     "Hilti",
	"karcher":   "Karcher",
}

// StyleSource supplies editorial guidance accumulated from feedback.
type StyleSource interface {
	GetAvoidWords() []string
	GetPreferWords() []string
	GetCategoryIntro(category string) string
}

// defaultStyles is used when no feedback store is wired in.
type defaultStyles struct{}

func (defaultStyles) GetAvoidWords() []string        { return nil }
func (defaultStyles) GetPreferWords() []string       { return nil }
func (defaultStyles) GetCategoryIntro(string) string { return "for professional applications" }

// Assembler builds GeneratedContent. Phrase selection among equally valid
// candidates is randomized through the injected source, so tests can seed it.
type Assembler struct {
	styles StyleSource
	rng    *rand.Rand
}

// New creates an assembler. A nil style source falls back to defaults and a
// nil random source is seeded from the clock.
func New(styles StyleSource, rng *rand.Rand) *Assembler {
	if styles == nil {
		styles = defaultStyles{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Assembler{styles: styles, rng: rng}
}

// Assemble runs the linear composition pipeline: title, opening, features,
// spec table, meta summary, confidence. Inputs are never mutated; optional
// stages degrade to category defaults instead of failing.
func (a *Assembler) Assemble(record core.ProductRecord, pattern core.StylePattern, facts core.FactBundle, featureList []string) core.GeneratedContent {
	title := a.assembleTitle(record, pattern)
	description := a.assembleDescription(record, title)

	return core.GeneratedContent{
		ID:              uuid.NewString(),
		ProductCode:     record.StockNumber,
		Category:        record.Category,
		Title:           title,
		Description:     description,
		KeyFeatures:     append([]string{}, featureList...),
		TechnicalSpecs:  BuildSpecTable(record, facts, pattern),
		MetaSummary:     a.metaSummary(title, record.Category),
		Confidence:      Confidence(pattern),
		ResearchSummary: researchSummary(facts),
		Placeholder:     false,
		GeneratedAt:     time.Now().UTC(),
	}
}

// Placeholder returns the minimal content block for a code that resolves to
// nothing at all. Callers detect this path via the Placeholder flag.
func Placeholder(productCode string) core.GeneratedContent {
	return core.GeneratedContent{
		ID:              uuid.NewString(),
		ProductCode:     productCode,
		Category:        "Unknown",
		Title:           fmt.Sprintf("Product %s", productCode),
		Description:     "Product details are not yet available. Content will be generated once catalog or manufacturer information is supplied.",
		KeyFeatures:     []string{},
		TechnicalSpecs:  map[string]string{},
		MetaSummary:     fmt.Sprintf("Product %s, details to follow.", productCode),
		Confidence:      PlaceholderConfidence,
		ResearchSummary: "No catalog or research data available.",
		Placeholder:     true,
		GeneratedAt:     time.Now().UTC(),
	}
}

// assembleTitle joins brand, model, product type, and power type in fixed
// order. A missing brand is inferred from the analyzer's common title tokens
// before giving up; when every component is missing the title falls back to
// a professional label built from the category and code identifier.
func (a *Assembler) assembleTitle(record core.ProductRecord, pattern core.StylePattern) string {
	brand := record.Brand
	if brand == "" {
		brand = inferBrand(pattern.Title)
	}

	var parts []string
	if brand != "" {
		parts = append(parts, brand)
	}
	if record.Model != "" {
		parts = append(parts, record.Model)
	}
	if len(parts) > 0 {
		parts = append(parts, typeForCategory(record.Category))
		if record.PowerType != "" {
			parts = append(parts, "- "+record.PowerType)
		}
		return strings.Join(parts, " ")
	}

	identifier := catalog.AnalyzeProductCode(record.StockNumber).Identifier
	return fmt.Sprintf("Professional %s - %s", record.Category, identifier)
}

// inferBrand returns the first known brand among the common title tokens.
// Tokens arrive in descending frequency order, so the dominant peer brand
// wins.
func inferBrand(pattern core.TitlePattern) string {
	for _, word := range pattern.CommonWords {
		if brand, ok := titleBrands[word]; ok {
			return brand
		}
	}
	return ""
}

// assembleDescription produces the opening paragraph plus a benefit and a
// typical-applications sentence.
func (a *Assembler) assembleDescription(record core.ProductRecord, title string) string {
	opening := a.openingFromExisting(record)
	if opening == "" {
		opening = a.synthesizeOpening(record)
	}

	benefit := a.pick(benefitsForCategory(record.Category))
	application := a.pick(applicationsForCategory(record.Category))

	var builder strings.Builder
	builder.WriteString(opening)
	if benefit != "" {
		builder.WriteString(" ")
		builder.WriteString(benefit)
		builder.WriteString(".")
	}
	if application != "" {
		builder.WriteString(" Typical uses include ")
		builder.WriteString(application)
		builder.WriteString(".")
	}
	return builder.String()
}

// openingFromExisting reuses the first sentence of an existing description
// when it is substantial, free of markup and hire boilerplate, and contains
// no avoid words.
func (a *Assembler) openingFromExisting(record core.ProductRecord) string {
	if textutil.IsBlank(record.Description) {
		return ""
	}

	sentence := strings.TrimSpace(textutil.FirstSentence(record.Description))
	if len(sentence) < 20 || len(sentence) > 150 {
		return ""
	}
	if strings.HasPrefix(sentence, "<") {
		return ""
	}
	if textutil.ContainsAny(sentence, boilerplateTerms) {
		return ""
	}
	if textutil.ContainsAny(sentence, a.styles.GetAvoidWords()) {
		return ""
	}
	if !strings.HasSuffix(sentence, ".") {
		sentence += "."
	}
	return sentence
}

// synthesizeOpening builds an opening sentence from templates keyed on
// brand/model presence, drawing the category intro phrase from feedback.
func (a *Assembler) synthesizeOpening(record core.ProductRecord) string {
	intro := a.styles.GetCategoryIntro(record.Category)
	productType := typeForCategory(record.Category)

	switch {
	case record.Brand != "" && record.Model != "":
		if record.PowerType != "" {
			return fmt.Sprintf("The %s %s is a %s %s designed %s.",
				record.Brand, record.Model, strings.ToLower(record.PowerType), strings.ToLower(productType), intro)
		}
		return fmt.Sprintf("The %s %s is a %s designed %s.",
			record.Brand, record.Model, strings.ToLower(productType), intro)
	case record.Brand != "":
		return fmt.Sprintf("This %s %s is built %s.", record.Brand, strings.ToLower(productType), intro)
	default:
		return fmt.Sprintf("This %s is a %s choice %s.", strings.ToLower(productType), a.preferredQuality(), intro)
	}
}

// preferredQuality picks a tone word from the feedback store's prefer list.
func (a *Assembler) preferredQuality() string {
	words := a.styles.GetPreferWords()
	if len(words) == 0 {
		return "dependable"
	}
	return words[a.rng.Intn(len(words))]
}

func (a *Assembler) metaSummary(title, category string) string {
	summary := fmt.Sprintf("%s available %s.", title, a.styles.GetCategoryIntro(category))
	if len(summary) > metaSummaryLength {
		summary = textutil.TruncateWords(summary, 20)
	}
	return summary
}

// pick selects one phrase at random; an empty list yields an empty string.
func (a *Assembler) pick(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[a.rng.Intn(len(phrases))]
}

// BuildSpecTable assembles the key/value spec table: the record's own specs,
// then category essentials, then researched specs, then pattern-derived
// top-up placeholders. The result depends only on the inputs, so repeated
// calls produce identical tables.
func BuildSpecTable(record core.ProductRecord, facts core.FactBundle, pattern core.StylePattern) map[string]string {
	specs := map[string]string{}
	for key, value := range record.TechnicalSpecs {
		if usableSpecValue(value) {
			specs[key] = value
		}
	}

	if record.Brand != "" {
		specs["Brand"] = record.Brand
	}
	if record.Model != "" {
		specs["Model"] = record.Model
	}
	if record.PowerType != "" {
		specs["Power Type"] = record.PowerType
	}
	for key, value := range categoryFixedSpecs[record.Category] {
		if _, exists := specs[key]; !exists {
			specs[key] = value
		}
	}

	for key, value := range facts.Specifications {
		if !usableSpecValue(value) {
			continue
		}
		if _, exists := specs[key]; !exists {
			specs[key] = value
		}
	}

	topUps := 0
	for _, field := range essentialSpecsForCategory(record.Category) {
		if _, exists := specs[field]; !exists && topUps < maxSpecTopUps {
			specs[field] = specPlaceholder
			topUps++
		}
	}
	for _, field := range pattern.Specs.CommonFields {
		if topUps >= maxSpecTopUps {
			break
		}
		if _, exists := specs[field]; !exists {
			specs[field] = specPlaceholder
			topUps++
		}
	}

	return specs
}

func usableSpecValue(value string) bool {
	return !textutil.IsBlank(value)
}

// Confidence scores how much historical grounding informed a generation:
// 0.3 base, up to 0.4 for similar products, 0.1 per non-empty pattern kind,
// capped at 1.0. The formula is a fixed contract; stored content depends on
// it staying stable.
func Confidence(pattern core.StylePattern) float64 {
	confidence := 0.3

	similar := 0.1 * float64(pattern.SampleSize)
	if similar > 0.4 {
		similar = 0.4
	}
	confidence += similar

	if len(pattern.Title.CommonWords) > 0 {
		confidence += 0.1
	}
	if len(pattern.Description.SentenceStarters) > 0 {
		confidence += 0.1
	}
	if len(pattern.Specs.CommonFields) > 0 {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func researchSummary(facts core.FactBundle) string {
	if !facts.Found {
		if facts.Err != "" {
			return fmt.Sprintf("No external research available (%s); content generated from catalog data and category templates.", facts.Err)
		}
		return "No external research available; content generated from catalog data and category templates."
	}

	var parts []string
	if facts.CompanyName != "" {
		parts = append(parts, fmt.Sprintf("manufacturer data from %s", facts.CompanyName))
	}
	if facts.SourceURL != "" {
		parts = append(parts, facts.SourceURL)
	}
	if len(parts) == 0 {
		return "External research contributed to this content."
	}
	return "Research sources: " + strings.Join(parts, ", ")
}
