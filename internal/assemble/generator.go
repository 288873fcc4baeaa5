package assemble

import (
	"context"
	"errors"
	"fmt"

	"hiregen/internal/catalog"
	"hiregen/internal/core"
	"hiregen/internal/features"
	"hiregen/internal/logger"
	"hiregen/internal/patterns"
	"hiregen/internal/research"
)

const similarProductLimit = 10

// Generator runs the full generation pipeline for a product code. Each call
// runs to completion before the next; the only blocking work is research,
// which carries its own timeout.
type Generator struct {
	catalog   *catalog.Catalog
	research  research.Source
	assembler *Assembler
	rich      bool
}

// NewGenerator wires a generator from its collaborators. A nil research
// source disables external research rather than failing calls.
func NewGenerator(cat *catalog.Catalog, source research.Source, assembler *Assembler, rich bool) *Generator {
	return &Generator{
		catalog:   cat,
		research:  source,
		assembler: assembler,
		rich:      rich,
	}
}

// Generate produces content for a product code. A code missing from the
// catalog still generates, grounded on its category; only a code that
// resolves to no category at all yields the placeholder block.
func (g *Generator) Generate(ctx context.Context, productCode string) (core.GeneratedContent, error) {
	record, err := g.catalog.GetProductByCode(productCode)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return core.GeneratedContent{}, err
	}
	if !record.Found && record.Category == "Unknown" {
		logger.Warn("Product code resolves to no category, returning placeholder", "code", productCode)
		return Placeholder(productCode), nil
	}

	similar := g.similarProducts(record)
	pattern := patterns.Analyze(similar)

	facts := g.fetchFacts(ctx, record)
	if facts.TimedOut {
		logger.Error("Research timed out, aborting generation", research.ErrResearchTimeout, "code", productCode)
		return core.GeneratedContent{}, fmt.Errorf("research for %s: %w", productCode, research.ErrResearchTimeout)
	}

	featureList := features.Build(record, facts, benefitsForCategory(record.Category), g.rich)

	content := g.assembler.Assemble(record, pattern, facts, featureList)

	logger.Info("Content generated",
		"code", productCode,
		"category", record.Category,
		"similar_products", len(similar),
		"confidence", content.Confidence)

	return content, nil
}

// GenerateNewProduct produces content for a product with no catalog entry,
// from caller-supplied details.
func (g *Generator) GenerateNewProduct(ctx context.Context, info core.NewProductInfo) (core.GeneratedContent, error) {
	record := RecordFromNewProduct(info)
	facts := g.fetchFacts(ctx, record)
	if facts.TimedOut {
		logger.Error("Research timed out, aborting generation", research.ErrResearchTimeout, "name", info.Name)
		return core.GeneratedContent{}, fmt.Errorf("research for %s: %w", info.Name, research.ErrResearchTimeout)
	}

	featureList := features.Build(record, facts, benefitsForCategory(info.Category), g.rich)

	content := g.assembler.AssembleNewProduct(info, facts, featureList)

	logger.Info("New product content generated",
		"name", info.Name,
		"category", info.Category,
		"confidence", content.Confidence)

	return content, nil
}

// similarProducts samples category peers for pattern analysis, excluding the
// product itself so its current copy does not ground its own rewrite.
func (g *Generator) similarProducts(record core.ProductRecord) []core.ProductRecord {
	candidates := g.catalog.GetProductsByCategory(record.Category, similarProductLimit+1)

	similar := make([]core.ProductRecord, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.StockNumber == record.StockNumber {
			continue
		}
		similar = append(similar, candidate)
		if len(similar) >= similarProductLimit {
			break
		}
	}
	return similar
}

// fetchFacts consults the manufacturer site first and falls back to search,
// keeping within two outbound calls per generation.
func (g *Generator) fetchFacts(ctx context.Context, record core.ProductRecord) core.FactBundle {
	if g.research == nil {
		return core.EmptyFactBundle("research disabled")
	}

	productName := record.Title
	if productName == "" {
		productName = record.StockNumber
	}

	if record.ManufacturerWebsite != "" {
		facts := g.research.FetchManufacturerFacts(ctx, record.ManufacturerWebsite, productName)
		if facts.Found || facts.TimedOut {
			return facts
		}
	}
	return g.research.FetchSearchFacts(ctx, productName, record.Category)
}
