// Package features builds the key feature list for a product by merging
// catalog data, researched facts, and category fallbacks in priority order.
package features

import (
	"fmt"
	"sort"
	"strings"

	"hiregen/internal/core"
	"hiregen/internal/textutil"
)

const (
	// MaxFeatures caps the standard feature list.
	MaxFeatures = 5
	// MaxFeaturesRich caps the list when rich content is requested.
	MaxFeaturesRich = 8

	maxSpecFeatures = 3
)

// fluffWords disqualify researched marketing copy from the feature list.
var fluffWords = []string{
	"ideal", "perfect", "exceptional", "amazing", "best",
	"revolutionary", "cutting-edge", "world-class", "premium", "ultimate",
}

// specFeatureTerms is the allow-list of spec fields worth surfacing as
// features.
var specFeatureTerms = []string{
	"power", "voltage", "weight", "capacity", "dimensions",
	"motor", "engine", "fuel tank", "cutting width", "platform height",
}

// Build assembles the feature list for a product. Sources are consumed in
// priority order: description sentences, allow-listed specs, researched
// facts, category fallbacks, then the power type. Duplicates are removed
// by case-insensitive substring comparison with the first occurrence kept.
func Build(record core.ProductRecord, facts core.FactBundle, categoryFeatures []string, rich bool) []string {
	limit := MaxFeatures
	if rich {
		limit = MaxFeaturesRich
	}

	var candidates []string
	candidates = append(candidates, descriptionFeatures(record.Description)...)
	candidates = append(candidates, specFeatures(record.TechnicalSpecs)...)
	candidates = append(candidates, researchedFeatures(facts)...)
	candidates = append(candidates, categoryFeatures...)
	if record.PowerType != "" {
		candidates = append(candidates, fmt.Sprintf("%s powered for flexible site use", record.PowerType))
	}

	return Dedupe(candidates, limit)
}

// descriptionFeatures pulls substantial sentences out of the existing
// catalog description.
func descriptionFeatures(description string) []string {
	if textutil.IsBlank(description) {
		return nil
	}

	var features []string
	for _, sentence := range strings.FieldsFunc(description, func(r rune) bool {
		return r == '.' || r == '\n' || r == ';'
	}) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 15 || len(sentence) > 120 {
			continue
		}
		features = append(features, sentence)
		if len(features) >= 2 {
			break
		}
	}
	return features
}

// specFeatures formats allow-listed technical specs as feature lines. Keys
// are walked in sorted order so the same spec table always yields the same
// feature for a term.
func specFeatures(specs map[string]string) []string {
	if len(specs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var features []string
	for _, term := range specFeatureTerms {
		for _, key := range keys {
			if !strings.Contains(strings.ToLower(key), term) {
				continue
			}
			features = append(features, fmt.Sprintf("%s: %s", key, specs[key]))
			break
		}
		if len(features) >= maxSpecFeatures {
			break
		}
	}
	return features
}

// researchedFeatures keeps scraped facts that read as substance rather than
// marketing fluff.
func researchedFeatures(facts core.FactBundle) []string {
	if !facts.Found {
		return nil
	}

	var features []string
	for _, feature := range facts.Features {
		if textutil.ContainsAny(feature, fluffWords) {
			continue
		}
		features = append(features, feature)
	}
	return features
}

// Dedupe removes features that are case-insensitive substrings of an
// earlier feature, or that an earlier feature is a substring of, keeping
// the first occurrence. The result is capped at limit.
func Dedupe(candidates []string, limit int) []string {
	var kept []string
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		lower := strings.ToLower(candidate)

		duplicate := false
		for _, existing := range kept {
			existingLower := strings.ToLower(existing)
			if strings.Contains(existingLower, lower) || strings.Contains(lower, existingLower) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, candidate)
		if len(kept) >= limit {
			break
		}
	}
	return kept
}
