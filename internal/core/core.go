package core

import "time"

// ProductRecord represents one row of the hire catalog. Records are immutable
// once loaded for a generation run.
type ProductRecord struct {
	StockNumber         string            `json:"stock_number"`         // SKU, e.g. "13/GEN001"
	Title               string            `json:"title"`                // Existing product title
	Description         string            `json:"description"`          // Existing marketing description
	Category            string            `json:"category"`             // Derived from the SKU prefix
	Brand               string            `json:"brand"`                // Manufacturer brand, may be empty
	Model               string            `json:"model"`                // Model number, may be empty
	PowerType           string            `json:"power_type"`           // Petrol, Electric, Diesel, Battery, ...
	PowerOutput         string            `json:"power_output"`         // e.g. "160cc", "2000W"
	ManufacturerWebsite string            `json:"manufacturer_website"` // URL for fact research
	TechnicalSpecs      map[string]string `json:"technical_specs"`      // Key/value spec table
	Found               bool              `json:"found"`                // Whether the catalog had a matching row
}

// CodeAnalysis is the result of parsing a product code prefix.
type CodeAnalysis struct {
	Prefix     string `json:"prefix"`             // Two-digit category prefix, empty if unparseable
	Category   string `json:"category"`           // Mapped category name
	FullCode   string `json:"full_code"`          // The code as supplied
	Identifier string `json:"product_identifier"` // Portion after the "/" separator
}

// TitlePattern aggregates token statistics over a set of catalog titles.
type TitlePattern struct {
	CommonWords   []string `json:"common_words"`   // Most frequent tokens, descending, capped at 15
	AverageLength int      `json:"average_length"` // Mean word count (floor), 0 when no titles
}

// DescriptionPattern aggregates sentence statistics over catalog descriptions.
type DescriptionPattern struct {
	SentenceStarters []string `json:"sentence_starters"` // Common first-sentence openers, capped at 10
	AverageLength    int      `json:"average_length"`    // Mean word count (floor), 0 when no descriptions
}

// SpecPattern aggregates spec-field frequency over catalog spec tables.
type SpecPattern struct {
	CommonFields   []string       `json:"common_fields"`   // Fields seen more than once, descending frequency
	FieldFrequency map[string]int `json:"field_frequency"` // Raw counts per field name
}

// StylePattern is the per-category aggregate computed fresh from a sample of
// ProductRecords. Recomputation is idempotent; it is never mutated in place.
type StylePattern struct {
	Title       TitlePattern       `json:"title_patterns"`
	Description DescriptionPattern `json:"description_patterns"`
	Specs       SpecPattern        `json:"technical_spec_patterns"`
	SampleSize  int                `json:"sample_size"` // Number of records the pattern was computed from
}

// FactBundle is the structured output of external research. It is always
// present (possibly all-empty) so downstream code never branches on a
// missing object.
type FactBundle struct {
	CompanyName    string            `json:"company_name,omitempty"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	SourceURL      string            `json:"source_url,omitempty"`
	Found          bool              `json:"found"`
	Err            string            `json:"error,omitempty"`
	TimedOut       bool              `json:"-"` // The fetch hit its deadline; callers may abort
}

// EmptyFactBundle returns a bundle representing a failed or skipped lookup.
func EmptyFactBundle(err string) FactBundle {
	return FactBundle{
		Features:       []string{},
		Specifications: map[string]string{},
		Found:          false,
		Err:            err,
	}
}

// GeneratedContent is the final structured output of a generation call.
// Ownership passes entirely to the caller; it is never mutated after return.
type GeneratedContent struct {
	ID              string            `json:"id"`               // Unique identifier for this generation
	ProductCode     string            `json:"product_code"`     // The code the content was generated for
	Category        string            `json:"category"`         // Resolved category
	Title           string            `json:"title"`            // Assembled product title
	Description     string            `json:"description"`      // Opening plus body paragraphs
	KeyFeatures     []string          `json:"key_features"`     // Deduplicated factual feature bullets
	TechnicalSpecs  map[string]string `json:"technical_specs"`  // Assembled spec table
	MetaSummary     string            `json:"meta_summary"`     // Short summary for meta/preview use
	Confidence      float64           `json:"confidence"`       // Heuristic grounding score in [0,1]
	ResearchSummary string            `json:"research_summary"` // Human-readable note on external sources used
	Placeholder     bool              `json:"placeholder"`      // True only on the not-found/empty path
	GeneratedAt     time.Time         `json:"generated_at"`
}

// FeedbackEntry is one append-only free-text feedback record.
type FeedbackEntry struct {
	Timestamp   string `json:"timestamp"`
	ContentType string `json:"content_type"` // "title", "description", "features", ...
	Feedback    string `json:"feedback"`
	Example     string `json:"example,omitempty"`
}

// ApprovedExample is a content example the user accepted.
type ApprovedExample struct {
	Timestamp   string `json:"timestamp"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	ProductCode string `json:"product_code,omitempty"`
}

// RejectedExample is a content example the user rejected, with the reason.
type RejectedExample struct {
	Timestamp   string `json:"timestamp"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	Reason      string `json:"reason"`
	ProductCode string `json:"product_code,omitempty"`
}

// NewProductInfo carries caller-supplied details for the new-product path,
// where no catalog match exists.
type NewProductInfo struct {
	Name                string `json:"name"`
	Brand               string `json:"brand"`
	Model               string `json:"model"`
	Category            string `json:"category"`
	PowerType           string `json:"power_type"`
	Differentiator      string `json:"differentiator"`
	ManufacturerWebsite string `json:"manufacturer_website"`
	FurtherInfo         string `json:"further_info"`
}
