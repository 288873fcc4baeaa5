// Package styleguide persists editorial guidelines and feedback on generated
// content in a JSON document, so future generations learn the house style.
package styleguide

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"hiregen/internal/core"
	"hiregen/internal/logger"
)

// DefaultCategoryIntro is used when a category has no recorded intro phrase.
const DefaultCategoryIntro = "for professional applications"

// Document is the on-disk shape of the style guide.
type Document struct {
	TitleGuidelines       TitleGuidelines        `json:"title_guidelines"`
	DescriptionGuidelines DescriptionGuidelines  `json:"description_guidelines"`
	ContentPatterns       ContentPatterns        `json:"content_patterns"`
	FeedbackLog           []core.FeedbackEntry   `json:"feedback_log"`
	ApprovedExamples      []core.ApprovedExample `json:"approved_examples"`
	RejectedExamples      []core.RejectedExample `json:"rejected_examples"`
}

// TitleGuidelines captures house rules for product titles.
type TitleGuidelines struct {
	MaxLength      int      `json:"max_length"`
	IncludeBrand   bool     `json:"include_brand"`
	PreferredOrder []string `json:"preferred_order"`
}

// DescriptionGuidelines captures tone rules for descriptions.
type DescriptionGuidelines struct {
	Tone Tone `json:"tone"`
}

// Tone lists words to avoid and words to prefer in generated copy.
type Tone struct {
	Avoid  []string `json:"avoid"`
	Prefer []string `json:"prefer"`
}

// ContentPatterns holds reusable phrasing keyed by category.
type ContentPatterns struct {
	CategoryIntros map[string]string `json:"category_intros"`
}

// Guide is a file-backed style guide. Every mutation rewrites the whole
// document, which keeps the file readable and editable by hand.
type Guide struct {
	mu       sync.RWMutex
	path     string
	document Document
}

// Load reads the style guide at path, creating a default document when the
// file does not exist yet.
func Load(path string) (*Guide, error) {
	guide := &Guide{path: path, document: defaultDocument()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Info("Style guide not found, starting fresh", "path", path)
		return guide, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read style guide %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &guide.document); err != nil {
		return nil, fmt.Errorf("failed to parse style guide %s: %w", path, err)
	}
	guide.fillDefaults()

	logger.Info("Style guide loaded",
		"path", path,
		"feedback_entries", len(guide.document.FeedbackLog),
		"approved", len(guide.document.ApprovedExamples))

	return guide, nil
}

func defaultDocument() Document {
	return Document{
		TitleGuidelines: TitleGuidelines{
			MaxLength:      70,
			IncludeBrand:   true,
			PreferredOrder: []string{"brand", "model", "product_type"},
		},
		DescriptionGuidelines: DescriptionGuidelines{
			Tone: Tone{
				Avoid:  []string{"cheap", "basic", "simple"},
				Prefer: []string{"professional", "reliable", "robust"},
			},
		},
		ContentPatterns: ContentPatterns{
			CategoryIntros: map[string]string{},
		},
		FeedbackLog:      []core.FeedbackEntry{},
		ApprovedExamples: []core.ApprovedExample{},
		RejectedExamples: []core.RejectedExample{},
	}
}

// fillDefaults repairs nil collections in hand-edited documents.
func (g *Guide) fillDefaults() {
	if g.document.ContentPatterns.CategoryIntros == nil {
		g.document.ContentPatterns.CategoryIntros = map[string]string{}
	}
	if g.document.FeedbackLog == nil {
		g.document.FeedbackLog = []core.FeedbackEntry{}
	}
	if g.document.ApprovedExamples == nil {
		g.document.ApprovedExamples = []core.ApprovedExample{}
	}
	if g.document.RejectedExamples == nil {
		g.document.RejectedExamples = []core.RejectedExample{}
	}
}

// RecordFeedback appends a feedback entry and persists the document.
func (g *Guide) RecordFeedback(entry core.FeedbackEntry) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	g.document.FeedbackLog = append(g.document.FeedbackLog, entry)
	return g.save()
}

// AddApprovedExample records content that an editor signed off on.
func (g *Guide) AddApprovedExample(example core.ApprovedExample) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if example.Timestamp == "" {
		example.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	g.document.ApprovedExamples = append(g.document.ApprovedExamples, example)
	return g.save()
}

// AddRejectedExample records content that an editor rejected, with the
// reason, so similar copy can be avoided.
func (g *Guide) AddRejectedExample(example core.RejectedExample) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if example.Timestamp == "" {
		example.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	g.document.RejectedExamples = append(g.document.RejectedExamples, example)
	return g.save()
}

// AddAvoidWord adds a word to the avoid list if not already present.
func (g *Guide) AddAvoidWord(word string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}
	for _, existing := range g.document.DescriptionGuidelines.Tone.Avoid {
		if existing == word {
			return nil
		}
	}
	g.document.DescriptionGuidelines.Tone.Avoid = append(g.document.DescriptionGuidelines.Tone.Avoid, word)
	return g.save()
}

// SetCategoryIntro records the preferred intro phrase for a category.
func (g *Guide) SetCategoryIntro(category, intro string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.document.ContentPatterns.CategoryIntros[category] = intro
	return g.save()
}

// GetAvoidWords returns a copy of the tone avoid list.
func (g *Guide) GetAvoidWords() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	words := make([]string, len(g.document.DescriptionGuidelines.Tone.Avoid))
	copy(words, g.document.DescriptionGuidelines.Tone.Avoid)
	return words
}

// GetPreferWords returns a copy of the tone prefer list.
func (g *Guide) GetPreferWords() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	words := make([]string, len(g.document.DescriptionGuidelines.Tone.Prefer))
	copy(words, g.document.DescriptionGuidelines.Tone.Prefer)
	return words
}

// GetCategoryIntro returns the recorded intro phrase for a category, falling
// back to the default.
func (g *Guide) GetCategoryIntro(category string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if intro, ok := g.document.ContentPatterns.CategoryIntros[category]; ok && intro != "" {
		return intro
	}
	return DefaultCategoryIntro
}

// ApprovedExamples returns a copy of the approved content log.
func (g *Guide) ApprovedExamples() []core.ApprovedExample {
	g.mu.RLock()
	defer g.mu.RUnlock()

	examples := make([]core.ApprovedExample, len(g.document.ApprovedExamples))
	copy(examples, g.document.ApprovedExamples)
	return examples
}

// Summary reports the guide's current state for display.
type Summary struct {
	FeedbackEntries  int      `json:"feedback_entries"`
	ApprovedExamples int      `json:"approved_examples"`
	RejectedExamples int      `json:"rejected_examples"`
	AvoidWords       []string `json:"avoid_words"`
	PreferWords      []string `json:"prefer_words"`
	CategoryIntros   int      `json:"category_intros"`
}

// ExportSummary distills the guide into a compact summary.
func (g *Guide) ExportSummary() Summary {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Summary{
		FeedbackEntries:  len(g.document.FeedbackLog),
		ApprovedExamples: len(g.document.ApprovedExamples),
		RejectedExamples: len(g.document.RejectedExamples),
		AvoidWords:       append([]string{}, g.document.DescriptionGuidelines.Tone.Avoid...),
		PreferWords:      append([]string{}, g.document.DescriptionGuidelines.Tone.Prefer...),
		CategoryIntros:   len(g.document.ContentPatterns.CategoryIntros),
	}
}

// save writes the whole document. Callers must hold the write lock.
func (g *Guide) save() error {
	if g.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return fmt.Errorf("failed to create style guide directory: %w", err)
	}

	data, err := json.MarshalIndent(g.document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal style guide: %w", err)
	}
	if err := os.WriteFile(g.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write style guide %s: %w", g.path, err)
	}
	return nil
}
