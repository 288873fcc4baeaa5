// Package patterns derives style patterns from existing catalog content so
// new copy can match the house voice.
package patterns

import (
	"sort"
	"strings"

	"hiregen/internal/core"
	"hiregen/internal/textutil"
)

const (
	maxCommonWords     = 15
	maxStarters        = 10
	maxCommonSpecs     = 10
	minDescriptionSize = 10
)

// stopWords are ignored when counting title vocabulary.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"this": true, "that": true, "are": true, "was": true, "has": true,
	"have": true, "its": true, "our": true, "your": true, "all": true,
	"can": true, "not": true, "but": true, "you": true, "per": true,
}

// Analyze derives title, description, and spec patterns from a set of
// catalog records. An empty input yields zero-valued patterns, never nil.
func Analyze(records []core.ProductRecord) core.StylePattern {
	pattern := core.StylePattern{
		Title:       core.TitlePattern{CommonWords: []string{}},
		Description: core.DescriptionPattern{SentenceStarters: []string{}},
		Specs: core.SpecPattern{
			CommonFields:   []string{},
			FieldFrequency: map[string]int{},
		},
		SampleSize: len(records),
	}
	if len(records) == 0 {
		return pattern
	}

	pattern.Title = analyzeTitles(records)
	pattern.Description = analyzeDescriptions(records)
	pattern.Specs = analyzeSpecs(records)
	return pattern
}

func analyzeTitles(records []core.ProductRecord) core.TitlePattern {
	counter := newWordCounter()
	totalLength := 0
	counted := 0

	for _, record := range records {
		title := strings.TrimSpace(record.Title)
		if title == "" {
			continue
		}
		totalLength += textutil.WordCount(title)
		counted++

		for _, word := range strings.Fields(strings.ToLower(title)) {
			word = strings.Trim(word, ".,;:!?\"'()")
			if len(word) <= 2 || stopWords[word] {
				continue
			}
			counter.add(word)
		}
	}

	result := core.TitlePattern{CommonWords: counter.top(maxCommonWords, 2)}
	if counted > 0 {
		result.AverageLength = totalLength / counted
	}
	return result
}

func analyzeDescriptions(records []core.ProductRecord) core.DescriptionPattern {
	counter := newWordCounter()
	totalLength := 0
	counted := 0

	for _, record := range records {
		description := strings.TrimSpace(record.Description)
		if len(description) < minDescriptionSize || textutil.IsBlank(description) {
			continue
		}
		totalLength += textutil.WordCount(description)
		counted++

		sentence := textutil.FirstSentence(description)
		words := strings.Fields(sentence)
		if len(words) > 4 {
			words = words[:4]
		}
		if len(words) == 0 {
			continue
		}
		counter.add(strings.Join(words, " "))
	}

	result := core.DescriptionPattern{SentenceStarters: counter.top(maxStarters, 2)}
	if counted > 0 {
		result.AverageLength = totalLength / counted
	}
	return result
}

func analyzeSpecs(records []core.ProductRecord) core.SpecPattern {
	counter := newWordCounter()
	for _, record := range records {
		for field := range record.TechnicalSpecs {
			counter.add(strings.TrimSpace(field))
		}
	}

	frequency := make(map[string]int, len(counter.counts))
	for field, count := range counter.counts {
		frequency[field] = count
	}

	return core.SpecPattern{
		CommonFields:   counter.top(maxCommonSpecs, 2),
		FieldFrequency: frequency,
	}
}

// wordCounter counts occurrences while remembering first-seen order, so
// frequency ties resolve deterministically.
type wordCounter struct {
	counts map[string]int
	order  []string
}

func newWordCounter() *wordCounter {
	return &wordCounter{counts: map[string]int{}}
}

func (w *wordCounter) add(key string) {
	if key == "" {
		return
	}
	if _, seen := w.counts[key]; !seen {
		w.order = append(w.order, key)
	}
	w.counts[key]++
}

// top returns up to limit keys with count >= minCount, most frequent first,
// breaking ties by first-seen order.
func (w *wordCounter) top(limit, minCount int) []string {
	position := make(map[string]int, len(w.order))
	for i, key := range w.order {
		position[key] = i
	}

	keys := make([]string, 0, len(w.counts))
	for _, key := range w.order {
		if w.counts[key] >= minCount {
			keys = append(keys, key)
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if w.counts[keys[i]] != w.counts[keys[j]] {
			return w.counts[keys[i]] > w.counts[keys[j]]
		}
		return position[keys[i]] < position[keys[j]]
	})

	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
