package patterns

import (
	"testing"

	"hiregen/internal/core"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	pattern := Analyze(nil)

	if pattern.SampleSize != 0 {
		t.Errorf("Expected sample size 0, got %d", pattern.SampleSize)
	}
	if pattern.Title.CommonWords == nil {
		t.Error("CommonWords should be empty, not nil")
	}
	if pattern.Description.SentenceStarters == nil {
		t.Error("SentenceStarters should be empty, not nil")
	}
	if pattern.Specs.FieldFrequency == nil {
		t.Error("FieldFrequency should be empty, not nil")
	}
}

func TestAnalyzeTitleWords(t *testing.T) {
	records := []core.ProductRecord{
		{Title: "Honda Petrol Generator", Description: "A reliable petrol generator for site power needs."},
		{Title: "Diesel Generator 10kVA", Description: "A heavy duty diesel generator for sustained loads."},
		{Title: "Petrol Water Pump", Description: "A compact petrol pump for flood water."},
	}

	pattern := Analyze(records)

	if pattern.SampleSize != 3 {
		t.Errorf("Expected sample size 3, got %d", pattern.SampleSize)
	}

	// "petrol" and "generator" both appear twice; petrol was seen first.
	words := pattern.Title.CommonWords
	if len(words) != 2 {
		t.Fatalf("Expected 2 common words, got %v", words)
	}
	if words[0] != "petrol" || words[1] != "generator" {
		t.Errorf("Expected [petrol generator], got %v", words)
	}
}

func TestAnalyzeIgnoresShortAndStopWords(t *testing.T) {
	records := []core.ProductRecord{
		{Title: "The Big Saw For It"},
		{Title: "The Big Drill For It"},
	}

	pattern := Analyze(records)

	for _, word := range pattern.Title.CommonWords {
		if word == "the" || word == "for" || word == "it" {
			t.Errorf("Stop or short word %q should be filtered", word)
		}
	}
	if len(pattern.Title.CommonWords) != 1 || pattern.Title.CommonWords[0] != "big" {
		t.Errorf("Expected [big], got %v", pattern.Title.CommonWords)
	}
}

func TestAnalyzeSentenceStarters(t *testing.T) {
	records := []core.ProductRecord{
		{Title: "A", Description: "Ideal for site work. Extra detail here."},
		{Title: "B", Description: "Ideal for site work on tight jobs. More detail."},
		{Title: "C", Description: "Built to a different opening sentence."},
	}

	pattern := Analyze(records)

	starters := pattern.Description.SentenceStarters
	if len(starters) != 1 {
		t.Fatalf("Expected 1 repeated starter, got %v", starters)
	}
	if starters[0] != "Ideal for site work" {
		t.Errorf("Unexpected starter: %q", starters[0])
	}
}

func TestAnalyzeExcludesShortAndNanDescriptions(t *testing.T) {
	records := []core.ProductRecord{
		{Title: "A", Description: "short"},
		{Title: "B", Description: "nan"},
		{Title: "C", Description: "A description long enough to count toward the average."},
	}

	pattern := Analyze(records)

	// Only the third description is long enough to count; it has 9 words.
	if pattern.Description.AverageLength != 9 {
		t.Errorf("Expected average of 9 words from the single valid description, got %d", pattern.Description.AverageLength)
	}
}

func TestAnalyzeSpecFields(t *testing.T) {
	records := []core.ProductRecord{
		{Title: "A", TechnicalSpecs: map[string]string{"Power": "2kW", "Weight": "20kg"}},
		{Title: "B", TechnicalSpecs: map[string]string{"Power": "5kW"}},
	}

	pattern := Analyze(records)

	if pattern.Specs.FieldFrequency["Power"] != 2 {
		t.Errorf("Expected Power frequency 2, got %d", pattern.Specs.FieldFrequency["Power"])
	}
	if len(pattern.Specs.CommonFields) != 1 || pattern.Specs.CommonFields[0] != "Power" {
		t.Errorf("Expected common fields [Power], got %v", pattern.Specs.CommonFields)
	}
}

func TestAverageLengthFloorDivision(t *testing.T) {
	records := []core.ProductRecord{
		{Title: "Petrol Generator"},
		{Title: "Diesel Generator 10kVA"},
	}

	pattern := Analyze(records)

	// (2 + 3) / 2 floors to 2.
	if pattern.Title.AverageLength != 2 {
		t.Errorf("Expected floored average 2, got %d", pattern.Title.AverageLength)
	}
}
