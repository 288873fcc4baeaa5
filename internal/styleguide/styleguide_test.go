package styleguide

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hiregen/internal/core"
)

func TestLoadMissingFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")

	guide, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	summary := guide.ExportSummary()
	if summary.FeedbackEntries != 0 {
		t.Errorf("Fresh guide should have no feedback, got %d", summary.FeedbackEntries)
	}
	if len(summary.AvoidWords) == 0 {
		t.Error("Fresh guide should carry default avoid words")
	}
}

func TestRecordFeedbackRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")

	guide, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entry := core.FeedbackEntry{
		ContentType: "description",
		Feedback:    "Too long, tighten the opening",
	}
	if err := guide.RecordFeedback(entry); err != nil {
		t.Fatalf("RecordFeedback failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	summary := reloaded.ExportSummary()
	if summary.FeedbackEntries != 1 {
		t.Fatalf("Expected 1 feedback entry after reload, got %d", summary.FeedbackEntries)
	}
}

func TestFeedbackTimestampDefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")
	guide, _ := Load(path)

	if err := guide.RecordFeedback(core.FeedbackEntry{ContentType: "title"}); err != nil {
		t.Fatalf("RecordFeedback failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(document.FeedbackLog) != 1 || document.FeedbackLog[0].Timestamp == "" {
		t.Error("Feedback timestamp should be filled in when empty")
	}
}

func TestApprovedAndRejectedExamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")
	guide, _ := Load(path)

	err := guide.AddApprovedExample(core.ApprovedExample{
		ContentType: "title",
		Content:     "Honda EU22i Inverter Generator",
		ProductCode: "13/GEN20",
	})
	if err != nil {
		t.Fatalf("AddApprovedExample failed: %v", err)
	}
	err = guide.AddRejectedExample(core.RejectedExample{
		ContentType: "description",
		Content:     "The perfect generator for any job",
		Reason:      "Opening sentence too generic",
		ProductCode: "13/GEN20",
	})
	if err != nil {
		t.Fatalf("AddRejectedExample failed: %v", err)
	}

	summary := guide.ExportSummary()
	if summary.ApprovedExamples != 1 || summary.RejectedExamples != 1 {
		t.Errorf("Unexpected example counts: %+v", summary)
	}
	if len(guide.ApprovedExamples()) != 1 {
		t.Error("ApprovedExamples accessor should return the stored example")
	}
}

func TestAvoidWordsDeduplicated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")
	guide, _ := Load(path)

	before := len(guide.GetAvoidWords())
	if err := guide.AddAvoidWord("Gimmicky"); err != nil {
		t.Fatalf("AddAvoidWord failed: %v", err)
	}
	if err := guide.AddAvoidWord("gimmicky"); err != nil {
		t.Fatalf("AddAvoidWord failed: %v", err)
	}

	after := guide.GetAvoidWords()
	if len(after) != before+1 {
		t.Errorf("Expected one new avoid word, got %v", after)
	}
}

func TestCategoryIntroDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")
	guide, _ := Load(path)

	if got := guide.GetCategoryIntro("Generators"); got != DefaultCategoryIntro {
		t.Errorf("Expected default intro, got %q", got)
	}

	if err := guide.SetCategoryIntro("Generators", "for dependable site power"); err != nil {
		t.Fatalf("SetCategoryIntro failed: %v", err)
	}
	if got := guide.GetCategoryIntro("Generators"); got != "for dependable site power" {
		t.Errorf("Expected recorded intro, got %q", got)
	}
}

func TestLoadRepairsNilCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style_guide.json")
	if err := os.WriteFile(path, []byte(`{"title_guidelines":{"max_length":60}}`), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	guide, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// A hand-edited document without the collections should still accept writes.
	if err := guide.SetCategoryIntro("Pumps", "for fast water shifting"); err != nil {
		t.Fatalf("SetCategoryIntro failed: %v", err)
	}
	if got := guide.GetCategoryIntro("Pumps"); got != "for fast water shifting" {
		t.Errorf("Unexpected intro: %q", got)
	}
}
