package store

import (
	"testing"
	"time"

	"hiregen/internal/core"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testContent(id, code string, generatedAt time.Time) core.GeneratedContent {
	return core.GeneratedContent{
		ID:              id,
		ProductCode:     code,
		Category:        "Generators",
		Title:           "Honda EU22i Generator",
		Description:     "A dependable inverter generator.",
		KeyFeatures:     []string{"Power: 2.2kW"},
		TechnicalSpecs:  map[string]string{"Power": "2.2kW"},
		MetaSummary:     "Honda EU22i Generator for professional applications.",
		Confidence:      0.7,
		ResearchSummary: "No external research available.",
		GeneratedAt:     generatedAt,
	}
}

func TestSaveAndGetContent(t *testing.T) {
	s := testStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	if err := s.SaveContent(testContent("id-1", "13/GEN20", now)); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	results, err := s.GetContentByCode("13/GEN20")
	if err != nil {
		t.Fatalf("GetContentByCode failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	got := results[0]
	if got.Title != "Honda EU22i Generator" {
		t.Errorf("Unexpected title: %q", got.Title)
	}
	if len(got.KeyFeatures) != 1 || got.KeyFeatures[0] != "Power: 2.2kW" {
		t.Errorf("Features did not round-trip: %v", got.KeyFeatures)
	}
	if got.TechnicalSpecs["Power"] != "2.2kW" {
		t.Errorf("Specs did not round-trip: %v", got.TechnicalSpecs)
	}
	if !got.GeneratedAt.Equal(now) {
		t.Errorf("Timestamp did not round-trip: %v vs %v", got.GeneratedAt, now)
	}
}

func TestSaveContentReplacesById(t *testing.T) {
	s := testStore(t)
	now := time.Now().UTC()

	content := testContent("id-1", "13/GEN20", now)
	if err := s.SaveContent(content); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	content.Title = "Updated Title"
	if err := s.SaveContent(content); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	results, err := s.GetContentByCode("13/GEN20")
	if err != nil {
		t.Fatalf("GetContentByCode failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Replace should not duplicate rows, got %d", len(results))
	}
	if results[0].Title != "Updated Title" {
		t.Errorf("Expected replaced title, got %q", results[0].Title)
	}
}

func TestListRecentOrdering(t *testing.T) {
	s := testStore(t)
	base := time.Now().UTC().Truncate(time.Second)

	if err := s.SaveContent(testContent("id-old", "13/GEN20", base.Add(-time.Hour))); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := s.SaveContent(testContent("id-new", "03/BRK05", base)); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	results, err := s.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ID != "id-new" {
		t.Errorf("Expected newest first, got %q", results[0].ID)
	}

	limited, err := s.ListRecent(1)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit to apply, got %d", len(limited))
	}
}

func TestGetContentByCodeEmpty(t *testing.T) {
	s := testStore(t)

	results, err := s.GetContentByCode("19/NONE")
	if err != nil {
		t.Fatalf("GetContentByCode failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestGetStats(t *testing.T) {
	s := testStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	if err := s.SaveContent(testContent("id-1", "13/GEN20", now)); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := s.SaveContent(testContent("id-2", "13/GEN20", now.Add(time.Minute))); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := s.SaveContent(testContent("id-3", "03/BRK05", now)); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalEntries != 3 {
		t.Errorf("Expected 3 total entries, got %d", stats.TotalEntries)
	}
	if stats.UniqueCodes != 2 {
		t.Errorf("Expected 2 unique codes, got %d", stats.UniqueCodes)
	}
	if stats.AvgConfidence < 0.69 || stats.AvgConfidence > 0.71 {
		t.Errorf("Expected average confidence near 0.7, got %v", stats.AvgConfidence)
	}
	if stats.DatabasePath == "" {
		t.Error("Expected database path to be set")
	}
}

func TestGetStatsEmpty(t *testing.T) {
	s := testStore(t)

	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalEntries != 0 {
		t.Errorf("Expected 0 entries, got %d", stats.TotalEntries)
	}
	if stats.AvgConfidence != 0 {
		t.Errorf("Expected 0 average confidence, got %v", stats.AvgConfidence)
	}
}

func TestCleanup(t *testing.T) {
	s := testStore(t)
	now := time.Now().UTC()

	if err := s.SaveContent(testContent("old", "13/GEN20", now.Add(-48*time.Hour))); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := s.SaveContent(testContent("fresh", "13/GEN20", now)); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	deleted, err := s.Cleanup(24 * time.Hour)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted entry, got %d", deleted)
	}

	remaining, err := s.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "fresh" {
		t.Errorf("Expected only the fresh entry to remain, got %v", remaining)
	}
}
