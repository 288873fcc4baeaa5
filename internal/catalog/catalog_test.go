package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

const testCSV = `SKU,Name,Description,Meta: technical_specification
13/GEN20,Honda EU22i Inverter Generator,"Lightweight inverter generator for clean power on site.","Power: 2.2kW
Weight: 21.1kg"
03/BRK05,Hilti TE 1000-AVR Breaker,"Heavy duty electric breaker for demolition work.",
,Orphan Row Without SKU,"Should be skipped",
`

func TestLoadFile(t *testing.T) {
	path := writeTestCSV(t, t.TempDir(), "products.csv", testCSV)

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cat.Len() != 2 {
		t.Errorf("Expected 2 products, got %d", cat.Len())
	}

	record, err := cat.GetProductByCode("13/GEN20")
	if err != nil {
		t.Fatalf("GetProductByCode failed: %v", err)
	}
	if record.Title != "Honda EU22i Inverter Generator" {
		t.Errorf("Unexpected title: %s", record.Title)
	}
	if record.Category != "Generators" {
		t.Errorf("Expected category Generators, got %s", record.Category)
	}
	if record.Brand != "Honda" {
		t.Errorf("Expected brand Honda, got %s", record.Brand)
	}
	if record.TechnicalSpecs["Power"] != "2.2kW" {
		t.Errorf("Expected spec Power=2.2kW, got %v", record.TechnicalSpecs)
	}
}

func TestGetProductByCodeCaseInsensitive(t *testing.T) {
	path := writeTestCSV(t, t.TempDir(), "products.csv", testCSV)
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	record, err := cat.GetProductByCode("13/gen20")
	if err != nil {
		t.Fatalf("Lookup should be case-insensitive: %v", err)
	}
	if !record.Found {
		t.Error("Expected Found=true for existing product")
	}
}

func TestGetProductByCodeNotFound(t *testing.T) {
	path := writeTestCSV(t, t.TempDir(), "products.csv", testCSV)
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	record, err := cat.GetProductByCode("19/MISSING")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if record.Found {
		t.Error("Expected Found=false for missing product")
	}
	if record.Category != "Pumps" {
		t.Errorf("Missing product should still get category from its code, got %s", record.Category)
	}
	if record.StockNumber != "19/MISSING" {
		t.Errorf("Missing product should carry the requested code, got %s", record.StockNumber)
	}
}

func TestGetProductsByCategory(t *testing.T) {
	path := writeTestCSV(t, t.TempDir(), "products.csv", testCSV)
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	matches := cat.GetProductsByCategory("generator", 10)
	if len(matches) != 1 {
		t.Fatalf("Expected 1 generator, got %d", len(matches))
	}
	if matches[0].StockNumber != "13/GEN20" {
		t.Errorf("Unexpected match: %s", matches[0].StockNumber)
	}

	if got := cat.GetProductsByCategory("generator", 0); len(got) != 1 {
		t.Errorf("Zero limit should fall back to a default, got %d matches", len(got))
	}
}

func TestLoadDirPicksNewestCSV(t *testing.T) {
	dir := t.TempDir()
	writeTestCSV(t, dir, "old.csv", "SKU,Name\n01/A,Old Product\n")
	newest := writeTestCSV(t, dir, "new.csv", testCSV)

	// Push the second file's mtime forward so selection is deterministic.
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(newest, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	cat, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Expected newest file with 2 products, got %d", cat.Len())
	}
}

func TestLoadDirFallsBackToSampleData(t *testing.T) {
	cat, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("LoadDir should not fail on a missing directory: %v", err)
	}
	if cat.Len() == 0 {
		t.Error("Sample catalog should not be empty")
	}

	record, err := cat.GetProductByCode("13/GEN20")
	if err != nil {
		t.Fatalf("Sample catalog lookup failed: %v", err)
	}
	if record.Brand != "Honda" {
		t.Errorf("Unexpected sample brand: %s", record.Brand)
	}
}

func TestParseSpecText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{"colon separated", "Power: 2.2kW\nWeight: 21kg", "Power", "2.2kW"},
		{"html wrapped", "<ul><li>Motor: 550W</li></ul>", "Motor", "550W"},
		{"equals separated", "Capacity=90L", "Capacity", "90L"},
		{"blank", "", "", ""},
		{"nan sentinel", "nan", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := ParseSpecText(tt.input)
			if tt.key == "" {
				if len(specs) != 0 {
					t.Errorf("Expected empty specs, got %v", specs)
				}
				return
			}
			if specs[tt.key] != tt.want {
				t.Errorf("Expected %s=%s, got %v", tt.key, tt.want, specs)
			}
		})
	}
}

func TestExtractBrand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Honda EU22i Inverter Generator", "Honda"},
		{"STIHL TS410 Cut Off Saw", "Stihl"},
		{"Generic Scissor Lift", ""},
	}
	for _, tt := range tests {
		if got := ExtractBrand(tt.text); got != tt.want {
			t.Errorf("ExtractBrand(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractModel(t *testing.T) {
	if got := ExtractModel("Honda EU22i Inverter Generator", "Honda"); got != "EU22i" {
		t.Errorf("Unexpected model: %q", got)
	}
	if got := ExtractModel("Hilti TE 1000-AVR Breaker", "Hilti"); got == "" {
		t.Error("Expected a model for Hilti TE 1000")
	}
}

func TestExtractPowerType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Petrol driven plate compactor", "Petrol"},
		{"110v transformer required", "Electric"},
		{"Cordless 18v drill", "Battery"},
		{"Wheelbarrow", ""},
	}
	for _, tt := range tests {
		if got := ExtractPowerType(tt.text); got != tt.want {
			t.Errorf("ExtractPowerType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
