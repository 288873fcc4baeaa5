// Package catalog loads the hire company's WordPress product export and
// exposes code and category lookups over it.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"hiregen/internal/core"
	"hiregen/internal/logger"
	"hiregen/internal/textutil"
)

// ErrNotFound indicates the catalog has no row for the requested code.
var ErrNotFound = errors.New("product not found in catalog")

// Catalog is an in-memory view over a loaded product CSV.
type Catalog struct {
	records  []core.ProductRecord
	filePath string
	loadedAt time.Time
}

// Info summarizes a loaded catalog file for diagnostics.
type Info struct {
	FilePath      string    `json:"csv_file_path"`
	FileExists    bool      `json:"file_exists"`
	FileSize      int64     `json:"file_size"`
	LastModified  time.Time `json:"last_modified"`
	TotalProducts int       `json:"total_products"`
}

// headerAliases maps WordPress export column names to the canonical fields.
var headerAliases = map[string]string{
	"sku":                            "stock_number",
	"stock number":                   "stock_number",
	"stock_number":                   "stock_number",
	"name":                           "title",
	"title":                          "title",
	"post title":                     "title",
	"description":                    "description",
	"short description":              "description",
	"content":                        "description",
	"brand":                          "brand",
	"model":                          "model",
	"manufacturer_website":           "manufacturer_website",
	"manufacturer website":           "manufacturer_website",
	"power_type":                     "power_type",
	"power_output":                   "power_output",
	"meta: technical_specification":  "technical_specs_raw",
	"technical specification":        "technical_specs_raw",
	"technical_specification":        "technical_specs_raw",
	"meta: _technical_specification": "technical_specs_raw",
}

// LoadDir finds the most recently modified CSV file in dir and loads it.
// A missing directory or absence of CSV files yields a catalog backed by
// sample data rather than an error.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Catalog directory not readable, using sample data", "dir", dir)
		return sampleCatalog(), nil
	}

	var newest string
	var newestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = filepath.Join(dir, entry.Name())
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		logger.Warn("No CSV file found in catalog directory, using sample data", "dir", dir)
		return sampleCatalog(), nil
	}

	return LoadFile(newest)
}

// LoadFile loads a single product CSV export.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // WordPress exports have ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog CSV %s is empty", path)
	}

	columns := normalizeHeader(rows[0])

	var records []core.ProductRecord
	for _, row := range rows[1:] {
		record, ok := recordFromRow(columns, row)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	logger.Info("Catalog loaded", "file", filepath.Base(path), "products", len(records))

	return &Catalog{
		records:  records,
		filePath: path,
		loadedAt: time.Now().UTC(),
	}, nil
}

// normalizeHeader resolves WordPress column names to canonical field names,
// dropping duplicate columns in favor of the first occurrence.
func normalizeHeader(header []string) map[int]string {
	columns := make(map[int]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		canonical, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok || seen[canonical] {
			continue
		}
		columns[i] = canonical
		seen[canonical] = true
	}
	return columns
}

func recordFromRow(columns map[int]string, row []string) (core.ProductRecord, bool) {
	fields := make(map[string]string, len(columns))
	for i, canonical := range columns {
		if i < len(row) {
			fields[canonical] = strings.TrimSpace(row[i])
		}
	}

	// Rows without a stock number or title carry no usable signal.
	if textutil.IsBlank(fields["stock_number"]) || textutil.IsBlank(fields["title"]) {
		return core.ProductRecord{}, false
	}

	record := core.ProductRecord{
		StockNumber:         fields["stock_number"],
		Title:               fields["title"],
		Description:         fields["description"],
		Category:            CategoryFromSKU(fields["stock_number"]),
		Brand:               fields["brand"],
		Model:               fields["model"],
		PowerType:           fields["power_type"],
		PowerOutput:         fields["power_output"],
		ManufacturerWebsite: fields["manufacturer_website"],
		TechnicalSpecs:      ParseSpecText(fields["technical_specs_raw"]),
		Found:               true,
	}

	if record.Brand == "" {
		record.Brand = ExtractBrand(record.Title)
	}
	if record.Model == "" {
		record.Model = ExtractModel(record.Title, record.Brand)
	}
	if record.PowerType == "" {
		record.PowerType = ExtractPowerType(record.Title + " " + record.Description)
	}

	return record, true
}

// GetProductByCode looks up a record by its stock number, case-insensitively.
// When no row matches it returns a not-found record carrying the category
// inferred from the code, and ErrNotFound.
func (c *Catalog) GetProductByCode(code string) (core.ProductRecord, error) {
	for _, record := range c.records {
		if strings.EqualFold(record.StockNumber, code) {
			return record, nil
		}
	}

	analysis := AnalyzeProductCode(code)
	return core.ProductRecord{
		StockNumber:    code,
		Category:       analysis.Category,
		TechnicalSpecs: map[string]string{},
		Found:          false,
	}, ErrNotFound
}

// GetProductsByCategory returns up to limit records whose category contains
// the given category name, case-insensitively.
func (c *Catalog) GetProductsByCategory(category string, limit int) []core.ProductRecord {
	if limit <= 0 {
		limit = 10
	}

	var matches []core.ProductRecord
	lower := strings.ToLower(category)
	for _, record := range c.records {
		if strings.Contains(strings.ToLower(record.Category), lower) {
			matches = append(matches, record)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Info reports details about the loaded catalog file.
func (c *Catalog) Info() Info {
	info := Info{
		FilePath:      c.filePath,
		TotalProducts: len(c.records),
	}
	if c.filePath == "" {
		return info
	}
	if stat, err := os.Stat(c.filePath); err == nil {
		info.FileExists = true
		info.FileSize = stat.Size()
		info.LastModified = stat.ModTime()
	}
	return info
}

// ParseSpecText parses a WordPress technical-specification field, which may
// be HTML or delimited key/value lines, into a spec map. Unparseable input
// yields an empty map.
func ParseSpecText(raw string) map[string]string {
	specs := map[string]string{}
	if textutil.IsBlank(raw) {
		return specs
	}

	// WordPress often stores specs as HTML; treat tags as line breaks.
	if strings.Contains(raw, "<") && strings.Contains(raw, ">") {
		raw = htmlTagRegex.ReplaceAllString(raw, "\n")
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r", "\n"), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, separator := range []string{":", "=", "-", "|"} {
			if idx := strings.Index(line, separator); idx > 0 {
				key := strings.TrimSpace(line[:idx])
				value := strings.TrimSpace(line[idx+1:])
				if key != "" && value != "" && len(key) < 50 {
					specs[key] = value
				}
				break
			}
		}
	}
	return specs
}

// SortedSpecKeys returns the spec keys in deterministic order, for rendering.
func SortedSpecKeys(specs map[string]string) []string {
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
