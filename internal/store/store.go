// Package store persists generated content history in SQLite, so past
// generations can be reviewed and re-exported.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"hiregen/internal/core"
)

// Store is the SQLite-backed content history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the history database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "hiregen.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	contentTable := `
	CREATE TABLE IF NOT EXISTS generated_content (
		id TEXT PRIMARY KEY,
		product_code TEXT,
		category TEXT,
		title TEXT,
		description TEXT,
		key_features TEXT,
		technical_specs TEXT,
		meta_summary TEXT,
		confidence REAL,
		research_summary TEXT,
		placeholder INTEGER,
		generated_at DATETIME
	);`

	indexStmt := `CREATE INDEX IF NOT EXISTS idx_content_product_code ON generated_content (product_code);`

	if _, err := s.db.Exec(contentTable); err != nil {
		return fmt.Errorf("failed to create generated_content table: %w", err)
	}
	if _, err := s.db.Exec(indexStmt); err != nil {
		return fmt.Errorf("failed to create product code index: %w", err)
	}
	return nil
}

// SaveContent inserts or replaces one generation result.
func (s *Store) SaveContent(content core.GeneratedContent) error {
	features, err := json.Marshal(content.KeyFeatures)
	if err != nil {
		return fmt.Errorf("failed to marshal key features: %w", err)
	}
	specs, err := json.Marshal(content.TechnicalSpecs)
	if err != nil {
		return fmt.Errorf("failed to marshal technical specs: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO generated_content
	(id, product_code, category, title, description, key_features, technical_specs,
	 meta_summary, confidence, research_summary, placeholder, generated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		content.ID, content.ProductCode, content.Category, content.Title,
		content.Description, string(features), string(specs), content.MetaSummary,
		content.Confidence, content.ResearchSummary, content.Placeholder,
		content.GeneratedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save generated content: %w", err)
	}
	return nil
}

// GetContentByCode returns the stored generations for a product code, most
// recent first.
func (s *Store) GetContentByCode(productCode string) ([]core.GeneratedContent, error) {
	query := `
	SELECT id, product_code, category, title, description, key_features,
	       technical_specs, meta_summary, confidence, research_summary,
	       placeholder, generated_at
	FROM generated_content
	WHERE product_code = ?
	ORDER BY generated_at DESC`

	rows, err := s.db.Query(query, productCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query content for %s: %w", productCode, err)
	}
	defer rows.Close()

	return scanContent(rows)
}

// ListRecent returns up to limit generations across all products, most
// recent first.
func (s *Store) ListRecent(limit int) ([]core.GeneratedContent, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT id, product_code, category, title, description, key_features,
	       technical_specs, meta_summary, confidence, research_summary,
	       placeholder, generated_at
	FROM generated_content
	ORDER BY generated_at DESC
	LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent content: %w", err)
	}
	defer rows.Close()

	return scanContent(rows)
}

func scanContent(rows *sql.Rows) ([]core.GeneratedContent, error) {
	var results []core.GeneratedContent
	for rows.Next() {
		var content core.GeneratedContent
		var features, specs, generatedAt string

		err := rows.Scan(&content.ID, &content.ProductCode, &content.Category,
			&content.Title, &content.Description, &features, &specs,
			&content.MetaSummary, &content.Confidence, &content.ResearchSummary,
			&content.Placeholder, &generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}

		if err := json.Unmarshal([]byte(features), &content.KeyFeatures); err != nil {
			content.KeyFeatures = []string{}
		}
		if err := json.Unmarshal([]byte(specs), &content.TechnicalSpecs); err != nil {
			content.TechnicalSpecs = map[string]string{}
		}
		if parsed, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			content.GeneratedAt = parsed
		}

		results = append(results, content)
	}
	return results, rows.Err()
}

// Stats summarizes the stored history.
type Stats struct {
	TotalEntries  int     `json:"total_entries"`
	UniqueCodes   int     `json:"unique_codes"`
	AvgConfidence float64 `json:"avg_confidence"`
	Placeholders  int     `json:"placeholders"`
	DatabasePath  string  `json:"database_path"`
}

// GetStats reports counts over the stored generations.
func (s *Store) GetStats() (Stats, error) {
	stats := Stats{DatabasePath: s.path}

	query := `
	SELECT COUNT(*),
	       COUNT(DISTINCT product_code),
	       COALESCE(AVG(confidence), 0),
	       COALESCE(SUM(placeholder), 0)
	FROM generated_content`

	err := s.db.QueryRow(query).Scan(&stats.TotalEntries, &stats.UniqueCodes,
		&stats.AvgConfidence, &stats.Placeholders)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read store stats: %w", err)
	}
	return stats, nil
}

// Cleanup removes generations older than maxAge and returns how many rows
// were deleted.
func (s *Store) Cleanup(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Format(time.RFC3339)

	result, err := s.db.Exec(`DELETE FROM generated_content WHERE generated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up old content: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return deleted, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
