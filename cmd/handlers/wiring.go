package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"hiregen/internal/assemble"
	"hiregen/internal/catalog"
	"hiregen/internal/config"
	"hiregen/internal/core"
	"hiregen/internal/render"
	"hiregen/internal/research"
	"hiregen/internal/store"
	"hiregen/internal/styleguide"
)

// buildGenerator wires the generation pipeline from configuration.
func buildGenerator() (*assemble.Generator, *styleguide.Guide, error) {
	cfg := config.Get()

	cat, err := catalog.LoadDir(cfg.Catalog.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	guide, err := styleguide.Load(cfg.StyleGuide.Path)
	if err != nil {
		// Persistence failures degrade to defaults for this session.
		fmt.Fprintf(os.Stderr, "Warning: style guide unavailable, using defaults: %v\n", err)
		guide = nil
	}

	var source research.Source
	if cfg.Research.Enabled {
		source = research.NewAdapter(research.Options{
			Timeout:   cfg.ResearchTimeout(),
			RateLimit: cfg.ResearchRateLimit(),
			UserAgent: cfg.Research.UserAgent,
		})
	}

	var styles assemble.StyleSource
	if guide != nil {
		styles = guide
	}
	assembler := assemble.New(styles, nil)

	return assemble.NewGenerator(cat, source, assembler, cfg.Generation.RichFeatures), guide, nil
}

// exportContent writes content in the requested format and prints the path.
func exportContent(content core.GeneratedContent, format string) error {
	outputDir := config.GetOutputDirectory()

	var path string
	var err error
	switch format {
	case "html":
		path, err = render.WriteHTMLFile(content, outputDir)
	default:
		path, err = render.WriteMarkdownFile(content, outputDir)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Content written to %s\n", path)
	return nil
}

// saveHistory persists content to the history database, warning on failure
// rather than failing the generation.
func saveHistory(content core.GeneratedContent) {
	historyStore, err := store.NewStore(config.GetHistoryDirectory())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return
	}
	defer historyStore.Close()

	if err := historyStore.SaveContent(content); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
	}
}

// printContent renders content to stdout as indented JSON.
func printContent(content core.GeneratedContent) error {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
