// Package render writes generated content to markdown and HTML files for
// review or WordPress import.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"hiregen/internal/core"
)

// RenderMarkdown builds the markdown document for one piece of generated
// content.
func RenderMarkdown(content core.GeneratedContent) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# %s\n\n", content.Title))

	if content.Placeholder {
		builder.WriteString("> Placeholder content: product details not yet available.\n\n")
	}

	builder.WriteString(content.Description + "\n\n")

	if len(content.KeyFeatures) > 0 {
		builder.WriteString("## Key Features\n\n")
		for _, feature := range content.KeyFeatures {
			builder.WriteString("- " + feature + "\n")
		}
		builder.WriteString("\n")
	}

	if len(content.TechnicalSpecs) > 0 {
		builder.WriteString("## Technical Specifications\n\n")
		builder.WriteString("| Specification | Value |\n")
		builder.WriteString("| --- | --- |\n")
		for _, key := range sortedKeys(content.TechnicalSpecs) {
			builder.WriteString(fmt.Sprintf("| %s | %s |\n", key, content.TechnicalSpecs[key]))
		}
		builder.WriteString("\n")
	}

	builder.WriteString(fmt.Sprintf("*%s*\n\n", content.MetaSummary))
	builder.WriteString(fmt.Sprintf("Confidence: %.2f | %s\n", content.Confidence, content.ResearchSummary))

	return builder.String()
}

// WriteMarkdownFile writes the markdown rendering of content into outputDir,
// named by product code and date, and returns the file path.
func WriteMarkdownFile(content core.GeneratedContent, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "output"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	filename := fmt.Sprintf("%s_%s.md", safeFilename(content.ProductCode), time.Now().UTC().Format("2006-01-02"))
	filePath := filepath.Join(outputDir, filename)

	if err := os.WriteFile(filePath, []byte(RenderMarkdown(content)), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file %s: %w", filePath, err)
	}
	return filePath, nil
}

// WriteHTMLFile converts the markdown rendering to HTML, for pasting into a
// WordPress product page, and returns the file path.
func WriteHTMLFile(content core.GeneratedContent, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "output"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderMarkdown(content)), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.html", safeFilename(content.ProductCode), time.Now().UTC().Format("2006-01-02"))
	filePath := filepath.Join(outputDir, filename)

	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML file %s: %w", filePath, err)
	}
	return filePath, nil
}

func sortedKeys(specs map[string]string) []string {
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// safeFilename replaces path separators in product codes like "13/GEN001".
func safeFilename(code string) string {
	code = strings.ReplaceAll(code, "/", "-")
	code = strings.ReplaceAll(code, "\\", "-")
	if code == "" {
		return "content"
	}
	return code
}
