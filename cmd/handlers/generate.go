package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hiregen/internal/research"
)

// generationBudget bounds a whole generation call, research included.
const generationBudget = 60 * time.Second

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [product code]",
		Short: "Generate marketing content for a catalog product",
		Long: `Generate a title, description, feature list, and technical spec table
for a product code, grounded on similar catalog products, manufacturer
research, and accumulated editorial feedback.

Examples:
  hiregen generate 13/GEN20
  hiregen generate 13/GEN20 --export html
  hiregen generate 13/GEN20 --no-save`,
		Args: cobra.ExactArgs(1),
		Run:  generateRunFunc,
	}

	generateCmd.Flags().String("export", "", "Also write the content to a file: markdown, html")
	generateCmd.Flags().Bool("no-save", false, "Skip saving the result to content history")

	return generateCmd
}

func generateRunFunc(cmd *cobra.Command, args []string) {
	productCode := args[0]

	generator, _, err := buildGenerator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), generationBudget)
	defer cancel()

	content, err := generator.Generate(ctx, productCode)
	if err != nil {
		if errors.Is(err, research.ErrResearchTimeout) {
			fmt.Fprintf(os.Stderr, "Error: research timed out for %s; try again later\n", productCode)
		} else {
			fmt.Fprintf(os.Stderr, "Error generating content for %s: %v\n", productCode, err)
		}
		os.Exit(1)
	}

	if content.Placeholder {
		fmt.Fprintf(os.Stderr, "Note: %s matched no catalog data; placeholder content returned\n", productCode)
	}
	if err := printContent(content); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		saveHistory(content)
	}
	if format, _ := cmd.Flags().GetString("export"); format != "" {
		if err := exportContent(content, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting content: %v\n", err)
			os.Exit(1)
		}
	}
}
