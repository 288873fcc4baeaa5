package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hiregen/internal/core"
)

// NewNewProductCmd creates the new-product command.
func NewNewProductCmd() *cobra.Command {
	newProductCmd := &cobra.Command{
		Use:   "new-product",
		Short: "Generate content for a product not yet in the catalog",
		Long: `Generate content for a brand-new product from supplied details. With no
catalog history to ground on, confidence is fixed at the new-product level.

Examples:
  hiregen new-product --name "EU32i Generator" --brand Honda --model EU32i --category Generators
  hiregen new-product --brand Makita --model HR2470 --category "Breaking & Drilling" --differentiator "Low Vibration"`,
		Run: newProductRunFunc,
	}

	newProductCmd.Flags().String("name", "", "Product name")
	newProductCmd.Flags().String("brand", "", "Manufacturer brand")
	newProductCmd.Flags().String("model", "", "Model number")
	newProductCmd.Flags().String("category", "", "Hire category (required)")
	newProductCmd.Flags().String("power-type", "", "Power type: Petrol, Diesel, Electric, Battery")
	newProductCmd.Flags().String("differentiator", "", "What sets this product apart")
	newProductCmd.Flags().String("website", "", "Manufacturer product page URL for research")
	newProductCmd.Flags().String("info", "", "Further free-text product information")
	newProductCmd.Flags().String("export", "", "Also write the content to a file: markdown, html")
	_ = newProductCmd.MarkFlagRequired("category")

	return newProductCmd
}

func newProductRunFunc(cmd *cobra.Command, args []string) {
	info := core.NewProductInfo{}
	info.Name, _ = cmd.Flags().GetString("name")
	info.Brand, _ = cmd.Flags().GetString("brand")
	info.Model, _ = cmd.Flags().GetString("model")
	info.Category, _ = cmd.Flags().GetString("category")
	info.PowerType, _ = cmd.Flags().GetString("power-type")
	info.Differentiator, _ = cmd.Flags().GetString("differentiator")
	info.ManufacturerWebsite, _ = cmd.Flags().GetString("website")
	info.FurtherInfo, _ = cmd.Flags().GetString("info")

	if info.Name == "" && info.Brand == "" {
		fmt.Fprintln(os.Stderr, "Error: provide at least --name or --brand")
		os.Exit(1)
	}

	generator, _, err := buildGenerator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), generationBudget)
	defer cancel()

	content, err := generator.GenerateNewProduct(ctx, info)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating new product content: %v\n", err)
		os.Exit(1)
	}

	if err := printContent(content); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	saveHistory(content)

	if format, _ := cmd.Flags().GetString("export"); format != "" {
		if err := exportContent(content, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting content: %v\n", err)
			os.Exit(1)
		}
	}
}
