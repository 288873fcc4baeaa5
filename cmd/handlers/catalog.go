package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hiregen/internal/catalog"
	"hiregen/internal/config"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded product catalog",
		Long: `Inspect the catalog CSV export: file details, the category prefix map,
and individual product records.

Examples:
  hiregen catalog info
  hiregen catalog categories
  hiregen catalog show 13/GEN20`,
	}

	catalogCmd.AddCommand(newCatalogInfoCmd())
	catalogCmd.AddCommand(newCatalogCategoriesCmd())
	catalogCmd.AddCommand(newCatalogShowCmd())

	return catalogCmd
}

func loadCatalog() *catalog.Catalog {
	cat, err := catalog.LoadDir(config.GetCatalogDirectory())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	return cat
}

func newCatalogInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show catalog file details",
		Run: func(cmd *cobra.Command, args []string) {
			cat := loadCatalog()
			data, err := json.MarshalIndent(cat.Info(), "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		},
	}
}

func newCatalogCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the product code prefixes and their categories",
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range catalog.Categories() {
				fmt.Println(line)
			}
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [product-code]",
		Short: "Show the catalog record for a product code",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat := loadCatalog()
			record, err := cat.GetProductByCode(args[0])
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Product %s not found in catalog (category: %s)\n", args[0], record.Category)
				os.Exit(1)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			data, marshalErr := json.MarshalIndent(record, "", "  ")
			if marshalErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", marshalErr)
				os.Exit(1)
			}
			fmt.Println(string(data))
		},
	}
	return showCmd
}
