package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hiregen/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hiregen",
		Short: "hiregen generates marketing content for equipment hire catalogs",
		Long: `hiregen is a CLI tool for an equipment-hire business that generates
product titles, descriptions, feature lists, and spec tables from catalog
data, light web research, and accumulated editorial feedback.

It also produces campaign e-shots, social posts, and an annual campaign
calendar from canned templates.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hiregen.yaml)")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewNewProductCmd())
	rootCmd.AddCommand(NewFeedbackCmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewCampaignCmd())
	rootCmd.AddCommand(NewHistoryCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}
