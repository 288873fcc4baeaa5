package handlers

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hiregen/internal/config"
	"hiregen/internal/core"
	"hiregen/internal/store"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously generated content",
		Long: `Browse the generation history stored in the local database.

Examples:
  hiregen history list
  hiregen history list --limit 50
  hiregen history show 13/GEN20`,
	}

	historyCmd.AddCommand(newHistoryListCmd())
	historyCmd.AddCommand(newHistoryShowCmd())
	historyCmd.AddCommand(newHistoryStatsCmd())
	historyCmd.AddCommand(newHistoryCleanupCmd())

	return historyCmd
}

func openStore() *store.Store {
	db, err := store.NewStore(config.GetHistoryDirectory())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history store: %v\n", err)
		os.Exit(1)
	}
	return db
}

func newHistoryListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generations",
		Run: func(cmd *cobra.Command, args []string) {
			limit, _ := cmd.Flags().GetInt("limit")

			db := openStore()
			defer db.Close()

			entries, err := db.ListRecent(limit)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error listing history: %v\n", err)
				os.Exit(1)
			}
			if len(entries) == 0 {
				fmt.Println("No generated content recorded yet")
				return
			}
			printHistoryTable(entries)
		},
	}
	listCmd.Flags().Int("limit", 20, "Maximum entries to show")
	return listCmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [product-code]",
		Short: "Show all generations recorded for a product code",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			db := openStore()
			defer db.Close()

			entries, err := db.GetContentByCode(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
				os.Exit(1)
			}
			if len(entries) == 0 {
				fmt.Printf("No history for %s\n", args[0])
				return
			}
			for _, entry := range entries {
				printContent(entry)
			}
		},
	}
}

func newHistoryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show history database statistics",
		Run: func(cmd *cobra.Command, args []string) {
			db := openStore()
			defer db.Close()

			stats, err := db.GetStats()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
				os.Exit(1)
			}
			printJSON(stats)
		},
	}
}

func newHistoryCleanupCmd() *cobra.Command {
	cleanupCmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete history entries older than the given age",
		Run: func(cmd *cobra.Command, args []string) {
			maxAge, _ := cmd.Flags().GetDuration("older-than")

			db := openStore()
			defer db.Close()

			deleted, err := db.Cleanup(maxAge)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error cleaning up history: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Deleted %d entries older than %s\n", deleted, maxAge)
		},
	}
	cleanupCmd.Flags().Duration("older-than", 90*24*time.Hour, "Delete entries older than this")
	return cleanupCmd
}

func printHistoryTable(entries []core.GeneratedContent) {
	for _, entry := range entries {
		title := entry.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Printf("%s  %-12s  %-50s  %.2f\n",
			entry.GeneratedAt.Format("2006-01-02 15:04"),
			entry.ProductCode,
			title,
			entry.Confidence)
	}
}
