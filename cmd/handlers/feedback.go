package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hiregen/internal/config"
	"hiregen/internal/core"
	"hiregen/internal/styleguide"
)

// NewFeedbackCmd creates the feedback command.
func NewFeedbackCmd() *cobra.Command {
	feedbackCmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record editorial feedback and manage the style guide",
		Long: `Record feedback on generated content, approve or reject examples, and
maintain the avoid-word list and category intro phrases. Everything is
stored in the style guide JSON document and biases future generations.

Examples:
  hiregen feedback record --type title --text "Titles read too long"
  hiregen feedback approve --type description --content "..." --code 13/GEN20
  hiregen feedback reject --type title --content "..." --reason "Too generic"
  hiregen feedback avoid-word gimmicky
  hiregen feedback intro Generators "for dependable site power"
  hiregen feedback summary`,
	}

	feedbackCmd.AddCommand(newFeedbackRecordCmd())
	feedbackCmd.AddCommand(newFeedbackApproveCmd())
	feedbackCmd.AddCommand(newFeedbackRejectCmd())
	feedbackCmd.AddCommand(newFeedbackAvoidWordCmd())
	feedbackCmd.AddCommand(newFeedbackIntroCmd())
	feedbackCmd.AddCommand(newFeedbackSummaryCmd())

	return feedbackCmd
}

func loadGuide() *styleguide.Guide {
	guide, err := styleguide.Load(config.GetStyleGuidePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading style guide: %v\n", err)
		os.Exit(1)
	}
	return guide
}

func newFeedbackRecordCmd() *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record free-text feedback",
		Run: func(cmd *cobra.Command, args []string) {
			contentType, _ := cmd.Flags().GetString("type")
			text, _ := cmd.Flags().GetString("text")
			example, _ := cmd.Flags().GetString("example")
			if text == "" {
				fmt.Fprintln(os.Stderr, "Error: --text is required")
				os.Exit(1)
			}

			guide := loadGuide()
			err := guide.RecordFeedback(core.FeedbackEntry{
				ContentType: contentType,
				Feedback:    text,
				Example:     example,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error recording feedback: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Feedback recorded")
		},
	}
	recordCmd.Flags().String("type", "general", "Content type: title, description, features")
	recordCmd.Flags().String("text", "", "Feedback text (required)")
	recordCmd.Flags().String("example", "", "Optional example illustrating the feedback")
	return recordCmd
}

func newFeedbackApproveCmd() *cobra.Command {
	approveCmd := &cobra.Command{
		Use:   "approve",
		Short: "Record an approved content example",
		Run: func(cmd *cobra.Command, args []string) {
			contentType, _ := cmd.Flags().GetString("type")
			content, _ := cmd.Flags().GetString("content")
			code, _ := cmd.Flags().GetString("code")
			if content == "" {
				fmt.Fprintln(os.Stderr, "Error: --content is required")
				os.Exit(1)
			}

			guide := loadGuide()
			err := guide.AddApprovedExample(core.ApprovedExample{
				ContentType: contentType,
				Content:     content,
				ProductCode: code,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error recording approval: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Approved example recorded")
		},
	}
	approveCmd.Flags().String("type", "description", "Content type")
	approveCmd.Flags().String("content", "", "The approved content (required)")
	approveCmd.Flags().String("code", "", "Product code the content was generated for")
	return approveCmd
}

func newFeedbackRejectCmd() *cobra.Command {
	rejectCmd := &cobra.Command{
		Use:   "reject",
		Short: "Record a rejected content example with the reason",
		Run: func(cmd *cobra.Command, args []string) {
			contentType, _ := cmd.Flags().GetString("type")
			content, _ := cmd.Flags().GetString("content")
			reason, _ := cmd.Flags().GetString("reason")
			code, _ := cmd.Flags().GetString("code")
			if content == "" || reason == "" {
				fmt.Fprintln(os.Stderr, "Error: --content and --reason are required")
				os.Exit(1)
			}

			guide := loadGuide()
			err := guide.AddRejectedExample(core.RejectedExample{
				ContentType: contentType,
				Content:     content,
				Reason:      reason,
				ProductCode: code,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error recording rejection: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Rejected example recorded")
		},
	}
	rejectCmd.Flags().String("type", "description", "Content type")
	rejectCmd.Flags().String("content", "", "The rejected content (required)")
	rejectCmd.Flags().String("reason", "", "Why the content was rejected (required)")
	rejectCmd.Flags().String("code", "", "Product code the content was generated for")
	return rejectCmd
}

func newFeedbackAvoidWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avoid-word [word]",
		Short: "Add a word generated copy should avoid",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			guide := loadGuide()
			if err := guide.AddAvoidWord(args[0]); err != nil {
				fmt.Fprintf(os.Stderr, "Error adding avoid word: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Avoid word %q recorded\n", args[0])
		},
	}
}

func newFeedbackIntroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intro [category] [phrase]",
		Short: "Set the intro phrase for a category",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			guide := loadGuide()
			if err := guide.SetCategoryIntro(args[0], args[1]); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting category intro: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Intro for %s set to %q\n", args[0], args[1])
		},
	}
}

func newFeedbackSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the current style guide state",
		Run: func(cmd *cobra.Command, args []string) {
			guide := loadGuide()
			data, err := json.MarshalIndent(guide.ExportSummary(), "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		},
	}
}
