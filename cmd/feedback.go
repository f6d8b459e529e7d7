package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/llm"
	"github.com/abhisek/diagen/internal/store"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Rate diagrams and inspect feedback",
}

func openFeedbackService(cmd *cobra.Command) (*feedback.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return feedback.NewService(st.FeedbackRepo()), st, nil
}

var feedbackSubmitCmd = &cobra.Command{
	Use:     "submit",
	Aliases: []string{"add"},
	Short:   "Submit a rating for a generated diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		rating, _ := cmd.Flags().GetInt("rating")
		comment, _ := cmd.Flags().GetString("comment")
		suggestions, _ := cmd.Flags().GetString("suggest")
		user, _ := cmd.Flags().GetString("user")
		sessionID, _ := cmd.Flags().GetString("session")
		feedbackType, _ := cmd.Flags().GetString("type")

		svc, st, err := openFeedbackService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		id, notes, err := svc.Submit(context.Background(), feedback.Submission{
			SessionID:              sessionID,
			User:                   user,
			Kind:                   kind,
			Rating:                 rating,
			Type:                   feedbackType,
			Comment:                comment,
			ImprovementSuggestions: suggestions,
		})
		if err != nil {
			return fmt.Errorf("submit feedback: %w", err)
		}

		fmt.Printf("Feedback recorded (%s).\n", id)
		for _, note := range notes {
			fmt.Printf("  - %s\n", note)
		}
		return nil
	},
}

var feedbackStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated feedback ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openFeedbackService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summary, err := svc.Summary(context.Background())
		if err != nil {
			return fmt.Errorf("query feedback: %w", err)
		}
		if summary.Total == 0 {
			fmt.Println("No feedback recorded yet.")
			return nil
		}

		fmt.Printf("Total feedback:  %d\n", summary.Total)
		fmt.Printf("Average rating:  %.2f / 5\n", summary.AverageRating)
		fmt.Println()
		fmt.Println("Rating distribution")
		fmt.Println(strings.Repeat("─", 40))
		for rating := 5; rating >= 1; rating-- {
			count := summary.RatingDistribution[rating]
			bar := strings.Repeat("█", count)
			fmt.Printf("%d ★  %-4d %s\n", rating, count, bar)
		}
		return nil
	},
}

var feedbackHistoryCmd = &cobra.Command{
	Use:     "history <user>",
	Aliases: []string{"list"},
	Short:   "Show a user's feedback, newest first",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc, st, err := openFeedbackService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items, err := svc.History(context.Background(), args[0], limit)
		if err != nil {
			return fmt.Errorf("query feedback: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No feedback found for this user.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-6s  %s\n", "When", "Kind", "Rating", "Comment")
		fmt.Println(strings.Repeat("─", 80))
		for _, item := range items {
			comment := item.Comment
			if len(comment) > 34 {
				comment = comment[:31] + "..."
			}
			fmt.Printf("%-19s  %-16s  %-6d  %s\n",
				item.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				item.Kind, item.Rating, comment)
		}
		return nil
	},
}

var feedbackSummarizeCmd = &cobra.Command{
	Use:   "summarize <user>",
	Short: "Derive structured guidance from a user's feedback with the model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openFeedbackService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		summarizer := feedback.NewSummarizer(provider, svc)
		guidance, err := summarizer.Summarize(cmd.Context(), args[0])
		if errors.Is(err, feedback.ErrNoFeedback) {
			fmt.Printf("No feedback recorded for %s.\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Detail level: %s\n", guidance.DetailLevel)
		if len(guidance.Themes) > 0 {
			fmt.Println("Themes:")
			for _, theme := range guidance.Themes {
				fmt.Printf("  - %s\n", theme)
			}
		}
		if len(guidance.Suggestions) > 0 {
			fmt.Println("Suggestions:")
			for _, s := range guidance.Suggestions {
				fmt.Printf("  - %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	feedbackSubmitCmd.Flags().String("kind", "", "Diagram kind the rating applies to (required)")
	feedbackSubmitCmd.Flags().Int("rating", 0, "Rating from 1 to 5 (required)")
	feedbackSubmitCmd.Flags().String("comment", "", "What was wrong or right")
	feedbackSubmitCmd.Flags().String("suggest", "", "Suggestions for future diagrams")
	feedbackSubmitCmd.Flags().String("user", "", "User identifier for preference tracking")
	feedbackSubmitCmd.Flags().String("session", "", "Session the diagram came from")
	feedbackSubmitCmd.Flags().String("type", "", "Feedback type (default diagram_quality)")
	_ = feedbackSubmitCmd.MarkFlagRequired("kind")
	_ = feedbackSubmitCmd.MarkFlagRequired("rating")

	feedbackHistoryCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")

	feedbackCmd.AddCommand(feedbackSubmitCmd)
	feedbackCmd.AddCommand(feedbackStatsCmd)
	feedbackCmd.AddCommand(feedbackHistoryCmd)
	feedbackCmd.AddCommand(feedbackSummarizeCmd)
}
