package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect and manage chat sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare `diagen sessions` lists.
		return sessionsListCmd.RunE(cmd, args)
	},
}

// openChatService opens the store and returns a chat service wired with
// the stub oracle. Management commands never call the LLM, so the real
// provider is not needed here.
func openChatService(cmd *cobra.Command) (*chat.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	gen := diagramgen.NewService(diagramgen.StubOracle{}, diagramgen.DefaultConfig(), nil)
	return chat.NewService(st.SessionRepo(), gen), st, nil
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions by most recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc, st, err := openChatService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := svc.List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		// Header.
		fmt.Printf("%-36s  %-19s  %-19s  %s\n",
			"ID", "Created", "Last Activity", "Prompt")
		fmt.Println(strings.Repeat("─", 110))

		for _, s := range sessions {
			prompt := s.OriginalPrompt
			if len(prompt) > 30 {
				prompt = prompt[:27] + "..."
			}
			fmt.Printf("%-36s  %-19s  %-19s  %s\n",
				s.ID,
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				s.LastActivity.Local().Format("2006-01-02 15:04:05"),
				prompt,
			)
		}
		return nil
	},
}

var sessionsHistoryCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "Show a session's conversation and current diagrams",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openChatService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := svc.History(context.Background(), args[0])
		if errors.Is(err, chat.ErrSessionNotFound) {
			return fmt.Errorf("session %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("Session:   %s\n", history.Session.ID)
		fmt.Printf("Prompt:    %s\n", history.Session.OriginalPrompt)
		fmt.Printf("Created:   %s\n", history.Session.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Activity:  %s\n", history.Session.LastActivity.Local().Format("2006-01-02 15:04:05"))

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("CONVERSATION")
		fmt.Println(sep)
		for _, msg := range history.Messages {
			fmt.Printf("[%s] %s: %s\n",
				msg.Timestamp.Local().Format("15:04:05"), msg.Role, msg.Content)
		}

		for _, d := range history.Diagrams {
			fmt.Println()
			fmt.Println(sep)
			fmt.Printf("%s (v%d)\n", strings.ToUpper(d.Kind), d.Version)
			fmt.Println(sep)
			fmt.Println(d.Source)
		}
		return nil
	},
}

// historyCmd is the top-level shorthand for `sessions history`.
var historyCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "Show a session's conversation and current diagrams",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionsHistoryCmd.RunE(cmd, args)
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openChatService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.Delete(context.Background(), args[0]); err != nil {
			if errors.Is(err, chat.ErrSessionNotFound) {
				return fmt.Errorf("session %s not found", args[0])
			}
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Println("Session deleted.")
		return nil
	},
}

var sessionsCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove sessions idle for more than 24 hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openChatService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := svc.CleanupExpired(context.Background())
		if err != nil {
			return fmt.Errorf("cleanup: %w", err)
		}
		fmt.Printf("Removed %d expired session(s).\n", n)
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsHistoryCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsCmd.AddCommand(sessionsCleanupCmd)
}
