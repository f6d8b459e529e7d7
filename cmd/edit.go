package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/llm"
	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/store"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <instruction>",
	Short: "Apply an edit instruction to a session's diagrams",
	Long: `Send one edit instruction to an existing session. By default every
diagram in the session is updated; use --kinds to target a subset.
Diagrams whose edit fails keep their previous version.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("session", "", "Session ID to edit (required)")
	editCmd.Flags().StringSlice("kinds", nil, "Diagram types to target (default: all in session)")
	editCmd.Flags().Bool("stub", false, "Use built-in placeholder diagrams instead of an LLM")
	_ = editCmd.MarkFlagRequired("session")
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	instruction := strings.Join(args, " ")

	sessionID, _ := cmd.Flags().GetString("session")
	kindNames, _ := cmd.Flags().GetStringSlice("kinds")
	stub, _ := cmd.Flags().GetBool("stub")

	var targets []mermaid.Kind
	for _, name := range kindNames {
		kind, err := mermaid.ParseKind(name)
		if err != nil {
			return err
		}
		targets = append(targets, kind)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var oracle diagramgen.Oracle
	cfg := generationConfig()
	if stub {
		oracle = diagramgen.StubOracle{}
	} else {
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w (use --stub for offline placeholders)", err)
		}
		oracle = diagramgen.NewLLMOracle(provider, cfg)
	}

	enhancer := feedback.NewEnhancer(feedback.NewService(st.FeedbackRepo()))
	gen := diagramgen.NewService(oracle, cfg, enhancer)
	svc := chat.NewService(st.SessionRepo(), gen)

	result, err := svc.SendMessage(ctx, sessionID, instruction, targets)
	if err != nil {
		return err
	}

	fmt.Println(result.Response)
	for kind, outcome := range result.Updated {
		fmt.Printf("%s: %s\n", kind, describeOutcome(outcome))
	}
	for kind, fault := range result.Faults {
		fmt.Printf("%s: edit failed (%v), previous version kept\n", kind, fault)
	}
	if err := exhaustionError(result.Updated); err != nil {
		return err
	}
	if len(result.Faults) > 0 {
		return fmt.Errorf("model unavailable for %d diagram(s), previous versions kept", len(result.Faults))
	}
	return nil
}
