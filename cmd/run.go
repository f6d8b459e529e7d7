package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/diagen/internal/app"
	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/llm"
	"github.com/abhisek/diagen/internal/store"
	"github.com/spf13/cobra"
)

// generationConfig builds the correction-loop config, honoring
// DIAGEN_LLM_TIMEOUT for the per-call oracle deadline.
func generationConfig() diagramgen.Config {
	cfg := diagramgen.DefaultConfig()
	if t := llm.ConfigFromEnv().Timeout; t > 0 {
		cfg.OracleTimeout = t
	}
	return cfg
}

// runApp wires the store, the LLM provider, and the services, then
// hands control to the TUI. Without provider credentials the app still
// runs on placeholder diagrams.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := generationConfig()
	var oracle diagramgen.Oracle
	oracleReady := false
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no LLM provider configured (%v), using placeholder diagrams\n", err)
		oracle = diagramgen.StubOracle{}
	} else {
		oracle = diagramgen.NewLLMOracle(provider, cfg)
		oracleReady = true
	}

	feedbackSvc := feedback.NewService(st.FeedbackRepo())
	enhancer := feedback.NewEnhancer(feedbackSvc)
	gen := diagramgen.NewService(oracle, cfg, enhancer)
	chatSvc := chat.NewService(st.SessionRepo(), gen)

	// Expired sessions are swept on startup rather than by a timer.
	if n, err := chatSvc.CleanupExpired(ctx); err == nil && n > 0 {
		fmt.Fprintf(os.Stderr, "cleaned up %d expired session(s)\n", n)
	}

	return app.Run(app.Options{
		Chat:        chatSvc,
		Feedback:    feedbackSvc,
		EventRepo:   st.EventRepo(),
		OracleReady: oracleReady,
	})
}
