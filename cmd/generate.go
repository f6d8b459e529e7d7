package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/feedback"
	"github.com/abhisek/diagen/internal/llm"
	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate validated diagrams from a prompt (no session)",
	Long: `Generate Mermaid diagrams for a system description and print them.

Each diagram is validated against its grammar; invalid output is sent back
to the model for correction before it is returned. Use --out to write each
diagram to a .mmd file instead of stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSlice("kinds", []string{"sequential", "component"}, "Diagram types to generate")
	generateCmd.Flags().String("user", "", "User identifier for feedback-driven prompt adaptation")
	generateCmd.Flags().String("out", "", "Directory to write <kind>.mmd files into")
	generateCmd.Flags().Bool("stub", false, "Use built-in placeholder diagrams instead of an LLM")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	prompt := strings.Join(args, " ")

	kindNames, _ := cmd.Flags().GetStringSlice("kinds")
	user, _ := cmd.Flags().GetString("user")
	outDir, _ := cmd.Flags().GetString("out")
	stub, _ := cmd.Flags().GetBool("stub")

	kinds := make([]mermaid.Kind, 0, len(kindNames))
	for _, name := range kindNames {
		kind, err := mermaid.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
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

	outcomes, err := gen.GenerateAll(ctx, kinds, prompt, user)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	for _, kind := range kinds {
		outcome := outcomes[kind]

		if outDir != "" {
			path := filepath.Join(outDir, string(kind)+".mmd")
			if err := os.WriteFile(path, []byte(outcome.Text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Printf("%s: %s (%s)\n", kind, path, describeOutcome(outcome))
			continue
		}

		fmt.Printf("── %s (%s) ──\n", kind, describeOutcome(outcome))
		fmt.Println(outcome.Text)
		fmt.Println()
	}
	return exhaustionError(outcomes)
}

func describeOutcome(o diagramgen.Outcome) string {
	switch o.Status {
	case diagramgen.StatusUnchanged:
		return "valid"
	case diagramgen.StatusCorrected:
		return fmt.Sprintf("corrected after %d attempt(s)", o.Attempts)
	default:
		return fmt.Sprintf("still invalid after %d attempts: %s", o.Attempts, o.LastReason)
	}
}

// exhaustionError turns StatusFailed outcomes into a non-nil error so
// callers exit non-zero when a diagram never validated. Distinct from
// oracle faults, which abort before an outcome exists.
func exhaustionError(outcomes map[mermaid.Kind]diagramgen.Outcome) error {
	var failed []string
	for _, kind := range mermaid.Kinds() {
		if o, ok := outcomes[kind]; ok && o.Status == diagramgen.StatusFailed {
			failed = append(failed, fmt.Sprintf("%s (%s)", kind, o.LastReason))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("correction exhausted for %s", strings.Join(failed, "; "))
}
