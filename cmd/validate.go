package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <kind> <file.mmd>",
	Short: "Validate a Mermaid file against its grammar",
	Long: `Check a Mermaid source file line by line against the grammar for the
given diagram kind. Pass "-" to read from stdin. Exits non-zero when the
file is invalid and prints the first offending line together with repair
hints.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := mermaid.ParseKind(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if args[1] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[1])
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		verdict := mermaid.Validate(kind, mermaid.Sanitize(string(data)))
		if verdict.Valid {
			fmt.Printf("%s: valid %s diagram\n", args[1], kind)
			return nil
		}

		if verdict.LineIndex == mermaid.StructuralLine {
			fmt.Printf("%s: invalid: %s\n", args[1], verdict.Reason)
		} else {
			fmt.Printf("%s: invalid at line %d: %s\n", args[1], verdict.LineIndex+1, verdict.Reason)
			fmt.Printf("  > %s\n", verdict.Line)
		}

		hints := mermaid.Advise(verdict, kind)
		if len(hints) > 0 {
			fmt.Println("\nSuggestions:")
			for _, h := range hints {
				fmt.Printf("  - %s\n", h)
			}
		}

		os.Exit(1)
		return nil
	},
}
