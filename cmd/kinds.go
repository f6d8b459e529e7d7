package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported diagram kinds and their accepted aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Header.
		fmt.Printf("%-18s  %s\n", "Kind", "Aliases")
		fmt.Println(strings.Repeat("─", 60))

		for _, kind := range mermaid.Kinds() {
			names := mermaid.AliasesFor(kind)
			sort.Strings(names)
			fmt.Printf("%-18s  %s\n", kind, strings.Join(names, ", "))
		}

		fmt.Printf("\n%d kinds\n", len(mermaid.Kinds()))
		return nil
	},
}
