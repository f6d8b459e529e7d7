package diagramgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/diagen/internal/mermaid"
)

const (
	draftSystemPrompt = "You generate ONLY raw Mermaid code with no backticks or commentary. " +
		"Return valid Mermaid for the requested kind."

	editSystemPrompt = "You are a Mermaid diagram editor. You receive an existing diagram " +
		"and modification instructions. Return ONLY the updated raw Mermaid code " +
		"with no backticks or commentary. Preserve the original structure " +
		"while applying the requested changes."

	repairSystemPrompt = "You are a Mermaid diagram syntax expert. Fix invalid Mermaid code " +
		"while preserving meaning. Return ONLY corrected Mermaid code."
)

// contextWindow is how many trailing conversation lines an edit prompt carries.
const contextWindow = 3

func buildDraftPrompt(kind mermaid.Kind, prompt string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a Mermaid diagram of kind: %s\n", kind)
	b.WriteString("Constraints:\n")
	b.WriteString("- Output ONLY raw Mermaid source. No code fences, no prose.\n")
	b.WriteString("- Keep it compact but self-explanatory with labels.\n")
	if kind == mermaid.KindFlowchart {
		b.WriteString("- Use a flowchart to depict components and interactions.\n")
	}
	b.WriteString("- Use ASCII-safe characters only.\n\n")
	b.WriteString("Domain prompt:\n")
	b.WriteString(prompt)
	return b.String()
}

func buildEditPrompt(kind mermaid.Kind, current, instruction string, contextLines []string) string {
	if len(contextLines) > contextWindow {
		contextLines = contextLines[len(contextLines)-contextWindow:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current %s diagram:\n```\n%s\n```\n\n", kind, current)
	fmt.Fprintf(&b, "Recent conversation context:\n%s\n\n", strings.Join(contextLines, "\n"))
	fmt.Fprintf(&b, "Modification request: %s\n\n", instruction)
	b.WriteString("Please update the diagram according to the request.")
	return b.String()
}

func buildRepairPrompt(kind mermaid.Kind, text, reason string, hints []string, intent string) string {
	var b strings.Builder
	b.WriteString("Fix the following invalid Mermaid diagram.\n\n")
	fmt.Fprintf(&b, "DIAGRAM TYPE: %s\n", kind)
	fmt.Fprintf(&b, "ORIGINAL PROMPT: %s\n\n", intent)
	fmt.Fprintf(&b, "INVALID MERMAID CODE:\n```\n%s\n```\n\n", text)
	fmt.Fprintf(&b, "SPECIFIC VALIDATION ERROR: %s\n\n", reason)

	if len(hints) > 0 {
		b.WriteString("COMMON FIXES FOR THIS ERROR TYPE:\n")
		for _, h := range hints {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}

	b.WriteString("INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. FOCUS ON THE SPECIFIC ERROR: the validation failed because: %s\n", reason)
	b.WriteString("2. Fix the syntax errors while preserving the diagram's meaning and structure\n")
	fmt.Fprintf(&b, "3. Ensure the diagram type declaration is correct: %s\n", kind)
	fmt.Fprintf(&b, "4. Follow proper Mermaid syntax rules for %s\n", kind)
	b.WriteString("5. Return ONLY the corrected Mermaid code with no explanations or backticks\n")
	b.WriteString("6. Keep the content and logic of the original diagram intact\n\n")
	b.WriteString("CORRECTED MERMAID:")
	return b.String()
}
