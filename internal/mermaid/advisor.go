package mermaid

import (
	"fmt"
	"strings"
)

// Advise classifies an invalid verdict's reason into remediation
// categories and returns canonical hint text for each category that
// fires. Multiple categories may contribute (a reason mentioning both
// the arrow and the flowchart keyword collects both hint sets). Falls
// back to a generic checklist when nothing matches.
//
// Hints are advisory text for the next correction request; they never
// alter the verdict itself.
func Advise(v Verdict, kind Kind) []string {
	if v.Valid {
		return nil
	}

	reason := strings.ToLower(v.Reason)
	var hints []string

	if strings.Contains(reason, "start") && strings.Contains(reason, "invalid") {
		hints = append(hints,
			fmt.Sprintf("Begin the diagram with the exact declaration '%s' (case-sensitive)", kind),
			"For flowcharts, use 'flowchart TD' or 'graph TD/LR/TB/BT'",
			"For sequence diagrams, the first line must be 'sequenceDiagram'",
		)
	}

	if strings.Contains(reason, "participant") || strings.Contains(reason, "actor") {
		hints = append(hints,
			`Declare participants as 'participant A as "Description"'`,
			`Declare actors as 'actor A as "Description"'`,
			"Participant and actor identifiers must not contain spaces",
		)
	}

	if strings.Contains(reason, "arrow") || strings.Contains(reason, "-->") {
		hints = append(hints,
			"Sequence message syntax is 'A->>B: message'",
			"Flowchart edge syntax is 'A-->B'",
			"Keep spacing consistent around arrow operators",
		)
	}

	if strings.Contains(reason, "flowchart") || strings.Contains(reason, "graph") {
		hints = append(hints,
			"Start with 'flowchart TD' or 'graph LR/TD/TB/BT'",
			"Node shapes: 'A[Label]', 'B(Label)', 'C{Decision}'",
			"Edge shapes: 'A-->B', 'A-.->B', 'A==>B'",
		)
	}

	if strings.Contains(reason, "subgraph") || strings.Contains(reason, "end") {
		hints = append(hints,
			"Every 'subgraph' needs a matching 'end' line",
			"Subgraph form: 'subgraph Title', body lines, then 'end'",
		)
	}

	if strings.Contains(reason, "syntax") {
		hints = append(hints,
			fmt.Sprintf("Review the %s statement forms and fix the quoted line", kind),
			"Check keywords and operators for typos",
		)
	}

	if strings.Contains(reason, "empty") {
		hints = append(hints,
			"Emit actual diagram content after the declaration line",
			"Do not return an empty or whitespace-only response",
		)
	}

	if len(hints) == 0 {
		hints = []string{
			fmt.Sprintf("Verify the %s syntax is correct", kind),
			"Check for typos in keywords and identifiers",
			"Ensure proper line breaks between statements",
			"Remove any invalid characters or stray formatting",
		}
	}

	return hints
}
