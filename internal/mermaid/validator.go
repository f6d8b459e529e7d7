package mermaid

import (
	"fmt"
	"strings"
)

// StructuralLine is the LineIndex used when a failure has no single
// offending line (empty input, unmatched block at end of input).
const StructuralLine = -1

// Verdict is the result of validating one piece of diagram text.
// When invalid it carries a first-failure diagnostic: the earliest
// offending line and a human-readable reason, never an exhaustive list.
type Verdict struct {
	Valid     bool
	LineIndex int    // index into the non-blank line sequence; StructuralLine if none
	Line      string // offending line text, "" for structural failures
	Reason    string
}

func valid() Verdict {
	return Verdict{Valid: true, LineIndex: StructuralLine}
}

func invalid(index int, line, reason string) Verdict {
	return Verdict{Valid: false, LineIndex: index, Line: line, Reason: reason}
}

// Validate checks text against the grammar for kind and returns a verdict.
// Validation stops at the first bad line: one clear defect per round keeps
// the downstream correction prompt focused.
func Validate(kind Kind, text string) Verdict {
	lines := NormalizeLines(text)
	if len(lines) == 0 {
		return invalid(StructuralLine, "", "empty input")
	}

	g := GrammarFor(kind)

	if !g.Start.MatchString(lines[0]) {
		return invalid(0, lines[0], fmt.Sprintf("invalid %s start: expected the diagram to begin with the %s declaration", kind, kind))
	}

	depth := 0
	for i, line := range lines[1:] {
		index := i + 1

		if g.BlockOpen != nil && g.BlockOpen.MatchString(line) {
			depth++
			continue
		}
		if g.BlockClose != nil && g.BlockClose.MatchString(line) {
			depth--
			if depth < 0 {
				return invalid(index, line, "unmatched 'end': no open subgraph block")
			}
			continue
		}

		if !matchesAny(g.Statements, line) {
			return invalid(index, line, fmt.Sprintf("invalid %s syntax: '%s'", kind, line))
		}
	}

	if depth != 0 {
		return invalid(StructuralLine, "", "unmatched subgraph block (missing 'end')")
	}

	return valid()
}

func matchesAny(statements []Statement, line string) bool {
	for _, s := range statements {
		if s.Matches(line) {
			return true
		}
	}
	return false
}

// NormalizeLines splits text into trimmed, non-blank lines. The returned
// indices are the line indices reported in verdicts.
func NormalizeLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
