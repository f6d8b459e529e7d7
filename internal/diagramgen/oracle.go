package diagramgen

import (
	"context"

	"github.com/abhisek/diagen/internal/mermaid"
)

// Oracle drafts, edits and repairs Mermaid diagram text.
// Implementations must return raw diagram source with no code fencing;
// callers sanitize the result again before validation as a safety net.
type Oracle interface {
	// Draft produces an initial diagram for a natural language prompt.
	Draft(ctx context.Context, kind mermaid.Kind, prompt string) (string, error)

	// EditText applies a modification instruction to an existing diagram.
	// contextLines carries recent conversation turns for disambiguation.
	EditText(ctx context.Context, kind mermaid.Kind, current, instruction string, contextLines []string) (string, error)

	// Repair fixes a diagram that failed validation. The reason is the
	// validator's diagnostic, hints are the advisor's remediation
	// suggestions and intent is the original prompt or edit instruction.
	Repair(ctx context.Context, kind mermaid.Kind, text, reason string, hints []string, intent string) (string, error)
}
