package diagramgen

import (
	"context"

	"github.com/abhisek/diagen/internal/mermaid"
)

// StubOracle serves deterministic offline diagrams. Used when no LLM
// provider is configured so the tool stays usable without an API key.
type StubOracle struct{}

func (StubOracle) Draft(_ context.Context, kind mermaid.Kind, _ string) (string, error) {
	return mermaid.Stub(kind), nil
}

// EditText returns the current diagram unchanged. The caller sees an
// Unchanged outcome rather than a silent no-op.
func (StubOracle) EditText(_ context.Context, _ mermaid.Kind, current, _ string, _ []string) (string, error) {
	return current, nil
}

func (StubOracle) Repair(_ context.Context, _ mermaid.Kind, text, _ string, _ []string, _ string) (string, error) {
	return text, nil
}
