package diagramgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/diagen/internal/llm"
	"github.com/abhisek/diagen/internal/mermaid"
)

func TestLLMOracle_DraftSanitizesFences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```mermaid\n" + validSequence + "\n```"),
	})
	oracle := NewLLMOracle(mock, DefaultConfig())

	text, err := oracle.Draft(context.Background(), mermaid.KindSequence, "a login flow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != validSequence {
		t.Errorf("text = %q, want fences stripped", text)
	}
}

func TestLLMOracle_EmptyResponseIsFault(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```\n```"),
	})
	oracle := NewLLMOracle(mock, DefaultConfig())

	_, err := oracle.Draft(context.Background(), mermaid.KindSequence, "a login flow")
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %T: %v", err, err)
	}
}

func TestLLMOracle_TimeoutMapsToOracleFault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OracleTimeout = 10 * time.Millisecond
	oracle := NewLLMOracle(blockingProvider{}, cfg)

	_, err := oracle.Draft(context.Background(), mermaid.KindSequence, "a login flow")
	var timeout *ErrOracleTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrOracleTimeout, got %T: %v", err, err)
	}
}

func TestLLMOracle_DraftPromptCarriesKindAndIntent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validSequence),
	})
	oracle := NewLLMOracle(mock, DefaultConfig())

	if _, err := oracle.Draft(context.Background(), mermaid.KindSequence, "order fulfilment flow"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	user := req.Messages[0].Content
	if !strings.Contains(user, "sequenceDiagram") {
		t.Error("draft prompt should name the diagram kind")
	}
	if !strings.Contains(user, "order fulfilment flow") {
		t.Error("draft prompt should carry the domain prompt")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}

func TestLLMOracle_EditPromptTrimsContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validSequence),
	})
	oracle := NewLLMOracle(mock, DefaultConfig())

	lines := []string{"one", "two", "three", "four", "five"}
	if _, err := oracle.EditText(context.Background(), mermaid.KindSequence,
		validSequence, "rename actor", lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := mock.Calls[0].Messages[0].Content
	if strings.Contains(user, "one") || strings.Contains(user, "two") {
		t.Error("edit prompt should only carry the trailing context window")
	}
	if !strings.Contains(user, "five") {
		t.Error("edit prompt should carry the most recent context line")
	}
	if !strings.Contains(user, "rename actor") {
		t.Error("edit prompt should carry the instruction")
	}
}

func TestLLMOracle_RepairPromptCarriesDiagnostic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validSequence),
	})
	oracle := NewLLMOracle(mock, DefaultConfig())

	hints := []string{"Check arrow syntax: 'A->>B: message'"}
	if _, err := oracle.Repair(context.Background(), mermaid.KindSequence,
		invalidSequence, "invalid sequenceDiagram syntax: 'Hello world'", hints, "a login flow"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := mock.Calls[0].Messages[0].Content
	if !strings.Contains(user, "invalid sequenceDiagram syntax") {
		t.Error("repair prompt should carry the validation error")
	}
	if !strings.Contains(user, "Check arrow syntax") {
		t.Error("repair prompt should carry the advisor hints")
	}
	if !strings.Contains(user, "a login flow") {
		t.Error("repair prompt should carry the original intent")
	}
}

// blockingProvider never responds until the context is cancelled.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }
