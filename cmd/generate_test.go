package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/mermaid"
)

func TestExhaustionError_NilWhenAllValidated(t *testing.T) {
	outcomes := map[mermaid.Kind]diagramgen.Outcome{
		mermaid.KindSequence:  {Status: diagramgen.StatusUnchanged},
		mermaid.KindFlowchart: {Status: diagramgen.StatusCorrected, Attempts: 2},
	}
	if err := exhaustionError(outcomes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExhaustionError_FailedOutcomeExitsNonZero(t *testing.T) {
	outcomes := map[mermaid.Kind]diagramgen.Outcome{
		mermaid.KindSequence: {Status: diagramgen.StatusUnchanged},
		mermaid.KindFlowchart: {
			Status:     diagramgen.StatusFailed,
			Attempts:   3,
			LastReason: "invalid edge syntax",
		},
	}
	err := exhaustionError(outcomes)
	if err == nil {
		t.Fatal("expected an error for an exhausted outcome")
	}
	if !strings.Contains(err.Error(), "flowchart") {
		t.Errorf("error should name the failed kind, got %q", err)
	}
	if !strings.Contains(err.Error(), "invalid edge syntax") {
		t.Errorf("error should carry the last reason, got %q", err)
	}
}

func TestExhaustionError_DeterministicOrder(t *testing.T) {
	outcomes := map[mermaid.Kind]diagramgen.Outcome{
		mermaid.KindFlowchart: {Status: diagramgen.StatusFailed, LastReason: "b"},
		mermaid.KindSequence:  {Status: diagramgen.StatusFailed, LastReason: "a"},
	}
	err := exhaustionError(outcomes)
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if strings.Index(msg, "sequenceDiagram") > strings.Index(msg, "flowchart") {
		t.Errorf("kinds not in registry order: %q", msg)
	}
}

func TestGenerationConfig_HonorsTimeoutEnv(t *testing.T) {
	t.Setenv("DIAGEN_LLM_TIMEOUT", "90s")
	cfg := generationConfig()
	if cfg.OracleTimeout != 90*time.Second {
		t.Errorf("OracleTimeout = %v, want 90s", cfg.OracleTimeout)
	}
}

func TestGenerationConfig_DefaultTimeout(t *testing.T) {
	t.Setenv("DIAGEN_LLM_TIMEOUT", "")
	cfg := generationConfig()
	if cfg.OracleTimeout != diagramgen.DefaultConfig().OracleTimeout {
		t.Errorf("OracleTimeout = %v, want default", cfg.OracleTimeout)
	}
}
