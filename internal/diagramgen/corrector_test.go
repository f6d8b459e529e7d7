package diagramgen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/diagen/internal/mermaid"
)

const (
	validSequence   = "sequenceDiagram\nA->>B: hello"
	invalidSequence = "sequenceDiagram\nHello world"
)

// repairStep scripts one Repair response.
type repairStep struct {
	text string
	err  error
}

// scriptOracle returns canned responses and records calls.
type scriptOracle struct {
	draftText string
	draftErr  error
	editText  string
	editErr   error
	repairs   []repairStep

	draftCalls  int
	editCalls   int
	repairCalls int

	lastReason string
	lastHints  []string
	lastIntent string
}

func (o *scriptOracle) Draft(ctx context.Context, kind mermaid.Kind, prompt string) (string, error) {
	o.draftCalls++
	return o.draftText, o.draftErr
}

func (o *scriptOracle) EditText(ctx context.Context, kind mermaid.Kind, current, instruction string, contextLines []string) (string, error) {
	o.editCalls++
	return o.editText, o.editErr
}

func (o *scriptOracle) Repair(ctx context.Context, kind mermaid.Kind, text, reason string, hints []string, intent string) (string, error) {
	o.lastReason = reason
	o.lastHints = hints
	o.lastIntent = intent

	if o.repairCalls >= len(o.repairs) {
		o.repairCalls++
		return "", &ErrEmptyResponse{Op: "repair"}
	}
	step := o.repairs[o.repairCalls]
	o.repairCalls++
	return step.text, step.err
}

func TestCorrect_ValidInputSkipsOracle(t *testing.T) {
	oracle := &scriptOracle{}
	c := NewCorrector(oracle, DefaultConfig())

	outcome, err := c.Correct(context.Background(), mermaid.KindSequence, validSequence, "intent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusUnchanged {
		t.Fatalf("status = %v, want unchanged", outcome.Status)
	}
	if outcome.Text != validSequence {
		t.Errorf("text = %q, want input unchanged", outcome.Text)
	}
	if outcome.Attempts != 0 {
		t.Errorf("attempts = %d, want 0", outcome.Attempts)
	}
	if oracle.repairCalls != 0 {
		t.Errorf("oracle invoked %d times for valid input, want 0", oracle.repairCalls)
	}
}

func TestCorrect_SecondAttemptSucceeds(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{
			{text: "sequenceDiagram\nstill broken !!"},
			{text: validSequence},
		},
	}
	c := NewCorrector(oracle, DefaultConfig())

	outcome, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "intent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusCorrected {
		t.Fatalf("status = %v, want corrected", outcome.Status)
	}
	if outcome.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", outcome.Attempts)
	}
	if outcome.Text != validSequence {
		t.Errorf("text = %q, want the repaired diagram", outcome.Text)
	}
}

func TestCorrect_ExhaustsBudget(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{
			{text: invalidSequence},
			{text: invalidSequence},
			{text: invalidSequence},
		},
	}
	c := NewCorrector(oracle, DefaultConfig())

	outcome, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "intent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", outcome.Status)
	}
	if outcome.Attempts != 3 {
		t.Errorf("attempts = %d, want exactly 3", outcome.Attempts)
	}
	if oracle.repairCalls != 3 {
		t.Errorf("oracle invoked %d times, want exactly 3", oracle.repairCalls)
	}
	if outcome.LastReason == "" {
		t.Error("expected a non-empty last reason")
	}
}

func TestCorrect_OracleTimeoutEndsRunEarly(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{
			{err: &ErrOracleTimeout{Op: "repair", Err: context.DeadlineExceeded}},
		},
	}
	c := NewCorrector(oracle, DefaultConfig())

	_, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "intent")
	if err == nil {
		t.Fatal("expected an oracle fault")
	}
	var timeout *ErrOracleTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrOracleTimeout, got %T: %v", err, err)
	}
	var aborted *ErrRepairAborted
	if !errors.As(err, &aborted) {
		t.Fatalf("expected ErrRepairAborted, got %T: %v", err, err)
	}
	if aborted.Attempts != 0 {
		t.Errorf("aborted attempts = %d, want 0", aborted.Attempts)
	}
	// The aborted call does not count; only one oracle call happened.
	if oracle.repairCalls != 1 {
		t.Errorf("oracle invoked %d times, want 1", oracle.repairCalls)
	}
}

func TestCorrect_MidRunFaultNotFoldedIntoFailed(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{
			{text: invalidSequence},
			{err: &ErrOracleTimeout{Op: "repair", Err: context.DeadlineExceeded}},
		},
	}
	c := NewCorrector(oracle, DefaultConfig())

	outcome, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "intent")
	var timeout *ErrOracleTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrOracleTimeout, got %T: %v", err, err)
	}
	if outcome.Status == StatusFailed {
		t.Error("oracle fault must not be reported as exhaustion")
	}
	var aborted *ErrRepairAborted
	if !errors.As(err, &aborted) {
		t.Fatalf("expected ErrRepairAborted, got %T: %v", err, err)
	}
	// One repair completed before the second call faulted.
	if aborted.Attempts != 1 {
		t.Errorf("aborted attempts = %d, want 1", aborted.Attempts)
	}
}

func TestCorrect_PassesDiagnosticAndHintsToOracle(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{{text: validSequence}},
	}
	c := NewCorrector(oracle, DefaultConfig())

	_, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "a login flow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oracle.lastReason == "" {
		t.Error("expected a diagnostic reason to reach the oracle")
	}
	if len(oracle.lastHints) == 0 {
		t.Error("expected advisor hints to reach the oracle")
	}
	if oracle.lastIntent != "a login flow" {
		t.Errorf("intent = %q, want original prompt", oracle.lastIntent)
	}
}

func TestCorrect_SanitizesFencedRepairs(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{{text: "```mermaid\n" + validSequence + "\n```"}},
	}
	c := NewCorrector(oracle, DefaultConfig())

	outcome, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "intent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusCorrected {
		t.Fatalf("status = %v, want corrected (fences stripped before validation)", outcome.Status)
	}
	if outcome.Text != validSequence {
		t.Errorf("text = %q, want sanitized diagram", outcome.Text)
	}
}

func TestCorrect_SmallBudget(t *testing.T) {
	oracle := &scriptOracle{
		repairs: []repairStep{{text: invalidSequence}},
	}
	cfg := DefaultConfig()
	cfg.MaxRetries = 1
	c := NewCorrector(oracle, cfg)

	outcome, err := c.Correct(context.Background(), mermaid.KindSequence, invalidSequence, "intent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", outcome.Status)
	}
	if outcome.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", outcome.Attempts)
	}
}
