package diagramgen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/diagen/internal/mermaid"
)

type stubEnhancer struct {
	result string
	err    error
	calls  int
}

func (e *stubEnhancer) Enhance(ctx context.Context, base string, kind mermaid.Kind, user string) (string, error) {
	e.calls++
	if e.err != nil {
		return "", e.err
	}
	return e.result, nil
}

func TestGenerate_ValidDraftPassesThrough(t *testing.T) {
	oracle := &scriptOracle{draftText: validSequence}
	svc := NewService(oracle, DefaultConfig(), nil)

	outcome, err := svc.Generate(context.Background(), mermaid.KindSequence, "a login flow", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusUnchanged {
		t.Fatalf("status = %v, want unchanged", outcome.Status)
	}
	if oracle.draftCalls != 1 {
		t.Errorf("draft calls = %d, want 1", oracle.draftCalls)
	}
	if oracle.repairCalls != 0 {
		t.Errorf("repair calls = %d, want 0", oracle.repairCalls)
	}
}

func TestGenerate_InvalidDraftIsCorrected(t *testing.T) {
	oracle := &scriptOracle{
		draftText: invalidSequence,
		repairs:   []repairStep{{text: validSequence}},
	}
	svc := NewService(oracle, DefaultConfig(), nil)

	outcome, err := svc.Generate(context.Background(), mermaid.KindSequence, "a login flow", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusCorrected {
		t.Fatalf("status = %v, want corrected", outcome.Status)
	}
	if outcome.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", outcome.Attempts)
	}
}

func TestGenerate_DraftFaultPropagates(t *testing.T) {
	oracle := &scriptOracle{
		draftErr: &ErrOracleTimeout{Op: "draft", Err: context.DeadlineExceeded},
	}
	svc := NewService(oracle, DefaultConfig(), nil)

	_, err := svc.Generate(context.Background(), mermaid.KindSequence, "a login flow", "")
	var timeout *ErrOracleTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrOracleTimeout, got %T: %v", err, err)
	}
}

func TestGenerate_EnhancerFailureIsNonFatal(t *testing.T) {
	oracle := &scriptOracle{draftText: validSequence}
	enhancer := &stubEnhancer{err: errors.New("feedback store down")}
	svc := NewService(oracle, DefaultConfig(), enhancer)

	outcome, err := svc.Generate(context.Background(), mermaid.KindSequence, "a login flow", "alice")
	if err != nil {
		t.Fatalf("enhancement failure must not surface: %v", err)
	}
	if outcome.Status != StatusUnchanged {
		t.Fatalf("status = %v, want unchanged", outcome.Status)
	}
	if enhancer.calls != 1 {
		t.Errorf("enhancer calls = %d, want 1", enhancer.calls)
	}
}

func TestGenerate_EnhancerSkippedWithoutUser(t *testing.T) {
	oracle := &scriptOracle{draftText: validSequence}
	enhancer := &stubEnhancer{result: "enhanced"}
	svc := NewService(oracle, DefaultConfig(), enhancer)

	if _, err := svc.Generate(context.Background(), mermaid.KindSequence, "a login flow", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enhancer.calls != 0 {
		t.Errorf("enhancer calls = %d, want 0 for anonymous user", enhancer.calls)
	}
}

func TestEdit_CorrectsResult(t *testing.T) {
	oracle := &scriptOracle{
		editText: invalidSequence,
		repairs:  []repairStep{{text: validSequence}},
	}
	svc := NewService(oracle, DefaultConfig(), nil)

	outcome, err := svc.Edit(context.Background(), mermaid.KindSequence,
		validSequence, "add an error branch", []string{"earlier turn"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusCorrected {
		t.Fatalf("status = %v, want corrected", outcome.Status)
	}
	if oracle.editCalls != 1 {
		t.Errorf("edit calls = %d, want 1", oracle.editCalls)
	}
}

func TestGenerateAll_FansOutPerKind(t *testing.T) {
	oracle := &perKindOracle{
		drafts: map[mermaid.Kind]string{
			mermaid.KindSequence:  validSequence,
			mermaid.KindFlowchart: "flowchart TD\nA[Start]-->B(Process)",
		},
	}
	svc := NewService(oracle, DefaultConfig(), nil)

	kinds := []mermaid.Kind{mermaid.KindSequence, mermaid.KindFlowchart}
	results, err := svc.GenerateAll(context.Background(), kinds, "a login flow", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, kind := range kinds {
		if results[kind].Status != StatusUnchanged {
			t.Errorf("%s: status = %v, want unchanged", kind, results[kind].Status)
		}
	}
}

func TestGenerateAll_FaultAbortsRun(t *testing.T) {
	oracle := &perKindOracle{
		drafts: map[mermaid.Kind]string{
			mermaid.KindSequence: validSequence,
		},
		faults: map[mermaid.Kind]error{
			mermaid.KindFlowchart: &ErrOracleTimeout{Op: "draft", Err: context.DeadlineExceeded},
		},
	}
	svc := NewService(oracle, DefaultConfig(), nil)

	_, err := svc.GenerateAll(context.Background(),
		[]mermaid.Kind{mermaid.KindSequence, mermaid.KindFlowchart}, "a login flow", "")
	var timeout *ErrOracleTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrOracleTimeout, got %T: %v", err, err)
	}
}

// perKindOracle serves different canned drafts per kind for fan-out tests.
type perKindOracle struct {
	drafts map[mermaid.Kind]string
	faults map[mermaid.Kind]error
}

func (o *perKindOracle) Draft(ctx context.Context, kind mermaid.Kind, prompt string) (string, error) {
	if err, ok := o.faults[kind]; ok {
		return "", err
	}
	return o.drafts[kind], nil
}

func (o *perKindOracle) EditText(ctx context.Context, kind mermaid.Kind, current, instruction string, contextLines []string) (string, error) {
	return o.drafts[kind], nil
}

func (o *perKindOracle) Repair(ctx context.Context, kind mermaid.Kind, text, reason string, hints []string, intent string) (string, error) {
	return o.drafts[kind], nil
}
