package mermaid

import (
	"strings"
	"testing"
)

func adviseText(v Verdict, kind Kind) string {
	return strings.Join(Advise(v, kind), "\n")
}

func TestAdvise_ValidVerdict(t *testing.T) {
	if hints := Advise(Verdict{Valid: true}, KindFlowchart); hints != nil {
		t.Fatalf("expected no hints for valid verdict, got %v", hints)
	}
}

func TestAdvise_StartError(t *testing.T) {
	v := Validate(KindSequence, "flowchart TD\nA-->B")
	text := adviseText(v, KindSequence)
	if !strings.Contains(text, "sequenceDiagram") {
		t.Errorf("expected declaration hint, got:\n%s", text)
	}
	if !strings.Contains(text, "case-sensitive") {
		t.Errorf("expected case-sensitivity hint, got:\n%s", text)
	}
}

func TestAdvise_SubgraphError(t *testing.T) {
	v := Validate(KindFlowchart, "flowchart TD\nsubgraph X\nA-->B")
	text := adviseText(v, KindFlowchart)
	if !strings.Contains(text, "matching 'end'") {
		t.Errorf("expected subgraph hint, got:\n%s", text)
	}
}

func TestAdvise_MultipleCategories(t *testing.T) {
	// A reason naming both the arrow and the flowchart keyword collects
	// hints from both categories.
	v := Verdict{Valid: false, LineIndex: 1, Reason: "invalid flowchart syntax: 'A --> missing arrow target'"}
	text := adviseText(v, KindFlowchart)
	if !strings.Contains(text, "Edge shapes") {
		t.Errorf("expected flowchart hints, got:\n%s", text)
	}
	if !strings.Contains(text, "A-->B") {
		t.Errorf("expected arrow hints, got:\n%s", text)
	}
}

func TestAdvise_EmptyInput(t *testing.T) {
	v := Validate(KindClass, "")
	text := adviseText(v, KindClass)
	if !strings.Contains(text, "empty") {
		t.Errorf("expected empty-input hint, got:\n%s", text)
	}
}

func TestAdvise_GenericFallback(t *testing.T) {
	v := Verdict{Valid: false, LineIndex: StructuralLine, Reason: "something unusual happened"}
	hints := Advise(v, KindGantt)
	if len(hints) != 4 {
		t.Fatalf("expected the 4-point generic checklist, got %d hints", len(hints))
	}
}
