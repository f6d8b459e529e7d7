package mermaid

import (
	"strings"
	"testing"
)

func TestValidate_EmptyInput(t *testing.T) {
	for _, kind := range Kinds() {
		for _, text := range []string{"", "   \n  ", "\n\n\t\n"} {
			v := Validate(kind, text)
			if v.Valid {
				t.Errorf("%s: expected invalid for %q", kind, text)
			}
			if v.LineIndex != StructuralLine {
				t.Errorf("%s: expected line index %d, got %d", kind, StructuralLine, v.LineIndex)
			}
			if v.Reason != "empty input" {
				t.Errorf("%s: unexpected reason %q", kind, v.Reason)
			}
		}
	}
}

func TestValidate_StubsAreValid(t *testing.T) {
	// Grammar self-consistency: every stub the package itself produces
	// must pass its own validator.
	for _, kind := range Kinds() {
		v := Validate(kind, Stub(kind))
		if !v.Valid {
			t.Errorf("%s stub rejected: line %d reason %q", kind, v.LineIndex, v.Reason)
		}
	}
}

func TestValidate_WrongStart(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
	}{
		{KindSequence, "flowchart TD\nA-->B"},
		{KindFlowchart, "sequenceDiagram\nA->>B: hi"},
		{KindState, "graph LR\nA-->B"},
		{KindClass, "erDiagram\nA ||--o{ B : has"},
		{KindER, "classDiagram\nclass A"},
		{KindGantt, "flowchart TD\nA-->B"},
	}

	for _, tt := range tests {
		v := Validate(tt.kind, tt.text)
		if v.Valid {
			t.Errorf("%s: expected start failure for %q", tt.kind, tt.text)
			continue
		}
		if v.LineIndex != 0 {
			t.Errorf("%s: expected line index 0, got %d", tt.kind, v.LineIndex)
		}
		if !strings.Contains(v.Reason, "invalid "+string(tt.kind)+" start") {
			t.Errorf("%s: unexpected reason %q", tt.kind, v.Reason)
		}
	}
}

func TestValidate_Flowchart(t *testing.T) {
	v := Validate(KindFlowchart, "flowchart TD\nA[Start]-->B(Process)\nB-->C[End]")
	if !v.Valid {
		t.Fatalf("expected valid, got line %d reason %q", v.LineIndex, v.Reason)
	}
}

func TestValidate_SequenceBadBody(t *testing.T) {
	v := Validate(KindSequence, "sequenceDiagram\nHello world")
	if v.Valid {
		t.Fatal("expected invalid")
	}
	if v.LineIndex != 1 {
		t.Errorf("expected line index 1, got %d", v.LineIndex)
	}
	if !strings.Contains(v.Reason, "invalid sequenceDiagram syntax") {
		t.Errorf("unexpected reason %q", v.Reason)
	}
	if v.Line != "Hello world" {
		t.Errorf("unexpected offending line %q", v.Line)
	}
}

func TestValidate_UnclosedSubgraph(t *testing.T) {
	v := Validate(KindFlowchart, "flowchart TD\nsubgraph X\nA-->B")
	if v.Valid {
		t.Fatal("expected invalid")
	}
	if v.LineIndex != StructuralLine {
		t.Errorf("expected structural line index, got %d", v.LineIndex)
	}
	if !strings.Contains(v.Reason, "unmatched") {
		t.Errorf("unexpected reason %q", v.Reason)
	}
}

func TestValidate_UnmatchedClose(t *testing.T) {
	v := Validate(KindFlowchart, "flowchart TD\nA-->B\nend")
	if v.Valid {
		t.Fatal("expected invalid")
	}
	if v.LineIndex != 2 {
		t.Errorf("expected line index 2, got %d", v.LineIndex)
	}
	if !strings.Contains(v.Reason, "unmatched 'end'") {
		t.Errorf("unexpected reason %q", v.Reason)
	}
}

func TestValidate_NestedSubgraphs(t *testing.T) {
	text := "flowchart TD\nsubgraph Outer\nsubgraph Inner\nA-->B\nend\nB-->C\nend"
	v := Validate(KindFlowchart, text)
	if !v.Valid {
		t.Fatalf("expected valid, got line %d reason %q", v.LineIndex, v.Reason)
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	// Defects on lines 1 and 3; the verdict must point at line 1.
	v := Validate(KindSequence, "sequenceDiagram\n!!! not a statement\nA->>B: ok\n??? also bad")
	if v.Valid {
		t.Fatal("expected invalid")
	}
	if v.LineIndex != 1 {
		t.Errorf("expected first failure at line 1, got %d", v.LineIndex)
	}
}

func TestValidate_BlankLinesSkipped(t *testing.T) {
	v := Validate(KindSequence, "\n  sequenceDiagram  \n\n  A->>B: hello  \n\n")
	if !v.Valid {
		t.Fatalf("expected valid, got line %d reason %q", v.LineIndex, v.Reason)
	}
}

func TestValidate_SequenceStatements(t *testing.T) {
	lines := []string{
		"sequenceDiagram",
		`participant A as "Auth Service"`,
		"actor U as User",
		"U->>A: login",
		"A-->>U: token",
		"Note over A,U: handshake done",
		"activate A",
		"deactivate A",
	}
	v := Validate(KindSequence, strings.Join(lines, "\n"))
	if !v.Valid {
		t.Fatalf("expected valid, got line %d reason %q", v.LineIndex, v.Reason)
	}
}

func TestValidate_StateStatements(t *testing.T) {
	text := "stateDiagram-v2\n[*] --> Idle\nIdle --> Busy: work arrives\nBusy: processing\nstate Error\nBusy --> [*]"
	v := Validate(KindState, text)
	if !v.Valid {
		t.Fatalf("expected valid, got line %d reason %q", v.LineIndex, v.Reason)
	}
}

func TestValidate_GanttBadBody(t *testing.T) {
	v := Validate(KindGantt, "gantt\nno colon here at all")
	if v.Valid {
		t.Fatal("expected invalid")
	}
	if v.LineIndex != 1 {
		t.Errorf("expected line index 1, got %d", v.LineIndex)
	}
}
