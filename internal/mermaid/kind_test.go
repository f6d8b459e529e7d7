package mermaid

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"sequential", KindSequence},
		{"sequence", KindSequence},
		{"SEQUENCE", KindSequence},
		{"sequenceDiagram", KindSequence},
		{"component", KindFlowchart},
		{"flowchart", KindFlowchart},
		{"graph", KindFlowchart},
		{"state", KindState},
		{"stateDiagram-v2", KindState},
		{"class", KindClass},
		{"er", KindER},
		{"erDiagram", KindER},
		{"gantt", KindGantt},
		{"timeline", KindGantt},
		{"  gantt  ", KindGantt},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, in := range []string{"", "pie", "mindmap", "uml"} {
		if _, err := ParseKind(in); err == nil {
			t.Errorf("ParseKind(%q): expected error", in)
		}
	}
}

func TestGrammarFor_Total(t *testing.T) {
	// Every kind must have a grammar with a start matcher and at least
	// one statement shape.
	for _, kind := range Kinds() {
		g := GrammarFor(kind)
		if g.Start == nil {
			t.Errorf("%s: nil start matcher", kind)
		}
		if len(g.Statements) == 0 {
			t.Errorf("%s: no statement shapes", kind)
		}
	}
}

func TestMustKind_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustKind("pie")
}
