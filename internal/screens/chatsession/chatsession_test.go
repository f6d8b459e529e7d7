package chatsession

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/diagen/internal/chat"
	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/mermaid"
)

func newStartedScreen() *ChatScreen {
	started := &chat.StartResult{
		SessionID: "0f8fad5b-d9cb-469f-a165-70867728950e",
		Diagrams: map[mermaid.Kind]diagramgen.Outcome{
			mermaid.KindFlowchart: {Status: diagramgen.StatusUnchanged, Text: mermaid.Stub(mermaid.KindFlowchart)},
			mermaid.KindSequence:  {Status: diagramgen.StatusCorrected, Attempts: 1, Text: mermaid.Stub(mermaid.KindSequence)},
		},
	}
	return New(nil, nil, started)
}

func TestNewOrdersTabsCanonically(t *testing.T) {
	s := newStartedScreen()

	if len(s.kinds) != 2 {
		t.Fatalf("kinds = %d, want 2", len(s.kinds))
	}
	// sequenceDiagram comes before flowchart in the registry order
	if s.kinds[0] != mermaid.KindSequence || s.kinds[1] != mermaid.KindFlowchart {
		t.Errorf("kinds = %v", s.kinds)
	}
	for _, kind := range s.kinds {
		if s.versions[kind] != 1 {
			t.Errorf("version[%s] = %d, want 1", kind, s.versions[kind])
		}
	}
}

func TestSessionTagAbbreviates(t *testing.T) {
	s := newStartedScreen()
	if got := s.SessionTag(); got != "0f8fad5b" {
		t.Errorf("SessionTag() = %q", got)
	}
}

func TestApplyEditBumpsVersions(t *testing.T) {
	s := newStartedScreen()
	s.busy = true

	s.Update(editDoneMsg{Result: &chat.MessageResult{
		Response: "Updated 2 diagram(s) based on your request.",
		Updated: map[mermaid.Kind]diagramgen.Outcome{
			mermaid.KindSequence:  {Status: diagramgen.StatusUnchanged, Text: "sequenceDiagram\n  A->>B: ping"},
			mermaid.KindFlowchart: {Status: diagramgen.StatusUnchanged, Text: "flowchart TD\n  A --> B"},
		},
		All: map[mermaid.Kind]string{
			mermaid.KindSequence:  "sequenceDiagram\n  A->>B: ping",
			mermaid.KindFlowchart: "flowchart TD\n  A --> B",
		},
	}})

	if s.busy {
		t.Error("busy should clear after edit completes")
	}
	if s.versions[mermaid.KindSequence] != 2 || s.versions[mermaid.KindFlowchart] != 2 {
		t.Errorf("versions = %v, want both 2", s.versions)
	}
	if s.statusMsg != "Updated 2 diagram(s) based on your request." {
		t.Errorf("statusMsg = %q", s.statusMsg)
	}
	if !strings.Contains(s.diagrams[mermaid.KindSequence], "ping") {
		t.Errorf("diagram not replaced: %q", s.diagrams[mermaid.KindSequence])
	}
}

func TestApplyEditReportsFaultedKinds(t *testing.T) {
	s := newStartedScreen()
	s.busy = true
	before := s.diagrams[mermaid.KindSequence]

	s.Update(editDoneMsg{Result: &chat.MessageResult{
		Response: "Updated 1 diagram(s) based on your request.",
		Updated: map[mermaid.Kind]diagramgen.Outcome{
			mermaid.KindFlowchart: {Status: diagramgen.StatusUnchanged, Text: "flowchart TD\n  A --> B"},
		},
		Faults: map[mermaid.Kind]error{
			mermaid.KindSequence: errors.New("boom"),
		},
		All: map[mermaid.Kind]string{
			mermaid.KindSequence:  before,
			mermaid.KindFlowchart: "flowchart TD\n  A --> B",
		},
	}})

	if s.diagrams[mermaid.KindSequence] != before {
		t.Error("faulted diagram should keep its previous source")
	}
	if s.versions[mermaid.KindSequence] != 1 {
		t.Errorf("faulted version = %d, want 1", s.versions[mermaid.KindSequence])
	}
	if !strings.Contains(s.errMsg, "sequenceDiagram") {
		t.Errorf("errMsg should name the faulted kind, got %q", s.errMsg)
	}
}

func TestTabCyclingWraps(t *testing.T) {
	s := newStartedScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.activeTab != 1 {
		t.Errorf("activeTab = %d, want 1", s.activeTab)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.activeTab != 0 {
		t.Errorf("activeTab = %d, want 0 after wrap", s.activeTab)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.activeTab != 1 {
		t.Errorf("activeTab = %d, want 1 after left wrap", s.activeTab)
	}
}

func TestRatingModeToggle(t *testing.T) {
	s := newStartedScreen()

	s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if !s.rating {
		t.Fatal("ctrl+r should enter rating mode")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.rating {
		t.Error("esc should leave rating mode")
	}
}
