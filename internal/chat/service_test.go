package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/diagen/internal/diagramgen"
	"github.com/abhisek/diagen/internal/mermaid"
	"github.com/abhisek/diagen/internal/store"
)

func openTestService(t *testing.T, oracle diagramgen.Oracle) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	gen := diagramgen.NewService(oracle, diagramgen.DefaultConfig(), nil)
	return NewService(s.SessionRepo(), gen), s
}

// editOracle records edit calls and answers from a per-kind script.
type editOracle struct {
	edits    map[mermaid.Kind]string
	editErrs map[mermaid.Kind]error

	lastContext []string
	editCalls   int
}

func (o *editOracle) Draft(_ context.Context, kind mermaid.Kind, _ string) (string, error) {
	return mermaid.Stub(kind), nil
}

func (o *editOracle) EditText(_ context.Context, kind mermaid.Kind, current, _ string, contextLines []string) (string, error) {
	o.editCalls++
	o.lastContext = contextLines
	if err, ok := o.editErrs[kind]; ok {
		return "", err
	}
	if text, ok := o.edits[kind]; ok {
		return text, nil
	}
	return current, nil
}

func (o *editOracle) Repair(_ context.Context, _ mermaid.Kind, text, _ string, _ []string, _ string) (string, error) {
	return text, nil
}

func TestStartCreatesSessionWithDiagrams(t *testing.T) {
	svc, _ := openTestService(t, &editOracle{})
	ctx := context.Background()

	kinds := []mermaid.Kind{mermaid.KindSequence, mermaid.KindFlowchart}
	result, err := svc.Start(ctx, "order processing pipeline", kinds)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.SessionID == "" {
		t.Fatal("expected a session ID")
	}
	if len(result.Diagrams) != 2 {
		t.Fatalf("got %d diagrams, want 2", len(result.Diagrams))
	}

	history, err := svc.History(ctx, result.SessionID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history.Session.OriginalPrompt != "order processing pipeline" {
		t.Errorf("prompt = %q", history.Session.OriginalPrompt)
	}
	if len(history.Messages) != 1 || history.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v, want one system note", history.Messages)
	}
	if !strings.Contains(history.Messages[0].Content, "sequenceDiagram") {
		t.Errorf("system note = %q, want kind names listed", history.Messages[0].Content)
	}
	if len(history.Diagrams) != 2 {
		t.Errorf("stored %d diagrams, want 2", len(history.Diagrams))
	}
	for _, d := range history.Diagrams {
		if d.Version != 1 {
			t.Errorf("%s version = %d, want 1", d.Kind, d.Version)
		}
	}
}

func TestStartRequiresKinds(t *testing.T) {
	svc, _ := openTestService(t, &editOracle{})
	if _, err := svc.Start(context.Background(), "p", nil); err == nil {
		t.Fatal("expected error for empty kind list")
	}
}

func TestSendMessageEditsAllDiagramsByDefault(t *testing.T) {
	oracle := &editOracle{edits: map[mermaid.Kind]string{
		mermaid.KindSequence:  "sequenceDiagram\nA->>B: updated",
		mermaid.KindFlowchart: "flowchart TD\nA[Start] --> B[Updated]",
	}}
	svc, _ := openTestService(t, oracle)
	ctx := context.Background()

	started, err := svc.Start(ctx, "p", []mermaid.Kind{mermaid.KindSequence, mermaid.KindFlowchart})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.SendMessage(ctx, started.SessionID, "rename B", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(result.Updated) != 2 {
		t.Fatalf("updated %d diagrams, want 2", len(result.Updated))
	}
	if len(result.Faults) != 0 {
		t.Errorf("faults = %v, want none", result.Faults)
	}
	if result.Response != "Updated 2 diagram(s) based on your request." {
		t.Errorf("response = %q", result.Response)
	}
	if result.All[mermaid.KindSequence] != "sequenceDiagram\nA->>B: updated" {
		t.Errorf("sequence source = %q", result.All[mermaid.KindSequence])
	}

	history, err := svc.History(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	for _, d := range history.Diagrams {
		if d.Version != 2 {
			t.Errorf("%s version = %d, want 2 after edit", d.Kind, d.Version)
		}
	}
	// system note, user message, assistant summary
	if len(history.Messages) != 3 {
		t.Errorf("got %d messages, want 3", len(history.Messages))
	}
}

func TestSendMessageTargetsSubset(t *testing.T) {
	oracle := &editOracle{edits: map[mermaid.Kind]string{
		mermaid.KindFlowchart: "flowchart TD\nA[Start] --> B[Updated]",
	}}
	svc, _ := openTestService(t, oracle)
	ctx := context.Background()

	started, err := svc.Start(ctx, "p", []mermaid.Kind{mermaid.KindSequence, mermaid.KindFlowchart})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.SendMessage(ctx, started.SessionID, "tweak the flow", []mermaid.Kind{mermaid.KindFlowchart})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(result.Updated) != 1 {
		t.Fatalf("updated %d diagrams, want 1", len(result.Updated))
	}
	if _, ok := result.Updated[mermaid.KindFlowchart]; !ok {
		t.Error("flowchart should be the updated kind")
	}
	if oracle.editCalls != 1 {
		t.Errorf("oracle edited %d times, want 1", oracle.editCalls)
	}
	if result.All[mermaid.KindSequence] != mermaid.Stub(mermaid.KindSequence) {
		t.Error("untargeted diagram must keep its source")
	}
}

func TestSendMessageFaultKeepsPreviousDiagram(t *testing.T) {
	oracle := &editOracle{editErrs: map[mermaid.Kind]error{
		mermaid.KindSequence: errors.New("oracle unavailable"),
	}}
	svc, _ := openTestService(t, oracle)
	ctx := context.Background()

	started, err := svc.Start(ctx, "p", []mermaid.Kind{mermaid.KindSequence})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.SendMessage(ctx, started.SessionID, "rework it", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(result.Updated) != 0 {
		t.Errorf("updated = %v, want none", result.Updated)
	}
	if result.Faults[mermaid.KindSequence] == nil {
		t.Fatal("expected the fault surfaced per kind")
	}
	if result.All[mermaid.KindSequence] != mermaid.Stub(mermaid.KindSequence) {
		t.Error("faulted kind must keep its previous source")
	}

	history, err := svc.History(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	for _, d := range history.Diagrams {
		if d.Version != 1 {
			t.Errorf("version = %d, want unchanged on fault", d.Version)
		}
	}
}

func TestSendMessagePassesRecentContext(t *testing.T) {
	oracle := &editOracle{}
	svc, _ := openTestService(t, oracle)
	ctx := context.Background()

	started, err := svc.Start(ctx, "p", []mermaid.Kind{mermaid.KindSequence})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := svc.SendMessage(ctx, started.SessionID, msg, nil); err != nil {
			t.Fatalf("send %q: %v", msg, err)
		}
	}

	// By the third message the history exceeds the window, so the oracle
	// sees exactly the five most recent turns, ending with "third".
	if len(oracle.lastContext) != contextWindow {
		t.Fatalf("context has %d lines, want %d", len(oracle.lastContext), contextWindow)
	}
	if oracle.lastContext[len(oracle.lastContext)-1] != "third" {
		t.Errorf("last context line = %q, want the newest message", oracle.lastContext[len(oracle.lastContext)-1])
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	svc, _ := openTestService(t, &editOracle{})
	if _, err := svc.SendMessage(context.Background(), "no-such-session", "hi", nil); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestDeleteSession(t *testing.T) {
	svc, _ := openTestService(t, &editOracle{})
	ctx := context.Background()

	started, err := svc.Start(ctx, "p", []mermaid.Kind{mermaid.KindSequence})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Delete(ctx, started.SessionID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.History(ctx, started.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound after delete", err)
	}
	if err := svc.Delete(ctx, started.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second delete err = %v, want ErrSessionNotFound", err)
	}
}
