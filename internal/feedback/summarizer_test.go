package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/diagen/internal/llm"
)

func TestSummarize_SchemaConstrainedCall(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	ctx := context.Background()
	_, _, err := svc.Submit(ctx, Submission{
		User: "dana", Kind: "flowchart", Rating: 2,
		Comment: "arrows point backwards",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"detail_level":"detailed","themes":["edge direction"],"suggestions":["double-check arrow orientation"]}`),
	})
	summarizer := NewSummarizer(provider, svc)

	guidance, err := summarizer.Summarize(ctx, "dana")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if guidance.DetailLevel != "detailed" {
		t.Errorf("DetailLevel = %q", guidance.DetailLevel)
	}
	if len(guidance.Themes) != 1 || guidance.Themes[0] != "edge direction" {
		t.Errorf("Themes = %v", guidance.Themes)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Schema == nil || req.Schema.Name != "feedback-guidance" {
		t.Fatalf("request schema = %+v, want feedback-guidance", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	body := req.Messages[0].Content
	if !strings.Contains(body, "arrows point backwards") {
		t.Errorf("prompt should carry the feedback comment, got %q", body)
	}
}

func TestSummarize_NoHistory(t *testing.T) {
	svc := NewService(newFakeRepo())
	summarizer := NewSummarizer(llm.NewMockProvider(), svc)

	_, err := summarizer.Summarize(context.Background(), "nobody")
	if !errors.Is(err, ErrNoFeedback) {
		t.Fatalf("err = %v, want ErrNoFeedback", err)
	}
}

func TestSummarize_ProviderFaultPropagates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	ctx := context.Background()
	if _, _, err := svc.Submit(ctx, Submission{User: "dana", Kind: "gantt", Rating: 5}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	boom := errors.New("provider down")
	summarizer := NewSummarizer(llm.NewMockProvider(llm.MockResponse{Err: boom}), svc)

	_, err := summarizer.Summarize(ctx, "dana")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped provider fault", err)
	}
}
