package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/diagen/internal/llm"
)

const (
	summarizerTimeout   = 30 * time.Second
	summarizerMaxTokens = 600
	summaryHistoryLimit = 25
)

// ErrNoFeedback indicates the user has no feedback to summarize.
var ErrNoFeedback = fmt.Errorf("no feedback recorded for user")

// Guidance is the structured summary the model derives from a user's
// feedback history.
type Guidance struct {
	DetailLevel string   `json:"detail_level"`
	Themes      []string `json:"themes"`
	Suggestions []string `json:"suggestions"`
}

// guidanceSchema constrains the summarizer's response shape.
var guidanceSchema = &llm.Schema{
	Name:        "feedback-guidance",
	Description: "Structured guidance derived from diagram feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detail_level": map[string]any{
				"type": "string",
				"enum": []any{"minimal", "standard", "detailed"},
			},
			"themes": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": 5,
			},
			"suggestions": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": 5,
			},
		},
		"required":             []any{"detail_level", "themes", "suggestions"},
		"additionalProperties": false,
	},
}

const summarizerSystemPrompt = `You analyze user feedback about generated Mermaid diagrams.
Summarize recurring themes and concrete improvement suggestions.
Respond with JSON only.`

// Summarizer condenses a user's feedback history into structured guidance
// with a schema-constrained model call.
type Summarizer struct {
	provider llm.Provider
	svc      *Service
}

// NewSummarizer creates a Summarizer over the given provider and service.
func NewSummarizer(provider llm.Provider, svc *Service) *Summarizer {
	return &Summarizer{provider: provider, svc: svc}
}

// Summarize derives guidance from the user's recent feedback. Returns
// ErrNoFeedback when the user has no history.
func (s *Summarizer) Summarize(ctx context.Context, user string) (*Guidance, error) {
	items, err := s.svc.History(ctx, user, summaryHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load feedback history: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoFeedback
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Feedback for user %s, newest first:\n", user)
	for _, item := range items {
		fmt.Fprintf(&b, "- kind=%s rating=%d", item.Kind, item.Rating)
		if item.Comment != "" {
			fmt.Fprintf(&b, " comment=%q", item.Comment)
		}
		if item.ImprovementSuggestions != "" {
			fmt.Fprintf(&b, " suggestion=%q", item.ImprovementSuggestions)
		}
		b.WriteString("\n")
	}

	ctx = llm.WithPurpose(ctx, "feedback-summary")
	ctx, cancel := context.WithTimeout(ctx, summarizerTimeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    summarizerSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    guidanceSchema,
		MaxTokens: summarizerMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize feedback: %w", err)
	}

	var guidance Guidance
	if err := json.Unmarshal(resp.Content, &guidance); err != nil {
		return nil, fmt.Errorf("decode guidance: %w", err)
	}
	return &guidance, nil
}
