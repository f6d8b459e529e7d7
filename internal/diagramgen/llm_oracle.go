package diagramgen

import (
	"context"
	"errors"

	"github.com/abhisek/diagen/internal/llm"
	"github.com/abhisek/diagen/internal/mermaid"
)

// LLMOracle implements Oracle on top of an llm.Provider.
type LLMOracle struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMOracle creates an oracle backed by the given provider.
func NewLLMOracle(provider llm.Provider, cfg Config) *LLMOracle {
	return &LLMOracle{provider: provider, cfg: cfg}
}

func (o *LLMOracle) Draft(ctx context.Context, kind mermaid.Kind, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, "diagram-gen")
	return o.complete(ctx, "draft", draftSystemPrompt, buildDraftPrompt(kind, prompt),
		o.cfg.DraftMaxTokens, o.cfg.DraftTemperature)
}

func (o *LLMOracle) EditText(ctx context.Context, kind mermaid.Kind, current, instruction string, contextLines []string) (string, error) {
	ctx = llm.WithPurpose(ctx, "diagram-edit")
	return o.complete(ctx, "edit", editSystemPrompt, buildEditPrompt(kind, current, instruction, contextLines),
		o.cfg.DraftMaxTokens, o.cfg.DraftTemperature)
}

func (o *LLMOracle) Repair(ctx context.Context, kind mermaid.Kind, text, reason string, hints []string, intent string) (string, error) {
	ctx = llm.WithPurpose(ctx, "diagram-repair")
	return o.complete(ctx, "repair", repairSystemPrompt, buildRepairPrompt(kind, text, reason, hints, intent),
		o.cfg.RepairMaxTokens, o.cfg.RepairTemperature)
}

// complete runs one bounded provider call and sanitizes the result.
func (o *LLMOracle) complete(ctx context.Context, op, system, user string, maxTokens int, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.OracleTimeout)
	defer cancel()

	resp, err := o.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &ErrOracleTimeout{Op: op, Err: err}
		}
		return "", err
	}

	text := mermaid.Sanitize(resp.Text())
	if text == "" {
		return "", &ErrEmptyResponse{Op: op}
	}
	return text, nil
}
