package diagramgen

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/diagen/internal/mermaid"
)

// Enhancer decorates a prompt or edit instruction before generation,
// typically with accumulated user feedback. Optional collaborator.
type Enhancer interface {
	Enhance(ctx context.Context, base string, kind mermaid.Kind, user string) (string, error)
}

// Service is the generation and edit orchestrator. It obtains an initial
// draft from the oracle, then hands it to the corrector. Every result
// passes through validation at least once.
type Service struct {
	oracle    Oracle
	corrector *Corrector
	enhancer  Enhancer // may be nil
}

// NewService creates the orchestrator. enhancer may be nil, in which case
// prompts are used as given.
func NewService(oracle Oracle, cfg Config, enhancer Enhancer) *Service {
	return &Service{
		oracle:    oracle,
		corrector: NewCorrector(oracle, cfg),
		enhancer:  enhancer,
	}
}

// Generate drafts a diagram for the prompt and corrects it until valid or
// exhausted. user identifies whose feedback to apply; empty skips enhancement.
func (s *Service) Generate(ctx context.Context, kind mermaid.Kind, prompt, user string) (Outcome, error) {
	p := s.enhance(ctx, prompt, kind, user)

	draft, err := s.oracle.Draft(ctx, kind, p)
	if err != nil {
		return Outcome{}, err
	}

	return s.corrector.Correct(ctx, kind, draft, p)
}

// Edit applies an instruction to an existing diagram and corrects the
// result. contextLines carries recent conversation turns.
func (s *Service) Edit(ctx context.Context, kind mermaid.Kind, current, instruction string, contextLines []string, user string) (Outcome, error) {
	inst := s.enhance(ctx, instruction, kind, user)

	edited, err := s.oracle.EditText(ctx, kind, current, inst, contextLines)
	if err != nil {
		return Outcome{}, err
	}

	return s.corrector.Correct(ctx, kind, edited, inst)
}

// GenerateAll fans out one generate-and-correct flow per kind. Kinds run
// concurrently; attempts within a kind stay sequential. The first oracle
// fault cancels the remaining flows.
func (s *Service) GenerateAll(ctx context.Context, kinds []mermaid.Kind, prompt, user string) (map[mermaid.Kind]Outcome, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[mermaid.Kind]Outcome, len(kinds))

	for _, kind := range kinds {
		g.Go(func() error {
			outcome, err := s.Generate(ctx, kind, prompt, user)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			mu.Lock()
			results[kind] = outcome
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// enhance runs the optional prompt enhancer. Enhancement failure is
// logged and the base text is used unchanged.
func (s *Service) enhance(ctx context.Context, base string, kind mermaid.Kind, user string) string {
	if s.enhancer == nil || user == "" {
		return base
	}
	enhanced, err := s.enhancer.Enhance(ctx, base, kind, user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: prompt enhancement failed: %v\n", err)
		return base
	}
	return enhanced
}
