package diagramgen

import (
	"context"

	"github.com/abhisek/diagen/internal/mermaid"
)

// Status classifies the result of a correction run.
type Status int

const (
	// StatusUnchanged means the input was already valid. No oracle calls.
	StatusUnchanged Status = iota

	// StatusCorrected means the diagram became valid after one or more repairs.
	StatusCorrected

	// StatusFailed means the attempt budget ran out without producing
	// valid text. The outcome carries the last diagnostic reason.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusCorrected:
		return "corrected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one correction run.
type Outcome struct {
	Status Status

	// Text is the final diagram text. For StatusFailed it is the last
	// (still invalid) candidate, kept so callers can show what was tried.
	Text string

	// Attempts is the number of oracle repair calls that completed.
	Attempts int

	// LastReason is the final validation diagnostic. Set for StatusFailed.
	LastReason string
}

// Corrector drives the bounded validate-repair-revalidate loop.
type Corrector struct {
	oracle     Oracle
	maxRetries int
}

// NewCorrector creates a corrector with the budget from cfg.
func NewCorrector(oracle Oracle, cfg Config) *Corrector {
	return &Corrector{oracle: oracle, maxRetries: cfg.MaxRetries}
}

// Correct validates text and repeatedly asks the oracle to repair it until
// it validates or the attempt budget is exhausted. Exhaustion is a normal
// outcome, not an error. An oracle fault mid-run ends the run early with an
// ErrRepairAborted carrying the attempts completed so far; the aborted call
// does not count as an attempt.
func (c *Corrector) Correct(ctx context.Context, kind mermaid.Kind, text, intent string) (Outcome, error) {
	current := mermaid.Sanitize(text)
	attempts := 0

	for {
		verdict := mermaid.Validate(kind, current)
		if verdict.Valid {
			if attempts == 0 {
				return Outcome{Status: StatusUnchanged, Text: current}, nil
			}
			return Outcome{Status: StatusCorrected, Text: current, Attempts: attempts}, nil
		}

		if attempts == c.maxRetries {
			return Outcome{
				Status:     StatusFailed,
				Text:       current,
				Attempts:   attempts,
				LastReason: verdict.Reason,
			}, nil
		}

		hints := mermaid.Advise(verdict, kind)
		repaired, err := c.oracle.Repair(ctx, kind, current, verdict.Reason, hints, intent)
		if err != nil {
			return Outcome{}, &ErrRepairAborted{Attempts: attempts, Err: err}
		}

		attempts++
		// Advance to the repaired text even if it regresses. Each round
		// then reports the newest diagnostic rather than re-fighting the
		// original defect.
		current = mermaid.Sanitize(repaired)
	}
}
