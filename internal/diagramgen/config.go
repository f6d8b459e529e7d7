package diagramgen

import "time"

// Config holds generation and correction tuning knobs.
type Config struct {
	// MaxRetries is the correction attempt budget per run.
	MaxRetries int

	// OracleTimeout bounds each individual oracle call.
	OracleTimeout time.Duration

	// DraftMaxTokens caps the initial draft and edit responses.
	DraftMaxTokens int

	// RepairMaxTokens caps correction responses. Slightly larger than
	// the draft cap so a repair never truncates a diagram it inherited.
	RepairMaxTokens int

	// DraftTemperature is used for drafting and editing.
	DraftTemperature float64

	// RepairTemperature is used for corrections. Lower than draft
	// temperature so repairs stay close to the broken input.
	RepairTemperature float64
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries:        3,
		OracleTimeout:     45 * time.Second,
		DraftMaxTokens:    900,
		RepairMaxTokens:   1000,
		DraftTemperature:  0.2,
		RepairTemperature: 0.1,
	}
}
