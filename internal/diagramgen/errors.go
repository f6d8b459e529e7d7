package diagramgen

import "fmt"

// ErrOracleTimeout indicates the oracle did not respond within its deadline.
// It is an infrastructure fault, distinct from correction exhaustion.
type ErrOracleTimeout struct {
	Op  string
	Err error
}

func (e *ErrOracleTimeout) Error() string {
	return fmt.Sprintf("oracle timeout during %s: %v", e.Op, e.Err)
}

func (e *ErrOracleTimeout) Unwrap() error { return e.Err }

// ErrRepairAborted reports an oracle fault that ended a correction run
// early. Attempts counts the repair calls that completed before the
// fault; the aborted call itself is not counted.
type ErrRepairAborted struct {
	Attempts int
	Err      error
}

func (e *ErrRepairAborted) Error() string {
	return fmt.Sprintf("correction aborted after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ErrRepairAborted) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the oracle returned no usable diagram text.
type ErrEmptyResponse struct {
	Op string
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("oracle returned empty diagram text during %s", e.Op)
}
