package analyzer

import (
	"errors"
	"fmt"
)

// Fatal error kinds surfaced to the caller. All of them abort the session;
// none are retried by the repair loop.
var (
	// ErrProcessingFailed means the remote file entered a failed state
	// during readiness polling.
	ErrProcessingFailed = errors.New("file processing failed")

	// ErrProcessingTimeout means readiness polling exceeded its deadline.
	ErrProcessingTimeout = errors.New("file processing timed out")
)

// ExhaustedError is returned when the repair loop ran out of attempts
// without producing a parseable plan. It carries the last parse error
// for diagnostics.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed to parse response after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error { return e.LastErr }
