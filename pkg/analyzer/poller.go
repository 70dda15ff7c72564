package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vidplan/pkg/llm"
)

// waitForFileActive blocks until the uploaded file reaches the active state.
// The remote service exposes no push mechanism, so this is a plain polling
// loop: check, sleep, repeat. Any state other than ACTIVE or FAILED counts
// as still pending.
func (a *Analyzer) waitForFileActive(ctx context.Context, file llm.FileRef) error {
	deadline := time.Now().Add(a.pollTimeout)

	for time.Now().Before(deadline) {
		state, err := a.backend.FileState(ctx, file.Name)
		if err != nil {
			return fmt.Errorf("polling file state: %w", err)
		}

		switch state {
		case llm.FileStateActive:
			return nil
		case llm.FileStateFailed:
			return fmt.Errorf("%w: %s", ErrProcessingFailed, file.Name)
		}

		slog.Debug("file not ready, waiting", "name", file.Name, "state", state)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(a.pollInterval):
		}
	}

	return fmt.Errorf("%w after %s: %s", ErrProcessingTimeout, a.pollTimeout, file.Name)
}
