package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"vidplan/pkg/llm"
	"vidplan/pkg/model"
	"vidplan/pkg/prompt"
)

// Fixed decoding parameters for every attempt.
const (
	generationTemperature = 0.7
	generationMaxTokens   = 65536
)

// generateWithRetry drives the repair loop: issue the request, record usage,
// classify the outcome, and retry up to maxRetries times. A truncated
// unparseable response triggers a condensed replacement request; a
// non-truncated parse failure resends the request unchanged and relies on
// sampling variance. A successful parse wins immediately, even when the
// backend flagged the response as truncated.
func (a *Analyzer) generateWithRetry(ctx context.Context, req llm.Request, usage *TokenUsage) (*model.ReproductionPlan, error) {
	basePrompt := req.Prompt
	cur := req

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			slog.Debug("retrying generation", "attempt", attempt)
		}

		resp, err := a.backend.GenerateStructured(ctx, a.model, cur)
		usage.Record(resp)
		if err != nil {
			return nil, fmt.Errorf("generation call failed: %w", err)
		}

		truncated := resp.Truncated()
		slog.Debug("generation response",
			"length", len(resp.Text),
			"finish_reason", resp.FinishReason,
			"prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens)

		plan, parseErr := parsePlan(resp.Text)
		if parseErr == nil {
			if truncated {
				// Accepted anyway: a truncated response that still
				// validates may be missing trailing scenes.
				slog.Warn("accepting truncated but parseable response", "finish_reason", resp.FinishReason)
			}
			return plan, nil
		}
		lastErr = parseErr

		if attempt < a.maxRetries {
			if truncated {
				slog.Info("output truncated, retrying with condensed request")
				condensed := cur
				condensed.Prompt = basePrompt + prompt.CondensedConstraint
				cur = condensed
			} else {
				slog.Info("parse error, retrying", "error", parseErr)
			}
		}
	}

	return nil, &ExhaustedError{Attempts: a.maxRetries + 1, LastErr: lastErr}
}

// parsePlan unmarshals the raw response text and checks the plan invariants.
// Validation failures are parse failures as far as the repair loop cares.
func parsePlan(raw string) (*model.ReproductionPlan, error) {
	var plan model.ReproductionPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}
