package analyzer

import "vidplan/pkg/llm"

// Gemini pricing per 1M tokens, USD.
type rates struct {
	input  float64
	output float64
}

var pricing = map[string]rates{
	"gemini-2.5-flash": {input: 0.30, output: 2.50},
	"gemini-2.5-pro":   {input: 1.25, output: 10.00},
	"gemini-2.0-flash": {input: 0.10, output: 0.40},
}

// defaultRates is the flash fallback for unrecognized model names.
var defaultRates = rates{input: 0.30, output: 2.50}

// TokenUsage accumulates token counts and attempts across every generation
// call of one analysis session. Totals only ever grow; attempts increments
// exactly once per issued request regardless of outcome.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Attempts         int
}

// Record adds one response's counters to the running totals.
// A nil response still counts as an attempt.
func (u *TokenUsage) Record(resp *llm.Response) {
	u.Attempts++
	if resp == nil {
		return
	}
	u.PromptTokens += resp.Usage.PromptTokens
	u.CompletionTokens += resp.Usage.CompletionTokens
	u.TotalTokens += resp.Usage.TotalTokens
}

// CostUSD estimates the session cost for the given model name,
// falling back to flash rates when the model is unrecognized.
func (u *TokenUsage) CostUSD(model string) float64 {
	r, ok := pricing[model]
	if !ok {
		r = defaultRates
	}
	inputCost := float64(u.PromptTokens) / 1_000_000 * r.input
	outputCost := float64(u.CompletionTokens) / 1_000_000 * r.output
	return inputCost + outputCost
}
