package analyzer

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidplan/pkg/llm"
	"vidplan/pkg/prompt"
)

func testAnalyzer(b llm.Backend) *Analyzer {
	return New(b, Config{Model: "gemini-2.5-flash", Progress: io.Discard})
}

func baseRequest(file llm.FileRef) llm.Request {
	return llm.Request{
		File:              file,
		Prompt:            "Analyze the attached video.",
		SystemInstruction: "You are an analyst.",
		Schema:            map[string]any{"type": "object"},
		Temperature:       generationTemperature,
		MaxOutputTokens:   generationMaxTokens,
	}
}

func TestGenerateSuccessShortCircuits(t *testing.T) {
	fake := &fakeBackend{responses: []*llm.Response{okResponse("STOP")}}
	a := testAnalyzer(fake)

	var usage TokenUsage
	plan, err := a.generateWithRetry(context.Background(), baseRequest(llm.FileRef{Name: "files/abc"}), &usage)

	require.NoError(t, err)
	assert.Len(t, fake.requests, 1)
	assert.Equal(t, 1, usage.Attempts)
	assert.Equal(t, "Morning routine, but honest", plan.Title)
}

func TestGenerateAcceptsTruncatedButValid(t *testing.T) {
	// A truncated response that still validates is accepted on attempt 1.
	fake := &fakeBackend{responses: []*llm.Response{okResponse("MAX_TOKENS")}}
	a := testAnalyzer(fake)

	var usage TokenUsage
	plan, err := a.generateWithRetry(context.Background(), baseRequest(llm.FileRef{}), &usage)

	require.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Equal(t, 1, usage.Attempts)
}

func TestGenerateCondensesOnTruncation(t *testing.T) {
	file := llm.FileRef{Name: "files/abc", URI: "gs://x/abc", MIMEType: "video/mp4"}
	fake := &fakeBackend{responses: []*llm.Response{truncatedGarbage(), okResponse("STOP")}}
	a := testAnalyzer(fake)

	var usage TokenUsage
	_, err := a.generateWithRetry(context.Background(), baseRequest(file), &usage)
	require.NoError(t, err)

	require.Len(t, fake.requests, 2)
	second := fake.requests[1]
	assert.Contains(t, second.Prompt, prompt.CondensedConstraint)
	assert.Equal(t, file, second.File, "condensed request must reference the same file")
	assert.Equal(t, 2, usage.Attempts)
}

func TestGenerateRetriesSameRequestWhenNotTruncated(t *testing.T) {
	fake := &fakeBackend{responses: []*llm.Response{malformed(), okResponse("STOP")}}
	a := testAnalyzer(fake)

	var usage TokenUsage
	_, err := a.generateWithRetry(context.Background(), baseRequest(llm.FileRef{Name: "files/abc"}), &usage)
	require.NoError(t, err)

	require.Len(t, fake.requests, 2)
	assert.Equal(t, fake.requests[0], fake.requests[1], "non-truncated retry must resend the request unchanged")
}

func TestGenerateExhaustsAfterMaxRetries(t *testing.T) {
	fake := &fakeBackend{responses: []*llm.Response{truncatedGarbage(), truncatedGarbage(), truncatedGarbage()}}
	a := testAnalyzer(fake)

	var usage TokenUsage
	_, err := a.generateWithRetry(context.Background(), baseRequest(llm.FileRef{}), &usage)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Error(t, exhausted.LastErr)
	assert.Len(t, fake.requests, 3, "at most maxRetries+1 requests")
	assert.Equal(t, 3, usage.Attempts)
}

func TestGenerateCondensationNeverUndone(t *testing.T) {
	// Truncated, then malformed (not truncated), then success: the third
	// request must still carry the condensation constraint.
	fake := &fakeBackend{responses: []*llm.Response{truncatedGarbage(), malformed(), okResponse("STOP")}}
	a := testAnalyzer(fake)

	var usage TokenUsage
	_, err := a.generateWithRetry(context.Background(), baseRequest(llm.FileRef{}), &usage)
	require.NoError(t, err)

	require.Len(t, fake.requests, 3)
	assert.Contains(t, fake.requests[1].Prompt, prompt.CondensedConstraint)
	assert.Contains(t, fake.requests[2].Prompt, prompt.CondensedConstraint)
}

func TestGenerateBackendErrorIsFatal(t *testing.T) {
	fake := &fakeBackend{genErr: assert.AnError}
	a := testAnalyzer(fake)

	var usage TokenUsage
	_, err := a.generateWithRetry(context.Background(), baseRequest(llm.FileRef{}), &usage)

	require.Error(t, err)
	assert.Len(t, fake.requests, 1, "transport errors are not retried by the repair loop")
	assert.Equal(t, 1, usage.Attempts, "the issued attempt still counts")
}
