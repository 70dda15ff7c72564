// Package analyzer orchestrates one video analysis session: upload the video
// to the generation backend, wait for remote processing, run the structured
// generation with its repair loop, post-process the plan, and clean up.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"vidplan/pkg/llm"
	"vidplan/pkg/model"
	"vidplan/pkg/prompt"
	"vidplan/pkg/schema"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultPollTimeout  = 300 * time.Second
	defaultMaxRetries   = 2
)

// Config tunes one Analyzer. Zero values fall back to the defaults above.
type Config struct {
	Model        string
	PollInterval time.Duration
	PollTimeout  time.Duration
	MaxRetries   int

	// CleanText post-processes each scene's voiceover text. Optional.
	CleanText func(string) string

	// Progress receives the human-readable step narration. Defaults to stderr.
	Progress io.Writer
}

// Analyzer runs analysis sessions against a generation backend.
// Sessions are independent; the Analyzer holds no cross-session state.
type Analyzer struct {
	backend      llm.Backend
	model        string
	pollInterval time.Duration
	pollTimeout  time.Duration
	maxRetries   int
	cleanText    func(string) string
	progress     io.Writer
}

// New creates an Analyzer for the given backend.
func New(backend llm.Backend, cfg Config) *Analyzer {
	a := &Analyzer{
		backend:      backend,
		model:        cfg.Model,
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
		maxRetries:   cfg.MaxRetries,
		cleanText:    cfg.CleanText,
		progress:     cfg.Progress,
	}
	if a.pollInterval <= 0 {
		a.pollInterval = defaultPollInterval
	}
	if a.pollTimeout <= 0 {
		a.pollTimeout = defaultPollTimeout
	}
	if a.maxRetries <= 0 {
		a.maxRetries = defaultMaxRetries
	}
	if a.progress == nil {
		a.progress = os.Stderr
	}
	return a
}

// Request describes one analysis session.
type Request struct {
	VideoPath      string
	Mode           string
	TargetLanguage string
	Style          string
	Metadata       prompt.VideoMetadata
}

// Result is a completed analysis: the plan plus the usage accumulated
// across however many generation attempts it took.
type Result struct {
	Plan  *model.ReproductionPlan
	Usage TokenUsage
}

// Analyze runs the full session. Steps are strictly sequential: upload,
// readiness poll, prompt build, schema normalization, generation with
// repair, voiceover cleanup, best-effort remote deletion.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	var usage TokenUsage

	fmt.Fprintln(a.progress, "[2/4] Uploading to Gemini...")
	file, err := a.backend.UploadFile(ctx, req.VideoPath)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	if err := a.waitForFileActive(ctx, file); err != nil {
		return nil, err
	}
	slog.Debug("file ready", "name", file.Name)

	systemPrompt := prompt.System(req.Mode, req.TargetLanguage, req.Style)
	userPrompt := prompt.User(req.Mode, req.TargetLanguage, req.Metadata, req.Style)

	planSchema := schema.Normalize(schema.Plan())

	fmt.Fprintln(a.progress, "[3/4] Analyzing video...")
	plan, err := a.generateWithRetry(ctx, llm.Request{
		File:              file,
		Prompt:            userPrompt,
		SystemInstruction: systemPrompt,
		Schema:            planSchema,
		Temperature:       generationTemperature,
		MaxOutputTokens:   generationMaxTokens,
	}, &usage)
	if err != nil {
		a.deleteFile(ctx, file)
		return nil, err
	}

	fmt.Fprintln(a.progress, "[4/4] Generating reproduction plan...")
	if a.cleanText != nil {
		for i := range plan.Scenes {
			plan.Scenes[i].VoiceoverText = a.cleanText(plan.Scenes[i].VoiceoverText)
		}
	}

	a.deleteFile(ctx, file)

	return &Result{Plan: plan, Usage: usage}, nil
}

// deleteFile is best-effort cleanup of the remote file. Failures are logged
// and swallowed; they must never fail the session.
func (a *Analyzer) deleteFile(ctx context.Context, file llm.FileRef) {
	if err := a.backend.DeleteFile(ctx, file.Name); err != nil {
		slog.Debug("failed to delete remote file", "name", file.Name, "error", err)
	}
}
