// Command vidplan analyzes a short-form video URL and produces a structured
// reproduction plan: scenes, generation prompts, and voiceover.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"vidplan/pkg/analyzer"
	"vidplan/pkg/config"
	"vidplan/pkg/downloader"
	"vidplan/pkg/format"
	"vidplan/pkg/humanizer"
	"vidplan/pkg/llm/gemini"
	"vidplan/pkg/logging"
	"vidplan/pkg/prompt"
	"vidplan/pkg/version"
)

var (
	flagMode      = flag.String("mode", "full", "Analysis mode: summary (condensed), highlights (50-70% duration), or full (comprehensive)")
	flagLang      = flag.String("lang", "en", "Target language for voiceover (e.g. en, vi, ja)")
	flagStyle     = flag.String("style", prompt.DefaultStyle, "Visual style for prompts. Use 'list' to see options")
	flagFormat    = flag.String("format", format.JSON, "Output format: json or markdown")
	flagOutput    = flag.String("output", "", "Output file path (default: stdout)")
	flagKeepVideo = flag.Bool("keep-video", false, "Keep downloaded video after analysis")
	flagModel     = flag.String("model", "", "Override Gemini model name")
	flagVerbose   = flag.Bool("v", false, "Verbose output")
	flagVersion   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: vidplan [flags] URL\n\nAnalyze a video URL and produce an AI reproduction plan.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagVersion {
		fmt.Println("vidplan " + version.Version)
		return
	}

	if *flagStyle == "list" {
		fmt.Fprintln(os.Stderr, "Available styles:\n"+prompt.ListStyles())
		return
	}
	if !prompt.HasStyle(*flagStyle) {
		fmt.Fprintf(os.Stderr, "Error: unknown style %q. Use -style list to see options.\n", *flagStyle)
		os.Exit(2)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logLevel := "warn"
	if *flagVerbose {
		logLevel = "debug"
	}
	logging.Setup(logging.ParseLevel(logLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, flag.Arg(0))
	stop()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nAborted.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, url string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if *flagModel != "" {
		cfg.ModelName = *flagModel
	}

	fmt.Fprintf(os.Stderr, "[1/4] Downloading video... (%s)\n", url)
	dl := downloader.New(cfg.DownloadDir, cfg.MaxVideoSizeMB, *flagVerbose)
	dlResult, err := dl.Download(ctx, url)
	if err != nil {
		return err
	}
	defer cleanupVideo(dlResult.VideoPath)

	slog.Debug("downloaded", "title", dlResult.Title, "duration", dlResult.DurationSeconds, "path", dlResult.VideoPath)

	backend, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
	if err != nil {
		return err
	}

	a := analyzer.New(backend, analyzer.Config{
		Model:     cfg.ModelName,
		CleanText: humanizer.Clean,
	})

	result, err := a.Analyze(ctx, analyzer.Request{
		VideoPath:      dlResult.VideoPath,
		Mode:           *flagMode,
		TargetLanguage: *flagLang,
		Style:          *flagStyle,
		Metadata: prompt.VideoMetadata{
			Title:           dlResult.Title,
			DurationSeconds: dlResult.DurationSeconds,
			Description:     dlResult.Description,
			Platform:        dlResult.Platform,
		},
	})
	if err != nil {
		return err
	}

	formatted, err := format.Render(result.Plan, *flagFormat, *flagStyle)
	if err != nil {
		return err
	}

	if *flagOutput != "" {
		if err := os.WriteFile(*flagOutput, []byte(formatted), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "\nDone! Plan saved to %s (%d scenes, %ds total)\n",
			*flagOutput, len(result.Plan.Scenes), result.Plan.TotalDurationSeconds)
	} else {
		fmt.Println(formatted)
		fmt.Fprintf(os.Stderr, "\nDone! %d scenes, %ds total\n",
			len(result.Plan.Scenes), result.Plan.TotalDurationSeconds)
	}

	fmt.Fprintln(os.Stderr, usageSummary(&result.Usage, cfg.ModelName))
	return nil
}

func usageSummary(u *analyzer.TokenUsage, model string) string {
	s := fmt.Sprintf("Tokens — prompt: %d, completion: %d, total: %d | Cost: $%.4f USD",
		u.PromptTokens, u.CompletionTokens, u.TotalTokens, u.CostUSD(model))
	if u.Attempts > 1 {
		s += fmt.Sprintf(" (%d attempts)", u.Attempts)
	}
	return s
}

// cleanupVideo removes the per-session download directory unless the user
// asked to keep the video.
func cleanupVideo(path string) {
	if *flagKeepVideo || path == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(path)); err != nil {
		slog.Debug("failed to remove download directory", "path", path, "error", err)
	}
}
