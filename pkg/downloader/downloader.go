// Package downloader acquires a source video via the yt-dlp CLI and returns
// the local file plus its platform metadata.
package downloader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrDownload marks a failed video acquisition.
var ErrDownload = errors.New("download failed")

// Result is the downloaded file plus the metadata yt-dlp extracted.
type Result struct {
	VideoPath       string
	Title           string
	DurationSeconds int
	Description     string
	Platform        string
	OriginalURL     string
}

// Format preference: 480p MP4 keeps file size small for fast upload and
// remote processing, still enough quality for scene analysis. Falls back
// through higher quality if needed.
const formatString = "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/" +
	"bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/" +
	"best[height<=480][ext=mp4]/" +
	"best[ext=mp4]/" +
	"best"

// infoJSON is the subset of the yt-dlp info dump we care about.
type infoJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Duration    float64 `json:"duration"`
	Description string  `json:"description"`
}

// Downloader wraps the yt-dlp binary.
type Downloader struct {
	outputDir string
	maxSizeMB int
	verbose   bool
}

// New creates a Downloader writing into outputDir. Files larger than
// maxSizeMB are rejected after download; zero disables the check.
func New(outputDir string, maxSizeMB int, verbose bool) *Downloader {
	return &Downloader{outputDir: outputDir, maxSizeMB: maxSizeMB, verbose: verbose}
}

// Download fetches the video as MP4 into a fresh per-session directory and
// returns the local path and metadata.
func (d *Downloader) Download(ctx context.Context, url string) (*Result, error) {
	// Per-session subdirectory so concurrent runs and re-runs of the same
	// video never collide.
	sessionDir := filepath.Join(d.outputDir, uuid.NewString())
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output dir: %v", ErrDownload, err)
	}

	args := []string{
		"--format", formatString,
		"--merge-output-format", "mp4",
		"--output", filepath.Join(sessionDir, "%(id)s.%(ext)s"),
		"--print-json",
		"--no-warnings",
	}
	if !d.verbose {
		args = append(args, "--quiet")
	}
	args = append(args, url)

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: yt-dlp: %v", ErrDownload, err)
	}

	var info infoJSON
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("%w: parsing yt-dlp output: %v", ErrDownload, err)
	}

	videoPath, err := findDownloadedFile(sessionDir, info.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	if fi, statErr := os.Stat(videoPath); statErr == nil {
		sizeMB := float64(fi.Size()) / (1024 * 1024)
		slog.Debug("download complete", "path", videoPath, "size_mb", sizeMB)
		if d.maxSizeMB > 0 && sizeMB > float64(d.maxSizeMB) {
			return nil, fmt.Errorf("%w: video is %.1f MB, limit is %d MB", ErrDownload, sizeMB, d.maxSizeMB)
		}
	}

	return &Result{
		VideoPath:       videoPath,
		Title:           firstNonEmpty(info.Title, "Untitled"),
		DurationSeconds: int(info.Duration),
		Description:     info.Description,
		Platform:        DetectPlatform(url),
		OriginalURL:     url,
	}, nil
}

// DetectPlatform tags the source platform from the URL.
func DetectPlatform(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "tiktok.com"):
		return "tiktok"
	case strings.Contains(lower, "youtube.com"), strings.Contains(lower, "youtu.be"):
		return "youtube"
	default:
		return "unknown"
	}
}

// findDownloadedFile locates the downloaded MP4 by video ID, handling
// yt-dlp merge outputs that may land under a different extension.
func findDownloadedFile(dir, videoID string) (string, error) {
	direct := filepath.Join(dir, videoID+".mp4")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	for _, pattern := range []string{videoID + ".*mp4", videoID + ".*"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err == nil && len(matches) > 0 {
			return matches[0], nil
		}
	}

	return "", fmt.Errorf("downloaded file not found for video ID %q", videoID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
