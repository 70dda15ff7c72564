// Package config loads the application configuration from the environment,
// with an optional .env overlay for local development.
package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the read-only settings loaded once at startup.
type Config struct {
	GeminiAPIKey   string `env:"GEMINI_API_KEY, required"`
	ModelName      string `env:"VIDPLAN_MODEL, default=gemini-2.5-flash"`
	DownloadDir    string `env:"VIDPLAN_DOWNLOAD_DIR, default=downloads"`
	MaxVideoSizeMB int    `env:"VIDPLAN_MAX_VIDEO_SIZE_MB, default=200"`
}

// Load reads the configuration from the process environment. A .env file in
// the working directory is applied first if present; missing files are fine.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
