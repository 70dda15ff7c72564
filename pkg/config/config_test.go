package config

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelName)
	assert.Equal(t, "downloads", cfg.DownloadDir)
	assert.Equal(t, 200, cfg.MaxVideoSizeMB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VIDPLAN_MODEL", "gemini-2.5-pro")
	t.Setenv("VIDPLAN_DOWNLOAD_DIR", "/tmp/vids")
	t.Setenv("VIDPLAN_MAX_VIDEO_SIZE_MB", "50")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.ModelName)
	assert.Equal(t, "/tmp/vids", cfg.DownloadDir)
	assert.Equal(t, 50, cfg.MaxVideoSizeMB)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	// t.Setenv registers the restore; unset so the key is truly absent.
	t.Setenv("GEMINI_API_KEY", "placeholder")
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
