package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "3001", cfg.HttpPort)
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GeminiBaseURL)
	assert.Equal(t, "gemini-2.5-flash-preview-05-20", cfg.GeminiModel)
	assert.Equal(t, 60*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 50*1024*1024, cfg.MaxFileSize)
	assert.False(t, cfg.IsProd())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HttpPort)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.True(t, cfg.IsProd())
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadConfigRejectsNonPositiveFileSize(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MAX_FILE_SIZE", "0")

	_, err := LoadConfig()
	require.Error(t, err)
}
