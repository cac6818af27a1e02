package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SongChart", cfg.App.Name)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "./songs.json", cfg.Storage.Path)
	assert.True(t, cfg.Storage.AtomicWrite)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, time.Minute, cfg.Security.RateLimitWindow)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("SONGS_FILE", "/tmp/charts.json")
	t.Setenv("SONGS_ATOMIC_WRITE", "false")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "/tmp/charts.json", cfg.Storage.Path)
	assert.False(t, cfg.Storage.AtomicWrite)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 30*time.Second, cfg.Security.RateLimitWindow)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"negative rate limit", "RATE_LIMIT_REQUESTS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateConfig_FileOutputNeedsFilename(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 8000},
		Storage: StorageConfig{Path: "songs.json"},
		Logger:  LoggerConfig{Format: "json", Output: "file"},
	}
	assert.Error(t, validateConfig(cfg))

	cfg.Logger.Filename = "app.log"
	assert.NoError(t, validateConfig(cfg))

	cfg.Storage.Path = "  "
	assert.Error(t, validateConfig(cfg))
}
