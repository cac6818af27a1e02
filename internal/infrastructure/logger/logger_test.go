package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songchart/api/internal/infrastructure/config"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNew_Console(t *testing.T) {
	l, err := New(config.LoggerConfig{Level: "debug", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	l.WithComponent("test").Debugw("hello", "k", "v")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New(config.LoggerConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		Filename: path,
		MaxSize:  1,
	})
	require.NoError(t, err)

	l.LogStoreWrite("create", "songs.json", 1, errors.New("disk full"))
	l.LogHTTPRequest("GET", "/api/v1/songs", "rid", "127.0.0.1", 200, 1.5, nil)
	_ = l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Songs file write failed")
	assert.Contains(t, string(data), `"request_id":"rid"`)
}
