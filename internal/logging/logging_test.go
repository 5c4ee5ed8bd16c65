package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/admissions/internal/config"
)

func TestNewWritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "admissions.log")
	logger, err := New(config.LogConfig{Path: path, Level: "info"}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("dataset loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug line should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "dataset loaded", entry["msg"])
	require.NotEmpty(t, entry["session"])
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admissions.log")
	logger, err := New(config.LogConfig{Path: path, Level: "error"}, true)
	require.NoError(t, err)
	logger.Debug("sort changed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "sort changed")
}

func TestEmptyPathIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{}, false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, false)
	require.Error(t, err)
}
