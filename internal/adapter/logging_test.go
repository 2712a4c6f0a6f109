package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "podview.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "debug", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("catalog loaded", "count", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"catalog loaded"`)
	assert.Contains(t, string(data), `"count":3`)
}

func TestSetupLoggerRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "podview.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "error"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupLoggerEmptyFileDiscards(t *testing.T) {
	logger, closer, err := SetupLogger(&LoggingConfig{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel(" Error "))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("nonsense"))
}
