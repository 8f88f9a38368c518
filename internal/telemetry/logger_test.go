package telemetry

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerDebugLevel(t *testing.T) {
	require.NoError(t, InitLogger(true, ""))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	require.NoError(t, InitLogger(false, ""))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestInitLoggerFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perftool.log")
	require.NoError(t, InitLogger(false, path))

	slog.Info("sample recorded", "bench", "sort_vec")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sample recorded")
	assert.Contains(t, string(data), "sort_vec")
}

func TestInitLoggerBadFile(t *testing.T) {
	// A directory cannot be opened as a log file.
	assert.Error(t, InitLogger(false, t.TempDir()))
}
