package telemetry

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerFileSink(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	logFile := filepath.Join(t.TempDir(), "mulbench.log")
	InitLogger(true, logFile)

	slog.Debug("harness step", "algorithm", "fft", "digits", 64)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "harness step")
	assert.Contains(t, string(data), `"algorithm":"fft"`)
}

func TestInitLoggerLevelGate(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	logFile := filepath.Join(t.TempDir(), "mulbench.log")
	InitLogger(false, logFile)

	slog.Debug("should be filtered")
	slog.Info("should appear")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should be filtered")
	assert.Contains(t, string(data), "should appear")
}
