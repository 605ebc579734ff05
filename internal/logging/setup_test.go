package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoard/internal/config"
)

func restoreDefault(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })
}

func TestSetup_ConsoleOnly(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger, closer, err := Setup(config.LogConfig{Level: "warn"}, &buf, false)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "model", "llama3:8b")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "model=llama3:8b")
	assert.Same(t, logger, log.Default())
}

func TestSetup_VerboseForcesDebug(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger, _, err := Setup(config.LogConfig{Level: "error"}, &buf, true)
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestSetup_EnvOverridesLevel(t *testing.T) {
	restoreDefault(t)
	t.Setenv("HOARD_LOG_LEVEL", "debug")

	logger, _, err := Setup(config.LogConfig{Level: "info"}, &bytes.Buffer{}, false)
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger, _, err := Setup(config.LogConfig{Level: "chatty"}, &buf, false)
	require.NoError(t, err)

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "invalid log level")
}

func TestSetup_WritesLogFile(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "logs", "hoard.log")
	var buf bytes.Buffer

	logger, closer, err := Setup(config.LogConfig{Level: "info", File: path, MaxSize: 1}, &buf, false)
	require.NoError(t, err)

	logger.Info("pull completed", "blobs", 4)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pull completed")
	assert.Contains(t, buf.String(), "pull completed")
}
