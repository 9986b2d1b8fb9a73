package bootstrap

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/galaplate/patterns/config"
	"github.com/galaplate/patterns/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() {
		_ = logger.SetOutput(os.Stderr)
		logger.SetLevel(slog.LevelWarn)
		config.SetGlobal(nil)
	})
}

func TestInitWithoutConfigDirectory(t *testing.T) {
	resetLogger(t)

	m, err := Init(WithConfigPath(filepath.Join(t.TempDir(), "absent")), WithLogsDir(""))
	require.NoError(t, err)
	assert.False(t, m.Has("logging"))
	assert.Same(t, m, config.GetGlobal())
}

func TestInitAppliesLoggingSection(t *testing.T) {
	resetLogger(t)

	cfgDir := t.TempDir()
	logsDir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("PATTERNS_TEST_LOGS", logsDir)
	require.NoError(t, os.WriteFile(
		filepath.Join(cfgDir, "logging.yaml"),
		[]byte("level: debug\ndir: ${PATTERNS_TEST_LOGS}\n"),
		0644,
	))

	m, err := Init(WithConfigPath(cfgDir))
	require.NoError(t, err)
	assert.Equal(t, "debug", m.GetString("logging.level"))
	assert.Equal(t, logsDir, logger.Output())

	matches, err := filepath.Glob(filepath.Join(logsDir, "app.*.log"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches, "bootstrap debug line should be written to the log directory")
}

func TestInitRejectsBadLevel(t *testing.T) {
	resetLogger(t)

	cfgDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "logging.yaml"), []byte("level: loud\n"), 0644))

	_, err := Init(WithConfigPath(cfgDir), WithLogsDir(""))
	assert.ErrorContains(t, err, "invalid logging.level")
}
