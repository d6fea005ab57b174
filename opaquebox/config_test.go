//go:build unit

package opaquebox

import (
	"testing"

	"github.com/LerianStudio/lib-opaquebox/opaquebox/log"
	"github.com/LerianStudio/lib-opaquebox/opaquebox/zap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		SetLogger(nil)
		SetReadTracing(false)
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.TraceReads)
	assert.False(t, cfg.Logging)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("OPAQUEBOX_TRACE_READS", "true")
	t.Setenv("OPAQUEBOX_LOGGING", "true")
	t.Setenv("OPAQUEBOX_ENV", "development")
	t.Setenv("OPAQUEBOX_LOG_LEVEL", "warning")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.TraceReads)
	assert.True(t, cfg.Logging)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "warning", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("OPAQUEBOX_TRACE_READS", "sometimes")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse opaquebox config")
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("OPAQUEBOX_LOG_LEVEL", "loud")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid OPAQUEBOX_LOG_LEVEL")
	})
}

func TestConfigureTracingOnly(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, Configure(Config{TraceReads: true, Environment: "production"}))

	assert.True(t, ReadTracing())
	_, isNop := Logger().(*log.NopLogger)
	assert.True(t, isNop)
}

func TestConfigureBuildsLogger(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, Configure(Config{Logging: true, Environment: "development", LogLevel: "warning"}))

	logger, ok := Logger().(*zap.Logger)
	require.True(t, ok)
	assert.True(t, logger.Enabled(log.LevelWarn))
	assert.False(t, logger.Enabled(log.LevelInfo))
	assert.False(t, ReadTracing())
}

func TestConfigureRejectsInvalidConfig(t *testing.T) {
	restoreDefaults(t)

	err := Configure(Config{Logging: true, Environment: "moon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configure opaquebox logger")

	err = Configure(Config{LogLevel: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid OPAQUEBOX_LOG_LEVEL")
}

func TestConfigureLogsAppliedSettings(t *testing.T) {
	logger, observed := newObservedLogger(t)
	SetLogger(logger)

	require.NoError(t, Configure(Config{TraceReads: true, Environment: "production", LogLevel: "info"}))

	entries := observed.FilterMessage("opaquebox configured").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["trace_reads"])
	assert.Equal(t, false, entries[0].ContextMap()["logging"])
	assert.Equal(t, "info", entries[0].ContextMap()["log_level"])
}
