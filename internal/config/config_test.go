package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-api/internal/config"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.UserID)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.ReferenceTTL)
	assert.Equal(t, 15*time.Minute, cfg.RollSessionTTL)
	assert.Equal(t, 20, cfg.Reference.BatchSize)
	assert.Equal(t, config.LogFormatText, cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POKEROLE_USER_ID", "ash")
	t.Setenv("POKEROLE_ROLL_SESSION_TTL", "1h")
	t.Setenv("POKEROLE_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ash", cfg.UserID)
	assert.Equal(t, time.Hour, cfg.RollSessionTTL)
	assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("POKEROLE_REFERENCE_BATCH_SIZE=5\n"), 0o600))
	// godotenv sets process variables; register cleanup through t.Setenv first
	t.Setenv("POKEROLE_REFERENCE_BATCH_SIZE", "")
	require.NoError(t, os.Unsetenv("POKEROLE_REFERENCE_BATCH_SIZE"))

	cfg, err := config.Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Reference.BatchSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("POKEROLE_LOG_LEVEL", "chatty")
	t.Setenv("POKEROLE_ROLL_SESSION_TTL", "0s")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "POKEROLE_LOG_LEVEL")
	assert.Contains(t, fields, "POKEROLE_ROLL_SESSION_TTL")
}

func TestLoadRejectsUnparsableDuration(t *testing.T) {
	t.Setenv("POKEROLE_ROLL_SESSION_TTL", "soon")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseLevel(t *testing.T) {
	level, err := config.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = config.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = config.ParseLevel("loud")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewLogger(t *testing.T) {
	logger, err := (&config.LogConfig{Level: "info", Format: "json"}).NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug))

	_, err = (&config.LogConfig{Level: "info", Format: "xml"}).NewLogger()
	assert.True(t, errors.IsInvalidArgument(err))
}
