//go:build unit

package log_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/packwire/lib-distcore/distcore/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger records entries up to a verbosity ceiling.
type captureLogger struct {
	ceiling log.Level
	entries []capturedEntry
}

type capturedEntry struct {
	level  log.Level
	msg    string
	fields []log.Field
}

func (c *captureLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	c.entries = append(c.entries, capturedEntry{level: level, msg: msg, fields: fields})
}

//nolint:ireturn
func (c *captureLogger) With(_ ...log.Field) log.Logger { return c }

//nolint:ireturn
func (c *captureLogger) WithGroup(_ string) log.Logger { return c }

func (c *captureLogger) Enabled(level log.Level) bool { return level <= c.ceiling }

func (c *captureLogger) Sync(_ context.Context) error { return nil }

func fieldValue(fields []log.Field, key string) (any, bool) {
	for _, field := range fields {
		if field.Key == key {
			return field.Value, true
		}
	}

	return nil, false
}

func TestSafeErrorRedactsOutsideDebug(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{ceiling: log.LevelWarn}
	parseErr := fmt.Errorf("version %q: malformed", "1.0.0-secret-build-tag")

	log.SafeError(logger, context.Background(), log.LevelWarn, "excluded", parseErr,
		log.String("release_id", "r-1"))

	require.Len(t, logger.entries, 1)
	entry := logger.entries[0]
	assert.Equal(t, log.LevelWarn, entry.level)

	_, hasRawError := fieldValue(entry.fields, "error")
	assert.False(t, hasRawError)

	errorType, hasType := fieldValue(entry.fields, "error_type")
	require.True(t, hasType)
	assert.NotContains(t, fmt.Sprintf("%v", errorType), "secret-build-tag")

	releaseID, hasRelease := fieldValue(entry.fields, "release_id")
	require.True(t, hasRelease)
	assert.Equal(t, "r-1", releaseID)
}

func TestSafeErrorEmitsFullErrorAtDebug(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{ceiling: log.LevelDebug}
	parseErr := errors.New("version \"garbage\": malformed")

	log.SafeError(logger, context.Background(), log.LevelWarn, "excluded", parseErr)

	require.Len(t, logger.entries, 1)

	raw, hasRawError := fieldValue(logger.entries[0].fields, "error")
	require.True(t, hasRawError)
	assert.Equal(t, parseErr, raw)
}

func TestSafeErrorQuietPaths(t *testing.T) {
	t.Parallel()

	t.Run("nil_logger", func(t *testing.T) {
		t.Parallel()

		log.SafeError(nil, context.Background(), log.LevelError, "dropped", errors.New("boom"))
	})

	t.Run("nil_error", func(t *testing.T) {
		t.Parallel()

		logger := &captureLogger{ceiling: log.LevelDebug}
		log.SafeError(logger, context.Background(), log.LevelError, "dropped", nil)
		assert.Empty(t, logger.entries)
	})

	t.Run("level_disabled", func(t *testing.T) {
		t.Parallel()

		logger := &captureLogger{ceiling: log.LevelError}
		log.SafeError(logger, context.Background(), log.LevelWarn, "dropped", errors.New("boom"))
		assert.Empty(t, logger.entries)
	})
}
