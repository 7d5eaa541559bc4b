package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger is the structured logging contract every distcore package writes
// against. Catalog queries log through it without knowing which backend the
// embedding application wired in; the zap subpackage provides the production
// adapter and NopLogger the fallback.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is log entry severity. Lower values are more severe: LevelError is 0
// and LevelDebug is 3, so a configured level acts as a verbosity ceiling.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// String returns the level's lowercase name, or "unknown" for values outside
// the defined range.
func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}

	return "unknown"
}

// ParseLevel resolves a configuration string to a Level, case-insensitively.
// "warning" is accepted as an alias for "warn".
func ParseLevel(lvl string) (Level, error) {
	normalized := strings.ToLower(lvl)
	if normalized == "warning" {
		normalized = "warn"
	}

	for level, name := range levelNames {
		if name == normalized {
			return level, nil
		}
	}

	return LevelError, fmt.Errorf("unrecognized log level %q", lvl)
}

// Field is one key/value attribute on a log entry.
type Field struct {
	Key   string
	Value any
}

// Any creates a field holding an arbitrary value. Prefer the typed
// constructors; version strings and checksums are caller data of unbounded
// length and are better logged as counts or fingerprints.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional `error` field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
