package log

import (
	"context"
	"fmt"
)

// SafeError logs err at the given level without echoing caller data unless
// the logger runs at debug verbosity. Parse errors embed the offending
// version or checksum text verbatim; outside debug only the error type is
// emitted alongside the caller's fields.
//
// Nil loggers, nil errors, and disabled levels are all quiet no-ops, so
// filter loops can call this unconditionally.
func SafeError(logger Logger, ctx context.Context, level Level, msg string, err error, fields ...Field) {
	if logger == nil || err == nil {
		return
	}

	if !logger.Enabled(level) {
		return
	}

	if logger.Enabled(LevelDebug) {
		logger.Log(ctx, level, msg, append(fields, Err(err))...)
		return
	}

	logger.Log(ctx, level, msg, append(fields, String("error_type", fmt.Sprintf("%T", err)))...)
}
