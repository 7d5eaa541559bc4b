package assert

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/packwire/lib-distcore/distcore/log"
	"github.com/packwire/lib-distcore/distcore/opentelemetry/metrics"
)

// Logger defines the minimal logging interface required by assertions.
// This interface is satisfied by distcore/log.Logger.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Asserter evaluates invariants and emits telemetry on failure.
type Asserter struct {
	logger    Logger
	factory   *metrics.MetricsFactory
	component string
	operation string
}

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError represents a failed assertion with rich context.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.Details == "" {
		return "assertion failed: " + entry.Message
	}

	return "assertion failed: " + entry.Message + "\n" + entry.Details
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// New creates an Asserter with logging and telemetry labels. component and
// operation identify the call site in logs and metrics. logger and factory
// may be nil; failures are still returned as errors.
func New(logger Logger, factory *metrics.MetricsFactory, component, operation string) *Asserter {
	return &Asserter{
		logger:    logger,
		factory:   factory,
		component: component,
		operation: operation,
	}
}

// That returns an error if ok is false. Use for general-purpose assertions.
//
// Example:
//
//	if err := asserter.That(ctx, len(entries) > 0, "entries must not be empty", "count", len(entries)); err != nil {
//		return err
//	}
func (asserter *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return asserter.fail(ctx, "That", msg, kv...)
}

// NotNil returns an error if v is nil. Handles both untyped nil and typed nil
// (nil pointers stored in non-nil interface values).
func (asserter *Asserter) NotNil(ctx context.Context, v any, msg string, kv ...any) error {
	if !isNil(v) {
		return nil
	}

	return asserter.fail(ctx, "NotNil", msg, kv...)
}

// NotEmpty returns an error if s is an empty string.
func (asserter *Asserter) NotEmpty(ctx context.Context, s, msg string, kv ...any) error {
	if s != "" {
		return nil
	}

	return asserter.fail(ctx, "NotEmpty", msg, kv...)
}

// NoError returns an error if err is not nil. The error message and type are
// included in the assertion context for debugging.
func (asserter *Asserter) NoError(ctx context.Context, err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	kvWithError := make([]any, 0, len(kv)+4)
	kvWithError = append(kvWithError, "error", err.Error())
	kvWithError = append(kvWithError, "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	return asserter.fail(ctx, "NoError", msg, kvWithError...)
}

// Never always returns an error. Use for code paths that should be unreachable.
//
// Example:
//
//	return asserter.Never(ctx, "unhandled encoding", "encoding", enc)
func (asserter *Asserter) Never(ctx context.Context, msg string, kv ...any) error {
	return asserter.fail(ctx, "Never", msg, kv...)
}

const maxValueLength = 200 // Truncate values longer than this.

// truncateValue truncates long values for logging safety. Raw checksums and
// version strings are caller data of unbounded length.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func (asserter *Asserter) fail(ctx context.Context, assertion, msg string, kv ...any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var component, operation string

	var logger Logger

	var factory *metrics.MetricsFactory

	if asserter != nil {
		component = asserter.component
		operation = asserter.operation
		logger = asserter.logger
		factory = asserter.factory
	}

	details := formatKeyValueLines(withContextPairs(assertion, component, operation, kv))

	if logger != nil {
		logger.Log(ctx, log.LevelError, "ASSERTION FAILED: "+msg, log.String("details", details))
	}

	if factory != nil {
		_ = factory.Counter(metrics.MetricAssertionFailed).
			WithLabels(map[string]string{"component": component, "operation": operation}).
			AddOne(ctx)
	}

	return &AssertionError{
		Assertion: assertion,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   details,
	}
}

func withContextPairs(assertion, component, operation string, kv []any) []any {
	contextPairs := make([]any, 0, len(kv)+6)
	contextPairs = append(contextPairs, "assertion", assertion)

	if component != "" {
		contextPairs = append(contextPairs, "component", component)
	}

	if operation != "" {
		contextPairs = append(contextPairs, "operation", operation)
	}

	contextPairs = append(contextPairs, kv...)

	return contextPairs
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}

// isNil reports whether v is nil, including typed nil pointers, maps, slices,
// channels, and functions stored in interface values.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
