package distcore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/packwire/lib-distcore/distcore/log"
	"github.com/packwire/lib-distcore/distcore/opentelemetry/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNilParentContext indicates that a nil parent context was provided.
var ErrNilParentContext = errors.New("cannot create context from nil parent")

// ---- Context container ----

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("custom_context")

// CustomContextKeyValue holds all request-scoped facilities we attach to context.
type CustomContextKeyValue struct {
	HeaderID      string
	Tracer        trace.Tracer
	Logger        log.Logger
	MetricFactory *metrics.MetricsFactory

	// AttrBag holds request-wide attributes to be applied to every span.
	// Keep low/medium cardinality attributes here (account.id, product.id,
	// request_id, route).
	AttrBag []attribute.KeyValue
}

// ---- Logger helpers ----

// NewLoggerFromContext extracts the Logger stored in ctx, or a NopLogger when
// none is present.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if customContext, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		customContext.Logger != nil {
		return customContext.Logger
	}

	return &log.NopLogger{}
}

// ContextWithLogger returns a context carrying the given Logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	values.Logger = logger

	return context.WithValue(ctx, CustomContextKey, values)
}

// ---- Tracer helpers ----

// ContextWithTracer returns a context carrying the given trace.Tracer.
func ContextWithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	values.Tracer = tracer

	return context.WithValue(ctx, CustomContextKey, values)
}

// ---- Metrics helpers ----

// ContextWithMetricFactory returns a context carrying the given MetricsFactory.
func ContextWithMetricFactory(ctx context.Context, metricFactory *metrics.MetricsFactory) context.Context {
	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	values.MetricFactory = metricFactory

	return context.WithValue(ctx, CustomContextKey, values)
}

// ---- Correlation / HeaderID helpers ----

// ContextWithHeaderID returns a context carrying the given correlation ID.
func ContextWithHeaderID(ctx context.Context, headerID string) context.Context {
	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	values.HeaderID = headerID

	return context.WithValue(ctx, CustomContextKey, values)
}

// ---- Tracking bundle (convenience) ----

// TrackingComponents is the complete set of tracking components extracted
// from context.
type TrackingComponents struct {
	Logger        log.Logger
	Tracer        trace.Tracer
	HeaderID      string
	MetricFactory *metrics.MetricsFactory
}

// NewTrackingFromContext extracts tracking components from context with
// fail-safe resolution: valid components are preserved and missing ones are
// replaced with functional defaults, so callers never need nil checks.
//
//nolint:ireturn
func NewTrackingFromContext(ctx context.Context) (log.Logger, trace.Tracer, string, *metrics.MetricsFactory) {
	components := extractTrackingComponents(ctx)
	return components.Logger, components.Tracer, components.HeaderID, components.MetricFactory
}

func extractTrackingComponents(ctx context.Context) TrackingComponents {
	customContext, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if !ok || customContext == nil {
		return TrackingComponents{
			Logger:        &log.NopLogger{},
			Tracer:        otel.Tracer("distcore.default"),
			HeaderID:      uuid.New().String(),
			MetricFactory: metrics.NewNopFactory(),
		}
	}

	return TrackingComponents{
		Logger:        resolveLogger(customContext.Logger),
		Tracer:        resolveTracer(customContext.Tracer),
		HeaderID:      resolveHeaderID(customContext.HeaderID),
		MetricFactory: resolveMetricFactory(customContext.MetricFactory),
	}
}

//nolint:ireturn
func resolveLogger(logger log.Logger) log.Logger {
	if logger != nil {
		return logger
	}

	return &log.NopLogger{}
}

//nolint:ireturn
func resolveTracer(tracer trace.Tracer) trace.Tracer {
	if tracer != nil {
		return tracer
	}

	return otel.Tracer("distcore.default")
}

// resolveHeaderID falls back to a fresh UUID so every request carries a
// usable correlation ID.
func resolveHeaderID(headerID string) string {
	if trimmed := strings.TrimSpace(headerID); trimmed != "" {
		return trimmed
	}

	return uuid.New().String()
}

func resolveMetricFactory(factory *metrics.MetricsFactory) *metrics.MetricsFactory {
	if factory != nil {
		return factory
	}

	return metrics.NewNopFactory()
}

// ---- Attribute Bag (request-wide span attributes) ----

// ContextWithSpanAttributes appends one or more attributes to the request's
// AttrBag. Call this once at ingress and avoid per-layer duplication.
func ContextWithSpanAttributes(ctx context.Context, kv ...attribute.KeyValue) context.Context {
	if len(kv) == 0 {
		return ctx
	}

	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	values.AttrBag = append(values.AttrBag, kv...)

	return context.WithValue(ctx, CustomContextKey, values)
}

// AttributesFromContext returns a shallow copy of the AttrBag slice, safe to
// reuse by span processors.
func AttributesFromContext(ctx context.Context) []attribute.KeyValue {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil && len(values.AttrBag) > 0 {
		out := make([]attribute.KeyValue, len(values.AttrBag))
		copy(out, values.AttrBag)

		return out
	}

	return nil
}

// ---- Deadline Management ----

// WithTimeoutSafe creates a context with the specified timeout, but respects
// any existing deadline in the parent context. Returns an error if parent is
// nil.
func WithTimeoutSafe(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if parent == nil {
		return nil, nil, ErrNilParentContext
	}

	if deadline, ok := parent.Deadline(); ok {
		if time.Until(deadline) < timeout {
			ctx, cancel := context.WithCancel(parent)
			return ctx, cancel, nil
		}
	}

	ctx, cancel := context.WithTimeout(parent, timeout)

	return ctx, cancel, nil
}
