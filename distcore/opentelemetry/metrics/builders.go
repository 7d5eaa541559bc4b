package metrics

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrNilCounter is returned when a counter builder has no instrument.
	ErrNilCounter = errors.New("counter instrument is nil")
	// ErrNilHistogram is returned when a histogram builder has no instrument.
	ErrNilHistogram = errors.New("histogram instrument is nil")
)

// extendAttributes returns a fresh attribute slice holding base plus extra.
// Builders never mutate in place: a builder held by one catalog operation
// must not leak labels into another.
func extendAttributes(base, extra []attribute.KeyValue) []attribute.KeyValue {
	combined := make([]attribute.KeyValue, 0, len(base)+len(extra))
	combined = append(combined, base...)
	combined = append(combined, extra...)

	return combined
}

// labelsToAttributes converts a string label map to attribute key/values.
func labelsToAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

// CounterBuilder accumulates labels for a counter increment. Each With*
// call returns a new builder; recording happens in Add or AddOne.
type CounterBuilder struct {
	factory *MetricsFactory
	counter metric.Int64Counter
	name    string
	attrs   []attribute.KeyValue
}

// WithLabels returns a builder carrying the given string labels.
func (c *CounterBuilder) WithLabels(labels map[string]string) *CounterBuilder {
	return c.WithAttributes(labelsToAttributes(labels)...)
}

// WithAttributes returns a builder carrying the given attributes.
func (c *CounterBuilder) WithAttributes(attrs ...attribute.KeyValue) *CounterBuilder {
	return &CounterBuilder{
		factory: c.factory,
		counter: c.counter,
		name:    c.name,
		attrs:   extendAttributes(c.attrs, attrs),
	}
}

// Add records a counter increment of value.
func (c *CounterBuilder) Add(ctx context.Context, value int64) error {
	if c.counter == nil {
		return ErrNilCounter
	}

	c.counter.Add(ctx, value, metric.WithAttributes(c.attrs...))

	return nil
}

// AddOne increments the counter by one.
func (c *CounterBuilder) AddOne(ctx context.Context) error {
	return c.Add(ctx, 1)
}

// HistogramBuilder accumulates labels for a histogram observation. Each
// With* call returns a new builder; recording happens in Record.
type HistogramBuilder struct {
	factory   *MetricsFactory
	histogram metric.Int64Histogram
	name      string
	attrs     []attribute.KeyValue
}

// WithLabels returns a builder carrying the given string labels.
func (h *HistogramBuilder) WithLabels(labels map[string]string) *HistogramBuilder {
	return h.WithAttributes(labelsToAttributes(labels)...)
}

// WithAttributes returns a builder carrying the given attributes.
func (h *HistogramBuilder) WithAttributes(attrs ...attribute.KeyValue) *HistogramBuilder {
	return &HistogramBuilder{
		factory:   h.factory,
		histogram: h.histogram,
		name:      h.name,
		attrs:     extendAttributes(h.attrs, attrs),
	}
}

// Record records one histogram observation of value.
func (h *HistogramBuilder) Record(ctx context.Context, value int64) error {
	if h.histogram == nil {
		return ErrNilHistogram
	}

	h.histogram.Record(ctx, value, metric.WithAttributes(h.attrs...))

	return nil
}
