package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	constant "github.com/packwire/lib-distcore/distcore/constants"
	"github.com/packwire/lib-distcore/distcore/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MetricsFactory is a thread-safe factory for OpenTelemetry instruments with
// lazy initialization. Instruments are created once per name and cached.
type MetricsFactory struct {
	meter      metric.Meter
	counters   sync.Map // string -> metric.Int64Counter
	histograms sync.Map // string -> metric.Int64Histogram
	logger     log.Logger
}

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Metric describes an instrument that the factory can create.
type Metric struct {
	Name        string
	Description string
	Unit        string
	// For histograms: bucket boundaries.
	Buckets []float64
}

// Pre-configured metrics emitted by the catalog layer.
var (
	// MetricCatalogQueries counts catalog query operations.
	MetricCatalogQueries = Metric{
		Name:        constant.MetricCatalogQueriesTotal,
		Unit:        "1",
		Description: "Counts catalog query operations, labeled by op.",
	}

	// MetricVersionParseFailures counts releases excluded from sorted views
	// because their version string failed parsing.
	MetricVersionParseFailures = Metric{
		Name:        constant.MetricVersionParseFailuresTotal,
		Unit:        "1",
		Description: "Counts release versions that failed semantic-version parsing.",
	}

	// MetricChecksumsClassified counts checksum classifications.
	MetricChecksumsClassified = Metric{
		Name:        constant.MetricChecksumsClassifiedTotal,
		Unit:        "1",
		Description: "Counts checksum classifications, labeled by encoding and algorithm.",
	}

	// MetricAssertionFailed counts failed runtime invariant assertions.
	MetricAssertionFailed = Metric{
		Name:        constant.MetricAssertionFailedTotal,
		Unit:        "1",
		Description: "Counts failed runtime invariant assertions.",
	}
)

// DefaultCatalogSizeBuckets for catalog entry counts per query.
var DefaultCatalogSizeBuckets = []float64{1, 10, 50, 100, 500, 1000, 5000, 10000}

// NewMetricsFactory creates a new MetricsFactory instance.
func NewMetricsFactory(meter metric.Meter, logger log.Logger) (*MetricsFactory, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	if logger == nil {
		logger = log.NewNop()
	}

	return &MetricsFactory{
		meter:  meter,
		logger: logger,
	}, nil
}

// NewNopFactory returns a MetricsFactory backed by OpenTelemetry's no-op
// meter. It is safe for use as a fallback when a real meter is unavailable.
func NewNopFactory() *MetricsFactory {
	return &MetricsFactory{
		meter:  noop.NewMeterProvider().Meter("nop"),
		logger: log.NewNop(),
	}
}

// Counter returns a fluent builder for the counter described by m.
func (f *MetricsFactory) Counter(m Metric) *CounterBuilder {
	counter, err := f.getOrCreateCounter(m)
	if err != nil {
		f.logger.Log(context.Background(), log.LevelError, "create counter",
			log.String("metric", m.Name), log.Err(err))
	}

	return &CounterBuilder{factory: f, counter: counter, name: m.Name}
}

// Histogram returns a fluent builder for the histogram described by m.
func (f *MetricsFactory) Histogram(m Metric) *HistogramBuilder {
	histogram, err := f.getOrCreateHistogram(m)
	if err != nil {
		f.logger.Log(context.Background(), log.LevelError, "create histogram",
			log.String("metric", m.Name), log.Err(err))
	}

	return &HistogramBuilder{factory: f, histogram: histogram, name: m.Name}
}

func (f *MetricsFactory) getOrCreateCounter(m Metric) (metric.Int64Counter, error) {
	if cached, ok := f.counters.Load(m.Name); ok {
		return cached.(metric.Int64Counter), nil
	}

	opts := []metric.Int64CounterOption{}
	if m.Description != "" {
		opts = append(opts, metric.WithDescription(m.Description))
	}

	if m.Unit != "" {
		opts = append(opts, metric.WithUnit(m.Unit))
	}

	counter, err := f.meter.Int64Counter(m.Name, opts...)
	if err != nil {
		return nil, fmt.Errorf("create counter %q: %w", m.Name, err)
	}

	actual, _ := f.counters.LoadOrStore(m.Name, counter)

	return actual.(metric.Int64Counter), nil
}

func (f *MetricsFactory) getOrCreateHistogram(m Metric) (metric.Int64Histogram, error) {
	if cached, ok := f.histograms.Load(m.Name); ok {
		return cached.(metric.Int64Histogram), nil
	}

	opts := []metric.Int64HistogramOption{}
	if m.Description != "" {
		opts = append(opts, metric.WithDescription(m.Description))
	}

	if m.Unit != "" {
		opts = append(opts, metric.WithUnit(m.Unit))
	}

	if len(m.Buckets) > 0 {
		opts = append(opts, metric.WithExplicitBucketBoundaries(m.Buckets...))
	}

	histogram, err := f.meter.Int64Histogram(m.Name, opts...)
	if err != nil {
		return nil, fmt.Errorf("create histogram %q: %w", m.Name, err)
	}

	actual, _ := f.histograms.LoadOrStore(m.Name, histogram)

	return actual.(metric.Int64Histogram), nil
}
