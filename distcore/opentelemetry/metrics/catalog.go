package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// RecordCatalogQuery counts one catalog query operation, labeled by op
// (for example "sort_by_version" or "within_constraints").
func (f *MetricsFactory) RecordCatalogQuery(ctx context.Context, op string, attributes ...attribute.KeyValue) {
	_ = f.Counter(MetricCatalogQueries).
		WithLabels(map[string]string{"op": op}).
		WithAttributes(attributes...).
		AddOne(ctx)
}

// RecordVersionParseFailure counts one release excluded from a catalog view
// because its version string failed parsing.
func (f *MetricsFactory) RecordVersionParseFailure(ctx context.Context, attributes ...attribute.KeyValue) {
	_ = f.Counter(MetricVersionParseFailures).
		WithAttributes(attributes...).
		AddOne(ctx)
}

// RecordChecksumClassified counts one checksum classification, labeled by the
// detected encoding and algorithm.
func (f *MetricsFactory) RecordChecksumClassified(ctx context.Context, encoding, algorithm string, attributes ...attribute.KeyValue) {
	_ = f.Counter(MetricChecksumsClassified).
		WithLabels(map[string]string{"encoding": encoding, "algorithm": algorithm}).
		WithAttributes(attributes...).
		AddOne(ctx)
}
