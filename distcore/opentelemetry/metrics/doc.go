// Package metrics provides a fluent factory for OpenTelemetry metric
// instruments.
//
// MetricsFactory caches instruments and exposes builder-style APIs for
// counters and histograms with low-overhead attribute composition.
// Convenience recorders (for example RecordCatalogQuery) cover the domain
// metrics emitted by the catalog layer.
package metrics
