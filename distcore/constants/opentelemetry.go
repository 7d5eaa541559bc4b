package constant

// Metric names emitted by the catalog composition layer. Names follow the
// snake_case convention used across Packwire telemetry dashboards.
const (
	// MetricCatalogQueriesTotal counts catalog query operations, labeled by op.
	MetricCatalogQueriesTotal = "catalog_queries"
	// MetricVersionParseFailuresTotal counts release versions excluded from
	// sorted views because they failed semantic-version parsing.
	MetricVersionParseFailuresTotal = "version_parse_failures"
	// MetricChecksumsClassifiedTotal counts checksum classifications, labeled
	// by detected encoding and algorithm.
	MetricChecksumsClassifiedTotal = "checksums_classified"
	// MetricAssertionFailedTotal counts failed runtime invariant assertions.
	MetricAssertionFailedTotal = "assertion_failed"
)
