package catalog

import (
	"context"

	"github.com/packwire/lib-distcore/distcore"
	"github.com/packwire/lib-distcore/distcore/assert"
	"github.com/packwire/lib-distcore/distcore/checksum"
	"github.com/packwire/lib-distcore/distcore/entitlement"
	"github.com/packwire/lib-distcore/distcore/safe"
	"github.com/packwire/lib-distcore/distcore/semver"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// Summary is a catalog health report: how much of the catalog is usable under
// a grant set and how much of it carries recognizable checksums. Rates are
// percentages over the total entry count.
type Summary struct {
	Total             int                        `json:"total"`
	Unconstrained     int                        `json:"unconstrained"`
	Satisfiable       int                        `json:"satisfiable"`
	MalformedVersions int                        `json:"malformedVersions"`
	Encodings         map[checksum.Encoding]int  `json:"encodings"`
	Algorithms        map[checksum.Algorithm]int `json:"algorithms"`
	SatisfiableRate   decimal.Decimal            `json:"satisfiableRate"`
	ClassifiedRate    decimal.Decimal            `json:"classifiedRate"`
}

// Summarize walks the entries once and reports catalog health under the given
// grant set and mode. An empty catalog yields zero rates rather than an
// error.
func Summarize(ctx context.Context, entries []Entry, granted entitlement.CodeSet, mode entitlement.Mode) Summary {
	logger, tracer, _, factory := distcore.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "catalog.summarize")
	defer span.End()

	span.SetAttributes(
		attribute.Int("catalog.entries", len(entries)),
		attribute.String("catalog.mode", mode.String()),
	)

	factory.RecordCatalogQuery(ctx, "summarize")

	summary := Summary{
		Total:      len(entries),
		Encodings:  make(map[checksum.Encoding]int),
		Algorithms: make(map[checksum.Algorithm]int),
	}

	classified := 0

	for _, entry := range entries {
		if entitlement.IsUnconstrained(entry.Release) {
			summary.Unconstrained++
		}

		if entitlement.Satisfies(entry.Release, granted, mode) {
			summary.Satisfiable++
		}

		if entry.Release != nil {
			if _, err := semver.Parse(entry.Release.Version); err != nil {
				summary.MalformedVersions++
			}
		}

		raw := ""
		if entry.Artifact != nil {
			raw = entry.Artifact.Checksum
		}

		fingerprint := checksum.Classify(raw)
		summary.Encodings[fingerprint.Encoding]++
		summary.Algorithms[fingerprint.Algorithm]++

		if fingerprint.Encoding != checksum.EncodingUnknown {
			classified++
		}
	}

	// Unconstrained entries are satisfiable under every mode, so the
	// satisfiable count can never fall below the unconstrained count.
	asserter := assert.New(logger, factory, "catalog", "summarize")
	_ = asserter.That(ctx, summary.Satisfiable >= summary.Unconstrained,
		"unconstrained entries must all be satisfiable",
		"satisfiable", summary.Satisfiable, "unconstrained", summary.Unconstrained)

	total := decimal.NewFromInt(int64(summary.Total))
	summary.SatisfiableRate = safe.PercentageOrZero(decimal.NewFromInt(int64(summary.Satisfiable)), total)
	summary.ClassifiedRate = safe.PercentageOrZero(decimal.NewFromInt(int64(classified)), total)

	return summary
}
