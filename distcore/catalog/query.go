package catalog

import (
	"context"
	"slices"

	"github.com/packwire/lib-distcore/distcore"
	"github.com/packwire/lib-distcore/distcore/checksum"
	"github.com/packwire/lib-distcore/distcore/entitlement"
	"github.com/packwire/lib-distcore/distcore/log"
	"github.com/packwire/lib-distcore/distcore/semver"
	"go.opentelemetry.io/otel/attribute"
)

// Entry pairs an artifact with the release it belongs to. The caller's query
// layer supplies entries; the catalog never loads or mutates them.
type Entry struct {
	Artifact *distcore.ReleaseArtifact
	Release  *distcore.Release
}

// SortByVersion returns the entries ordered by the semantic-version
// precedence of their release versions. Entries whose release is missing or
// whose version fails parsing are excluded from the view (logged and counted,
// never fatal): sorting a large catalog must be resilient to a handful of bad
// records.
//
// The sort is stable; entries with equal versions keep their input order.
func SortByVersion(ctx context.Context, entries []Entry, direction semver.Direction) []Entry {
	logger, tracer, _, factory := distcore.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "catalog.sort_by_version")
	defer span.End()

	span.SetAttributes(
		attribute.Int("catalog.entries", len(entries)),
		attribute.String("catalog.direction", direction.String()),
	)

	factory.RecordCatalogQuery(ctx, "sort_by_version")

	type parsedEntry struct {
		entry   Entry
		version semver.Version
	}

	parsed := make([]parsedEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.Release == nil {
			logger.Log(ctx, log.LevelWarn, "catalog entry has no release, excluding from sorted view")
			continue
		}

		version, err := semver.Parse(entry.Release.Version)
		if err != nil {
			log.SafeError(logger, ctx, log.LevelWarn, "release version failed parsing, excluding from sorted view",
				err, log.String("release_id", entry.Release.ID.String()))
			factory.RecordVersionParseFailure(ctx)

			continue
		}

		parsed = append(parsed, parsedEntry{entry: entry, version: version})
	}

	// Versions are parsed once per entry before sorting so the comparator
	// does no re-parsing inside the O(n log n) phase.
	slices.SortStableFunc(parsed, func(a, b parsedEntry) int {
		if direction == semver.DirectionDescending {
			return semver.Compare(b.version, a.version)
		}

		return semver.Compare(a.version, b.version)
	})

	sorted := make([]Entry, len(parsed))
	for i, p := range parsed {
		sorted[i] = p.entry
	}

	return sorted
}

// Latest returns the entry carrying the overall maximum release version,
// equivalent to sorting descending and taking the first. The second return is
// false when no entry has a parseable version.
//
// The scan is linear and self-contained so one caller request counts exactly
// once in the catalog_queries metric. Equal maximum versions resolve to the
// earliest entry, matching the stable descending sort.
func Latest(ctx context.Context, entries []Entry) (Entry, bool) {
	logger, tracer, _, factory := distcore.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "catalog.latest")
	defer span.End()

	span.SetAttributes(attribute.Int("catalog.entries", len(entries)))

	factory.RecordCatalogQuery(ctx, "latest")

	var (
		best        Entry
		bestVersion semver.Version
		found       bool
	)

	for _, entry := range entries {
		if entry.Release == nil {
			logger.Log(ctx, log.LevelWarn, "catalog entry has no release, excluding from latest query")
			continue
		}

		version, err := semver.Parse(entry.Release.Version)
		if err != nil {
			log.SafeError(logger, ctx, log.LevelWarn, "release version failed parsing, excluding from latest query",
				err, log.String("release_id", entry.Release.ID.String()))
			factory.RecordVersionParseFailure(ctx)

			continue
		}

		if !found || semver.Compare(version, bestVersion) > 0 {
			best = entry
			bestVersion = version
			found = true
		}
	}

	return best, found
}

// WithoutConstraints selects the entries whose release declares no licensing
// constraints. Together with WithConstraints it partitions the input exactly.
func WithoutConstraints(entries []Entry) []Entry {
	selected := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if entitlement.IsUnconstrained(entry.Release) {
			selected = append(selected, entry)
		}
	}

	return selected
}

// WithConstraints selects the entries whose release declares at least one
// licensing constraint.
func WithConstraints(entries []Entry) []Entry {
	selected := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if !entitlement.IsUnconstrained(entry.Release) {
			selected = append(selected, entry)
		}
	}

	return selected
}

// WithinConstraints selects the entries whose release is usable given the
// granted entitlement codes under the given mode. Each entry is judged
// independently in a single pass.
func WithinConstraints(ctx context.Context, entries []Entry, granted entitlement.CodeSet, mode entitlement.Mode) []Entry {
	_, tracer, _, factory := distcore.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "catalog.within_constraints")
	defer span.End()

	span.SetAttributes(
		attribute.Int("catalog.entries", len(entries)),
		attribute.String("catalog.mode", mode.String()),
	)

	factory.RecordCatalogQuery(ctx, "within_constraints")

	selected := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if entitlement.Satisfies(entry.Release, granted, mode) {
			selected = append(selected, entry)
		}
	}

	return selected
}

// Fingerprint classifies an artifact's checksum, deriving the fingerprint
// fresh from the raw string. A nil artifact or absent checksum yields the
// unknown fingerprint.
func Fingerprint(ctx context.Context, artifact *distcore.ReleaseArtifact) checksum.Fingerprint {
	_, _, _, factory := distcore.NewTrackingFromContext(ctx)

	raw := ""
	if artifact != nil {
		raw = artifact.Checksum
	}

	fingerprint := checksum.Classify(raw)

	factory.RecordChecksumClassified(ctx, fingerprint.Encoding.String(), fingerprint.Algorithm.String())

	return fingerprint
}
