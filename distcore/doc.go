// Package distcore provides the license-compliance and integrity core shared
// across Packwire release-distribution services.
//
// The package defines the release catalog entities and request-scoped context
// plumbing; the actual decision logic lives in subpackages:
//
//   - semver orders release versions by semantic-version precedence.
//   - entitlement decides whether granted entitlement codes satisfy a
//     release's licensing constraints.
//   - checksum classifies opaque checksum strings by encoding and algorithm.
//   - catalog composes the three over caller-supplied collections.
//
// All decision logic is pure and stateless: callers own persistence,
// transport, and tenant scoping, and hand the core read-only entities.
//
// Typical usage at request ingress:
//
//	ctx = distcore.ContextWithLogger(ctx, logger)
//	ctx = distcore.ContextWithTracer(ctx, tracer)
//	ctx = distcore.ContextWithHeaderID(ctx, requestID)
package distcore
