// Package catalog composes the semver, entitlement, and checksum decision
// logic into filtered and sorted views over caller-supplied (artifact,
// release) collections.
//
// The package owns no state: every operation is a single pass (or one
// O(n log n) sort) over the input with no per-item I/O, safe to invoke
// concurrently. Observability is resolved from the context via
// distcore.NewTrackingFromContext.
package catalog
