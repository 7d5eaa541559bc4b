// Package safe provides arithmetic helpers with explicit handling of the
// degenerate cases (zero denominators) that would otherwise panic or produce
// NaN-like results.
package safe
