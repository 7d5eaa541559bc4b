// Package semver parses and totally orders release version strings under an
// extended semantic-versioning rule set.
//
// The extension concerns build metadata: the canonical standard ignores it
// for precedence, but release catalogs need a deterministic total order, so
// build metadata acts as a final tie-break stage (absence ranks low) using
// the same identifier comparison rules as prerelease.
package semver
