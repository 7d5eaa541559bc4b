// Package entitlement decides whether granted entitlement codes satisfy the
// licensing constraints attached to a release.
//
// All predicates are pure: the caller supplies the granted codes (resolved
// from whatever licensing mechanism exists externally) and the package
// answers set questions about them.
package entitlement
