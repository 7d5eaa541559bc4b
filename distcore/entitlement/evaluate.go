package entitlement

import (
	"github.com/packwire/lib-distcore/distcore"
)

// CodeSet is an unordered set of entitlement codes.
type CodeSet map[string]struct{}

// NewCodeSet builds a CodeSet from the given codes, deduplicating as it goes.
func NewCodeSet(codes ...string) CodeSet {
	set := make(CodeSet, len(codes))

	for _, code := range codes {
		set[code] = struct{}{}
	}

	return set
}

// Contains reports whether the set holds code.
func (s CodeSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

// Requirement is the immutable set of entitlement codes a release requires.
// Compute it once per release and reuse it; the strict and permissive
// predicates are then plain set operations.
type Requirement struct {
	codes CodeSet
}

// RequirementOf collects the deduplicated entitlement codes referenced by the
// release's constraints. A nil release has an empty requirement.
func RequirementOf(release *distcore.Release) Requirement {
	if release == nil || len(release.Constraints) == 0 {
		return Requirement{}
	}

	codes := make(CodeSet, len(release.Constraints))

	for _, constraint := range release.Constraints {
		codes[constraint.EntitlementCode] = struct{}{}
	}

	return Requirement{codes: codes}
}

// Empty reports whether the requirement references no entitlements, i.e. the
// release is unconstrained and universally satisfiable.
func (r Requirement) Empty() bool {
	return len(r.codes) == 0
}

// Codes returns a copy of the required code set.
func (r Requirement) Codes() CodeSet {
	out := make(CodeSet, len(r.codes))

	for code := range r.codes {
		out[code] = struct{}{}
	}

	return out
}

// SatisfiedBy decides whether the granted codes satisfy the requirement under
// the given mode. It never fails: an empty or nil granted set is a valid
// input under which only empty requirements pass.
func (r Requirement) SatisfiedBy(granted CodeSet, mode Mode) bool {
	if r.Empty() {
		return true
	}

	if mode == ModeStrict {
		for code := range r.codes {
			if !granted.Contains(code) {
				return false
			}
		}

		return true
	}

	for code := range r.codes {
		if granted.Contains(code) {
			return true
		}
	}

	return false
}

// IsUnconstrained reports whether the release declares no licensing
// constraints.
func IsUnconstrained(release *distcore.Release) bool {
	return release == nil || len(release.Constraints) == 0
}

// Satisfies decides whether the granted codes make the release usable under
// the given mode.
func Satisfies(release *distcore.Release, granted CodeSet, mode Mode) bool {
	return RequirementOf(release).SatisfiedBy(granted, mode)
}

// WithoutConstraints selects the releases declaring no constraints,
// preserving input order.
func WithoutConstraints(releases []*distcore.Release) []*distcore.Release {
	selected := make([]*distcore.Release, 0, len(releases))

	for _, release := range releases {
		if IsUnconstrained(release) {
			selected = append(selected, release)
		}
	}

	return selected
}

// WithConstraints selects the releases declaring at least one constraint,
// preserving input order. Together with WithoutConstraints it partitions the
// input exactly.
func WithConstraints(releases []*distcore.Release) []*distcore.Release {
	selected := make([]*distcore.Release, 0, len(releases))

	for _, release := range releases {
		if !IsUnconstrained(release) {
			selected = append(selected, release)
		}
	}

	return selected
}

// WithinConstraints selects the releases whose requirements are satisfied by
// the granted codes under the given mode, preserving input order. Each
// release is judged independently; there is no cross-release state.
func WithinConstraints(releases []*distcore.Release, granted CodeSet, mode Mode) []*distcore.Release {
	selected := make([]*distcore.Release, 0, len(releases))

	for _, release := range releases {
		if Satisfies(release, granted, mode) {
			selected = append(selected, release)
		}
	}

	return selected
}
