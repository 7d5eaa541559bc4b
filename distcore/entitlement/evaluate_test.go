//go:build unit

package entitlement_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/packwire/lib-distcore/distcore"
	"github.com/packwire/lib-distcore/distcore/entitlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// releaseRequiring builds a release whose constraints reference the given
// entitlement codes.
func releaseRequiring(codes ...string) *distcore.Release {
	constraints := make([]distcore.Constraint, 0, len(codes))

	for _, code := range codes {
		constraints = append(constraints, distcore.Constraint{
			ID:              uuid.New(),
			EntitlementCode: code,
		})
	}

	return &distcore.Release{
		ID:          uuid.New(),
		Version:     "1.0.0",
		Constraints: constraints,
	}
}

// fixtureReleases is the canonical constraint catalog: releases requiring
// {A,B,C,D}, {A,B,C}, {A,C}, {A}, {}, {E}.
func fixtureReleases() []*distcore.Release {
	return []*distcore.Release{
		releaseRequiring("A", "B", "C", "D"),
		releaseRequiring("A", "B", "C"),
		releaseRequiring("A", "C"),
		releaseRequiring("A"),
		releaseRequiring(),
		releaseRequiring("E"),
	}
}

func TestSatisfiesAgainstGrantedABC(t *testing.T) {
	t.Parallel()

	releases := fixtureReleases()
	granted := entitlement.NewCodeSet("A", "B", "C")

	t.Run("permissive_selects_all_but_disjoint", func(t *testing.T) {
		t.Parallel()

		selected := entitlement.WithinConstraints(releases, granted, entitlement.ModePermissive)
		require.Len(t, selected, 5)

		// Only the {E} release has requirements wholly disjoint from the grant.
		assert.NotContains(t, selected, releases[5])
	})

	t.Run("strict_selects_all_but_partial", func(t *testing.T) {
		t.Parallel()

		selected := entitlement.WithinConstraints(releases, granted, entitlement.ModeStrict)
		require.Len(t, selected, 4)

		// {A,B,C,D} has an unmet requirement; {E} is wholly unmet.
		assert.NotContains(t, selected, releases[0])
		assert.NotContains(t, selected, releases[5])
	})
}

func TestSatisfiesAgainstEmptyGrant(t *testing.T) {
	t.Parallel()

	releases := fixtureReleases()

	for _, mode := range []entitlement.Mode{entitlement.ModePermissive, entitlement.ModeStrict} {
		selected := entitlement.WithinConstraints(releases, entitlement.NewCodeSet(), mode)

		// Only the unconstrained release passes with nothing granted.
		require.Len(t, selected, 1, "mode %s", mode)
		assert.Same(t, releases[4], selected[0])
	}
}

func TestSatisfiesNilGrantedSet(t *testing.T) {
	t.Parallel()

	assert.True(t, entitlement.Satisfies(releaseRequiring(), nil, entitlement.ModeStrict))
	assert.False(t, entitlement.Satisfies(releaseRequiring("A"), nil, entitlement.ModeStrict))
	assert.False(t, entitlement.Satisfies(releaseRequiring("A"), nil, entitlement.ModePermissive))
}

func TestSatisfiesExtraGrantsAreIrrelevant(t *testing.T) {
	t.Parallel()

	granted := entitlement.NewCodeSet("A", "B", "C", "X", "Y", "Z")
	release := releaseRequiring("A", "B")

	assert.True(t, entitlement.Satisfies(release, granted, entitlement.ModeStrict))
	assert.True(t, entitlement.Satisfies(release, granted, entitlement.ModePermissive))
}

func TestIsUnconstrained(t *testing.T) {
	t.Parallel()

	assert.True(t, entitlement.IsUnconstrained(releaseRequiring()))
	assert.True(t, entitlement.IsUnconstrained(nil))
	assert.False(t, entitlement.IsUnconstrained(releaseRequiring("A")))
}

func TestPartitionIsExact(t *testing.T) {
	t.Parallel()

	releases := fixtureReleases()

	without := entitlement.WithoutConstraints(releases)
	with := entitlement.WithConstraints(releases)

	assert.Len(t, without, 1)
	assert.Len(t, with, 5)
	assert.Equal(t, len(releases), len(without)+len(with))

	for _, release := range without {
		assert.NotContains(t, with, release)
	}

	// Both filters preserve input order.
	assert.Same(t, releases[4], without[0])
	assert.Same(t, releases[0], with[0])
	assert.Same(t, releases[5], with[4])
}

func TestRequirementDeduplicatesCodes(t *testing.T) {
	t.Parallel()

	release := releaseRequiring("A", "A", "B", "A")
	requirement := entitlement.RequirementOf(release)

	assert.False(t, requirement.Empty())
	assert.Len(t, requirement.Codes(), 2)
	assert.True(t, requirement.Codes().Contains("A"))
	assert.True(t, requirement.Codes().Contains("B"))
}

func TestRequirementCodesReturnsCopy(t *testing.T) {
	t.Parallel()

	requirement := entitlement.RequirementOf(releaseRequiring("A"))

	codes := requirement.Codes()
	delete(codes, "A")

	assert.True(t, requirement.Codes().Contains("A"))
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "permissive", entitlement.ModePermissive.String())
	assert.Equal(t, "strict", entitlement.ModeStrict.String())
	assert.Equal(t, "unknown", entitlement.Mode(7).String())
}
