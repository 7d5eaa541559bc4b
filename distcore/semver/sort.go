package semver

import "slices"

// Direction selects the ordering of a sorted view.
type Direction uint8

const (
	DirectionAscending Direction = iota
	DirectionDescending
)

// String returns the string representation of a sort direction.
func (d Direction) String() string {
	switch d {
	case DirectionAscending:
		return "asc"
	case DirectionDescending:
		return "desc"
	default:
		return "unknown"
	}
}

// Sort returns a new slice ordered by semantic-version precedence. The sort
// is stable, so entries that compare equal keep their input order. The input
// slice is not modified.
func Sort(versions []Version, direction Direction) []Version {
	sorted := slices.Clone(versions)

	slices.SortStableFunc(sorted, func(a, b Version) int {
		if direction == DirectionDescending {
			return Compare(b, a)
		}

		return Compare(a, b)
	})

	return sorted
}

// Latest returns the maximum version, equivalent to sorting descending and
// taking the first entry. The second return is false for an empty input.
func Latest(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}

	latest := versions[0]

	for _, candidate := range versions[1:] {
		if Compare(candidate, latest) > 0 {
			latest = candidate
		}
	}

	return latest, true
}
