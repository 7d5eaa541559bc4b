package semver

import "strings"

// Precedence is evaluated as an explicit ordered chain of comparator stages.
// Each stage returns a definitive ordering or defers to the next:
//
//  1. The numeric core (major, minor, patch) as an integer tuple.
//  2. Prerelease identifiers, where *absence ranks high*: a release build
//     outranks any prerelease of the same core version.
//  3. Build metadata identifiers, where *absence ranks low*: presence of
//     build metadata breaks ties upward.
//
// The divergent presence rules between stages 2 and 3 are the easy thing to
// get wrong; keeping the stages separate keeps each independently testable.
var stages = []func(a, b Version) int{
	compareCore,
	comparePrerelease,
	compareBuild,
}

// Compare totally orders two versions, returning -1 if a < b, 0 if equal,
// and +1 if a > b. Versions equal in every field compare as 0; ordering
// between equal-ranked entries is left to the (stable) sort.
func Compare(a, b Version) int {
	for _, stage := range stages {
		if result := stage(a, b); result != 0 {
			return result
		}
	}

	return 0
}

func compareCore(a, b Version) int {
	if result := compareUint64(a.Major, b.Major); result != 0 {
		return result
	}

	if result := compareUint64(a.Minor, b.Minor); result != 0 {
		return result
	}

	return compareUint64(a.Patch, b.Patch)
}

func comparePrerelease(a, b Version) int {
	switch {
	case len(a.Prerelease) == 0 && len(b.Prerelease) == 0:
		return 0
	case len(a.Prerelease) == 0:
		// No prerelease outranks any prerelease.
		return 1
	case len(b.Prerelease) == 0:
		return -1
	}

	return compareIdentifiers(a.Prerelease, b.Prerelease)
}

func compareBuild(a, b Version) int {
	switch {
	case len(a.Build) == 0 && len(b.Build) == 0:
		return 0
	case len(a.Build) == 0:
		// Opposite presence rule: build metadata breaks ties upward.
		return -1
	case len(b.Build) == 0:
		return 1
	}

	return compareIdentifiers(a.Build, b.Build)
}

// compareIdentifiers orders two dot-separated identifier sequences position
// by position; when all compared positions tie, the strict prefix is less.
func compareIdentifiers(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if result := compareIdentifier(a[i], b[i]); result != 0 {
			return result
		}
	}

	return compareInt(len(a), len(b))
}

// compareIdentifier orders a single identifier pair: numeric pairs compare as
// integers, a numeric identifier is always less than an alphanumeric one, and
// alphanumeric pairs compare bytewise.
func compareIdentifier(a, b string) int {
	aNumeric := isNumeric(a)
	bNumeric := isNumeric(b)

	switch {
	case aNumeric && bNumeric:
		return compareNumericString(a, b)
	case aNumeric:
		return -1
	case bNumeric:
		return 1
	}

	return strings.Compare(a, b)
}

// compareNumericString compares two all-digit identifiers by integer value
// without parsing, so arbitrarily long identifiers cannot overflow: after
// stripping leading zeros, a longer digit string is a larger number and
// equal-length strings compare bytewise.
func compareNumericString(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if result := compareInt(len(a), len(b)); result != 0 {
		return result
	}

	return strings.Compare(a, b)
}

func isNumeric(identifier string) bool {
	if identifier == "" {
		return false
	}

	for i := 0; i < len(identifier); i++ {
		if identifier[i] < '0' || identifier[i] > '9' {
			return false
		}
	}

	return true
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
