package semver

import (
	"fmt"
	"strconv"
	"strings"

	constant "github.com/packwire/lib-distcore/distcore/constants"
)

// Version is an immutable parsed semantic version:
// MAJOR.MINOR.PATCH[-prerelease][+build].
//
// The original text is retained so String round-trips exactly for any input
// accepted by Parse.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []string
	Build      []string

	raw string
}

// Parse parses text as a semantic version. A malformed version returns an
// error wrapping constants.ErrMalformedVersion; callers sorting or filtering
// catalogs should exclude the entry rather than abort the batch.
//
// Numeric core fields must be non-negative integers. Leading zeros are
// accepted; packaging practice is honored over the strict standard here.
func Parse(text string) (Version, error) {
	if strings.TrimSpace(text) != text || text == "" {
		return Version{}, malformed(text, "empty or surrounded by whitespace")
	}

	rest := text

	var build []string

	if at := strings.IndexByte(rest, '+'); at >= 0 {
		parsed, err := parseIdentifiers(rest[at+1:])
		if err != nil {
			return Version{}, malformed(text, "build metadata: "+err.Error())
		}

		build = parsed
		rest = rest[:at]
	}

	var prerelease []string

	if at := strings.IndexByte(rest, '-'); at >= 0 {
		parsed, err := parseIdentifiers(rest[at+1:])
		if err != nil {
			return Version{}, malformed(text, "prerelease: "+err.Error())
		}

		prerelease = parsed
		rest = rest[:at]
	}

	core := strings.Split(rest, ".")
	if len(core) != 3 {
		return Version{}, malformed(text, "numeric core must have exactly three fields")
	}

	fields := make([]uint64, 3)

	for i, part := range core {
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, malformed(text, fmt.Sprintf("core field %q is not a non-negative integer", part))
		}

		fields[i] = value
	}

	return Version{
		Major:      fields[0],
		Minor:      fields[1],
		Patch:      fields[2],
		Prerelease: prerelease,
		Build:      build,
		raw:        text,
	}, nil
}

// MustParse parses text and panics on malformed input. Use only for
// compile-time constant versions (fixtures, defaults).
func MustParse(text string) Version {
	version, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return version
}

// String returns the version's textual form. For parsed versions this is the
// exact input text; for hand-constructed values it is reassembled from the
// fields.
func (v Version) String() string {
	if v.raw != "" {
		return v.raw
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)

	if len(v.Prerelease) > 0 {
		sb.WriteByte('-')
		sb.WriteString(strings.Join(v.Prerelease, "."))
	}

	if len(v.Build) > 0 {
		sb.WriteByte('+')
		sb.WriteString(strings.Join(v.Build, "."))
	}

	return sb.String()
}

// parseIdentifiers splits a prerelease or build part into its dot-separated
// identifiers, validating the [0-9A-Za-z-] identifier grammar.
func parseIdentifiers(part string) ([]string, error) {
	if part == "" {
		return nil, fmt.Errorf("identifier sequence is empty")
	}

	identifiers := strings.Split(part, ".")

	for _, identifier := range identifiers {
		if identifier == "" {
			return nil, fmt.Errorf("identifier sequence %q contains an empty identifier", part)
		}

		for i := 0; i < len(identifier); i++ {
			if !isIdentifierByte(identifier[i]) {
				return nil, fmt.Errorf("identifier %q contains invalid character %q", identifier, identifier[i])
			}
		}
	}

	return identifiers, nil
}

func isIdentifierByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '-':
		return true
	}

	return false
}

func malformed(text, reason string) error {
	return fmt.Errorf("%w: version %q: %s", constant.ErrMalformedVersion, text, reason)
}
