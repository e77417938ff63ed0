// Package semver provides an immutable value type for Semantic Versioning 2.0.0
// version labels (https://semver.org), along with parsing, rendering, two
// comparison orders, and field-wise mutation.
//
// A Version is created either by parsing its canonical string form:
//
//	v, err := semver.Parse("1.4.0-rc.2+build.7")
//
// or by assembling its fields directly:
//
//	v, err := semver.New(1, 4, 0, "rc.2", "build.7")
//
// Both paths apply the same validation. Once constructed, a Version never
// changes; every mutation ("next" increments, field replacement) returns a new
// value:
//
//	next, err := v.Next(semver.FieldMinor) // 1.5.0
//
// Two orderings are available. Precedence implements the ordering defined by
// the SemVer specification, in which build metadata carries no weight, so
// 1.0.0+1 and 1.0.0+2 are equivalent. Compare refines Precedence into a total
// order by using build metadata as a final tiebreaker, which makes it
// consistent with Equal and suitable for sorting and deduplication.
//
// All operations are pure functions over immutable values and are safe for
// unsynchronized concurrent use.
package semver

import (
	"strconv"
	"strings"
)

// Version is an immutable semantic version. The zero value is "0.0.0".
type Version struct {
	major, minor, patch int
	prerelease          []string
	metadata            []string
}

// New assembles a Version from its fields. The prerelease and metadata
// arguments are dot-separated identifier sequences; either may be empty to
// omit the corresponding part. Each field is validated independently and a
// violation is reported as an *ArgumentError naming the field.
func New(major, minor, patch int, prerelease, metadata string) (Version, error) {
	if major < 0 {
		return Version{}, &ArgumentError{Field: FieldMajor, Reason: "negative version number"}
	}
	if minor < 0 {
		return Version{}, &ArgumentError{Field: FieldMinor, Reason: "negative version number"}
	}
	if patch < 0 {
		return Version{}, &ArgumentError{Field: FieldPatch, Reason: "negative version number"}
	}

	pre, err := splitIdentifiers(FieldPrerelease, prerelease)
	if err != nil {
		return Version{}, err
	}
	meta, err := splitIdentifiers(FieldMetadata, metadata)
	if err != nil {
		return Version{}, err
	}

	return Version{major: major, minor: minor, patch: patch, prerelease: pre, metadata: meta}, nil
}

// Major returns the major version number.
func (v Version) Major() int { return v.major }

// Minor returns the minor version number.
func (v Version) Minor() int { return v.minor }

// Patch returns the patch version number.
func (v Version) Patch() int { return v.patch }

// Prerelease returns the dot-joined pre-release identifiers, without the "-"
// prefix. It is empty for a stable version.
func (v Version) Prerelease() string { return strings.Join(v.prerelease, ".") }

// Metadata returns the dot-joined build metadata identifiers, without the "+"
// prefix. It is empty when the version carries no build metadata.
func (v Version) Metadata() string { return strings.Join(v.metadata, ".") }

// PrereleaseIdentifiers returns a copy of the pre-release identifier sequence.
func (v Version) PrereleaseIdentifiers() []string {
	if len(v.prerelease) == 0 {
		return nil
	}
	out := make([]string, len(v.prerelease))
	copy(out, v.prerelease)
	return out
}

// MetadataIdentifiers returns a copy of the build metadata identifier sequence.
func (v Version) MetadataIdentifiers() []string {
	if len(v.metadata) == 0 {
		return nil
	}
	out := make([]string, len(v.metadata))
	copy(out, v.metadata)
	return out
}

// IsPrerelease reports whether the version carries a pre-release part.
func (v Version) IsPrerelease() bool { return len(v.prerelease) > 0 }

// IsStable reports whether the version denotes a stable release, that is,
// major > 0 and no pre-release part.
func (v Version) IsStable() bool { return v.major > 0 && len(v.prerelease) == 0 }

// Core returns a copy of the version with pre-release and build metadata
// cleared, leaving only "major.minor.patch".
func (v Version) Core() Version {
	return Version{major: v.major, minor: v.minor, patch: v.patch}
}

// Equal reports exact five-field equality, including build metadata.
// It is the equality that Compare is consistent with.
func (v Version) Equal(w Version) bool { return Compare(v, w) == 0 }

// Equivalent reports precedence equality, which ignores build metadata, so
// "1.0.0+1" and "1.0.0+2" are equivalent but not equal.
func (v Version) Equivalent(w Version) bool { return Precedence(v, w) == 0 }

// Before reports whether v precedes w in the total order.
func (v Version) Before(w Version) bool { return Compare(v, w) < 0 }

// After reports whether v follows w in the total order.
func (v Version) After(w Version) bool { return Compare(v, w) > 0 }

// String renders the canonical form, the exact inverse of Parse:
// "MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]".
func (v Version) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(v.major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.patch))
	if len(v.prerelease) > 0 {
		sb.WriteByte('-')
		sb.WriteString(strings.Join(v.prerelease, "."))
	}
	if len(v.metadata) > 0 {
		sb.WriteByte('+')
		sb.WriteString(strings.Join(v.metadata, "."))
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler. It never fails and returns
// the same text as String.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// grammar as Parse but tolerates and discards a leading "v", as commonly found
// in Git tags.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(strings.TrimPrefix(string(text), "v"))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// splitIdentifiers validates a dot-separated identifier sequence for the given
// field. An empty input yields a nil sequence.
func splitIdentifiers(field Field, s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	ids := strings.Split(s, ".")
	for _, id := range ids {
		if err := checkIdentifier(field, id); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// checkIdentifier validates a single identifier under the rules of the given
// field: non-empty, ASCII alphanumeric or hyphen, and, for pre-release only,
// no leading zero in purely numeric identifiers.
func checkIdentifier(field Field, id string) error {
	if id == "" {
		return &ArgumentError{Field: field, Reason: "empty identifier"}
	}
	if !isWord(id) {
		return &ArgumentError{Field: field, Reason: "identifier " + strconv.Quote(id) + " contains characters outside [0-9A-Za-z-]"}
	}
	if field == FieldPrerelease && isNumeric(id) && len(id) > 1 && id[0] == '0' {
		return &ArgumentError{Field: field, Reason: "numeric identifier " + strconv.Quote(id) + " has a leading zero"}
	}
	return nil
}

// isWord reports whether s consists only of ASCII digits, letters, and hyphens.
func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '-':
		default:
			return false
		}
	}
	return true
}

// isNumeric reports whether s is non-empty and consists only of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// numericValue returns the integer value of a purely numeric identifier.
// The second result is false if s is not purely numeric.
func numericValue(s string) (int, bool) {
	if !isNumeric(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
