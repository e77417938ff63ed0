package semver

import "strings"

// Precedence orders a and b as defined by the SemVer specification: the
// numeric core fields are compared first, a version without a pre-release
// part takes precedence over one with it, and pre-release identifier
// sequences are compared position by position, numeric identifiers before
// alphanumeric ones. Build metadata is never consulted, so versions differing
// only in metadata compare as 0.
//
// For the core fields the result is the accumulated field difference rather
// than a bare sign; only the sign is part of the contract, the magnitude is
// informative.
func Precedence(a, b Version) int {
	if d := a.major - b.major; d != 0 {
		return d
	}
	if d := a.minor - b.minor; d != 0 {
		return d
	}
	if d := a.patch - b.patch; d != 0 {
		return d
	}
	switch {
	case len(a.prerelease) == 0 && len(b.prerelease) == 0:
		return 0
	case len(a.prerelease) == 0:
		return 1
	case len(b.prerelease) == 0:
		return -1
	}
	return compareIdentifiers(a.prerelease, b.prerelease)
}

// Compare refines Precedence into a total order consistent with Equal: when
// precedence ties, build metadata breaks the tie under the same
// numeric-before-alphanumeric identifier rules, with absent metadata ordered
// below present metadata. It returns a negative, zero, or positive result;
// as with Precedence, only the sign is contractual.
func Compare(a, b Version) int {
	if c := Precedence(a, b); c != 0 {
		return c
	}
	switch {
	case len(a.metadata) == 0 && len(b.metadata) == 0:
		return 0
	case len(a.metadata) == 0:
		return -1
	case len(b.metadata) == 0:
		return 1
	}
	return compareIdentifiers(a.metadata, b.metadata)
}

// CompareTo is the method form of Compare.
func (v Version) CompareTo(w Version) int { return Compare(v, w) }

// compareIdentifiers orders two identifier sequences position by position.
// When all shared positions tie, the shorter sequence orders first.
func compareIdentifiers(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// compareIdentifier orders two identifiers: both numeric compares their
// values, a numeric identifier orders below an alphanumeric one, and two
// alphanumeric identifiers compare lexically in ASCII order.
func compareIdentifier(a, b string) int {
	na, aNum := numericValue(a)
	nb, bNum := numericValue(b)
	switch {
	case aNum && bNum:
		return na - nb
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
