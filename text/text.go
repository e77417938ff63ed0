// Package text collects small string, character, and number helpers shared by
// pdfClown projects: case manipulation, truncation, ASCII classification, and
// human-readable number rendering.
//
// Case conversion beyond plain ASCII goes through golang.org/x/text so that
// titling follows Unicode casing rules rather than byte-wise upper-casing.
package text

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ellipsis is the marker appended by Abbreviate.
const Ellipsis = "..."

// Capitalize upper-cases the first rune of s, leaving the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Uncapitalize lower-cases the first rune of s, leaving the rest untouched.
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Title renders s in English title case. Runes already upper-cased are
// preserved, so acronyms survive.
func Title(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}

// Abbreviate shortens s to at most max runes, replacing the removed tail with
// an ellipsis. Strings within the limit are returned unchanged; a limit
// shorter than the ellipsis returns a plain prefix.
func Abbreviate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(Ellipsis) {
		return string(runes[:max])
	}
	return string(runes[:max-len(Ellipsis)]) + Ellipsis
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNumeric reports whether s is non-empty and consists only of ASCII digits.
func IsNumeric(s string) bool {
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

// IsAlphanumeric reports whether s is non-empty and consists only of ASCII
// letters and digits.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// Indent prefixes every non-empty line of s with the given prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Plural returns the singular or plural form according to count, prefixed by
// the count itself: Plural(1, "file", "files") == "1 file".
func Plural(count int, singular, plural string) string {
	if count == 1 || count == -1 {
		return strconv.Itoa(count) + " " + singular
	}
	return strconv.Itoa(count) + " " + plural
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th, 11th.
func Ordinal(n int) string {
	suffix := "th"
	switch abs := n % 100; {
	case abs >= 11 && abs <= 13, abs <= -11 && abs >= -13:
	default:
		switch n % 10 {
		case 1, -1:
			suffix = "st"
		case 2, -2:
			suffix = "nd"
		case 3, -3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
