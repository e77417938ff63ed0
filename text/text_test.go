package text_test

import (
	"testing"

	"github.com/pdfclown/go-common/text"
)

func TestCapitalize(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"über", "Über"},
		{"123abc", "123abc"},
	}

	for _, tc := range testCases {
		if got := text.Capitalize(tc.input); got != tc.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestUncapitalize(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{"", ""},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"Über", "über"},
	}

	for _, tc := range testCases {
		if got := text.Uncapitalize(tc.input); got != tc.want {
			t.Errorf("Uncapitalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTitle(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{"semantic version parsing", "Semantic Version Parsing"},
		{"the PDF toolkit", "The PDF Toolkit"},
	}

	for _, tc := range testCases {
		if got := text.Title(tc.input); got != tc.want {
			t.Errorf("Title(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestAbbreviate(t *testing.T) {
	testCases := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a longer sentence", 10, "a longe..."},
		{"abcdef", 3, "abc"},
		{"abcdef", 0, ""},
		{"abcdef", -1, ""},
	}

	for _, tc := range testCases {
		if got := text.Abbreviate(tc.input, tc.max); got != tc.want {
			t.Errorf("Abbreviate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
		}
	}
}

func TestClassification(t *testing.T) {
	if !text.IsBlank("  \t\n") || text.IsBlank(" x ") {
		t.Error("IsBlank misclassified input")
	}
	if !text.IsNumeric("0123") || text.IsNumeric("12a") || text.IsNumeric("") {
		t.Error("IsNumeric misclassified input")
	}
	if !text.IsAlphanumeric("abc123XYZ") || text.IsAlphanumeric("abc-123") || text.IsAlphanumeric("") {
		t.Error("IsAlphanumeric misclassified input")
	}
}

func TestIndent(t *testing.T) {
	got := text.Indent("a\n\nb", "  ")
	want := "  a\n\n  b"
	if got != want {
		t.Errorf("Indent = %q, want %q", got, want)
	}
}

func TestPlural(t *testing.T) {
	testCases := []struct {
		count int
		want  string
	}{
		{0, "0 files"},
		{1, "1 file"},
		{2, "2 files"},
		{-1, "-1 file"},
	}

	for _, tc := range testCases {
		if got := text.Plural(tc.count, "file", "files"); got != tc.want {
			t.Errorf("Plural(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{102, "102nd"},
		{111, "111th"},
		{0, "0th"},
	}

	for _, tc := range testCases {
		if got := text.Ordinal(tc.n); got != tc.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
