package semver_test

import (
	"errors"
	"testing"

	"github.com/pdfclown/go-common/semver"
)

func TestParseRoundTrip(t *testing.T) {
	// Every accepted input must render back to itself unchanged.
	inputs := []string{
		"0.0.0",
		"1.2.3",
		"10.20.30",
		"0.0.4",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-0.3.7",
		"1.0.0-x.7.z.92",
		"1.0.0-x-y-z.--",
		"1.0.0-alpha+001",
		"1.0.0+20130313144700",
		"1.0.0-beta+exp.sha.5114f85",
		"1.0.0+21AF26D3---117B344092BD",
		"2.0.0-rc.1+build.123",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := semver.Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", input, err)
			}
			if got := v.String(); got != input {
				t.Errorf("Parse(%q).String() = %q, want input back", input, got)
			}
		})
	}
}

func TestParseOffsets(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		offset int
	}{
		{"empty input", "", 0},
		{"leading space", " 1.0.0", 0},
		{"v prefix", "v1.0.0", 0},
		{"missing minor", "1", 1},
		{"missing patch", "1.2", 3},
		{"empty minor", "1..0", 2},
		{"extra core field", "1.2.3.4", 5},
		{"leading zero major", "01.0.0", 1},
		{"leading zero minor", "1.01.0", 3},
		{"leading zero patch", "1.0.00", 5},
		{"negative minor", "1.-1.0", 2},
		{"empty prerelease", "1.0.0-", 6},
		{"empty prerelease identifier", "1.0.0-alpha..1", 12},
		{"trailing prerelease dot", "1.0.0-alpha.", 12},
		{"invalid prerelease char", "1.0.0-alpha_1", 11},
		{"leading zero prerelease number", "1.0.0-01", 7},
		{"empty metadata", "1.0.0+", 6},
		{"empty metadata identifier", "1.0.0+a..b", 8},
		{"invalid metadata char", "1.0.0+a#b", 7},
		{"trailing garbage", "1.0.0 ", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := semver.Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want FormatError", tc.input)
			}
			var ferr *semver.FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("Parse(%q) returned %T, want *FormatError", tc.input, err)
			}
			if ferr.Offset != tc.offset {
				t.Errorf("Parse(%q) failed at offset %d, want %d", tc.input, ferr.Offset, tc.offset)
			}
			if ferr.Input != tc.input {
				t.Errorf("FormatError.Input = %q, want %q", ferr.Input, tc.input)
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	v, err := semver.Parse("1.4.0-rc.2+build.7")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if v.Major() != 1 || v.Minor() != 4 || v.Patch() != 0 {
		t.Errorf("core = %d.%d.%d, want 1.4.0", v.Major(), v.Minor(), v.Patch())
	}
	if v.Prerelease() != "rc.2" {
		t.Errorf("Prerelease() = %q, want %q", v.Prerelease(), "rc.2")
	}
	if v.Metadata() != "build.7" {
		t.Errorf("Metadata() = %q, want %q", v.Metadata(), "build.7")
	}
	if !v.IsPrerelease() {
		t.Error("IsPrerelease() = false, want true")
	}
	if v.IsStable() {
		t.Error("IsStable() = true, want false")
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse of invalid input did not panic")
		}
	}()
	semver.MustParse("not.a.version")
}

func TestIsValid(t *testing.T) {
	if !semver.IsValid("1.0.0-alpha") {
		t.Error(`IsValid("1.0.0-alpha") = false`)
	}
	if semver.IsValid("1.0") {
		t.Error(`IsValid("1.0") = true`)
	}
}
