package semver

import (
	"fmt"
	"strconv"
)

// Parse converts the canonical string form
// "MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]" into a Version. The input is
// scanned left to right and the first grammar violation aborts the parse with
// a *FormatError carrying the offset of the offending character. Leading
// zeros in the numeric core fields and in numeric pre-release identifiers are
// violations, reported at the digit that extends the zero.
func Parse(s string) (Version, error) {
	p := parser{input: s}

	major, err := p.number()
	if err != nil {
		return Version{}, err
	}
	if err := p.expect('.'); err != nil {
		return Version{}, err
	}
	minor, err := p.number()
	if err != nil {
		return Version{}, err
	}
	if err := p.expect('.'); err != nil {
		return Version{}, err
	}
	patch, err := p.number()
	if err != nil {
		return Version{}, err
	}

	v := Version{major: major, minor: minor, patch: patch}

	if p.accept('-') {
		v.prerelease, err = p.identifiers(FieldPrerelease)
		if err != nil {
			return Version{}, err
		}
	}
	if p.accept('+') {
		v.metadata, err = p.identifiers(FieldMetadata)
		if err != nil {
			return Version{}, err
		}
	}

	if p.pos != len(p.input) {
		return Version{}, p.fail()
	}
	return v, nil
}

// MustParse is Parse for statically known inputs; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("semver: parse %q: %v", s, err))
	}
	return v
}

// IsValid reports whether s is a valid semantic version string.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// parser is a single-pass scanner over a version string. Every production
// fails with a FormatError pointing at the current position.
type parser struct {
	input string
	pos   int
}

func (p *parser) fail() error {
	return &FormatError{Input: p.input, Offset: p.pos}
}

// accept consumes c if it is the next character.
func (p *parser) accept(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// expect consumes c or fails at the current position.
func (p *parser) expect(c byte) error {
	if !p.accept(c) {
		return p.fail()
	}
	return nil
}

// number scans a non-negative decimal without leading zeros. A zero extended
// by further digits fails at the extending digit, since "0" alone would have
// been a complete match.
func (p *parser) number() (int, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.fail()
	}
	if p.input[start] == '0' && p.pos-start > 1 {
		return 0, &FormatError{Input: p.input, Offset: start + 1}
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, &FormatError{Input: p.input, Offset: start}
	}
	return n, nil
}

// identifiers scans a non-empty dot-separated identifier sequence. For the
// pre-release field, purely numeric identifiers must not carry leading zeros.
func (p *parser) identifiers(field Field) ([]string, error) {
	var ids []string
	for {
		id, err := p.identifier(field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.accept('.') {
			return ids, nil
		}
	}
}

func (p *parser) identifier(field Field) (string, error) {
	start := p.pos
	for p.pos < len(p.input) && isWordByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.fail()
	}
	id := p.input[start:p.pos]
	if field == FieldPrerelease && isNumeric(id) && len(id) > 1 && id[0] == '0' {
		return "", &FormatError{Input: p.input, Offset: start + 1}
	}
	return id, nil
}

func isWordByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-'
}
