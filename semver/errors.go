package semver

import (
	"fmt"
)

// FormatError reports the first grammar violation found while parsing a
// version string. Offset is the 0-based index of the exact character that
// invalidated the match, which makes the error suitable for caret-style
// diagnostics.
type FormatError struct {
	Input  string
	Offset int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid semantic version %q at offset %d", e.Input, e.Offset)
}

// ArgumentError reports an invalid field value passed to New, Next, or With.
// Unlike FormatError it names the offending field rather than a character
// position.
type ArgumentError struct {
	Field  Field
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TypeError reports a With value whose kind does not match the target field,
// such as a string supplied for the major version. Values are never coerced.
type TypeError struct {
	Field Field
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("wrong value type %T for %s field", e.Value, e.Field)
}
