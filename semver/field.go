package semver

// Field identifies one of the five parts of a semantic version. It selects the
// target of Next and With operations.
type Field int

// The fields of a semantic version, in grammar order.
const (
	FieldMajor Field = iota
	FieldMinor
	FieldPatch
	FieldPrerelease
	FieldMetadata
)

// String returns the lower-case field name.
func (f Field) String() string {
	switch f {
	case FieldMajor:
		return "major"
	case FieldMinor:
		return "minor"
	case FieldPatch:
		return "patch"
	case FieldPrerelease:
		return "prerelease"
	case FieldMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}
