package semver

import "strconv"

// Next returns a new version with the given field incremented under the
// field's transition rules:
//
//   - FieldMajor: major+1, minor and patch reset to 0, pre-release and
//     metadata dropped.
//   - FieldMinor: minor+1, patch reset to 0, pre-release and metadata dropped.
//   - FieldPatch: patch+1, pre-release and metadata dropped.
//   - FieldPrerelease: the last pre-release identifier is incremented when
//     numeric, otherwise a numeric identifier "1" is appended; metadata is
//     dropped. A stable version has no pre-release to increment and fails.
//   - FieldMetadata: always fails; build metadata has no increment semantics.
//
// Failures are reported as *ArgumentError.
func (v Version) Next(field Field) (Version, error) {
	switch field {
	case FieldMajor:
		return Version{major: v.major + 1}, nil
	case FieldMinor:
		return Version{major: v.major, minor: v.minor + 1}, nil
	case FieldPatch:
		return Version{major: v.major, minor: v.minor, patch: v.patch + 1}, nil
	case FieldPrerelease:
		if len(v.prerelease) == 0 {
			return Version{}, &ArgumentError{Field: FieldPrerelease, Reason: "stable version cannot increment undefined pre-release"}
		}
		ids := make([]string, len(v.prerelease))
		copy(ids, v.prerelease)
		last := ids[len(ids)-1]
		if n, ok := numericValue(last); ok {
			ids[len(ids)-1] = strconv.Itoa(n + 1)
		} else {
			ids = append(ids, "1")
		}
		return Version{major: v.major, minor: v.minor, patch: v.patch, prerelease: ids}, nil
	case FieldMetadata:
		return Version{}, &ArgumentError{Field: FieldMetadata, Reason: "build metadata has no increment semantics"}
	default:
		return Version{}, &ArgumentError{Field: field, Reason: "unknown field"}
	}
}

// With returns a copy of the version with exactly one field replaced.
// FieldMajor, FieldMinor, and FieldPatch take an int; FieldPrerelease and
// FieldMetadata take a dot-separated identifier string, where an empty string
// clears the part. A value of the wrong kind fails with a *TypeError instead
// of being coerced; the replacement value itself is validated under the same
// rules as New and Parse.
func (v Version) With(field Field, value any) (Version, error) {
	switch field {
	case FieldMajor, FieldMinor, FieldPatch:
		n, ok := value.(int)
		if !ok {
			return Version{}, &TypeError{Field: field, Value: value}
		}
		if n < 0 {
			return Version{}, &ArgumentError{Field: field, Reason: "negative version number"}
		}
		w := v
		switch field {
		case FieldMajor:
			w.major = n
		case FieldMinor:
			w.minor = n
		default:
			w.patch = n
		}
		return w, nil
	case FieldPrerelease, FieldMetadata:
		s, ok := value.(string)
		if !ok {
			return Version{}, &TypeError{Field: field, Value: value}
		}
		ids, err := splitIdentifiers(field, s)
		if err != nil {
			return Version{}, err
		}
		w := v
		if field == FieldPrerelease {
			w.prerelease = ids
		} else {
			w.metadata = ids
		}
		return w, nil
	default:
		return Version{}, &ArgumentError{Field: field, Reason: "unknown field"}
	}
}
