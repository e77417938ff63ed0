// Package version exposes the build and release information of an
// application at runtime.
//
// It captures the Git tag, full and short commit hashes, build date, Go
// runtime version, target platform, and the module list of the build. The
// values are set at build time via linker flags, with debug.BuildInfo as an
// automatic fallback for VCS metadata when no flags were provided.
//
// Typical Makefile wiring:
//
//	VERSION_PACKAGE := github.com/pdfclown/go-common/version
//
//	go build -ldflags "-X $(VERSION_PACKAGE).GitTag=$(shell git describe --tags) \
//	                   -X $(VERSION_PACKAGE).GitCommit=$(shell git rev-parse HEAD) \
//	                   -X $(VERSION_PACKAGE).GitShort=$(shell git rev-parse --short HEAD) \
//	                   -X $(VERSION_PACKAGE).BuildDate=$(shell date +%FT%T%z)"
//
// Tag parsing and comparison delegate to the semver package; a leading "v" on
// the tag, as produced by git describe, is accepted and stripped.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/pdfclown/go-common/apperror"
	"github.com/pdfclown/go-common/logging"
	"github.com/pdfclown/go-common/semver"
)

var (
	// GitTag is the release tag of the application, typically "vX.Y.Z".
	GitTag = "v0.0.0"
	// GitCommit is the full commit hash of the application at build time.
	GitCommit = "unknown"
	// GitShort is the short commit hash of the application at build time.
	GitShort = "unknown"
	// BuildDate is the date and time when the application was built.
	BuildDate = "unknown"
	// GoVersion is the Go runtime version used to build the application.
	GoVersion = runtime.Version()
	// Platform is the target platform, formatted as "GOOS/GOARCH".
	Platform = runtime.GOOS + "/" + runtime.GOARCH
	// Modules lists the Go modules of the build, from debug.BuildInfo.
	Modules = make([]*Module, 0)
)

var logger = logging.GetPackageLogger("version")

func init() {
	info, available := debug.ReadBuildInfo()
	if !available {
		return
	}

	for _, dep := range info.Deps {
		Modules = append(Modules, newModule(dep))
	}

	// Linker flags win over BuildInfo.
	if GitCommit != "unknown" || BuildDate != "unknown" {
		return
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		GitTag = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if setting.Value != "" {
				GitCommit = setting.Value
				GitShort = GitCommit
				if len(GitShort) >= 7 {
					GitShort = GitShort[:7]
				}
			}
		case "vcs.time":
			BuildDate = setting.Value
		}
	}
}

// Release bundles the version information of the application.
type Release struct {
	GitTag    string    `json:"gitTag" yaml:"gitTag"`
	GitCommit string    `json:"gitCommit" yaml:"gitCommit"`
	GitShort  string    `json:"gitShort" yaml:"gitShort"`
	BuildDate string    `json:"buildDate" yaml:"buildDate"`
	GoVersion string    `json:"goVersion" yaml:"goVersion"`
	Platform  string    `json:"platform" yaml:"platform"`
	Modules   []*Module `json:"modules" yaml:"modules"`
}

// Module describes a module dependency of the build.
type Module struct {
	Path    string  `json:"path" yaml:"path"`
	Version string  `json:"version" yaml:"version"`
	Sum     string  `json:"sum,omitempty" yaml:"sum,omitempty"`
	Replace *Module `json:"replace,omitempty" yaml:"replace,omitempty"`
}

func newModule(dep *debug.Module) *Module {
	m := &Module{Path: dep.Path, Version: dep.Version, Sum: dep.Sum}
	if dep.Replace != nil {
		m.Replace = newModule(dep.Replace)
	}
	return m
}

// Get returns the current release information of the application.
func Get() *Release {
	return &Release{
		GitTag:    GitTag,
		GitCommit: GitCommit,
		GitShort:  GitShort,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
		Modules:   Modules,
	}
}

// Semantic returns the build tag as a semantic version. It fails with the
// parse error of the semver package when the tag is not a valid version.
func Semantic() (semver.Version, error) {
	return ParseTag(GitTag)
}

// String returns the build tag without its "v" prefix.
func String() string {
	return strings.TrimPrefix(GitTag, "v")
}

// IsSemver reports whether tag is a valid semantic version, ignoring a
// leading "v".
func IsSemver(tag string) bool {
	return semver.IsValid(strings.TrimPrefix(tag, "v"))
}

// ParseTag parses a Git tag as a semantic version, ignoring a leading "v".
func ParseTag(tag string) (semver.Version, error) {
	return semver.Parse(strings.TrimPrefix(tag, "v"))
}

// Major returns the major version number of the build tag, or 0 when the tag
// is not a valid semantic version.
func Major() int {
	return segment(semver.Version.Major)
}

// Minor returns the minor version number of the build tag, or 0 when the tag
// is not a valid semantic version.
func Minor() int {
	return segment(semver.Version.Minor)
}

// Patch returns the patch version number of the build tag, or 0 when the tag
// is not a valid semantic version.
func Patch() int {
	return segment(semver.Version.Patch)
}

func segment(get func(semver.Version) int) int {
	v, err := Semantic()
	if err != nil {
		logger.Error().Fields(logging.F("tag", GitTag)).Err(err).Msg("invalid git tag format")
		return 0
	}
	return get(v)
}

// Compare orders two Git tags as semantic versions under the total order of
// the semver package.
func Compare(tag1, tag2 string) (int, error) {
	v1, err := ParseTag(tag1)
	if err != nil {
		return 0, apperror.NewErrorf("parsing tag %q failed", tag1).AddError(err)
	}
	v2, err := ParseTag(tag2)
	if err != nil {
		return 0, apperror.NewErrorf("parsing tag %q failed", tag2).AddError(err)
	}
	return semver.Compare(v1, v2), nil
}
