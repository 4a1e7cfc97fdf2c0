// Package version exposes build metadata for the ecotracks binary.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// These are overridden at build time via -ldflags "-X ...".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "1.0.4"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the running binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Semver parses the running version. Returns an error if the linker
// injected something that is not a semantic version.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing build version %q: %w", version, err)
	}
	return v, nil
}

// String renders the full version line shown by `ecotracks version`.
func String() string {
	return fmt.Sprintf("ecotracks %s (commit %s, built %s)", GetVersion(), GetGitCommit(), GetBuildDate())
}
