package versions

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is tolerated.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// MinorBase returns "<major>.<minor>.0" for version.
func MinorBase(version string) (string, error) {
	v, err := parseSemver(version)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}
	return fmt.Sprintf("%d.%d.0", v.Major(), v.Minor()), nil
}

// Valid reports whether version parses as semver.
func Valid(version string) bool {
	_, err := parseSemver(version)
	return err == nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
