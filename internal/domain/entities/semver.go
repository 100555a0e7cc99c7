package entities

import (
	"fmt"
	"strings"

	mastermindsSemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// SemVer is a three-component semantic version with optional pre-release
// and build metadata.
type SemVer struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease string
	Metadata   string
}

// ParseSemVer parses a strict "MAJOR.MINOR.PATCH[-pre][+meta]" string.
func ParseSemVer(raw string) (SemVer, error) {
	parsed, err := mastermindsSemver.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return SemVer{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, raw, err)
	}
	return SemVer{
		Major:      parsed.Major(),
		Minor:      parsed.Minor(),
		Patch:      parsed.Patch(),
		Prerelease: parsed.Prerelease(),
		Metadata:   parsed.Metadata(),
	}, nil
}

func (v SemVer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		sb.WriteString("-" + v.Prerelease)
	}
	if v.Metadata != "" {
		sb.WriteString("+" + v.Metadata)
	}
	return sb.String()
}

// Compare returns -1, 0 or +1 following semantic version precedence.
// Build metadata does not take part in the ordering.
func (v SemVer) Compare(other SemVer) int {
	return semver.Compare("v"+v.String(), "v"+other.String())
}

// GreaterThan reports whether v is strictly newer than other.
func (v SemVer) GreaterThan(other SemVer) bool {
	return v.Compare(other) > 0
}
