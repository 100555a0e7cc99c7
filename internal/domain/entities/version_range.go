package entities

import (
	"strings"
)

const semverComponents = 3

// rangeOperators is ordered so that two-character operators are tried
// before their one-character prefixes.
var rangeOperators = []string{">=", "<=", "^", "~", ">", "<", "="} //nolint:gochecknoglobals // immutable table

// ExtractOperator returns the comparison operator a version spec starts
// with, or an empty string for a bare version.
func ExtractOperator(spec string) string {
	trimmed := strings.TrimSpace(spec)
	for _, op := range rangeOperators {
		if strings.HasPrefix(trimmed, op) {
			return op
		}
	}
	return ""
}

// ApplyOperator wraps a new version with the operator of the original spec,
// so an upgrade keeps the user's constraint style.
func ApplyOperator(operator, version string) string {
	return operator + version
}

// StripOperator removes the leading operator and surrounding whitespace.
func StripOperator(spec string) string {
	trimmed := strings.TrimSpace(spec)
	return strings.TrimSpace(strings.TrimPrefix(trimmed, ExtractOperator(trimmed)))
}

// ToComparable reduces a version spec to a semantic version: the operator
// is stripped and missing numeric components are padded with zero
// ("2" -> "2.0.0", "0.21" -> "0.21.0").
func ToComparable(spec string) (SemVer, error) {
	return ParseSemVer(padComponents(StripOperator(spec)))
}

// padComponents pads the numeric core of a version, keeping any
// pre-release or build suffix in place.
func padComponents(version string) string {
	core, suffix := version, ""
	if idx := strings.IndexAny(version, "-+"); idx >= 0 {
		core, suffix = version[:idx], version[idx:]
	}
	if core == "" {
		return version
	}
	parts := strings.Split(core, ".")
	for len(parts) < semverComponents {
		parts = append(parts, "0")
	}
	return strings.Join(parts, ".") + suffix
}
