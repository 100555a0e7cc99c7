package entities

// Severity classifies how far an update moves a dependency.
type Severity int

const (
	SeverityPatch Severity = iota
	SeverityMinor
	SeverityMajor
)

func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "major"
	case SeverityMinor:
		return "minor"
	default:
		return "patch"
	}
}

// Update is a single entry of an upgrade plan.
type Update struct {
	Dependency Dependency
	Current    SemVer
	Latest     SemVer
	Severity   Severity
}

// NewSpec returns the rewritten version spec, keeping the operator of the
// dependency's current spec.
func (u Update) NewSpec() string {
	return ApplyOperator(ExtractOperator(u.Dependency.VersionSpec), u.Latest.String())
}

// ClassifySeverity reports whether moving from current to latest is a
// major, minor or patch update. It is used for presentation only.
func ClassifySeverity(current, latest SemVer) Severity {
	if latest.Major > current.Major {
		return SeverityMajor
	}
	if latest.Minor > current.Minor {
		return SeverityMinor
	}
	return SeverityPatch
}
