package entities

// Section identifies the manifest table a dependency was declared in.
type Section int

const (
	SectionRuntime Section = iota
	SectionDev
	SectionBuild
)

// AllSections lists the dependency sections in manifest reading order.
func AllSections() []Section {
	return []Section{SectionRuntime, SectionDev, SectionBuild}
}

// Key returns the manifest table name of the section.
func (s Section) Key() string {
	switch s {
	case SectionRuntime:
		return "dependencies"
	case SectionDev:
		return "dev-dependencies"
	case SectionBuild:
		return "build-dependencies"
	default:
		return ""
	}
}

func (s Section) String() string { return s.Key() }

// Dependency represents a versioned dependency declared in a manifest.
type Dependency struct {
	Name        string  // Package name as written in the manifest key
	VersionSpec string  // Version requirement, e.g. "^1.0.0", "0.21", ">=0.5"
	Section     Section // Section the entry belongs to
}
