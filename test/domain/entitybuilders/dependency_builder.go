//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name        string
	versionSpec string
	section     entities.Section
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-crate",
		versionSpec: "1.0.0",
		section:     entities.SectionRuntime,
	}
}

// WithName sets the package name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithVersionSpec sets the raw version requirement.
func (b *DependencyBuilder) WithVersionSpec(spec string) *DependencyBuilder {
	b.versionSpec = spec
	return b
}

// WithSection sets the manifest section the dependency lives in.
func (b *DependencyBuilder) WithSection(section entities.Section) *DependencyBuilder {
	b.section = section
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		Name:        b.name,
		VersionSpec: b.versionSpec,
		Section:     b.section,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-crate"
	b.versionSpec = "1.0.0"
	b.section = entities.SectionRuntime
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		versionSpec: b.versionSpec,
		section:     b.section,
	}
}
