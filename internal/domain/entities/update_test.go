//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/test/domain/entitybuilders"
)

func mustParse(t *testing.T, raw string) entities.SemVer {
	t.Helper()
	version, err := entities.ParseSemVer(raw)
	require.NoError(t, err)
	return version
}

func TestClassifySeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current  string
		latest   string
		expected entities.Severity
	}{
		{"1.0.0", "2.0.0", entities.SeverityMajor},
		{"1.0.0", "1.1.0", entities.SeverityMinor},
		{"1.0.0", "1.0.1", entities.SeverityPatch},
		{"0.21.0", "0.22.0", entities.SeverityMinor},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.current+" to "+tt.latest+" as "+tt.expected.String(), func(t *testing.T) {
			t.Parallel()

			// given
			current := mustParse(t, tt.current)
			latest := mustParse(t, tt.latest)

			// when
			result := entities.ClassifySeverity(current, latest)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestUpdateNewSpec(t *testing.T) {
	t.Parallel()

	t.Run("should keep the caret operator", func(t *testing.T) {
		t.Parallel()

		// given
		update := entities.Update{
			Dependency: entitybuilders.NewDependencyBuilder().WithVersionSpec("^1.0").BuildDependency(),
			Latest:     mustParse(t, "1.4.2"),
		}

		// when
		result := update.NewSpec()

		// then
		assert.Equal(t, "^1.4.2", result)
	})

	t.Run("should write a bare version for a bare spec", func(t *testing.T) {
		t.Parallel()

		// given
		update := entities.Update{
			Dependency: entitybuilders.NewDependencyBuilder().WithVersionSpec("0.21").BuildDependency(),
			Latest:     mustParse(t, "0.22.1"),
		}

		// when
		result := update.NewSpec()

		// then
		assert.Equal(t, "0.22.1", result)
	})
}

func TestSectionKey(t *testing.T) {
	t.Parallel()

	t.Run("should name every section after its manifest table", func(t *testing.T) {
		t.Parallel()

		// when
		keys := make([]string, 0)
		for _, section := range entities.AllSections() {
			keys = append(keys, section.Key())
		}

		// then
		assert.Equal(t, []string{"dependencies", "dev-dependencies", "build-dependencies"}, keys)
	})
}
