//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

func TestExtractOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     string
		expected string
	}{
		{"^1.0.0", "^"},
		{"~0.4", "~"},
		{">=0.5", ">="},
		{"<=2.0", "<="},
		{">1", ">"},
		{"<3.1.4", "<"},
		{"=1.2.3", "="},
		{"1.2.3", ""},
		{"  >= 1.0", ">="},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run("should extract operator of "+tt.spec, func(t *testing.T) {
			t.Parallel()

			// given
			spec := tt.spec

			// when
			result := entities.ExtractOperator(spec)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplyOperator(t *testing.T) {
	t.Parallel()

	t.Run("should prefix the version with the operator", func(t *testing.T) {
		t.Parallel()

		// given
		operator := "~"

		// when
		result := entities.ApplyOperator(operator, "1.5.0")

		// then
		assert.Equal(t, "~1.5.0", result)
	})

	t.Run("should keep a bare version bare", func(t *testing.T) {
		t.Parallel()

		// given
		operator := ""

		// when
		result := entities.ApplyOperator(operator, "1.5.0")

		// then
		assert.Equal(t, "1.5.0", result)
	})

	t.Run("should round trip with extract operator", func(t *testing.T) {
		t.Parallel()

		// given
		spec := ">=0.5"

		// when
		result := entities.ApplyOperator(entities.ExtractOperator(spec), "0.7.2")

		// then
		assert.Equal(t, ">=0.7.2", result)
	})
}

func TestToComparable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     string
		expected string
	}{
		{"1.2.3", "1.2.3"},
		{"^1.0.0", "1.0.0"},
		{"0.21", "0.21.0"},
		{"2", "2.0.0"},
		{"~0.4", "0.4.0"},
		{">= 0.5", "0.5.0"},
		{"1.0.0-beta.1", "1.0.0-beta.1"},
		{"1.0-alpha", "1.0.0-alpha"},
	}

	for _, tt := range tests {
		t.Run("should reduce "+tt.spec+" to "+tt.expected, func(t *testing.T) {
			t.Parallel()

			// given
			spec := tt.spec

			// when
			result, err := entities.ToComparable(spec)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}

	t.Run("should reject wildcard and compound requirements", func(t *testing.T) {
		t.Parallel()

		for _, spec := range []string{"*", "1.*", ">=1, <2", "latest", ""} {
			// when
			_, err := entities.ToComparable(spec)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidVersion, spec)
		}
	})
}
