//go:build unit

package commands_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargoupdate/internal/domain/commands"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/test/infrastructure/repositorydoubles"
)

func TestManifestWriter(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite every planned dependency keeping its operator", func(t *testing.T) {
		t.Parallel()

		// given
		doc := &repositorydoubles.SpyManifestDocument{}
		writer := commands.NewManifestWriter(&repositorydoubles.SpyManifestRepository{})
		plan := []entities.Update{
			{Dependency: dep("foo", "^1.0"), Latest: version(t, "1.4.0")},
			{Dependency: dep("bar", "0.3"), Latest: version(t, "0.4.1")},
		}

		// when
		err := writer.ApplyPlan(doc, plan)

		// then
		require.NoError(t, err)
		assert.Equal(t, []repositorydoubles.SetVersionCall{
			{Name: "foo", Section: entities.SectionRuntime, Spec: "^1.4.0"},
			{Name: "bar", Section: entities.SectionRuntime, Spec: "0.4.1"},
		}, doc.SetCalls)
	})

	t.Run("should stop at the first failed edit", func(t *testing.T) {
		t.Parallel()

		// given
		doc := &repositorydoubles.SpyManifestDocument{
			SetErrs: map[string]error{"foo": entities.ErrUnsupportedFormat},
		}
		writer := commands.NewManifestWriter(&repositorydoubles.SpyManifestRepository{})
		plan := []entities.Update{
			{Dependency: dep("foo", "1.0"), Latest: version(t, "1.4.0")},
			{Dependency: dep("bar", "0.3"), Latest: version(t, "0.4.1")},
		}

		// when
		err := writer.ApplyPlan(doc, plan)

		// then
		require.ErrorIs(t, err, entities.ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), "foo")
		assert.Empty(t, doc.SetCalls)
	})

	t.Run("should wrap a failed commit", func(t *testing.T) {
		t.Parallel()

		// given
		saveErr := errors.New("disk full")
		manifests := &repositorydoubles.SpyManifestRepository{SaveErr: saveErr}
		writer := commands.NewManifestWriter(manifests)

		// when
		err := writer.Commit(&repositorydoubles.SpyManifestDocument{}, "Cargo.toml")

		// then
		require.ErrorIs(t, err, saveErr)
		assert.Empty(t, manifests.SavedPaths)
	})

	t.Run("should mention the manifest path only once", func(t *testing.T) {
		t.Parallel()

		// given
		saveErr := fmt.Errorf("failed to replace %s: %w", "crates/demo/Cargo.toml", os.ErrPermission)
		writer := commands.NewManifestWriter(&repositorydoubles.SpyManifestRepository{SaveErr: saveErr})

		// when
		err := writer.Commit(&repositorydoubles.SpyManifestDocument{}, "crates/demo/Cargo.toml")

		// then
		require.ErrorIs(t, err, os.ErrPermission)
		assert.Equal(t, 1, strings.Count(err.Error(), "crates/demo/Cargo.toml"))
	})
}
