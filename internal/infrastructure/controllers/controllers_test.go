//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/infrastructure/controllers"
	"github.com/rios0rios0/cargoupdate/test/domain/commanddoubles"
)

// newCommand mounts controller like main does: the root command owns the
// persistent flags and any other controller becomes its subcommand.
func newCommand(t *testing.T, controller entities.Controller, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	controller.AddFlags(cmd)
	if _, isRoot := controller.(*controllers.RootController); !isRoot {
		root := &cobra.Command{Use: "cargoupdate"}
		controllers.AddPersistentFlags(root)
		root.AddCommand(cmd)
	}

	require.NoError(t, cmd.ParseFlags(args))
	cmd.SetContext(context.Background())
	return cmd
}

func defaultSettingsLoader(string) (*entities.Settings, error) {
	return entities.DefaultSettings(), nil
}

func TestRootController(t *testing.T) {
	t.Parallel()

	t.Run("should pass flags and package filters to the check command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		var out bytes.Buffer
		controller := controllers.NewRootController(stub, defaultSettingsLoader, controllers.NewPlainReporter(&out))
		cmd := newCommand(t, controller,
			"-u", "--manifest-path", "sub/Cargo.toml", "--reject", "tokio", "--reject", "rand", "--require-clean",
		)

		// when
		err := controller.Execute(cmd, []string{"serde*"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "sub/Cargo.toml", stub.LastOpts.ManifestPath)
		assert.True(t, stub.LastOpts.Upgrade)
		assert.False(t, stub.LastOpts.Interactive)
		assert.True(t, stub.LastOpts.RequireClean)
		assert.Equal(t, []string{"serde*"}, stub.LastOpts.Filters)
		assert.Equal(t, []string{"tokio", "rand"}, stub.LastOpts.Rejects)
		assert.Equal(t, entities.DefaultRegistryURL, stub.LastSettings.Registry.URL)
		assert.Equal(t, "No dependencies found.\n", out.String())
	})

	t.Run("should default the manifest path", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		controller := controllers.NewRootController(stub, defaultSettingsLoader, controllers.NewPlainReporter(&bytes.Buffer{}))
		cmd := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Cargo.toml", stub.LastOpts.ManifestPath)
		assert.False(t, stub.LastOpts.Upgrade)
	})

	t.Run("should return the check error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{ExecuteErr: entities.ErrParse}
		controller := controllers.NewRootController(stub, defaultSettingsLoader, controllers.NewPlainReporter(&bytes.Buffer{}))
		cmd := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrParse)
	})

	t.Run("should fail before checking when the settings cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		var gotPath string
		loader := func(path string) (*entities.Settings, error) {
			gotPath = path
			return nil, errors.New("bad config")
		}
		controller := controllers.NewRootController(stub, loader, controllers.NewPlainReporter(&bytes.Buffer{}))
		cmd := newCommand(t, controller, "-c", "custom.yaml")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Equal(t, "custom.yaml", gotPath)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestCheckController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the interactive flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		controller := controllers.NewCheckController(stub, defaultSettingsLoader, controllers.NewPlainReporter(&bytes.Buffer{}))
		cmd := newCommand(t, controller, "-i", "--outdated")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.True(t, stub.LastOpts.Interactive)
	})

	t.Run("should inherit the shared flags of the root command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		controller := controllers.NewCheckController(stub, defaultSettingsLoader, controllers.NewPlainReporter(&bytes.Buffer{}))
		cmd := newCommand(t, controller, "-u", "--require-clean", "--manifest-path", "other/Cargo.toml")

		// when
		err := controller.Execute(cmd, []string{"serde"})

		// then
		require.NoError(t, err)
		assert.True(t, stub.LastOpts.Upgrade)
		assert.True(t, stub.LastOpts.RequireClean)
		assert.Equal(t, "other/Cargo.toml", stub.LastOpts.ManifestPath)
		assert.Equal(t, []string{"serde"}, stub.LastOpts.Filters)
	})

	t.Run("should expose its command metadata", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewCheckController(
			&commanddoubles.StubCheckCommand{}, defaultSettingsLoader, controllers.NewPlainReporter(&bytes.Buffer{}),
		)

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "check [PACKAGE...]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}
