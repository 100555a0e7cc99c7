package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargoupdate/internal/domain/commands"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

// RootController handles the root command: check the manifest and,
// with -u, upgrade it.
type RootController struct {
	command      commands.Check
	loadSettings entities.SettingsLoader
	reporter     *Reporter
}

// NewRootController creates a new RootController.
func NewRootController(
	command commands.Check,
	loadSettings entities.SettingsLoader,
	reporter *Reporter,
) *RootController {
	return &RootController{command: command, loadSettings: loadSettings, reporter: reporter}
}

// GetBind returns the Cobra command metadata for the root controller.
func (it *RootController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cargoupdate [PACKAGE...]",
		Short: "Upgrade your Cargo.toml dependencies to the latest versions",
		Long: `Check the dependencies declared in Cargo.toml against crates.io and
upgrade them to their latest versions.

Version operators (^, ~, >=, ...) and every other byte of the manifest
are preserved; only the version strings change.

Usage modes:
  cargoupdate                 Show available updates (dry run)
  cargoupdate -u              Write the updates into Cargo.toml
  cargoupdate -i              Pick the updates to write interactively
  cargoupdate 'serde*'        Only check packages matching the patterns
  cargoupdate --reject tokio  Never update the given packages`,
	}
}

// AddFlags registers the flags shared with every subcommand.
func (it *RootController) AddFlags(cmd *cobra.Command) {
	AddPersistentFlags(cmd)
}

// Execute runs the check and prints the outdated dependencies only.
func (it *RootController) Execute(cmd *cobra.Command, args []string) error {
	result, err := runCheck(cmd, args, it.command, it.loadSettings)
	if err != nil {
		return err
	}
	it.reporter.Render(result, false)
	return nil
}
