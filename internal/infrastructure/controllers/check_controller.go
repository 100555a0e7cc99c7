package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargoupdate/internal/domain/commands"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command      commands.Check
	loadSettings entities.SettingsLoader
	reporter     *Reporter
}

// NewCheckController creates a new CheckController.
func NewCheckController(
	command commands.Check,
	loadSettings entities.SettingsLoader,
	reporter *Reporter,
) *CheckController {
	return &CheckController{command: command, loadSettings: loadSettings, reporter: reporter}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [PACKAGE...]",
		Short: "Check for available updates (default)",
		Long: `List every dependency of Cargo.toml with its latest published version.
Use --outdated to only show the dependencies that can be upgraded.`,
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("outdated", false, "Show only outdated dependencies")
}

// Execute runs the check and prints the report.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	outdated, _ := cmd.Flags().GetBool("outdated")

	result, err := runCheck(cmd, args, it.command, it.loadSettings)
	if err != nil {
		return err
	}
	it.reporter.Render(result, !outdated)
	return nil
}
