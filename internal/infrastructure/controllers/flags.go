package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargoupdate/internal/domain/commands"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

const defaultManifestPath = "Cargo.toml"

// AddPersistentFlags adds the flags shared by the root command and every
// subcommand.
func AddPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (default: auto-detect)")
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.String("manifest-path", defaultManifestPath, "Path to Cargo.toml file")
	flags.BoolP("upgrade", "u", false, "Upgrade dependencies in Cargo.toml (default: dry-run only)")
	flags.BoolP("interactive", "i", false, "Interactive mode - select which packages to upgrade")
	flags.StringArray("reject", nil, "Reject specific packages (won't update these); repeatable")
	flags.Bool("require-clean", false, "Refuse to write Cargo.toml when it has uncommitted changes")
}

// runCheck reads the shared flags, loads settings and executes the check.
func runCheck(
	cmd *cobra.Command,
	args []string,
	command commands.Check,
	loadSettings entities.SettingsLoader,
) (*commands.CheckResult, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	manifestPath, _ := cmd.Flags().GetString("manifest-path")
	upgrade, _ := cmd.Flags().GetBool("upgrade")
	interactive, _ := cmd.Flags().GetBool("interactive")
	rejects, _ := cmd.Flags().GetStringArray("reject")
	requireClean, _ := cmd.Flags().GetBool("require-clean")

	if verbose || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(configPath)
	if err != nil {
		return nil, err
	}

	return command.Execute(cmd.Context(), settings, commands.CheckOptions{
		ManifestPath: manifestPath,
		Upgrade:      upgrade,
		Interactive:  interactive,
		Filters:      args,
		Rejects:      rejects,
		RequireClean: requireClean,
	})
}
