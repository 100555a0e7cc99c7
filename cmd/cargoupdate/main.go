package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargoupdate/internal"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

func buildCommand(controller entities.Controller) *cobra.Command {
	bind := controller.GetBind()
	ctrl := controller // capture for closure
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return ctrl.Execute(command, arguments)
		},
	}
	ctrl.AddFlags(cmd)
	return cmd
}

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	rootCmd := buildCommand(appContext.GetRootController())
	for _, controller := range appContext.GetControllers() {
		rootCmd.AddCommand(buildCommand(controller))
	}
	return rootCmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'cargoupdate': %s", err)
	}
}
