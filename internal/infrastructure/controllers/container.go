package controllers

import (
	"os"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *Reporter { return NewReporter(os.Stdout) }); err != nil {
		return err
	}

	// Register controller constructors
	if err := container.Provide(NewRootController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	checkController *CheckController,
) *[]entities.Controller {
	return &[]entities.Controller{
		checkController,
	}
}
