package internal

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/infrastructure/controllers"
)

// AppInternal holds the controllers mounted on the CLI.
type AppInternal struct {
	root        *controllers.RootController
	controllers []entities.Controller
}

// NewAppInternal creates the application context from its controllers.
func NewAppInternal(
	root *controllers.RootController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{root: root, controllers: *subcommands}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.RootController {
	return it.root
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
