package internal

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/commands"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/infrastructure/controllers"
	"github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all internal providers with the DIG container,
// bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers.
func RegisterProviders(container *dig.Container) error {
	layers := []func(*dig.Container) error{
		repositories.RegisterProviders,
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	}
	for _, register := range layers {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
