package entities

import (
	"go.uber.org/dig"
)

// SettingsLoader resolves the settings for a run from an optional config path.
type SettingsLoader func(path string) (*Settings, error)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The config path is only known once flags are parsed, so the loader is
	// provided instead of a Settings value.
	return container.Provide(func() SettingsLoader { return LoadSettings })
}
