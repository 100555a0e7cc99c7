package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// RegistryFactory builds a RegistryRepository from the registry settings of a run.
type RegistryFactory func(settings entities.RegistrySettings) domainRepos.RegistryRepository

// RegistryFactories manages all registered package registry implementations.
type RegistryFactories struct {
	factories map[string]RegistryFactory
}

// NewRegistryFactories creates an empty registry factory set.
func NewRegistryFactories() *RegistryFactories {
	return &RegistryFactories{
		factories: make(map[string]RegistryFactory),
	}
}

// Register adds a factory under the given name (e.g. "crates.io").
func (r *RegistryFactories) Register(name string, factory RegistryFactory) {
	r.factories[name] = factory
}

// Get returns a configured registry instance for the given name.
func (r *RegistryFactories) Get(
	name string,
	settings entities.RegistrySettings,
) (domainRepos.RegistryRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown registry %q (known: %v)", name, r.Names())
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered registry names.
func (r *RegistryFactories) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
