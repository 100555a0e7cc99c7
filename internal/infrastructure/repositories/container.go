package repositories

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/cargoupdate/internal/domain/repositories"
	cratesRepo "github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories/cratesio"
	gitRepo "github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories/git"
	manifestRepo "github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories/manifest"
	termRepo "github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories/terminal"
	"go.uber.org/dig"
)

// CratesIO is the name the crates.io registry is registered under.
const CratesIO = "crates.io"

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register registry factories; the concrete client depends on settings
	// that are only known once the config file is loaded.
	if err := container.Provide(func() *RegistryFactories {
		reg := NewRegistryFactories()
		reg.Register(CratesIO, func(settings entities.RegistrySettings) domainRepos.RegistryRepository {
			return cratesRepo.NewCratesIORegistryRepository(settings.URL, settings.UserAgent, nil)
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(manifestRepo.NewTOMLManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewGitWorktreeRepository); err != nil {
		return err
	}
	if err := container.Provide(termRepo.NewTerminalSelectorRepository); err != nil {
		return err
	}

	return nil
}
