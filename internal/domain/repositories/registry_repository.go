package repositories

import (
	"context"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

// RegistryRepository abstracts the package index queried for published versions.
type RegistryRepository interface {
	// Name returns the registry identifier (e.g. "crates.io").
	Name() string

	// LatestVersion returns the newest published version of a package.
	// Failures wrap entities.ErrRegistry.
	LatestVersion(ctx context.Context, name string) (entities.SemVer, error)
}
