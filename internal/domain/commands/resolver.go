package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// Resolver looks up the latest published versions of many packages at once.
type Resolver struct {
	registry    repositories.RegistryRepository
	concurrency int
}

// NewResolver creates a resolver that keeps at most concurrency lookups in
// flight. A non-positive value leaves the fan-out unbounded.
func NewResolver(registry repositories.RegistryRepository, concurrency int) *Resolver {
	return &Resolver{registry: registry, concurrency: concurrency}
}

// ResolveLatest queries the registry for one package.
func (r *Resolver) ResolveLatest(ctx context.Context, name string) (entities.SemVer, error) {
	return r.registry.LatestVersion(ctx, name)
}

// ResolveMany runs one lookup per unique name and returns the successful
// ones. A failed lookup is logged and left out of the result; it never
// aborts the batch.
func (r *Resolver) ResolveMany(ctx context.Context, names []string) map[string]entities.SemVer {
	unique := uniqueNames(names)

	// Each goroutine owns one slot, so the join needs no locking.
	slots := make([]*entities.SemVer, len(unique))

	var group errgroup.Group
	if r.concurrency > 0 {
		group.SetLimit(r.concurrency)
	}
	for i, name := range unique {
		group.Go(func() error {
			version, err := r.ResolveLatest(ctx, name)
			if err != nil {
				logger.Warnf("[%s] Failed to resolve %s: %v", r.registry.Name(), name, err)
				return nil
			}
			logger.Debugf("[%s] %s latest is %s", r.registry.Name(), name, version)
			slots[i] = &version
			return nil
		})
	}
	_ = group.Wait()

	resolved := make(map[string]entities.SemVer, len(unique))
	for i, name := range unique {
		if slots[i] != nil {
			resolved[name] = *slots[i]
		}
	}
	return resolved
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
