package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) (*CheckResult, error)
}

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	ManifestPath string
	Upgrade      bool     // Write the upgrades into the manifest
	Interactive  bool     // Let the user pick updates; implies Upgrade
	Filters      []string // Only check these names (glob "*" supported)
	Rejects      []string // Never check these names (glob "*" supported)
	RequireClean bool     // Refuse to write a manifest with uncommitted changes
}

// CheckResult summarizes a run for the presentation layer.
type CheckResult struct {
	ManifestPath string
	Dependencies []entities.Dependency
	Latest       map[string]entities.SemVer
	Updates      []entities.Update
	Applied      []entities.Update
	Upgraded     bool
}

// CheckCommand orchestrates one run:
// load manifest -> extract dependencies -> resolve -> plan -> (select) -> write.
type CheckCommand struct {
	registries *infraRepos.RegistryFactories
	manifests  repositories.ManifestRepository
	worktree   repositories.WorktreeRepository
	selector   repositories.SelectorRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	registries *infraRepos.RegistryFactories,
	manifests repositories.ManifestRepository,
	worktree repositories.WorktreeRepository,
	selector repositories.SelectorRepository,
) *CheckCommand {
	return &CheckCommand{
		registries: registries,
		manifests:  manifests,
		worktree:   worktree,
		selector:   selector,
	}
}

// Execute runs the check and, when requested, the upgrade.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) (*CheckResult, error) {
	if settings == nil {
		settings = entities.DefaultSettings()
	}
	rejects := append(append([]string{}, settings.Reject...), opts.Rejects...)

	logger.Infof("Checking %s", opts.ManifestPath)

	doc, err := it.manifests.Load(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		ManifestPath: opts.ManifestPath,
		Dependencies: doc.Dependencies(),
		Latest:       map[string]entities.SemVer{},
		Updates:      []entities.Update{},
		Applied:      []entities.Update{},
	}
	if len(result.Dependencies) == 0 {
		logger.Info("No dependencies found.")
		return result, nil
	}

	names := make([]string, 0, len(result.Dependencies))
	for _, dep := range result.Dependencies {
		if ShouldCheck(dep.Name, opts.Filters, rejects) {
			names = append(names, dep.Name)
		}
	}

	registry, err := it.registries.Get(infraRepos.CratesIO, settings.Registry)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Resolving %d packages against %s", len(names), registry.Name())
	result.Latest = NewResolver(registry, settings.Registry.Concurrency).ResolveMany(ctx, names)

	result.Updates = ComputeUpdates(result.Dependencies, result.Latest, opts.Filters, rejects)
	if len(result.Updates) == 0 || !(opts.Upgrade || opts.Interactive) {
		return result, nil
	}

	plan := result.Updates
	if opts.Interactive {
		plan, err = it.selector.Select(result.Updates)
		if err != nil {
			return nil, err
		}
		if len(plan) == 0 {
			logger.Info("No packages selected, manifest left unchanged.")
			return result, nil
		}
	}

	if guardErr := it.checkWorktree(opts.ManifestPath, opts.RequireClean || settings.RequireClean); guardErr != nil {
		return nil, guardErr
	}

	writer := NewManifestWriter(it.manifests)
	if applyErr := writer.ApplyPlan(doc, plan); applyErr != nil {
		return nil, applyErr
	}
	if commitErr := writer.Commit(doc, opts.ManifestPath); commitErr != nil {
		return nil, commitErr
	}

	result.Applied = plan
	result.Upgraded = true
	logger.Infof("Upgraded %d dependencies in %s", len(plan), opts.ManifestPath)
	return result, nil
}

// checkWorktree warns about a manifest with uncommitted changes, and refuses
// to write it when requireClean is set.
func (it *CheckCommand) checkWorktree(path string, requireClean bool) error {
	dirty, err := it.worktree.IsDirty(path)
	if err != nil {
		logger.Warnf("Failed to inspect git status of %s: %v (continuing)", path, err)
		return nil
	}
	if !dirty {
		return nil
	}
	if requireClean {
		return fmt.Errorf("%w: %s (commit it or drop --require-clean)", entities.ErrDirtyManifest, path)
	}
	logger.Warnf("%s has uncommitted changes, writing anyway", path)
	return nil
}
