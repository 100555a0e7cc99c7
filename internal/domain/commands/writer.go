package commands

import (
	"fmt"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// ManifestWriter applies an upgrade plan to a manifest and stores it.
type ManifestWriter struct {
	manifests repositories.ManifestRepository
}

// NewManifestWriter creates a writer storing through the given repository.
func NewManifestWriter(manifests repositories.ManifestRepository) *ManifestWriter {
	return &ManifestWriter{manifests: manifests}
}

// ApplyPlan rewrites every planned dependency to its latest version, keeping
// the operator of the current spec. It stops at the first failure; the
// caller must not commit a document whose plan failed.
func (w *ManifestWriter) ApplyPlan(doc repositories.ManifestDocument, plan []entities.Update) error {
	for _, update := range plan {
		dep := update.Dependency
		if err := doc.SetDependencyVersion(dep.Name, dep.Section, update.NewSpec()); err != nil {
			return fmt.Errorf("failed to update %s in [%s]: %w", dep.Name, dep.Section.Key(), err)
		}
	}
	return nil
}

// Commit writes the document to path.
func (w *ManifestWriter) Commit(doc repositories.ManifestDocument, path string) error {
	if err := w.manifests.Save(path, doc); err != nil {
		return fmt.Errorf("failed to commit manifest: %w", err)
	}
	return nil
}
