package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

const defaultFileMode = 0o644

// TOMLManifestRepository implements repositories.ManifestRepository for
// Cargo.toml files on the local filesystem.
type TOMLManifestRepository struct{}

// NewTOMLManifestRepository creates a new filesystem manifest repository.
func NewTOMLManifestRepository() repositories.ManifestRepository {
	return &TOMLManifestRepository{}
}

// Load reads and parses the manifest at path.
func (r *TOMLManifestRepository) Load(path string) (repositories.ManifestDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", entities.ErrParse, path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document next to path in a temporary file and renames it
// over the manifest, so a failed write never leaves a truncated manifest.
func (r *TOMLManifestRepository) Save(path string, doc repositories.ManifestDocument) error {
	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmpFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(doc.Bytes()); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write temp manifest: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp manifest: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("failed to close temp manifest: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, mode); chmodErr != nil {
		return fmt.Errorf("failed to set manifest permissions: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("failed to replace %s: %w", path, renameErr)
	}
	committed = true

	logger.Debugf("Wrote %s", path)
	return nil
}
