package repositories

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

// ManifestDocument is an editable, formatting-preserving view of a manifest.
type ManifestDocument interface {
	// Dependencies returns every entry of the known dependency sections that
	// carries a version string, in section then document order.
	Dependencies() []entities.Dependency

	// SetDependencyVersion rewrites the version string of one entry in place.
	SetDependencyVersion(name string, section entities.Section, spec string) error

	// Bytes serializes the document. Untouched content is byte-identical to
	// the loaded text.
	Bytes() []byte
}

// ManifestRepository abstracts manifest storage.
type ManifestRepository interface {
	// Load reads and parses the manifest at path; failures wrap entities.ErrParse.
	Load(path string) (ManifestDocument, error)

	// Save writes the document to path, replacing the file atomically.
	Save(path string, doc ManifestDocument) error
}
