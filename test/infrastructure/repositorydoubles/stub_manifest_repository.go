//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
type SpyManifestRepository struct {
	// --- Load ---
	Document    repositories.ManifestDocument
	LoadErr     error
	LoadedPaths []string

	// --- Save ---
	SaveErr    error
	SavedPaths []string
	SavedBytes [][]byte
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) Load(path string) (repositories.ManifestDocument, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Document, nil
}

func (s *SpyManifestRepository) Save(path string, doc repositories.ManifestDocument) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.SavedPaths = append(s.SavedPaths, path)
	s.SavedBytes = append(s.SavedBytes, doc.Bytes())
	return nil
}

// SetVersionCall records a single invocation of SetDependencyVersion.
type SetVersionCall struct {
	Name    string
	Section entities.Section
	Spec    string
}

// SpyManifestDocument implements repositories.ManifestDocument in memory.
type SpyManifestDocument struct {
	Deps     []entities.Dependency
	SetErrs  map[string]error // name -> forced error
	SetCalls []SetVersionCall
	Content  []byte
}

var _ repositories.ManifestDocument = (*SpyManifestDocument)(nil)

func (d *SpyManifestDocument) Dependencies() []entities.Dependency { return d.Deps }

func (d *SpyManifestDocument) SetDependencyVersion(name string, section entities.Section, spec string) error {
	if err, ok := d.SetErrs[name]; ok {
		return err
	}
	d.SetCalls = append(d.SetCalls, SetVersionCall{Name: name, Section: section, Spec: spec})
	return nil
}

func (d *SpyManifestDocument) Bytes() []byte { return d.Content }
