//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// StubWorktreeRepository implements repositories.WorktreeRepository with a fixed answer.
type StubWorktreeRepository struct {
	Dirty        bool
	Err          error
	CheckedPaths []string
}

var _ repositories.WorktreeRepository = (*StubWorktreeRepository)(nil)

func (s *StubWorktreeRepository) IsDirty(path string) (bool, error) {
	s.CheckedPaths = append(s.CheckedPaths, path)
	return s.Dirty, s.Err
}
