//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// StubSelectorRepository implements repositories.SelectorRepository by
// picking the updates whose names are listed in Chosen.
type StubSelectorRepository struct {
	Chosen   []string
	Err      error
	Received [][]entities.Update
}

var _ repositories.SelectorRepository = (*StubSelectorRepository)(nil)

func (s *StubSelectorRepository) Select(updates []entities.Update) ([]entities.Update, error) {
	s.Received = append(s.Received, updates)
	if s.Err != nil {
		return nil, s.Err
	}
	chosen := make(map[string]bool, len(s.Chosen))
	for _, name := range s.Chosen {
		chosen[name] = true
	}
	result := make([]entities.Update, 0, len(updates))
	for _, update := range updates {
		if chosen[update.Dependency.Name] {
			result = append(result, update)
		}
	}
	return result, nil
}
