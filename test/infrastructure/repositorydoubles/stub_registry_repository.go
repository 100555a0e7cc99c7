//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with
// canned versions. It is safe for concurrent use.
type StubRegistryRepository struct {
	// --- LatestVersion ---
	Versions map[string]string // name -> version; missing names fail
	Errs     map[string]error  // name -> forced error
	Delay    time.Duration     // simulated latency per lookup

	mu          sync.Mutex
	calls       []string
	inFlight    int
	maxInFlight int
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) Name() string { return "stub" }

func (s *StubRegistryRepository) LatestVersion(_ context.Context, name string) (entities.SemVer, error) {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	if err, ok := s.Errs[name]; ok {
		return entities.SemVer{}, err
	}
	raw, ok := s.Versions[name]
	if !ok {
		return entities.SemVer{}, fmt.Errorf("%w: %s: unexpected status code: 404", entities.ErrRegistry, name)
	}
	return entities.ParseSemVer(raw)
}

// Calls returns the names looked up so far, in completion-independent order.
func (s *StubRegistryRepository) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.calls...)
}

// MaxInFlight returns the highest number of simultaneous lookups observed.
func (s *StubRegistryRepository) MaxInFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}
