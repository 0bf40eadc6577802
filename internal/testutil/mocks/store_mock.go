package mocks

import (
	"context"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
)

// MockStore is a repository.Store backed by mock repositories. InTx simply
// invokes fn with the mocks, so service tests can assert that a returned
// error aborts the unit without any real transaction machinery.
type MockStore struct {
	Sessions *MockSessionRepository
	Progress *MockProgressRepository
	Puzzles  *MockPuzzleRepository
}

// NewMockStore creates a MockStore with fresh mock repositories.
func NewMockStore() *MockStore {
	return &MockStore{
		Sessions: &MockSessionRepository{},
		Progress: &MockProgressRepository{},
		Puzzles:  &MockPuzzleRepository{},
	}
}

func (s *MockStore) Repos() repository.Repos {
	return repository.Repos{
		Sessions: s.Sessions,
		Progress: s.Progress,
		Puzzles:  s.Puzzles,
	}
}

func (s *MockStore) InTx(ctx context.Context, fn func(repository.Repos) error) error {
	return fn(s.Repos())
}
