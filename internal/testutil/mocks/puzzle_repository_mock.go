package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// MockPuzzleRepository is a mock implementation of repository.PuzzleRepository
type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) GetActive(ctx context.Context, employeeID, skill string) (*models.PuzzleState, error) {
	args := m.Called(ctx, employeeID, skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PuzzleState), args.Error(1)
}

func (m *MockPuzzleRepository) ListActive(ctx context.Context, employeeID string) ([]models.PuzzleState, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PuzzleState), args.Error(1)
}

func (m *MockPuzzleRepository) Insert(ctx context.Context, p models.PuzzleState) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPuzzleRepository) Update(ctx context.Context, p models.PuzzleState) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPuzzleRepository) History(ctx context.Context, filter models.PuzzleHistoryFilter) ([]models.PuzzleState, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PuzzleState), args.Error(1)
}
