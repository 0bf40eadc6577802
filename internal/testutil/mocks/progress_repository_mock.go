package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetByEmployee(ctx context.Context, employeeID string) (*models.GameProgress, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameProgress), args.Error(1)
}

func (m *MockProgressRepository) Insert(ctx context.Context, p models.GameProgress) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressRepository) Update(ctx context.Context, p models.GameProgress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgressRepository) Leaderboard(ctx context.Context, limit int) ([]models.GameProgress, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameProgress), args.Error(1)
}
