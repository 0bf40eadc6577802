package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Insert(ctx context.Context, rec models.SessionRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) GetByMissionID(ctx context.Context, missionID string) (*models.SessionRecord, error) {
	args := m.Called(ctx, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionRecord), args.Error(1)
}

func (m *MockSessionRepository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]models.SessionRecord, error) {
	args := m.Called(ctx, employeeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}
