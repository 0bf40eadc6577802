package services

import (
	"context"
	stderrors "errors"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/errors"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/progression"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
)

// ProgressService is the read side: the snapshots the dashboards render.
type ProgressService interface {
	GetProgress(ctx context.Context, employeeID string) (*models.GameProgress, error)
	GetActivePuzzles(ctx context.Context, employeeID string) ([]models.PuzzleState, error)
	GetPuzzleHistory(ctx context.Context, filter models.PuzzleHistoryFilter) ([]models.PuzzleState, error)
	GetSessions(ctx context.Context, employeeID string, limit, offset int) ([]models.SessionRecord, error)
	GetLeaderboard(ctx context.Context, limit int) ([]models.GameProgress, error)
}

type progressService struct {
	store repository.Store
}

// NewProgressService creates a new ProgressService
func NewProgressService(store repository.Store) ProgressService {
	return &progressService{store: store}
}

// GetProgress returns the employee's cumulative progress. An employee that
// has never played gets a zero-value snapshot at level 1 rather than an
// error, since the record is only created lazily on the first session.
func (s *progressService) GetProgress(ctx context.Context, employeeID string) (*models.GameProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting progress: employee_id=%s", employeeID)

	progress, err := s.store.Repos().Progress.GetByEmployee(ctx, employeeID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return &models.GameProgress{
			EmployeeID:   employeeID,
			CurrentLevel: progression.LevelForPoints(0),
		}, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return progress, nil
}

func (s *progressService) GetActivePuzzles(ctx context.Context, employeeID string) ([]models.PuzzleState, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting active puzzles: employee_id=%s", employeeID)

	puzzles, err := s.store.Repos().Puzzles.ListActive(ctx, employeeID)
	if err != nil {
		log.Error("failed to list active puzzles: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return puzzles, nil
}

func (s *progressService) GetPuzzleHistory(ctx context.Context, filter models.PuzzleHistoryFilter) ([]models.PuzzleState, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting puzzle history: employee_id=%s, skill=%s", filter.EmployeeID, filter.Skill)

	puzzles, err := s.store.Repos().Puzzles.History(ctx, filter)
	if err != nil {
		log.Error("failed to get puzzle history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return puzzles, nil
}

func (s *progressService) GetSessions(ctx context.Context, employeeID string, limit, offset int) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting sessions: employee_id=%s", employeeID)

	sessions, err := s.store.Repos().Sessions.ListByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return sessions, nil
}

func (s *progressService) GetLeaderboard(ctx context.Context, limit int) ([]models.GameProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting leaderboard: limit=%d", limit)

	entries, err := s.store.Repos().Progress.Leaderboard(ctx, limit)
	if err != nil {
		log.Error("failed to get leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}
