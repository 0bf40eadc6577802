package services

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/errors"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/progression"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/scoring"
)

// ProgressionService turns completed sessions into durable player state:
// points, streaks, levels and per-skill puzzle unlocks.
type ProgressionService interface {
	SubmitSession(ctx context.Context, session models.Session) (*models.ProgressionOutcome, error)
}

type progressionService struct {
	store      repository.Store
	retryLimit int
	now        func() time.Time
}

// NewProgressionService creates a new ProgressionService. retryLimit bounds
// how many times a submission is re-run after an optimistic-concurrency
// conflict before CONFLICT is surfaced to the caller.
func NewProgressionService(store repository.Store, retryLimit int) ProgressionService {
	if retryLimit < 1 {
		retryLimit = 1
	}
	return &progressionService{
		store:      store,
		retryLimit: retryLimit,
		now:        time.Now,
	}
}

// SubmitSession scores the session, folds it into the employee's cumulative
// progress and unlocks one puzzle piece per improved skill, all inside a
// single transaction. Either every record is durably updated or none are.
//
// A version conflict means a concurrent submission for the same employee won
// the race; the whole unit is re-run from a fresh read so the retry picks up
// the other submission's effects instead of overwriting them.
func (s *progressionService) SubmitSession(ctx context.Context, session models.Session) (*models.ProgressionOutcome, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting session: employee_id=%s, mission_id=%s", session.EmployeeID, session.MissionID)

	if session.EmployeeID == "" {
		return nil, errors.NewValidationError("employee_id", "must not be empty")
	}
	if session.MissionID == "" {
		return nil, errors.NewValidationError("mission_id", "must not be empty")
	}

	// Scoring is pure and validated before any state is touched.
	result, err := scoring.Score(session)
	if err != nil {
		log.Warn("rejected malformed session: mission_id=%s: %v", session.MissionID, err)
		return nil, errors.NewInvalidSessionError(err.Error())
	}

	var lastErr error
	for attempt := 1; attempt <= s.retryLimit; attempt++ {
		var outcome models.ProgressionOutcome
		err := s.store.InTx(ctx, func(r repository.Repos) error {
			applied, err := s.apply(ctx, r, session, result)
			if err != nil {
				return err
			}
			outcome = *applied
			return nil
		})
		if err == nil {
			log.Info("session processed: employee_id=%s, mission_id=%s, points=%d, skills=%d",
				session.EmployeeID, session.MissionID, result.PointsEarned, len(result.SkillImprovements))
			return &outcome, nil
		}
		if stderrors.Is(err, repository.ErrDuplicateSession) {
			log.Info("duplicate session ignored: mission_id=%s", session.MissionID)
			return nil, errors.NewDuplicateSessionError(session.MissionID)
		}
		if stderrors.Is(err, repository.ErrVersionConflict) {
			log.Debug("submission conflict, retrying: mission_id=%s, attempt=%d/%d",
				session.MissionID, attempt, s.retryLimit)
			lastErr = err
			continue
		}
		log.Error("submission failed: mission_id=%s: %v", session.MissionID, err)
		return nil, errors.NewStorageUnavailableError(err)
	}

	log.Warn("submission retries exhausted: mission_id=%s", session.MissionID)
	return nil, errors.NewConflictError(lastErr)
}

// apply runs one attempt of the atomic unit against transaction-bound
// repositories: ledger insert, progress aggregation, puzzle unlocks.
func (s *progressionService) apply(ctx context.Context, r repository.Repos, session models.Session, result models.SessionResult) (*models.ProgressionOutcome, error) {
	now := s.now()

	if _, err := r.Sessions.Insert(ctx, models.SessionRecord{
		EmployeeID:        session.EmployeeID,
		MissionID:         session.MissionID,
		QuestionsTotal:    result.QuestionsTotal,
		QuestionsAnswered: result.QuestionsAnswered,
		CorrectAnswers:    result.CorrectAnswers,
		AccuracyPercent:   result.AccuracyPercent,
		PointsEarned:      result.PointsEarned,
		TimeSpentSeconds:  session.TimeSpentSeconds,
	}); err != nil {
		return nil, err
	}

	progress, err := s.applyProgress(ctx, r, session.EmployeeID, result, now)
	if err != nil {
		return nil, err
	}

	updates, err := s.applyPuzzles(ctx, r, session.EmployeeID, result, now)
	if err != nil {
		return nil, err
	}

	return &models.ProgressionOutcome{
		Result:        result,
		Progress:      *progress,
		PuzzleUpdates: updates,
	}, nil
}

func (s *progressionService) applyProgress(ctx context.Context, r repository.Repos, employeeID string, result models.SessionResult, now time.Time) (*models.GameProgress, error) {
	existing, err := r.Progress.GetByEmployee(ctx, employeeID)
	if err != nil && !stderrors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		// First session for this employee: the aggregator runs over the
		// zero-value record.
		updated := progression.ApplyResult(models.GameProgress{EmployeeID: employeeID}, result, now)
		id, err := r.Progress.Insert(ctx, updated)
		if err != nil {
			return nil, err
		}
		updated.ID = id
		updated.Version = 1
		return &updated, nil
	}

	updated := progression.ApplyResult(*existing, result, now)
	if err := r.Progress.Update(ctx, updated); err != nil {
		return nil, err
	}
	updated.Version++
	return &updated, nil
}

func (s *progressionService) applyPuzzles(ctx context.Context, r repository.Repos, employeeID string, result models.SessionResult, now time.Time) ([]models.PuzzleUpdate, error) {
	// Points gate: a session that earned no points unlocks nothing, even
	// when some answers were correct but the budget rounded down to zero.
	if result.PointsEarned <= 0 || len(result.SkillImprovements) == 0 {
		return nil, nil
	}

	skills := make([]string, 0, len(result.SkillImprovements))
	for skill := range result.SkillImprovements {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	updates := make([]models.PuzzleUpdate, 0, len(skills))
	for _, skill := range skills {
		active, err := r.Puzzles.GetActive(ctx, employeeID, skill)
		if err != nil {
			if !stderrors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			fresh := progression.NewPuzzleState(employeeID, skill, progression.FirstPuzzleSize, now)
			id, err := r.Puzzles.Insert(ctx, fresh)
			if err != nil {
				return nil, err
			}
			fresh.ID = id
			fresh.Version = 1
			active = &fresh
		}

		updated, completed, next := progression.UnlockPiece(*active, now)
		if err := r.Puzzles.Update(ctx, updated); err != nil {
			return nil, err
		}
		updated.Version = active.Version + 1

		if next != nil {
			id, err := r.Puzzles.Insert(ctx, *next)
			if err != nil {
				return nil, err
			}
			next.ID = id
			next.Version = 1
			completed = &updated
		}

		updates = append(updates, models.PuzzleUpdate{
			Skill:     skill,
			Puzzle:    updated,
			Completed: completed,
			Next:      next,
		})
	}
	return updates, nil
}
