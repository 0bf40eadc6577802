package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
)

type progressRepository struct {
	db DBTX
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db DBTX) repository.ProgressRepository {
	return &progressRepository{db: db}
}

const progressColumns = `id, employee_id, total_points, total_missions_completed, total_questions_answered, total_correct_answers, current_streak, longest_streak, current_level, last_played_at, version, created_at, updated_at`

func scanProgress(row interface{ Scan(...any) error }) (*models.GameProgress, error) {
	var p models.GameProgress
	err := row.Scan(&p.ID, &p.EmployeeID, &p.TotalPoints, &p.TotalMissionsCompleted, &p.TotalQuestionsAnswered, &p.TotalCorrectAnswers, &p.CurrentStreak, &p.LongestStreak, &p.CurrentLevel, &p.LastPlayedAt, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) GetByEmployee(ctx context.Context, employeeID string) (*models.GameProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: employee_id=%s", employeeID)

	row := r.db.QueryRowContext(ctx, `
SELECT `+progressColumns+`
FROM game_progress
WHERE employee_id = ?
`, employeeID)
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress record: employee_id=%s", employeeID)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *progressRepository) Insert(ctx context.Context, p models.GameProgress) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("inserting progress: employee_id=%s, points=%d", p.EmployeeID, p.TotalPoints)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO game_progress (employee_id, total_points, total_missions_completed, total_questions_answered, total_correct_answers, current_streak, longest_streak, current_level, last_played_at, version)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
`, p.EmployeeID, p.TotalPoints, p.TotalMissionsCompleted, p.TotalQuestionsAnswered, p.TotalCorrectAnswers, p.CurrentStreak, p.LongestStreak, p.CurrentLevel, p.LastPlayedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// A concurrent submission created the row first; the caller
			// must re-read and apply against the fresh state.
			log.Debug("progress row already exists: employee_id=%s", p.EmployeeID)
			return 0, repository.ErrVersionConflict
		}
		log.Error("failed to insert progress: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get progress id: %v", err)
		return 0, err
	}
	log.Debug("progress inserted: id=%d", id)
	return id, nil
}

// Update writes the progress row only if the version still matches the one
// that was read; a lost race surfaces as ErrVersionConflict.
func (r *progressRepository) Update(ctx context.Context, p models.GameProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("updating progress: employee_id=%s, points=%d, version=%d", p.EmployeeID, p.TotalPoints, p.Version)

	res, err := r.db.ExecContext(ctx, `
UPDATE game_progress
SET total_points = ?, total_missions_completed = ?, total_questions_answered = ?, total_correct_answers = ?,
    current_streak = ?, longest_streak = ?, current_level = ?, last_played_at = ?,
    version = version + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND version = ?
`, p.TotalPoints, p.TotalMissionsCompleted, p.TotalQuestionsAnswered, p.TotalCorrectAnswers, p.CurrentStreak, p.LongestStreak, p.CurrentLevel, p.LastPlayedAt, p.ID, p.Version)
	if err != nil {
		log.Error("failed to update progress: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected: %v", err)
		return err
	}
	if affected == 0 {
		log.Debug("progress version conflict: employee_id=%s, version=%d", p.EmployeeID, p.Version)
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *progressRepository) Leaderboard(ctx context.Context, limit int) ([]models.GameProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("fetching leaderboard: limit=%d", limit)

	query := sqlBuilder.Select(
		"id", "employee_id", "total_points", "total_missions_completed", "total_questions_answered",
		"total_correct_answers", "current_streak", "longest_streak", "current_level",
		"last_played_at", "version", "created_at", "updated_at",
	).From("game_progress").
		OrderBy("total_points DESC", "longest_streak DESC", "employee_id ASC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.GameProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		entries = append(entries, *p)
	}
	log.Debug("found %d leaderboard entries", len(entries))
	return entries, rows.Err()
}
