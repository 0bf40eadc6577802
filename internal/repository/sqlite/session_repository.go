package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
)

type sessionRepository struct {
	db DBTX
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db DBTX) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, rec models.SessionRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: employee_id=%s, mission_id=%s", rec.EmployeeID, rec.MissionID)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (employee_id, mission_id, questions_total, questions_answered, correct_answers, accuracy_percent, points_earned, time_spent_seconds)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, rec.EmployeeID, rec.MissionID, rec.QuestionsTotal, rec.QuestionsAnswered, rec.CorrectAnswers, rec.AccuracyPercent, rec.PointsEarned, rec.TimeSpentSeconds)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("session already recorded: mission_id=%s", rec.MissionID)
			return 0, repository.ErrDuplicateSession
		}
		log.Error("failed to insert session: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get session id: %v", err)
		return 0, err
	}
	log.Debug("session inserted: id=%d", id)
	return id, nil
}

func (r *sessionRepository) GetByMissionID(ctx context.Context, missionID string) (*models.SessionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("fetching session: mission_id=%s", missionID)

	var rec models.SessionRecord
	err := r.db.QueryRowContext(ctx, `
SELECT id, employee_id, mission_id, questions_total, questions_answered, correct_answers, accuracy_percent, points_earned, time_spent_seconds, created_at
FROM sessions
WHERE mission_id = ?
`, missionID).Scan(&rec.ID, &rec.EmployeeID, &rec.MissionID, &rec.QuestionsTotal, &rec.QuestionsAnswered, &rec.CorrectAnswers, &rec.AccuracyPercent, &rec.PointsEarned, &rec.TimeSpentSeconds, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return &rec, nil
}

func (r *sessionRepository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing sessions: employee_id=%s, limit=%d, offset=%d", employeeID, limit, offset)

	query := sqlBuilder.Select(
		"id", "employee_id", "mission_id", "questions_total", "questions_answered",
		"correct_answers", "accuracy_percent", "points_earned", "time_spent_seconds", "created_at",
	).From("sessions").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build session list query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.SessionRecord
	for rows.Next() {
		var rec models.SessionRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.MissionID, &rec.QuestionsTotal, &rec.QuestionsAnswered, &rec.CorrectAnswers, &rec.AccuracyPercent, &rec.PointsEarned, &rec.TimeSpentSeconds, &rec.CreatedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		records = append(records, rec)
	}
	log.Debug("found %d sessions", len(records))
	return records, rows.Err()
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
