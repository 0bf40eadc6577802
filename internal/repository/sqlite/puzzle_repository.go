package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/logger"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
)

type puzzleRepository struct {
	db DBTX
}

// NewPuzzleRepository creates a new PuzzleRepository implementation
func NewPuzzleRepository(db DBTX) repository.PuzzleRepository {
	return &puzzleRepository{db: db}
}

const puzzleColumns = `id, employee_id, skill, puzzle_size, pieces_unlocked, completed_at, version, created_at, updated_at`

func scanPuzzle(row interface{ Scan(...any) error }) (*models.PuzzleState, error) {
	var p models.PuzzleState
	var completedAt sql.NullTime
	err := row.Scan(&p.ID, &p.EmployeeID, &p.Skill, &p.PuzzleSize, &p.PiecesUnlocked, &completedAt, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		p.CompletedAt = &completedAt.Time
	}
	return &p, nil
}

func (r *puzzleRepository) GetActive(ctx context.Context, employeeID, skill string) (*models.PuzzleState, error) {
	log := logger.FromContext(ctx).WithPrefix("puzzle_repo")
	log.Debug("getting active puzzle: employee_id=%s, skill=%s", employeeID, skill)

	row := r.db.QueryRowContext(ctx, `
SELECT `+puzzleColumns+`
FROM puzzle_states
WHERE employee_id = ? AND skill = ? AND completed_at IS NULL
`, employeeID, skill)
	p, err := scanPuzzle(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no active puzzle: employee_id=%s, skill=%s", employeeID, skill)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get active puzzle: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *puzzleRepository) ListActive(ctx context.Context, employeeID string) ([]models.PuzzleState, error) {
	log := logger.FromContext(ctx).WithPrefix("puzzle_repo")
	log.Debug("listing active puzzles: employee_id=%s", employeeID)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+puzzleColumns+`
FROM puzzle_states
WHERE employee_id = ? AND completed_at IS NULL
ORDER BY skill
`, employeeID)
	if err != nil {
		log.Error("failed to query active puzzles: %v", err)
		return nil, err
	}
	defer rows.Close()

	var puzzles []models.PuzzleState
	for rows.Next() {
		p, err := scanPuzzle(rows)
		if err != nil {
			log.Error("failed to scan puzzle row: %v", err)
			return nil, err
		}
		puzzles = append(puzzles, *p)
	}
	log.Debug("found %d active puzzles", len(puzzles))
	return puzzles, rows.Err()
}

func (r *puzzleRepository) Insert(ctx context.Context, p models.PuzzleState) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("puzzle_repo")
	log.Debug("inserting puzzle: employee_id=%s, skill=%s, size=%d", p.EmployeeID, p.Skill, p.PuzzleSize)

	var completedAt any
	if p.CompletedAt != nil {
		completedAt = *p.CompletedAt
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO puzzle_states (employee_id, skill, puzzle_size, pieces_unlocked, completed_at, version)
VALUES (?, ?, ?, ?, ?, 1)
`, p.EmployeeID, p.Skill, p.PuzzleSize, p.PiecesUnlocked, completedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// The partial unique index rejected a second active puzzle for
			// this pairing: a concurrent submission created one first.
			log.Debug("active puzzle already exists: employee_id=%s, skill=%s", p.EmployeeID, p.Skill)
			return 0, repository.ErrVersionConflict
		}
		log.Error("failed to insert puzzle: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get puzzle id: %v", err)
		return 0, err
	}
	log.Debug("puzzle inserted: id=%d", id)
	return id, nil
}

// Update writes the puzzle row only if the version still matches the one
// that was read; a lost race surfaces as ErrVersionConflict.
func (r *puzzleRepository) Update(ctx context.Context, p models.PuzzleState) error {
	log := logger.FromContext(ctx).WithPrefix("puzzle_repo")
	log.Debug("updating puzzle: id=%d, pieces=%d/%d, version=%d", p.ID, p.PiecesUnlocked, p.PuzzleSize, p.Version)

	var completedAt any
	if p.CompletedAt != nil {
		completedAt = *p.CompletedAt
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE puzzle_states
SET pieces_unlocked = ?, completed_at = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND version = ?
`, p.PiecesUnlocked, completedAt, p.ID, p.Version)
	if err != nil {
		log.Error("failed to update puzzle: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected: %v", err)
		return err
	}
	if affected == 0 {
		log.Debug("puzzle version conflict: id=%d, version=%d", p.ID, p.Version)
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *puzzleRepository) History(ctx context.Context, filter models.PuzzleHistoryFilter) ([]models.PuzzleState, error) {
	log := logger.FromContext(ctx).WithPrefix("puzzle_repo")
	log.Debug("fetching puzzle history: employee_id=%s, skill=%s", filter.EmployeeID, filter.Skill)

	query := sqlBuilder.Select(
		"id", "employee_id", "skill", "puzzle_size", "pieces_unlocked",
		"completed_at", "version", "created_at", "updated_at",
	).From("puzzle_states").
		Where("completed_at IS NOT NULL").
		OrderBy("completed_at DESC", "id DESC")

	if filter.EmployeeID != "" {
		query = query.Where(squirrel.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.Skill != "" {
		query = query.Where(squirrel.Eq{"skill": filter.Skill})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build puzzle history query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query puzzle history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var puzzles []models.PuzzleState
	for rows.Next() {
		p, err := scanPuzzle(rows)
		if err != nil {
			log.Error("failed to scan puzzle row: %v", err)
			return nil, err
		}
		puzzles = append(puzzles, *p)
	}
	log.Debug("found %d completed puzzles", len(puzzles))
	return puzzles, rows.Err()
}
