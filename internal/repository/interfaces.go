package repository

import (
	"context"
	"errors"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// Sentinel errors returned by repository implementations. Services translate
// these into user-facing error codes.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSession means a session with the same mission id was
	// already recorded; the submission must not be double-counted.
	ErrDuplicateSession = errors.New("duplicate session")
	// ErrVersionConflict means an optimistic update lost a race: the row's
	// version changed between read and write. The caller must re-read and
	// re-apply the whole unit of work.
	ErrVersionConflict = errors.New("version conflict")
)

// SessionRepository is the idempotency ledger of processed sessions.
type SessionRepository interface {
	Insert(ctx context.Context, rec models.SessionRecord) (int64, error)
	GetByMissionID(ctx context.Context, missionID string) (*models.SessionRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]models.SessionRecord, error)
}

// ProgressRepository handles per-employee cumulative progress rows.
// Update enforces optimistic concurrency on the row version.
type ProgressRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*models.GameProgress, error)
	Insert(ctx context.Context, p models.GameProgress) (int64, error)
	Update(ctx context.Context, p models.GameProgress) error
	Leaderboard(ctx context.Context, limit int) ([]models.GameProgress, error)
}

// PuzzleRepository handles per-(employee, skill) puzzle rows.
// Update enforces optimistic concurrency on the row version.
type PuzzleRepository interface {
	GetActive(ctx context.Context, employeeID, skill string) (*models.PuzzleState, error)
	ListActive(ctx context.Context, employeeID string) ([]models.PuzzleState, error)
	Insert(ctx context.Context, p models.PuzzleState) (int64, error)
	Update(ctx context.Context, p models.PuzzleState) error
	History(ctx context.Context, filter models.PuzzleHistoryFilter) ([]models.PuzzleState, error)
}

// Repos bundles the repositories bound to one database handle or transaction.
type Repos struct {
	Sessions SessionRepository
	Progress ProgressRepository
	Puzzles  PuzzleRepository
}

// Store exposes the repositories plus transactional execution. InTx runs fn
// with repositories bound to a single transaction: if fn returns an error the
// transaction is rolled back and none of its writes survive.
type Store interface {
	Repos() Repos
	InTx(ctx context.Context, fn func(Repos) error) error
}
