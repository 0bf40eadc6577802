package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/db"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// against the shared handle or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements repository.Store on SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store over an open database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

func newRepos(dbtx DBTX) repository.Repos {
	return repository.Repos{
		Sessions: NewSessionRepository(dbtx),
		Progress: NewProgressRepository(dbtx),
		Puzzles:  NewPuzzleRepository(dbtx),
	}
}

// Repos returns repositories bound to the shared database handle.
func (s *Store) Repos() repository.Repos {
	return newRepos(s.db.DB)
}

// InTx runs fn with repositories bound to a single transaction. An error
// from fn rolls back every write made inside it.
func (s *Store) InTx(ctx context.Context, fn func(repository.Repos) error) error {
	return s.db.Tx(ctx, func(tx *sql.Tx) error {
		return fn(newRepos(tx))
	})
}
