package models

import "time"

// PuzzleState tracks the per-(employee, skill) mastery puzzle. At most one
// row per pairing has CompletedAt == nil (the active puzzle); completed rows
// are kept as an archive. PiecesUnlocked only ever grows within a row.
type PuzzleState struct {
	ID             int64      `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	Skill          string     `json:"skill"`
	PuzzleSize     int        `json:"puzzle_size"`
	PiecesUnlocked int        `json:"pieces_unlocked"`
	CompletedAt    *time.Time `json:"completed_at"`
	Version        int64      `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TotalPieces is an alias for the puzzle size; every piece must be unlocked
// before the puzzle completes.
func (p PuzzleState) TotalPieces() int { return p.PuzzleSize }

// Completed reports whether the puzzle has been archived.
func (p PuzzleState) Completed() bool { return p.CompletedAt != nil }

// PuzzleHistoryFilter narrows archived-puzzle queries.
type PuzzleHistoryFilter struct {
	EmployeeID string
	Skill      string
	Limit      int
	Offset     int
}
