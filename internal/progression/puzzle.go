package progression

import (
	"time"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// FirstPuzzleSize is the size of the first puzzle created for a
// (employee, skill) pairing: a 2x2 grid.
const FirstPuzzleSize = 4

// NewPuzzleState creates the active puzzle for an employee/skill pairing
// that has never had one, starting at the smallest grid.
func NewPuzzleState(employeeID, skill string, size int, now time.Time) models.PuzzleState {
	return models.PuzzleState{
		EmployeeID:     employeeID,
		Skill:          skill,
		PuzzleSize:     size,
		PiecesUnlocked: 0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UnlockPiece applies one unlock event to the active puzzle for a skill.
// Exactly one piece is unlocked per event regardless of how many correct
// answers the session contained for the skill.
//
// The returned updated state is the incremented active puzzle. When the
// increment fills the grid, completed carries the archived state
// (CompletedAt set) and next the freshly created larger puzzle, which
// becomes the new active puzzle; otherwise both are nil.
func UnlockPiece(active models.PuzzleState, now time.Time) (updated models.PuzzleState, completed, next *models.PuzzleState) {
	updated = active
	if updated.PiecesUnlocked < updated.TotalPieces() {
		updated.PiecesUnlocked++
	}
	updated.UpdatedAt = now

	if updated.PiecesUnlocked == updated.TotalPieces() {
		done := updated
		done.CompletedAt = &now
		replacement := NewPuzzleState(active.EmployeeID, active.Skill, NextPuzzleSize(active.PuzzleSize), now)
		return done, &done, &replacement
	}
	return updated, nil, nil
}

// NextPuzzleSize returns the size of the puzzle that follows a completed one:
// the next perfect square, so grids grow 4 -> 9 -> 16 -> 25 -> 36 -> ...
func NextPuzzleSize(size int) int {
	r := isqrt(size)
	return (r + 1) * (r + 1)
}

// isqrt is the integer square root, exact for the perfect squares used as
// puzzle sizes.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	r := n / 2
	for r*r > n {
		r = (r + n/r) / 2
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
