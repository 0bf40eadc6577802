package progression_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/progression"
)

func TestNewPuzzleState(t *testing.T) {
	now := time.Now()
	p := progression.NewPuzzleState("emp-1", "sql", progression.FirstPuzzleSize, now)

	assert.Equal(t, "emp-1", p.EmployeeID)
	assert.Equal(t, "sql", p.Skill)
	assert.Equal(t, 4, p.PuzzleSize)
	assert.Zero(t, p.PiecesUnlocked)
	assert.Nil(t, p.CompletedAt)
}

func TestUnlockPiece_IncrementsByOne(t *testing.T) {
	now := time.Now()
	active := progression.NewPuzzleState("emp-1", "sql", 4, now)

	updated, completed, next := progression.UnlockPiece(active, now)

	assert.Equal(t, 1, updated.PiecesUnlocked)
	assert.Nil(t, completed)
	assert.Nil(t, next)
	assert.Nil(t, updated.CompletedAt)
}

func TestUnlockPiece_CompletionCreatesNextPuzzle(t *testing.T) {
	now := time.Now()
	active := models.PuzzleState{
		EmployeeID:     "emp-1",
		Skill:          "sql",
		PuzzleSize:     4,
		PiecesUnlocked: 3,
	}

	updated, completed, next := progression.UnlockPiece(active, now)

	assert.Equal(t, 4, updated.PiecesUnlocked)
	require.NotNil(t, completed)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, now, *completed.CompletedAt)

	require.NotNil(t, next)
	assert.Equal(t, 9, next.PuzzleSize, "a completed 2x2 is followed by a 3x3")
	assert.Zero(t, next.PiecesUnlocked)
	assert.Nil(t, next.CompletedAt)
	assert.Equal(t, "emp-1", next.EmployeeID)
	assert.Equal(t, "sql", next.Skill)
}

func TestUnlockPiece_MonotonicAndClamped(t *testing.T) {
	now := time.Now()
	puzzle := progression.NewPuzzleState("emp-1", "sql", 4, now)

	prev := puzzle.PiecesUnlocked
	for i := 0; i < 3; i++ {
		updated, _, _ := progression.UnlockPiece(puzzle, now)
		assert.Greater(t, updated.PiecesUnlocked, prev, "pieces never decrease")
		assert.LessOrEqual(t, updated.PiecesUnlocked, updated.TotalPieces())
		prev = updated.PiecesUnlocked
		puzzle = updated
		if updated.Completed() {
			break
		}
	}
}

func TestPuzzleSizeSequence(t *testing.T) {
	now := time.Now()
	puzzle := progression.NewPuzzleState("emp-1", "sql", progression.FirstPuzzleSize, now)

	var sizes []int
	// Play through enough unlocks to complete several puzzles.
	for len(sizes) < 5 {
		updated, completed, next := progression.UnlockPiece(puzzle, now)
		if completed != nil {
			sizes = append(sizes, completed.PuzzleSize)
			puzzle = *next
			continue
		}
		puzzle = updated
	}

	assert.Equal(t, []int{4, 9, 16, 25, 36}, sizes, "sizes must follow the perfect-square ladder with no skips")
}

func TestNextPuzzleSize(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{4, 9},
		{9, 16},
		{16, 25},
		{25, 36},
		{36, 49},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, progression.NextPuzzleSize(tt.size))
	}
}
