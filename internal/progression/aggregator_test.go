package progression_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/progression"
)

func TestApplyResult_FirstSession(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	result := models.SessionResult{
		QuestionsTotal:    5,
		QuestionsAnswered: 4,
		CorrectAnswers:    3,
		AccuracyPercent:   75.0,
		PointsEarned:      60,
	}

	updated := progression.ApplyResult(models.GameProgress{EmployeeID: "emp-1"}, result, now)

	assert.Equal(t, 60, updated.TotalPoints)
	assert.Equal(t, 1, updated.TotalMissionsCompleted)
	assert.Equal(t, 4, updated.TotalQuestionsAnswered)
	assert.Equal(t, 3, updated.TotalCorrectAnswers)
	assert.Equal(t, 1, updated.CurrentStreak, "accuracy of exactly 75 meets the streak threshold")
	assert.Equal(t, 1, updated.LongestStreak)
	assert.Equal(t, 1, updated.CurrentLevel)
	assert.Equal(t, now, updated.LastPlayedAt)
}

func TestApplyResult_StreakIncrementsAtThreshold(t *testing.T) {
	progress := models.GameProgress{CurrentStreak: 2, LongestStreak: 5}

	updated := progression.ApplyResult(progress, models.SessionResult{AccuracyPercent: 75.0}, time.Now())

	assert.Equal(t, 3, updated.CurrentStreak)
	assert.Equal(t, 5, updated.LongestStreak, "longest streak unchanged while current is below it")
}

func TestApplyResult_StreakResetsBelowThreshold(t *testing.T) {
	progress := models.GameProgress{CurrentStreak: 7, LongestStreak: 7}

	updated := progression.ApplyResult(progress, models.SessionResult{AccuracyPercent: 74.9}, time.Now())

	assert.Zero(t, updated.CurrentStreak)
	assert.Equal(t, 7, updated.LongestStreak, "longest streak is never lowered")
}

func TestApplyResult_LongestStreakTracksCurrent(t *testing.T) {
	progress := models.GameProgress{CurrentStreak: 7, LongestStreak: 7}

	updated := progression.ApplyResult(progress, models.SessionResult{AccuracyPercent: 100}, time.Now())

	assert.Equal(t, 8, updated.CurrentStreak)
	assert.Equal(t, 8, updated.LongestStreak)
	assert.GreaterOrEqual(t, updated.LongestStreak, updated.CurrentStreak)
}

func TestApplyResult_LevelDerivedFromPoints(t *testing.T) {
	tests := []struct {
		name       string
		basePoints int
		earned     int
		wantLevel  int
	}{
		{"fresh account", 0, 0, 1},
		{"just below level 2", 0, 99, 1},
		{"exactly 100 points", 0, 100, 2},
		{"crossing a boundary", 95, 10, 2},
		{"several levels up", 450, 75, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := models.GameProgress{TotalPoints: tt.basePoints, CurrentLevel: 999}
			updated := progression.ApplyResult(progress, models.SessionResult{PointsEarned: tt.earned}, time.Now())

			assert.Equal(t, tt.wantLevel, updated.CurrentLevel, "level must be recomputed from points, never carried")
			assert.Equal(t, updated.TotalPoints/100+1, updated.CurrentLevel)
		})
	}
}

func TestApplyResult_AccumulatesCounters(t *testing.T) {
	progress := models.GameProgress{
		TotalPoints:            120,
		TotalMissionsCompleted: 3,
		TotalQuestionsAnswered: 14,
		TotalCorrectAnswers:    9,
	}
	result := models.SessionResult{
		QuestionsAnswered: 5,
		CorrectAnswers:    4,
		AccuracyPercent:   80,
		PointsEarned:      40,
	}

	updated := progression.ApplyResult(progress, result, time.Now())

	assert.Equal(t, 160, updated.TotalPoints)
	assert.Equal(t, 4, updated.TotalMissionsCompleted)
	assert.Equal(t, 19, updated.TotalQuestionsAnswered)
	assert.Equal(t, 13, updated.TotalCorrectAnswers)
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, progression.LevelForPoints(0))
	assert.Equal(t, 1, progression.LevelForPoints(99))
	assert.Equal(t, 2, progression.LevelForPoints(100))
	assert.Equal(t, 11, progression.LevelForPoints(1000))
}
