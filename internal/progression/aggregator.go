package progression

import (
	"time"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// StreakAccuracyThreshold is the minimum session accuracy (percent) that
// keeps a streak alive. Hard threshold, not configurable per mission.
const StreakAccuracyThreshold = 75.0

// PointsPerLevel is the number of cumulative points per level tier.
const PointsPerLevel = 100

// ApplyResult folds a scored session into an employee's cumulative progress
// and returns the updated record. It is pure: the caller supplies the clock
// and persists the result. A zero-value GameProgress serves as the lazily
// created initial record for an employee's first session.
func ApplyResult(progress models.GameProgress, result models.SessionResult, now time.Time) models.GameProgress {
	progress.TotalPoints += result.PointsEarned
	progress.TotalMissionsCompleted++
	progress.TotalQuestionsAnswered += result.QuestionsAnswered
	progress.TotalCorrectAnswers += result.CorrectAnswers

	if result.AccuracyPercent >= StreakAccuracyThreshold {
		progress.CurrentStreak++
	} else {
		progress.CurrentStreak = 0
	}
	if progress.CurrentStreak > progress.LongestStreak {
		progress.LongestStreak = progress.CurrentStreak
	}

	// Level is always derived from total points, never incremented on its
	// own, so replayed or corrected point totals can never drift the level.
	progress.CurrentLevel = LevelForPoints(progress.TotalPoints)
	progress.LastPlayedAt = now

	return progress
}

// LevelForPoints maps a cumulative point total to its level tier.
func LevelForPoints(totalPoints int) int {
	return totalPoints/PointsPerLevel + 1
}
