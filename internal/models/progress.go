package models

import "time"

// GameProgress is the per-employee cumulative gamification record. There is
// at most one row per employee; it is created lazily on the first submitted
// session and only ever mutated through the progression service.
//
// Invariants: CurrentLevel == TotalPoints/100 + 1 and
// LongestStreak >= CurrentStreak after every update.
type GameProgress struct {
	ID                     int64     `json:"id"`
	EmployeeID             string    `json:"employee_id"`
	TotalPoints            int       `json:"total_points"`
	TotalMissionsCompleted int       `json:"total_missions_completed"`
	TotalQuestionsAnswered int       `json:"total_questions_answered"`
	TotalCorrectAnswers    int       `json:"total_correct_answers"`
	CurrentStreak          int       `json:"current_streak"`
	LongestStreak          int       `json:"longest_streak"`
	CurrentLevel           int       `json:"current_level"`
	LastPlayedAt           time.Time `json:"last_played_at"`
	Version                int64     `json:"-"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
