package models

import "time"

// Question is a single scored item within a mission. Questions are authored
// upstream and are immutable by the time they reach this service.
type Question struct {
	ID           string `json:"id"`
	Skill        string `json:"skill"`
	CorrectIndex int    `json:"correct_index"`
}

// Session is one completed mission attempt, as handed over by the mission
// runner. Answers is parallel to Questions; a nil entry means the question
// was left unanswered or timed out.
type Session struct {
	EmployeeID       string     `json:"employee_id"`
	MissionID        string     `json:"mission_id"` // doubles as the idempotency key
	Questions        []Question `json:"questions"`
	Answers          []*int     `json:"answers"`
	PointBudget      int        `json:"point_budget"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
}

// SessionResult is the scored view of a Session. It is derived fresh on every
// submission and never persisted independently of its effects.
type SessionResult struct {
	QuestionsTotal    int            `json:"questions_total"`
	QuestionsAnswered int            `json:"questions_answered"`
	CorrectAnswers    int            `json:"correct_answers"`
	AccuracyPercent   float64        `json:"accuracy_percent"`
	PointsEarned      int            `json:"points_earned"`
	SkillImprovements map[string]int `json:"skill_improvements"`
}

// SessionRecord is the persisted ledger row for a submitted session. The
// unique mission_id column is what enforces idempotent resubmission.
type SessionRecord struct {
	ID                int64     `json:"id"`
	EmployeeID        string    `json:"employee_id"`
	MissionID         string    `json:"mission_id"`
	QuestionsTotal    int       `json:"questions_total"`
	QuestionsAnswered int       `json:"questions_answered"`
	CorrectAnswers    int       `json:"correct_answers"`
	AccuracyPercent   float64   `json:"accuracy_percent"`
	PointsEarned      int       `json:"points_earned"`
	TimeSpentSeconds  int       `json:"time_spent_seconds"`
	CreatedAt         time.Time `json:"created_at"`
}
