package scoring

import (
	"fmt"
	"math"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
)

// Score turns a raw session into a SessionResult. It is a pure function: no
// I/O, no clock, and it never mutates the session.
//
// Accuracy is computed over attempted questions only. Points use the full
// question count as denominator, so unanswered questions forfeit their
// proportional share of the budget without dragging accuracy down.
func Score(session models.Session) (models.SessionResult, error) {
	if len(session.Answers) != len(session.Questions) {
		return models.SessionResult{}, fmt.Errorf("answers length %d does not match questions length %d",
			len(session.Answers), len(session.Questions))
	}

	result := models.SessionResult{
		QuestionsTotal:    len(session.Questions),
		SkillImprovements: map[string]int{},
	}

	for i, q := range session.Questions {
		answer := session.Answers[i]
		if answer == nil {
			continue
		}
		result.QuestionsAnswered++
		if *answer == q.CorrectIndex {
			result.CorrectAnswers++
			result.SkillImprovements[q.Skill]++
		}
	}

	if result.QuestionsAnswered > 0 {
		result.AccuracyPercent = float64(result.CorrectAnswers) / float64(result.QuestionsAnswered) * 100
	}
	if result.QuestionsTotal > 0 {
		earned := math.Floor(float64(result.CorrectAnswers) / float64(result.QuestionsTotal) * float64(session.PointBudget))
		result.PointsEarned = int(earned)
	}
	if result.PointsEarned < 0 {
		result.PointsEarned = 0
	}

	return result, nil
}
