package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/scoring"
)

func intPtr(i int) *int { return &i }

func TestScore_PartiallyAnsweredSession(t *testing.T) {
	// 5 questions, 4 answered, 3 correct, budget 100.
	session := models.Session{
		EmployeeID:  "emp-1",
		MissionID:   "mission-1",
		PointBudget: 100,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 1},
			{ID: "q3", Skill: "python", CorrectIndex: 2},
			{ID: "q4", Skill: "python", CorrectIndex: 0},
			{ID: "q5", Skill: "sql", CorrectIndex: 3},
		},
		Answers: []*int{intPtr(0), intPtr(1), intPtr(2), intPtr(1), nil},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Equal(t, 5, result.QuestionsTotal)
	assert.Equal(t, 4, result.QuestionsAnswered)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.InDelta(t, 75.0, result.AccuracyPercent, 0.001, "accuracy counts attempted questions only")
	assert.Equal(t, 60, result.PointsEarned, "points use the full question count as denominator")
}

func TestScore_AllWrong(t *testing.T) {
	session := models.Session{
		PointBudget: 100,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 0},
			{ID: "q3", Skill: "sql", CorrectIndex: 0},
			{ID: "q4", Skill: "sql", CorrectIndex: 0},
			{ID: "q5", Skill: "sql", CorrectIndex: 0},
		},
		Answers: []*int{intPtr(1), intPtr(1), intPtr(1), intPtr(1), intPtr(1)},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Equal(t, 5, result.QuestionsAnswered)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Zero(t, result.AccuracyPercent)
	assert.Zero(t, result.PointsEarned)
	assert.Empty(t, result.SkillImprovements, "skills with zero correct answers are absent")
}

func TestScore_NoAnswers(t *testing.T) {
	session := models.Session{
		PointBudget: 50,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 1},
		},
		Answers: []*int{nil, nil},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Zero(t, result.QuestionsAnswered)
	assert.Zero(t, result.AccuracyPercent, "accuracy is 0 when nothing was attempted")
	assert.Zero(t, result.PointsEarned)
}

func TestScore_EmptySession(t *testing.T) {
	result, err := scoring.Score(models.Session{PointBudget: 100})
	require.NoError(t, err)

	assert.Zero(t, result.QuestionsTotal)
	assert.Zero(t, result.QuestionsAnswered)
	assert.Zero(t, result.AccuracyPercent)
	assert.Zero(t, result.PointsEarned)
}

func TestScore_ShapeMismatch(t *testing.T) {
	session := models.Session{
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 1},
		},
		Answers: []*int{intPtr(0)},
	}

	_, err := scoring.Score(session)
	require.Error(t, err)
}

func TestScore_SkillImprovementsCountCorrectAnswersPerSkill(t *testing.T) {
	session := models.Session{
		PointBudget: 100,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 1},
			{ID: "q3", Skill: "python", CorrectIndex: 2},
			{ID: "q4", Skill: "excel", CorrectIndex: 0},
		},
		Answers: []*int{intPtr(0), intPtr(1), intPtr(2), intPtr(3)},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"sql": 2, "python": 1}, result.SkillImprovements)
	assert.NotContains(t, result.SkillImprovements, "excel")
}

func TestScore_PointsNeverExceedBudget(t *testing.T) {
	session := models.Session{
		PointBudget: 73,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 0},
			{ID: "q3", Skill: "sql", CorrectIndex: 0},
		},
		Answers: []*int{intPtr(0), intPtr(0), intPtr(0)},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Equal(t, 73, result.PointsEarned)
	assert.LessOrEqual(t, result.PointsEarned, session.PointBudget)
	assert.GreaterOrEqual(t, result.PointsEarned, 0)
}

func TestScore_PointsFloorRounding(t *testing.T) {
	// 1 of 3 correct with budget 100 floors to 33.
	session := models.Session{
		PointBudget: 100,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 0},
			{ID: "q3", Skill: "sql", CorrectIndex: 0},
		},
		Answers: []*int{intPtr(0), intPtr(1), intPtr(1)},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Equal(t, 33, result.PointsEarned)
}

func TestScore_TinyBudgetCanRoundToZero(t *testing.T) {
	// 1 of 4 correct with budget 3 floors to 0 even though an answer was
	// correct; the points gate downstream then skips puzzle unlocks.
	session := models.Session{
		PointBudget: 3,
		Questions: []models.Question{
			{ID: "q1", Skill: "sql", CorrectIndex: 0},
			{ID: "q2", Skill: "sql", CorrectIndex: 0},
			{ID: "q3", Skill: "sql", CorrectIndex: 0},
			{ID: "q4", Skill: "sql", CorrectIndex: 0},
		},
		Answers: []*int{intPtr(0), intPtr(1), intPtr(1), intPtr(1)},
	}

	result, err := scoring.Score(session)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Zero(t, result.PointsEarned)
	assert.Equal(t, map[string]int{"sql": 1}, result.SkillImprovements)
}
