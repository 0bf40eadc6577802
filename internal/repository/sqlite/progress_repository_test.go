package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/models"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/repository/sqlite"
	"github.com/kkarakas-lxera/lxera-vision-platform-sub007/internal/testutil"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProgressRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProgressRepository(s.db)
}

func (s *ProgressRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProgressRepositorySuite) insertProgress(employeeID string, points int) models.GameProgress {
	p := models.GameProgress{
		EmployeeID:             employeeID,
		TotalPoints:            points,
		TotalMissionsCompleted: 1,
		TotalQuestionsAnswered: 5,
		TotalCorrectAnswers:    3,
		CurrentStreak:          1,
		LongestStreak:          1,
		CurrentLevel:           points/100 + 1,
		LastPlayedAt:           time.Now().UTC(),
	}
	id, err := s.repo.Insert(context.Background(), p)
	s.Require().NoError(err)
	p.ID = id
	p.Version = 1
	return p
}

func (s *ProgressRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	inserted := s.insertProgress("emp-1", 60)

	got, err := s.repo.GetByEmployee(ctx, "emp-1")
	s.Require().NoError(err)
	s.Assert().Equal(inserted.ID, got.ID)
	s.Assert().Equal(60, got.TotalPoints)
	s.Assert().Equal(int64(1), got.Version)
}

func (s *ProgressRepositorySuite) TestGetMissing() {
	_, err := s.repo.GetByEmployee(context.Background(), "nobody")
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (s *ProgressRepositorySuite) TestInsertDuplicateEmployee() {
	s.insertProgress("emp-1", 60)

	_, err := s.repo.Insert(context.Background(), models.GameProgress{
		EmployeeID:   "emp-1",
		LastPlayedAt: time.Now().UTC(),
	})
	s.Assert().ErrorIs(err, repository.ErrVersionConflict)
}

func (s *ProgressRepositorySuite) TestUpdateBumpsVersion() {
	ctx := context.Background()
	p := s.insertProgress("emp-1", 60)

	p.TotalPoints = 120
	p.CurrentLevel = 2
	s.Require().NoError(s.repo.Update(ctx, p))

	got, err := s.repo.GetByEmployee(ctx, "emp-1")
	s.Require().NoError(err)
	s.Assert().Equal(120, got.TotalPoints)
	s.Assert().Equal(int64(2), got.Version)
}

func (s *ProgressRepositorySuite) TestUpdateStaleVersionConflicts() {
	ctx := context.Background()
	p := s.insertProgress("emp-1", 60)

	// First writer wins.
	first := p
	first.TotalPoints = 70
	s.Require().NoError(s.repo.Update(ctx, first))

	// Second writer still holds version 1 and must lose.
	stale := p
	stale.TotalPoints = 80
	err := s.repo.Update(ctx, stale)
	s.Assert().ErrorIs(err, repository.ErrVersionConflict)

	got, err := s.repo.GetByEmployee(ctx, "emp-1")
	s.Require().NoError(err)
	s.Assert().Equal(70, got.TotalPoints, "the losing write must not clobber the winner")
}

func (s *ProgressRepositorySuite) TestLeaderboardOrdering() {
	ctx := context.Background()
	s.insertProgress("emp-low", 10)
	s.insertProgress("emp-high", 300)
	s.insertProgress("emp-mid", 150)

	entries, err := s.repo.Leaderboard(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Assert().Equal("emp-high", entries[0].EmployeeID)
	s.Assert().Equal("emp-mid", entries[1].EmployeeID)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}
