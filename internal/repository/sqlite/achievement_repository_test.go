package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/repository"
	"github.com/jmercado/uicguessr/internal/repository/sqlite"
	"github.com/jmercado/uicguessr/internal/testutil"
)

type AchievementRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.AchievementRepository
}

func (s *AchievementRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewAchievementRepository(s.db)
}

func (s *AchievementRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *AchievementRepositorySuite) TestListIncludesLocked() {
	list, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Len(list, len(catalog.Achievements()))
	for _, a := range list {
		s.False(a.Unlocked)
		s.Nil(a.UnlockedAt)
		s.NotEmpty(a.Title)
	}
}

func (s *AchievementRepositorySuite) TestUnlockIsIdempotent() {
	ctx := context.Background()

	first, err := s.repo.Unlock(ctx, catalog.AchievementFirstCorrect)
	s.Require().NoError(err)
	s.True(first)

	again, err := s.repo.Unlock(ctx, catalog.AchievementFirstCorrect)
	s.Require().NoError(err)
	s.False(again)

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	unlocked := 0
	for _, a := range list {
		if a.Unlocked {
			unlocked++
			s.Equal(catalog.AchievementFirstCorrect, a.Key)
			s.NotNil(a.UnlockedAt)
		}
	}
	s.Equal(1, unlocked)
}

func TestAchievementRepositorySuite(t *testing.T) {
	suite.Run(t, new(AchievementRepositorySuite))
}
