package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
	"github.com/jmercado/uicguessr/internal/repository/sqlite"
	"github.com/jmercado/uicguessr/internal/testutil"
)

type SettingsRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.SettingsRepository
}

func (s *SettingsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSettingsRepository(s.db)
}

func (s *SettingsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SettingsRepositorySuite) TestDefaultsSeeded() {
	got, err := s.repo.Get(context.Background())
	s.Require().NoError(err)
	s.Equal(models.DefaultSettings(), got)
}

func (s *SettingsRepositorySuite) TestSaveRoundTrip() {
	ctx := context.Background()

	want := models.Settings{
		Difficulty:   "hard",
		Mode:         "sprint",
		SoundEnabled: false,
		HintsEnabled: true,
		TimerEnabled: false,
		FocusFilters: []string{"academic"},
		TotalRounds:  10,
		Persona:      "athlete",
		MajorDeck:    "engineering",
	}
	s.Require().NoError(s.repo.Save(ctx, want))

	got, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func TestSettingsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositorySuite))
}
