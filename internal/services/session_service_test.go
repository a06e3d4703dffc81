package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmercado/uicguessr/internal/catalog"
	apperrors "github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/game"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/services"
	"github.com/jmercado/uicguessr/internal/testutil/mocks"
)

type sessionServiceFixture struct {
	svc          services.SessionService
	settings     *mocks.MockSettingsRepository
	profiles     *mocks.MockProfileRepository
	achievements *mocks.MockAchievementRepository
	learning     *mocks.MockLearningRepository
}

func newSessionServiceFixture(t *testing.T) *sessionServiceFixture {
	t.Helper()
	f := &sessionServiceFixture{
		settings:     new(mocks.MockSettingsRepository),
		profiles:     new(mocks.MockProfileRepository),
		achievements: new(mocks.MockAchievementRepository),
		learning:     new(mocks.MockLearningRepository),
	}
	f.settings.On("Get", mock.Anything).Return(models.DefaultSettings(), nil)
	f.achievements.On("Unlock", mock.Anything, mock.Anything).Return(true, nil)
	f.svc = services.NewSessionService(
		f.settings, f.profiles, f.achievements, f.learning,
		time.Hour, time.Hour,
		services.WithGameOptions(
			game.WithScheduler(game.NewManualScheduler()),
			game.WithRand(rand.New(rand.NewSource(11))),
		),
	)
	t.Cleanup(f.svc.Shutdown)
	return f
}

// correctKey resolves the round's answer from the outside: the photo in the
// view belongs to exactly one catalog building.
func correctKey(t *testing.T, v game.View) string {
	t.Helper()
	for _, b := range catalog.Buildings() {
		if b.Photo == v.Photo {
			return b.Key
		}
	}
	t.Fatalf("no building matches photo %q", v.Photo)
	return ""
}

// playRound answers the current round correctly.
func playRound(t *testing.T, svc services.SessionService, id string) {
	t.Helper()
	ctx := context.Background()
	v, err := svc.Get(ctx, id)
	require.NoError(t, err)
	_, err = svc.Select(ctx, id, correctKey(t, v))
	require.NoError(t, err)
	after, err := svc.Answer(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "correct", after.State)
}

func TestSessionServiceCreateUsesSavedSettings(t *testing.T) {
	f := newSessionServiceFixture(t)

	id, view, err := f.svc.Create(context.Background(), services.CreateSessionRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "easy", view.Difficulty)
	assert.Equal(t, "classic", view.Mode)
	assert.Equal(t, "awaiting_answer", view.State)
	assert.Equal(t, 5, view.TotalRounds)
	assert.Len(t, view.Options, 4)
}

func TestSessionServiceCreateValidation(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Create(ctx, services.CreateSessionRequest{Difficulty: "impossible"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, _, err = f.svc.Create(ctx, services.CreateSessionRequest{Mode: "speedrun"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, _, err = f.svc.Create(ctx, services.CreateSessionRequest{Persona: "ghost"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, _, err = f.svc.Create(ctx, services.CreateSessionRequest{Focus: []string{"underwater"}})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestSessionServiceUnknownSession(t *testing.T) {
	f := newSessionServiceFixture(t)

	_, err := f.svc.Get(context.Background(), "01JXYZ")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestSessionServiceFullGamePersistsOnce(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.profiles.On("ApplySession", mock.Anything, mock.MatchedBy(func(s models.SessionSummary) bool {
		return s.Rounds == 5 && s.Mode == "classic"
	})).Return(nil).Once()

	id, _, err := f.svc.Create(ctx, services.CreateSessionRequest{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		playRound(t, f.svc, id)
		_, err := f.svc.Next(ctx, id)
		require.NoError(t, err)
	}

	f.profiles.AssertExpectations(t)

	// The completed session is retired from the registry.
	_, err = f.svc.Get(ctx, id)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestSessionServiceEndPersists(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.profiles.On("ApplySession", mock.Anything, mock.Anything).Return(nil).Once()

	id, _, err := f.svc.Create(ctx, services.CreateSessionRequest{Mode: "endless"})
	require.NoError(t, err)

	playRound(t, f.svc, id)
	_, err = f.svc.Next(ctx, id)
	require.NoError(t, err)

	summary, err := f.svc.End(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "endless", summary.Mode)
	assert.Equal(t, 1, summary.Rounds)
	f.profiles.AssertExpectations(t)
}

func TestSessionServiceAnswerFlushesAchievements(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	id, _, err := f.svc.Create(ctx, services.CreateSessionRequest{})
	require.NoError(t, err)

	playRound(t, f.svc, id)
	f.achievements.AssertCalled(t, "Unlock", mock.Anything, "first_correct")
}

func TestSessionServiceFlushUnlocksEachKeyOnce(t *testing.T) {
	// The flush cursor runs after every answer, advance, and the final
	// persist; a key earned early must still reach storage exactly once.
	settings := new(mocks.MockSettingsRepository)
	settings.On("Get", mock.Anything).Return(models.DefaultSettings(), nil)
	profiles := new(mocks.MockProfileRepository)
	profiles.On("ApplySession", mock.Anything, mock.Anything).Return(nil).Once()
	achievements := new(mocks.MockAchievementRepository)
	achievements.On("Unlock", mock.Anything, catalog.AchievementFirstCorrect).Return(true, nil).Once()
	achievements.On("Unlock", mock.Anything, catalog.AchievementNoHintsRound).Return(true, nil).Once()
	learning := new(mocks.MockLearningRepository)

	svc := services.NewSessionService(
		settings, profiles, achievements, learning,
		time.Hour, time.Hour,
		services.WithGameOptions(
			game.WithScheduler(game.NewManualScheduler()),
			game.WithRand(rand.New(rand.NewSource(5))),
		),
	)
	t.Cleanup(svc.Shutdown)
	ctx := context.Background()

	id, _, err := svc.Create(ctx, services.CreateSessionRequest{Mode: "zen", Rounds: 2})
	require.NoError(t, err)

	playRound(t, svc, id)
	_, err = svc.Next(ctx, id)
	require.NoError(t, err)
	playRound(t, svc, id)
	view, err := svc.Next(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "complete", view.State)

	achievements.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestSessionServicePracticeUsesWeakBuildings(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	f.learning.On("BuildingStats", mock.Anything).Return([]models.BuildingStat{
		{BuildingKey: "SCE", Attempts: 4, Correct: 1},
		{BuildingKey: "ARC", Attempts: 5, Correct: 1},
		{BuildingKey: "LIB", Attempts: 3, Correct: 0},
		{BuildingKey: "TH", Attempts: 6, Correct: 2},
		{BuildingKey: "UH", Attempts: 10, Correct: 9},
	}, nil).Once()

	id, view, err := f.svc.Create(ctx, services.CreateSessionRequest{Mode: "practice"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	// Four weak buildings cap the practice run at four rounds.
	assert.Equal(t, 4, view.TotalRounds)
	f.learning.AssertExpectations(t)
}

func TestSessionServiceRevealOnlyAfterResolve(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	id, _, err := f.svc.Create(ctx, services.CreateSessionRequest{})
	require.NoError(t, err)

	_, err = f.svc.Reveal(ctx, id)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)

	playRound(t, f.svc, id)
	reveal, err := f.svc.Reveal(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, reveal.Building.Key)
	assert.NotEmpty(t, reveal.Building.Name)
	assert.Contains(t, reveal.MapsURL, "google.com/maps")
	assert.Nil(t, reveal.Guess, "correct rounds have no guess comparison")
}

func TestSessionServiceRevealComparesWrongGuess(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	id, view, err := f.svc.Create(ctx, services.CreateSessionRequest{})
	require.NoError(t, err)

	right := correctKey(t, view)
	var wrong string
	for _, opt := range view.Options {
		if opt.Key != right {
			wrong = opt.Key
			break
		}
	}
	require.NotEmpty(t, wrong)

	// Miss both attempts with the same wrong building.
	_, err = f.svc.Select(ctx, id, wrong)
	require.NoError(t, err)
	v, err := f.svc.Answer(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "incorrect_retry", v.State)
	_, err = f.svc.Retry(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.Select(ctx, id, wrong)
	require.NoError(t, err)
	v, err = f.svc.Answer(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "incorrect_final", v.State)

	reveal, err := f.svc.Reveal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, right, reveal.Building.Key)
	require.NotNil(t, reveal.Guess)
	assert.Equal(t, wrong, reveal.Guess.Key)
	require.NotNil(t, reveal.Walk)
	assert.Greater(t, reveal.Walk.Meters, 0.0)
	assert.NotEmpty(t, reveal.Walk.Bearing)
}

func TestSessionServiceHint(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()

	id, _, err := f.svc.Create(ctx, services.CreateSessionRequest{})
	require.NoError(t, err)

	hint, view, err := f.svc.Hint(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, hint)
	assert.Len(t, view.HintsShown, 1)
}
