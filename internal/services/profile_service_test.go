package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/services"
	"github.com/jmercado/uicguessr/internal/testutil/mocks"
)

func TestProfileServiceInsights(t *testing.T) {
	stats := new(mocks.MockStatsRepository)
	learning := new(mocks.MockLearningRepository)
	achievements := new(mocks.MockAchievementRepository)

	learning.On("BuildingStats", mock.Anything).Return([]models.BuildingStat{
		{BuildingKey: "SCE", Attempts: 10, Correct: 2},  // weak
		{BuildingKey: "ARC", Attempts: 2, Correct: 0},   // too few attempts
		{BuildingKey: "LIB", Attempts: 8, Correct: 8},   // mastered
		{BuildingKey: "TH", Attempts: 4, Correct: 1},    // weak
		{BuildingKey: "UH", Attempts: 4, Correct: 4},    // seen too little to master
	}, nil)
	learning.On("CountSessions", mock.Anything, models.SessionFilter{}).Return(12, nil)
	learning.On("SessionHistory", mock.Anything, models.SessionFilter{Limit: 5}).Return([]models.SessionRecord{
		{ID: 1, Score: 300, PlayedAt: time.Now()},
	}, nil)
	stats.On("Get", mock.Anything).Return(models.Stats{GamesPlayed: 12, TotalScore: 3000}, nil)

	svc := services.NewProfileService(stats, learning, achievements)
	insights, err := svc.Insights(context.Background())
	require.NoError(t, err)

	require.Len(t, insights.Weak, 2)
	// Weakest first.
	assert.Equal(t, "SCE", insights.Weak[0].BuildingKey)
	assert.Equal(t, "TH", insights.Weak[1].BuildingKey)

	require.Len(t, insights.Mastered, 1)
	assert.Equal(t, "LIB", insights.Mastered[0].BuildingKey)

	assert.Equal(t, 5, insights.BuildingsSeen)
	assert.Equal(t, 12, insights.TotalSessions)
	assert.Equal(t, 250, insights.AverageScore)
	assert.Len(t, insights.RecentSessions, 1)
}

func TestProfileServiceStats(t *testing.T) {
	stats := new(mocks.MockStatsRepository)
	learning := new(mocks.MockLearningRepository)
	achievements := new(mocks.MockAchievementRepository)

	stats.On("Get", mock.Anything).Return(models.Stats{GamesPlayed: 3, BestScore: 700}, nil)
	stats.On("HighScores", mock.Anything).Return([]models.HighScore{{Score: 700}}, nil)

	svc := services.NewProfileService(stats, learning, achievements)
	overview, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, overview.Stats.GamesPlayed)
	require.Len(t, overview.HighScores, 1)
	assert.Equal(t, 700, overview.HighScores[0].Score)
}

func TestProfileServiceMarkMapViewed(t *testing.T) {
	stats := new(mocks.MockStatsRepository)
	learning := new(mocks.MockLearningRepository)
	achievements := new(mocks.MockAchievementRepository)

	achievements.On("Unlock", mock.Anything, "map_lover").Return(true, nil).Once()

	svc := services.NewProfileService(stats, learning, achievements)
	first, err := svc.MarkMapViewed(context.Background())
	require.NoError(t, err)
	assert.True(t, first)
	achievements.AssertExpectations(t)
}

func TestProfileServiceSessionHistoryLoadsResults(t *testing.T) {
	stats := new(mocks.MockStatsRepository)
	learning := new(mocks.MockLearningRepository)
	achievements := new(mocks.MockAchievementRepository)

	filter := models.SessionFilter{Mode: "classic", Limit: 10}
	learning.On("SessionHistory", mock.Anything, filter).Return([]models.SessionRecord{
		{ID: 7, Score: 400},
	}, nil)
	learning.On("CountSessions", mock.Anything, filter).Return(1, nil)
	learning.On("SessionResults", mock.Anything, int64(7)).Return([]models.RoundResult{
		{Round: 1, BuildingKey: "SCE", Correct: true},
	}, nil)

	svc := services.NewProfileService(stats, learning, achievements)
	sessions, count, err := svc.SessionHistory(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, sessions, 1)
	require.Len(t, sessions[0].Results, 1)
	assert.Equal(t, "SCE", sessions[0].Results[0].BuildingKey)
}
