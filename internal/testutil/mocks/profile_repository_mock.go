package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/jmercado/uicguessr/internal/models"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ApplySession(ctx context.Context, summary models.SessionSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

func (m *MockStatsRepository) HighScores(ctx context.Context) ([]models.HighScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HighScore), args.Error(1)
}

// MockAchievementRepository is a mock implementation of repository.AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) List(ctx context.Context) ([]models.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Unlock(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockLearningRepository is a mock implementation of repository.LearningRepository
type MockLearningRepository struct {
	mock.Mock
}

func (m *MockLearningRepository) BuildingStats(ctx context.Context) ([]models.BuildingStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BuildingStat), args.Error(1)
}

func (m *MockLearningRepository) BuildingStat(ctx context.Context, key string) (*models.BuildingStat, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BuildingStat), args.Error(1)
}

func (m *MockLearningRepository) SessionHistory(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}

func (m *MockLearningRepository) CountSessions(ctx context.Context, filter models.SessionFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockLearningRepository) SessionResults(ctx context.Context, sessionID int64) ([]models.RoundResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoundResult), args.Error(1)
}
