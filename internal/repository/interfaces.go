package repository

import (
	"context"

	"github.com/jmercado/uicguessr/internal/models"
)

// SettingsRepository handles the single persisted settings row
type SettingsRepository interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
}

// StatsRepository handles aggregate counters and the high-score board
type StatsRepository interface {
	Get(ctx context.Context) (models.Stats, error)
	HighScores(ctx context.Context) ([]models.HighScore, error)
}

// LearningRepository handles per-building accuracy and session history
type LearningRepository interface {
	BuildingStats(ctx context.Context) ([]models.BuildingStat, error)
	BuildingStat(ctx context.Context, key string) (*models.BuildingStat, error)
	SessionHistory(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error)
	CountSessions(ctx context.Context, filter models.SessionFilter) (int, error)
	SessionResults(ctx context.Context, sessionID int64) ([]models.RoundResult, error)
}

// AchievementRepository handles unlock state
type AchievementRepository interface {
	List(ctx context.Context) ([]models.Achievement, error)
	Unlock(ctx context.Context, key string) (bool, error)
}

// ProfileRepository applies a finished session to the whole profile
// atomically: counters, high scores, building history and session history
// move together or not at all.
type ProfileRepository interface {
	ApplySession(ctx context.Context, summary models.SessionSummary) error
}
