package services

import (
	"context"
	"sort"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

// Weak and mastered thresholds for the learning insights.
const (
	weakAccuracy     = 0.5
	weakMinAttempts  = 3
	masteryAccuracy  = 0.8
	masteryMinSeen   = 5
	recentSessionCap = 5
)

// StatsOverview bundles the aggregate counters with the leaderboard.
type StatsOverview struct {
	Stats      models.Stats       `json:"stats"`
	HighScores []models.HighScore `json:"high_scores"`
}

// ProfileService reads the persistent player profile
type ProfileService interface {
	Stats(ctx context.Context) (StatsOverview, error)
	Insights(ctx context.Context) (models.Insights, error)
	SessionHistory(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, int, error)
	Achievements(ctx context.Context) ([]models.Achievement, error)
	MarkMapViewed(ctx context.Context) (bool, error)
}

type profileService struct {
	stats        repository.StatsRepository
	learning     repository.LearningRepository
	achievements repository.AchievementRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	stats repository.StatsRepository,
	learning repository.LearningRepository,
	achievements repository.AchievementRepository,
) ProfileService {
	return &profileService{stats: stats, learning: learning, achievements: achievements}
}

func (s *profileService) Stats(ctx context.Context) (StatsOverview, error) {
	stats, err := s.stats.Get(ctx)
	if err != nil {
		return StatsOverview{}, errors.NewInternalError(err)
	}
	scores, err := s.stats.HighScores(ctx)
	if err != nil {
		return StatsOverview{}, errors.NewInternalError(err)
	}
	return StatsOverview{Stats: stats, HighScores: scores}, nil
}

func (s *profileService) Insights(ctx context.Context) (models.Insights, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing learning insights")

	buildingStats, err := s.learning.BuildingStats(ctx)
	if err != nil {
		return models.Insights{}, errors.NewInternalError(err)
	}

	var insights models.Insights
	for _, b := range buildingStats {
		insights.BuildingsSeen++
		row := models.BuildingInsight{
			BuildingKey: b.BuildingKey,
			Accuracy:    b.Accuracy(),
			Attempts:    b.Attempts,
		}
		switch {
		case b.Attempts >= weakMinAttempts && b.Accuracy() < weakAccuracy:
			insights.Weak = append(insights.Weak, row)
		case b.Attempts >= masteryMinSeen && b.Accuracy() >= masteryAccuracy:
			insights.Mastered = append(insights.Mastered, row)
		}
	}
	// Weakest first, strongest first.
	sort.Slice(insights.Weak, func(i, j int) bool {
		return insights.Weak[i].Accuracy < insights.Weak[j].Accuracy
	})
	sort.Slice(insights.Mastered, func(i, j int) bool {
		return insights.Mastered[i].Accuracy > insights.Mastered[j].Accuracy
	})

	insights.TotalSessions, err = s.learning.CountSessions(ctx, models.SessionFilter{})
	if err != nil {
		return models.Insights{}, errors.NewInternalError(err)
	}

	stats, err := s.stats.Get(ctx)
	if err != nil {
		return models.Insights{}, errors.NewInternalError(err)
	}
	if stats.GamesPlayed > 0 {
		insights.AverageScore = stats.TotalScore / stats.GamesPlayed
	}

	insights.RecentSessions, err = s.learning.SessionHistory(ctx, models.SessionFilter{Limit: recentSessionCap})
	if err != nil {
		return models.Insights{}, errors.NewInternalError(err)
	}
	return insights, nil
}

func (s *profileService) SessionHistory(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, int, error) {
	sessions, err := s.learning.SessionHistory(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError(err)
	}
	count, err := s.learning.CountSessions(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError(err)
	}
	for i := range sessions {
		sessions[i].Results, err = s.learning.SessionResults(ctx, sessions[i].ID)
		if err != nil {
			return nil, 0, errors.NewInternalError(err)
		}
	}
	return sessions, count, nil
}

func (s *profileService) Achievements(ctx context.Context) ([]models.Achievement, error) {
	list, err := s.achievements.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return list, nil
}

// MarkMapViewed unlocks the map-exploration achievement. Reports whether
// this was the first view.
func (s *profileService) MarkMapViewed(ctx context.Context) (bool, error) {
	first, err := s.achievements.Unlock(ctx, catalog.AchievementMapLover)
	if err != nil {
		return false, errors.NewInternalError(err)
	}
	return first, nil
}
