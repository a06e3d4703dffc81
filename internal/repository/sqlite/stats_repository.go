package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

// highScoreLimit caps the leaderboard at the ten best runs.
const highScoreLimit = 10

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context) (models.Stats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("loading stats")

	var s models.Stats
	err := r.db.QueryRowContext(ctx, `
SELECT games_played, best_score, total_score, perfect_games
FROM stats
WHERE id = 1
`).Scan(&s.GamesPlayed, &s.BestScore, &s.TotalScore, &s.PerfectGames)
	if err != nil {
		log.Error("failed to load stats: %v", err)
		return models.Stats{}, err
	}
	return s, nil
}

func (r *statsRepository) HighScores(ctx context.Context) ([]models.HighScore, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("listing high scores")

	query := sqlBuilder.Select("score", "difficulty", "mode", "recorded_at").
		From("high_scores").
		OrderBy("score DESC", "recorded_at ASC").
		Limit(highScoreLimit)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list high scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var scores []models.HighScore
	for rows.Next() {
		var h models.HighScore
		if err := rows.Scan(&h.Score, &h.Difficulty, &h.Mode, &h.RecordedAt); err != nil {
			log.Error("failed to scan high score row: %v", err)
			return nil, err
		}
		scores = append(scores, h)
	}
	return scores, rows.Err()
}
