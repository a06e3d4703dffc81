package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

// Rolling history caps. Older rows are trimmed on write, not on read.
const (
	attemptHistoryLimit = 20
	sessionHistoryLimit = 50
)

type learningRepository struct {
	db *sql.DB
}

// NewLearningRepository creates a new LearningRepository implementation
func NewLearningRepository(db *sql.DB) repository.LearningRepository {
	return &learningRepository{db: db}
}

func (r *learningRepository) BuildingStats(ctx context.Context) ([]models.BuildingStat, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_repo")
	log.Debug("listing building stats")

	rows, err := r.db.QueryContext(ctx, `
SELECT building_key, attempts, correct, last_seen
FROM building_stats
ORDER BY building_key
`)
	if err != nil {
		log.Error("failed to list building stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []models.BuildingStat
	for rows.Next() {
		var s models.BuildingStat
		if err := rows.Scan(&s.BuildingKey, &s.Attempts, &s.Correct, &s.LastSeen); err != nil {
			log.Error("failed to scan building stat row: %v", err)
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *learningRepository) BuildingStat(ctx context.Context, key string) (*models.BuildingStat, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_repo")
	log.Debug("getting building stat: key=%s", key)

	var s models.BuildingStat
	err := r.db.QueryRowContext(ctx, `
SELECT building_key, attempts, correct, last_seen
FROM building_stats
WHERE building_key = ?
`, key).Scan(&s.BuildingKey, &s.Attempts, &s.Correct, &s.LastSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("building stat not found: key=%s", key)
		} else {
			log.Error("failed to get building stat: %v", err)
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT attempted_at, correct, attempts_used
FROM building_attempts
WHERE building_key = ?
ORDER BY attempted_at DESC, id DESC
LIMIT ?
`, key, attemptHistoryLimit)
	if err != nil {
		log.Error("failed to load attempt history: %v", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var a models.AttemptRecord
		if err := rows.Scan(&a.Date, &a.Correct, &a.AttemptsUsed); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return nil, err
		}
		s.History = append(s.History, a)
	}
	return &s, rows.Err()
}

func (r *learningRepository) SessionHistory(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_repo")
	log.Debug("listing sessions with filter: difficulty=%s, mode=%s", filter.Difficulty, filter.Mode)

	query := sqlBuilder.Select("id", "score", "rounds", "difficulty", "mode", "persona", "major_deck", "played_at").
		From("session_history")
	query = applySessionFilter(query, filter)
	query = query.OrderBy("played_at DESC", "id DESC")

	limit := filter.Limit
	if limit <= 0 || limit > sessionHistoryLimit {
		limit = sessionHistoryLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.SessionRecord
	for rows.Next() {
		var s models.SessionRecord
		if err := rows.Scan(&s.ID, &s.Score, &s.Rounds, &s.Difficulty, &s.Mode, &s.Persona, &s.MajorDeck, &s.PlayedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *learningRepository) CountSessions(ctx context.Context, filter models.SessionFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_repo")

	query := sqlBuilder.Select("COUNT(*)").From("session_history")
	query = applySessionFilter(query, filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}
	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count sessions: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *learningRepository) SessionResults(ctx context.Context, sessionID int64) ([]models.RoundResult, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_repo")
	log.Debug("loading session results: session_id=%d", sessionID)

	rows, err := r.db.QueryContext(ctx, `
SELECT round, building_key, correct, points, bonus_points, total_points, attempts_used, hints_used, time_remaining, streak, time_expired
FROM session_results
WHERE session_id = ?
ORDER BY round
`, sessionID)
	if err != nil {
		log.Error("failed to load session results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.RoundResult
	for rows.Next() {
		var res models.RoundResult
		if err := rows.Scan(&res.Round, &res.BuildingKey, &res.Correct, &res.Points, &res.BonusPoints, &res.TotalPoints, &res.AttemptsUsed, &res.HintsUsed, &res.TimeRemaining, &res.Streak, &res.TimeExpired); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func applySessionFilter(query squirrel.SelectBuilder, filter models.SessionFilter) squirrel.SelectBuilder {
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}
	if filter.Mode != "" {
		query = query.Where(squirrel.Eq{"mode": filter.Mode})
	}
	return query
}
