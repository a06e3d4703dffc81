package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// ApplySession folds one finished session into the profile inside a single
// transaction. A crash mid-way leaves counters, high scores, building
// history and session history mutually consistent.
func (r *profileRepository) ApplySession(ctx context.Context, summary models.SessionSummary) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("applying session: score=%d rounds=%d mode=%s", summary.Score, summary.Rounds, summary.Mode)

	playedAt := summary.CompletedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	perfect := 0
	if summary.Rounds > 0 && summary.Score == summary.Rounds*100 {
		perfect = 1
	}

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
UPDATE stats
SET games_played = games_played + 1,
    total_score = total_score + ?,
    best_score = MAX(best_score, ?),
    perfect_games = perfect_games + ?
WHERE id = 1
`, summary.Score, summary.Score, perfect); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
INSERT INTO high_scores (score, difficulty, mode, recorded_at)
VALUES (?, ?, ?, ?)
`, summary.Score, summary.Difficulty, summary.Mode, playedAt); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
DELETE FROM high_scores
WHERE id NOT IN (
    SELECT id FROM high_scores ORDER BY score DESC, recorded_at ASC LIMIT ?
)
`, highScoreLimit); err != nil {
			return err
		}

		for _, res := range summary.Results {
			correct := 0
			if res.Correct {
				correct = 1
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO building_stats (building_key, attempts, correct, last_seen)
VALUES (?, 1, ?, ?)
ON CONFLICT (building_key) DO UPDATE SET
    attempts = attempts + 1,
    correct = correct + excluded.correct,
    last_seen = excluded.last_seen
`, res.BuildingKey, correct, playedAt); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO building_attempts (building_key, correct, attempts_used, attempted_at)
VALUES (?, ?, ?, ?)
`, res.BuildingKey, res.Correct, res.AttemptsUsed, playedAt); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
DELETE FROM building_attempts
WHERE building_key = ? AND id NOT IN (
    SELECT id FROM building_attempts
    WHERE building_key = ?
    ORDER BY attempted_at DESC, id DESC
    LIMIT ?
)
`, res.BuildingKey, res.BuildingKey, attemptHistoryLimit); err != nil {
				return err
			}
		}

		sessionRes, err := tx.ExecContext(ctx, `
INSERT INTO session_history (score, rounds, max_streak, perfect_rounds, total_bonus, difficulty, mode, persona, major_deck, played_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, summary.Score, summary.Rounds, summary.MaxStreak, summary.PerfectRounds, summary.TotalBonus,
			summary.Difficulty, summary.Mode, summary.Persona, summary.MajorDeck, playedAt)
		if err != nil {
			return err
		}
		sessionID, err := sessionRes.LastInsertId()
		if err != nil {
			return err
		}
		for _, res := range summary.Results {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO session_results (session_id, round, building_key, correct, points, bonus_points, total_points, attempts_used, hints_used, time_remaining, streak, time_expired)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, sessionID, res.Round, res.BuildingKey, res.Correct, res.Points, res.BonusPoints, res.TotalPoints,
				res.AttemptsUsed, res.HintsUsed, res.TimeRemaining, res.Streak, res.TimeExpired); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
DELETE FROM session_history
WHERE id NOT IN (
    SELECT id FROM session_history ORDER BY played_at DESC, id DESC LIMIT ?
)
`, sessionHistoryLimit)
		return err
	})
	if err != nil {
		log.Error("failed to apply session: %v", err)
		return err
	}
	log.Debug("session applied")
	return nil
}
