package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

type achievementRepository struct {
	db *sql.DB
}

// NewAchievementRepository creates a new AchievementRepository implementation
func NewAchievementRepository(db *sql.DB) repository.AchievementRepository {
	return &achievementRepository{db: db}
}

// List joins the full achievement catalog with the persisted unlock rows so
// locked achievements still appear.
func (r *achievementRepository) List(ctx context.Context) ([]models.Achievement, error) {
	log := logger.FromContext(ctx).WithPrefix("achievement_repo")
	log.Debug("listing achievements")

	rows, err := r.db.QueryContext(ctx, `SELECT key, unlocked_at FROM achievements`)
	if err != nil {
		log.Error("failed to list achievements: %v", err)
		return nil, err
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var (
			key string
			at  time.Time
		)
		if err := rows.Scan(&key, &at); err != nil {
			log.Error("failed to scan achievement row: %v", err)
			return nil, err
		}
		unlocked[key] = at
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []models.Achievement
	for _, def := range catalog.Achievements() {
		a := models.Achievement{
			Key:         def.Key,
			Title:       def.Title,
			Description: def.Description,
		}
		if at, ok := unlocked[def.Key]; ok {
			a.Unlocked = true
			t := at
			a.UnlockedAt = &t
		}
		out = append(out, a)
	}
	return out, nil
}

// Unlock records an achievement, reporting whether this call was the first.
// Replays are absorbed by the primary key, so unlocking is idempotent.
func (r *achievementRepository) Unlock(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("achievement_repo")
	log.Debug("unlocking achievement: key=%s", key)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO achievements (key) VALUES (?)
ON CONFLICT (key) DO NOTHING
`, key)
	if err != nil {
		log.Error("failed to unlock achievement: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		log.Info("achievement unlocked: %s", key)
	}
	return n > 0, nil
}
