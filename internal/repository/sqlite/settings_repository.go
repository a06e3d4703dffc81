package sqlite

import (
	"database/sql"
	"encoding/json"

	"context"

	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository implementation
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("loading settings")

	var (
		s       models.Settings
		filters string
	)
	err := r.db.QueryRowContext(ctx, `
SELECT difficulty, mode, sound_enabled, hints_enabled, timer_enabled, focus_filters, total_rounds, persona, major_deck
FROM settings
WHERE id = 1
`).Scan(&s.Difficulty, &s.Mode, &s.SoundEnabled, &s.HintsEnabled, &s.TimerEnabled, &filters, &s.TotalRounds, &s.Persona, &s.MajorDeck)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return models.DefaultSettings(), err
	}
	if err := json.Unmarshal([]byte(filters), &s.FocusFilters); err != nil {
		log.Error("corrupt focus_filters, using defaults: %v", err)
		s.FocusFilters = models.DefaultSettings().FocusFilters
	}
	log.Debug("settings loaded: difficulty=%s mode=%s", s.Difficulty, s.Mode)
	return s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("saving settings: difficulty=%s mode=%s", s.Difficulty, s.Mode)

	filters, err := json.Marshal(s.FocusFilters)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
UPDATE settings
SET difficulty = ?, mode = ?, sound_enabled = ?, hints_enabled = ?, timer_enabled = ?,
    focus_filters = ?, total_rounds = ?, persona = ?, major_deck = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = 1
`, s.Difficulty, s.Mode, s.SoundEnabled, s.HintsEnabled, s.TimerEnabled, string(filters), s.TotalRounds, s.Persona, s.MajorDeck)
	if err != nil {
		log.Error("failed to save settings: %v", err)
		return err
	}
	log.Debug("settings saved")
	return nil
}
