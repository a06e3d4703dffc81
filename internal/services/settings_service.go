package services

import (
	"context"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/game"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

// validFocusFilters are the building categories a player may focus on.
var validFocusFilters = map[string]bool{
	"academic":   true,
	"recreation": true,
	"services":   true,
	"dining":     true,
}

// SettingsService handles reading and validating player settings
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, s models.Settings) (models.Settings, error)
	Reset(ctx context.Context) (models.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return models.Settings{}, errors.NewInternalError(err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings models.Settings) (models.Settings, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating settings: difficulty=%s mode=%s", settings.Difficulty, settings.Mode)

	if !catalog.ValidDifficulty(settings.Difficulty) {
		return models.Settings{}, errors.NewValidationError("difficulty", "unknown difficulty "+settings.Difficulty)
	}
	if !game.ValidMode(settings.Mode) {
		return models.Settings{}, errors.NewValidationError("mode", "unknown mode "+settings.Mode)
	}
	if settings.TotalRounds < 1 || settings.TotalRounds > 50 {
		return models.Settings{}, errors.NewValidationError("total_rounds", "must be between 1 and 50")
	}
	if len(settings.FocusFilters) == 0 {
		return models.Settings{}, errors.NewValidationError("focus_filters", "at least one filter required")
	}
	for _, f := range settings.FocusFilters {
		if !validFocusFilters[f] {
			return models.Settings{}, errors.NewValidationError("focus_filters", "unknown filter "+f)
		}
	}
	if settings.Persona != "" {
		if _, ok := catalog.PersonaByKey(settings.Persona); !ok {
			return models.Settings{}, errors.NewValidationError("persona", "unknown persona "+settings.Persona)
		}
	}
	if settings.MajorDeck != "" {
		if _, ok := catalog.MajorDeckByKey(settings.MajorDeck); !ok {
			return models.Settings{}, errors.NewValidationError("major_deck", "unknown deck "+settings.MajorDeck)
		}
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return models.Settings{}, errors.NewInternalError(err)
	}
	log.Info("settings updated")
	return settings, nil
}

// Reset restores the out-of-the-box settings.
func (s *settingsService) Reset(ctx context.Context) (models.Settings, error) {
	defaults := models.DefaultSettings()
	if err := s.repo.Save(ctx, defaults); err != nil {
		return models.Settings{}, errors.NewInternalError(err)
	}
	logger.FromContext(ctx).Info("settings reset to defaults")
	return defaults, nil
}
