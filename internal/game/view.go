package game

import (
	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/models"
)

// Outcome is what one Submit (or a timeout) resolved to.
type Outcome struct {
	Correct           bool                `json:"correct"`
	State             State               `json:"-"`
	Points            int                 `json:"points"`
	BonusPoints       int                 `json:"bonus_points"`
	TotalPoints       int                 `json:"total_points"`
	BonusReasons      []string            `json:"bonus_reasons,omitempty"`
	Streak            int                 `json:"streak"`
	AttemptsRemaining int                 `json:"attempts_remaining"`
	TimeExpired       bool                `json:"time_expired"`
	Result            *models.RoundResult `json:"result,omitempty"`
}

// AnswerOption is one choice offered to the player.
type AnswerOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// View is a player-safe snapshot of the session: the photo and options of
// the current question without the answer key.
type View struct {
	State             string               `json:"state"`
	Mode              string               `json:"mode"`
	Difficulty        string               `json:"difficulty"`
	Round             int                  `json:"round"`
	TotalRounds       int                  `json:"total_rounds"`
	Endless           bool                 `json:"endless"`
	Score             int                  `json:"score"`
	Streak            int                  `json:"streak"`
	MaxStreak         int                  `json:"max_streak"`
	AttemptsRemaining int                  `json:"attempts_remaining"`
	TimerEnabled      bool                 `json:"timer_enabled"`
	TimeRemaining     int                  `json:"time_remaining"`
	HintsEnabled      bool                 `json:"hints_enabled"`
	HintsShown        []string             `json:"hints_shown,omitempty"`
	HintsLeft         int                  `json:"hints_left"`
	Photo             string               `json:"photo,omitempty"`
	Selected          string               `json:"selected,omitempty"`
	Options           []AnswerOption       `json:"options,omitempty"`
	LastOutcome       *Outcome             `json:"last_outcome,omitempty"`
	Results           []models.RoundResult `json:"results,omitempty"`
}

// Snapshot captures the session for the API. The correct answer is never
// present while the round is open.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:             s.state.String(),
		Mode:              s.mode,
		Difficulty:        s.difficulty,
		Round:             s.round,
		TotalRounds:       s.totalRounds,
		Endless:           s.policy.endless,
		Score:             s.score,
		Streak:            s.streak,
		MaxStreak:         s.maxStreak,
		AttemptsRemaining: s.attemptsRemaining,
		TimerEnabled:      s.policy.timerEnabled,
		TimeRemaining:     s.timeRemaining,
		HintsEnabled:      s.policy.hintsEnabled,
		HintsShown:        append([]string(nil), s.hintsShown...),
		LastOutcome:       s.lastOutcome,
		Results:           append([]models.RoundResult(nil), s.results...),
	}
	if s.policy.hintsEnabled {
		v.HintsLeft = len(s.allHints) - len(s.hintsShown)
	}
	if s.state == StateAwaitingAnswer || s.state == StateIncorrectRetry ||
		s.state == StateCorrect || s.state == StateIncorrectFinal {
		if b, ok := catalog.Building(s.current.CorrectAnswer); ok {
			v.Photo = b.Photo
		}
		v.Selected = s.selected
		for _, key := range s.current.Options {
			opt := AnswerOption{Key: key}
			if b, ok := catalog.Building(key); ok {
				opt.Name = b.Name
			}
			v.Options = append(v.Options, opt)
		}
	}
	return v
}
