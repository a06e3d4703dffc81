package models

import "time"

// Settings holds the player-tunable configuration loaded at startup and
// persisted on every change. Zero value is not usable; call DefaultSettings.
type Settings struct {
	Difficulty   string   `json:"difficulty"`
	Mode         string   `json:"mode"`
	SoundEnabled bool     `json:"sound_enabled"`
	HintsEnabled bool     `json:"hints_enabled"`
	TimerEnabled bool     `json:"timer_enabled"`
	FocusFilters []string `json:"focus_filters"`
	TotalRounds  int      `json:"total_rounds"`
	Persona      string   `json:"persona,omitempty"`
	MajorDeck    string   `json:"major_deck,omitempty"`
}

// DefaultSettings mirrors the out-of-the-box game configuration.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:   "easy",
		Mode:         "classic",
		SoundEnabled: true,
		HintsEnabled: true,
		TimerEnabled: true,
		FocusFilters: []string{"academic", "recreation", "services", "dining"},
		TotalRounds:  5,
	}
}

// Stats holds cross-session aggregate counters.
type Stats struct {
	GamesPlayed  int `json:"games_played"`
	BestScore    int `json:"best_score"`
	TotalScore   int `json:"total_score"`
	PerfectGames int `json:"perfect_games"`
}

// HighScore is one row of the capped leaderboard.
type HighScore struct {
	Score      int       `json:"score"`
	Difficulty string    `json:"difficulty"`
	Mode       string    `json:"mode"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Achievement pairs a catalog entry with its unlock state.
type Achievement struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}
