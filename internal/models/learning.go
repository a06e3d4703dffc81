package models

import "time"

// AttemptRecord is one entry of a building's rolling attempt history.
type AttemptRecord struct {
	Date         time.Time `json:"date"`
	Correct      bool      `json:"correct"`
	AttemptsUsed int       `json:"attempts_used"`
}

// BuildingStat tracks how well the player recognizes a single building.
// History is capped at the 20 most recent attempts.
type BuildingStat struct {
	BuildingKey string          `json:"building_key"`
	Attempts    int             `json:"attempts"`
	Correct     int             `json:"correct"`
	LastSeen    *time.Time      `json:"last_seen,omitempty"`
	History     []AttemptRecord `json:"history"`
}

// Accuracy returns the fraction of correct attempts, 0 when unseen.
func (b BuildingStat) Accuracy() float64 {
	if b.Attempts == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Attempts)
}

// BuildingInsight is a derived weak/mastered classification row.
type BuildingInsight struct {
	BuildingKey string  `json:"building_key"`
	Accuracy    float64 `json:"accuracy"`
	Attempts    int     `json:"attempts"`
}

// SessionRecord is one entry of the capped session history (most recent 50).
type SessionRecord struct {
	ID         int64         `json:"id"`
	Score      int           `json:"score"`
	Rounds     int           `json:"rounds"`
	Difficulty string        `json:"difficulty"`
	Mode       string        `json:"mode"`
	Persona    string        `json:"persona,omitempty"`
	MajorDeck  string        `json:"major_deck,omitempty"`
	PlayedAt   time.Time     `json:"played_at"`
	Results    []RoundResult `json:"results,omitempty"`
}

// SessionFilter narrows session-history queries.
type SessionFilter struct {
	Difficulty string
	Mode       string
	Limit      int
	Offset     int
}

// Insights bundles the derived learning-analytics view.
type Insights struct {
	Weak           []BuildingInsight `json:"weak"`
	Mastered       []BuildingInsight `json:"mastered"`
	TotalSessions  int               `json:"total_sessions"`
	BuildingsSeen  int               `json:"buildings_seen"`
	AverageScore   int               `json:"average_score"`
	RecentSessions []SessionRecord   `json:"recent_sessions"`
}
