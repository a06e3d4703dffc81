package models

import "time"

// Building is an immutable catalog record for a quizzable campus location.
type Building struct {
	Key          string     `json:"key"`
	Name         string     `json:"name"`
	FullName     string     `json:"full_name"`
	Abbreviation string     `json:"abbreviation"`
	Address      string     `json:"address"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	Categories   []string   `json:"categories"`
	Photo        string     `json:"photo"`
	Description  string     `json:"description"`
	Resources    []Resource `json:"resources"`
	Landmarks    []string   `json:"landmarks"`
	Features     []string   `json:"features"`
	Tips         string     `json:"tips"`
	OfficialURL  string     `json:"official_url,omitempty"`
}

// Resource is a service or amenity hosted inside a building.
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CampusResource is an entry in the campus-wide resource directory.
type CampusResource struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Question is an ephemeral multiple-choice question drawn for one session.
// Options always contains four unique keys, one of which is the correct answer.
type Question struct {
	BuildingKey   string   `json:"building_key"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
	Difficulty    string   `json:"difficulty"`
	Hint          string   `json:"hint"`
}

// RoundResult records the outcome of a single round. Immutable once appended.
type RoundResult struct {
	Round         int    `json:"round"`
	BuildingKey   string `json:"building_key"`
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	BonusPoints   int    `json:"bonus_points"`
	TotalPoints   int    `json:"total_points"`
	AttemptsUsed  int    `json:"attempts_used"`
	HintsUsed     int    `json:"hints_used"`
	TimeRemaining int    `json:"time_remaining"`
	Streak        int    `json:"streak"`
	TimeExpired   bool   `json:"time_expired"`
}

// SessionSummary is the finalized result of a completed game session,
// handed to the profile updater.
type SessionSummary struct {
	Score         int           `json:"score"`
	Rounds        int           `json:"rounds"`
	MaxStreak     int           `json:"max_streak"`
	PerfectRounds int           `json:"perfect_rounds"`
	TotalBonus    int           `json:"total_bonus"`
	Difficulty    string        `json:"difficulty"`
	Mode          string        `json:"mode"`
	Persona       string        `json:"persona,omitempty"`
	MajorDeck     string        `json:"major_deck,omitempty"`
	Results       []RoundResult `json:"results"`
	CompletedAt   time.Time     `json:"completed_at"`
}

// Persona is a named preset that narrows the question pool to a curated
// building subset with a recommended session length.
type Persona struct {
	Key               string   `json:"key"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PriorityBuildings []string `json:"priority_buildings"`
	FocusAreas        []string `json:"focus_areas"`
	RecommendedRounds int      `json:"recommended_rounds"`
}

// MajorDeck is a curated building subset tied to a field of study.
type MajorDeck struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Buildings   []string `json:"buildings"`
}
