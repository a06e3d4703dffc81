// Package catalog holds the static game data: the building reference table,
// curated question sets, the campus resource directory, persona and
// major-deck presets, and the achievement catalog. All lookups return a
// (value, ok) pair; callers are expected to degrade to defaults on a miss
// rather than treat it as an error.
package catalog

import (
	"sort"

	"github.com/jmercado/uicguessr/internal/models"
)

// Difficulty tiers accepted by the question pool builder.
var Difficulties = []string{"easy", "medium", "hard"}

// ValidDifficulty reports whether d names a known difficulty tier.
func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}

// Building looks up a building by key.
func Building(key string) (models.Building, bool) {
	b, ok := buildings[key]
	return b, ok
}

// Buildings returns the full catalog sorted by key.
func Buildings() []models.Building {
	out := make([]models.Building, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// BuildingKeys returns all catalog keys sorted.
func BuildingKeys() []string {
	keys := make([]string, 0, len(buildings))
	for k := range buildings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// QuestionSet returns the curated questions for a difficulty tier,
// falling back to the easy set for unknown tiers.
func QuestionSet(difficulty string) []models.Question {
	qs, ok := questionSets[difficulty]
	if !ok {
		qs = questionSets["easy"]
	}
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out
}

// CampusResources returns the campus-wide resource directory.
func CampusResources() []models.CampusResource {
	out := make([]models.CampusResource, len(campusResources))
	copy(out, campusResources)
	return out
}

// PersonaByKey looks up a persona preset.
func PersonaByKey(key string) (models.Persona, bool) {
	p, ok := personas[key]
	return p, ok
}

// Personas returns all persona presets sorted by key.
func Personas() []models.Persona {
	out := make([]models.Persona, 0, len(personas))
	for _, p := range personas {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MajorDeckByKey looks up a major deck.
func MajorDeckByKey(key string) (models.MajorDeck, bool) {
	d, ok := majorDecks[key]
	return d, ok
}

// MajorDecks returns all major decks sorted by key.
func MajorDecks() []models.MajorDeck {
	out := make([]models.MajorDeck, 0, len(majorDecks))
	for _, d := range majorDecks {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
