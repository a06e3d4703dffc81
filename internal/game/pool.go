package game

import (
	"math/rand"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/models"
)

// minCuratedPool is the smallest building subset a persona, deck or practice
// pool may draw from. Anything smaller cannot fill four answer options and
// falls back to the full pool.
const minCuratedPool = 4

// Shuffle permutes qs in place using the Fisher-Yates algorithm.
func Shuffle(rng *rand.Rand, qs []models.Question) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}

// PoolConfig selects which questions a session draws from.
type PoolConfig struct {
	Difficulty string
	Mode       string
	// FocusAreas filters questions by building category. Empty or
	// exhaustive filters are equivalent to no filter.
	FocusAreas []string
	// Persona and MajorDeck narrow the pool to a curated building subset.
	// Persona wins when both are set.
	Persona   string
	MajorDeck string
	// WeakBuildings seeds the practice pool. Only consulted in practice
	// mode.
	WeakBuildings []string
}

// BuildPool assembles and shuffles the question pool for one session. It
// never returns an empty pool: curated subsets that are too small, and focus
// filters that match nothing, fall back to the full pool for the difficulty.
func BuildPool(rng *rand.Rand, cfg PoolConfig) []models.Question {
	var pool []models.Question

	switch {
	case cfg.Mode == ModePractice && len(photographed(cfg.WeakBuildings)) >= minCuratedPool:
		pool = questionsFor(rng, photographed(cfg.WeakBuildings), cfg.Difficulty)
	case cfg.Persona != "":
		if p, ok := catalog.PersonaByKey(cfg.Persona); ok {
			if keys := photographed(p.PriorityBuildings); len(keys) >= minCuratedPool {
				pool = questionsFor(rng, keys, cfg.Difficulty)
			}
		}
	case cfg.MajorDeck != "":
		if d, ok := catalog.MajorDeckByKey(cfg.MajorDeck); ok {
			if keys := photographed(d.Buildings); len(keys) >= minCuratedPool {
				pool = questionsFor(rng, keys, cfg.Difficulty)
			}
		}
	}

	if len(pool) == 0 {
		pool = fullPool(rng, cfg.Difficulty)
	}

	if filtered := filterByFocus(pool, cfg.FocusAreas); len(filtered) > 0 {
		pool = filtered
	}

	Shuffle(rng, pool)
	return pool
}

// fullPool is the curated set for the difficulty plus a generated question
// for every photographed building the curated set misses.
func fullPool(rng *rand.Rand, difficulty string) []models.Question {
	pool := append([]models.Question(nil), catalog.QuestionSet(difficulty)...)
	covered := make(map[string]bool, len(pool))
	for _, q := range pool {
		covered[q.BuildingKey] = true
	}
	for _, key := range photographed(catalog.BuildingKeys()) {
		if !covered[key] {
			pool = append(pool, generateQuestion(rng, key, difficulty))
		}
	}
	return pool
}

func questionsFor(rng *rand.Rand, keys []string, difficulty string) []models.Question {
	qs := make([]models.Question, 0, len(keys))
	for _, key := range keys {
		qs = append(qs, generateQuestion(rng, key, difficulty))
	}
	return qs
}

// generateQuestion builds a photo question for one building: the correct key
// plus three random distractors, shuffled.
func generateQuestion(rng *rand.Rand, key, difficulty string) models.Question {
	b, _ := catalog.Building(key)
	options := []string{key}
	others := make([]string, 0, len(catalog.BuildingKeys()))
	for _, k := range catalog.BuildingKeys() {
		if k != key {
			others = append(others, k)
		}
	}
	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	for i := 0; i < 3 && i < len(others); i++ {
		options = append(options, others[i])
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	hint := b.Description
	if len(b.Landmarks) > 0 {
		hint = "Near " + b.Landmarks[0]
	}
	return models.Question{
		BuildingKey:   key,
		CorrectAnswer: key,
		Options:       options,
		Difficulty:    difficulty,
		Hint:          hint,
	}
}

// filterByFocus keeps questions whose building shares a category with the
// focus areas. A nil or empty filter keeps everything.
func filterByFocus(pool []models.Question, areas []string) []models.Question {
	if len(areas) == 0 {
		return pool
	}
	want := make(map[string]bool, len(areas))
	for _, a := range areas {
		want[a] = true
	}
	var out []models.Question
	for _, q := range pool {
		b, ok := catalog.Building(q.BuildingKey)
		if !ok {
			continue
		}
		for _, c := range b.Categories {
			if want[c] {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// photographed keeps the keys that name a building with a photo.
func photographed(keys []string) []string {
	var out []string
	for _, key := range keys {
		if b, ok := catalog.Building(key); ok && b.Photo != "" {
			out = append(out, key)
		}
	}
	return out
}
