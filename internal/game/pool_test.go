package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/models"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestBuildPoolEveryDifficulty(t *testing.T) {
	for _, d := range catalog.Difficulties {
		t.Run(d, func(t *testing.T) {
			pool := BuildPool(testRand(), PoolConfig{Difficulty: d})
			require.NotEmpty(t, pool)
			for _, q := range pool {
				b, ok := catalog.Building(q.BuildingKey)
				require.True(t, ok, "question references unknown building %s", q.BuildingKey)
				assert.NotEmpty(t, b.Photo)
				assert.Len(t, q.Options, 4)
				assert.Contains(t, q.Options, q.CorrectAnswer)
			}
		})
	}
}

func TestBuildPoolFocusFilter(t *testing.T) {
	pool := BuildPool(testRand(), PoolConfig{
		Difficulty: "easy",
		FocusAreas: []string{"recreation"},
	})
	require.NotEmpty(t, pool)
	for _, q := range pool {
		b, _ := catalog.Building(q.BuildingKey)
		assert.Contains(t, b.Categories, "recreation")
	}
}

func TestBuildPoolFocusFilterFallsBackWhenNothingMatches(t *testing.T) {
	pool := BuildPool(testRand(), PoolConfig{
		Difficulty: "easy",
		FocusAreas: []string{"parking"},
	})
	assert.NotEmpty(t, pool)
}

func TestBuildPoolPersonaSubset(t *testing.T) {
	p, ok := catalog.PersonaByKey("athlete")
	require.True(t, ok)
	allowed := make(map[string]bool)
	for _, k := range p.PriorityBuildings {
		allowed[k] = true
	}

	pool := BuildPool(testRand(), PoolConfig{
		Difficulty: "medium",
		Persona:    "athlete",
	})
	require.NotEmpty(t, pool)
	for _, q := range pool {
		assert.True(t, allowed[q.BuildingKey], "unexpected building %s in persona pool", q.BuildingKey)
	}
}

func TestBuildPoolMajorDeckSubset(t *testing.T) {
	d, ok := catalog.MajorDeckByKey("engineering")
	require.True(t, ok)
	allowed := make(map[string]bool)
	for _, k := range d.Buildings {
		allowed[k] = true
	}

	pool := BuildPool(testRand(), PoolConfig{
		Difficulty: "easy",
		MajorDeck:  "engineering",
	})
	require.NotEmpty(t, pool)
	for _, q := range pool {
		assert.True(t, allowed[q.BuildingKey])
	}
}

func TestBuildPoolPractice(t *testing.T) {
	weak := []string{"SCE", "ARC", "LIB", "TH"}
	pool := BuildPool(testRand(), PoolConfig{
		Difficulty:    "easy",
		Mode:          ModePractice,
		WeakBuildings: weak,
	})
	require.Len(t, pool, len(weak))
	seen := make(map[string]bool)
	for _, q := range pool {
		seen[q.BuildingKey] = true
	}
	for _, k := range weak {
		assert.True(t, seen[k])
	}
}

func TestBuildPoolPracticeFallsBackWhenTooFewWeak(t *testing.T) {
	pool := BuildPool(testRand(), PoolConfig{
		Difficulty:    "easy",
		Mode:          ModePractice,
		WeakBuildings: []string{"SCE", "ARC"},
	})
	assert.GreaterOrEqual(t, len(pool), minCuratedPool)
}

func TestShuffleIsApproximatelyUniform(t *testing.T) {
	const trials = 4000
	rng := testRand()
	counts := [4][4]int{}
	for i := 0; i < trials; i++ {
		qs := []models.Question{
			{BuildingKey: "0"}, {BuildingKey: "1"},
			{BuildingKey: "2"}, {BuildingKey: "3"},
		}
		Shuffle(rng, qs)
		for pos, q := range qs {
			counts[int(q.BuildingKey[0]-'0')][pos]++
		}
	}

	expected := trials / 4
	for elem := 0; elem < 4; elem++ {
		for pos := 0; pos < 4; pos++ {
			got := counts[elem][pos]
			assert.InDelta(t, expected, got, float64(expected)/4,
				"element %d at position %d", elem, pos)
		}
	}
}

func TestShuffleKeepsContents(t *testing.T) {
	qs := []models.Question{
		{BuildingKey: "SCE"}, {BuildingKey: "ARC"}, {BuildingKey: "LIB"},
	}
	Shuffle(testRand(), qs)
	keys := make(map[string]bool)
	for _, q := range qs {
		keys[q.BuildingKey] = true
	}
	assert.Equal(t, map[string]bool{"SCE": true, "ARC": true, "LIB": true}, keys)
}
