package catalog

import "github.com/jmercado/uicguessr/internal/models"

// personas are named presets that bias the question pool toward the
// buildings a particular kind of student actually visits.
var personas = map[string]models.Persona{
	"freshman": {
		Key:               "freshman",
		Name:              "New Student",
		Description:       "First semester on campus. Learn the essentials: where to eat, study, and get help.",
		PriorityBuildings: []string{"SCE", "LIB", "UH", "LCA", "ARC"},
		FocusAreas:        []string{"dining", "services", "academic"},
		RecommendedRounds: 10,
	},
	"commuter": {
		Key:               "commuter",
		Name:              "Commuter",
		Description:       "In and out between classes. Focus on lecture halls and quick services.",
		PriorityBuildings: []string{"LCA", "LIB", "SCE", "TH", "BSB"},
		FocusAreas:        []string{"academic", "dining"},
		RecommendedRounds: 10,
	},
	"athlete": {
		Key:               "athlete",
		Name:              "Athlete",
		Description:       "Training comes first. Recreation facilities plus the academic core.",
		PriorityBuildings: []string{"ARC", "SCE", "LCA", "LIB", "UH"},
		FocusAreas:        []string{"recreation", "academic"},
		RecommendedRounds: 10,
	},
	"researcher": {
		Key:               "researcher",
		Name:              "Researcher",
		Description:       "Labs, the library, and everything in between.",
		PriorityBuildings: []string{"SES", "BSB", "LIB", "TH", "UH"},
		FocusAreas:        []string{"academic", "services"},
		RecommendedRounds: 15,
	},
}

// majorDecks curate building subsets by field of study.
var majorDecks = map[string]models.MajorDeck{
	"engineering": {
		Key:         "engineering",
		Name:        "Engineering",
		Description: "Science and engineering facilities plus the core campus.",
		Buildings:   []string{"SES", "LIB", "SCE", "LCA", "TH"},
	},
	"psychology": {
		Key:         "psychology",
		Name:        "Psychology",
		Description: "Behavioral sciences and the buildings around them.",
		Buildings:   []string{"BSB", "LIB", "LCA", "UH", "SCE"},
	},
	"liberal-arts": {
		Key:         "liberal-arts",
		Name:        "Liberal Arts",
		Description: "Classroom buildings and study spots for LAS students.",
		Buildings:   []string{"TH", "BSB", "LIB", "LCA", "UH"},
	},
}
