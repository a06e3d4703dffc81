package catalog

import "github.com/jmercado/uicguessr/internal/models"

// questionSets is the curated fallback pool, keyed by difficulty tier.
// Sessions normally generate questions with sampled distractors; these are
// used when generation cannot produce enough material.
var questionSets = map[string][]models.Question{
	"easy": {
		{
			BuildingKey:   "SCE",
			CorrectAnswer: "SCE",
			Options:       []string{"SCE", "ARC", "BSB", "LIB"},
			Difficulty:    "easy",
			Hint:          "Look for the modern glass entrance and 'SCE' abbreviation on the building signage.",
		},
		{
			BuildingKey:   "ARC",
			CorrectAnswer: "ARC",
			Options:       []string{"ARC", "SCE", "SES", "UH"},
			Difficulty:    "easy",
			Hint:          "This is a large athletic facility with modern architecture and lots of windows.",
		},
		{
			BuildingKey:   "LIB",
			CorrectAnswer: "LIB",
			Options:       []string{"LIB", "BSB", "UH", "TH"},
			Difficulty:    "easy",
			Hint:          "The iconic brutalist concrete architecture makes this building unmistakable.",
		},
		{
			BuildingKey:   "BSB",
			CorrectAnswer: "BSB",
			Options:       []string{"BSB", "SES", "TH", "LCA"},
			Difficulty:    "easy",
			Hint:          "Traditional brick academic building with BSB signage.",
		},
		{
			BuildingKey:   "SES",
			CorrectAnswer: "SES",
			Options:       []string{"SES", "ARC", "SCE", "LIB"},
			Difficulty:    "easy",
			Hint:          "Modern science building with glass and steel construction.",
		},
	},
	"medium": {
		{
			BuildingKey:   "UH",
			CorrectAnswer: "UH",
			Options:       []string{"UH", "LIB", "TH", "BSB"},
			Difficulty:    "medium",
			Hint:          "Tall administrative building with tower structure.",
		},
		{
			BuildingKey:   "TH",
			CorrectAnswer: "TH",
			Options:       []string{"TH", "BSB", "UH", "LCA"},
			Difficulty:    "medium",
			Hint:          "Classic brick academic building housing classrooms.",
		},
		{
			BuildingKey:   "LCA",
			CorrectAnswer: "LCA",
			Options:       []string{"LCA", "LIB", "UH", "SCE"},
			Difficulty:    "medium",
			Hint:          "Large lecture hall building connected to the library.",
		},
		{
			BuildingKey:   "SCE",
			CorrectAnswer: "SCE",
			Options:       []string{"SCE", "SES", "ARC", "UH"},
			Difficulty:    "medium",
			Hint:          "Central student hub with dining and services.",
		},
		{
			BuildingKey:   "ARC",
			CorrectAnswer: "ARC",
			Options:       []string{"ARC", "SES", "SCE", "LCA"},
			Difficulty:    "medium",
			Hint:          "Recreation facility with fitness center and pool.",
		},
	},
	"hard": {
		{
			BuildingKey:   "BSB",
			CorrectAnswer: "BSB",
			Options:       []string{"BSB", "TH", "UH", "LCA"},
			Difficulty:    "hard",
			Hint:          "Behavioral sciences building with psychology labs.",
		},
		{
			BuildingKey:   "SES",
			CorrectAnswer: "SES",
			Options:       []string{"SES", "ARC", "BSB", "LIB"},
			Difficulty:    "hard",
			Hint:          "Engineering facility with maker spaces and labs.",
		},
		{
			BuildingKey:   "LIB",
			CorrectAnswer: "LIB",
			Options:       []string{"LIB", "UH", "LCA", "BSB"},
			Difficulty:    "hard",
			Hint:          "Brutalist architecture landmark visible across campus.",
		},
		{
			BuildingKey:   "UH",
			CorrectAnswer: "UH",
			Options:       []string{"UH", "TH", "LIB", "SES"},
			Difficulty:    "hard",
			Hint:          "Administrative tower with student services.",
		},
		{
			BuildingKey:   "TH",
			CorrectAnswer: "TH",
			Options:       []string{"TH", "BSB", "LCA", "UH"},
			Difficulty:    "hard",
			Hint:          "Academic building near Grant and Burnham Halls.",
		},
	},
}
