package game

import "github.com/jmercado/uicguessr/internal/models"

// buildHints derives the ordered hint sequence for a building. Hints go from
// vague to specific; the abbreviation lands third so the giveaway comes late.
func buildHints(b models.Building) []string {
	architecture := "Look closely at the building's style and materials."
	if len(b.Features) > 1 {
		architecture = "Architecture: " + b.Features[1]
	}
	location := "Consider which buildings are nearby."
	if len(b.Landmarks) > 0 {
		location = "Location clue: " + b.Landmarks[0]
	}
	abbreviation := "Abbreviation: the building code is \"" + b.Abbreviation + "\""
	feature := b.Tips
	if len(b.Features) > 0 {
		feature = "Main feature: " + b.Features[0]
	}
	return []string{architecture, location, abbreviation, feature}
}
