package catalog

// AchievementDef describes one unlockable achievement.
type AchievementDef struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Achievement keys referenced by the game engine and profile updater.
const (
	AchievementFirstCorrect  = "first_correct"
	AchievementNoHintsRound  = "no_hints_round"
	AchievementStreak3       = "streak_3"
	AchievementSprinter      = "sprinter"
	AchievementMapLover      = "map_lover"
	AchievementPerfectGame   = "perfect_game"
	AchievementHardcoreClear = "hardcore_clear"
)

var achievements = []AchievementDef{
	{Key: AchievementFirstCorrect, Title: "First Steps", Description: "Get your first correct answer"},
	{Key: AchievementNoHintsRound, Title: "No Hint Hero", Description: "Get a perfect round with no hints"},
	{Key: AchievementStreak3, Title: "On Fire", Description: "Achieve a 3+ first-try streak"},
	{Key: AchievementSprinter, Title: "Speed Runner", Description: "Answer with >45s remaining"},
	{Key: AchievementMapLover, Title: "Map Lover", Description: "Open the map view"},
	{Key: AchievementPerfectGame, Title: "Flawless", Description: "Finish with perfect base score"},
	{Key: AchievementHardcoreClear, Title: "Hardcore Clear", Description: "Win Hardcore with 4+ first-tries"},
}

// Achievements returns the full achievement catalog in display order.
func Achievements() []AchievementDef {
	out := make([]AchievementDef, len(achievements))
	copy(out, achievements)
	return out
}

// AchievementByKey returns the catalog entry for key.
func AchievementByKey(key string) (AchievementDef, bool) {
	for _, a := range achievements {
		if a.Key == key {
			return a, true
		}
	}
	return AchievementDef{}, false
}
