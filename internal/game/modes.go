package game

import "github.com/jmercado/uicguessr/internal/models"

// Game modes. Each mode fixes a timer, hint and attempt policy; classic,
// endless and practice defer the timer and hint switches to the player's
// settings.
const (
	ModeClassic  = "classic"
	ModeZen      = "zen"
	ModeSprint   = "sprint"
	ModeHardcore = "hardcore"
	ModeEndless  = "endless"
	ModePractice = "practice"
)

// Modes lists every playable mode key.
var Modes = []string{ModeClassic, ModeZen, ModeSprint, ModeHardcore, ModeEndless, ModePractice}

// ValidMode reports whether mode names a playable mode.
func ValidMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

type modePolicy struct {
	timerEnabled    bool
	hintsEnabled    bool
	attempts        int
	timePerQuestion int
	endless         bool
}

// policyFor resolves the per-round policy for a mode. base is the configured
// classic-mode countdown in seconds.
func policyFor(mode string, settings models.Settings, base int) modePolicy {
	p := modePolicy{
		timerEnabled:    settings.TimerEnabled,
		hintsEnabled:    settings.HintsEnabled,
		attempts:        2,
		timePerQuestion: base,
	}
	switch mode {
	case ModeZen:
		p.timerEnabled = false
	case ModeSprint:
		p.timerEnabled = true
		p.timePerQuestion = 30
		p.attempts = 1
	case ModeHardcore:
		p.timerEnabled = true
		p.timePerQuestion = 45
		p.attempts = 1
		p.hintsEnabled = false
	case ModeEndless:
		p.endless = true
	}
	return p
}
