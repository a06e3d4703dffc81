package game

// Base point values for a correct answer.
const (
	FirstTryPoints  = 100
	SecondTryPoints = 50

	speedBonusThreshold = 45
	speedBonusRate      = 2
	streakBonusMinimum  = 3
	streakBonusRate     = 10
	noHintBonus         = 25
)

// ScoreInput captures the round state at the moment a correct answer lands.
// Streak is the value after this round's increment.
type ScoreInput struct {
	FirstTry      bool
	HintsUsed     int
	TimeRemaining int
	TimerEnabled  bool
	Streak        int
}

// ScoreResult is the points breakdown for one correct answer.
type ScoreResult struct {
	Base         int
	Bonus        int
	BonusReasons []string
	SpeedBonus   bool
	StreakBonus  bool
	NoHintBonus  bool
}

// Total is the points actually credited to the session score.
func (r ScoreResult) Total() int {
	return r.Base + r.Bonus
}

// Score computes the points for a correct answer. The base depends only on
// whether the first guess was right; bonuses stack independently on top.
func Score(in ScoreInput) ScoreResult {
	r := ScoreResult{Base: SecondTryPoints}
	if in.FirstTry {
		r.Base = FirstTryPoints
	}
	if in.TimerEnabled && in.TimeRemaining > speedBonusThreshold {
		b := (in.TimeRemaining - speedBonusThreshold) * speedBonusRate
		r.Bonus += b
		r.SpeedBonus = true
		r.BonusReasons = append(r.BonusReasons, "Speed bonus")
	}
	if in.FirstTry && in.Streak >= streakBonusMinimum {
		r.Bonus += in.Streak * streakBonusRate
		r.StreakBonus = true
		r.BonusReasons = append(r.BonusReasons, "Streak bonus")
	}
	if in.FirstTry && in.HintsUsed == 0 {
		r.Bonus += noHintBonus
		r.NoHintBonus = true
		r.BonusReasons = append(r.BonusReasons, "No hints")
	}
	return r
}
