package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/models"
)

// State is the round lifecycle position of a session.
type State int

const (
	StateIdle State = iota
	StateAwaitingAnswer
	StateCorrect
	StateIncorrectRetry
	StateIncorrectFinal
	StateComplete
)

var stateNames = map[State]string{
	StateIdle:           "idle",
	StateAwaitingAnswer: "awaiting_answer",
	StateCorrect:        "correct",
	StateIncorrectRetry: "incorrect_retry",
	StateIncorrectFinal: "incorrect_final",
	StateComplete:       "complete",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

var (
	ErrNotStarted        = errors.New("game: session not started")
	ErrAlreadyStarted    = errors.New("game: session already started")
	ErrNotAwaitingAnswer = errors.New("game: no answer expected in current state")
	ErrUnknownOption     = errors.New("game: option not offered for this question")
	ErrNoRetry           = errors.New("game: no retry available")
	ErrRoundUnresolved   = errors.New("game: current round not resolved")
	ErrHintsDisabled     = errors.New("game: hints disabled for this session")
	ErrHintsExhausted    = errors.New("game: no hints left for this question")
	ErrNotComplete       = errors.New("game: session not complete")
	ErrComplete          = errors.New("game: session already complete")
)

// Config describes one session. Zero values get sensible defaults in New.
type Config struct {
	Difficulty string
	Mode       string
	// Rounds overrides the session length. Zero means the persona's
	// recommended length, falling back to the player setting.
	Rounds    int
	Persona   string
	MajorDeck string
	Settings  models.Settings
	// TimePerQuestion is the countdown in seconds for modes that do not
	// fix their own.
	TimePerQuestion int
	// HintDelay is how long an unanswered question waits before a hint is
	// revealed automatically.
	HintDelay time.Duration
	// WeakBuildings seeds the practice-mode pool.
	WeakBuildings []string
}

// Option customizes a session's collaborators.
type Option func(*Session)

// WithRand installs the randomness source used for pool shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithScheduler installs the timing source for the countdown and auto hint.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) { s.sched = sched }
}

// WithSounds installs the audio cue sink.
func WithSounds(snd Sounds) Option {
	return func(s *Session) { s.sounds = snd }
}

// WithAchievements installs the achievement sink.
func WithAchievements(sink AchievementSink) Option {
	return func(s *Session) { s.achievements = sink }
}

// Session is a single play-through: a shuffled question pool walked one round
// at a time through a small state machine. All methods are safe for
// concurrent use; timer callbacks race with player actions and are fenced by
// generation counters so a stale callback never acts.
type Session struct {
	mu           sync.Mutex
	rng          *rand.Rand
	sched        Scheduler
	sounds       Sounds
	achievements AchievementSink

	mode        string
	difficulty  string
	persona     string
	majorDeck   string
	totalRounds int
	policy      modePolicy
	hintDelay   time.Duration

	pool   []models.Question
	cursor int

	state           State
	round           int
	score           int
	streak          int
	maxStreak       int
	perfectRounds   int
	totalBonus      int
	correctRounds   int
	firstTryCorrect int

	current           models.Question
	selected          string
	wrongGuess        bool
	attemptsRemaining int
	hintsShown        []string
	allHints          []string
	timeRemaining     int
	lastOutcome       *Outcome

	timer      Handle
	timerGen   uint64
	hintTimer  Handle
	hintGen    uint64

	results     []models.RoundResult
	startedAt   time.Time
	completedAt time.Time
}

// New validates cfg and builds an unstarted session.
func New(cfg Config, opts ...Option) (*Session, error) {
	if !catalog.ValidDifficulty(cfg.Difficulty) {
		return nil, errors.New("game: unknown difficulty " + cfg.Difficulty)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeClassic
	}
	if !ValidMode(cfg.Mode) {
		return nil, errors.New("game: unknown mode " + cfg.Mode)
	}
	if cfg.TimePerQuestion <= 0 {
		cfg.TimePerQuestion = 60
	}
	if cfg.HintDelay <= 0 {
		cfg.HintDelay = 15 * time.Second
	}

	rounds := cfg.Rounds
	if rounds <= 0 {
		if p, ok := catalog.PersonaByKey(cfg.Persona); ok {
			rounds = p.RecommendedRounds
		}
	}
	if rounds <= 0 {
		rounds = cfg.Settings.TotalRounds
	}
	if rounds <= 0 {
		rounds = 5
	}

	s := &Session{
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		sched:        NewTimerScheduler(),
		sounds:       NopSounds{},
		achievements: NopAchievements{},
		mode:         cfg.Mode,
		difficulty:   cfg.Difficulty,
		persona:      cfg.Persona,
		majorDeck:    cfg.MajorDeck,
		totalRounds:  rounds,
		policy:       policyFor(cfg.Mode, cfg.Settings, cfg.TimePerQuestion),
		hintDelay:    cfg.HintDelay,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.pool = BuildPool(s.rng, PoolConfig{
		Difficulty:    cfg.Difficulty,
		Mode:          cfg.Mode,
		FocusAreas:    cfg.Settings.FocusFilters,
		Persona:       cfg.Persona,
		MajorDeck:     cfg.MajorDeck,
		WeakBuildings: cfg.WeakBuildings,
	})
	if len(s.pool) == 0 {
		return nil, errors.New("game: empty question pool")
	}
	if s.mode == ModePractice && rounds > len(s.pool) {
		s.totalRounds = len(s.pool)
	}
	return s, nil
}

// Start begins round one. It may be called exactly once.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle || s.round != 0 {
		return ErrAlreadyStarted
	}
	s.startedAt = time.Now()
	s.beginRoundLocked()
	return nil
}

// SelectAnswer records the player's pending choice. Selecting cancels the
// pending auto hint; the choice is not judged until Submit.
func (s *Session) SelectAnswer(option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingAnswer {
		return ErrNotAwaitingAnswer
	}
	if !s.offered(option) {
		return ErrUnknownOption
	}
	s.selected = option
	s.stopHintTimerLocked()
	s.sounds.Click()
	return nil
}

// Submit judges the pending selection. With nothing selected it is a no-op
// and returns a nil outcome.
func (s *Session) Submit() (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingAnswer {
		return nil, ErrNotAwaitingAnswer
	}
	if s.selected == "" {
		return nil, nil
	}
	s.stopTimersLocked()
	if s.selected == s.current.CorrectAnswer {
		return s.resolveCorrectLocked(), nil
	}
	return s.resolveIncorrectLocked(), nil
}

// TryAgain re-opens the current question after a non-final miss. The
// countdown restarts in full; revealed hints stay revealed and the auto hint
// is not re-armed.
func (s *Session) TryAgain() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIncorrectRetry {
		return ErrNoRetry
	}
	s.selected = ""
	s.state = StateAwaitingAnswer
	s.timeRemaining = s.policy.timePerQuestion
	s.startTimerLocked()
	return nil
}

// RevealHint discloses the next hint for the current question.
func (s *Session) RevealHint() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingAnswer && s.state != StateIncorrectRetry {
		return "", ErrNotAwaitingAnswer
	}
	if !s.policy.hintsEnabled {
		return "", ErrHintsDisabled
	}
	return s.revealHintLocked()
}

// NextRound advances past a resolved round, completing the session when the
// configured length is reached. Endless sessions never complete this way.
func (s *Session) NextRound() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCorrect && s.state != StateIncorrectFinal {
		return ErrRoundUnresolved
	}
	s.beginRoundLocked()
	return nil
}

// End finalizes the session where it stands and produces the summary. It is
// how endless runs finish, and how any session is cashed out early.
func (s *Session) End() (models.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateComplete {
		return s.summaryLocked(), nil
	}
	if s.round == 0 {
		return models.SessionSummary{}, ErrNotStarted
	}
	s.completeLocked()
	return s.summaryLocked(), nil
}

// Abandon stops all timers and retires the session without producing a
// summary. Used when a session expires unclaimed.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
	if s.state != StateComplete {
		s.state = StateIdle
	}
}

// Summary returns the finalized result of a completed session.
func (s *Session) Summary() (models.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateComplete {
		return models.SessionSummary{}, ErrNotComplete
	}
	return s.summaryLocked(), nil
}

// CurrentBuilding reveals the building behind the current question. Only
// available once the round is resolved, so a lookup cannot leak the answer.
func (s *Session) CurrentBuilding() (models.Building, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCorrect && s.state != StateIncorrectFinal {
		return models.Building{}, ErrRoundUnresolved
	}
	b, ok := catalog.Building(s.current.CorrectAnswer)
	if !ok {
		return models.Building{}, errors.New("game: question references unknown building")
	}
	return b, nil
}

// LastGuess returns the option submitted for the current round, or "" when
// the round resolved without one (a timer expiry). Guarded like
// CurrentBuilding so it cannot leak mid-round state.
func (s *Session) LastGuess() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCorrect && s.state != StateIncorrectFinal {
		return "", ErrRoundUnresolved
	}
	return s.selected, nil
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) beginRoundLocked() {
	s.stopTimersLocked()
	if s.state == StateComplete {
		return
	}
	if !s.policy.endless && s.round >= s.totalRounds {
		s.completeLocked()
		return
	}
	s.round++
	s.current = s.pool[s.cursor%len(s.pool)]
	s.cursor++
	s.selected = ""
	s.wrongGuess = false
	s.attemptsRemaining = s.policy.attempts
	s.hintsShown = nil
	s.lastOutcome = nil
	if b, ok := catalog.Building(s.current.CorrectAnswer); ok {
		s.allHints = buildHints(b)
	} else {
		s.allHints = nil
	}
	s.timeRemaining = s.policy.timePerQuestion
	s.state = StateAwaitingAnswer
	s.startTimerLocked()
	s.armHintTimerLocked()
	s.sounds.NewRound()
}

func (s *Session) startTimerLocked() {
	if !s.policy.timerEnabled {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timerGen++
	gen := s.timerGen
	s.timer = s.sched.Repeat(time.Second, func() { s.tick(gen) })
}

func (s *Session) armHintTimerLocked() {
	if !s.policy.hintsEnabled {
		return
	}
	s.hintGen++
	gen := s.hintGen
	s.hintTimer = s.sched.After(s.hintDelay, func() { s.autoHint(gen) })
}

func (s *Session) stopTimersLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
	s.stopHintTimerLocked()
}

func (s *Session) stopHintTimerLocked() {
	if s.hintTimer != nil {
		s.hintTimer.Stop()
		s.hintTimer = nil
	}
	s.hintGen++
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.timerGen || s.state != StateAwaitingAnswer {
		return
	}
	s.timeRemaining--
	switch {
	case s.timeRemaining <= 0:
		s.expireLocked()
	case s.timeRemaining <= 10:
		s.sounds.Warning()
	case s.timeRemaining == 30:
		s.sounds.Tick()
	}
}

func (s *Session) autoHint(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.hintGen || s.state != StateAwaitingAnswer || s.selected != "" {
		return
	}
	s.revealHintLocked()
}

func (s *Session) revealHintLocked() (string, error) {
	if len(s.hintsShown) >= len(s.allHints) {
		return "", ErrHintsExhausted
	}
	hint := s.allHints[len(s.hintsShown)]
	s.hintsShown = append(s.hintsShown, hint)
	s.sounds.Hint()
	return hint, nil
}

// expireLocked is the timeout path: the round resolves as a final miss with
// every attempt consumed, whatever attempts were actually left.
func (s *Session) expireLocked() {
	s.stopTimersLocked()
	s.timeRemaining = 0
	s.streak = 0
	result := models.RoundResult{
		Round:        s.round,
		BuildingKey:  s.current.CorrectAnswer,
		Correct:      false,
		AttemptsUsed: s.policy.attempts,
		HintsUsed:    len(s.hintsShown),
		Streak:       0,
		TimeExpired:  true,
	}
	s.results = append(s.results, result)
	s.state = StateIncorrectFinal
	s.lastOutcome = &Outcome{
		State:       s.state,
		TimeExpired: true,
		Result:      &result,
	}
	s.sounds.Error()
}

func (s *Session) resolveCorrectLocked() *Outcome {
	firstTry := !s.wrongGuess
	if firstTry {
		s.streak++
		if s.streak > s.maxStreak {
			s.maxStreak = s.streak
		}
		s.perfectRounds++
		s.firstTryCorrect++
	} else {
		s.streak = 0
	}
	sc := Score(ScoreInput{
		FirstTry:      firstTry,
		HintsUsed:     len(s.hintsShown),
		TimeRemaining: s.timeRemaining,
		TimerEnabled:  s.policy.timerEnabled,
		Streak:        s.streak,
	})
	s.score += sc.Total()
	s.totalBonus += sc.Bonus
	s.correctRounds++

	s.achievements.Unlock(catalog.AchievementFirstCorrect)
	if sc.SpeedBonus {
		s.achievements.Unlock(catalog.AchievementSprinter)
	}
	if sc.StreakBonus {
		s.achievements.Unlock(catalog.AchievementStreak3)
	}
	if sc.NoHintBonus {
		s.achievements.Unlock(catalog.AchievementNoHintsRound)
	}

	result := models.RoundResult{
		Round:         s.round,
		BuildingKey:   s.current.CorrectAnswer,
		Correct:       true,
		Points:        sc.Base,
		BonusPoints:   sc.Bonus,
		TotalPoints:   sc.Total(),
		AttemptsUsed:  s.policy.attempts - s.attemptsRemaining + 1,
		HintsUsed:     len(s.hintsShown),
		TimeRemaining: s.timeRemaining,
		Streak:        s.streak,
	}
	s.results = append(s.results, result)
	s.state = StateCorrect
	s.lastOutcome = &Outcome{
		Correct:      true,
		State:        s.state,
		Points:       sc.Base,
		BonusPoints:  sc.Bonus,
		TotalPoints:  sc.Total(),
		BonusReasons: sc.BonusReasons,
		Streak:       s.streak,
		Result:       &result,
	}
	s.sounds.Success()
	s.sounds.Points(sc.Total())
	return s.lastOutcome
}

func (s *Session) resolveIncorrectLocked() *Outcome {
	s.wrongGuess = true
	s.attemptsRemaining--
	s.sounds.Error()
	if s.attemptsRemaining > 0 {
		s.state = StateIncorrectRetry
		s.lastOutcome = &Outcome{
			State:             s.state,
			AttemptsRemaining: s.attemptsRemaining,
		}
		return s.lastOutcome
	}
	s.streak = 0
	result := models.RoundResult{
		Round:        s.round,
		BuildingKey:  s.current.CorrectAnswer,
		Correct:      false,
		AttemptsUsed: s.policy.attempts,
		HintsUsed:    len(s.hintsShown),
		Streak:       0,
	}
	s.results = append(s.results, result)
	s.state = StateIncorrectFinal
	s.lastOutcome = &Outcome{
		State:  s.state,
		Result: &result,
	}
	return s.lastOutcome
}

func (s *Session) completeLocked() {
	s.stopTimersLocked()
	s.state = StateComplete
	s.completedAt = time.Now()
	played := len(s.results)
	if !s.policy.endless && played == s.totalRounds && played > 0 && s.score == played*FirstTryPoints {
		s.achievements.Unlock(catalog.AchievementPerfectGame)
	}
	if s.mode == ModeHardcore && s.firstTryCorrect >= 4 {
		s.achievements.Unlock(catalog.AchievementHardcoreClear)
	}
	s.sounds.Complete()
}

func (s *Session) summaryLocked() models.SessionSummary {
	return models.SessionSummary{
		Score:         s.score,
		Rounds:        len(s.results),
		MaxStreak:     s.maxStreak,
		PerfectRounds: s.perfectRounds,
		TotalBonus:    s.totalBonus,
		Difficulty:    s.difficulty,
		Mode:          s.mode,
		Persona:       s.persona,
		MajorDeck:     s.majorDeck,
		Results:       append([]models.RoundResult(nil), s.results...),
		CompletedAt:   s.completedAt,
	}
}

func (s *Session) offered(option string) bool {
	for _, o := range s.current.Options {
		if o == option {
			return true
		}
	}
	return false
}
