package services

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/game"
	"github.com/jmercado/uicguessr/internal/geo"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository"
)

// CreateSessionRequest carries the player's choices for a new session.
// Anything left empty falls back to the saved settings.
type CreateSessionRequest struct {
	Difficulty string   `json:"difficulty"`
	Mode       string   `json:"mode"`
	Rounds     int      `json:"rounds"`
	Focus      []string `json:"focus"`
	Persona    string   `json:"persona"`
	MajorDeck  string   `json:"major_deck"`
}

// SessionService runs live game sessions and folds finished ones into the
// persistent profile.
type SessionService interface {
	Create(ctx context.Context, req CreateSessionRequest) (string, game.View, error)
	Get(ctx context.Context, id string) (game.View, error)
	Select(ctx context.Context, id, option string) (game.View, error)
	Answer(ctx context.Context, id string) (game.View, error)
	Hint(ctx context.Context, id string) (string, game.View, error)
	Retry(ctx context.Context, id string) (game.View, error)
	Next(ctx context.Context, id string) (game.View, error)
	End(ctx context.Context, id string) (models.SessionSummary, error)
	Reveal(ctx context.Context, id string) (RevealResult, error)
	Shutdown()
}

// RevealResult is the answer-reveal payload for a resolved round. When the
// player's last guess was a different building, the reveal includes that
// building and the walk between the two.
type RevealResult struct {
	Building models.Building  `json:"building"`
	MapsURL  string           `json:"maps_url"`
	Guess    *models.Building `json:"guess,omitempty"`
	Walk     *geo.Route       `json:"walk,omitempty"`
}

type sessionEntry struct {
	session *game.Session
	sink    *game.RecordingSink
	touched time.Time

	// flushMu guards the flush cursor so overlapping requests on the same
	// session cannot double-count while a storage Unlock is in flight.
	flushMu sync.Mutex
	flushed int
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry

	settings     repository.SettingsRepository
	profiles     repository.ProfileRepository
	achievements repository.AchievementRepository
	learning     repository.LearningRepository

	ttl             time.Duration
	timePerQuestion int
	hintDelay       time.Duration
	gameOpts        []game.Option
	stop            chan struct{}
	done            chan struct{}
}

// SessionServiceOption customizes a session service.
type SessionServiceOption func(*sessionService)

// WithGameOptions forwards options to every session the service creates.
// Tests use it to install a manual scheduler and a fixed randomness source.
func WithGameOptions(opts ...game.Option) SessionServiceOption {
	return func(s *sessionService) { s.gameOpts = opts }
}

// WithQuestionTiming overrides the default countdown length and auto-hint
// delay for every session the service creates.
func WithQuestionTiming(timePerQuestion int, hintDelay time.Duration) SessionServiceOption {
	return func(s *sessionService) {
		s.timePerQuestion = timePerQuestion
		s.hintDelay = hintDelay
	}
}

// NewSessionService creates a new SessionService. Sessions untouched for ttl
// are abandoned by a background sweeper running every sweepInterval.
func NewSessionService(
	settings repository.SettingsRepository,
	profiles repository.ProfileRepository,
	achievements repository.AchievementRepository,
	learning repository.LearningRepository,
	ttl, sweepInterval time.Duration,
	opts ...SessionServiceOption,
) SessionService {
	s := &sessionService{
		sessions:     make(map[string]*sessionEntry),
		settings:     settings,
		profiles:     profiles,
		achievements: achievements,
		learning:     learning,
		ttl:          ttl,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweep(sweepInterval)
	return s
}

func (s *sessionService) Create(ctx context.Context, req CreateSessionRequest) (string, game.View, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating session: difficulty=%s mode=%s", req.Difficulty, req.Mode)

	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return "", game.View{}, errors.NewInternalError(err)
	}
	if req.Difficulty == "" {
		req.Difficulty = settings.Difficulty
	}
	if req.Mode == "" {
		req.Mode = settings.Mode
	}
	if req.Persona == "" {
		req.Persona = settings.Persona
	}
	if req.MajorDeck == "" {
		req.MajorDeck = settings.MajorDeck
	}
	if len(req.Focus) > 0 {
		for _, f := range req.Focus {
			if !validFocusFilters[f] {
				return "", game.View{}, errors.NewValidationError("focus", "unknown filter "+f)
			}
		}
		settings.FocusFilters = req.Focus
	}

	if !catalog.ValidDifficulty(req.Difficulty) {
		return "", game.View{}, errors.NewValidationError("difficulty", "unknown difficulty "+req.Difficulty)
	}
	if !game.ValidMode(req.Mode) {
		return "", game.View{}, errors.NewValidationError("mode", "unknown mode "+req.Mode)
	}
	if req.Persona != "" {
		if _, ok := catalog.PersonaByKey(req.Persona); !ok {
			return "", game.View{}, errors.NewValidationError("persona", "unknown persona "+req.Persona)
		}
	}
	if req.MajorDeck != "" {
		if _, ok := catalog.MajorDeckByKey(req.MajorDeck); !ok {
			return "", game.View{}, errors.NewValidationError("major_deck", "unknown deck "+req.MajorDeck)
		}
	}
	if req.Rounds < 0 || req.Rounds > 50 {
		return "", game.View{}, errors.NewValidationError("rounds", "must be at most 50")
	}

	var weak []string
	if req.Mode == game.ModePractice {
		weak, err = s.weakBuildings(ctx)
		if err != nil {
			return "", game.View{}, errors.NewInternalError(err)
		}
	}

	sink := &game.RecordingSink{}
	opts := []game.Option{game.WithAchievements(sink)}
	if settings.SoundEnabled {
		opts = append(opts, game.WithSounds(newSoundCues()))
	}
	opts = append(opts, s.gameOpts...)
	session, err := game.New(game.Config{
		Difficulty:      req.Difficulty,
		Mode:            req.Mode,
		Rounds:          req.Rounds,
		Persona:         req.Persona,
		MajorDeck:       req.MajorDeck,
		Settings:        settings,
		TimePerQuestion: s.timePerQuestion,
		HintDelay:       s.hintDelay,
		WeakBuildings:   weak,
	}, opts...)
	if err != nil {
		return "", game.View{}, errors.NewValidationError("session", err.Error())
	}
	if err := session.Start(); err != nil {
		return "", game.View{}, errors.NewInternalError(err)
	}

	id := ulid.Make().String()
	s.mu.Lock()
	s.sessions[id] = &sessionEntry{session: session, sink: sink, touched: time.Now()}
	s.mu.Unlock()

	log.Info("session created: id=%s difficulty=%s mode=%s", id, req.Difficulty, req.Mode)
	return id, session.Snapshot(), nil
}

func (s *sessionService) Get(ctx context.Context, id string) (game.View, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return game.View{}, err
	}
	return entry.session.Snapshot(), nil
}

func (s *sessionService) Select(ctx context.Context, id, option string) (game.View, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return game.View{}, err
	}
	if err := entry.session.SelectAnswer(option); err != nil {
		return game.View{}, mapGameError(err)
	}
	return entry.session.Snapshot(), nil
}

func (s *sessionService) Answer(ctx context.Context, id string) (game.View, error) {
	log := logger.FromContext(ctx)
	entry, err := s.lookup(id)
	if err != nil {
		return game.View{}, err
	}
	out, err := entry.session.Submit()
	if err != nil {
		return game.View{}, mapGameError(err)
	}
	if out != nil {
		log.Debug("answer submitted: id=%s correct=%t points=%d", id, out.Correct, out.TotalPoints)
	}
	s.flushAchievements(ctx, entry)
	return entry.session.Snapshot(), nil
}

func (s *sessionService) Hint(ctx context.Context, id string) (string, game.View, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return "", game.View{}, err
	}
	hint, err := entry.session.RevealHint()
	if err != nil {
		return "", game.View{}, mapGameError(err)
	}
	return hint, entry.session.Snapshot(), nil
}

func (s *sessionService) Retry(ctx context.Context, id string) (game.View, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return game.View{}, err
	}
	if err := entry.session.TryAgain(); err != nil {
		return game.View{}, mapGameError(err)
	}
	return entry.session.Snapshot(), nil
}

func (s *sessionService) Next(ctx context.Context, id string) (game.View, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return game.View{}, err
	}
	if err := entry.session.NextRound(); err != nil {
		return game.View{}, mapGameError(err)
	}
	if entry.session.State() == game.StateComplete {
		if err := s.persistCompleted(ctx, id, entry); err != nil {
			return game.View{}, err
		}
	} else {
		s.flushAchievements(ctx, entry)
	}
	return entry.session.Snapshot(), nil
}

func (s *sessionService) End(ctx context.Context, id string) (models.SessionSummary, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return models.SessionSummary{}, err
	}
	summary, err := entry.session.End()
	if err != nil {
		return models.SessionSummary{}, mapGameError(err)
	}
	if err := s.persistCompleted(ctx, id, entry); err != nil {
		return models.SessionSummary{}, err
	}
	return summary, nil
}

func (s *sessionService) Reveal(ctx context.Context, id string) (RevealResult, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return RevealResult{}, err
	}
	b, err := entry.session.CurrentBuilding()
	if err != nil {
		return RevealResult{}, mapGameError(err)
	}

	result := RevealResult{
		Building: b,
		MapsURL:  placeURL(geo.Point{Lat: b.Lat, Lng: b.Lng}),
	}
	if guessKey, err := entry.session.LastGuess(); err == nil && guessKey != "" && guessKey != b.Key {
		if guess, ok := catalog.Building(guessKey); ok {
			walk := geo.Walk(
				geo.Point{Lat: guess.Lat, Lng: guess.Lng},
				geo.Point{Lat: b.Lat, Lng: b.Lng},
			)
			result.Guess = &guess
			result.Walk = &walk
		}
	}
	return result, nil
}

// Shutdown stops the sweeper and abandons every live session.
func (s *sessionService) Shutdown() {
	close(s.stop)
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		entry.session.Abandon()
		delete(s.sessions, id)
	}
}

func (s *sessionService) lookup(id string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("session", id)
	}
	entry.touched = time.Now()
	return entry, nil
}

// persistCompleted writes the finished session through the profile updater
// and retires it from the registry.
func (s *sessionService) persistCompleted(ctx context.Context, id string, entry *sessionEntry) error {
	log := logger.FromContext(ctx)
	summary, err := entry.session.Summary()
	if err != nil {
		return errors.NewInternalError(err)
	}
	if err := s.profiles.ApplySession(ctx, summary); err != nil {
		log.Error("failed to persist session %s: %v", id, err)
		return errors.NewInternalError(err)
	}
	s.flushAchievements(ctx, entry)
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	log.Info("session persisted: id=%s score=%d rounds=%d", id, summary.Score, summary.Rounds)
	return nil
}

// flushAchievements pushes newly earned achievement keys to storage. Unlock
// is idempotent, so replays after an error are harmless.
func (s *sessionService) flushAchievements(ctx context.Context, entry *sessionEntry) {
	log := logger.FromContext(ctx)
	keys := entry.sink.Keys()

	entry.flushMu.Lock()
	defer entry.flushMu.Unlock()
	for ; entry.flushed < len(keys); entry.flushed++ {
		if _, err := s.achievements.Unlock(ctx, keys[entry.flushed]); err != nil {
			log.Error("failed to unlock achievement %s: %v", keys[entry.flushed], err)
			return
		}
	}
}

// weakBuildings picks the practice pool: buildings seen at least three times
// with under 50% accuracy.
func (s *sessionService) weakBuildings(ctx context.Context) ([]string, error) {
	stats, err := s.learning.BuildingStats(ctx)
	if err != nil {
		return nil, err
	}
	var weak []string
	for _, b := range stats {
		if b.Attempts >= 3 && b.Accuracy() < 0.5 {
			weak = append(weak, b.BuildingKey)
		}
	}
	return weak, nil
}

func (s *sessionService) sweep(interval time.Duration) {
	defer close(s.done)
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	log := logger.Default().WithPrefix("sessions")
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, entry := range s.sessions {
				if entry.touched.Before(cutoff) {
					entry.session.Abandon()
					delete(s.sessions, id)
					log.Info("session expired: id=%s", id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// mapGameError translates engine errors into API errors.
func mapGameError(err error) error {
	switch err {
	case game.ErrUnknownOption:
		return errors.NewValidationError("option", err.Error())
	case game.ErrNotAwaitingAnswer, game.ErrNoRetry, game.ErrRoundUnresolved,
		game.ErrNotComplete, game.ErrComplete, game.ErrAlreadyStarted, game.ErrNotStarted:
		return errors.NewConflictError(err.Error())
	case game.ErrHintsDisabled, game.ErrHintsExhausted:
		return errors.NewBadRequestError(err.Error())
	default:
		return errors.NewInternalError(err)
	}
}
