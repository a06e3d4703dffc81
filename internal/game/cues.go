package game

import "sync"

// Sounds receives the audio cues a session emits. Implementations must be
// fast and non-blocking; cues fire while the session lock is held.
type Sounds interface {
	Success()
	Error()
	Click()
	Hint()
	NewRound()
	Points(points int)
	Complete()
	Tick()
	Warning()
}

// NopSounds discards every cue. It is the default when no sink is installed
// or when sound is disabled in the player's settings.
type NopSounds struct{}

func (NopSounds) Success()   {}
func (NopSounds) Error()     {}
func (NopSounds) Click()     {}
func (NopSounds) Hint()      {}
func (NopSounds) NewRound()  {}
func (NopSounds) Points(int) {}
func (NopSounds) Complete()  {}
func (NopSounds) Tick()      {}
func (NopSounds) Warning()   {}

// AchievementSink receives achievement keys the moment the session earns
// them. Unlock must be idempotent; the session may report a key more than
// once across rounds.
type AchievementSink interface {
	Unlock(key string)
}

// NopAchievements drops every unlock.
type NopAchievements struct{}

func (NopAchievements) Unlock(string) {}

// RecordingSink collects unlocked keys in order, deduplicated. It carries
// its own lock: the session reports unlocks under the session mutex while
// readers drain the keys from other goroutines.
type RecordingSink struct {
	mu   sync.Mutex
	keys []string
	seen map[string]bool
}

func (r *RecordingSink) Unlock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen == nil {
		r.seen = make(map[string]bool)
	}
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	r.keys = append(r.keys, key)
}

// Keys returns the unlocked keys in unlock order.
func (r *RecordingSink) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}
