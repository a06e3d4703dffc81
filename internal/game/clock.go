package game

import (
	"sync"
	"time"
)

// Handle is an owned, cancellable scheduled task. Stop is idempotent.
type Handle interface {
	Stop()
}

// Scheduler abstracts the two timing primitives the session needs: a
// fixed-cadence repeating callback (the countdown) and a one-shot deferred
// callback (the auto hint). The session owns at most one of each and stops
// them on every transition out of the awaiting-answer state.
type Scheduler interface {
	Repeat(d time.Duration, fn func()) Handle
	After(d time.Duration, fn func()) Handle
}

type timerHandle struct {
	stop chan struct{}
	once sync.Once
}

func (h *timerHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

type timerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.Ticker and time.Timer.
// Callbacks run on their own goroutine; callers serialize with their own lock.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Repeat(d time.Duration, fn func()) Handle {
	h := &timerHandle{stop: make(chan struct{})}
	go func() {
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-t.C:
				fn()
			}
		}
	}()
	return h
}

func (timerScheduler) After(d time.Duration, fn func()) Handle {
	h := &timerHandle{stop: make(chan struct{})}
	go func() {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-h.stop:
			return
		case <-t.C:
			fn()
		}
	}()
	return h
}

// ManualScheduler is a Scheduler driven by explicit calls instead of wall
// time. Tests use it to step the countdown and fire the deferred hint
// deterministically.
type ManualScheduler struct {
	mu       sync.Mutex
	repeats  []*manualTask
	deferred []*manualTask
}

type manualTask struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTask) live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped
}

// NewManualScheduler returns an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Repeat(_ time.Duration, fn func()) Handle {
	t := &manualTask{fn: fn}
	m.mu.Lock()
	m.repeats = append(m.repeats, t)
	m.mu.Unlock()
	return t
}

func (m *ManualScheduler) After(_ time.Duration, fn func()) Handle {
	t := &manualTask{fn: fn}
	m.mu.Lock()
	m.deferred = append(m.deferred, t)
	m.mu.Unlock()
	return t
}

// Tick fires every live repeating task once, simulating one interval.
func (m *ManualScheduler) Tick() {
	m.mu.Lock()
	tasks := append([]*manualTask(nil), m.repeats...)
	m.mu.Unlock()
	for _, t := range tasks {
		if t.live() {
			t.fn()
		}
	}
}

// FireDeferred fires and consumes every live one-shot task, simulating the
// deferred delay elapsing.
func (m *ManualScheduler) FireDeferred() {
	m.mu.Lock()
	tasks := m.deferred
	m.deferred = nil
	m.mu.Unlock()
	for _, t := range tasks {
		if t.live() {
			t.fn()
		}
	}
}

// LiveRepeating counts repeating tasks that have not been stopped.
func (m *ManualScheduler) LiveRepeating() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.repeats {
		if t.live() {
			n++
		}
	}
	return n
}

// LiveDeferred counts one-shot tasks that have not been stopped or fired.
func (m *ManualScheduler) LiveDeferred() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.deferred {
		if t.live() {
			n++
		}
	}
	return n
}
