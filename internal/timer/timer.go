// Package timer provides single-shot delayed callbacks keyed by name.
//
// A key can have at most one pending callback. Scheduling a key that is
// already pending is refused, so a double click cannot queue the same
// follow-up twice. Callbacks cannot be cancelled.
package timer

import (
	"sort"
	"sync"
	"time"
)

// Key identifies a pending callback.
type Key string

// Scheduler runs fn once after delay.
type Scheduler interface {
	// Schedule returns false if key already has a pending callback.
	Schedule(key Key, delay time.Duration, fn func()) bool
	// Pending reports whether key has a callback waiting to fire.
	Pending(key Key) bool
}

// =============================================================================
// AfterFunc
// =============================================================================

// AfterFunc schedules on wall-clock time. When the delay expires the
// callback is handed to post, which must run it on the goroutine that owns
// the game state.
type AfterFunc struct {
	mu      sync.Mutex
	pending map[Key]bool
	post    func(func())
}

// NewAfterFunc creates a wall-clock scheduler. post is required; it panics
// when nil.
func NewAfterFunc(post func(func())) *AfterFunc {
	if post == nil {
		panic("timer: NewAfterFunc needs a post function")
	}
	return &AfterFunc{pending: make(map[Key]bool), post: post}
}

// Schedule implements Scheduler.
func (s *AfterFunc) Schedule(key Key, delay time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[key] {
		return false
	}
	s.pending[key] = true

	time.AfterFunc(delay, func() {
		s.post(func() {
			s.mu.Lock()
			delete(s.pending, key)
			s.mu.Unlock()
			fn()
		})
	})
	return true
}

// Pending implements Scheduler.
func (s *AfterFunc) Pending(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[key]
}

// =============================================================================
// Manual
// =============================================================================

// Manual is a Scheduler driven by explicit calls to Advance.
type Manual struct {
	now     time.Duration
	seq     int
	entries map[Key]manualEntry
}

type manualEntry struct {
	at  time.Duration
	seq int
	fn  func()
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{entries: make(map[Key]manualEntry)}
}

// Schedule implements Scheduler.
func (m *Manual) Schedule(key Key, delay time.Duration, fn func()) bool {
	if _, ok := m.entries[key]; ok {
		return false
	}
	m.seq++
	m.entries[key] = manualEntry{at: m.now + delay, seq: m.seq, fn: fn}
	return true
}

// Pending implements Scheduler.
func (m *Manual) Pending(key Key) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of pending callbacks.
func (m *Manual) Len() int { return len(m.entries) }

// Advance moves time forward by d and fires every callback that came due,
// in due order. Callbacks scheduled while firing run if they also fall due.
func (m *Manual) Advance(d time.Duration) int {
	m.now += d
	fired := 0
	for {
		key, ok := m.nextDue()
		if !ok {
			return fired
		}
		e := m.entries[key]
		delete(m.entries, key)
		e.fn()
		fired++
	}
}

// Flush fires everything pending, however far in the future.
func (m *Manual) Flush() int {
	fired := 0
	for len(m.entries) > 0 {
		latest := m.now
		for _, e := range m.entries {
			if e.at > latest {
				latest = e.at
			}
		}
		fired += m.Advance(latest - m.now)
	}
	return fired
}

func (m *Manual) nextDue() (Key, bool) {
	keys := make([]Key, 0, len(m.entries))
	for k, e := range m.entries {
		if e.at <= m.now {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := m.entries[keys[i]], m.entries[keys[j]]
		if a.at != b.at {
			return a.at < b.at
		}
		return a.seq < b.seq
	})
	return keys[0], true
}
