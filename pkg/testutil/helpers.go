// Package testutil provides common utility functions for testing.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/iwvelando/finance-literacy/pkg/mathutil"
)

// AssertWithin fails the test when got is further than tolerance from want.
func AssertWithin(t testing.TB, description string, want, got, tolerance float64) {
	t.Helper()
	if !mathutil.WithinTolerance(want, got, tolerance) {
		t.Errorf("%s: expected %.4f, got %.4f (diff: %.4f)", description, want, got, got-want)
	}
}

// ManualTimers records delayed callbacks so tests can fire them on demand
// instead of waiting on the wall clock.
type ManualTimers struct {
	mu      sync.Mutex
	pending []*ManualTimer
}

// ManualTimer is a single recorded callback.
type ManualTimer struct {
	Delay time.Duration

	owner   *ManualTimers
	fn      func()
	stopped bool
	fired   bool
}

// AfterFunc records fn to be run by Fire or FireAll.
func (m *ManualTimers) AfterFunc(d time.Duration, fn func()) *ManualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	timer := &ManualTimer{Delay: d, owner: m, fn: fn}
	m.pending = append(m.pending, timer)
	return timer
}

// Stop prevents the timer from firing. It reports whether the call stopped it.
func (t *ManualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Pending returns the number of timers that are neither stopped nor fired.
func (m *ManualTimers) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, timer := range m.pending {
		if !timer.stopped && !timer.fired {
			n++
		}
	}
	return n
}

// FireAll runs every pending timer in registration order and returns how many ran.
// Timers registered by the callbacks themselves are left pending.
func (m *ManualTimers) FireAll() int {
	m.mu.Lock()
	var due []*ManualTimer
	for _, timer := range m.pending {
		if !timer.stopped && !timer.fired {
			timer.fired = true
			due = append(due, timer)
		}
	}
	m.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}
