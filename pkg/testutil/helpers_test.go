package testutil

import (
	"testing"
	"time"
)

func TestAssertWithinPasses(t *testing.T) {
	AssertWithin(t, "equal", 10, 10, 0)
	AssertWithin(t, "inside tolerance", 23280, 23279.2, 1)
}

func TestManualTimersFireAll(t *testing.T) {
	var timers ManualTimers
	calls := 0

	timers.AfterFunc(time.Second, func() { calls++ })
	stopped := timers.AfterFunc(time.Second, func() { calls += 10 })

	if got := timers.Pending(); got != 2 {
		t.Fatalf("Pending() = %d, expected 2", got)
	}
	if !stopped.Stop() {
		t.Fatal("expected Stop to report true for a pending timer")
	}
	if stopped.Stop() {
		t.Fatal("expected second Stop to report false")
	}

	if fired := timers.FireAll(); fired != 1 {
		t.Fatalf("FireAll() = %d, expected 1", fired)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, expected 1", calls)
	}
	if got := timers.Pending(); got != 0 {
		t.Fatalf("Pending() after FireAll = %d, expected 0", got)
	}
}

func TestManualTimersCallbackSchedulesMore(t *testing.T) {
	var timers ManualTimers
	timers.AfterFunc(time.Millisecond, func() {
		timers.AfterFunc(time.Millisecond, func() {})
	})

	if fired := timers.FireAll(); fired != 1 {
		t.Fatalf("first FireAll() = %d, expected 1", fired)
	}
	if got := timers.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, expected the nested timer to wait", got)
	}
}
