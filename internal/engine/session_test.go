package engine

import (
	"testing"
	"time"
)

// fakeClock drives a SessionTimer through wall-clock time without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTimer() (*SessionTimer, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	tm := NewSessionTimer()
	tm.now = clock.now
	return tm, clock
}

func TestTimerLifecycle(t *testing.T) {
	tm, clock := newTestTimer()

	if tm.State() != StateIdle {
		t.Fatalf("state=%s, want idle", tm.State())
	}
	tm.EnterPreBattle()
	if tm.State() != StatePreBattle {
		t.Fatalf("state=%s, want pre_battle", tm.State())
	}

	tm.BeginBattle(25)
	if got := tm.Remaining(); got != 25*time.Minute {
		t.Fatalf("remaining=%s, want 25m", got)
	}

	clock.advance(10 * time.Minute)
	if got := tm.Remaining(); got != 15*time.Minute {
		t.Fatalf("remaining=%s, want 15m", got)
	}
	if tm.Tick() {
		t.Fatal("tick should not complete with time left")
	}

	clock.advance(15 * time.Minute)
	if !tm.Tick() {
		t.Fatal("tick at zero should complete")
	}
	if tm.State() != StateCompleted {
		t.Fatalf("state=%s, want completed", tm.State())
	}
	if tm.Tick() {
		t.Fatal("completion must fire exactly once")
	}

	tm.Dismiss()
	if tm.State() != StateIdle {
		t.Fatalf("state=%s, want idle after dismiss", tm.State())
	}
}

func TestTimerPauseFreezesCountdown(t *testing.T) {
	tm, clock := newTestTimer()
	tm.BeginBattle(25)

	clock.advance(5 * time.Minute)
	tm.Pause()
	if !tm.Paused() {
		t.Fatal("expected paused")
	}

	clock.advance(30 * time.Minute)
	if got := tm.Remaining(); got != 20*time.Minute {
		t.Fatalf("remaining=%s while paused, want frozen at 20m", got)
	}
	if tm.Tick() {
		t.Fatal("paused timer must not complete")
	}

	tm.Resume()
	if got := tm.Remaining(); got != 20*time.Minute {
		t.Fatalf("remaining=%s after resume, want 20m", got)
	}
	clock.advance(20 * time.Minute)
	if !tm.Tick() {
		t.Fatal("should complete after resumed time runs out")
	}
}

func TestTimerQuitIsDefeat(t *testing.T) {
	tm, clock := newTestTimer()
	tm.BeginBattle(25)
	clock.advance(time.Minute)

	tm.Quit()
	if tm.State() != StateDefeat {
		t.Fatalf("state=%s, want defeat", tm.State())
	}
	if got := tm.Remaining(); got != 0 {
		t.Fatalf("remaining=%s after quit, want 0", got)
	}
}

func TestTimerBackgroundCatchup(t *testing.T) {
	tm, clock := newTestTimer()
	tm.BeginBattle(25)

	clock.advance(5 * time.Minute)
	tm.Suspend()
	clock.advance(10 * time.Minute)
	if done := tm.ResumeFromSuspend(); done {
		t.Fatal("10 minutes backgrounded should not finish a 25-minute session")
	}
	if got := tm.Remaining(); got != 10*time.Minute {
		t.Fatalf("remaining=%s, want 10m (background time counts)", got)
	}

	// Crossing zero while backgrounded completes immediately on resume.
	tm.Suspend()
	clock.advance(time.Hour)
	if done := tm.ResumeFromSuspend(); !done {
		t.Fatal("resume past the deadline should complete immediately")
	}
	if tm.State() != StateCompleted {
		t.Fatalf("state=%s, want completed", tm.State())
	}
}

func TestTimerBackgroundWhilePaused(t *testing.T) {
	tm, clock := newTestTimer()
	tm.BeginBattle(25)

	clock.advance(5 * time.Minute)
	tm.Pause()
	tm.Suspend()
	clock.advance(2 * time.Hour)
	if done := tm.ResumeFromSuspend(); done {
		t.Fatal("a paused session owes no time while backgrounded")
	}
	if got := tm.Remaining(); got != 20*time.Minute {
		t.Fatalf("remaining=%s, want still 20m", got)
	}
	tm.Resume()
	if got := tm.Remaining(); got != 20*time.Minute {
		t.Fatalf("remaining=%s after resume, want 20m", got)
	}
}

func TestNextTauntDelayBounds(t *testing.T) {
	tm, _ := newTestTimer()
	for i := 0; i < 100; i++ {
		d := tm.NextTauntDelay()
		if d < 5*time.Minute || d >= 10*time.Minute {
			t.Fatalf("taunt delay %s outside [5m, 10m)", d)
		}
	}
}
