package engine

import (
	"math/rand"
	"time"
)

// SessionState is the lifecycle of a focus session as the timer sees it.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StatePreBattle SessionState = "pre_battle"
	StateBattle    SessionState = "battle"
	StateCompleted SessionState = "completed"
	StateDefeat    SessionState = "defeat"
)

// SessionTimer tracks the countdown for the single active session. It owns
// no persistence; the storage-backed BattleSession is the source of truth
// for what is being fought, the timer only answers "how much time is left"
// against the wall clock. Remaining time is derived from a deadline rather
// than a decrementing counter, so ticks that arrive late (or not at all
// while the process is suspended) cannot drift the clock.
type SessionTimer struct {
	state SessionState

	deadline    time.Time
	duration    time.Duration
	paused      bool
	pausedAt    time.Time
	suspendedAt time.Time

	now func() time.Time
	rng *rand.Rand
}

func NewSessionTimer() *SessionTimer {
	return &SessionTimer{
		state: StateIdle,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (t *SessionTimer) State() SessionState { return t.state }
func (t *SessionTimer) Paused() bool        { return t.paused }

// EnterPreBattle moves from idle to the taunt screen.
func (t *SessionTimer) EnterPreBattle() {
	t.state = StatePreBattle
	t.paused = false
}

// BeginBattle starts the countdown at durationMinutes*60 seconds.
func (t *SessionTimer) BeginBattle(durationMinutes int) {
	t.state = StateBattle
	t.paused = false
	t.duration = time.Duration(durationMinutes) * time.Minute
	t.deadline = t.now().Add(t.duration)
}

// Remaining is the time left on the countdown, never negative. While
// paused it is frozen at the value it had when the pause began.
func (t *SessionTimer) Remaining() time.Duration {
	if t.state != StateBattle {
		return 0
	}
	ref := t.now()
	if t.paused {
		ref = t.pausedAt
	}
	left := t.deadline.Sub(ref)
	if left < 0 {
		return 0
	}
	return left
}

// Elapsed is the portion of the session already spent.
func (t *SessionTimer) Elapsed() time.Duration {
	if t.state != StateBattle {
		return 0
	}
	return t.duration - t.Remaining()
}

// Tick checks the clock and transitions to completed when time is up.
// It reports whether this call performed the transition, which happens
// at most once per session.
func (t *SessionTimer) Tick() bool {
	if t.state != StateBattle || t.paused {
		return false
	}
	if t.Remaining() > 0 {
		return false
	}
	t.state = StateCompleted
	return true
}

// Pause freezes the countdown.
func (t *SessionTimer) Pause() {
	if t.state != StateBattle || t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.now()
}

// Resume pushes the deadline out by however long the pause lasted.
func (t *SessionTimer) Resume() {
	if t.state != StateBattle || !t.paused {
		return
	}
	t.deadline = t.deadline.Add(t.now().Sub(t.pausedAt))
	t.paused = false
}

// Suspend records the instant the process went to the background.
func (t *SessionTimer) Suspend() {
	if t.state != StateBattle {
		return
	}
	t.suspendedAt = t.now()
}

// ResumeFromSuspend reconciles wall-clock time that passed while the
// process was backgrounded. A paused session owes no time, so its deadline
// shifts by the full suspension. A running session keeps its deadline; if
// the suspension carried it past zero, completion fires immediately.
// Reports whether the session completed during the suspension.
func (t *SessionTimer) ResumeFromSuspend() bool {
	if t.state != StateBattle || t.suspendedAt.IsZero() {
		return false
	}
	suspended := t.now().Sub(t.suspendedAt)
	t.suspendedAt = time.Time{}
	if t.paused {
		t.deadline = t.deadline.Add(suspended)
		t.pausedAt = t.now()
		return false
	}
	return t.Tick()
}

// Quit abandons the battle. The caller is expected to cancel the stored
// session; no damage is recorded for a quit.
func (t *SessionTimer) Quit() {
	t.state = StateDefeat
	t.paused = false
}

// Dismiss returns to idle after a result screen.
func (t *SessionTimer) Dismiss() {
	t.state = StateIdle
	t.paused = false
}

// NextTauntDelay draws the interval until the next mid-battle flavor
// refresh, uniform between 5 and 10 minutes.
func (t *SessionTimer) NextTauntDelay() time.Duration {
	return 5*time.Minute + time.Duration(t.rng.Int63n(int64(5*time.Minute)))
}
