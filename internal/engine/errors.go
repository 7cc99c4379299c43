package engine

import (
	"errors"
	"fmt"
)

// ErrNoActiveBattle is returned when settling or inspecting a battle session
// that does not exist.
var ErrNoActiveBattle = errors.New("no active battle session")

// BattleActiveError indicates a second session was started while one is live.
type BattleActiveError struct {
	EnemyID string
}

func (e BattleActiveError) Error() string {
	return fmt.Sprintf("a battle against %s is already active", e.EnemyID)
}

// AllocationError indicates a stat allocation that does not match the points
// budget. Settlement is rejected before any state is mutated.
type AllocationError struct {
	Budget    int
	Allocated int
}

func (e AllocationError) Error() string {
	return fmt.Sprintf("allocated %d points, budget is %d", e.Allocated, e.Budget)
}

// RetiredError indicates an attempt to fight a permanently removed character.
type RetiredError struct {
	CharacterID string
}

func (e RetiredError) Error() string {
	return fmt.Sprintf("character %s is retired and can no longer be fought", e.CharacterID)
}

// LockedError indicates the hero does not meet a character's unlock gates.
type LockedError struct {
	CharacterID string
	MinStats    int
	MinStreak   int
}

func (e LockedError) Error() string {
	return fmt.Sprintf("character %s unlocks at %d total stats and a %d-day streak", e.CharacterID, e.MinStats, e.MinStreak)
}
