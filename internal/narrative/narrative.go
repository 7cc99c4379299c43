// Package narrative produces character flavor text: pre-battle taunts,
// mid-battle jabs, victory and defeat lines, and mentor letters. Text comes
// from a language model when one is configured and from the characters'
// static pools otherwise; a generator failure is never fatal.
package narrative

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"rainythoughts/internal/content"
	"rainythoughts/internal/engine"
)

// Kind selects which message slot to draw from.
type Kind string

const (
	KindPreBattle     Kind = "pre_battle"
	KindMidBattle     Kind = "mid_battle"
	KindVictory       Kind = "victory"
	KindDefeat        Kind = "defeat"
	KindEnemyDefeated Kind = "enemy_defeated"
	KindLetter        Kind = "letter"
)

// Generator produces one line of flavor text for a character at its current
// defeat count. Implementations must fail fast rather than block; callers
// fall back to static pools on any error.
type Generator interface {
	Generate(ctx context.Context, ch *content.Character, kind Kind, defeats int) (string, error)
}

// Static draws from the character's built-in message pools. It never fails
// except for retired characters, who have no content at any stage.
type Static struct {
	rng *rand.Rand
}

func NewStatic() *Static {
	return &Static{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *Static) Generate(_ context.Context, ch *content.Character, kind Kind, defeats int) (string, error) {
	msgs, ok := engine.CharacterMessages(ch, defeats)
	if !ok {
		return "", fmt.Errorf("character %s is retired", ch.ID)
	}

	var pool []string
	switch kind {
	case KindPreBattle, KindLetter:
		pool = msgs.PreBattle
	case KindMidBattle:
		pool = msgs.MidBattle
	case KindVictory:
		pool = msgs.Victory
	case KindDefeat:
		pool = msgs.Defeat
	case KindEnemyDefeated:
		pool = msgs.EnemyDefeated
	default:
		return "", fmt.Errorf("unknown message kind %q", kind)
	}
	if len(pool) == 0 {
		pool = ch.Fallback
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("character %s has no %s content", ch.ID, kind)
	}
	return pool[s.rng.Intn(len(pool))], nil
}
