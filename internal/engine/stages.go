package engine

import (
	"context"

	"rainythoughts/internal/content"
	"rainythoughts/internal/storage"
)

// Stage is a demon's breakdown stage, a monotonic function of its defeat
// count. Defeats never decrease, so a character only ever moves toward
// retirement.
type Stage string

const (
	StageConfident Stage = "confident"
	StageBreaking  Stage = "breaking"
	StageBroken    Stage = "broken"
	StageShattered Stage = "shattered"
	StageRetired   Stage = "retired"
)

// StageForDefeats maps a defeat count onto the breakdown stages.
// threshold <= 0 means the default retirement threshold.
func StageForDefeats(defeats, threshold int) Stage {
	if threshold <= 0 {
		threshold = content.DefaultSuicideThreshold
	}
	switch {
	case defeats >= threshold:
		return StageRetired
	case defeats >= 10:
		return StageShattered
	case defeats >= 6:
		return StageBroken
	case defeats >= 3:
		return StageBreaking
	default:
		return StageConfident
	}
}

// CharacterMessages resolves the message pools for a character at the given
// defeat count. ok is false only when the character is retired; a character
// missing pools for its stage falls back to the default set, which is
// distinct from "no content available".
func CharacterMessages(ch *content.Character, defeats int) (*content.MessageSet, bool) {
	stage := StageForDefeats(defeats, ch.Threshold())
	if stage == StageRetired {
		return nil, false
	}

	base := ch.Messages
	if stage == StageShattered && ch.Shattered != nil {
		return &content.MessageSet{
			PreBattle:     ch.Shattered.PreBattle,
			MidBattle:     ch.Shattered.MidBattle,
			Victory:       base.Victory,
			Defeat:        base.Defeat,
			EnemyDefeated: []string{ch.Shattered.FinalWords},
		}, true
	}
	if (stage == StageBroken || stage == StageShattered) && ch.Broken != nil {
		return &content.MessageSet{
			PreBattle:     ch.Broken.PreBattle,
			MidBattle:     ch.Broken.MidBattle,
			Victory:       base.Victory,
			Defeat:        base.Defeat,
			EnemyDefeated: ch.Broken.EnemyDefeated,
		}, true
	}
	if (stage == StageBreaking || stage == StageBroken || stage == StageShattered) && ch.Breaking != nil {
		return &content.MessageSet{
			PreBattle:     ch.Breaking.PreBattle,
			MidBattle:     ch.Breaking.MidBattle,
			Victory:       base.Victory,
			Defeat:        base.Defeat,
			EnemyDefeated: ch.Breaking.EnemyDefeated,
		}, true
	}
	return &base, true
}

// Unlocked reports whether the hero meets a character's stat and streak gates.
// Evaluated fresh on every listing; never persisted.
func Unlocked(ch *content.Character, totalStats, streakDays int) bool {
	return totalStats >= ch.MinStats && streakDays >= ch.MinStreak
}

// CharacterList partitions the roster for selection screens. Retired
// characters appear in neither list.
type CharacterList struct {
	Available []content.Character
	Locked    []content.Character
}

// Demons returns the demon roster split into available and locked,
// with retired demons removed from both.
func (s *Service) Demons(ctx context.Context) (*CharacterList, error) {
	return s.listCharacters(ctx, content.CategoryDemon)
}

// Mentors returns the mentor roster split into available and locked.
// Mentors have no enemy records and can never retire.
func (s *Service) Mentors(ctx context.Context) (*CharacterList, error) {
	return s.listCharacters(ctx, content.CategoryMentor)
}

func (s *Service) listCharacters(ctx context.Context, cat content.Category) (*CharacterList, error) {
	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	enemies, err := s.enemies.Enemies(ctx)
	if err != nil {
		return nil, err
	}

	total := h.Stats.Total()
	out := &CharacterList{}
	for _, ch := range content.Characters() {
		if ch.Category != cat {
			continue
		}
		if e, ok := enemies[ch.ID]; ok && StageForDefeats(e.Defeats, ch.Threshold()) == StageRetired {
			continue
		}
		if Unlocked(&ch, total, h.StreakDays) {
			out.Available = append(out.Available, ch)
		} else {
			out.Locked = append(out.Locked, ch)
		}
	}
	return out, nil
}

// IsRetired reports whether a character's enemy record has crossed its
// retirement threshold.
func (s *Service) IsRetired(ctx context.Context, characterID string) (bool, error) {
	ch := content.ByID(characterID)
	if ch == nil {
		return false, nil
	}
	e, err := s.enemies.Enemy(ctx, characterID)
	if err != nil {
		return false, err
	}
	if e == nil {
		return false, nil
	}
	return StageForDefeats(e.Defeats, ch.Threshold()) == StageRetired, nil
}

// EnemyStage returns the breakdown stage for a character's enemy record,
// StageConfident when it has never been fought.
func EnemyStage(ch *content.Character, e *storage.Enemy) Stage {
	if e == nil {
		return StageConfident
	}
	return StageForDefeats(e.Defeats, ch.Threshold())
}
