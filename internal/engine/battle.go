package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rainythoughts/internal/content"
	"rainythoughts/internal/storage"
)

// EnemyHP scales with the hero: 100 base plus 100 per full 50 total stats.
func EnemyHP(totalStats int) int {
	if totalStats < 0 {
		totalStats = 0
	}
	return 100 + 100*(totalStats/50)
}

// Damage is one point per focused minute, multiplied by 1 + selfRating/10.
// selfRating is the same 1-5 rating the points budget uses; at 5 the
// multiplier tops out at 1.5x.
func Damage(durationMinutes, selfRating int) int {
	return int(float64(durationMinutes) * (1 + float64(selfRating)/10))
}

// InitEnemy creates or respawns the enemy record for a character. A fresh
// enemy is sized from the hero's current stat total. A defeated one comes
// back fully healed and tougher: the stat-based HP plus 50 per prior defeat.
// An undefeated enemy is returned unchanged so the fight resumes against its
// remaining HP.
func (s *Service) InitEnemy(ctx context.Context, characterID string) (*storage.Enemy, error) {
	ch := content.ByID(characterID)
	if ch == nil {
		return nil, fmt.Errorf("unknown character: %s", characterID)
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	enemies, err := s.enemies.Enemies(ctx)
	if err != nil {
		return nil, err
	}

	total := h.Stats.Total()
	e, ok := enemies[characterID]
	if !ok {
		hp := EnemyHP(total)
		e = storage.Enemy{
			CharacterID: characterID,
			MaxHP:       hp,
			CurrentHP:   hp,
		}
		enemies[characterID] = e
		if err := s.enemies.SaveEnemies(ctx, enemies); err != nil {
			return nil, err
		}
		return &e, nil
	}

	if StageForDefeats(e.Defeats, ch.Threshold()) == StageRetired {
		return nil, RetiredError{CharacterID: characterID}
	}

	if e.IsDefeated {
		hp := EnemyHP(total) + 50*e.Defeats
		e.MaxHP = hp
		e.CurrentHP = hp
		e.IsDefeated = false
		enemies[characterID] = e
		if err := s.enemies.SaveEnemies(ctx, enemies); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

// BattleStart describes a freshly started session and its opponent.
type BattleStart struct {
	Session *storage.BattleSession
	Enemy   *storage.Enemy
}

// StartBattle creates the singleton battle session against a demon. It
// refuses retired or locked characters even if a stale caller offers them,
// and refuses to stack a second session on an active one.
func (s *Service) StartBattle(ctx context.Context, characterID string, durationMinutes int) (*BattleStart, error) {
	ch := content.ByID(characterID)
	if ch == nil {
		return nil, fmt.Errorf("unknown character: %s", characterID)
	}
	if ch.Category != content.CategoryDemon {
		return nil, fmt.Errorf("character %s is a %s, not a demon", characterID, ch.Category)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d minutes", durationMinutes)
	}

	active, err := s.enemies.ActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, BattleActiveError{EnemyID: active.EnemyID}
	}

	retired, err := s.IsRetired(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if retired {
		return nil, RetiredError{CharacterID: characterID}
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	if !Unlocked(ch, h.Stats.Total(), h.StreakDays) {
		return nil, LockedError{CharacterID: characterID, MinStats: ch.MinStats, MinStreak: ch.MinStreak}
	}

	enemy, err := s.InitEnemy(ctx, characterID)
	if err != nil {
		return nil, err
	}

	session := &storage.BattleSession{
		EnemyID:         characterID,
		StartTime:       time.Now().UTC(),
		DurationMinutes: durationMinutes,
	}
	if err := s.enemies.PutSession(ctx, session); err != nil {
		return nil, err
	}
	return &BattleStart{Session: session, Enemy: enemy}, nil
}

// ActiveBattle returns the live session, or ErrNoActiveBattle.
func (s *Service) ActiveBattle(ctx context.Context) (*storage.BattleSession, error) {
	session, err := s.enemies.ActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveBattle
	}
	return session, nil
}

// CancelBattle discards the active session without touching the enemy.
// Quitting records no damage. Cancelling with no session is a no-op.
func (s *Service) CancelBattle(ctx context.Context) error {
	return s.enemies.ClearSession(ctx)
}

// SettleInput carries the post-session user input: the 1-5 self-rating and
// the stat allocation of the points budget.
type SettleInput struct {
	Quality   int
	Allocated storage.StatBlock
}

// SettleResult reports everything the result screen needs.
type SettleResult struct {
	Damage        int
	EnemyDefeated bool
	Enemy         storage.Enemy
	Stage         Stage
	Retired       bool
	FinalWords    string
	PointsBudget  int
	Hero          *storage.HeroProgress
	LevelBefore   int
	LevelAfter    int
}

// SettleBattle settles the active session: applies damage to the enemy,
// then settles hero progression, then tells the rot tracker a productive
// action happened. All validation runs before the first persisted mutation.
func (s *Service) SettleBattle(ctx context.Context, in SettleInput) (*SettleResult, error) {
	if !ValidQuality(in.Quality) {
		return nil, fmt.Errorf("quality must be %d-%d, got %d", MinQuality, MaxQuality, in.Quality)
	}

	session, err := s.enemies.ActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveBattle
	}

	ch := content.ByID(session.EnemyID)
	if ch == nil {
		return nil, fmt.Errorf("unknown character: %s", session.EnemyID)
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	budget := PointsForCompletion(in.Quality, h.StreakDays)
	if allocated := in.Allocated.Total(); allocated != budget {
		return nil, AllocationError{Budget: budget, Allocated: allocated}
	}

	enemies, err := s.enemies.Enemies(ctx)
	if err != nil {
		return nil, err
	}
	enemy, ok := enemies[session.EnemyID]
	if !ok {
		return nil, fmt.Errorf("no enemy record for %s", session.EnemyID)
	}

	// Battle settlement.
	now := time.Now().UTC()
	dmg := Damage(session.DurationMinutes, in.Quality)
	enemy.CurrentHP -= dmg
	if enemy.CurrentHP < 0 {
		enemy.CurrentHP = 0
	}
	defeated := false
	if enemy.CurrentHP == 0 && !enemy.IsDefeated {
		enemy.IsDefeated = true
		enemy.Defeats++
		defeated = true
	}
	enemy.LastBattledAt = &now
	enemies[session.EnemyID] = enemy
	if err := s.enemies.SaveEnemies(ctx, enemies); err != nil {
		return nil, err
	}
	if err := s.enemies.ClearSession(ctx); err != nil {
		return nil, err
	}

	// Progression settlement.
	levelBefore := h.Level
	h.Stats.Wealth += in.Allocated.Wealth
	h.Stats.Strength += in.Allocated.Strength
	h.Stats.Wisdom += in.Allocated.Wisdom
	h.Stats.Luck += in.Allocated.Luck
	h.TotalSessions++
	today := DateOnly(now)
	h.StreakDays = NextStreak(h.LastCompletionDate, today, h.StreakDays)
	h.LastCompletionDate = today
	recompute(h)

	rec := storage.CompletionRecord{
		ID:              uuid.NewString(),
		Date:            now,
		CharacterID:     session.EnemyID,
		DurationMinutes: session.DurationMinutes,
		Quality:         in.Quality,
		PointsEarned:    budget,
		StatsAllocated:  in.Allocated,
	}
	if err := s.heroes.SaveWithRecord(ctx, h, rec); err != nil {
		return nil, err
	}

	if _, err := s.RecordWork(ctx); err != nil {
		return nil, err
	}

	stage := StageForDefeats(enemy.Defeats, ch.Threshold())
	res := &SettleResult{
		Damage:        dmg,
		EnemyDefeated: defeated,
		Enemy:         enemy,
		Stage:         stage,
		PointsBudget:  budget,
		Hero:          h,
		LevelBefore:   levelBefore,
		LevelAfter:    h.Level,
	}
	if defeated && stage == StageRetired {
		res.Retired = true
		if ch.Shattered != nil {
			res.FinalWords = ch.Shattered.FinalWords
		}
	}
	return res, nil
}
