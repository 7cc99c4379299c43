package engine

import (
	"context"
	"errors"
	"testing"

	"rainythoughts/internal/content"
	"rainythoughts/internal/storage"
)

const testDemon = "rejected_girl"

func TestEnemyHP(t *testing.T) {
	cases := []struct {
		total, want int
	}{
		{0, 100},
		{49, 100},
		{50, 200},
		{249, 200},
		{250, 300},
	}
	for _, c := range cases {
		if got := EnemyHP(c.total); got != c.want {
			t.Errorf("EnemyHP(%d)=%d, want %d", c.total, got, c.want)
		}
	}
}

func TestDamage(t *testing.T) {
	if got := Damage(25, 5); got != 37 {
		t.Fatalf("Damage(25,5)=%d, want 37", got)
	}
	if got := Damage(25, 1); got != 27 {
		t.Fatalf("Damage(25,1)=%d, want 27", got)
	}
	if got := Damage(0, 5); got != 0 {
		t.Fatalf("Damage(0,5)=%d, want 0", got)
	}
}

func TestStageForDefeats(t *testing.T) {
	cases := []struct {
		defeats int
		want    Stage
	}{
		{0, StageConfident},
		{2, StageConfident},
		{3, StageBreaking},
		{5, StageBreaking},
		{6, StageBroken},
		{9, StageBroken},
		{10, StageShattered},
		{14, StageShattered},
		{15, StageRetired},
		{40, StageRetired},
	}
	for _, c := range cases {
		if got := StageForDefeats(c.defeats, content.DefaultSuicideThreshold); got != c.want {
			t.Errorf("StageForDefeats(%d)=%s, want %s", c.defeats, got, c.want)
		}
	}
}

func TestStartBattleGates(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartBattle(ctx, "nobody", 25); err == nil {
		t.Fatal("expected error for unknown character")
	}
	if _, err := svc.StartBattle(ctx, "goggins", 25); err == nil {
		t.Fatal("expected error fighting a mentor")
	}

	var locked LockedError
	if _, err := svc.StartBattle(ctx, "vader", 25); !errors.As(err, &locked) {
		t.Fatalf("expected LockedError, got %v", err)
	}
	if locked.MinStats != 1000 || locked.MinStreak != 30 {
		t.Fatalf("locked gates = %d/%d, want 1000/30", locked.MinStats, locked.MinStreak)
	}

	start, err := svc.StartBattle(ctx, testDemon, 25)
	if err != nil {
		t.Fatalf("StartBattle: %v", err)
	}
	if start.Enemy.MaxHP != 100 || start.Enemy.CurrentHP != 100 {
		t.Fatalf("fresh enemy hp = %d/%d, want 100/100", start.Enemy.CurrentHP, start.Enemy.MaxHP)
	}

	var active BattleActiveError
	if _, err := svc.StartBattle(ctx, testDemon, 25); !errors.As(err, &active) {
		t.Fatalf("expected BattleActiveError, got %v", err)
	}
	if active.EnemyID != testDemon {
		t.Fatalf("active enemy = %s, want %s", active.EnemyID, testDemon)
	}
}

func TestCancelBattle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartBattle(ctx, testDemon, 25); err != nil {
		t.Fatalf("StartBattle: %v", err)
	}
	if err := svc.CancelBattle(ctx); err != nil {
		t.Fatalf("CancelBattle: %v", err)
	}
	if _, err := svc.ActiveBattle(ctx); !errors.Is(err, ErrNoActiveBattle) {
		t.Fatalf("expected ErrNoActiveBattle, got %v", err)
	}

	e, err := svc.EnemyRepo().Enemy(ctx, testDemon)
	if err != nil {
		t.Fatalf("load enemy: %v", err)
	}
	if e.CurrentHP != e.MaxHP {
		t.Fatalf("quit recorded damage: %d/%d", e.CurrentHP, e.MaxHP)
	}

	// Cancelling again is a no-op.
	if err := svc.CancelBattle(ctx); err != nil {
		t.Fatalf("second CancelBattle: %v", err)
	}
}

func TestSettleRejectsBadAllocation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.SettleBattle(ctx, SettleInput{Quality: 5, Allocated: storage.StatBlock{Strength: 7}}); !errors.Is(err, ErrNoActiveBattle) {
		t.Fatalf("expected ErrNoActiveBattle, got %v", err)
	}

	if _, err := svc.StartBattle(ctx, testDemon, 25); err != nil {
		t.Fatalf("StartBattle: %v", err)
	}

	if _, err := svc.SettleBattle(ctx, SettleInput{Quality: 6, Allocated: storage.StatBlock{Strength: 7}}); err == nil {
		t.Fatal("expected error for out-of-range quality")
	}

	var alloc AllocationError
	if _, err := svc.SettleBattle(ctx, SettleInput{Quality: 5, Allocated: storage.StatBlock{Strength: 6}}); !errors.As(err, &alloc) {
		t.Fatalf("expected AllocationError, got %v", err)
	}
	if alloc.Budget != 7 || alloc.Allocated != 6 {
		t.Fatalf("allocation error = %d/%d, want 6/7", alloc.Allocated, alloc.Budget)
	}

	// A rejected settlement leaves the session live.
	if _, err := svc.ActiveBattle(ctx); err != nil {
		t.Fatalf("session should survive rejected settlement: %v", err)
	}
}

func TestFirstSessionEndToEnd(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartBattle(ctx, testDemon, 25); err != nil {
		t.Fatalf("StartBattle: %v", err)
	}
	res, err := svc.SettleBattle(ctx, SettleInput{Quality: 5, Allocated: storage.StatBlock{Strength: 7}})
	if err != nil {
		t.Fatalf("SettleBattle: %v", err)
	}

	if res.Damage != 37 {
		t.Fatalf("damage=%d, want 37", res.Damage)
	}
	if res.Enemy.CurrentHP != 63 {
		t.Fatalf("enemy hp=%d, want 63", res.Enemy.CurrentHP)
	}
	if res.EnemyDefeated {
		t.Fatal("enemy should not be defeated")
	}
	if res.PointsBudget != 7 {
		t.Fatalf("budget=%d, want 7", res.PointsBudget)
	}

	h := res.Hero
	if h.Stats.Strength != 7 {
		t.Fatalf("strength=%d, want 7", h.Stats.Strength)
	}
	if h.Level != 1 || h.Tier != string(TierPathetic) {
		t.Fatalf("level=%d tier=%s, want 1 %s", h.Level, h.Tier, TierPathetic)
	}
	if h.TotalSessions != 1 {
		t.Fatalf("totalSessions=%d, want 1", h.TotalSessions)
	}
	if h.StreakDays != 1 {
		t.Fatalf("streak=%d, want 1", h.StreakDays)
	}

	if _, err := svc.ActiveBattle(ctx); !errors.Is(err, ErrNoActiveBattle) {
		t.Fatalf("session should be cleared, got %v", err)
	}

	hist, err := svc.HeroRepo().History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 1 || hist[0].PointsEarned != 7 || hist[0].CharacterID != testDemon {
		t.Fatalf("unexpected history: %+v", hist)
	}
}

func TestDefeatCountsOnceAndRespawnScales(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	fight := func() *SettleResult {
		t.Helper()
		if _, err := svc.StartBattle(ctx, testDemon, 25); err != nil {
			t.Fatalf("StartBattle: %v", err)
		}
		h, err := svc.Hero(ctx)
		if err != nil {
			t.Fatalf("load hero: %v", err)
		}
		budget := PointsForCompletion(5, h.StreakDays)
		res, err := svc.SettleBattle(ctx, SettleInput{Quality: 5, Allocated: storage.StatBlock{Strength: budget}})
		if err != nil {
			t.Fatalf("SettleBattle: %v", err)
		}
		return res
	}

	fight() // 100 -> 63
	fight() // 63 -> 26
	res := fight()

	if !res.EnemyDefeated {
		t.Fatal("third session should defeat the enemy")
	}
	if res.Enemy.CurrentHP != 0 {
		t.Fatalf("overshoot hp=%d, want floor at 0", res.Enemy.CurrentHP)
	}
	if res.Enemy.Defeats != 1 {
		t.Fatalf("defeats=%d, want exactly 1", res.Enemy.Defeats)
	}
	if res.Retired {
		t.Fatal("one defeat must not retire")
	}

	h, err := svc.Hero(ctx)
	if err != nil {
		t.Fatalf("load hero: %v", err)
	}
	priorMax := res.Enemy.MaxHP

	// Selecting the defeated character respawns it tougher and fully healed.
	e, err := svc.InitEnemy(ctx, testDemon)
	if err != nil {
		t.Fatalf("InitEnemy: %v", err)
	}
	wantHP := EnemyHP(h.Stats.Total()) + 50
	if e.MaxHP != wantHP {
		t.Fatalf("respawn maxHp=%d, want %d", e.MaxHP, wantHP)
	}
	if e.MaxHP <= priorMax {
		t.Fatalf("respawn maxHp=%d should exceed prior %d", e.MaxHP, priorMax)
	}
	if e.CurrentHP != e.MaxHP {
		t.Fatalf("respawn hp=%d/%d, want full heal", e.CurrentHP, e.MaxHP)
	}
	if e.IsDefeated {
		t.Fatal("respawned enemy should not be flagged defeated")
	}
}

func setDefeats(t *testing.T, svc *Service, characterID string, defeats int) {
	t.Helper()
	ctx := context.Background()
	enemies, err := svc.EnemyRepo().Enemies(ctx)
	if err != nil {
		t.Fatalf("load enemies: %v", err)
	}
	enemies[characterID] = storage.Enemy{
		CharacterID: characterID,
		MaxHP:       100,
		CurrentHP:   100,
		Defeats:     defeats,
	}
	if err := svc.EnemyRepo().SaveEnemies(ctx, enemies); err != nil {
		t.Fatalf("save enemies: %v", err)
	}
}

func TestRetiredCharacterIsGone(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	ch := content.ByID(testDemon)
	setDefeats(t, svc, testDemon, ch.Threshold())

	list, err := svc.Demons(ctx)
	if err != nil {
		t.Fatalf("Demons: %v", err)
	}
	for _, c := range append(list.Available, list.Locked...) {
		if c.ID == testDemon {
			t.Fatalf("retired character %s appears in listings", testDemon)
		}
	}

	if _, ok := CharacterMessages(ch, ch.Threshold()); ok {
		t.Fatal("retired character should have no message content")
	}

	var retired RetiredError
	if _, err := svc.StartBattle(ctx, testDemon, 25); !errors.As(err, &retired) {
		t.Fatalf("expected RetiredError, got %v", err)
	}
	if _, err := svc.InitEnemy(ctx, testDemon); !errors.As(err, &retired) {
		t.Fatalf("expected RetiredError from respawn path, got %v", err)
	}
}

func TestRetirementBranchOnFinalDefeat(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	ch := content.ByID(testDemon)
	setDefeats(t, svc, testDemon, ch.Threshold()-1)

	if _, err := svc.StartBattle(ctx, testDemon, 100); err != nil {
		t.Fatalf("StartBattle: %v", err)
	}
	res, err := svc.SettleBattle(ctx, SettleInput{Quality: 5, Allocated: storage.StatBlock{Wisdom: 7}})
	if err != nil {
		t.Fatalf("SettleBattle: %v", err)
	}
	if !res.EnemyDefeated || !res.Retired {
		t.Fatalf("defeated=%v retired=%v, want both true", res.EnemyDefeated, res.Retired)
	}
	if res.FinalWords == "" {
		t.Fatal("retirement must carry the character's final words")
	}
	if res.Stage != StageRetired {
		t.Fatalf("stage=%s, want %s", res.Stage, StageRetired)
	}
}

func TestStagePoolFallbacks(t *testing.T) {
	ch := content.ByID("disappointed_parents")
	if ch == nil {
		t.Fatal("roster missing disappointed_parents")
	}

	msgs, ok := CharacterMessages(ch, 0)
	if !ok || len(msgs.PreBattle) == 0 {
		t.Fatal("confident stage should use the base pool")
	}

	msgs, ok = CharacterMessages(ch, 12)
	if !ok {
		t.Fatal("shattered stage is not retirement")
	}
	if ch.Shattered != nil && len(msgs.EnemyDefeated) != 1 {
		t.Fatalf("shattered victory pool should be the final words, got %d entries", len(msgs.EnemyDefeated))
	}
}
