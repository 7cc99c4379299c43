package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"rainythoughts/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setHeroStats(t *testing.T, svc *Service, stats storage.StatBlock) {
	t.Helper()
	ctx := context.Background()
	h, err := svc.Hero(ctx)
	if err != nil {
		t.Fatalf("load hero: %v", err)
	}
	h.Stats = stats
	if err := svc.HeroRepo().Save(ctx, h); err != nil {
		t.Fatalf("save hero: %v", err)
	}
}

func today() string {
	return DateOnly(time.Now())
}

func TestLevelForStats(t *testing.T) {
	cases := []struct {
		total, want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
		{500, 11},
	}
	for _, c := range cases {
		if got := LevelForStats(c.total); got != c.want {
			t.Errorf("LevelForStats(%d)=%d, want %d", c.total, got, c.want)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  Tier
	}{
		{0, TierPathetic},
		{100, TierPathetic},
		{101, TierWeak},
		{300, TierWeak},
		{301, TierDeveloping},
		{600, TierDeveloping},
		{601, TierStrong},
		{999, TierStrong},
		{1000, TierLegendary},
	}
	for _, c := range cases {
		if got := TierForStats(c.total); got != c.want {
			t.Errorf("TierForStats(%d)=%s, want %s", c.total, got, c.want)
		}
	}
}

func TestPointsForCompletion(t *testing.T) {
	if got := PointsForCompletion(5, 0); got != 7 {
		t.Fatalf("PointsForCompletion(5,0)=%d, want 7", got)
	}
	if got := PointsForCompletion(3, 14); got != 7 {
		t.Fatalf("PointsForCompletion(3,14)=%d, want 7", got)
	}
	if got := PointsForCompletion(4, 0); got != 6 {
		t.Fatalf("PointsForCompletion(4,0)=%d, want 6", got)
	}
	if got := PointsForCompletion(1, 0); got != 5 {
		t.Fatalf("PointsForCompletion(1,0)=%d, want 5", got)
	}

	// Never decreasing in either input.
	for q := MinQuality; q <= MaxQuality; q++ {
		for streak := 0; streak < 30; streak++ {
			p := PointsForCompletion(q, streak)
			if p < PointsForCompletion(q, 0) || (q > MinQuality && p < PointsForCompletion(q-1, streak)) {
				t.Fatalf("points dropped at quality=%d streak=%d", q, streak)
			}
		}
	}
}

func TestNextStreak(t *testing.T) {
	d := today()
	if got := NextStreak(d, d, 4); got != 4 {
		t.Fatalf("same-day streak=%d, want 4", got)
	}
	if got := NextStreak(PrevDate(d, 1), d, 4); got != 5 {
		t.Fatalf("yesterday streak=%d, want 5", got)
	}
	if got := NextStreak(PrevDate(d, 3), d, 4); got != 1 {
		t.Fatalf("3-day-gap streak=%d, want 1", got)
	}
	if got := NextStreak("", d, 4); got != 1 {
		t.Fatalf("empty-date streak=%d, want 1", got)
	}
}

func TestAwardQuestReward(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	h, err := svc.AwardQuestReward(ctx, StatWisdom, 120)
	if err != nil {
		t.Fatalf("AwardQuestReward: %v", err)
	}
	if h.Stats.Wisdom != 120 {
		t.Fatalf("wisdom=%d, want 120", h.Stats.Wisdom)
	}
	if h.Level != 3 {
		t.Fatalf("level=%d, want 3", h.Level)
	}
	if h.Tier != string(TierWeak) {
		t.Fatalf("tier=%s, want %s", h.Tier, TierWeak)
	}
	if h.StreakDays != 0 {
		t.Fatalf("streak=%d, want 0 (quest rewards do not touch streak)", h.StreakDays)
	}

	if _, err := svc.AwardQuestReward(ctx, Stat("charisma"), 5); err == nil {
		t.Fatal("expected error for unknown stat category")
	}
}

func TestDerivedFieldsRecomputedOnLoad(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	h, err := svc.Hero(ctx)
	if err != nil {
		t.Fatalf("load hero: %v", err)
	}
	h.Stats.Luck = 1000
	h.Level = 1
	h.Tier = string(TierPathetic)
	if err := svc.HeroRepo().Save(ctx, h); err != nil {
		t.Fatalf("save hero: %v", err)
	}

	h2, err := svc.Hero(ctx)
	if err != nil {
		t.Fatalf("reload hero: %v", err)
	}
	if h2.Level != 21 || h2.Tier != string(TierLegendary) {
		t.Fatalf("level=%d tier=%s, want 21 %s", h2.Level, h2.Tier, TierLegendary)
	}
}
