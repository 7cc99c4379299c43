package engine

import (
	"context"
	"fmt"

	"rainythoughts/internal/storage"
)

// Tier is the hero's derived rank. Like Level, it is a pure function of the
// stat total and is recomputed on every load.
type Tier string

const (
	TierPathetic   Tier = "pathetic"
	TierWeak       Tier = "weak"
	TierDeveloping Tier = "developing"
	TierStrong     Tier = "strong"
	TierLegendary  Tier = "legendary"
)

// LevelForStats returns floor(total/50) + 1.
func LevelForStats(totalStats int) int {
	if totalStats < 0 {
		totalStats = 0
	}
	return totalStats/50 + 1
}

// TierForStats maps the stat total onto the tier thresholds.
func TierForStats(totalStats int) Tier {
	switch {
	case totalStats >= 1000:
		return TierLegendary
	case totalStats >= 601:
		return TierStrong
	case totalStats >= 301:
		return TierDeveloping
	case totalStats >= 101:
		return TierWeak
	default:
		return TierPathetic
	}
}

// PointsForCompletion computes the stat-point budget for one completed
// session: base 5, +2 for a 5-star selfRating, +1 for 4 stars, plus one
// bonus point per full week of streak.
func PointsForCompletion(selfRating int, streakDays int) int {
	points := 5
	switch {
	case selfRating >= 5:
		points += 2
	case selfRating == 4:
		points++
	}
	if streakDays > 0 {
		points += streakDays / 7
	}
	return points
}

// NextStreak applies the streak rule: same day leaves the streak untouched,
// exactly one day's gap extends it, anything else restarts it at 1.
func NextStreak(lastCompletionDate, today string, current int) int {
	last := NormalizeDate(lastCompletionDate)
	switch {
	case last == today:
		return current
	case last == PrevDate(today, 1):
		return current + 1
	default:
		return 1
	}
}

// recompute overwrites the persisted derived fields from Stats. The stored
// values are display snapshots only and are never trusted.
func recompute(h *storage.HeroProgress) {
	total := h.Stats.Total()
	h.Level = LevelForStats(total)
	h.Tier = string(TierForStats(total))
}

// Hero loads the hero with Level and Tier freshly recomputed.
func (s *Service) Hero(ctx context.Context) (*storage.HeroProgress, error) {
	h, err := s.heroes.Load(ctx)
	if err != nil {
		return nil, err
	}
	recompute(h)
	return h, nil
}

// AwardQuestReward adds quest points to one stat category. No streak effect.
func (s *Service) AwardQuestReward(ctx context.Context, category Stat, amount int) (*storage.HeroProgress, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid stat category: %q", category)
	}
	if amount < 0 {
		return nil, fmt.Errorf("reward amount must be >= 0, got %d", amount)
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	addStat(&h.Stats, category, amount)
	recompute(h)
	if err := s.heroes.Save(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// ResetProgress clears the hero and its completion history.
func (s *Service) ResetProgress(ctx context.Context) error {
	return s.heroes.Reset(ctx)
}

// ResetAll clears every persisted component: progression, history, enemies,
// any active battle session, quests, and the rot tracker.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.heroes.Reset(ctx); err != nil {
		return err
	}
	if err := s.enemies.Reset(ctx); err != nil {
		return err
	}
	if err := s.quests.Reset(ctx); err != nil {
		return err
	}
	return s.rot.Reset(ctx)
}

func addStat(b *storage.StatBlock, category Stat, amount int) {
	switch category {
	case StatWealth:
		b.Wealth += amount
	case StatStrength:
		b.Strength += amount
	case StatWisdom:
		b.Wisdom += amount
	case StatLuck:
		b.Luck += amount
	}
}
