package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"rainythoughts/internal/storage"
)

const (
	QuestStatusActive    = "active"
	QuestStatusCompleted = "completed"

	RecurringNone  = "none"
	RecurringDaily = "daily"

	// DefaultQuestReward is stamped onto every quest at creation.
	DefaultQuestReward = 5
)

// CreateQuest inserts a new active quest at the front of the ledger.
// A deadline, if given, is normalized to a YYYY-MM-DD prefix so the
// overdue checks can compare date strings directly.
func (s *Service) CreateQuest(ctx context.Context, title string, category Stat, deadline string, recurring bool) (*storage.Quest, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}

	q := storage.Quest{
		ID:           uuid.NewString(),
		Title:        title,
		Category:     string(category),
		PointsReward: DefaultQuestReward,
		Status:       QuestStatusActive,
		CreatedAt:    DateOnly(time.Now()),
		Recurring:    RecurringNone,
	}
	if recurring {
		q.Recurring = RecurringDaily
	}
	if deadline != "" {
		d := NormalizeDate(deadline)
		q.Deadline = &d
	}

	quests, err := s.quests.List(ctx)
	if err != nil {
		return nil, err
	}
	quests = append([]storage.Quest{q}, quests...)
	if err := s.quests.Save(ctx, quests); err != nil {
		return nil, err
	}
	return &q, nil
}

// CompleteQuest marks a quest completed and awards its points to the
// quest's stat category. Completing a quest that is not active is a no-op
// and returns the quest unchanged.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*storage.Quest, error) {
	quests, err := s.quests.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quests {
		if quests[i].ID != id {
			continue
		}
		if quests[i].Status != QuestStatusActive {
			return &quests[i], nil
		}
		quests[i].Status = QuestStatusCompleted
		done := DateOnly(time.Now())
		quests[i].CompletedAt = &done
		if err := s.quests.Save(ctx, quests); err != nil {
			return nil, err
		}
		cat, err := ParseStat(quests[i].Category)
		if err != nil {
			return nil, err
		}
		if _, err := s.AwardQuestReward(ctx, cat, quests[i].PointsReward); err != nil {
			return nil, err
		}
		return &quests[i], nil
	}
	return nil, fmt.Errorf("no quest with id %s", id)
}

// DeleteQuest removes a quest unconditionally.
func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	quests, err := s.quests.List(ctx)
	if err != nil {
		return err
	}
	for i := range quests {
		if quests[i].ID == id {
			quests = append(quests[:i], quests[i+1:]...)
			return s.quests.Save(ctx, quests)
		}
	}
	return fmt.Errorf("no quest with id %s", id)
}

// ResetDailyQuests flips completed daily quests back to active the first
// time they are seen on a later calendar day than their last reset.
// Calling it again on the same day changes nothing.
func (s *Service) ResetDailyQuests(ctx context.Context) error {
	quests, err := s.quests.List(ctx)
	if err != nil {
		return err
	}
	today := DateOnly(time.Now())
	changed := false
	for i := range quests {
		q := &quests[i]
		if q.Recurring != RecurringDaily || q.Status != QuestStatusCompleted {
			continue
		}
		if q.LastReset != nil && *q.LastReset == today {
			continue
		}
		q.Status = QuestStatusActive
		q.CompletedAt = nil
		reset := today
		q.LastReset = &reset
		changed = true
	}
	if !changed {
		return nil
	}
	return s.quests.Save(ctx, quests)
}

// Quests runs the daily reset and returns the full ledger.
func (s *Service) Quests(ctx context.Context) ([]storage.Quest, error) {
	if err := s.ResetDailyQuests(ctx); err != nil {
		return nil, err
	}
	return s.quests.List(ctx)
}

// IsOverdue reports whether an active non-recurring quest's deadline has
// passed. Deadlines are YYYY-MM-DD strings, so string order is date order.
func IsOverdue(q storage.Quest, today string) bool {
	if q.Status != QuestStatusActive || q.Recurring == RecurringDaily || q.Deadline == nil {
		return false
	}
	return NormalizeDate(*q.Deadline) < today
}

// TodayQuests returns the quests that belong on today's board: every daily
// quest, non-recurring active quests due today, and anything completed today.
func TodayQuests(quests []storage.Quest, today string) []storage.Quest {
	var out []storage.Quest
	for _, q := range quests {
		switch {
		case q.Recurring == RecurringDaily:
			out = append(out, q)
		case q.Status == QuestStatusActive && q.Deadline != nil && NormalizeDate(*q.Deadline) == today:
			out = append(out, q)
		case q.Status == QuestStatusCompleted && q.CompletedAt != nil && NormalizeDate(*q.CompletedAt) == today:
			out = append(out, q)
		}
	}
	return out
}

// OverdueQuests returns active non-recurring quests whose deadline has passed.
func OverdueQuests(quests []storage.Quest, today string) []storage.Quest {
	var out []storage.Quest
	for _, q := range quests {
		if IsOverdue(q, today) {
			out = append(out, q)
		}
	}
	return out
}

// UpcomingQuests returns active non-recurring quests due after today,
// soonest first.
func UpcomingQuests(quests []storage.Quest, today string) []storage.Quest {
	var out []storage.Quest
	for _, q := range quests {
		if q.Status != QuestStatusActive || q.Recurring == RecurringDaily || q.Deadline == nil {
			continue
		}
		if NormalizeDate(*q.Deadline) > today {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return NormalizeDate(*out[i].Deadline) < NormalizeDate(*out[j].Deadline)
	})
	return out
}
