package engine

import (
	"context"
	"time"

	"rainythoughts/internal/storage"
)

// RotTracker loads the rot state and applies the day-boundary check: if a
// whole calendar day has passed since the last check and the last productive
// day is neither yesterday nor today, every elapsed day counts as rot and
// the streak dies. The check always stamps lastChecked and persists, so
// loading twice on the same day is a no-op the second time.
func (s *Service) RotTracker(ctx context.Context) (*storage.RotState, error) {
	state, err := s.rot.Load(ctx)
	if err != nil {
		return nil, err
	}
	today := DateOnly(time.Now())
	if state == nil {
		state = &storage.RotState{LastChecked: today}
		if err := s.rot.Save(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}
	if state.LastChecked == today {
		return state, nil
	}

	elapsed := DaysBetween(state.LastChecked, today)
	if elapsed > 0 {
		yesterday := PrevDate(today, 1)
		if state.LastWorkDate != today && state.LastWorkDate != yesterday {
			state.RotDays += elapsed
			state.CurrentStreak = 0
		}
	}
	state.LastChecked = today
	if err := s.rot.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// RecordWork credits one productive day. At most one credit per calendar
// day: a second call on the same day returns the state untouched. One
// productive day buys back one rot day, never below zero.
func (s *Service) RecordWork(ctx context.Context) (*storage.RotState, error) {
	state, err := s.RotTracker(ctx)
	if err != nil {
		return nil, err
	}
	today := DateOnly(time.Now())
	if state.LastWorkDate == today {
		return state, nil
	}

	state.ProductiveDays++
	if state.RotDays > 0 {
		state.RotDays--
	}
	if state.LastWorkDate == PrevDate(today, 1) {
		state.CurrentStreak++
	} else {
		state.CurrentStreak = 1
	}
	state.LastWorkDate = today
	state.LastChecked = today
	if err := s.rot.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}
