package engine

import (
	"context"
	"testing"

	"rainythoughts/internal/storage"
)

func TestRecordWorkOncePerDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	state, err := svc.RecordWork(ctx)
	if err != nil {
		t.Fatalf("RecordWork: %v", err)
	}
	if state.ProductiveDays != 1 || state.CurrentStreak != 1 {
		t.Fatalf("productive=%d streak=%d, want 1/1", state.ProductiveDays, state.CurrentStreak)
	}
	if state.RotDays != 0 {
		t.Fatalf("rotDays=%d, want floor at 0", state.RotDays)
	}
	if state.LastWorkDate != today() {
		t.Fatalf("lastWorkDate=%s, want today", state.LastWorkDate)
	}

	// Second call on the same day mutates nothing.
	state2, err := svc.RecordWork(ctx)
	if err != nil {
		t.Fatalf("second RecordWork: %v", err)
	}
	if state2.ProductiveDays != 1 || state2.CurrentStreak != 1 || state2.RotDays != 0 {
		t.Fatalf("same-day call mutated state: %+v", state2)
	}
}

func TestRecordWorkContinuesStreakAndBuysBackRot(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	d := today()
	if err := svc.RotRepo().Save(ctx, &storage.RotState{
		RotDays:        3,
		ProductiveDays: 5,
		LastWorkDate:   PrevDate(d, 1),
		CurrentStreak:  4,
		LastChecked:    d,
	}); err != nil {
		t.Fatalf("seed rot state: %v", err)
	}

	state, err := svc.RecordWork(ctx)
	if err != nil {
		t.Fatalf("RecordWork: %v", err)
	}
	if state.CurrentStreak != 5 {
		t.Fatalf("streak=%d, want 5 after working yesterday", state.CurrentStreak)
	}
	if state.RotDays != 2 {
		t.Fatalf("rotDays=%d, want 2 (one day bought back)", state.RotDays)
	}
	if state.ProductiveDays != 6 {
		t.Fatalf("productiveDays=%d, want 6", state.ProductiveDays)
	}
}

func TestRotAccruesAcrossIdleDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	d := today()
	if err := svc.RotRepo().Save(ctx, &storage.RotState{
		RotDays:       1,
		LastWorkDate:  PrevDate(d, 4),
		CurrentStreak: 3,
		LastChecked:   PrevDate(d, 4),
	}); err != nil {
		t.Fatalf("seed rot state: %v", err)
	}

	state, err := svc.RotTracker(ctx)
	if err != nil {
		t.Fatalf("RotTracker: %v", err)
	}
	if state.RotDays != 5 {
		t.Fatalf("rotDays=%d, want 1 + 4 elapsed", state.RotDays)
	}
	if state.CurrentStreak != 0 {
		t.Fatalf("streak=%d, want reset to 0", state.CurrentStreak)
	}
	if state.LastChecked != d {
		t.Fatalf("lastChecked=%s, want today", state.LastChecked)
	}

	// Loading again on the same day changes nothing further.
	state2, err := svc.RotTracker(ctx)
	if err != nil {
		t.Fatalf("second RotTracker: %v", err)
	}
	if state2.RotDays != 5 || state2.CurrentStreak != 0 {
		t.Fatalf("same-day load mutated state: %+v", state2)
	}
}

func TestRotSparedWhenWorkedYesterday(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	d := today()
	if err := svc.RotRepo().Save(ctx, &storage.RotState{
		LastWorkDate:  PrevDate(d, 1),
		CurrentStreak: 2,
		LastChecked:   PrevDate(d, 1),
	}); err != nil {
		t.Fatalf("seed rot state: %v", err)
	}

	state, err := svc.RotTracker(ctx)
	if err != nil {
		t.Fatalf("RotTracker: %v", err)
	}
	if state.RotDays != 0 {
		t.Fatalf("rotDays=%d, yesterday's work should spare today's check", state.RotDays)
	}
	if state.CurrentStreak != 2 {
		t.Fatalf("streak=%d, want preserved", state.CurrentStreak)
	}
}
