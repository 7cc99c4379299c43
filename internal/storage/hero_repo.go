package storage

import (
	"context"
	"database/sql"
)

// MaxHistoryRecords caps the completion history; oldest records are evicted.
const MaxHistoryRecords = 100

type HeroRepo struct {
	kv *KV
}

func NewHeroRepo(kv *KV) *HeroRepo {
	return &HeroRepo{kv: kv}
}

// DefaultHeroProgress is the all-zero hero created on first access.
func DefaultHeroProgress() *HeroProgress {
	return &HeroProgress{
		Level: 1,
		Tier:  "pathetic",
	}
}

// Load returns the stored hero, or defaults when absent. Callers must
// recompute Level and Tier from Stats before trusting them.
func (r *HeroRepo) Load(ctx context.Context) (*HeroProgress, error) {
	var h HeroProgress
	found, err := r.kv.Get(ctx, KeyHeroProgress, &h)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultHeroProgress(), nil
	}
	return &h, nil
}

func (r *HeroRepo) Save(ctx context.Context, h *HeroProgress) error {
	return r.kv.Put(ctx, KeyHeroProgress, h)
}

// SaveWithRecord persists the hero and prepends a completion record to the
// capped history in one transaction, so a write failure loses both or neither.
func (r *HeroRepo) SaveWithRecord(ctx context.Context, h *HeroProgress, rec CompletionRecord) error {
	var history []CompletionRecord
	if _, err := r.kv.Get(ctx, KeyCompletionHistory, &history); err != nil {
		return err
	}
	history = append([]CompletionRecord{rec}, history...)
	if len(history) > MaxHistoryRecords {
		history = history[:MaxHistoryRecords]
	}

	return WithTx(ctx, r.kv.DB(), func(tx *sql.Tx) error {
		if err := r.kv.PutTx(ctx, tx, KeyHeroProgress, h); err != nil {
			return err
		}
		return r.kv.PutTx(ctx, tx, KeyCompletionHistory, history)
	})
}

// History returns the most recent completion records, newest first.
func (r *HeroRepo) History(ctx context.Context, limit int) ([]CompletionRecord, error) {
	var history []CompletionRecord
	if _, err := r.kv.Get(ctx, KeyCompletionHistory, &history); err != nil {
		return nil, err
	}
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// Reset clears the hero and its history.
func (r *HeroRepo) Reset(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyHeroProgress, KeyCompletionHistory)
}
