package storage

import "context"

type RotRepo struct {
	kv *KV
}

func NewRotRepo(kv *KV) *RotRepo {
	return &RotRepo{kv: kv}
}

// Load returns the stored rot state, or nil when none exists yet.
func (r *RotRepo) Load(ctx context.Context) (*RotState, error) {
	var s RotState
	found, err := r.kv.Get(ctx, KeyRotTracker, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *RotRepo) Save(ctx context.Context, s *RotState) error {
	return r.kv.Put(ctx, KeyRotTracker, s)
}

func (r *RotRepo) Reset(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyRotTracker)
}
