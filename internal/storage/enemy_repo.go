package storage

import "context"

type EnemyRepo struct {
	kv *KV
}

func NewEnemyRepo(kv *KV) *EnemyRepo {
	return &EnemyRepo{kv: kv}
}

// Enemies returns the full characterId -> Enemy table. Never nil.
func (r *EnemyRepo) Enemies(ctx context.Context) (map[string]Enemy, error) {
	enemies := map[string]Enemy{}
	if _, err := r.kv.Get(ctx, KeyEnemies, &enemies); err != nil {
		return nil, err
	}
	if enemies == nil {
		enemies = map[string]Enemy{}
	}
	return enemies, nil
}

func (r *EnemyRepo) SaveEnemies(ctx context.Context, enemies map[string]Enemy) error {
	return r.kv.Put(ctx, KeyEnemies, enemies)
}

// Enemy returns a single enemy, or nil if none exists for the character.
func (r *EnemyRepo) Enemy(ctx context.Context, characterID string) (*Enemy, error) {
	enemies, err := r.Enemies(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := enemies[characterID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// ActiveSession returns the singleton battle session, or nil when none is active.
func (r *EnemyRepo) ActiveSession(ctx context.Context) (*BattleSession, error) {
	var s BattleSession
	found, err := r.kv.Get(ctx, KeyBattleSession, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *EnemyRepo) PutSession(ctx context.Context, s *BattleSession) error {
	return r.kv.Put(ctx, KeyBattleSession, s)
}

func (r *EnemyRepo) ClearSession(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyBattleSession)
}

// Reset clears all enemies and any active session.
func (r *EnemyRepo) Reset(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyEnemies, KeyBattleSession)
}
