package storage

import "context"

type QuestRepo struct {
	kv *KV
}

func NewQuestRepo(kv *KV) *QuestRepo {
	return &QuestRepo{kv: kv}
}

// List returns all quests in stored order (newest first).
func (r *QuestRepo) List(ctx context.Context) ([]Quest, error) {
	var quests []Quest
	if _, err := r.kv.Get(ctx, KeyQuests, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *QuestRepo) Save(ctx context.Context, quests []Quest) error {
	return r.kv.Put(ctx, KeyQuests, quests)
}

func (r *QuestRepo) Reset(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyQuests)
}
