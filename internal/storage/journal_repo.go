package storage

import (
	"context"
	"fmt"
)

// Journal categories. Narrative generation consumes these read-only; demons
// only ever see "problems".
const (
	JournalProblems = "problems"
	JournalGoals    = "goals"
	JournalFears    = "fears"
	JournalThoughts = "thoughts"
)

var JournalCategories = []string{JournalProblems, JournalGoals, JournalFears, JournalThoughts}

func ValidJournalCategory(category string) bool {
	for _, c := range JournalCategories {
		if c == category {
			return true
		}
	}
	return false
}

type JournalRepo struct {
	kv *KV
}

func NewJournalRepo(kv *KV) *JournalRepo {
	return &JournalRepo{kv: kv}
}

// Entries returns the stored entries for one category. Never nil.
func (r *JournalRepo) Entries(ctx context.Context, category string) ([]string, error) {
	if !ValidJournalCategory(category) {
		return nil, fmt.Errorf("unknown journal category: %q", category)
	}
	var entries []string
	if _, err := r.kv.Get(ctx, JournalKey(category), &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []string{}
	}
	return entries, nil
}

func (r *JournalRepo) Add(ctx context.Context, category, entry string) error {
	entries, err := r.Entries(ctx, category)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return r.kv.Put(ctx, JournalKey(category), entries)
}

// LifeGoals returns the home-screen life goals list. Never nil.
func (r *JournalRepo) LifeGoals(ctx context.Context) ([]string, error) {
	var goals []string
	if _, err := r.kv.Get(ctx, KeyLifeGoals, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []string{}
	}
	return goals, nil
}

func (r *JournalRepo) AddLifeGoal(ctx context.Context, goal string) error {
	goals, err := r.LifeGoals(ctx)
	if err != nil {
		return err
	}
	goals = append(goals, goal)
	return r.kv.Put(ctx, KeyLifeGoals, goals)
}
