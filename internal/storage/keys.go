package storage

// Persisted keys. Each is owned by exactly one repo; no repo reads another's
// key except JournalRepo's, which narrative generation consumes read-only.
const (
	KeyHeroProgress      = "hero_progress"
	KeyCompletionHistory = "completion_history"
	KeyEnemies           = "battle_enemies"
	KeyBattleSession     = "current_battle_session"
	KeyQuests            = "quests"
	KeyRotTracker        = "rot_tracker"
	KeyLifeGoals         = "life_goals"

	keyJournalPrefix = "journal_"
)

// JournalKey returns the key holding one journal category's entries.
func JournalKey(category string) string {
	return keyJournalPrefix + category
}
