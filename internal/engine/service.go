package engine

import (
	"database/sql"
	"errors"
	"strings"

	"rainythoughts/internal/storage"
)

// Service owns all persisted game state: hero progression, the enemy table,
// the quest ledger, the rot tracker, and the journal. The in-memory session
// timer is the single owner of the active focus-session lifecycle.
type Service struct {
	db      *sql.DB
	heroes  *storage.HeroRepo
	enemies *storage.EnemyRepo
	quests  *storage.QuestRepo
	rot     *storage.RotRepo
	journal *storage.JournalRepo
	timer   *SessionTimer
}

func NewService(db *sql.DB) *Service {
	kv := storage.NewKV(db)
	return &Service{
		db:      db,
		heroes:  storage.NewHeroRepo(kv),
		enemies: storage.NewEnemyRepo(kv),
		quests:  storage.NewQuestRepo(kv),
		rot:     storage.NewRotRepo(kv),
		journal: storage.NewJournalRepo(kv),
		timer:   NewSessionTimer(),
	}
}

func (s *Service) HeroRepo() *storage.HeroRepo       { return s.heroes }
func (s *Service) EnemyRepo() *storage.EnemyRepo     { return s.enemies }
func (s *Service) QuestRepo() *storage.QuestRepo     { return s.quests }
func (s *Service) RotRepo() *storage.RotRepo         { return s.rot }
func (s *Service) JournalRepo() *storage.JournalRepo { return s.journal }
func (s *Service) Timer() *SessionTimer              { return s.timer }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}
