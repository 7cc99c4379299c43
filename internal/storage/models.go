package storage

import "time"

// Calendar-date fields hold "YYYY-MM-DD" strings so that lexicographic
// comparison is date ordering. Timestamps are full time.Time values.

type StatBlock struct {
	Wealth   int `json:"wealth"`
	Strength int `json:"strength"`
	Wisdom   int `json:"wisdom"`
	Luck     int `json:"luck"`
}

// Total is the sum of all four stats.
func (s StatBlock) Total() int {
	return s.Wealth + s.Strength + s.Wisdom + s.Luck
}

// HeroProgress is the singleton hero record. Level and Tier are persisted
// snapshots only; they are recomputed from Stats on every load.
type HeroProgress struct {
	Stats              StatBlock `json:"stats"`
	Level              int       `json:"level"`
	Tier               string    `json:"tier"`
	TotalSessions      int       `json:"totalSessions"`
	StreakDays         int       `json:"streakDays"`
	LastCompletionDate string    `json:"lastCompletionDate"`
}

type CompletionRecord struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	CharacterID     string    `json:"characterId"`
	DurationMinutes int       `json:"duration"`
	Quality         int       `json:"quality"`
	PointsEarned    int       `json:"pointsEarned"`
	StatsAllocated  StatBlock `json:"statsAllocated"`
}

type Enemy struct {
	CharacterID   string     `json:"characterId"`
	MaxHP         int        `json:"maxHp"`
	CurrentHP     int        `json:"currentHp"`
	Defeats       int        `json:"defeats"`
	IsDefeated    bool       `json:"isDefeated"`
	LastBattledAt *time.Time `json:"lastBattledAt,omitempty"`
}

// BattleSession is the process-wide singleton focus session. At most one
// exists at a time, under KeyBattleSession.
type BattleSession struct {
	EnemyID         string    `json:"enemyId"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"duration"`
	Completed       bool      `json:"completed"`
}

type Quest struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	PointsReward int     `json:"pointsReward"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	CompletedAt  *string `json:"completedAt,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
	Recurring    string  `json:"recurring"`
	LastReset    *string `json:"lastReset,omitempty"`
}

// RotState is the singleton idle-decay record. CurrentStreak is bookkeeping
// independent of HeroProgress.StreakDays.
type RotState struct {
	RotDays        int    `json:"rotDays"`
	ProductiveDays int    `json:"productiveDays"`
	LastWorkDate   string `json:"lastWorkDate"`
	CurrentStreak  int    `json:"currentStreak"`
	LastChecked    string `json:"lastChecked"`
}
