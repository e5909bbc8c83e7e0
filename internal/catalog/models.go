package catalog

import (
	"gorm.io/gorm"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// Hero is a reference combatant template. Rows exist in the database so
// heroes have stable ids, but stats and skills come from the server
// config (the single source of truth) and are not persisted.
type Hero struct {
	gorm.Model
	Name string `json:"name"`
	// Boss marks scripted encounter templates not ownable by players.
	Boss    bool           `json:"boss"`
	Health  int            `json:"health" gorm:"-"`
	Attack  int            `json:"attack" gorm:"-"`
	Defense int            `json:"defense" gorm:"-"`
	Speed   int            `json:"speed" gorm:"-"`
	Skills  []battle.Skill `json:"skills" gorm:"-"`
}

func (Hero) TableName() string { return "hero_templates" }

// Equipment is an item granting flat stat bonuses to the hero it is
// equipped on. Seeded from config at startup.
type Equipment struct {
	gorm.Model
	HeroID       uint   `json:"hero_id" gorm:"index"`
	Name         string `json:"name"`
	AttackBonus  int    `json:"attack_bonus"`
	DefenseBonus int    `json:"defense_bonus"`
	SpeedBonus   int    `json:"speed_bonus"`
	HealthBonus  int    `json:"health_bonus"`
}

// PlayerProfile stores per-user aggregate battle stats.
type PlayerProfile struct {
	gorm.Model
	UserID        string `gorm:"uniqueIndex"`
	Name          string
	BattlesPlayed int
	Wins          int
	Losses        int
	Forfeits      int
}

func (PlayerProfile) TableName() string { return "player_profiles" }

// BattleResult is the write-only record of a finished battle.
type BattleResult struct {
	gorm.Model
	BattleID string `gorm:"uniqueIndex"`
	Mode     string
	WinnerID string
	LoserID  string
	Rounds   int
}
