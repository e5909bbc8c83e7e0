package storage

import (
	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
)

// Repository is the persistence contract. It covers the read-only
// catalog, the session rows used by the database-backed session store,
// and the write-only end-of-battle records.
type Repository interface {
	// Catalog (read-only reference data).
	GetHeroes() ([]catalog.Hero, error)
	GetBosses() ([]catalog.Hero, error)
	GetHeroesByIDs(ids []uint) ([]catalog.Hero, error)
	GetBossByID(id uint) (*catalog.Hero, error)
	GetEquipmentForHeroes(heroIDs []uint) (map[uint][]catalog.Equipment, error)

	// Session rows (see session.DBStore).
	UpsertSession(battleID string, payload []byte) error
	GetSession(battleID string) ([]byte, error)
	DeleteSession(battleID string) error
	ListSessions() ([][]byte, error)

	// Battle-end notification and player stats.
	RecordBattleEnd(state *battle.State) error
	GetProfile(userID string) (*catalog.PlayerProfile, error)
}
