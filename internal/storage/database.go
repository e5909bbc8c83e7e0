package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Armvda11/Epic7-sub000/internal/catalog"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
)

// BattleSession is the serialized session row backing session.DBStore.
type BattleSession struct {
	gorm.Model
	BattleID string `gorm:"uniqueIndex"`
	Payload  []byte `gorm:"type:blob"`
}

// EquipmentSeed links a configured equipment item to its owner hero by
// name; ids are only known after the hero rows exist.
type EquipmentSeed struct {
	HeroName string
	Item     catalog.Equipment
}

// OpenAndMigrate opens the SQLite database, migrates the schema and
// seeds the catalog from config on first run.
func OpenAndMigrate(dataSourceName string, heroes []catalog.Hero, equipment []EquipmentSeed) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&catalog.Hero{},
		&catalog.Equipment{},
		&catalog.PlayerProfile{},
		&catalog.BattleResult{},
		&BattleSession{},
	)
	if err != nil {
		return nil, err
	}
	seedCatalog(db, heroes, equipment)
	return db, nil
}

func seedCatalog(db *gorm.DB, heroes []catalog.Hero, equipment []EquipmentSeed) {
	var count int64
	db.Model(&catalog.Hero{}).Count(&count)
	if count > 0 {
		return
	}
	rows := make([]catalog.Hero, len(heroes))
	copy(rows, heroes)
	if err := db.Create(&rows).Error; err != nil {
		logging.Error("failed to seed hero catalog", err, nil)
		return
	}

	idByName := make(map[string]uint, len(rows))
	for _, h := range rows {
		idByName[h.Name] = h.ID
	}
	for _, seed := range equipment {
		heroID, ok := idByName[seed.HeroName]
		if !ok {
			logging.Warn("equipment references unknown hero", logging.Fields{"hero": seed.HeroName, "item": seed.Item.Name})
			continue
		}
		item := seed.Item
		item.HeroID = heroID
		if err := db.Create(&item).Error; err != nil {
			logging.Error("failed to seed equipment", err, logging.Fields{"item": item.Name})
		}
	}
}
