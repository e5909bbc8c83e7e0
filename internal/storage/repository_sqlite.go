package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
	"github.com/Armvda11/Epic7-sub000/internal/session"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase hero name -> config definition. Stats
	// and skills live in the config, not the database.
	configByName map[string]catalog.Hero
}

func NewSQLiteRepository(db *gorm.DB, configHeroes []catalog.Hero) Repository {
	m := make(map[string]catalog.Hero, len(configHeroes))
	for _, h := range configHeroes {
		m[strings.ToLower(h.Name)] = h
	}
	return &sqliteRepository{db: db, configByName: m}
}

// applyConfig overrides a hero row's in-memory stats from config.
func (r *sqliteRepository) applyConfig(h *catalog.Hero) {
	if conf, ok := r.configByName[strings.ToLower(h.Name)]; ok {
		h.Health = conf.Health
		h.Attack = conf.Attack
		h.Defense = conf.Defense
		h.Speed = conf.Speed
		h.Skills = conf.Skills
	}
}

func (r *sqliteRepository) GetHeroes() ([]catalog.Hero, error) {
	var heroes []catalog.Hero
	if err := r.db.Where("boss = ?", false).Find(&heroes).Error; err != nil {
		return nil, err
	}
	for i := range heroes {
		r.applyConfig(&heroes[i])
	}
	return heroes, nil
}

func (r *sqliteRepository) GetBosses() ([]catalog.Hero, error) {
	var bosses []catalog.Hero
	if err := r.db.Where("boss = ?", true).Find(&bosses).Error; err != nil {
		return nil, err
	}
	for i := range bosses {
		r.applyConfig(&bosses[i])
	}
	return bosses, nil
}

func (r *sqliteRepository) GetHeroesByIDs(ids []uint) ([]catalog.Hero, error) {
	var heroes []catalog.Hero
	if err := r.db.Where("id IN ? AND boss = ?", ids, false).Find(&heroes).Error; err != nil {
		return nil, err
	}
	if len(heroes) != len(ids) {
		return nil, catalog.ErrNotFound
	}
	// Return rows in the caller's order so team slots stay stable.
	byID := make(map[uint]catalog.Hero, len(heroes))
	for i := range heroes {
		r.applyConfig(&heroes[i])
		byID[heroes[i].ID] = heroes[i]
	}
	ordered := make([]catalog.Hero, 0, len(ids))
	for _, id := range ids {
		h, ok := byID[id]
		if !ok {
			return nil, catalog.ErrNotFound
		}
		ordered = append(ordered, h)
	}
	return ordered, nil
}

func (r *sqliteRepository) GetBossByID(id uint) (*catalog.Hero, error) {
	var boss catalog.Hero
	if err := r.db.Where("boss = ?", true).First(&boss, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	r.applyConfig(&boss)
	return &boss, nil
}

func (r *sqliteRepository) GetEquipmentForHeroes(heroIDs []uint) (map[uint][]catalog.Equipment, error) {
	var items []catalog.Equipment
	if err := r.db.Where("hero_id IN ?", heroIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[uint][]catalog.Equipment, len(heroIDs))
	for _, item := range items {
		out[item.HeroID] = append(out[item.HeroID], item)
	}
	return out, nil
}

func (r *sqliteRepository) UpsertSession(battleID string, payload []byte) error {
	row := BattleSession{BattleID: battleID, Payload: payload}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "battle_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func (r *sqliteRepository) GetSession(battleID string) ([]byte, error) {
	var row BattleSession
	if err := r.db.Where("battle_id = ?", battleID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return row.Payload, nil
}

func (r *sqliteRepository) DeleteSession(battleID string) error {
	return r.db.Unscoped().Where("battle_id = ?", battleID).Delete(&BattleSession{}).Error
}

func (r *sqliteRepository) ListSessions() ([][]byte, error) {
	var rows []BattleSession
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	payloads := make([][]byte, len(rows))
	for i := range rows {
		payloads[i] = rows[i].Payload
	}
	return payloads, nil
}

// RecordBattleEnd writes the battle result row and bumps win/loss
// counters. Best-effort: a duplicate battle id means the end was
// already recorded and is ignored.
func (r *sqliteRepository) RecordBattleEnd(state *battle.State) error {
	mode := "duel"
	if state.PvP() {
		mode = "arena"
	}
	loserID := ""
	if state.PvP() && state.WinnerID != "" {
		if state.WinnerID == state.Player1ID {
			loserID = state.Player2ID
		} else {
			loserID = state.Player1ID
		}
	}
	result := catalog.BattleResult{
		BattleID: state.BattleID,
		Mode:     mode,
		WinnerID: state.WinnerID,
		LoserID:  loserID,
		Rounds:   state.RoundCount,
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&result).Error; err != nil {
		return err
	}

	for _, userID := range []string{state.Player1ID, state.Player2ID} {
		if userID == "" {
			continue
		}
		profile, err := r.getOrCreateProfile(userID)
		if err != nil {
			return err
		}
		profile.BattlesPlayed++
		switch {
		case state.WinnerID == "":
			// draw or boss victory over the player; no winner counters
			if !state.PvP() {
				profile.Losses++
			}
		case state.WinnerID == userID:
			profile.Wins++
		default:
			profile.Losses++
		}
		if state.ForfeitedBy == userID {
			profile.Forfeits++
		}
		if err := r.db.Save(profile).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) getOrCreateProfile(userID string) (*catalog.PlayerProfile, error) {
	var profile catalog.PlayerProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = catalog.PlayerProfile{UserID: userID}
		if err := r.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *sqliteRepository) GetProfile(userID string) (*catalog.PlayerProfile, error) {
	return r.getOrCreateProfile(userID)
}
