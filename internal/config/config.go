package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
	"github.com/Armvda11/Epic7-sub000/internal/engine"
	"github.com/Armvda11/Epic7-sub000/internal/storage"
)

type heroEntry struct {
	Name    string         `json:"name"`
	Boss    bool           `json:"boss"`
	Health  int            `json:"health"`
	Attack  int            `json:"attack"`
	Defense int            `json:"defense"`
	Speed   int            `json:"speed"`
	Skills  []battle.Skill `json:"skills"`
}

type equipmentEntry struct {
	Hero         string `json:"hero"`
	Name         string `json:"name"`
	AttackBonus  int    `json:"attack_bonus"`
	DefenseBonus int    `json:"defense_bonus"`
	SpeedBonus   int    `json:"speed_bonus"`
	HealthBonus  int    `json:"health_bonus"`
}

type rawConfig struct {
	HeroList      []heroEntry      `json:"hero_list"`
	EquipmentList []equipmentEntry `json:"equipment_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
	Combat *struct {
		DefenseConstant       float64 `json:"defense_constant"`
		TurnTimeoutSeconds    int     `json:"turn_timeout_seconds"`
		PassiveStatCapPercent float64 `json:"passive_stat_cap_percent"`
		QueueTTLSeconds       int     `json:"queue_ttl_seconds"`
		TeamSize              int     `json:"team_size"`
	} `json:"combat"`
}

// LoadedConfig contains the seeded catalog, the address to bind to and
// the combat tunables.
type LoadedConfig struct {
	Heroes        []catalog.Hero
	Equipment     []storage.EquipmentSeed
	ServerAddress string
	Rules         engine.Rules
	TurnTimeout   time.Duration
	QueueTTL      time.Duration
	TeamSize      int
}

// LoadConfig reads the configuration file at path. It requires a
// non-empty `hero_list` and validates entries and skill definitions.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(rc.HeroList) == 0 {
		return nil, fmt.Errorf("config file %s: hero_list is empty (provide a 'hero_list' array)", path)
	}

	nameSet := make(map[string]struct{}, len(rc.HeroList))
	skillSet := make(map[uint]struct{})
	heroes := make([]catalog.Hero, 0, len(rc.HeroList))
	for _, h := range rc.HeroList {
		if h.Name == "" {
			return nil, fmt.Errorf("config file %s: hero entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(h.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate hero name '%s'", path, h.Name)
		}
		nameSet[ln] = struct{}{}
		if h.Health <= 0 || h.Speed <= 0 {
			return nil, fmt.Errorf("config file %s: hero '%s' needs positive health and speed", path, h.Name)
		}
		for _, sk := range h.Skills {
			if err := validateSkill(h.Name, sk); err != nil {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
			if _, exists := skillSet[sk.ID]; exists {
				return nil, fmt.Errorf("config file %s: duplicate skill id %d ('%s')", path, sk.ID, sk.Name)
			}
			skillSet[sk.ID] = struct{}{}
		}
		heroes = append(heroes, catalog.Hero{
			Name:    h.Name,
			Boss:    h.Boss,
			Health:  h.Health,
			Attack:  h.Attack,
			Defense: h.Defense,
			Speed:   h.Speed,
			Skills:  h.Skills,
		})
	}

	equipment := make([]storage.EquipmentSeed, 0, len(rc.EquipmentList))
	for _, e := range rc.EquipmentList {
		if e.Hero == "" || e.Name == "" {
			return nil, fmt.Errorf("config file %s: equipment entry needs 'hero' and 'name'", path)
		}
		if _, ok := nameSet[strings.ToLower(strings.TrimSpace(e.Hero))]; !ok {
			return nil, fmt.Errorf("config file %s: equipment '%s' references unknown hero '%s'", path, e.Name, e.Hero)
		}
		equipment = append(equipment, storage.EquipmentSeed{
			HeroName: e.Hero,
			Item: catalog.Equipment{
				Name:         e.Name,
				AttackBonus:  e.AttackBonus,
				DefenseBonus: e.DefenseBonus,
				SpeedBonus:   e.SpeedBonus,
				HealthBonus:  e.HealthBonus,
			},
		})
	}

	out := &LoadedConfig{
		Heroes:        heroes,
		Equipment:     equipment,
		ServerAddress: ":8080",
		Rules:         engine.DefaultRules(),
		TurnTimeout:   90 * time.Second,
		QueueTTL:      5 * time.Minute,
		TeamSize:      4,
	}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Combat != nil {
		if rc.Combat.DefenseConstant > 0 {
			out.Rules.DefenseConstant = rc.Combat.DefenseConstant
		}
		out.Rules.PassiveStatCap = rc.Combat.PassiveStatCapPercent
		if rc.Combat.TurnTimeoutSeconds > 0 {
			out.TurnTimeout = time.Duration(rc.Combat.TurnTimeoutSeconds) * time.Second
		}
		if rc.Combat.QueueTTLSeconds > 0 {
			out.QueueTTL = time.Duration(rc.Combat.QueueTTLSeconds) * time.Second
		}
		if rc.Combat.TeamSize > 0 {
			out.TeamSize = rc.Combat.TeamSize
		}
	}
	return out, nil
}

func validateSkill(heroName string, sk battle.Skill) error {
	if sk.ID == 0 {
		return fmt.Errorf("hero '%s': skill '%s' needs a non-zero 'id'", heroName, sk.Name)
	}
	if sk.Name == "" {
		return fmt.Errorf("hero '%s': skill %d missing 'name'", heroName, sk.ID)
	}
	switch sk.Category {
	case battle.CategoryActive:
		if sk.Action != battle.ActionDamage && sk.Action != battle.ActionHeal {
			return fmt.Errorf("hero '%s': active skill '%s' needs action DAMAGE or HEAL", heroName, sk.Name)
		}
		if sk.TargetGroup == "" {
			return fmt.Errorf("hero '%s': active skill '%s' missing 'target_group'", heroName, sk.Name)
		}
		if sk.ScalingFactor <= 0 {
			return fmt.Errorf("hero '%s': active skill '%s' needs a positive 'scaling_factor'", heroName, sk.Name)
		}
		if sk.Cooldown < 0 {
			return fmt.Errorf("hero '%s': active skill '%s' has a negative cooldown", heroName, sk.Name)
		}
	case battle.CategoryPassive:
		if sk.Trigger == "" {
			return fmt.Errorf("hero '%s': passive skill '%s' missing 'trigger_condition'", heroName, sk.Name)
		}
		if sk.PassiveBonus == "" && sk.Action == "" {
			return fmt.Errorf("hero '%s': passive skill '%s' needs a 'passive_bonus' or an 'action'", heroName, sk.Name)
		}
	default:
		return fmt.Errorf("hero '%s': skill '%s' has unknown category '%s'", heroName, sk.Name, sk.Category)
	}
	return nil
}
