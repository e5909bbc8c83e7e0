package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

const validConfig = `{
  "server": {"address": ":9090"},
  "combat": {"defense_constant": 250, "turn_timeout_seconds": 30, "passive_stat_cap_percent": 50, "team_size": 2},
  "hero_list": [
    {
      "name": "Kaelen", "health": 1000, "attack": 100, "defense": 50, "speed": 110,
      "skills": [
        {"id": 1, "name": "Cut", "category": "ACTIVE", "action": "DAMAGE", "target_group": "SINGLE_ENEMY", "scaling_stat": "ATTACK", "scaling_factor": 1.0, "cooldown": 0},
        {"id": 2, "name": "Fury", "category": "PASSIVE", "trigger_condition": "ON_TURN_START", "passive_bonus": "ATTACK_UP", "bonus_value": 5}
      ]
    },
    {"name": "Colossus", "boss": true, "health": 5000, "attack": 150, "defense": 100, "speed": 90}
  ],
  "equipment_list": [
    {"hero": "Kaelen", "name": "Blade", "attack_bonus": 20}
  ]
}`

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected address :9090, got %q", cfg.ServerAddress)
	}
	if cfg.Rules.DefenseConstant != 250 || cfg.Rules.PassiveStatCap != 50 {
		t.Fatalf("combat tunables not applied: %+v", cfg.Rules)
	}
	if cfg.TurnTimeout != 30*time.Second {
		t.Fatalf("expected 30s turn timeout, got %v", cfg.TurnTimeout)
	}
	if cfg.TeamSize != 2 {
		t.Fatalf("expected team size 2, got %d", cfg.TeamSize)
	}
	if len(cfg.Heroes) != 2 || !cfg.Heroes[1].Boss {
		t.Fatalf("hero list not loaded: %+v", cfg.Heroes)
	}
	if len(cfg.Equipment) != 1 || cfg.Equipment[0].HeroName != "Kaelen" {
		t.Fatalf("equipment list not loaded: %+v", cfg.Equipment)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"hero_list":[{"name":"Solo","health":100,"attack":10,"defense":10,"speed":10}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.Rules.DefenseConstant != 300 {
		t.Fatalf("expected default defense constant, got %v", cfg.Rules.DefenseConstant)
	}
	if cfg.TurnTimeout != 90*time.Second || cfg.QueueTTL != 5*time.Minute || cfg.TeamSize != 4 {
		t.Fatalf("unexpected defaults: %v %v %d", cfg.TurnTimeout, cfg.QueueTTL, cfg.TeamSize)
	}
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty hero list", `{"hero_list": []}`, "hero_list is empty"},
		{"duplicate hero", `{"hero_list":[{"name":"A","health":1,"speed":1},{"name":"a","health":1,"speed":1}]}`, "duplicate hero name"},
		{
			"duplicate skill id",
			`{"hero_list":[{"name":"A","health":1,"speed":1,"skills":[
				{"id":1,"name":"X","category":"ACTIVE","action":"DAMAGE","target_group":"SINGLE_ENEMY","scaling_factor":1},
				{"id":1,"name":"Y","category":"ACTIVE","action":"DAMAGE","target_group":"SINGLE_ENEMY","scaling_factor":1}]}]}`,
			"duplicate skill id",
		},
		{
			"active skill without action",
			`{"hero_list":[{"name":"A","health":1,"speed":1,"skills":[{"id":1,"name":"X","category":"ACTIVE","scaling_factor":1}]}]}`,
			"needs action",
		},
		{
			"passive without trigger",
			`{"hero_list":[{"name":"A","health":1,"speed":1,"skills":[{"id":1,"name":"X","category":"PASSIVE","passive_bonus":"ATTACK_UP"}]}]}`,
			"missing 'trigger_condition'",
		},
		{
			"equipment for unknown hero",
			`{"hero_list":[{"name":"A","health":1,"speed":1}],"equipment_list":[{"hero":"B","name":"Item"}]}`,
			"unknown hero",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
