package engine

import (
	"testing"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

func attackUpPassive(trigger battle.TriggerCondition, percent float64) battle.Skill {
	return battle.Skill{
		ID:           40,
		Name:         "Fury",
		Category:     battle.CategoryPassive,
		Trigger:      trigger,
		PassiveBonus: battle.BonusAttackUp,
		BonusValue:   percent,
	}
}

func TestTriggerPassives_CompoundsAcrossTurns(t *testing.T) {
	s := &battle.State{
		Participants: []battle.Participant{{
			ID: 1, Name: "Hero", UserID: "u1", CurrentHP: 100, MaxHP: 100,
			Attack: 100, BaseAttack: 100, PlayerControlled: true,
			Skills: []battle.Skill{attackUpPassive(battle.TriggerTurnStart, 10)},
		}},
		Player1ID: "u1",
	}
	r := DefaultRules()
	p := &s.Participants[0]
	r.TriggerPassives(s, p, battle.TriggerTurnStart)
	if p.Attack != 110 {
		t.Fatalf("expected 110 attack after one trigger, got %d", p.Attack)
	}
	r.TriggerPassives(s, p, battle.TriggerTurnStart)
	// Percent of the current value, so the buff compounds.
	if p.Attack != 121 {
		t.Fatalf("expected 121 attack after two triggers, got %d", p.Attack)
	}
}

func TestTriggerPassives_CapBoundsGrowth(t *testing.T) {
	s := &battle.State{
		Participants: []battle.Participant{{
			ID: 1, Name: "Hero", UserID: "u1", CurrentHP: 100, MaxHP: 100,
			Attack: 100, BaseAttack: 100, PlayerControlled: true,
			Skills: []battle.Skill{attackUpPassive(battle.TriggerTurnStart, 50)},
		}},
		Player1ID: "u1",
	}
	r := Rules{DefenseConstant: 300, PassiveStatCap: 100}
	p := &s.Participants[0]
	for i := 0; i < 5; i++ {
		r.TriggerPassives(s, p, battle.TriggerTurnStart)
	}
	if p.Attack != 200 {
		t.Fatalf("expected attack capped at 200, got %d", p.Attack)
	}
}

func TestTriggerPassives_WrongTriggerAndDeadAreIgnored(t *testing.T) {
	s := &battle.State{
		Participants: []battle.Participant{{
			ID: 1, Name: "Hero", UserID: "u1", CurrentHP: 100, MaxHP: 100,
			Attack: 100, BaseAttack: 100, PlayerControlled: true,
			Skills: []battle.Skill{attackUpPassive(battle.TriggerBattleStart, 10)},
		}},
		Player1ID: "u1",
	}
	r := DefaultRules()
	p := &s.Participants[0]
	r.TriggerPassives(s, p, battle.TriggerTurnStart)
	if p.Attack != 100 {
		t.Fatalf("mismatched trigger must not fire, got %d", p.Attack)
	}
	p.CurrentHP = 0
	r.TriggerPassives(s, p, battle.TriggerBattleStart)
	if p.Attack != 100 {
		t.Fatalf("dead participants must not trigger passives, got %d", p.Attack)
	}
}

func TestTriggerPassives_HealPassiveUsesHealFormula(t *testing.T) {
	s := &battle.State{
		Participants: []battle.Participant{{
			ID: 1, Name: "Hero", UserID: "u1", CurrentHP: 50, MaxHP: 1000,
			Attack: 100, BaseAttack: 100, PlayerControlled: true,
			Skills: []battle.Skill{{
				ID:            41,
				Name:          "Regrowth",
				Category:      battle.CategoryPassive,
				Trigger:       battle.TriggerTurnStart,
				Action:        battle.ActionHeal,
				TargetGroup:   battle.TargetSelf,
				ScalingStat:   battle.ScaleAttack,
				ScalingFactor: 0.5,
			}},
		}},
		Player1ID: "u1",
	}
	DefaultRules().TriggerPassives(s, &s.Participants[0], battle.TriggerTurnStart)
	if got := s.Participants[0].CurrentHP; got != 100 {
		t.Fatalf("expected 50 HP healed, got %d", got)
	}
}
