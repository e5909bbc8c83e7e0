package engine

import (
	"testing"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

func twoFighterState(attackerDef, defenderDef int) *battle.State {
	return &battle.State{
		BattleID: "b1",
		Participants: []battle.Participant{
			{ID: 1, Name: "Hero", UserID: "u1", MaxHP: 1000, CurrentHP: 1000, Attack: 100, Defense: attackerDef, Speed: 100, PlayerControlled: true},
			{ID: 2, Name: "Boss", MaxHP: 1000, CurrentHP: 1000, Attack: 100, Defense: defenderDef, Speed: 90},
		},
		Player1ID: "u1",
	}
}

func damageSkill(id uint, factor float64, cooldown int) battle.Skill {
	return battle.Skill{
		ID:            id,
		Name:          "Test Strike",
		Category:      battle.CategoryActive,
		Action:        battle.ActionDamage,
		TargetGroup:   battle.TargetSingleEnemy,
		ScalingStat:   battle.ScaleAttack,
		ScalingFactor: factor,
		Cooldown:      cooldown,
	}
}

func TestApplySkill_DamageAgainstZeroDefense(t *testing.T) {
	s := twoFighterState(0, 0)
	sk := damageSkill(10, 1.0, 0)
	res := DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1])
	if !res.Applied {
		t.Fatal("expected skill to apply")
	}
	// 100 attack, factor 1.0, zero defense: the full 100 lands.
	if res.Amount != 100 {
		t.Fatalf("expected 100 damage, got %d", res.Amount)
	}
	if s.Participants[1].CurrentHP != 900 {
		t.Fatalf("expected target at 900 HP, got %d", s.Participants[1].CurrentHP)
	}
}

func TestApplySkill_DefenseMitigation(t *testing.T) {
	// Defense equal to the constant K halves the damage.
	s := twoFighterState(0, 300)
	sk := damageSkill(10, 1.0, 0)
	res := DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1])
	if res.Amount != 50 {
		t.Fatalf("expected 50 damage with def=K, got %d", res.Amount)
	}
}

func TestApplySkill_MinimumOneDamage(t *testing.T) {
	s := twoFighterState(0, 100000)
	s.Participants[0].Attack = 1
	sk := damageSkill(10, 0.1, 0)
	res := DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1])
	if res.Amount != 1 {
		t.Fatalf("expected floor of 1 damage, got %d", res.Amount)
	}
}

func TestApplySkill_DamageMonotonicity(t *testing.T) {
	r := DefaultRules()
	deal := func(attack, defense int) int {
		s := twoFighterState(0, defense)
		s.Participants[0].Attack = attack
		sk := damageSkill(10, 1.0, 0)
		return r.ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1]).Amount
	}
	if !(deal(50, 100) < deal(100, 100) && deal(100, 100) < deal(200, 100)) {
		t.Fatal("damage must grow with attack")
	}
	if !(deal(100, 0) > deal(100, 150) && deal(100, 150) > deal(100, 600)) {
		t.Fatal("damage must shrink with defense")
	}
}

func TestApplySkill_HPNeverNegative(t *testing.T) {
	s := twoFighterState(0, 0)
	s.Participants[1].CurrentHP = 5
	sk := damageSkill(10, 1.0, 0)
	DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1])
	if got := s.Participants[1].CurrentHP; got != 0 {
		t.Fatalf("expected HP clamped at 0, got %d", got)
	}
}

func TestApplySkill_HealthScaling(t *testing.T) {
	s := twoFighterState(0, 0)
	s.Participants[0].CurrentHP = 500
	sk := damageSkill(10, 0.2, 0)
	sk.ScalingStat = battle.ScaleHealth
	res := DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1])
	// Scales on current HP (500), not max (1000).
	if res.Amount != 100 {
		t.Fatalf("expected 100 damage from 500 current HP, got %d", res.Amount)
	}
}

func TestApplySkill_SetsCooldownAfterUse(t *testing.T) {
	s := twoFighterState(0, 0)
	sk := damageSkill(10, 1.0, 3)
	r := DefaultRules()
	if res := r.ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1]); !res.Applied {
		t.Fatal("first use should apply")
	}
	if got := s.RemainingCooldown(1, 10); got != 3 {
		t.Fatalf("expected cooldown 3 after use, got %d", got)
	}
	if res := r.ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1]); res.Applied {
		t.Fatal("second use should be rejected while on cooldown")
	}
}

func TestApplySkill_RejectsPassiveAndDeadActor(t *testing.T) {
	s := twoFighterState(0, 0)
	passive := battle.Skill{ID: 11, Name: "Aura", Category: battle.CategoryPassive}
	if res := DefaultRules().ApplySkill(s, &s.Participants[0], &passive, &s.Participants[1]); res.Applied {
		t.Fatal("passive skills must not be castable")
	}
	sk := damageSkill(10, 1.0, 0)
	s.Participants[0].CurrentHP = 0
	if res := DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1]); res.Applied {
		t.Fatal("dead actors must not act")
	}
}

func TestApplySkill_HealCapsAtMaxHP(t *testing.T) {
	s := twoFighterState(0, 0)
	s.Participants[0].CurrentHP = 950
	heal := battle.Skill{
		ID:            12,
		Name:          "Mend",
		Category:      battle.CategoryActive,
		Action:        battle.ActionHeal,
		TargetGroup:   battle.TargetSelf,
		ScalingStat:   battle.ScaleAttack,
		ScalingFactor: 2.0,
	}
	res := DefaultRules().ApplySkill(s, &s.Participants[0], &heal, &s.Participants[0])
	if !res.Applied {
		t.Fatal("expected heal to apply")
	}
	if got := s.Participants[0].CurrentHP; got != 1000 {
		t.Fatalf("expected heal capped at max HP, got %d", got)
	}
}

func TestApplySkill_GroupHealSkipsDeadAndEnemies(t *testing.T) {
	s := &battle.State{
		BattleID: "b2",
		Participants: []battle.Participant{
			{ID: 1, Name: "Healer", UserID: "u1", MaxHP: 1000, CurrentHP: 500, Attack: 100, PlayerControlled: true},
			{ID: 2, Name: "Ally", UserID: "u1", MaxHP: 1000, CurrentHP: 500, PlayerControlled: true},
			{ID: 3, Name: "Fallen", UserID: "u1", MaxHP: 1000, CurrentHP: 0, PlayerControlled: true},
			{ID: 4, Name: "Boss", MaxHP: 1000, CurrentHP: 500},
		},
		Player1ID: "u1",
	}
	heal := battle.Skill{
		ID:            13,
		Name:          "Circle",
		Category:      battle.CategoryActive,
		Action:        battle.ActionHeal,
		TargetGroup:   battle.TargetAllAllies,
		ScalingStat:   battle.ScaleAttack,
		ScalingFactor: 1.0,
	}
	DefaultRules().ApplySkill(s, &s.Participants[0], &heal, &s.Participants[0])
	if s.Participants[0].CurrentHP != 600 || s.Participants[1].CurrentHP != 600 {
		t.Fatalf("expected both living allies healed, got %d and %d", s.Participants[0].CurrentHP, s.Participants[1].CurrentHP)
	}
	if s.Participants[2].CurrentHP != 0 {
		t.Fatal("dead allies must not be healed")
	}
	if s.Participants[3].CurrentHP != 500 {
		t.Fatal("enemies must not be healed")
	}
}

func TestApplySkill_KillFiresAllyDeathPassive(t *testing.T) {
	s := &battle.State{
		BattleID: "b3",
		Participants: []battle.Participant{
			{ID: 1, Name: "Hero", UserID: "u1", MaxHP: 1000, CurrentHP: 1000, Attack: 500, PlayerControlled: true},
			{ID: 2, Name: "Minion", MaxHP: 100, CurrentHP: 100},
			{ID: 3, Name: "Avenger", MaxHP: 1000, CurrentHP: 1000, Speed: 100, BaseSpeed: 100, Skills: []battle.Skill{{
				ID:           20,
				Name:         "Rage",
				Category:     battle.CategoryPassive,
				Trigger:      battle.TriggerAllyDeath,
				PassiveBonus: battle.BonusSpeedUp,
				BonusValue:   10,
			}}},
		},
		Player1ID: "u1",
	}
	sk := damageSkill(10, 1.0, 0)
	DefaultRules().ApplySkill(s, &s.Participants[0], &sk, &s.Participants[1])
	if s.Participants[1].Alive() {
		t.Fatal("expected minion to die")
	}
	if got := s.Participants[2].Speed; got != 110 {
		t.Fatalf("expected ally-death passive to raise speed to 110, got %d", got)
	}
}
