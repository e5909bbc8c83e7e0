package engine

import (
	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
)

// BuildParticipant creates a live combatant from a hero template plus
// its equipped-item bonuses. Each stat is base + sum(bonuses) and HP
// starts at its maximum. Pure; catalog lookups happen before this.
func BuildParticipant(hero *catalog.Hero, equipment []catalog.Equipment, userID string, playerControlled bool) battle.Participant {
	hp := hero.Health
	attack := hero.Attack
	defense := hero.Defense
	speed := hero.Speed
	for _, eq := range equipment {
		hp += eq.HealthBonus
		attack += eq.AttackBonus
		defense += eq.DefenseBonus
		speed += eq.SpeedBonus
	}

	skills := make([]battle.Skill, len(hero.Skills))
	copy(skills, hero.Skills)

	return battle.Participant{
		ID:               hero.ID,
		Name:             hero.Name,
		UserID:           userID,
		MaxHP:            hp,
		CurrentHP:        hp,
		Attack:           attack,
		Defense:          defense,
		Speed:            speed,
		BaseAttack:       attack,
		BaseDefense:      defense,
		BaseSpeed:        speed,
		PlayerControlled: playerControlled,
		Skills:           skills,
	}
}
