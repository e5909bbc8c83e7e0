package engine

import (
	"fmt"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// TriggerPassives fires every passive skill of the participant matching
// the given trigger condition. Stat bonuses add percent of the current
// stat value and therefore compound across repeated triggers; the
// optional PassiveStatCap bounds the growth. Heal and damage passives
// reuse the active-skill formulas.
func (r Rules) TriggerPassives(s *battle.State, p *battle.Participant, trigger battle.TriggerCondition) {
	if !p.Alive() {
		return
	}
	for i := range p.Skills {
		sk := &p.Skills[i]
		if sk.Category != battle.CategoryPassive || sk.Trigger != trigger {
			continue
		}
		r.applyPassive(s, p, sk)
	}
}

func (r Rules) applyPassive(s *battle.State, p *battle.Participant, sk *battle.Skill) {
	switch sk.PassiveBonus {
	case battle.BonusAttackUp:
		bonus := int(float64(p.Attack) * sk.BonusValue / 100.0)
		p.Attack = r.capStat(p.Attack+bonus, p.BaseAttack)
		s.AddLog(fmt.Sprintf("%s triggers %s and gains +%d ATK.", p.Name, sk.Name, bonus))
		return
	case battle.BonusDefenseUp:
		bonus := int(float64(p.Defense) * sk.BonusValue / 100.0)
		p.Defense = r.capStat(p.Defense+bonus, p.BaseDefense)
		s.AddLog(fmt.Sprintf("%s triggers %s and gains +%d DEF.", p.Name, sk.Name, bonus))
		return
	case battle.BonusSpeedUp:
		bonus := int(float64(p.Speed) * sk.BonusValue / 100.0)
		p.Speed = r.capStat(p.Speed+bonus, p.BaseSpeed)
		s.AddLog(fmt.Sprintf("%s triggers %s and gains +%d SPD.", p.Name, sk.Name, bonus))
		return
	}

	// Passives without a stat bonus reuse the active effect formulas.
	switch sk.Action {
	case battle.ActionHeal:
		r.applyHeal(s, p, sk, p)
	case battle.ActionDamage:
		if target := pickScriptedTarget(s, p, sk); target != nil {
			r.applyDamage(s, p, sk, target)
		}
	}
}

// capStat bounds a buffed stat at base*(1+cap/100) when a cap is set.
func (r Rules) capStat(value, base int) int {
	if r.PassiveStatCap <= 0 {
		return value
	}
	limit := int(float64(base) * (1 + r.PassiveStatCap/100.0))
	if value > limit {
		return limit
	}
	return value
}
