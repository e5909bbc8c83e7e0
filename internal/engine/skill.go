package engine

import (
	"fmt"
	"math"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// Result describes the outcome of one resolved skill.
type Result struct {
	Applied  bool
	Amount   int
	Kind     battle.SkillAction
	TargetID uint
}

// ApplySkill resolves an active skill cast by actor onto target and
// mutates the state accordingly. It assumes the caller already validated
// ownership and target legality; the engine itself only refuses the
// cases that would corrupt state: passive skills, dead actors and skills
// still on cooldown. Rejections leave the state untouched.
func (r Rules) ApplySkill(s *battle.State, actor *battle.Participant, skill *battle.Skill, target *battle.Participant) Result {
	if !skill.IsActive() || !actor.Alive() {
		return Result{}
	}
	if skill.ID != 0 && s.OnCooldown(actor.ID, skill.ID) {
		return Result{}
	}

	var amount int
	switch skill.Action {
	case battle.ActionDamage:
		amount = r.applyDamage(s, actor, skill, target)
	case battle.ActionHeal:
		amount = r.applyHeal(s, actor, skill, target)
	default:
		return Result{}
	}

	// Setting a zero cooldown is a harmless no-op; recording it
	// unconditionally keeps the bookkeeping uniform.
	if skill.ID != 0 {
		s.PutCooldown(actor.ID, skill.ID, skill.Cooldown)
	}
	return Result{Applied: true, Amount: amount, Kind: skill.Action, TargetID: target.ID}
}

// scalingValue resolves the actor stat a skill scales on. Health-scaling
// skills use the actor's current HP, not the maximum.
func scalingValue(actor *battle.Participant, skill *battle.Skill) float64 {
	if skill.ScalingStat == battle.ScaleHealth {
		return float64(actor.CurrentHP)
	}
	return float64(actor.Attack)
}

func (r Rules) applyDamage(s *battle.State, actor *battle.Participant, skill *battle.Skill, target *battle.Participant) int {
	raw := scalingValue(actor, skill) * skill.ScalingFactor
	defenseFactor := float64(target.Defense) / (float64(target.Defense) + r.DefenseConstant)
	damage := int(math.Round(raw * (1 - defenseFactor)))
	if damage < 1 {
		damage = 1
	}

	wasAlive := target.Alive()
	target.CurrentHP -= damage
	if target.CurrentHP < 0 {
		target.CurrentHP = 0
	}
	s.AddLog(fmt.Sprintf("%s uses %s on %s and deals %d damage.", actor.Name, skill.Name, target.Name, damage))

	if wasAlive && !target.Alive() {
		s.AddLog(fmt.Sprintf("%s is defeated!", target.Name))
		r.fireAllyDeathPassives(s, target)
	}
	return damage
}

func (r Rules) applyHeal(s *battle.State, actor *battle.Participant, skill *battle.Skill, target *battle.Participant) int {
	heal := int(math.Round(scalingValue(actor, skill) * skill.ScalingFactor))

	if skill.TargetGroup == battle.TargetAllAllies {
		for i := range s.Participants {
			p := &s.Participants[i]
			if !p.Alive() || !s.SameSide(actor, p) {
				continue
			}
			p.CurrentHP = capHP(p, p.CurrentHP+heal)
		}
		s.AddLog(fmt.Sprintf("%s uses %s and restores %d HP to all allies.", actor.Name, skill.Name, heal))
		return heal
	}

	target.CurrentHP = capHP(target, target.CurrentHP+heal)
	s.AddLog(fmt.Sprintf("%s uses %s and restores %d HP to %s.", actor.Name, skill.Name, heal, target.Name))
	return heal
}

func capHP(p *battle.Participant, hp int) int {
	if hp > p.MaxHP {
		return p.MaxHP
	}
	return hp
}

// fireAllyDeathPassives triggers ON_ALLY_DEATH passives on every living
// same-side participant of the one that just died.
func (r Rules) fireAllyDeathPassives(s *battle.State, dead *battle.Participant) {
	for i := range s.Participants {
		ally := &s.Participants[i]
		if ally == dead || !ally.Alive() || !s.SameSide(dead, ally) {
			continue
		}
		r.TriggerPassives(s, ally, battle.TriggerAllyDeath)
	}
}
