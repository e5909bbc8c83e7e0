package battle

// SkillCategory separates manually activated skills from automatic ones.
type SkillCategory string

const (
	CategoryActive  SkillCategory = "ACTIVE"
	CategoryPassive SkillCategory = "PASSIVE"
)

// SkillAction is the effect kind of an active skill.
type SkillAction string

const (
	ActionDamage SkillAction = "DAMAGE"
	ActionHeal   SkillAction = "HEAL"
)

// TargetGroup restricts which participants a skill may be aimed at.
type TargetGroup string

const (
	TargetSelf        TargetGroup = "SELF"
	TargetSingleEnemy TargetGroup = "SINGLE_ENEMY"
	TargetSingleAlly  TargetGroup = "SINGLE_ALLY"
	TargetAllAllies   TargetGroup = "ALL_ALLIES"
)

// ScalingStat selects the actor stat a skill's magnitude scales on.
type ScalingStat string

const (
	ScaleAttack ScalingStat = "ATTACK"
	ScaleHealth ScalingStat = "HEALTH"
)

// PassiveBonus is the stat buff granted by a passive skill.
type PassiveBonus string

const (
	BonusAttackUp  PassiveBonus = "ATTACK_UP"
	BonusDefenseUp PassiveBonus = "DEFENSE_UP"
	BonusSpeedUp   PassiveBonus = "SPEED_UP"
)

// TriggerCondition is the moment a passive skill fires.
type TriggerCondition string

const (
	TriggerBattleStart TriggerCondition = "ON_BATTLE_START"
	TriggerTurnStart   TriggerCondition = "ON_TURN_START"
	TriggerAllyDeath   TriggerCondition = "ON_ALLY_DEATH"
)

// Skill is read-only reference data attached to a participant at battle
// start. Active skills carry an action, target group and cooldown; passive
// skills carry a trigger plus either a stat bonus or a reused active effect.
type Skill struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    SkillCategory `json:"category"`
	Action      SkillAction   `json:"action,omitempty"`
	TargetGroup TargetGroup   `json:"target_group,omitempty"`
	ScalingStat ScalingStat   `json:"scaling_stat,omitempty"`
	// ScalingFactor multiplies the scaling stat (1.3 = 130%).
	ScalingFactor float64 `json:"scaling_factor,omitempty"`
	// Cooldown is the number of own turns before the skill is usable again.
	Cooldown int `json:"cooldown"`
	// Passive-only fields.
	PassiveBonus PassiveBonus     `json:"passive_bonus,omitempty"`
	BonusValue   float64          `json:"bonus_value,omitempty"`
	Trigger      TriggerCondition `json:"trigger_condition,omitempty"`
	// Position orders skills for automatic selection (lower = preferred).
	Position int `json:"position"`
}

// IsActive reports whether the skill can be cast manually.
func (s Skill) IsActive() bool { return s.Category == CategoryActive }

// BasicStrike is the fallback attack used by scripted participants that
// have no active skill available.
func BasicStrike() Skill {
	return Skill{
		Name:          "Strike",
		Category:      CategoryActive,
		Action:        ActionDamage,
		TargetGroup:   TargetSingleEnemy,
		ScalingStat:   ScaleAttack,
		ScalingFactor: 1.0,
	}
}
