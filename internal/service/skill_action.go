package service

import (
	"fmt"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// UseSkill resolves one player action: validates turn ownership, the
// skill and the target, applies the skill, then plays scripted turns
// until the next player input or the end of the battle. The whole
// read-mutate-write cycle runs under the battle's lock.
func (b *Battles) UseSkill(battleID, userID string, skillID, targetID uint) (*Snapshot, error) {
	unlock := b.locks.Lock(battleID)
	defer unlock()

	s, err := b.store.Get(battleID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if s.Finished {
		return nil, ErrSessionNotFound
	}

	current := s.Current()
	if current == nil || !current.PlayerControlled || current.UserID != userID {
		return nil, ErrNotYourTurn
	}

	skill := current.SkillByID(skillID)
	if skill == nil {
		return nil, ErrSkillNotOwned
	}
	if !skill.IsActive() {
		return nil, ErrSkillNotActive
	}
	if remaining := s.RemainingCooldown(current.ID, skillID); remaining > 0 {
		return nil, &CooldownError{SkillName: skill.Name, Remaining: remaining}
	}

	target, err := resolveTarget(s, current, skill, targetID)
	if err != nil {
		return nil, err
	}

	result := b.opts.Rules.ApplySkill(s, current, skill, target)
	if !result.Applied {
		// Validation above should make this unreachable.
		return nil, fmt.Errorf("skill %d was rejected by the engine", skillID)
	}
	delete(s.SkippedTurns, userID)

	if b.opts.Rules.CheckEnd(s) {
		if err := b.finish(s); err != nil {
			return nil, err
		}
		return NewSnapshot(s), nil
	}

	b.opts.Rules.Advance(s)
	if _, err := b.resolveUntilInput(s); err != nil {
		return nil, err
	}
	return NewSnapshot(s), nil
}

// resolveTarget checks the chosen target against the skill's target
// group. ALL_ALLIES and SELF skills ignore the submitted target id when
// it is zero.
func resolveTarget(s *battle.State, actor *battle.Participant, skill *battle.Skill, targetID uint) (*battle.Participant, error) {
	switch skill.TargetGroup {
	case battle.TargetSelf:
		if targetID != 0 && targetID != actor.ID {
			return nil, ErrInvalidTarget
		}
		return actor, nil
	case battle.TargetAllAllies:
		// The engine expands the target list; the actor anchors the side.
		if targetID != 0 {
			t := s.ParticipantByID(targetID)
			if t == nil || !s.SameSide(actor, t) {
				return nil, ErrInvalidTarget
			}
		}
		return actor, nil
	case battle.TargetSingleEnemy:
		t := s.ParticipantByID(targetID)
		if t == nil || !t.Alive() || s.SameSide(actor, t) {
			return nil, ErrInvalidTarget
		}
		return t, nil
	case battle.TargetSingleAlly:
		t := s.ParticipantByID(targetID)
		if t == nil || !t.Alive() || !s.SameSide(actor, t) {
			return nil, ErrInvalidTarget
		}
		return t, nil
	default:
		return nil, ErrInvalidTarget
	}
}
