package engine

import (
	"fmt"
	"sort"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// SortBySpeed orders participants by speed descending for the initial
// turn order. Ties keep their input order.
func SortBySpeed(participants []battle.Participant) {
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Speed > participants[j].Speed
	})
}

// Advance moves the turn pointer to the next living participant, scanning
// cyclically from the current index. Wrapping past the end of the list
// starts a new round. The participant landed on gets its cooldowns
// reduced and its turn-start passives fired; those passives can carry a
// damage effect, so the end condition is re-checked after they fire. If
// no living participant is found after a full cycle the battle ends as
// a stalemate.
func (r Rules) Advance(s *battle.State) {
	n := len(s.Participants)
	if n == 0 {
		s.Finished = true
		return
	}
	current := s.CurrentTurnIndex
	for i := 1; i <= n; i++ {
		next := (current + i) % n
		p := &s.Participants[next]
		if !p.Alive() {
			continue
		}
		if next <= current {
			s.RoundCount++
			s.AddLog(fmt.Sprintf("Round %d begins.", s.RoundCount))
		}
		s.CurrentTurnIndex = next
		s.ReduceCooldownsFor(p.ID)
		r.TriggerPassives(s, p, battle.TriggerTurnStart)
		r.CheckEnd(s)
		return
	}
	s.Finished = true
}

// CheckEnd evaluates the end-of-battle condition and returns true when
// the battle just finished. For arena sessions a side is dead when its
// user has no living participant; for duels the split is the
// player-controlled flag. Both sides empty is a draw.
func (r Rules) CheckEnd(s *battle.State) bool {
	if s.Finished {
		return true
	}
	if s.PvP() {
		p1Alive := s.UserAlive(s.Player1ID)
		p2Alive := s.UserAlive(s.Player2ID)
		switch {
		case !p1Alive && !p2Alive:
			s.Finished = true
			s.AddLog("Both teams fell. The battle is a draw.")
		case !p1Alive:
			s.Finished = true
			s.WinnerID = s.Player2ID
			s.AddLog("Player 2 wins the battle!")
		case !p2Alive:
			s.Finished = true
			s.WinnerID = s.Player1ID
			s.AddLog("Player 1 wins the battle!")
		}
		return s.Finished
	}

	playersAlive := false
	bossAlive := false
	for i := range s.Participants {
		p := &s.Participants[i]
		if !p.Alive() {
			continue
		}
		if p.PlayerControlled {
			playersAlive = true
		} else {
			bossAlive = true
		}
	}
	switch {
	case !playersAlive && !bossAlive:
		s.Finished = true
		s.AddLog("Both sides fell. The battle is a draw.")
	case !playersAlive:
		s.Finished = true
		s.AddLog("All your heroes are dead. Defeat.")
	case !bossAlive:
		s.Finished = true
		s.WinnerID = s.Player1ID
		s.AddLog("The boss is defeated. Victory!")
	}
	return s.Finished
}

// ProcessUntilPlayerTurn resolves scripted turns automatically until a
// player-controlled participant is scheduled or the battle ends. The
// scripted actor uses its strongest off-cooldown active skill, falling
// back to a plain strike.
func (r Rules) ProcessUntilPlayerTurn(s *battle.State) {
	for !s.Finished {
		// Battle-start or turn-start passives may already have decided
		// the battle before any action resolves.
		if r.CheckEnd(s) {
			return
		}
		current := s.Current()
		if current == nil {
			s.Finished = true
			return
		}
		if current.PlayerControlled {
			return
		}

		skill := pickScriptedSkill(s, current)
		target := pickScriptedTarget(s, current, skill)
		if target == nil {
			if r.CheckEnd(s) {
				return
			}
			r.Advance(s)
			continue
		}

		r.ApplySkill(s, current, skill, target)
		if r.CheckEnd(s) {
			return
		}
		r.Advance(s)
	}
}

// AutoResolve plays the whole battle out with every participant acting
// on the scripted policy. The turn cap guards against heal loops that
// would never converge; hitting it ends the battle as a stalemate.
func (r Rules) AutoResolve(s *battle.State, maxTurns int) {
	for turns := 0; !s.Finished; turns++ {
		if turns >= maxTurns {
			s.Finished = true
			s.AddLog("The battle drags on with no end in sight. Stalemate.")
			return
		}
		current := s.Current()
		if current == nil {
			s.Finished = true
			return
		}

		skill := pickScriptedSkill(s, current)
		target := pickScriptedTarget(s, current, skill)
		if target != nil {
			r.ApplySkill(s, current, skill, target)
		}
		if r.CheckEnd(s) {
			return
		}
		r.Advance(s)
	}
}

// pickScriptedSkill selects the highest scaling-factor active skill that
// is off cooldown, breaking ties by the skill's kit position (lower
// wins). Falls back to the built-in strike when none qualifies.
func pickScriptedSkill(s *battle.State, actor *battle.Participant) *battle.Skill {
	var best *battle.Skill
	for i := range actor.Skills {
		sk := &actor.Skills[i]
		if !sk.IsActive() || s.OnCooldown(actor.ID, sk.ID) {
			continue
		}
		switch {
		case best == nil:
			best = sk
		case sk.ScalingFactor > best.ScalingFactor:
			best = sk
		case sk.ScalingFactor == best.ScalingFactor && sk.Position < best.Position:
			best = sk
		}
	}
	if best == nil {
		strike := battle.BasicStrike()
		return &strike
	}
	return best
}

// pickScriptedTarget picks the first living opponent for damage skills
// and the lowest-HP living ally for heals.
func pickScriptedTarget(s *battle.State, actor *battle.Participant, skill *battle.Skill) *battle.Participant {
	if skill.Action == battle.ActionHeal {
		var weakest *battle.Participant
		for i := range s.Participants {
			p := &s.Participants[i]
			if !p.Alive() || !s.SameSide(actor, p) {
				continue
			}
			if weakest == nil || p.CurrentHP < weakest.CurrentHP {
				weakest = p
			}
		}
		return weakest
	}
	for i := range s.Participants {
		p := &s.Participants[i]
		if p.Alive() && !s.SameSide(actor, p) {
			return p
		}
	}
	return nil
}
