package battle

import "time"

// Participant is one combatant's live stats during a battle. It is built
// once at battle start and mutated only by the engine; a participant at
// 0 HP stays in the list and is skipped by the scheduler.
type Participant struct {
	// ID identifies the underlying owned hero (or the boss template).
	ID   uint   `json:"id"`
	Name string `json:"name"`
	// UserID is the owning user; empty for scripted participants.
	UserID    string `json:"user_id"`
	MaxHP     int    `json:"max_hp"`
	CurrentHP int    `json:"current_hp"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Speed     int    `json:"speed"`
	// Base* mirror the stats the participant entered battle with; passive
	// buffs grow the live stats against these baselines.
	BaseAttack       int  `json:"base_attack"`
	BaseDefense      int  `json:"base_defense"`
	BaseSpeed        int  `json:"base_speed"`
	PlayerControlled bool `json:"player_controlled"`
	// Skills is the participant's full kit, frozen at battle start.
	Skills []Skill `json:"skills"`
}

// Alive reports whether the participant can still act or be targeted.
func (p *Participant) Alive() bool { return p.CurrentHP > 0 }

// SkillByID returns the participant's skill with the given id, or nil.
func (p *Participant) SkillByID(id uint) *Skill {
	for i := range p.Skills {
		if p.Skills[i].ID == id {
			return &p.Skills[i]
		}
	}
	return nil
}

// State is the full mutable state of one battle session. One canonical
// type serves both duel (player vs scripted boss) and arena (player vs
// player) sessions; the arena case is discriminated by both side owner
// ids being set.
type State struct {
	BattleID         string        `json:"battle_id"`
	Participants     []Participant `json:"participants"`
	CurrentTurnIndex int           `json:"current_turn_index"`
	RoundCount       int           `json:"round_count"`
	Finished         bool          `json:"finished"`
	Logs             []string      `json:"logs"`

	// Cooldowns maps participant id -> skill id -> remaining own turns.
	Cooldowns map[uint]map[uint]int `json:"cooldowns"`

	// Side owner ids; both set only for arena (PvP) sessions.
	Player1ID string `json:"player1_id,omitempty"`
	Player2ID string `json:"player2_id,omitempty"`
	// WinnerID is the winning user id once finished (empty on draw or
	// boss victory).
	WinnerID string `json:"winner_id,omitempty"`
	// ForfeitedBy is the user who gave up or timed out of the battle.
	ForfeitedBy string `json:"forfeited_by,omitempty"`

	// TurnDeadline is when the current turn expires; zero disables expiry.
	TurnDeadline time.Time `json:"turn_deadline,omitempty"`
	// SkippedTurns counts consecutive expired turns per user id.
	SkippedTurns map[string]int `json:"skipped_turns,omitempty"`
}

// PvP reports whether the session is a player-vs-player arena battle.
func (s *State) PvP() bool { return s.Player1ID != "" && s.Player2ID != "" }

// Current returns the participant whose turn it is.
func (s *State) Current() *Participant {
	if len(s.Participants) == 0 {
		return nil
	}
	return &s.Participants[s.CurrentTurnIndex]
}

// ParticipantByID looks a participant up by combatant id.
func (s *State) ParticipantByID(id uint) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// SameSide reports whether two participants fight for the same side. In
// arena battles sides are user ids; in duels the player-controlled flag
// splits heroes from the boss.
func (s *State) SameSide(a, b *Participant) bool {
	if s.PvP() {
		return a.UserID == b.UserID
	}
	return a.PlayerControlled == b.PlayerControlled
}

// SideAlive reports whether any participant on the given participant's
// side is still living.
func (s *State) SideAlive(of *Participant) bool {
	for i := range s.Participants {
		p := &s.Participants[i]
		if s.SameSide(of, p) && p.Alive() {
			return true
		}
	}
	return false
}

// UserAlive reports whether the given user still has a living participant.
func (s *State) UserAlive(userID string) bool {
	for i := range s.Participants {
		if s.Participants[i].UserID == userID && s.Participants[i].Alive() {
			return true
		}
	}
	return false
}

// AddLog appends one display line to the battle log.
func (s *State) AddLog(line string) { s.Logs = append(s.Logs, line) }

// RemainingCooldown returns the turns left before the participant may use
// the skill again.
func (s *State) RemainingCooldown(participantID, skillID uint) int {
	return s.Cooldowns[participantID][skillID]
}

// OnCooldown reports whether the skill is currently unusable.
func (s *State) OnCooldown(participantID, skillID uint) bool {
	return s.RemainingCooldown(participantID, skillID) > 0
}

// PutCooldown records the cooldown set by a successful skill use.
func (s *State) PutCooldown(participantID, skillID uint, turns int) {
	if s.Cooldowns == nil {
		s.Cooldowns = make(map[uint]map[uint]int)
	}
	if s.Cooldowns[participantID] == nil {
		s.Cooldowns[participantID] = make(map[uint]int)
	}
	s.Cooldowns[participantID][skillID] = turns
}

// ReduceCooldownsFor decrements every cooldown entry belonging to the
// participant by one turn, never below zero.
func (s *State) ReduceCooldownsFor(participantID uint) {
	for skillID, turns := range s.Cooldowns[participantID] {
		if turns > 0 {
			s.Cooldowns[participantID][skillID] = turns - 1
		}
	}
}
