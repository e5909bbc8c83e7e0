package service

import (
	"time"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// logTail bounds how many log lines a snapshot carries.
const logTail = 50

// SkillView is a skill as seen by a client, with the live cooldown.
type SkillView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Action      string `json:"action,omitempty"`
	TargetGroup string `json:"target_group,omitempty"`
	Cooldown    int    `json:"cooldown"`
	Remaining   int    `json:"remaining_cooldown"`
}

// ParticipantView is one combatant's visible state.
type ParticipantView struct {
	ID               uint        `json:"id"`
	Name             string      `json:"name"`
	UserID           string      `json:"user_id,omitempty"`
	MaxHP            int         `json:"max_hp"`
	CurrentHP        int         `json:"current_hp"`
	Attack           int         `json:"attack"`
	Defense          int         `json:"defense"`
	Speed            int         `json:"speed"`
	PlayerControlled bool        `json:"player_controlled"`
	Skills           []SkillView `json:"skills"`
}

// Snapshot is the client-facing view of a battle, built fresh from the
// stored state after every resolution step.
type Snapshot struct {
	BattleID             string            `json:"battle_id"`
	Participants         []ParticipantView `json:"participants"`
	CurrentParticipantID uint              `json:"current_participant_id,omitempty"`
	CurrentUserID        string            `json:"current_user_id,omitempty"`
	RoundCount           int               `json:"round_count"`
	Finished             bool              `json:"finished"`
	WinnerID             string            `json:"winner_id,omitempty"`
	TurnDeadline         *time.Time        `json:"turn_deadline,omitempty"`
	Logs                 []string          `json:"logs"`
}

// NewSnapshot projects the battle state into its client view. Only the
// most recent log lines are included.
func NewSnapshot(s *battle.State) *Snapshot {
	out := &Snapshot{
		BattleID:     s.BattleID,
		Participants: make([]ParticipantView, 0, len(s.Participants)),
		RoundCount:   s.RoundCount,
		Finished:     s.Finished,
		WinnerID:     s.WinnerID,
	}
	for i := range s.Participants {
		p := &s.Participants[i]
		pv := ParticipantView{
			ID:               p.ID,
			Name:             p.Name,
			UserID:           p.UserID,
			MaxHP:            p.MaxHP,
			CurrentHP:        p.CurrentHP,
			Attack:           p.Attack,
			Defense:          p.Defense,
			Speed:            p.Speed,
			PlayerControlled: p.PlayerControlled,
			Skills:           make([]SkillView, 0, len(p.Skills)),
		}
		for _, sk := range p.Skills {
			pv.Skills = append(pv.Skills, SkillView{
				ID:          sk.ID,
				Name:        sk.Name,
				Description: sk.Description,
				Category:    string(sk.Category),
				Action:      string(sk.Action),
				TargetGroup: string(sk.TargetGroup),
				Cooldown:    sk.Cooldown,
				Remaining:   s.RemainingCooldown(p.ID, sk.ID),
			})
		}
		out.Participants = append(out.Participants, pv)
	}

	if !s.Finished {
		if current := s.Current(); current != nil {
			out.CurrentParticipantID = current.ID
			out.CurrentUserID = current.UserID
		}
		if !s.TurnDeadline.IsZero() {
			deadline := s.TurnDeadline
			out.TurnDeadline = &deadline
		}
	}

	logs := s.Logs
	if len(logs) > logTail {
		logs = logs[len(logs)-logTail:]
	}
	out.Logs = append([]string(nil), logs...)
	return out
}
