package ws

import "encoding/json"

// ClientMessage is one inbound frame. Type selects the operation; the
// other fields apply depending on it.
type ClientMessage struct {
	Type string `json:"type"`
	// join: the team to queue with, or a battle id to re-attach to.
	HeroIDs  []uint `json:"hero_ids,omitempty"`
	BattleID string `json:"battle_id,omitempty"`
	// action: the cast to resolve.
	SkillID  uint `json:"skill_id,omitempty"`
	TargetID uint `json:"target_id,omitempty"`
}

// Envelope is one outbound frame. Channel tells the client how to
// interpret Data; battle-scoped channels carry the battle id.
type Envelope struct {
	Channel  string      `json:"channel"`
	BattleID string      `json:"battle_id,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// ErrorPayload is the data of an error-channel envelope.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MatchPayload is the data of a match-channel envelope.
type MatchPayload struct {
	Status   string `json:"status"`
	BattleID string `json:"battle_id,omitempty"`
}

// TurnPayload announces whose turn it is and when it expires.
type TurnPayload struct {
	ParticipantID uint   `json:"participant_id"`
	UserID        string `json:"user_id,omitempty"`
	Deadline      string `json:"deadline,omitempty"`
}

func encode(e Envelope) []byte {
	b, err := json.Marshal(e)
	if err != nil {
		return []byte(`{"channel":"error","data":{"code":"internal","message":"encoding failure"}}`)
	}
	return b
}
