package session

import (
	"encoding/json"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// Rows is the persistence contract for the database-backed store; the
// storage repository implements it with a battle_sessions table.
type Rows interface {
	UpsertSession(battleID string, payload []byte) error
	// GetSession returns the stored payload or storage's not-found
	// error translated to ErrNotFound by the caller's repository.
	GetSession(battleID string) ([]byte, error)
	DeleteSession(battleID string) error
	ListSessions() ([][]byte, error)
}

// DBStore persists sessions through the repository so battle state
// survives restarts and request handling stays stateless across
// cooperating processes sharing the database.
type DBStore struct {
	rows Rows
}

func NewDBStore(rows Rows) *DBStore {
	return &DBStore{rows: rows}
}

func (d *DBStore) Save(state *battle.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return d.rows.UpsertSession(state.BattleID, payload)
}

func (d *DBStore) Get(battleID string) (*battle.State, error) {
	payload, err := d.rows.GetSession(battleID)
	if err != nil {
		return nil, err
	}
	var state battle.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (d *DBStore) Delete(battleID string) error {
	return d.rows.DeleteSession(battleID)
}

func (d *DBStore) List() ([]*battle.State, error) {
	payloads, err := d.rows.ListSessions()
	if err != nil {
		return nil, err
	}
	states := make([]*battle.State, 0, len(payloads))
	for _, p := range payloads {
		var state battle.State
		if err := json.Unmarshal(p, &state); err != nil {
			return nil, err
		}
		states = append(states, &state)
	}
	return states, nil
}
