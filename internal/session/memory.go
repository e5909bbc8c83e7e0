package session

import (
	"encoding/json"
	"sync"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// MemoryStore keeps sessions in-process. States are stored serialized so
// every Get hands out an independent copy, matching the semantics of an
// external store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

func (m *MemoryStore) Save(state *battle.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[state.BattleID] = payload
	return nil
}

func (m *MemoryStore) Get(battleID string) (*battle.State, error) {
	m.mu.RLock()
	payload, ok := m.sessions[battleID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var state battle.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *MemoryStore) Delete(battleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, battleID)
	return nil
}

func (m *MemoryStore) List() ([]*battle.State, error) {
	m.mu.RLock()
	payloads := make([][]byte, 0, len(m.sessions))
	for _, p := range m.sessions {
		payloads = append(payloads, p)
	}
	m.mu.RUnlock()

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
