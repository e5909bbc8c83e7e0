package session

import (
	"errors"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
)

// ErrNotFound is returned when no session exists for a battle id.
var ErrNotFound = errors.New("battle session not found")

// Store maps battle id -> battle state. Implementations must guarantee
// that a Get observes the most recent Save for the same battle id made
// by the same or a cooperating process. Serialization of concurrent
// read-mutate-write cycles is the caller's job (see Locks).
type Store interface {
	Save(state *battle.State) error
	// Get returns an independent copy of the stored state, or ErrNotFound.
	Get(battleID string) (*battle.State, error)
	Delete(battleID string) error
	// List returns copies of every stored session; used by the turn
	// timeout sweeper.
	List() ([]*battle.State, error)
}
