package session

import "sync"

// Locks serializes mutating operations per battle id. Resolution reads
// and writes the full state non-atomically, so every read-mutate-write
// cycle for a battle must run under its lock.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*entry)}
}

// Lock acquires the mutex for the battle id and returns its unlock
// function. Entries are reference-counted and removed once unused so
// finished battles do not leak.
func (l *Locks) Lock(battleID string) func() {
	l.mu.Lock()
	e, ok := l.locks[battleID]
	if !ok {
		e = &entry{}
		l.locks[battleID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, battleID)
		}
		l.mu.Unlock()
	}
}
