package matchmaking

import (
	"errors"
	"sync"
	"time"
)

// ErrAlreadyQueued is returned when a user joins while still waiting.
var ErrAlreadyQueued = errors.New("user already in matchmaking queue")

// Entry is one waiting player with their chosen team.
type Entry struct {
	UserID     string
	HeroIDs    []uint
	EnqueuedAt time.Time
}

// Queue is the global FIFO waiting list. JoinOrMatch is atomic so two
// simultaneous joins never both observe an empty queue.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
}

func NewQueue() *Queue {
	return &Queue{}
}

// JoinOrMatch either dequeues the oldest waiting opponent or enqueues
// the caller. A nil opponent means the caller is now waiting.
func (q *Queue) JoinOrMatch(userID string, heroIDs []uint) (*Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.entries {
		if q.entries[i].UserID == userID {
			return nil, ErrAlreadyQueued
		}
	}

	if len(q.entries) > 0 {
		opponent := q.entries[0]
		q.entries = q.entries[1:]
		return &opponent, nil
	}

	q.entries = append(q.entries, Entry{UserID: userID, HeroIDs: heroIDs, EnqueuedAt: time.Now()})
	return nil, nil
}

// Requeue puts an entry back at the head of the line, keeping its
// original enqueue time. Used when a match falls apart after the entry
// was dequeued. Users already waiting are left alone.
func (q *Queue) Requeue(e Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].UserID == e.UserID {
			return
		}
	}
	if e.EnqueuedAt.IsZero() {
		e.EnqueuedAt = time.Now()
	}
	q.entries = append([]Entry{e}, q.entries...)
}

// Leave removes the user's waiting entry. It reports whether an entry
// was removed; leaving when never queued or already paired is a no-op.
func (q *Queue) Leave(userID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].UserID == userID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Waiting reports whether the user currently has a queue entry.
func (q *Queue) Waiting(userID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].UserID == userID {
			return true
		}
	}
	return false
}

// Len returns the number of waiting entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// ExpireOlderThan removes and returns entries enqueued before the cutoff.
func (q *Queue) ExpireOlderThan(cutoff time.Time) []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	var expired []Entry
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.EnqueuedAt.Before(cutoff) {
			expired = append(expired, e)
		} else {
			kept = append(kept, e)
		}
	}
	q.entries = kept
	return expired
}
