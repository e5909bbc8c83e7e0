package matchmaking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinOrMatch_FIFO(t *testing.T) {
	q := NewQueue()

	opp, err := q.JoinOrMatch("u1", []uint{1, 2})
	require.NoError(t, err)
	assert.Nil(t, opp, "first joiner should wait")
	assert.True(t, q.Waiting("u1"))

	opp, err = q.JoinOrMatch("u2", []uint{3})
	require.NoError(t, err)
	require.NotNil(t, opp, "second joiner should be matched")
	assert.Equal(t, "u1", opp.UserID)
	assert.Equal(t, []uint{1, 2}, opp.HeroIDs)
	assert.False(t, q.Waiting("u1"), "matched entry must leave the queue")
	assert.Equal(t, 0, q.Len())
}

func TestJoinOrMatch_RejectsDoubleJoin(t *testing.T) {
	q := NewQueue()
	_, err := q.JoinOrMatch("u1", []uint{1})
	require.NoError(t, err)
	_, err = q.JoinOrMatch("u1", []uint{1})
	assert.ErrorIs(t, err, ErrAlreadyQueued)
}

func TestLeave(t *testing.T) {
	q := NewQueue()
	_, _ = q.JoinOrMatch("u1", []uint{1})
	assert.True(t, q.Leave("u1"))
	assert.False(t, q.Leave("u1"), "second leave is a no-op")
	assert.False(t, q.Waiting("u1"))
}

func TestRequeue_RestoresEntryAtHead(t *testing.T) {
	q := NewQueue()
	_, _ = q.JoinOrMatch("u1", []uint{1})
	waited := time.Now().Add(-2 * time.Minute)
	q.entries[0].EnqueuedAt = waited

	opp, err := q.JoinOrMatch("u2", []uint{2})
	require.NoError(t, err)
	require.NotNil(t, opp)

	_, _ = q.JoinOrMatch("u3", []uint{3})
	q.Requeue(*opp)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "u1", q.entries[0].UserID, "requeued entry goes to the head")
	assert.Equal(t, waited, q.entries[0].EnqueuedAt, "original wait time is kept")

	// Requeueing someone already waiting changes nothing.
	q.Requeue(Entry{UserID: "u3", HeroIDs: []uint{3}})
	assert.Equal(t, 2, q.Len())

	// Entries without a timestamp get one so TTL expiry still applies.
	q.Requeue(Entry{UserID: "u4", HeroIDs: []uint{4}})
	assert.False(t, q.entries[0].EnqueuedAt.IsZero())
}

func TestExpireOlderThan(t *testing.T) {
	q := NewQueue()
	_, _ = q.JoinOrMatch("old", []uint{1})
	q.entries[0].EnqueuedAt = time.Now().Add(-10 * time.Minute)

	expired := q.ExpireOlderThan(time.Now().Add(-5 * time.Minute))
	require.Len(t, expired, 1)
	assert.Equal(t, "old", expired[0].UserID)
	assert.False(t, q.Waiting("old"))
	assert.Equal(t, 0, q.Len())

	// A fresh entry survives the sweep.
	_, _ = q.JoinOrMatch("fresh", []uint{2})
	assert.Empty(t, q.ExpireOlderThan(time.Now().Add(-5*time.Minute)))
	assert.True(t, q.Waiting("fresh"))
}
