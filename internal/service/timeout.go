package service

import (
	"fmt"
	"time"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
	"github.com/Armvda11/Epic7-sub000/internal/matchmaking"
)

// maxConsecutiveSkips is the number of expired turns in a row that
// counts as abandoning the battle.
const maxConsecutiveSkips = 3

// TurnEvent reports one battle changed by the timeout sweeper; the
// transport layer broadcasts it to subscribers.
type TurnEvent struct {
	BattleID string
	Snapshot *Snapshot
	Finished bool
}

// SweepExpiredTurns skips every player turn whose deadline passed. A
// user who lets three turns in a row expire forfeits the battle. The
// returned events cover every battle the sweep changed.
func (b *Battles) SweepExpiredTurns(now time.Time) []TurnEvent {
	states, err := b.store.List()
	if err != nil {
		logging.Error("failed to list sessions for turn sweep", err, nil)
		return nil
	}

	var events []TurnEvent
	for _, stale := range states {
		if stale.Finished || stale.TurnDeadline.IsZero() || now.Before(stale.TurnDeadline) {
			continue
		}
		if event := b.sweepOne(stale.BattleID, now); event != nil {
			events = append(events, *event)
		}
	}
	return events
}

// sweepOne re-reads the battle under its lock and, if the deadline is
// still expired, skips the current turn.
func (b *Battles) sweepOne(battleID string, now time.Time) *TurnEvent {
	unlock := b.locks.Lock(battleID)
	defer unlock()

	s, err := b.store.Get(battleID)
	if err != nil {
		return nil
	}
	if s.Finished || s.TurnDeadline.IsZero() || now.Before(s.TurnDeadline) {
		return nil
	}
	current := s.Current()
	if current == nil || !current.PlayerControlled {
		return nil
	}

	userID := current.UserID
	if s.SkippedTurns == nil {
		s.SkippedTurns = make(map[string]int)
	}
	s.SkippedTurns[userID]++
	skips := s.SkippedTurns[userID]
	s.AddLog(fmt.Sprintf("%s hesitates too long and loses the turn.", current.Name))
	logging.Info("turn timed out", logging.Fields{
		constants.LogFieldBattleID: battleID, constants.LogFieldUserID: userID, "consecutive_skips": skips,
	})

	if skips >= maxConsecutiveSkips {
		s.Finished = true
		s.ForfeitedBy = userID
		if s.PvP() {
			if userID == s.Player1ID {
				s.WinnerID = s.Player2ID
			} else {
				s.WinnerID = s.Player1ID
			}
		}
		s.AddLog("The battle ends by abandonment.")
		if err := b.finish(s); err != nil {
			logging.Error("failed to finish abandoned battle", err, logging.Fields{constants.LogFieldBattleID: battleID})
		}
		return &TurnEvent{BattleID: battleID, Snapshot: NewSnapshot(s), Finished: true}
	}

	b.opts.Rules.Advance(s)
	finished, err := b.resolveUntilInput(s)
	if err != nil {
		logging.Error("failed to persist swept battle", err, logging.Fields{constants.LogFieldBattleID: battleID})
		return nil
	}
	return &TurnEvent{BattleID: battleID, Snapshot: NewSnapshot(s), Finished: finished}
}

// ExpireQueue drops matchmaking entries older than the configured TTL
// and returns them so their owners can be notified.
func (b *Battles) ExpireQueue(now time.Time) []matchmaking.Entry {
	expired := b.queue.ExpireOlderThan(now.Add(-b.opts.QueueTTL))
	for _, e := range expired {
		logging.Info("matchmaking entry expired", logging.Fields{constants.LogFieldUserID: e.UserID})
	}
	return expired
}
