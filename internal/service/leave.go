package service

import (
	"fmt"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
)

// LeaveQueue removes the user's matchmaking entry. Leaving when not
// queued is a no-op; it reports whether an entry was removed.
func (b *Battles) LeaveQueue(userID string) bool {
	return b.queue.Leave(userID)
}

// Forfeit ends a running battle because the user gave up. In arena
// battles the opponent wins; in duels the boss does. The final state is
// recorded and the session removed.
func (b *Battles) Forfeit(battleID, userID string) (*Snapshot, error) {
	unlock := b.locks.Lock(battleID)
	defer unlock()

	s, err := b.store.Get(battleID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if s.Finished {
		return nil, ErrSessionNotFound
	}
	if userID != s.Player1ID && userID != s.Player2ID {
		return nil, ErrSessionNotFound
	}

	s.Finished = true
	s.ForfeitedBy = userID
	if s.PvP() {
		if userID == s.Player1ID {
			s.WinnerID = s.Player2ID
		} else {
			s.WinnerID = s.Player1ID
		}
		s.AddLog(fmt.Sprintf("Player %s forfeits. The opponent wins the battle!", forfeitLabel(s, userID)))
	} else {
		s.AddLog("You flee the battle. Defeat.")
	}

	logging.Info("battle forfeited", logging.Fields{constants.LogFieldBattleID: battleID, constants.LogFieldUserID: userID})
	if err := b.finish(s); err != nil {
		return nil, err
	}
	return NewSnapshot(s), nil
}

func forfeitLabel(s *battle.State, userID string) string {
	if userID == s.Player1ID {
		return "1"
	}
	return "2"
}
