package service

import "github.com/Armvda11/Epic7-sub000/internal/logging"

// AutoResolveDuel plays the rest of a duel out automatically, with the
// player's heroes acting on the same policy as the boss. Arena battles
// cannot be auto-resolved.
func (b *Battles) AutoResolveDuel(battleID, userID string) (*Snapshot, error) {
	unlock := b.locks.Lock(battleID)
	defer unlock()

	s, err := b.store.Get(battleID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if s.Finished {
		return nil, ErrSessionNotFound
	}
	if s.PvP() || s.Player1ID != userID {
		return nil, ErrSessionNotFound
	}

	b.opts.Rules.AutoResolve(s, autoResolveTurnCap)
	logging.Info("duel auto-resolved", logging.Fields{
		"battle_id": battleID, "user_id": userID, "rounds": s.RoundCount,
	})
	if err := b.finish(s); err != nil {
		return nil, err
	}
	return NewSnapshot(s), nil
}
