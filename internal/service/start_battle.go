package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/engine"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
	"github.com/Armvda11/Epic7-sub000/internal/matchmaking"
)

// ArenaJoin is the outcome of a matchmaking attempt: either the caller
// is now waiting, or a battle started and both user ids are notified.
type ArenaJoin struct {
	Waiting   bool
	BattleID  string
	Player1ID string
	Player2ID string
	Snapshot  *Snapshot
}

// StartDuel creates a player-versus-boss session for the user's team.
// Nothing is stored when the team or boss cannot be resolved.
func (b *Battles) StartDuel(userID string, heroIDs []uint, bossID uint) (*Snapshot, error) {
	side, err := b.buildSide(userID, heroIDs)
	if err != nil {
		return nil, err
	}
	boss, err := b.catalog.Boss(bossID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrHeroNotFound
		}
		return nil, err
	}
	side = append(side, engine.BuildParticipant(boss, nil, "", false))

	s := &battle.State{
		BattleID:     uuid.NewString(),
		Participants: side,
		Player1ID:    userID,
	}
	b.startState(s)
	if _, err := b.resolveUntilInput(s); err != nil {
		return nil, err
	}
	logging.Info("duel started", logging.Fields{constants.LogFieldBattleID: s.BattleID, constants.LogFieldUserID: userID, "boss_id": bossID})
	return NewSnapshot(s), nil
}

// JoinArena queues the user for PvP or, when an opponent is waiting,
// starts the battle immediately. Users already waiting or already in a
// running arena battle are rejected.
func (b *Battles) JoinArena(userID string, heroIDs []uint) (*ArenaJoin, error) {
	b.mu.Lock()
	_, inBattle := b.activeArena[userID]
	b.mu.Unlock()
	if inBattle {
		return nil, ErrQueueConflict
	}

	// Validate the team before enqueueing so a bad team never waits.
	if _, err := b.buildSide(userID, heroIDs); err != nil {
		return nil, err
	}

	opponent, err := b.queue.JoinOrMatch(userID, heroIDs)
	if err != nil {
		return nil, ErrQueueConflict
	}
	if opponent == nil {
		return &ArenaJoin{Waiting: true}, nil
	}

	// The opponent dequeued first, so they are player 1.
	side1, err := b.buildSide(opponent.UserID, opponent.HeroIDs)
	if err != nil {
		// The opponent's team vanished while they waited; requeue the
		// caller rather than losing both.
		logging.Error("failed to build waiting player's team", err, logging.Fields{constants.LogFieldUserID: opponent.UserID})
		b.queue.Requeue(matchmaking.Entry{UserID: userID, HeroIDs: heroIDs})
		return &ArenaJoin{Waiting: true}, nil
	}
	side2, err := b.buildSide(userID, heroIDs)
	if err != nil {
		// The caller's team vanished between validation and match; put
		// the dequeued opponent back at the head of the line with their
		// original wait time.
		logging.Error("failed to build joining player's team", err, logging.Fields{constants.LogFieldUserID: userID})
		b.queue.Requeue(*opponent)
		return nil, err
	}

	s := &battle.State{
		BattleID:     uuid.NewString(),
		Participants: append(side1, side2...),
		Player1ID:    opponent.UserID,
		Player2ID:    userID,
	}
	b.startState(s)

	b.mu.Lock()
	b.activeArena[s.Player1ID] = s.BattleID
	b.activeArena[s.Player2ID] = s.BattleID
	b.mu.Unlock()

	if _, err := b.resolveUntilInput(s); err != nil {
		return nil, err
	}
	logging.Info("arena battle started", logging.Fields{
		constants.LogFieldBattleID: s.BattleID, constants.LogFieldUserID: s.Player1ID, "opponent_id": s.Player2ID,
	})
	return &ArenaJoin{
		BattleID:  s.BattleID,
		Player1ID: s.Player1ID,
		Player2ID: s.Player2ID,
		Snapshot:  NewSnapshot(s),
	}, nil
}

// buildSide loads the user's heroes plus equipment and turns them into
// player-controlled participants.
func (b *Battles) buildSide(userID string, heroIDs []uint) ([]battle.Participant, error) {
	if len(heroIDs) == 0 || len(heroIDs) > b.opts.TeamSize {
		return nil, ErrBadTeam
	}
	bundle, err := b.catalog.HeroBundle(heroIDs)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrHeroNotFound
		}
		return nil, err
	}
	side := make([]battle.Participant, 0, len(bundle.Heroes))
	for i := range bundle.Heroes {
		hero := &bundle.Heroes[i]
		side = append(side, engine.BuildParticipant(hero, bundle.Equipment[hero.ID], userID, true))
	}
	return side, nil
}
