package service

import (
	"sync"
	"time"

	"github.com/Armvda11/Epic7-sub000/internal/battle"
	"github.com/Armvda11/Epic7-sub000/internal/catalog"
	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/engine"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
	"github.com/Armvda11/Epic7-sub000/internal/matchmaking"
	"github.com/Armvda11/Epic7-sub000/internal/session"
)

// autoResolveTurnCap bounds auto-resolved battles so mutual-heal
// compositions cannot spin forever.
const autoResolveTurnCap = 500

// Recorder receives finished battles for persistence. Satisfied by
// storage.Repository.
type Recorder interface {
	RecordBattleEnd(state *battle.State) error
}

// Options are the tunables the battle service takes from config.
type Options struct {
	Rules       engine.Rules
	TurnTimeout time.Duration
	QueueTTL    time.Duration
	TeamSize    int
}

// Battles coordinates battle sessions: it builds participants from the
// catalog, runs the engine under per-battle locks, and persists every
// state transition through the session store.
type Battles struct {
	store    session.Store
	locks    *session.Locks
	catalog  *catalog.Service
	recorder Recorder
	queue    *matchmaking.Queue
	opts     Options

	// activeArena maps user id -> battle id for running arena battles,
	// so a user cannot queue twice into PvP.
	mu          sync.Mutex
	activeArena map[string]string
}

func NewBattles(store session.Store, catalogSvc *catalog.Service, recorder Recorder, opts Options) *Battles {
	if opts.TeamSize <= 0 {
		opts.TeamSize = 4
	}
	if opts.TurnTimeout <= 0 {
		opts.TurnTimeout = 90 * time.Second
	}
	if opts.QueueTTL <= 0 {
		opts.QueueTTL = 5 * time.Minute
	}
	return &Battles{
		store:       store,
		locks:       session.NewLocks(),
		catalog:     catalogSvc,
		recorder:    recorder,
		queue:       matchmaking.NewQueue(),
		opts:        opts,
		activeArena: make(map[string]string),
	}
}

// assignCombatantIDs renumbers the participants 1..n. Hero templates are
// shared, so two arena players fielding the same hero would otherwise
// collide on id.
func assignCombatantIDs(participants []battle.Participant) {
	for i := range participants {
		participants[i].ID = uint(i + 1)
	}
}

// startState finalizes a freshly assembled participant list into a
// running battle: speed order, round one, battle-start passives, and
// the first turn's turn-start passives.
func (b *Battles) startState(s *battle.State) {
	engine.SortBySpeed(s.Participants)
	assignCombatantIDs(s.Participants)
	s.Cooldowns = make(map[uint]map[uint]int)
	s.SkippedTurns = make(map[string]int)
	s.RoundCount = 1
	s.AddLog("Round 1 begins.")
	for i := range s.Participants {
		b.opts.Rules.TriggerPassives(s, &s.Participants[i], battle.TriggerBattleStart)
	}
	s.CurrentTurnIndex = 0
	b.opts.Rules.TriggerPassives(s, s.Current(), battle.TriggerTurnStart)
}

// resolveUntilInput lets the engine play scripted turns, then either
// arms the next turn deadline or finishes the battle. Returns true when
// the battle ended and was recorded.
func (b *Battles) resolveUntilInput(s *battle.State) (bool, error) {
	b.opts.Rules.ProcessUntilPlayerTurn(s)
	if s.Finished {
		return true, b.finish(s)
	}
	s.TurnDeadline = time.Now().Add(b.opts.TurnTimeout)
	return false, b.store.Save(s)
}

// finish records the battle outcome and removes the session.
func (b *Battles) finish(s *battle.State) error {
	if err := b.recorder.RecordBattleEnd(s); err != nil {
		logging.Error("failed to record battle end", err, logging.Fields{constants.LogFieldBattleID: s.BattleID})
	}
	b.mu.Lock()
	for _, userID := range []string{s.Player1ID, s.Player2ID} {
		if userID != "" && b.activeArena[userID] == s.BattleID {
			delete(b.activeArena, userID)
		}
	}
	b.mu.Unlock()
	return b.store.Delete(s.BattleID)
}

// Snapshot returns the current client view of a battle.
func (b *Battles) Snapshot(battleID string) (*Snapshot, error) {
	s, err := b.store.Get(battleID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return NewSnapshot(s), nil
}

func translateStoreErr(err error) error {
	if err == session.ErrNotFound {
		return ErrSessionNotFound
	}
	return err
}
