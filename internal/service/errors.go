package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when no battle exists for the id,
	// including battles that already finished and were removed.
	ErrSessionNotFound = errors.New("battle session not found")
	// ErrNotYourTurn is returned when the acting user does not control
	// the participant whose turn it is.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrSkillNotOwned is returned when the skill id is not in the
	// current participant's kit.
	ErrSkillNotOwned = errors.New("skill not owned by the current participant")
	// ErrSkillNotActive is returned when a passive skill is cast manually.
	ErrSkillNotActive = errors.New("skill cannot be cast manually")
	// ErrInvalidTarget is returned when the chosen target violates the
	// skill's target group.
	ErrInvalidTarget = errors.New("invalid target for this skill")
	// ErrQueueConflict is returned when a user joins matchmaking while
	// already waiting or already in an active arena battle.
	ErrQueueConflict = errors.New("user is already queued or in battle")
	// ErrHeroNotFound is returned when a requested team member or boss
	// does not exist in the catalog.
	ErrHeroNotFound = errors.New("hero not found")
	// ErrBadTeam is returned when the submitted team is empty or larger
	// than the configured team size.
	ErrBadTeam = errors.New("invalid team composition")
)

// CooldownError is returned when the cast skill is still recharging. It
// carries how many of the caster's turns remain.
type CooldownError struct {
	SkillName string
	Remaining int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("skill %s is on cooldown for %d more turn(s)", e.SkillName, e.Remaining)
}
