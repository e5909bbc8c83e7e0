package battle

import "testing"

func TestSameSide(t *testing.T) {
	duel := &State{
		Player1ID: "u1",
		Participants: []Participant{
			{ID: 1, UserID: "u1", PlayerControlled: true},
			{ID: 2, UserID: "u1", PlayerControlled: true},
			{ID: 3},
		},
	}
	if !duel.SameSide(&duel.Participants[0], &duel.Participants[1]) {
		t.Fatal("two player heroes share a side in a duel")
	}
	if duel.SameSide(&duel.Participants[0], &duel.Participants[2]) {
		t.Fatal("hero and boss are opponents in a duel")
	}

	arena := &State{
		Player1ID: "u1",
		Player2ID: "u2",
		Participants: []Participant{
			{ID: 1, UserID: "u1", PlayerControlled: true},
			{ID: 2, UserID: "u2", PlayerControlled: true},
		},
	}
	if arena.SameSide(&arena.Participants[0], &arena.Participants[1]) {
		t.Fatal("different users are opponents in the arena")
	}
}

func TestCooldownBookkeeping(t *testing.T) {
	s := &State{}
	if s.OnCooldown(1, 10) {
		t.Fatal("unset cooldowns read as zero")
	}
	s.PutCooldown(1, 10, 2)
	s.PutCooldown(1, 11, 1)
	s.PutCooldown(2, 10, 3)

	s.ReduceCooldownsFor(1)
	if got := s.RemainingCooldown(1, 10); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if s.OnCooldown(1, 11) {
		t.Fatal("expected skill 11 ready after one reduction")
	}
	if got := s.RemainingCooldown(2, 10); got != 3 {
		t.Fatalf("other participants are untouched, got %d", got)
	}

	s.ReduceCooldownsFor(1)
	s.ReduceCooldownsFor(1)
	if got := s.RemainingCooldown(1, 10); got != 0 {
		t.Fatalf("cooldowns never go negative, got %d", got)
	}
}

func TestSkillByIDAndAlive(t *testing.T) {
	p := Participant{CurrentHP: 1, Skills: []Skill{{ID: 5, Name: "X"}}}
	if !p.Alive() {
		t.Fatal("1 HP is alive")
	}
	if p.SkillByID(5) == nil || p.SkillByID(6) != nil {
		t.Fatal("skill lookup broken")
	}
	p.CurrentHP = 0
	if p.Alive() {
		t.Fatal("0 HP is dead")
	}
}
