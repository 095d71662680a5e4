package server

import (
	"testing"

	"battlesim/pkg/battle"
	"battlesim/pkg/data"
)

func newTestServer(t *testing.T) (*Server, battle.Handle, battle.Handle) {
	t.Helper()
	store := data.DefaultStore()
	field := battle.NewSingleBattleField()
	b := battle.NewBattle(field, store, 1)

	hardy, _ := store.Nature("hardy")
	bulba, err := store.Species("bulbasaur")
	if err != nil {
		t.Fatalf("species lookup: %v", err)
	}
	char, err := store.Species("charmander")
	if err != nil {
		t.Fatalf("species lookup: %v", err)
	}

	m1 := battle.NewMon("bulbasaur", 50, hardy, data.StatTable{}, data.StatTable{}, bulba)
	m1.CurrentMoves = []battle.MoveSlot{{MoveID: "tackle", PP: 35, MaxPP: 35}}
	m2 := battle.NewMon("charmander", 50, hardy, data.StatTable{}, data.StatTable{}, char)
	m2.CurrentMoves = []battle.MoveSlot{{MoveID: "tackle", PP: 35, MaxPP: 35}}

	h1 := battle.PlaceMon(field, 0, 0, m1)
	h2 := battle.PlaceMon(field, 1, 0, m2)

	s := NewServer(b, 2, nil, nil)
	return s, h1, h2
}

func TestChoiceKindFromString(t *testing.T) {
	cases := map[string]battle.ActionKind{
		"move":    battle.ActionMove,
		"switch":  battle.ActionSwitch,
		"item":    battle.ActionItem,
		"escape":  battle.ActionEscape,
		"forfeit": battle.ActionForfeit,
		"pass":    battle.ActionPass,
	}
	for in, want := range cases {
		got, err := choiceKindFromString(in)
		if err != nil {
			t.Errorf("choiceKindFromString(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("choiceKindFromString(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := choiceKindFromString("teleport"); err != ErrUnknownChoiceKind {
		t.Errorf("choiceKindFromString(unknown) error = %v, want ErrUnknownChoiceKind", err)
	}
}

func TestActiveHandleAndOpposing(t *testing.T) {
	s, h1, h2 := newTestServer(t)

	got, ok := s.activeHandle(0, 0)
	if !ok || got != h1 {
		t.Errorf("activeHandle(0,0) = %v,%v want %v,true", got, ok, h1)
	}

	if _, ok := s.activeHandle(0, 1); ok {
		t.Error("activeHandle for unoccupied player slot should not be found")
	}

	opp := s.firstOpposingActive(0)
	if opp != h2 {
		t.Errorf("firstOpposingActive(0) = %v, want %v", opp, h2)
	}
}

func TestMoveIDForSlot(t *testing.T) {
	s, h1, _ := newTestServer(t)
	if got := moveIDForSlot(s.battle, h1, 0); got != "tackle" {
		t.Errorf("moveIDForSlot(slot 0) = %q, want tackle", got)
	}
	if got := moveIDForSlot(s.battle, h1, 5); got != "" {
		t.Errorf("moveIDForSlot(out of range) = %q, want empty", got)
	}
}

func TestBindClaimsSeatAndRejectsConflict(t *testing.T) {
	s, _, _ := newTestServer(t)

	// HandleWebSocket registers every session in s.sessions before it binds.
	a := newSession("a")
	s.sessions[a.ID] = a
	if err := s.bind(a, JoinMessage{SideIdx: 0, PlayerIdx: 0}); err != nil {
		t.Fatalf("first bind: %v", err)
	}
	if !a.bound() {
		t.Fatal("session should be bound after successful bind")
	}

	b := newSession("b")
	s.sessions[b.ID] = b
	if err := s.bind(b, JoinMessage{SideIdx: 0, PlayerIdx: 0}); err != ErrSlotTaken {
		t.Errorf("bind to claimed seat = %v, want ErrSlotTaken", err)
	}

	if err := s.bind(a, JoinMessage{SideIdx: 1, PlayerIdx: 0}); err != ErrSessionAlreadyBound {
		t.Errorf("rebind of already-bound session = %v, want ErrSessionAlreadyBound", err)
	}
}

func TestSubmitChoiceRejectsUnboundSession(t *testing.T) {
	s, _, _ := newTestServer(t)
	unbound := newSession("u")
	err := s.submitChoice(unbound, ChoiceMessage{Kind: "move"}, 10)
	if err != ErrInvalidSession {
		t.Errorf("submitChoice on unbound session = %v, want ErrInvalidSession", err)
	}
}

func TestSubmitChoiceRunsTurnOnceEverySeatHasSubmitted(t *testing.T) {
	s, _, _ := newTestServer(t)

	a := newSession("a")
	if err := s.bind(a, JoinMessage{SideIdx: 0, PlayerIdx: 0}); err != nil {
		t.Fatalf("bind a: %v", err)
	}
	bSession := newSession("b")
	if err := s.bind(bSession, JoinMessage{SideIdx: 1, PlayerIdx: 0}); err != nil {
		t.Fatalf("bind b: %v", err)
	}

	if err := s.submitChoice(a, ChoiceMessage{Kind: "move", MoveIndex: 0}, 20); err != nil {
		t.Fatalf("submit a: %v", err)
	}
	if s.battle.Field.Turn != 0 {
		t.Fatalf("turn should not advance until every seat submits, got %d", s.battle.Field.Turn)
	}

	if err := s.submitChoice(bSession, ChoiceMessage{Kind: "move", MoveIndex: 0}, 20); err != nil {
		t.Fatalf("submit b: %v", err)
	}
	if s.battle.Field.Turn != 1 {
		t.Errorf("turn after both seats submit = %d, want 1", s.battle.Field.Turn)
	}

	if len(s.pending) != 0 {
		t.Errorf("pending choices should be cleared after a turn runs, got %d entries", len(s.pending))
	}
}

func TestSubmitChoiceUnknownKind(t *testing.T) {
	s, _, _ := newTestServer(t)
	a := newSession("a")
	if err := s.bind(a, JoinMessage{SideIdx: 0, PlayerIdx: 0}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := s.submitChoice(a, ChoiceMessage{Kind: "teleport"}, 10); err != ErrUnknownChoiceKind {
		t.Errorf("submitChoice(unknown kind) = %v, want ErrUnknownChoiceKind", err)
	}
}

func TestSubmitChoiceRejectsInvalidParams(t *testing.T) {
	s, _, _ := newTestServer(t)
	a := newSession("a")
	if err := s.bind(a, JoinMessage{SideIdx: 0, PlayerIdx: 0}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := s.submitChoice(a, ChoiceMessage{Kind: "move", MoveIndex: 99}, 10); err == nil {
		t.Error("submitChoice with out-of-range moveIndex should be rejected")
	}
}
