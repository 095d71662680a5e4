package battle

import "testing"

func TestNilHandleIsNil(t *testing.T) {
	if !NilHandle.IsNil() {
		t.Errorf("NilHandle.IsNil() = false, want true")
	}
	h := Handle{SideIdx: 0, PlayerIdx: 0, TeamIdx: 0}
	if h.IsNil() {
		t.Errorf("a concrete handle reported IsNil() = true")
	}
}

func TestNewFieldPopulatesEmptySides(t *testing.T) {
	f := NewField(2)
	if len(f.Sides) != 2 {
		t.Fatalf("len(Sides) = %d, want 2", len(f.Sides))
	}
	for i, s := range f.Sides {
		if s == nil {
			t.Fatalf("Sides[%d] is nil", i)
		}
		if s.Active != nil {
			t.Errorf("Sides[%d].Active = %v, want nil until SetActiveSlots is called", i, s.Active)
		}
	}
}

func TestActiveHandlesSkipsNilSlots(t *testing.T) {
	f := NewField(2)
	for _, s := range f.Sides {
		s.SetActiveSlots(2)
	}
	f.Sides[0].Active[0] = Handle{SideIdx: 0, PlayerIdx: 0, TeamIdx: 0}
	got := f.ActiveHandles()
	if len(got) != 1 {
		t.Errorf("ActiveHandles() = %+v, want exactly one populated slot", got)
	}
}

func TestOpposingSidesExcludesSelf(t *testing.T) {
	f := NewField(3)
	got := f.OpposingSides(1)
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("OpposingSides(1) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OpposingSides(1)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSideActiveSlotFindsOccupant(t *testing.T) {
	s := NewSide()
	s.SetActiveSlots(2)
	h := Handle{SideIdx: 0, PlayerIdx: 0, TeamIdx: 3}
	s.Active[1] = h
	if slot := s.ActiveSlot(h); slot != 1 {
		t.Errorf("ActiveSlot = %d, want 1", slot)
	}
	absent := Handle{SideIdx: 9, PlayerIdx: 9, TeamIdx: 9}
	if slot := s.ActiveSlot(absent); slot != -1 {
		t.Errorf("ActiveSlot(absent handle) = %d, want -1", slot)
	}
}
