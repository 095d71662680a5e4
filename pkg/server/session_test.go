package server

import "testing"

func TestNewSessionUnbound(t *testing.T) {
	s := newSession("sess-1")
	if s.bound() {
		t.Fatal("new session should not be bound")
	}
	if s.SideIdx != -1 || s.PlayerIdx != -1 {
		t.Fatalf("expected unassigned seat, got side=%d player=%d", s.SideIdx, s.PlayerIdx)
	}
}

func TestSessionBound(t *testing.T) {
	s := newSession("sess-1")
	s.SideIdx = 0
	s.PlayerIdx = 0
	if !s.bound() {
		t.Fatal("session with assigned seat should be bound")
	}
}

func TestSessionRefCounting(t *testing.T) {
	s := newSession("sess-1")
	if s.isInUse() {
		t.Fatal("fresh session should not be in use")
	}
	s.addRef()
	if !s.isInUse() {
		t.Fatal("session should be in use after addRef")
	}
	s.addRef()
	s.release()
	if !s.isInUse() {
		t.Fatal("session should still be in use after one of two refs released")
	}
	s.release()
	if s.isInUse() {
		t.Fatal("session should not be in use after all refs released")
	}
}
