package server

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Session is one connected client's binding to a side/player seat in the
// battle. SideIdx/PlayerIdx are -1 until the client's first "join"
// message claims a seat; until then the session may only observe.
type Session struct {
	ID         string
	SideIdx    int
	PlayerIdx  int
	CreatedAt  time.Time
	LastActive time.Time
	Conn       *websocket.Conn

	inUse int32
}

// newSession creates an unbound session, identified by id, with no
// claimed side/player seat yet.
func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		SideIdx:    -1,
		PlayerIdx:  -1,
		CreatedAt:  now,
		LastActive: now,
	}
}

// bound reports whether this session has claimed a side/player seat.
func (s *Session) bound() bool {
	return s.SideIdx >= 0 && s.PlayerIdx >= 0
}

// addRef atomically marks the session as in use. isInUse is the only
// reader of the marker; removeSession does not check it.
func (s *Session) addRef() {
	atomic.AddInt32(&s.inUse, 1)
}

// release atomically clears one use marker set by addRef.
func (s *Session) release() {
	atomic.AddInt32(&s.inUse, -1)
}

// isInUse reports whether any caller currently holds a reference.
func (s *Session) isInUse() bool {
	return atomic.LoadInt32(&s.inUse) > 0
}
