package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"battlesim/pkg/battle"
	"battlesim/pkg/integration"
	"battlesim/pkg/validation"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// maxChoicePayloadBytes bounds a single submitted choice message.
const maxChoicePayloadBytes = 4096

// ChoiceMessage is the wire shape of one per-turn choice submitted over
// the websocket (§6): "move i [target t]", "switch k", "item i [target
// t]", "escape", "forfeit", "pass". Exactly the fields relevant to Kind
// are meaningful, mirroring battle.Choice.
type ChoiceMessage struct {
	Kind       string `json:"kind"`
	MoveIndex  int    `json:"moveIndex,omitempty"`
	TargetSlot int    `json:"targetSlot,omitempty"`
	SwitchTo   int    `json:"switchTo,omitempty"`
	ItemID     string `json:"itemId,omitempty"`
}

// JoinMessage claims a side/player seat for the connection.
type JoinMessage struct {
	SideIdx   int `json:"sideIdx"`
	PlayerIdx int `json:"playerIdx"`
}

// LogEntryMessage is the JSON rendering of one battle.Entry broadcast to
// every connected session once a turn finishes resolving.
type LogEntryMessage struct {
	Kind   string            `json:"kind"`
	Turn   int               `json:"turn"`
	Fields map[string]string `json:"fields"`
}

func entryToMessage(e battle.Entry) LogEntryMessage {
	fields := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		fields[f.Name] = f.Value
	}
	return LogEntryMessage{Kind: string(e.Kind), Turn: e.Turn, Fields: fields}
}

// Server is the choice-transport boundary in front of one live battle
// (§6): it owns the connected sessions, accumulates this turn's choices
// until every bound side/player has submitted one, then drives the
// battle forward exactly one turn and broadcasts the resulting log
// entries to every connection.
type Server struct {
	mu       sync.Mutex
	battle   *battle.Battle
	sessions map[string]*Session
	pending  map[string]battle.Choice // sessionID -> this turn's choice
	required int                      // number of distinct side/player seats that must submit

	metrics     *Metrics
	rateLimiter *RateLimiter
	validator   *validation.InputValidator
}

// NewServer wires a transport boundary around an already-constructed
// battle. required is the number of side/player seats expected to submit
// a choice before a turn is driven forward (callers typically pass the
// count of non-nil active handles across the field's sides).
func NewServer(b *battle.Battle, required int, metrics *Metrics, rateLimiter *RateLimiter) *Server {
	return &Server{
		battle:      b,
		sessions:    make(map[string]*Session),
		pending:     make(map[string]battle.Choice),
		required:    required,
		metrics:     metrics,
		rateLimiter: rateLimiter,
		validator:   validation.NewInputValidator(maxChoicePayloadBytes),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection, assigns it a session ID, and
// runs the read loop until the client disconnects.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := logrus.WithField("function", "HandleWebSocket")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	session := newSession(uuid.New().String())
	session.Conn = conn

	s.mu.Lock()
	s.sessions[session.ID] = session
	sessionCount := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordWebSocketConnection("connected")
		s.metrics.UpdateActiveSessions(sessionCount)
	}
	defer s.removeSession(session.ID)

	if err := conn.WriteJSON(map[string]string{"sessionId": session.ID}); err != nil {
		logger.WithError(err).Error("failed to send session confirmation")
		return
	}

	for {
		var env struct {
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		}
		if err := conn.ReadJSON(&env); err != nil {
			break
		}
		session.LastActive = time.Now()
		if s.metrics != nil {
			s.metrics.RecordWebSocketMessage("inbound", env.Type)
		}

		switch env.Type {
		case "join":
			var join JoinMessage
			if err := json.Unmarshal(env.Payload, &join); err != nil {
				s.sendError(conn, err)
				continue
			}
			if err := s.bind(session, join); err != nil {
				s.sendError(conn, err)
				continue
			}
			conn.WriteJSON(map[string]string{"status": "bound"})
		case "choice":
			var msg ChoiceMessage
			if err := json.Unmarshal(env.Payload, &msg); err != nil {
				s.sendError(conn, err)
				continue
			}
			if err := s.submitChoice(session, msg, len(env.Payload)); err != nil {
				if s.metrics != nil {
					s.metrics.RecordChoiceSubmitted(msg.Kind, "rejected")
				}
				s.sendError(conn, err)
				continue
			}
			if s.metrics != nil {
				s.metrics.RecordChoiceSubmitted(msg.Kind, "accepted")
			}
			conn.WriteJSON(map[string]string{"status": "accepted"})
		default:
			s.sendError(conn, fmt.Errorf("unknown message type %q", env.Type))
		}
	}
}

func (s *Server) sendError(conn *websocket.Conn, err error) {
	conn.WriteJSON(map[string]string{"error": err.Error()})
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	delete(s.pending, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordWebSocketConnection("disconnected")
		s.metrics.UpdateActiveSessions(count)
	}
}

// bind claims a side/player seat for session, rejecting a seat already
// held by a different session.
func (s *Server) bind(session *Session, join JoinMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.bound() {
		return ErrSessionAlreadyBound
	}
	for _, other := range s.sessions {
		if other.ID != session.ID && other.SideIdx == join.SideIdx && other.PlayerIdx == join.PlayerIdx {
			return ErrSlotTaken
		}
	}
	session.SideIdx = join.SideIdx
	session.PlayerIdx = join.PlayerIdx
	return nil
}

// choiceKindFromString maps the wire "kind" string to battle.ActionKind,
// the closed set of per-slot commands §6 defines.
func choiceKindFromString(kind string) (battle.ActionKind, error) {
	switch kind {
	case "move":
		return battle.ActionMove, nil
	case "switch":
		return battle.ActionSwitch, nil
	case "item":
		return battle.ActionItem, nil
	case "escape":
		return battle.ActionEscape, nil
	case "forfeit":
		return battle.ActionForfeit, nil
	case "pass":
		return battle.ActionPass, nil
	default:
		return 0, ErrUnknownChoiceKind
	}
}

// submitChoice records session's choice for the in-progress turn. Once
// every bound session has submitted, the battle is driven forward one
// turn and every session is sent the resulting log entries.
func (s *Server) submitChoice(session *Session, msg ChoiceMessage, payloadSize int) error {
	if !session.bound() {
		return ErrInvalidSession
	}

	kind, err := choiceKindFromString(msg.Kind)
	if err != nil {
		return err
	}

	params := validation.ChoiceParams{
		MoveIndex:  msg.MoveIndex,
		TargetSlot: msg.TargetSlot,
		SwitchTo:   msg.SwitchTo,
		ItemID:     msg.ItemID,
	}
	if err := s.validator.ValidateChoice(msg.Kind, params, int64(payloadSize)); err != nil {
		return err
	}

	user, ok := s.activeHandle(session.SideIdx, session.PlayerIdx)
	if !ok {
		return fmt.Errorf("no active mon for side %d player %d", session.SideIdx, session.PlayerIdx)
	}
	target := s.firstOpposingActive(session.SideIdx)
	choice := battle.Choice{
		Kind:       kind,
		User:       user,
		MoveID:     moveIDForSlot(s.battle, user, msg.MoveIndex),
		TargetSlot: target,
		SwitchTo:   msg.SwitchTo,
		ItemID:     msg.ItemID,
	}

	s.mu.Lock()
	s.pending[session.ID] = choice
	ready := len(s.pending) >= s.required
	var snapshot map[string]battle.Choice
	if ready {
		snapshot = s.pending
		s.pending = make(map[string]battle.Choice)
	}
	s.mu.Unlock()

	if ready {
		s.runTurn(snapshot)
	}
	return nil
}

// runTurn drives the battle forward exactly one turn with the collected
// choices and broadcasts the turn's log entries to every connection.
func (s *Server) runTurn(choices map[string]battle.Choice) {
	ordered := make([]battle.Choice, 0, len(choices))
	for _, c := range choices {
		ordered = append(ordered, c)
	}

	turn := s.battle.Field.Turn + 1
	s.battle.BeginTurn(ordered)
	s.battle.RunTurn()

	entries := s.battle.Log.Turn(turn)
	messages := make([]LogEntryMessage, len(entries))
	for i, e := range entries {
		messages[i] = entryToMessage(e)
		if s.metrics != nil {
			s.metrics.RecordBattleEvent(string(e.Kind))
		}
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if sess.Conn != nil {
			conns = append(conns, sess.Conn)
		}
	}
	s.mu.Unlock()

	payload := map[string]interface{}{"turn": turn, "log": messages}
	for _, conn := range conns {
		if err := s.broadcastTo(conn, payload); err != nil {
			logrus.WithError(err).Warn("failed to broadcast turn result")
		} else if s.metrics != nil {
			s.metrics.RecordWebSocketMessage("outbound", "turnresult")
		}
	}
}

// broadcastTo writes payload to conn under circuit breaker and retry
// protection: a client's connection reconnecting mid-turn sees one or two
// transient write failures rather than a dropped turn result, while a
// connection that is genuinely gone trips the breaker instead of being
// retried forever.
func (s *Server) broadcastTo(conn *websocket.Conn, payload interface{}) error {
	return integration.ExecuteTransportOperation(context.Background(), func(context.Context) error {
		return conn.WriteJSON(payload)
	})
}

// activeHandle returns the handle currently occupying an active slot on
// sideIdx belonging to playerIdx, if any.
func (s *Server) activeHandle(sideIdx, playerIdx int) (battle.Handle, bool) {
	if sideIdx < 0 || sideIdx >= len(s.battle.Field.Sides) {
		return battle.NilHandle, false
	}
	side := s.battle.Field.Sides[sideIdx]
	for _, h := range side.Active {
		if !h.IsNil() && h.PlayerIdx == playerIdx {
			return h, true
		}
	}
	return battle.NilHandle, false
}

// firstOpposingActive returns the first active handle on a side other
// than sideIdx; ResolveTargets (§4.4) retargets further if it has
// fainted by the time the move resolves.
func (s *Server) firstOpposingActive(sideIdx int) battle.Handle {
	for _, opp := range s.battle.Field.OpposingSides(sideIdx) {
		side := s.battle.Field.Sides[opp]
		for _, h := range side.Active {
			if !h.IsNil() {
				return h
			}
		}
	}
	return battle.NilHandle
}

// moveIDForSlot resolves a 0-based move-slot index on user's mon to its
// canonical move ID, per the "move i [target t]" choice shape (§6).
func moveIDForSlot(b *battle.Battle, user battle.Handle, slot int) string {
	mon := b.Mon(user)
	if slot < 0 || slot >= len(mon.CurrentMoves) {
		return ""
	}
	return mon.CurrentMoves[slot].MoveID
}
