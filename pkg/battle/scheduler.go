package battle

import (
	"sort"

	"battlesim/pkg/data"

	"github.com/sirupsen/logrus"
)

// ActionKind is the declared kind of a per-slot choice (§4.3).
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionSwitch
	ActionItem
	ActionEscape
	ActionForfeit
	ActionPass
)

// explicitClass returns the coarse priority class from §4.3 item 1:
// forced switches pre-empt chosen switches, which pre-empt items, which
// pre-empt moves. Higher sorts first.
func explicitClass(kind ActionKind, forced bool) int {
	switch kind {
	case ActionForfeit:
		return 100
	case ActionSwitch:
		if forced {
			return 90
		}
		return 80
	case ActionEscape:
		return 70
	case ActionItem:
		return 60
	case ActionMove:
		return 0
	case ActionPass:
		return -100
	default:
		return 0
	}
}

// Action is one scheduled choice, converted from a player's submitted
// command and carrying the ordering keys the scheduler's comparator
// reads (§4.3).
type Action struct {
	Kind          ActionKind
	User          Handle
	Forced        bool
	MoveID        string
	Target        Handle
	SwitchToIndex int
	ItemID        string

	movePriority int
	speed        int64
	tieBreak     int64
}

// Scheduler holds the single globally-ordered action queue for a turn.
// Each turn's choices are submitted once via Submit; moves that spawn new
// actions mid-turn (a forced switch after a faint, a triggered
// level-up) call Insert, which re-sorts the remaining queue rather than
// appending to its end (§4.3).
type Scheduler struct {
	battle *Battle
	queue  []*Action
}

// NewScheduler builds an empty scheduler bound to b.
func NewScheduler(b *Battle) *Scheduler {
	return &Scheduler{battle: b}
}

// assignKeys fills in an action's derived ordering keys from the current
// battle state: move priority from the data store (0 for non-move
// actions), effective speed of the user at the moment of insertion, and a
// tiebreaker drawn fresh from the seeded RNG.
func (s *Scheduler) assignKeys(a *Action) {
	a.movePriority = 0
	if a.Kind == ActionMove {
		if mv, err := s.battle.Store.Move(a.MoveID); err == nil {
			a.movePriority = mv.Priority
		}
	}
	mon := s.battle.Mon(a.User)
	a.speed = mon.EffectiveStat(data.StatSpe, false)
	a.tieBreak = int64(s.battle.RNG.Intn(1 << 30))
}

// Submit queues a freshly-converted action for this turn.
func (s *Scheduler) Submit(a *Action) {
	s.assignKeys(a)
	s.queue = append(s.queue, a)
	s.resort()
}

// Insert adds a mid-turn action (a forced switch, a triggered follow-up)
// into sorted position among the remaining queue.
func (s *Scheduler) Insert(a *Action) {
	s.assignKeys(a)
	s.queue = append(s.queue, a)
	s.resort()
	logrus.WithFields(logrus.Fields{
		"function": "Insert",
		"package":  "battle",
		"kind":     a.Kind,
	}).Debug("inserted mid-turn action")
}

func less(a, b *Action) bool {
	ca, cb := explicitClass(a.Kind, a.Forced), explicitClass(b.Kind, b.Forced)
	if ca != cb {
		return ca > cb
	}
	if a.movePriority != b.movePriority {
		return a.movePriority > b.movePriority
	}
	if a.speed != b.speed {
		return a.speed > b.speed
	}
	return a.tieBreak < b.tieBreak
}

func (s *Scheduler) resort() {
	sort.SliceStable(s.queue, func(i, j int) bool { return less(s.queue[i], s.queue[j]) })
}

// Next pops the next runnable action, skipping any whose user has fainted
// (§4.3's "a fainted mon cannot act" interrupt). ok is false once the
// queue is drained.
func (s *Scheduler) Next() (*Action, bool) {
	for len(s.queue) > 0 {
		a := s.queue[0]
		s.queue = s.queue[1:]
		mon := s.battle.Mon(a.User)
		if mon.Fainted {
			continue
		}
		return a, true
	}
	return nil, false
}

// Pending reports how many actions remain queued.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Clear empties the queue, used at the start of a fresh turn after the
// previous turn's actions have all drained.
func (s *Scheduler) Clear() {
	s.queue = nil
}
