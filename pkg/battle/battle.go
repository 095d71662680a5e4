package battle

import (
	"battlesim/pkg/data"

	"github.com/sirupsen/logrus"
)

// Battle is the single owning root of a live battle's state: the field
// (and through it every side/player/mon), the static data store, the
// seeded RNG, the hook registry, and the append-only log. Exactly one
// Battle drives one cooperative, single-threaded simulation (§5).
type Battle struct {
	Field *Field
	Store data.Store
	RNG   *RNG
	Hooks *Registry
	Log   *Log

	scheduler *Scheduler
}

// NewBattle wires a fresh battle around an already-built field, a data
// store and a seed. The caller registers move/ability/item/condition
// hooks afterward via Battle.Hooks.Register before the first turn runs.
func NewBattle(field *Field, store data.Store, seed int64) *Battle {
	b := &Battle{
		Field: field,
		Store: store,
		RNG:   NewRNG(seed),
		Hooks: NewRegistry(),
		Log:   NewLog(),
	}
	b.scheduler = NewScheduler(b)
	registerBuiltinFieldHooks(b)
	return b
}

// RestoreBattle rebuilds a Battle from a previously persisted field, RNG
// and log (§6's persisted state layout), rather than constructing fresh
// ones from a seed. The caller re-registers hooks afterward exactly as
// NewBattle's caller would, since hook registrations are not themselves
// part of the persisted snapshot.
func RestoreBattle(field *Field, store data.Store, rng *RNG, log *Log) *Battle {
	b := &Battle{
		Field: field,
		Store: store,
		RNG:   rng,
		Hooks: NewRegistry(),
		Log:   log,
	}
	b.scheduler = NewScheduler(b)
	registerBuiltinFieldHooks(b)
	return b
}

// Mon resolves a handle through the field, logging at debug level the way
// any state lookup on the hot path does.
func (b *Battle) Mon(h Handle) *Mon {
	logrus.WithFields(logrus.Fields{
		"function": "Mon",
		"package":  "battle",
		"handle":   h,
	}).Debug("resolving mon handle")
	return b.Field.Mon(h)
}

// Side returns the side at idx.
func (b *Battle) Side(idx int) *Side {
	return b.Field.Sides[idx]
}

// Scheduler returns the battle's action scheduler.
func (b *Battle) Scheduler() *Scheduler {
	return b.scheduler
}
