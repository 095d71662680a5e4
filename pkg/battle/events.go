package battle

import (
	"sort"

	"battlesim/pkg/data"
	"battlesim/pkg/numeric"
)

// EventType is one member of the closed event catalogue every effect
// registers handlers against (§4.1). The catalogue is closed: adding a
// new kind of effect never needs a new EventType, only a new handler
// registered against an existing one.
type EventType int

const (
	EventBeforeMove EventType = iota
	EventTryMove
	EventTryHit
	EventHit
	EventBasePower
	EventModifyDamage
	EventEffectiveness
	EventModifyCritRatio
	EventModifyAccuracy
	EventImmunity
	EventTryAddVolatile
	EventStart
	EventEnd
	EventDuration
	EventDamagingHit
	EventAfterMove
	EventResidual
	EventWeather
	EventSetStatus
	EventChangeBoosts
	EventTryBoost
	EventRedirectTarget
	EventOverrideMove
	EventModifyCatchRate
	EventModifySecondaryEffects
	EventSwitchIn
	EventSwitchOut
	EventExit
	EventEntryHazard
	EventCopyVolatile
	EventDragOut
	EventForceEscape
	EventModifyAtk
	EventModifyDef
	EventModifySpA
	EventModifySpD
	EventModifySpe
	EventModifyDamageFromWeather
	EventModifyTypeEffectiveness
	EventFailMoveBeforeHit
	EventTryHeal
	EventCureStatus
	EventSetWeather
	EventFieldStart
	EventFieldEnd
	EventFieldRestart
	EventWeatherChange
	EventSetTerrain
	EventSetAbility
	EventSetItem
	EventTakeItem
	EventTryUseItem
	EventTryEatItem
	EventUse
	EventEat
	EventSetSpecies
	EventModifyExperience
	EventSideStart
	EventSideEnd
	EventSlotStart
	EventSlotEnd
)

// aggregationKind classifies how an event's handler outputs combine,
// matching the four kinds §4.1 defines.
type aggregationKind int

const (
	aggModifyValue aggregationKind = iota
	aggGate
	aggVoid
	aggFirstValue
)

var eventAggregation = map[EventType]aggregationKind{
	EventBasePower:               aggModifyValue,
	EventModifyDamage:            aggModifyValue,
	EventModifyCritRatio:         aggModifyValue,
	EventModifyAccuracy:          aggModifyValue,
	EventTryBoost:                aggGate,
	EventEffectiveness:           aggModifyValue,
	EventModifyAtk:               aggModifyValue,
	EventModifyDef:               aggModifyValue,
	EventModifySpA:               aggModifyValue,
	EventModifySpD:               aggModifyValue,
	EventModifySpe:               aggModifyValue,
	EventModifyDamageFromWeather: aggModifyValue,
	EventModifyTypeEffectiveness: aggModifyValue,
	EventTryMove:                 aggGate,
	EventTryHit:                  aggGate,
	EventImmunity:                aggGate,
	EventDragOut:                 aggGate,
	EventSetStatus:               aggGate,
	EventChangeBoosts:            aggGate,
	EventFailMoveBeforeHit:       aggGate,
	EventStart:                   aggVoid,
	EventEnd:                     aggVoid,
	EventAfterMove:               aggVoid,
	EventResidual:                aggVoid,
	EventHit:                     aggVoid,
	EventDamagingHit:             aggVoid,
	EventSwitchIn:                aggVoid,
	EventSwitchOut:               aggVoid,
	EventExit:                    aggVoid,
	EventEntryHazard:             aggVoid,
	EventWeather:                 aggVoid,
	EventRedirectTarget:          aggFirstValue,
	EventOverrideMove:            aggFirstValue,
	EventModifyCatchRate:         aggModifyValue,
	EventModifySecondaryEffects:  aggModifyValue,
	EventTryAddVolatile:          aggGate,
	EventDuration:                aggFirstValue,
	EventCopyVolatile:            aggVoid,
	EventForceEscape:             aggGate,
	EventBeforeMove:              aggGate,
	EventTryHeal:                 aggGate,
	EventCureStatus:              aggGate,
	EventTryUseItem:              aggGate,
	EventTryEatItem:              aggGate,
	EventSetWeather:              aggGate,
	EventFieldStart:              aggVoid,
	EventFieldEnd:                aggVoid,
	EventFieldRestart:            aggVoid,
	EventWeatherChange:           aggVoid,
	EventSetTerrain:              aggGate,
	EventSetAbility:              aggVoid,
	EventSetItem:                 aggVoid,
	EventTakeItem:                aggVoid,
	EventUse:                     aggVoid,
	EventEat:                     aggVoid,
	EventSetSpecies:              aggVoid,
	EventModifyExperience:        aggModifyValue,
	EventSideStart:               aggVoid,
	EventSideEnd:                 aggVoid,
	EventSlotStart:               aggVoid,
	EventSlotEnd:                 aggVoid,
}

// GateResult is the tri-state a veto/gate event returns, replacing
// exception-based control flow (§9 design note).
type GateResult int

const (
	Advance GateResult = iota
	Stop
	Fail
)

// ValueKind tags which field of Value is populated, implementing the
// "tagged-union Value type for cross-event inputs" design note.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueFraction
	ValueRange
	ValueDistribution
	ValueBool
	ValueString
	ValueGate
	ValueHandle
)

// Value is the single cross-event payload type threaded through handler
// chains; only the field matching Kind is meaningful.
type Value struct {
	Kind   ValueKind
	Int    int64
	Frac   numeric.Fraction
	Range  numeric.Range
	Dist   numeric.RangeDistribution
	Bool   bool
	Str    string
	Gate   GateResult
	Handle Handle
}

func IntValue(v int64) Value         { return Value{Kind: ValueInt, Int: v} }
func FracValue(v numeric.Fraction) Value  { return Value{Kind: ValueFraction, Frac: v} }
func RangeValue(v numeric.Range) Value    { return Value{Kind: ValueRange, Range: v} }
func DistValue(v numeric.RangeDistribution) Value { return Value{Kind: ValueDistribution, Dist: v} }
func BoolValue(v bool) Value         { return Value{Kind: ValueBool, Bool: v} }
func StringValue(v string) Value     { return Value{Kind: ValueString, Str: v} }
func GateValue(v GateResult) Value   { return Value{Kind: ValueGate, Gate: v} }

// SourceKind classifies which part of the state model an effect belongs
// to (§4.1 "Event sources").
type SourceKind int

const (
	SourceField SourceKind = iota
	SourceSide
	SourceMon
)

// Context is the narrow, scoped view a handler receives: the battle it
// can request broader access from, the event being dispatched, the
// user/attacker, the focus/defender (if any), the move in play (if any)
// and whether this particular hit is a critical hit. Handlers that need
// more than this borrow explicitly via ctx.Battle rather than receiving
// it up front (§9 "contexts borrow mutably from the root").
type Context struct {
	Battle   *Battle
	Event    EventType
	User     Handle
	Target   Handle
	Move     *data.MoveData
	Crit     bool
	HitIndex int
}

// HandlerFunc is the uniform handler signature every registered effect
// callback implements, regardless of event kind.
type HandlerFunc func(ctx *Context, in Value) Value

// Handler is one registered callback: which effect it belongs to, where
// that effect lives (source kind + owner handle, or side index for
// side-scoped effects), its event, its ordering priority, and an
// insertion-order tiebreaker assigned by the registry.
type Handler struct {
	EffectID string
	Source   SourceKind
	Owner    Handle
	SideIdx  int
	Event    EventType
	Priority int
	order    int64
	Live     func(b *Battle) bool
	Fn       HandlerFunc
}

// Registry holds every registered handler, indexed by event, kept sorted
// by (Priority, insertion order): declared order is part of the contract
// for each event.
type Registry struct {
	handlers map[EventType][]*Handler
	counter  int64
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[EventType][]*Handler)}
}

// Register adds h, assigning it the next insertion-order tiebreaker, and
// re-sorts that event's handler list.
func (r *Registry) Register(h *Handler) {
	r.counter++
	h.order = r.counter
	r.handlers[h.Event] = append(r.handlers[h.Event], h)
	list := r.handlers[h.Event]
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority < list[j].Priority
		}
		return list[i].order < list[j].order
	})
}

// Unregister removes every handler belonging to effectID on owner for
// event, used when an effect ends (ability replaced, item consumed,
// volatile removed) so its callbacks stop firing immediately rather than
// only being filtered out by a Live check.
func (r *Registry) Unregister(event EventType, effectID string, owner Handle) {
	list := r.handlers[event]
	out := list[:0]
	for _, h := range list {
		if h.EffectID == effectID && h.Owner == owner {
			continue
		}
		out = append(out, h)
	}
	r.handlers[event] = out
}

// active returns event's handlers filtered by their Live predicate, in
// declared order — the §4.1 "filters out handlers whose registered
// effect is no longer in effect" step.
func (r *Registry) active(event EventType, b *Battle) []*Handler {
	list := r.handlers[event]
	out := make([]*Handler, 0, len(list))
	for _, h := range list {
		if h.Live == nil || h.Live(b) {
			out = append(out, h)
		}
	}
	return out
}

// DispatchModify runs event as a modify-value event: the value threads
// through every live handler in order.
func (b *Battle) DispatchModify(ctx *Context, start Value) Value {
	v := start
	for _, h := range b.Hooks.active(ctx.Event, b) {
		v = h.Fn(ctx, v)
	}
	return v
}

// DispatchGate runs event as a veto/gate event: the first Stop or Fail
// short-circuits and is returned; otherwise Advance.
func (b *Battle) DispatchGate(ctx *Context) GateResult {
	for _, h := range b.Hooks.active(ctx.Event, b) {
		v := h.Fn(ctx, Value{})
		if v.Gate == Stop || v.Gate == Fail {
			return v.Gate
		}
	}
	return Advance
}

// DispatchVoid runs every live handler for event for side effects only.
func (b *Battle) DispatchVoid(ctx *Context, in Value) {
	for _, h := range b.Hooks.active(ctx.Event, b) {
		h.Fn(ctx, in)
	}
}

// DispatchFirst runs event until a handler returns a value whose Kind is
// not ValueNone, and returns it; ok is false if every handler passed.
func (b *Battle) DispatchFirst(ctx *Context, in Value) (v Value, ok bool) {
	for _, h := range b.Hooks.active(ctx.Event, b) {
		v = h.Fn(ctx, in)
		if v.Kind != ValueNone {
			return v, true
		}
	}
	return Value{}, false
}
