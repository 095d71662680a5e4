package battle

// EffectState is the per-active-effect mutable record shared by statuses,
// volatiles, side/slot/field conditions, abilities and items — the
// uniform layout that lets the hook dispatcher treat all of them alike
// (§3). Duration of nil means indefinite; Data carries effect-specific
// counters (e.g. a sleep counter, a confusion counter) keyed by name
// rather than as named struct fields, since the set of effects is
// data-driven and open-ended.
type EffectState struct {
	SourceEffect string
	SourceMon    Handle
	TargetMon    Handle
	Turn         int
	Duration     *int
	Data         map[string]int
}

// NewEffectState builds a fresh EffectState for effectID, attributed to
// source and applied to target at the given turn. The EffectState must
// exist before any Start handler runs and is only removed after the
// matching End handler fires (§3 invariant).
func NewEffectState(effectID string, source, target Handle, turn int) *EffectState {
	return &EffectState{
		SourceEffect: effectID,
		SourceMon:    source,
		TargetMon:    target,
		Turn:         turn,
		Data:         make(map[string]int),
	}
}

// WithDuration sets a finite duration in turns and returns the receiver.
func (e *EffectState) WithDuration(turns int) *EffectState {
	d := turns
	e.Duration = &d
	return e
}

// Tick decrements Duration by one if finite, reporting whether the effect
// has now expired (Duration reached zero). An indefinite effect (nil
// Duration) never expires via Tick.
func (e *EffectState) Tick() bool {
	if e.Duration == nil {
		return false
	}
	*e.Duration--
	return *e.Duration <= 0
}
