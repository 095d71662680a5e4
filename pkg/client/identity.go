// Package client models the partial, ambiguity-aware view of a battle
// available to an observer who only ever sees what the event log reveals:
// switch-ins, damage numbers, status changes, moves used. It never has
// access to hidden attacker/defender data (EVs, IVs, exact held item
// before it activates) and must track several candidate identities at
// once when a Mon's true species or stats have not yet been narrowed to
// one value.
package client

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Ambiguity tags whether a newly recorded observation should overwrite
// what is already known (Precise — e.g. team preview, or a status read
// directly off a switch-in) or merely add a candidate to a growing set
// of possibilities (Ambiguous — e.g. a recycled battle-appearance slot
// whose true identity is still undetermined).
type Ambiguity int

const (
	Precise Ambiguity = iota
	Ambiguous
)

// DiscoveryRequired models one piece of data that starts unknown and is
// slowly narrowed or widened as log entries arrive. It holds either a
// single known value, a set of values still in contention, or nothing at
// all.
type DiscoveryRequired[T comparable] struct {
	known    bool
	value    T
	possible []T
}

// Known builds an already-resolved value.
func Known[T comparable](v T) DiscoveryRequired[T] {
	return DiscoveryRequired[T]{known: true, value: v}
}

// IsEmpty reports whether nothing at all has been recorded yet.
func (d DiscoveryRequired[T]) IsEmpty() bool {
	return !d.known && len(d.possible) == 0
}

// Value returns the resolved value and whether one exists.
func (d DiscoveryRequired[T]) Value() (T, bool) {
	return d.value, d.known
}

// PossibleValues returns every value still in contention: a single
// element if known, the candidate set otherwise.
func (d DiscoveryRequired[T]) PossibleValues() []T {
	if d.known {
		return []T{d.value}
	}
	return d.possible
}

// CanBe reports whether v is consistent with what has been recorded so
// far: anything is consistent with no information yet, a known value
// must match exactly, a candidate set must contain it.
func (d DiscoveryRequired[T]) CanBe(v T) bool {
	if d.IsEmpty() {
		return true
	}
	if d.known {
		return d.value == v
	}
	return slices.Contains(d.possible, v)
}

// MakeAmbiguous demotes a known value into a one-element candidate set,
// for when a battle appearance slot is recycled and its prior owner can
// no longer be assumed with certainty.
func (d DiscoveryRequired[T]) MakeAmbiguous() DiscoveryRequired[T] {
	if !d.known {
		return d
	}
	return DiscoveryRequired[T]{possible: []T{d.value}}
}

// Record folds a newly observed value in, per ambiguity: a Precise
// observation narrows straight to the new value when one is given;
// an Ambiguous observation unions the new candidates into the existing
// set, which becomes Known when the union holds exactly one candidate.
// A union never removes a candidate, so Ambiguous records never narrow.
func (d DiscoveryRequired[T]) Record(other DiscoveryRequired[T], ambiguity Ambiguity) DiscoveryRequired[T] {
	if ambiguity == Ambiguous {
		return d.merge(other)
	}
	return d.narrow(other)
}

func (d DiscoveryRequired[T]) narrow(other DiscoveryRequired[T]) DiscoveryRequired[T] {
	if other.known {
		return other
	}
	if len(other.possible) == 0 {
		return d
	}
	return other
}

func (d DiscoveryRequired[T]) merge(other DiscoveryRequired[T]) DiscoveryRequired[T] {
	if other.IsEmpty() {
		return d
	}
	out := append([]T{}, d.PossibleValues()...)
	for _, v := range other.PossibleValues() {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	if len(out) == 1 {
		return Known(out[0])
	}
	return DiscoveryRequired[T]{possible: out}
}

// DiscoveryRequiredSet is the plural form used for a Mon's known move
// set: moves confirmed used are Known, moves merely suspected (e.g. from
// a recycled appearance slot) stay Possible until confirmed or dropped.
type DiscoveryRequiredSet[T comparable] struct {
	known    []T
	possible []T
}

// IsEmpty reports whether nothing has been recorded.
func (s DiscoveryRequiredSet[T]) IsEmpty() bool {
	return len(s.known) == 0 && len(s.possible) == 0
}

// Known returns the confirmed members.
func (s DiscoveryRequiredSet[T]) Known() []T {
	return s.known
}

// PossibleValues returns the unconfirmed candidates.
func (s DiscoveryRequiredSet[T]) PossibleValues() []T {
	return s.possible
}

// RecordKnown confirms v as a member, removing it from the candidate set
// if it was only suspected before.
func (s *DiscoveryRequiredSet[T]) RecordKnown(v T) {
	if !slices.Contains(s.known, v) {
		s.known = append(s.known, v)
	}
	s.possible = slices.DeleteFunc(s.possible, func(x T) bool { return x == v })
}

// RecordPossible adds v as a candidate, unless it is already confirmed.
func (s *DiscoveryRequiredSet[T]) RecordPossible(v T) {
	if slices.Contains(s.known, v) {
		return
	}
	if !slices.Contains(s.possible, v) {
		s.possible = append(s.possible, v)
	}
}

// MakeAmbiguous demotes every confirmed member into a candidate, for
// recycling a battle appearance slot onto a new, unconfirmed owner.
func (s DiscoveryRequiredSet[T]) MakeAmbiguous() DiscoveryRequiredSet[T] {
	out := DiscoveryRequiredSet[T]{possible: append([]T{}, s.possible...)}
	for _, v := range s.known {
		if !slices.Contains(out.possible, v) {
			out.possible = append(out.possible, v)
		}
	}
	return out
}

// MonPhysicalAppearance is what an observer can see about a Mon without
// any battle data: its nickname, species, gender, and shininess. This
// never changes over a battle's course, except that a Mon using an
// illusion-style effect presents another Mon's physical appearance while
// active.
type MonPhysicalAppearance struct {
	Name    string
	Species string
	Gender  string
	Shiny   bool
}

// Matches reports whether two appearances could describe the same Mon:
// an empty field on either side is treated as a wildcard, but shininess
// must agree exactly since it is always visible once a Mon is seen.
func (a MonPhysicalAppearance) Matches(other MonPhysicalAppearance) bool {
	return (a.Name == "" || other.Name == "" || a.Name == other.Name) &&
		(a.Species == "" || other.Species == "" || a.Species == other.Species) &&
		(a.Gender == "" || other.Gender == "" || a.Gender == other.Gender) &&
		a.Shiny == other.Shiny
}

// HealthReading is a numerator/denominator HP pair as reported on
// switch-in or after a damaging hit.
type HealthReading struct {
	Current uint64
	Max     uint64
}

// SwitchInReading is the battle data revealed the instant a Mon switches
// in: its level and current HP fraction are visible immediately, and a
// status condition shows if one is already active.
type SwitchInReading struct {
	Level  uint64
	Health HealthReading
	Status string
}

// MonBattleAppearance is the battle-only data discovered over the course
// of a fight: level and HP on switch-in, status as it changes, ability
// and item once they activate, and the moves seen used.
type MonBattleAppearance struct {
	Level   DiscoveryRequired[uint64]
	Health  DiscoveryRequired[HealthReading]
	Status  DiscoveryRequired[string]
	Ability DiscoveryRequired[string]
	Item    DiscoveryRequired[string]
	Moves   DiscoveryRequiredSet[string]
}

// AppearanceFromSwitchIn seeds a fresh battle appearance from what a
// switch-in directly reveals.
func AppearanceFromSwitchIn(r SwitchInReading) MonBattleAppearance {
	var a MonBattleAppearance
	a.RecordLevel(Known(r.Level), Precise)
	a.RecordHealth(Known(r.Health), Precise)
	a.RecordStatus(Known(r.Status), Precise)
	return a
}

// IsEmpty reports whether nothing at all has been recorded about this
// appearance yet.
func (a MonBattleAppearance) IsEmpty() bool {
	return a.Level.IsEmpty() && a.Health.IsEmpty() && a.Status.IsEmpty() &&
		a.Ability.IsEmpty() && a.Item.IsEmpty() && a.Moves.IsEmpty()
}

// MakeAmbiguous demotes every field to a candidate, for handing this
// appearance off as the recycled seed of a new, unconfirmed slot.
func (a MonBattleAppearance) MakeAmbiguous() MonBattleAppearance {
	return MonBattleAppearance{
		Level:   a.Level.MakeAmbiguous(),
		Health:  a.Health.MakeAmbiguous(),
		Status:  a.Status.MakeAmbiguous(),
		Ability: a.Ability.MakeAmbiguous(),
		Item:    a.Item.MakeAmbiguous(),
		Moves:   a.Moves.MakeAmbiguous(),
	}
}

func (a *MonBattleAppearance) RecordLevel(v DiscoveryRequired[uint64], ambiguity Ambiguity) {
	a.Level = a.Level.Record(v, ambiguity)
}

func (a *MonBattleAppearance) RecordHealth(v DiscoveryRequired[HealthReading], ambiguity Ambiguity) {
	a.Health = a.Health.Record(v, ambiguity)
}

func (a *MonBattleAppearance) RecordStatus(v DiscoveryRequired[string], ambiguity Ambiguity) {
	a.Status = a.Status.Record(v, ambiguity)
}

func (a *MonBattleAppearance) RecordAbility(v DiscoveryRequired[string], ambiguity Ambiguity) {
	a.Ability = a.Ability.Record(v, ambiguity)
}

func (a *MonBattleAppearance) RecordItem(v DiscoveryRequired[string], ambiguity Ambiguity) {
	a.Item = a.Item.Record(v, ambiguity)
}

func (a *MonBattleAppearance) RecordMove(name string, ambiguity Ambiguity) {
	if ambiguity == Ambiguous {
		a.Moves.RecordPossible(name)
	} else {
		a.Moves.RecordKnown(name)
	}
}

// RecordAll folds every field of other in as Precise observations,
// including each of its moves at whatever confirmation level other held
// them.
func (a *MonBattleAppearance) RecordAll(other MonBattleAppearance) {
	a.RecordLevel(other.Level, Precise)
	a.RecordHealth(other.Health, Precise)
	a.RecordStatus(other.Status, Precise)
	a.RecordAbility(other.Ability, Precise)
	a.RecordItem(other.Item, Precise)
	for _, m := range other.Moves.Known() {
		a.RecordMove(m, Precise)
	}
	for _, m := range other.Moves.PossibleValues() {
		a.RecordMove(m, Ambiguous)
	}
}

// MonBattleAppearanceWithRecovery wraps a battle appearance with the
// three-copy bookkeeping needed to recover from an illusion reveal: while
// a Mon is active, data gathered since its last switch-in is tracked
// separately from the appearance it carried into the field, so that if
// the active Mon turns out to be another Mon's illusion, only the
// illusion-period data needs to move to that other Mon's record.
type MonBattleAppearanceWithRecovery struct {
	active             bool
	primary            MonBattleAppearance
	upToLastSwitchOut  MonBattleAppearance
	fromLastSwitchIn   MonBattleAppearance
}

// NewInactiveAppearance wraps an already-known appearance as an inactive
// slot — the state a battle appearance starts in before its Mon has ever
// been switched in under this tracking.
func NewInactiveAppearance(a MonBattleAppearance) MonBattleAppearanceWithRecovery {
	return MonBattleAppearanceWithRecovery{primary: a}
}

// IsActive reports whether the owning Mon is presently on the field.
func (r *MonBattleAppearanceWithRecovery) IsActive() bool {
	return r.active
}

// Primary is the appearance data an observer should treat as this Mon's
// identity right now.
func (r *MonBattleAppearanceWithRecovery) Primary() MonBattleAppearance {
	return r.primary
}

// TakePrimary returns a copy of the primary appearance, for recycling a
// slot; the recovery slots themselves are left unchanged.
func (r *MonBattleAppearanceWithRecovery) TakePrimary() MonBattleAppearance {
	return r.primary
}

// MatchesSwitchIn reports whether a freshly observed switch-in reading is
// consistent with everything recorded about this slot so far.
func (r *MonBattleAppearanceWithRecovery) MatchesSwitchIn(reading SwitchInReading) bool {
	return r.primary.Level.CanBe(reading.Level) &&
		r.primary.Health.CanBe(reading.Health) &&
		r.primary.Status.CanBe(reading.Status)
}

// SwitchIn marks the slot active, carrying the current primary forward as
// the baseline to recover to if this Mon is later revealed as an
// illusion.
func (r *MonBattleAppearanceWithRecovery) SwitchIn() {
	if r.active {
		return
	}
	r.active = true
	r.upToLastSwitchOut = r.primary
	r.fromLastSwitchIn = MonBattleAppearance{}
}

// SwitchOut marks the slot inactive. The primary appearance, which has
// been accumulating all along, is left as-is.
func (r *MonBattleAppearanceWithRecovery) SwitchOut() {
	r.active = false
}

// Recover rewinds the primary appearance to what was known before the
// current activation and returns everything learned since, for handing
// that illusion-period data to the Mon it actually belongs to. A no-op on
// an inactive slot.
func (r *MonBattleAppearanceWithRecovery) Recover() MonBattleAppearance {
	if !r.active {
		return MonBattleAppearance{}
	}
	r.primary = r.upToLastSwitchOut
	out := r.fromLastSwitchIn
	r.fromLastSwitchIn = MonBattleAppearance{}
	return out
}

// apply runs f against every copy that should track a given observation:
// always the primary, and also the illusion-period copy while active.
func (r *MonBattleAppearanceWithRecovery) apply(f func(*MonBattleAppearance)) {
	f(&r.primary)
	if r.active {
		f(&r.fromLastSwitchIn)
	}
}

func (r *MonBattleAppearanceWithRecovery) RecordLevel(v DiscoveryRequired[uint64], ambiguity Ambiguity) {
	r.apply(func(a *MonBattleAppearance) { a.RecordLevel(v, ambiguity) })
}

func (r *MonBattleAppearanceWithRecovery) RecordHealth(v DiscoveryRequired[HealthReading], ambiguity Ambiguity) {
	r.apply(func(a *MonBattleAppearance) { a.RecordHealth(v, ambiguity) })
}

func (r *MonBattleAppearanceWithRecovery) RecordStatus(v DiscoveryRequired[string], ambiguity Ambiguity) {
	r.apply(func(a *MonBattleAppearance) { a.RecordStatus(v, ambiguity) })
}

func (r *MonBattleAppearanceWithRecovery) RecordAbility(v DiscoveryRequired[string], ambiguity Ambiguity) {
	r.apply(func(a *MonBattleAppearance) { a.RecordAbility(v, ambiguity) })
}

func (r *MonBattleAppearanceWithRecovery) RecordItem(v DiscoveryRequired[string], ambiguity Ambiguity) {
	r.apply(func(a *MonBattleAppearance) { a.RecordItem(v, ambiguity) })
}

func (r *MonBattleAppearanceWithRecovery) RecordMove(name string, ambiguity Ambiguity) {
	r.apply(func(a *MonBattleAppearance) { a.RecordMove(name, ambiguity) })
}

// MonVolatileData is the subset of a Mon's state that resets the instant
// it leaves the field: its visible ability (if it differs from its base
// ability, e.g. Trace), active conditions, current effective types, and
// accumulated stat boosts.
type MonVolatileData struct {
	Ability    string
	Conditions map[string]MonConditionData
	Types      []string
	StatBoosts map[string]int64
}

// ConditionData tracks when a volatile condition began, for effects that
// expire after a fixed number of turns.
type ConditionData struct {
	SinceTurn int
}

// MonConditionData is a condition together with whether it is scoped to
// expire the next time its target moves (e.g. a flinch) rather than by
// turn count.
type MonConditionData struct {
	ConditionData    ConditionData
	UntilTargetMoves bool
}

func (v *MonVolatileData) RecordAbility(name string) {
	v.Ability = name
}

func (v *MonVolatileData) RecordCondition(name string, data MonConditionData) {
	if v.Conditions == nil {
		v.Conditions = map[string]MonConditionData{}
	}
	v.Conditions[name] = data
}

func (v *MonVolatileData) RemoveCondition(name string) {
	delete(v.Conditions, name)
}

func (v *MonVolatileData) RecordTypes(types []string) {
	v.Types = append([]string{}, types...)
}

func (v *MonVolatileData) RecordStatBoost(stat string, diff int64) {
	if v.StatBoosts == nil {
		v.StatBoosts = map[string]int64{}
	}
	v.StatBoosts[stat] += diff
}

const maxBattleAppearances = 3

// Mon is one roster slot as tracked by an observer: a stable physical
// appearance plus a short, capped history of distinct battle appearances
// it may have presented (more than one only arises under an
// illusion-style effect, where the same roster slot fields multiple
// identities across several switch-ins).
type Mon struct {
	ID                 uuid.UUID
	PhysicalAppearance MonPhysicalAppearance
	BattleAppearances  []*MonBattleAppearanceWithRecovery
	Fainted            bool
	Volatile           MonVolatileData
}

// NewMon builds a Mon with whatever battle appearances have already been
// recorded for it (normally none, at team preview).
func NewMon(physical MonPhysicalAppearance, seen ...MonBattleAppearance) *Mon {
	m := &Mon{ID: uuid.New(), PhysicalAppearance: physical}
	for _, a := range seen {
		app := NewInactiveAppearance(a)
		m.BattleAppearances = append(m.BattleAppearances, &app)
	}
	return m
}

func (m *Mon) SwitchIn() {
	m.Revive()
	m.Volatile = MonVolatileData{}
}

func (m *Mon) SwitchOut() {
	m.Volatile = MonVolatileData{}
	for _, a := range m.BattleAppearances {
		a.SwitchOut()
	}
}

func (m *Mon) Faint() {
	m.Fainted = true
	m.SwitchOut()
}

func (m *Mon) Revive() {
	m.Fainted = false
}

// PushBattleAppearance opens a fresh, unconfirmed battle-appearance slot,
// for when this roster entry is suspected of presenting an identity none
// of its existing slots match. Past the cap of three, the oldest slot is
// recycled rather than grown without bound: its primary data seeds the
// new slot, demoted to a candidate rather than discarded, on the
// assumption that an illusion eventually reverts to showing data
// consistent with an earlier appearance.
func (m *Mon) PushBattleAppearance() int {
	var seed MonBattleAppearance
	if len(m.BattleAppearances) >= maxBattleAppearances {
		oldest := m.BattleAppearances[0]
		m.BattleAppearances = m.BattleAppearances[1:]
		seed = oldest.TakePrimary()
	}
	app := NewInactiveAppearance(seed.MakeAmbiguous())
	m.BattleAppearances = append(m.BattleAppearances, &app)
	return len(m.BattleAppearances) - 1
}

// RemoveBattleAppearance drops a slot outright, for when a suspected
// identity is ruled out entirely rather than merged into another.
func (m *Mon) RemoveBattleAppearance(index int) {
	m.BattleAppearances = append(m.BattleAppearances[:index], m.BattleAppearances[index+1:]...)
}

// MonBattleAppearanceReference locates one Mon's active battle-appearance
// slot within a side: which player's roster, which roster slot, and
// which of that Mon's (possibly several) battle-appearance slots.
type MonBattleAppearanceReference struct {
	PlayerIdx int
	MonIdx    int
	SlotIdx   int
}

// Player is one side's participant and roster, as observed.
type Player struct {
	Name string
	Mons []*Mon
}

func (p *Player) MonsByName(name string) []*Mon {
	var out []*Mon
	for _, m := range p.Mons {
		if m.PhysicalAppearance.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// Side is one team of the battle as observed: its players and which
// roster slots are presently active, by reference.
type Side struct {
	Players []*Player
	Active  []*MonBattleAppearanceReference
}

// PlayerOrElse returns the player at idx, growing the roster list if this
// is the first entry seen to touch it.
func (s *Side) PlayerOrElse(idx int) *Player {
	for len(s.Players) <= idx {
		s.Players = append(s.Players, &Player{})
	}
	return s.Players[idx]
}

// MonByReference resolves a reference against this side's current
// roster, reporting false if the indices are out of range.
func (s *Side) MonByReference(ref MonBattleAppearanceReference) (*Mon, bool) {
	if ref.PlayerIdx < 0 || ref.PlayerIdx >= len(s.Players) {
		return nil, false
	}
	p := s.Players[ref.PlayerIdx]
	if ref.MonIdx < 0 || ref.MonIdx >= len(p.Mons) {
		return nil, false
	}
	return p.Mons[ref.MonIdx], true
}

// MonByAppearance finds the roster slot on this side whose physical
// appearance and some existing battle-appearance slot are both
// consistent with a freshly observed switch-in, identifying which Mon
// just took the field.
func (s *Side) MonByAppearance(playerIdx int, physical MonPhysicalAppearance, reading SwitchInReading) (monIdx, slotIdx int, ok bool) {
	p := s.PlayerOrElse(playerIdx)
	for i, m := range p.Mons {
		if !m.PhysicalAppearance.Matches(physical) {
			continue
		}
		for j, app := range m.BattleAppearances {
			if app.MatchesSwitchIn(reading) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
