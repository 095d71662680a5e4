package battle

import "battlesim/pkg/data"

// BoostTable holds the seven boost-stage channels (five stats plus
// accuracy/evasion), each clamped to [-6, 6] by every mutation primitive
// that touches it.
type BoostTable map[data.Stat]int

// Get reads the boost stage for s, defaulting to 0.
func (b BoostTable) Get(s data.Stat) int {
	return b[s]
}

// Clamped returns v clamped into [-6, 6].
func Clamped(v int) int {
	if v < -6 {
		return -6
	}
	if v > 6 {
		return 6
	}
	return v
}

// boostMultiplier is the fixed table from §4.2 step 6: stage 0 is 1x,
// each positive stage adds another half, each negative stage is the
// reciprocal of the corresponding positive one.
var boostMultiplier = [7][2]int64{
	{2, 2}, {3, 2}, {4, 2}, {5, 2}, {6, 2}, {7, 2}, {8, 2},
}

// StatBoostMultiplier returns the numerator/denominator pair for stage,
// where stage is already clamped to [-6, 6]. Positive stages read the
// table directly; negative stages invert it.
func StatBoostMultiplier(stage int) (num, den int64) {
	stage = Clamped(stage)
	if stage >= 0 {
		pair := boostMultiplier[stage]
		return pair[0], pair[1]
	}
	pair := boostMultiplier[-stage]
	return pair[1], pair[0]
}

// AccuracyBoostMultiplier returns the piecewise accuracy/evasion fraction
// from §4.4 step b: {+n: (3+n)/3, -n: 3/(3+n)}, for a stage already
// clamped to [-6, 6].
func AccuracyBoostMultiplier(stage int) (num, den int64) {
	stage = Clamped(stage)
	if stage >= 0 {
		return int64(3 + stage), 3
	}
	return 3, int64(3 - stage)
}

// MoveSlot is one of a mon's known moves together with its remaining/max
// PP and whether it is currently disabled.
type MoveSlot struct {
	MoveID  string
	PP      int
	MaxPP   int
	Disabled bool
}

// ReceivedAttack remembers one hit a mon took, for moves/effects that key
// off "the last attack I received" (e.g. a counter-like move).
type ReceivedAttack struct {
	Source Handle
	Damage int
	Turn   int
}

// TurnFlags are the per-turn bookkeeping fields reset at the start of
// every turn: whether the mon was damaged, whether its stats moved, its
// last-used move, and the attacks it received this exchange.
type TurnFlags struct {
	DamagedThisTurn     bool
	StatsRaisedThisTurn bool
	StatsLoweredThisTurn bool
	ItemUsedThisTurn    bool
	LastMove            string
	LastMoveUsed        string
	LastSelectedMove    string
	ReceivedAttacks     []ReceivedAttack
}

// Mon is one creature's full battle state. Persistent fields survive a
// switch-out; Active fields are reset by ResetActive when the mon leaves
// the field (§3's "Active (reset on switch out)" split).
type Mon struct {
	// Persistent
	SpeciesID       string
	Level           int
	Nature          *data.NatureData
	Gender          string
	IVs             data.StatTable
	EVs             data.StatTable
	Moves           []MoveSlot
	Friendship      int
	Ball            string
	OriginalTrainer bool
	Experience      int

	// Active
	HP              int
	MaxHP           int
	Types           []string
	Stats           data.StatTable
	CurrentMoves    []MoveSlot
	StatusID        string
	StatusState     *EffectState
	Volatiles       map[string]*EffectState
	Boosts          BoostTable
	AbilityID       string
	ItemID          string
	Transformed     bool
	Trapped         bool
	Fainted         bool
	Flags           TurnFlags

	// WeatherSuppressed caches whether an air-lock-like ability or an
	// umbrella-like item cancels weather for this mon; it is refreshed by
	// updateWeatherSuppression in effects.go, whose weather damage modifier
	// re-derives the same answer from the store and also honours this flag.
	WeatherSuppressed bool
}

// NewMon constructs a mon from persistent species/level/IV/EV/nature
// inputs, computing its active stat table and max HP immediately (§4.2
// step 6's stat computation, run once at construction and again whenever
// level or species change the inputs; boosts are applied at read time and
// never change the stored table).
func NewMon(speciesID string, level int, nature *data.NatureData, ivs, evs data.StatTable, sp *data.SpeciesData) *Mon {
	m := &Mon{
		SpeciesID:  speciesID,
		Level:      level,
		Nature:     nature,
		IVs:        ivs,
		EVs:        evs,
		Types:      append([]string(nil), sp.Types...),
		Volatiles:  make(map[string]*EffectState),
		Boosts:     make(BoostTable),
	}
	m.RecomputeStats(sp)
	m.HP = m.MaxHP
	return m
}

// RecomputeStats recalculates MaxHP and Stats from sp's base stats plus
// the mon's level/IVs/EVs/nature, preserving the current HP fraction the
// way a forme change or level-up recompute does elsewhere in the corpus
// (proportional HP carry-over, not a full heal).
func (m *Mon) RecomputeStats(sp *data.SpeciesData) {
	oldMax := m.MaxHP
	newMax := data.ComputeHP(sp.BaseStats.HP, m.IVs.HP, m.EVs.HP, m.Level)
	if oldMax > 0 && m.HP > 0 {
		m.HP = m.HP * newMax / oldMax
		if m.HP < 1 {
			m.HP = 1
		}
	}
	m.MaxHP = newMax
	m.Stats = data.StatTable{
		Atk:   data.ComputeStat(sp.BaseStats.Atk, m.IVs.Atk, m.EVs.Atk, m.Level, m.Nature, data.StatAtk),
		Def:   data.ComputeStat(sp.BaseStats.Def, m.IVs.Def, m.EVs.Def, m.Level, m.Nature, data.StatDef),
		SpAtk: data.ComputeStat(sp.BaseStats.SpAtk, m.IVs.SpAtk, m.EVs.SpAtk, m.Level, m.Nature, data.StatSpAtk),
		SpDef: data.ComputeStat(sp.BaseStats.SpDef, m.IVs.SpDef, m.EVs.SpDef, m.Level, m.Nature, data.StatSpDef),
		Spe:   data.ComputeStat(sp.BaseStats.Spe, m.IVs.Spe, m.EVs.Spe, m.Level, m.Nature, data.StatSpe),
	}
}

// EffectiveStat returns the stat value after the mon's current boost
// stage is applied, flooring per §4.2 step 6. ignoreBoost forces stage 0
// (critical-hit and boost-ignoring-move handling in formula.go).
func (m *Mon) EffectiveStat(s data.Stat, ignoreBoost bool) int64 {
	base := int64(m.Stats.Get(s))
	stage := 0
	if !ignoreBoost {
		stage = m.Boosts.Get(s)
	}
	num, den := StatBoostMultiplier(stage)
	return base * num / den
}

// ResetActive clears every field that does not survive a switch-out:
// status, volatiles, boosts, transformed forme, trapped flag, and
// per-turn flags. Species-derived fields (types, stats, moves) are
// restored by the caller re-deriving them from the persistent species
// record, matching §8's switch-out/switch-in round-trip law.
func (m *Mon) ResetActive() {
	m.StatusID = ""
	m.StatusState = nil
	m.Volatiles = make(map[string]*EffectState)
	m.Boosts = make(BoostTable)
	m.Transformed = false
	m.Trapped = false
	m.WeatherSuppressed = false
	m.Flags = TurnFlags{}
}

// HasType reports whether t (already normalised) is one of the mon's
// current types.
func (m *Mon) HasType(t string) bool {
	for _, mt := range m.Types {
		if mt == t {
			return true
		}
	}
	return false
}

// HPFraction returns the mon's current HP as num/maxHP, used by moves
// whose power scales with remaining health.
func (m *Mon) HPFraction() (num, den int64) {
	if m.MaxHP == 0 {
		return 0, 1
	}
	return int64(m.HP), int64(m.MaxHP)
}
