package battle

import (
	"fmt"

	"battlesim/pkg/data"
	"battlesim/pkg/numeric"
)

// CalcMon is the attacker/defender shape the calculator's external
// interface takes (§6): a species, level, nature, optional individual and
// effort values (nil means "not supplied", i.e. the full legal range
// applies), boosts, ability/item/status, an optional type override and a
// current-health fraction.
type CalcMon struct {
	Species       *data.SpeciesData
	Level         int
	Nature        *data.NatureData
	IVs           *data.StatTable
	EVs           *data.StatTable
	Boosts        BoostTable
	AbilityID     string
	ItemID        string
	StatusID      string
	Volatiles     map[string]bool
	TypesOverride []string
	HPNum, HPDen  int64 // current health fraction; HPDen == 0 means "at full health"
}

// Types returns the override if set, otherwise the species' own types.
func (c *CalcMon) Types() []string {
	if c.TypesOverride != nil {
		return c.TypesOverride
	}
	return c.Species.Types
}

func calcStatRange(c *CalcMon, stat data.Stat) numeric.Range {
	base := c.Species.BaseStats.Get(stat)
	ivMin, ivMax := data.IVMin, data.IVMax
	evMin, evMax := data.EVMin, data.EVMax
	if c.IVs != nil {
		v := c.IVs.Get(stat)
		ivMin, ivMax = v, v
	}
	if c.EVs != nil {
		v := c.EVs.Get(stat)
		evMin, evMax = v, v
	}
	if ivMin == ivMax && evMin == evMax {
		v := int64(data.ComputeStat(base, ivMin, evMin, c.Level, c.Nature, stat))
		return numeric.Single(v)
	}
	lo := data.ComputeStat(base, ivMin, evMin, c.Level, c.Nature, stat)
	hi := data.ComputeStat(base, ivMax, evMax, c.Level, c.Nature, stat)
	return numeric.NewRange(int64(lo), int64(hi))
}

func calcHPRange(c *CalcMon) numeric.Range {
	ivMin, ivMax := data.IVMin, data.IVMax
	evMin, evMax := data.EVMin, data.EVMax
	if c.IVs != nil {
		ivMin, ivMax = c.IVs.HP, c.IVs.HP
	}
	if c.EVs != nil {
		evMin, evMax = c.EVs.HP, c.EVs.HP
	}
	if ivMin == ivMax && evMin == evMax {
		v := int64(data.ComputeHP(c.Species.BaseStats.HP, ivMin, evMin, c.Level))
		return numeric.Single(v)
	}
	lo := data.ComputeHP(c.Species.BaseStats.HP, ivMin, evMin, c.Level)
	hi := data.ComputeHP(c.Species.BaseStats.HP, ivMax, evMax, c.Level)
	return numeric.NewRange(int64(lo), int64(hi))
}

// currentHP returns the defender's concrete current HP, derived from its
// health fraction against the worst (largest) end of its max-HP range
// when that range is uncertain.
func currentHP(c *CalcMon) int64 {
	maxHP := calcHPRange(c).Max
	if c.HPDen == 0 {
		return maxHP
	}
	return int64(numeric.FractionFromInt(uint64(maxHP)).Mul(numeric.NewFraction(uint64(c.HPNum), uint64(c.HPDen))).Floor())
}

// ActorFromCalcMon builds a FormulaActor from a calculator-supplied mon.
func ActorFromCalcMon(c *CalcMon) FormulaActor {
	return FormulaActor{
		StatRange: func(s data.Stat) numeric.Range { return calcStatRange(c, s) },
		Boosts:    c.Boosts,
		Types:     c.Types(),
		AbilityID: c.AbilityID,
		ItemID:    c.ItemID,
		StatusID:  c.StatusID,
		Level:     c.Level,
		HPNum:     c.HPNum,
		HPDen:     c.HPDen,
		MaxHP:     calcHPRange(c).Max,
	}
}

// CalcRequest is the full calculator input (§6).
type CalcRequest struct {
	Store     data.Store
	Weather   string
	Terrain   string
	Attacker  *CalcMon
	Defender  *CalcMon
	MoveID    string
	Crit      bool
	Spread    bool
}

// MultiHit is the calculator's output (§6): one DamageResult per hit plus
// the defender's max-HP range.
type MultiHit struct {
	PerHit        []DamageResult
	TargetHPRange numeric.Range
}

// newScratchBattle builds a throwaway single battle around the
// calculator's two mons, used purely as a hook-dispatch surface: its
// stat math is never consulted (calcStatRange/calcHPRange do that job),
// only its field weather/terrain and its two mons' ability/item/status
// are, so the calculator exercises exactly the same Handler chain the
// live engine does instead of a parallel hook-free code path.
func newScratchBattle(req CalcRequest) (*Battle, Handle, Handle) {
	field := NewSingleBattleField()
	field.Weather = req.Weather
	field.Terrain = req.Terrain
	b := NewBattle(field, req.Store, 0)

	attackerMon := &Mon{AbilityID: req.Attacker.AbilityID, ItemID: req.Attacker.ItemID, StatusID: req.Attacker.StatusID, Types: req.Attacker.Types()}
	defenderMon := &Mon{AbilityID: req.Defender.AbilityID, ItemID: req.Defender.ItemID, StatusID: req.Defender.StatusID, Types: req.Defender.Types()}

	userHandle := PlaceMon(field, 0, 0, attackerMon)
	targetHandle := PlaceMon(field, 1, 0, defenderMon)
	updateWeatherSuppression(b, userHandle)
	updateWeatherSuppression(b, targetHandle)
	return b, userHandle, targetHandle
}

// Calculate runs the calculator end to end against req, dispatching
// through a scratch battle's hook registry and expanding multi-hit moves
// into one DamageResult per declared hit (all identical, since the
// calculator works from one frozen snapshot rather than a sequence of
// live turns).
func Calculate(req CalcRequest) (*MultiHit, error) {
	move, err := req.Store.Move(req.MoveID)
	if err != nil {
		return nil, err
	}

	attacker := ActorFromCalcMon(req.Attacker)
	defender := ActorFromCalcMon(req.Defender)
	scratch, userHandle, targetHandle := newScratchBattle(req)

	targetHPRange := calcHPRange(req.Defender)

	if move.Fixed != nil {
		amt, ok := ComputeFixedDamage(move.Fixed, req.Attacker.Level, int(currentHP(req.Defender)), req.Defender.Level)
		if !ok {
			return &MultiHit{
				PerHit:        []DamageResult{{Reason: "immune"}},
				TargetHPRange: targetHPRange,
			}, nil
		}
		dr := numeric.Single(int64(amt))
		dist := numeric.NewOutput(numeric.NewRangeDistribution([]numeric.Range{dr}))
		dist = dist.With(fmt.Sprintf("=[[%d,%d]]", amt, amt), "fixed", dist.Value)
		return &MultiHit{
			PerHit:        []DamageResult{{Damage: dist}},
			TargetHPRange: targetHPRange,
		}, nil
	}

	hits := 1
	if move.HitsMax > 1 {
		hits = move.HitsMax
	}

	tc := req.Store.TypeChart()
	perHit := make([]DamageResult, hits)
	for i := 0; i < hits; i++ {
		result := ComputeDamageCalc(DamageRequest{
			Attacker:  attacker,
			Defender:  defender,
			Move:      move,
			MoveType:  data.NormalizeID(move.Type),
			Crit:      req.Crit,
			Spread:    req.Spread,
			Weather:   req.Weather,
			TypeChart: tc,
			Battle:    scratch,
			User:      userHandle,
			Target:    targetHandle,
		})
		perHit[i] = result
	}

	return &MultiHit{PerHit: perHit, TargetHPRange: targetHPRange}, nil
}
