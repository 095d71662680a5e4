package battle

import (
	"battlesim/pkg/data"
	"battlesim/pkg/numeric"
)

// FormulaActor is the narrow view of an attacker or defender the formula
// needs: a way to read each stat's pre-boost value as a Range (a
// degenerate single-value range for the live engine, a real span when
// individual/effort values are not pinned down for the calculator), plus
// the handful of scalar facts the formula's steps read. It exists so
// §4.2's sixteen steps are written exactly once and exercised by both the
// calculator (built from a CalcMon) and the live engine (built from a
// *Mon already on the field).
type FormulaActor struct {
	StatRange         func(data.Stat) numeric.Range
	Boosts            BoostTable
	Types             []string
	AbilityID         string
	ItemID            string
	StatusID          string
	Level             int
	WeatherSuppressed bool
	HPNum, HPDen      int64
	MaxHP             int64
}

// ActorFromMon builds a FormulaActor reading a live, fully-known mon's
// state; used by the live engine.
func ActorFromMon(m *Mon) FormulaActor {
	return FormulaActor{
		StatRange: func(s data.Stat) numeric.Range {
			return numeric.Single(int64(m.Stats.Get(s)))
		},
		Boosts:            m.Boosts,
		Types:             m.Types,
		AbilityID:         m.AbilityID,
		ItemID:            m.ItemID,
		StatusID:          m.StatusID,
		Level:             m.Level,
		WeatherSuppressed: m.WeatherSuppressed,
		HPNum:             int64(m.HP),
		HPDen:             int64(m.MaxHP),
		MaxHP:             int64(m.MaxHP),
	}
}

// modifyEventForStat returns the event a boosted stat read dispatches
// through, so the same four/five-way switch isn't duplicated at each call
// site in computeDamage.
func modifyEventForStat(s data.Stat) EventType {
	switch s {
	case data.StatAtk:
		return EventModifyAtk
	case data.StatDef:
		return EventModifyDef
	case data.StatSpAtk:
		return EventModifySpA
	case data.StatSpDef:
		return EventModifySpD
	case data.StatSpe:
		return EventModifySpe
	default:
		return EventModifyAtk
	}
}

// boostStage returns the effective boost stage the formula reads for
// stat, honoring the critical-hit rule from §4.2 step 5: a crit clamps
// the attacker's negative boosts and the defender's positive boosts to 0
// for the attack/defense read only.
func boostStage(a FormulaActor, stat data.Stat, crit, isAttacker bool) int {
	stage := a.Boosts.Get(stat)
	if crit {
		if isAttacker && stage < 0 {
			return 0
		}
		if !isAttacker && stage > 0 {
			return 0
		}
	}
	return stage
}

// divRangeByRange divides a by b endpoint-wise, assuming both ranges are
// strictly positive — true for every stat range the formula ever builds.
func divRangeByRange(a, b numeric.Range) numeric.Range {
	lo := a.Min / b.Max
	hi := a.Max / b.Min
	return numeric.NewRange(lo, hi)
}

// DamageRequest is the shared input to one hit's damage computation.
// Battle/User/Target give computeDamage a live hook-dispatch surface: the
// live engine passes its real *Battle and the two mons' handles, the
// calculator passes a scratch battle built around the same two mons
// (calculator.go's newScratchBattle) so ability/item/status-gated
// handlers run identically in both modes.
type DamageRequest struct {
	Attacker  FormulaActor
	Defender  FormulaActor
	Move      *data.MoveData
	MoveType  string
	Crit      bool
	Spread    bool
	Weather   string
	TypeChart *data.TypeChart
	Battle    *Battle
	User      Handle
	Target    Handle
}

// DamageResult is the shared output §6 calls MultiHit.per_hit.
type DamageResult struct {
	BasePower     int64
	Attack        numeric.Output[numeric.Range]
	Defense       numeric.Output[numeric.Range]
	Effectiveness numeric.Output[numeric.Fraction]
	Damage        numeric.Output[numeric.RangeDistribution]
	Recoil        numeric.Range
	Drain         numeric.Range
	Heal          numeric.Range
	Reason        string
}

// statPair returns the offensive/defensive Stat this move's category
// reads, honoring the physical→Atk/Def, special→SpAtk/SpDef split.
func statPair(move *data.MoveData) (off, def data.Stat) {
	if move.Category == data.CategorySpecial {
		return data.StatSpAtk, data.StatSpDef
	}
	return data.StatAtk, data.StatDef
}

// effectivenessFraction converts a clamped effectiveness exponent into
// the 2^exponent multiplier, per §4.2 step 13.
func effectivenessFraction(exponent int) numeric.Fraction {
	if exponent >= 0 {
		return numeric.NewFraction(uint64(1)<<uint(exponent), 1)
	}
	return numeric.NewFraction(1, uint64(1)<<uint(-exponent))
}

// computeDamage runs §4.2 steps 4-16. Steps 1-3 (immunity / fail-before-hit
// / fixed damage) are the caller's responsibility since they can skip the
// rest of the pipeline entirely; randomize turns the pre-randomization
// Range into the bucketed distribution the remaining steps operate on —
// the calculator expands all sixteen buckets, the live engine collapses
// to the one bucket its drawn roll selected.
func computeDamage(req DamageRequest, randomize func(numeric.Range) numeric.RangeDistribution) DamageResult {
	offStat, defStat := statPair(req.Move)
	b := req.Battle

	// dispatchModify runs event through b.Hooks when a battle is attached,
	// and is the identity otherwise — every hook-dispatch call below
	// degrades to the pre-hook formula when no handler is registered for
	// that event, which is the common case for an ordinary matchup.
	dispatchModify := func(event EventType, in Value) Value {
		if b == nil {
			return in
		}
		ctx := &Context{Battle: b, Event: event, User: req.User, Target: req.Target, Move: req.Move, Crit: req.Crit}
		return b.DispatchModify(ctx, in)
	}

	attackRange := req.Attacker.StatRange(offStat)
	atkStage := boostStage(req.Attacker, offStat, req.Crit, true)
	atkNum, atkDen := StatBoostMultiplier(atkStage)
	attackRange = attackRange.MulFraction(numeric.NewFraction(uint64(atkNum), uint64(atkDen)))
	attackRange = dispatchModify(modifyEventForStat(offStat), RangeValue(attackRange)).Range
	attack := numeric.NewOutput(attackRange)

	defenseRange := req.Defender.StatRange(defStat)
	defStage := boostStage(req.Defender, defStat, req.Crit, false)
	defNum, defDen := StatBoostMultiplier(defStage)
	defenseRange = defenseRange.MulFraction(numeric.NewFraction(uint64(defNum), uint64(defDen)))
	defenseRange = dispatchModify(modifyEventForStat(defStat), RangeValue(defenseRange)).Range
	defense := numeric.NewOutput(defenseRange)

	basePower := dispatchModify(EventBasePower, IntValue(int64(req.Move.BasePower))).Int

	lvlFactor := int64(2*req.Attacker.Level/5) + 2
	pre := numeric.Single(lvlFactor).MulScalar(basePower)
	pre = pre.Mul(attack.Value)
	pre = divRangeByRange(pre, defense.Value)
	pre = pre.DivScalar(50)
	pre = pre.AddScalar(2)

	if req.Spread {
		pre = pre.MulFraction(numeric.NewFraction(3, 4))
	}

	beforeWeather := pre
	pre = dispatchModify(EventModifyDamageFromWeather, RangeValue(pre)).Range
	weatherApplied := pre != beforeWeather

	if req.Crit {
		pre = pre.MulFraction(numeric.NewFraction(3, 2))
	}

	dist := randomize(pre)
	damage := numeric.NewOutput(dist)
	damage = damage.With("random-roll", "random", dist)

	if weatherApplied {
		damage = damage.With("weather", req.Weather, damage.Value)
	}
	if req.Crit {
		damage = damage.With("x3/2", "crit", damage.Value)
	}

	stab := false
	for _, t := range req.Attacker.Types {
		if t == req.MoveType {
			stab = true
			break
		}
	}
	if stab && !req.Move.NoStab && !req.Move.Typeless {
		damage = numeric.Transform(damage, "x3/2", "stab", func(d numeric.RangeDistribution) numeric.RangeDistribution {
			return d.MulFraction(numeric.NewFraction(3, 2))
		})
	}

	exponent := 0
	effReason := ""
	immune := false
	if !req.Move.Typeless {
		for _, dt := range req.Defender.Types {
			e := req.TypeChart.Effectiveness(req.MoveType, dt)
			if e == data.EffectivenessImmune {
				immune = true
				break
			}
			exponent += int(e)
			switch e {
			case data.EffectivenessStrong:
				effReason = "super effective against " + dt
			case data.EffectivenessWeak:
				effReason = "not very effective against " + dt
			}
		}
	}
	if immune {
		return DamageResult{Reason: "immune"}
	}
	exponent = int(dispatchModify(EventModifyTypeEffectiveness, IntValue(int64(exponent))).Int)
	if exponent > 6 {
		exponent = 6
	}
	if exponent < -6 {
		exponent = -6
	}
	effFrac := effectivenessFraction(exponent)
	effFrac = dispatchModify(EventEffectiveness, FracValue(effFrac)).Frac
	effOut := numeric.NewOutput(effFrac)
	if exponent != 0 {
		effOut = effOut.With("x"+effFrac.String(), effReason, effFrac)
	}

	damage = numeric.Transform(damage, "x"+effFrac.String(), effReason, func(d numeric.RangeDistribution) numeric.RangeDistribution {
		return d.MulFraction(effFrac)
	})

	damage = numeric.Transform(damage, "modify-damage", "hooks", func(d numeric.RangeDistribution) numeric.RangeDistribution {
		return dispatchModify(EventModifyDamage, DistValue(d)).Dist
	})

	damage = numeric.Transform(damage, "floor, min 1", "clamp", func(d numeric.RangeDistribution) numeric.RangeDistribution {
		return d.ClampMin(1)
	})

	var recoil, drain, heal numeric.Range
	finalReduced := damage.Value.Reduce()
	if req.Move.Recoil != nil {
		recoil = finalReduced.MulFraction(numeric.NewFraction(uint64(req.Move.Recoil.Num), uint64(req.Move.Recoil.Den)))
	}
	if req.Move.Drain != nil {
		drain = finalReduced.MulFraction(numeric.NewFraction(uint64(req.Move.Drain.Num), uint64(req.Move.Drain.Den)))
	}
	if req.Move.Hit != nil && req.Move.Hit.HealPercent != 0 {
		heal = numeric.Single(req.Defender.MaxHP * int64(req.Move.Hit.HealPercent) / 100)
	}

	return DamageResult{
		BasePower:     basePower,
		Attack:        attack,
		Defense:       defense,
		Effectiveness: effOut,
		Damage:        damage,
		Recoil:        recoil,
		Drain:         drain,
		Heal:          heal,
	}
}

// ComputeDamageCalc runs the formula in calculator mode: the
// pre-randomization Range is expanded into the full 16-bucket
// distribution (§4.2 step 11, calculator variant).
func ComputeDamageCalc(req DamageRequest) DamageResult {
	return computeDamage(req, expandRangeToDistribution)
}

// ComputeDamageLive runs the formula in live-engine mode: one bucket is
// drawn from rng and the rest of the pipeline runs against that single
// selected value, collapsed into a length-one distribution so the exact
// same downstream code (STAB, type effectiveness, final modifiers) applies
// without a second implementation.
func ComputeDamageLive(req DamageRequest, rng *RNG) DamageResult {
	idx := rng.RandomDamageFactorIndex()
	factor := numeric.RandomDamageFactors()[idx]
	return computeDamage(req, func(r numeric.Range) numeric.RangeDistribution {
		return numeric.NewRangeDistribution([]numeric.Range{r.MulFraction(factor)})
	})
}

// expandRangeToDistribution applies each of the sixteen random-damage
// factors to r, producing the calculator's full bucket set.
func expandRangeToDistribution(r numeric.Range) numeric.RangeDistribution {
	factors := numeric.RandomDamageFactors()
	buckets := make([]numeric.Range, len(factors))
	for i, f := range factors {
		buckets[i] = r.MulFraction(f)
	}
	return numeric.NewRangeDistribution(buckets)
}

// ComputeFixedDamage resolves §4.2 step 3's fixed-damage rules. ok is
// false for FixedOHKO when blocked by the level-difference rule.
func ComputeFixedDamage(rule *data.FixedDamageRule, attackerLevel int, defenderHP, defenderLevel int) (amount int, ok bool) {
	switch rule.Kind {
	case data.FixedConstant:
		return rule.Amount, true
	case data.FixedLevelDamage:
		return attackerLevel, true
	case data.FixedEndeavor:
		return defenderHP, true
	case data.FixedOHKO:
		if attackerLevel < defenderLevel {
			return 0, false
		}
		return defenderHP, true
	default:
		return 0, true
	}
}
