package battle

import (
	"fmt"
	"math"

	"battlesim/pkg/data"
)

// This file holds the primitives §4.5 lists but that touch a mon outside
// the move/turn loop proper: consuming a held item, transforming into
// another species, gaining experience and leveling up, and throwing a
// ball at a wild target. Each follows the same gate/apply/post shape as
// mutate.go's primitives.

// UseItem consumes target's held item, gated by TryUseItem (and, for a
// berry-like item, the additional TryEatItem gate) before it is removed
// and the Use/Eat event fires. eat distinguishes "use" from "eat" for
// items that are berries, since some handlers only care about one of the
// two (an Unnerve-like ability blocks eating, not using).
func (b *Battle) UseItem(target Handle, eat bool) Outcome {
	mon := b.Mon(target)
	if mon.ItemID == "" {
		return Outcome{Kind: OutcomeFailed, Reason: "no item"}
	}
	id := mon.ItemID

	useCtx := &Context{Battle: b, Event: EventTryUseItem, Target: target}
	if b.DispatchGate(useCtx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "use_item blocked"}
	}
	if eat {
		eatCtx := &Context{Battle: b, Event: EventTryEatItem, Target: target}
		if b.DispatchGate(eatCtx) != Advance {
			return Outcome{Kind: OutcomeFailed, Reason: "eat_item blocked"}
		}
	}

	b.TakeItem(target)
	mon.Flags.ItemUsedThisTurn = true

	event := EventUse
	if eat {
		event = EventEat
	}
	b.DispatchVoid(&Context{Battle: b, Event: event, Target: target}, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntryUseItem, F("mon", handleStr(target)), F("item", id))
	return Success()
}

// Transform overwrites target's species-derived fields (types, stats,
// ability) with source's, the way a Ditto-like move copies its opponent,
// dispatching SetSpecies and recomputing stats from the new base table.
func (b *Battle) Transform(target, source Handle, sp *data.SpeciesData) Outcome {
	targetMon := b.Mon(target)
	sourceMon := b.Mon(source)
	if targetMon.Transformed {
		return Outcome{Kind: OutcomeFailed, Reason: "already transformed"}
	}

	ctx := &Context{Battle: b, Event: EventSetSpecies, User: source, Target: target}
	b.DispatchVoid(ctx, StringValue(sp.ID))

	targetMon.Types = append([]string(nil), sourceMon.Types...)
	targetMon.AbilityID = sourceMon.AbilityID
	targetMon.Boosts = make(BoostTable)
	for stat, stage := range sourceMon.Boosts {
		targetMon.Boosts[stat] = stage
	}
	targetMon.RecomputeStats(sp)
	targetMon.Transformed = true

	b.Log.Emit(b.Field.Turn, EntryTransform, F("mon", handleStr(target)), F("into", sp.Name))
	return Success()
}

// expForLevel is the medium-fast experience curve (level^3), the
// simplest of the standard growth rates and the one used when a species
// carries no growth-rate override.
func expForLevel(level int) int {
	return level * level * level
}

// maxLevel is the highest level GainExperience will grow a mon to.
const maxLevel = 100

// GainExperience adds amount to target's experience total, dispatching
// ModifyExperience first so handlers (an experience-share, a lucky-egg
// item) can scale it, then levels target up for as long as its new total
// clears the next level's threshold.
func (b *Battle) GainExperience(target Handle, amount int, sp *data.SpeciesData) Outcome {
	mon := b.Mon(target)
	if mon.Level >= maxLevel {
		return Outcome{Kind: OutcomeFailed, Reason: "at max level"}
	}

	ctx := &Context{Battle: b, Event: EventModifyExperience, Target: target}
	modified := b.DispatchModify(ctx, IntValue(int64(amount)))
	amount = int(modified.Int)
	if amount <= 0 {
		return Outcome{Kind: OutcomeFailed, Reason: "no experience gained"}
	}

	mon.Experience += amount
	b.Log.Emit(b.Field.Turn, EntryExp, F("mon", handleStr(target)), F("exp", fmt.Sprintf("%d", amount)))

	leveled := false
	for mon.Level < maxLevel && mon.Experience >= expForLevel(mon.Level+1) {
		mon.Level++
		leveled = true
		b.Log.Emit(b.Field.Turn, EntryLevelUp, F("mon", handleStr(target)), F("level", fmt.Sprintf("%d", mon.Level)))
	}
	if leveled {
		mon.RecomputeStats(sp)
	}
	return Success()
}

// shakeProbability is the standard four-shake capture formula: a catch
// value derived from the target's catch rate and HP fraction, converted
// into a per-shake probability in [0, 65535/65536].
func shakeProbability(catchRate int, hpNum, hpDen int64, ballBonus float64) float64 {
	if hpDen == 0 {
		hpDen = 1
	}
	a := math.Floor(float64((3*hpDen-2*hpNum)*int64(catchRate)) * ballBonus / float64(3*hpDen))
	if a > 255 {
		a = 255
	}
	if a <= 0 {
		return 0
	}
	b := math.Floor(1048560.0 / math.Sqrt(math.Sqrt(16711680.0/a)))
	return b / 65536.0
}

// AttemptCatch runs the standard four-shake capture check against
// target, gated by ModifyCatchRate so handlers (a guaranteed-catch
// ball-like item) can override the species' base rate outright.
// Uncatchable species (CatchRate == 0) never succeed.
func (b *Battle) AttemptCatch(target Handle, sp *data.SpeciesData, ballBonus float64) Outcome {
	if sp.CatchRate <= 0 {
		b.Log.Emit(b.Field.Turn, EntryUncatchable, F("mon", handleStr(target)))
		return Outcome{Kind: OutcomeFailed, Reason: "uncatchable"}
	}

	rateCtx := &Context{Battle: b, Event: EventModifyCatchRate, Target: target}
	rate := int(b.DispatchModify(rateCtx, IntValue(int64(sp.CatchRate))).Int)

	mon := b.Mon(target)
	hpNum, hpDen := mon.HPFraction()
	p := shakeProbability(rate, hpNum, hpDen, ballBonus)

	for shake := 0; shake < 4; shake++ {
		if !b.RNG.Chance(int(p*65536), 65536) {
			b.Log.Emit(b.Field.Turn, EntryCatchFailed, F("mon", handleStr(target)), F("shakes", fmt.Sprintf("%d", shake)))
			return Outcome{Kind: OutcomeFailed, Reason: "broke free"}
		}
	}
	b.Log.Emit(b.Field.Turn, EntryCatch, F("mon", handleStr(target)))
	return Success()
}
