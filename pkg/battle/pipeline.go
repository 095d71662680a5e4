package battle

import (
	"fmt"

	"battlesim/pkg/data"
	"battlesim/pkg/numeric"
)

// ResolveTargets turns a move's declared target class into a concrete
// handle list (§4.4 step 2). user is excluded from foe-side/adjacent
// resolutions; TargetSelf/TargetAllyTeam/TargetOwnSide resolve against
// user's own side.
func ResolveTargets(b *Battle, user Handle, move *data.MoveData, requested Handle) []Handle {
	switch move.Target {
	case data.TargetSelf:
		return []Handle{user}
	case data.TargetNormal, data.TargetRandomNormal:
		if !requested.IsNil() {
			if mon := b.Mon(requested); !mon.Fainted {
				return []Handle{requested}
			}
		}
		return firstLegalFoe(b, user)
	case data.TargetAllAdjacentFoes, data.TargetFoeSide:
		return allFoes(b, user)
	case data.TargetAllAdjacent:
		out := allFoes(b, user)
		return append(out, allies(b, user)...)
	case data.TargetAllyTeam, data.TargetOwnSide:
		return allies(b, user)
	case data.TargetAdjacentAlly:
		allyList := allies(b, user)
		if len(allyList) > 0 {
			return allyList[:1]
		}
		return nil
	case data.TargetField:
		return nil
	default:
		return firstLegalFoe(b, user)
	}
}

func firstLegalFoe(b *Battle, user Handle) []Handle {
	for _, sideIdx := range b.Field.OpposingSides(user.SideIdx) {
		for _, h := range b.Side(sideIdx).Active {
			if h.IsNil() {
				continue
			}
			if !b.Mon(h).Fainted {
				return []Handle{h}
			}
		}
	}
	return nil
}

func allFoes(b *Battle, user Handle) []Handle {
	var out []Handle
	for _, sideIdx := range b.Field.OpposingSides(user.SideIdx) {
		for _, h := range b.Side(sideIdx).Active {
			if !h.IsNil() && !b.Mon(h).Fainted {
				out = append(out, h)
			}
		}
	}
	return out
}

func allies(b *Battle, user Handle) []Handle {
	var out []Handle
	for _, h := range b.Side(user.SideIdx).Active {
		if !h.IsNil() && h != user && !b.Mon(h).Fainted {
			out = append(out, h)
		}
	}
	return out
}

// MoveResult summarises one executed move action: the outcome against
// every target it actually struck, and the total damage dealt across all
// of them.
type MoveResult struct {
	PerTarget   map[Handle]Outcome
	TotalDamage int
	HitCount    int
	Failed      bool
	FailReason  string
}

// ExecuteMove runs §4.4 end to end for one move action.
func ExecuteMove(b *Battle, user Handle, move *data.MoveData, requestedTarget Handle) MoveResult {
	result := MoveResult{PerTarget: make(map[Handle]Outcome)}

	beforeCtx := &Context{Battle: b, Event: EventBeforeMove, User: user, Move: move}
	if b.DispatchGate(beforeCtx) != Advance {
		result.Failed = true
		result.FailReason = "cannot"
		b.Log.Emit(b.Field.Turn, EntryFail, F("mon", handleStr(user)), F("reason", "cannot"))
		return result
	}

	userMon := b.Mon(user)
	userMon.Flags.LastMoveUsed = move.ID
	b.Log.Emit(b.Field.Turn, EntryMove, F("mon", handleStr(user)), F("move", move.Name))

	tryCtx := &Context{Battle: b, Event: EventTryMove, User: user, Move: move}
	if b.DispatchGate(tryCtx) != Advance {
		result.Failed = true
		b.Log.Emit(b.Field.Turn, EntryFail, F("mon", handleStr(user)))
		return result
	}

	targets := ResolveTargets(b, user, move, requestedTarget)
	if len(targets) == 0 {
		result.Failed = true
		b.Log.Emit(b.Field.Turn, EntryFail, F("mon", handleStr(user)), F("reason", "no target"))
		return result
	}

	hits := 1
	if move.HitsMax > 1 {
		min := move.HitsMin
		if min == 0 {
			min = move.HitsMax
		}
		hits = b.RNG.MultiHitCount(min, move.HitsMax)
	}

	spread := len(targets) > 1

	for hitIdx := 0; hitIdx < hits; hitIdx++ {
		for _, target := range targets {
			outcome := executeOneHit(b, user, target, move, spread, hitIdx)
			result.PerTarget[target] = Combine(result.PerTarget[target], outcome)
			if outcome.Kind == OutcomeDamage {
				result.TotalDamage += outcome.Damage
			}
		}
	}
	result.HitCount = hits

	if move.HitsMax > 1 {
		b.Log.Emit(b.Field.Turn, EntryHitCount, F("hits", fmt.Sprintf("%d", hits)))
	}

	if move.Self != nil {
		applyHitEffect(b, user, user, move.Self)
	}

	afterCtx := &Context{Battle: b, Event: EventAfterMove, User: user, Move: move}
	b.DispatchVoid(afterCtx, Value{})

	return result
}

// executeOneHit runs §4.4 step 5 for a single (hit, target) pair.
func executeOneHit(b *Battle, user, target Handle, move *data.MoveData, spread bool, hitIdx int) Outcome {
	targetMon := b.Mon(target)
	if targetMon.Fainted {
		return Outcome{Kind: OutcomeSkipped}
	}

	tryHitCtx := &Context{Battle: b, Event: EventTryHit, User: user, Target: target, Move: move, HitIndex: hitIdx}
	if b.DispatchGate(tryHitCtx) != Advance {
		return Outcome{Kind: OutcomeFailed}
	}

	if move.Accuracy > 0 {
		userMon := b.Mon(user)
		accNum, accDen := AccuracyBoostMultiplier(userMon.Boosts.Get(data.StatAccuracy))
		evaNum, evaDen := AccuracyBoostMultiplier(-targetMon.Boosts.Get(data.StatEvasion))
		chanceNum := int64(move.Accuracy) * accNum * evaDen
		chanceDen := int64(100) * accDen * evaNum
		chance := numeric.NewFraction(uint64(chanceNum), uint64(chanceDen))
		accCtx := &Context{Battle: b, Event: EventModifyAccuracy, User: user, Target: target, Move: move, HitIndex: hitIdx}
		chance = b.DispatchModify(accCtx, FracValue(chance)).Frac
		if !b.RNG.Chance(int(chance.Num), int(chance.Den)) {
			b.Log.Emit(b.Field.Turn, EntryMiss, F("mon", handleStr(target)))
			return Outcome{Kind: OutcomeFailed, Reason: "missed"}
		}
	}

	immuneCtx := &Context{Battle: b, Event: EventImmunity, User: user, Target: target, Move: move}
	if b.DispatchGate(immuneCtx) != Advance {
		b.Log.Emit(b.Field.Turn, EntryImmune, F("mon", handleStr(target)))
		return Immune("immune")
	}

	critCtx := &Context{Battle: b, Event: EventModifyCritRatio, User: user, Target: target, Move: move}
	critRatio := move.CritRatio
	critVal := b.DispatchModify(critCtx, IntValue(int64(critRatio)))
	crit := rollCrit(b, int(critVal.Int))
	if crit {
		b.Log.Emit(b.Field.Turn, EntryCrit, F("mon", handleStr(target)))
	}

	if move.Fixed != nil {
		targetMonHP := targetMon.HP
		amt, ok := ComputeFixedDamage(move.Fixed, b.Mon(user).Level, targetMonHP, b.Mon(target).Level)
		if !ok {
			b.Log.Emit(b.Field.Turn, EntryImmune, F("mon", handleStr(target)))
			return Immune("ohko blocked")
		}
		return b.Damage(user, target, amt, "fixed")
	}

	req := DamageRequest{
		Attacker:  ActorFromMon(b.Mon(user)),
		Defender:  ActorFromMon(targetMon),
		Move:      move,
		MoveType:  data.NormalizeID(move.Type),
		Crit:      crit,
		Spread:    spread,
		Weather:   b.Field.Weather,
		TypeChart: b.Store.TypeChart(),
		Battle:    b,
		User:      user,
		Target:    target,
	}
	dr := ComputeDamageLive(req, b.RNG)
	if dr.Reason == "immune" {
		b.Log.Emit(b.Field.Turn, EntryImmune, F("mon", handleStr(target)))
		return Immune("immune")
	}

	reduced := dr.Damage.Value.Reduce()
	amount := int(reduced.Min)

	outcome := b.Damage(user, target, amount, "")
	recordReceivedAttack(targetMon, user, amount, b.Field.Turn)

	if move.Hit != nil {
		applyHitEffect(b, user, target, move.Hit)
	}
	for _, sec := range move.Secondary {
		if b.RNG.Chance(sec.Chance, sec.ChanceDen) {
			dest := target
			if sec.Self {
				dest = user
			}
			applyHitEffect(b, user, dest, &sec.Effect)
		}
	}

	if dr.Recoil.Max > 0 {
		b.Damage(user, user, int(dr.Recoil.Max), "recoil")
	}
	if dr.Drain.Max > 0 {
		b.Heal(user, int(dr.Drain.Max))
	}

	return outcome
}

func rollCrit(b *Battle, ratio int) bool {
	switch ratio {
	case 0:
		return b.RNG.Chance(1, 16)
	case 1:
		return b.RNG.Chance(1, 8)
	case 2:
		return b.RNG.Chance(1, 2)
	default:
		return true
	}
}

func recordReceivedAttack(mon *Mon, source Handle, damage, turn int) {
	mon.Flags.ReceivedAttacks = append(mon.Flags.ReceivedAttacks, ReceivedAttack{
		Source: source, Damage: damage, Turn: turn,
	})
}

// applyHitEffect applies a HitEffect's components in the fixed order §5
// requires: boosts -> heal -> status -> volatile -> side condition ->
// slot condition -> weather -> terrain -> pseudo-weather -> force-switch.
func applyHitEffect(b *Battle, source, target Handle, eff *data.HitEffectData) {
	if len(eff.Boosts) > 0 {
		b.Boost(source, target, eff.Boosts)
	}
	if eff.HealPercent != 0 {
		mon := b.Mon(target)
		amount := mon.MaxHP * eff.HealPercent / 100
		if amount > 0 {
			b.Heal(target, amount)
		}
	}
	if eff.Status != "" {
		b.SetStatus(source, target, eff.Status)
	}
	if eff.Volatile != "" {
		b.TryAddVolatile(source, target, eff.Volatile)
	}
	if eff.SideCondition != "" {
		b.AddSideCondition(target.SideIdx, eff.SideCondition)
	}
	if eff.SlotCondition != "" {
		if slot := b.Side(target.SideIdx).ActiveSlot(target); slot >= 0 {
			b.AddSlotCondition(target.SideIdx, slot, eff.SlotCondition)
		}
	}
	if eff.Weather != "" {
		b.SetWeather(source, eff.Weather)
	}
	if eff.Terrain != "" {
		b.SetTerrain(source, eff.Terrain)
	}
	if eff.PseudoWeather != "" {
		b.AddPseudoWeather(source, eff.PseudoWeather)
	}
	if eff.ForceSwitch {
		mon := b.Mon(target)
		mon.Volatiles["mustswitch"] = NewEffectState("mustswitch", source, target, b.Field.Turn)
	}
}
