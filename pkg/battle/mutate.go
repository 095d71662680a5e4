package battle

import (
	"fmt"

	"battlesim/pkg/data"
)

// Each function in this file is one of the exposed state-mutation
// primitives from §4.5. A primitive that has a gate event runs it first
// and applies the change only if the gate advances; a denied gate leaves
// state untouched and returns Failed. Damage, RemoveVolatile, the side and
// slot condition primitives, ClearWeather, ClearTerrain, AddPseudoWeather,
// SetAbility, SetItem and TakeItem have no gate and apply unconditionally.
// Every primitive except the slot condition ones emits a log entry.

// Damage reduces target's HP by amount (already final, floored, clamped
// damage from the formula) and runs the DamagingHit event after. No gate
// event runs before the damage is applied. amount is clamped so HP never
// goes negative.
func (b *Battle) Damage(source, target Handle, amount int, reason string) Outcome {
	mon := b.Mon(target)
	if mon.Fainted {
		return Outcome{Kind: OutcomeFailed, Reason: "fainted"}
	}
	if amount > mon.HP {
		amount = mon.HP
	}
	mon.HP -= amount
	mon.Flags.DamagedThisTurn = true
	if mon.HP <= 0 {
		mon.HP = 0
		mon.Fainted = true
	}
	b.Log.Emit(b.Field.Turn, EntryDamage, F("mon", handleStr(target)), F("hp", fmt.Sprintf("%d/%d", mon.HP, mon.MaxHP)))
	if mon.Fainted {
		b.Log.Emit(b.Field.Turn, EntryFaint, F("mon", handleStr(target)))
	}
	dctx := &Context{Battle: b, Event: EventDamagingHit, User: source, Target: target}
	b.DispatchVoid(dctx, IntValue(int64(amount)))
	return Damage(amount)
}

// Heal restores target's HP by amount, gated by TryHeal (heal percentages
// are computed by the pipeline before this primitive runs); HP is clamped
// to MaxHP.
func (b *Battle) Heal(target Handle, amount int) Outcome {
	mon := b.Mon(target)
	if mon.Fainted {
		return Outcome{Kind: OutcomeFailed, Reason: "fainted"}
	}
	ctx := &Context{Battle: b, Event: EventTryHeal, Target: target}
	if b.DispatchGate(ctx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "heal blocked"}
	}
	mon.HP += amount
	if mon.HP > mon.MaxHP {
		mon.HP = mon.MaxHP
	}
	b.Log.Emit(b.Field.Turn, EntryHeal, F("mon", handleStr(target)), F("hp", fmt.Sprintf("%d/%d", mon.HP, mon.MaxHP)))
	return Success()
}

// Boost applies a set of stage deltas to target, clamping the result into
// [-6, 6] per stat (§3 invariant), gated by ChangeBoosts/TryBoost.
func (b *Battle) Boost(source, target Handle, deltas map[data.Stat]int) Outcome {
	changeCtx := &Context{Battle: b, Event: EventChangeBoosts, User: source, Target: target}
	if b.DispatchGate(changeCtx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "boost blocked"}
	}
	ctx := &Context{Battle: b, Event: EventTryBoost, User: source, Target: target}
	if b.DispatchGate(ctx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "boost blocked"}
	}
	mon := b.Mon(target)
	for stat, delta := range deltas {
		next := Clamped(mon.Boosts.Get(stat) + delta)
		mon.Boosts[stat] = next
		if delta > 0 {
			mon.Flags.StatsRaisedThisTurn = true
			b.Log.Emit(b.Field.Turn, EntryBoost, F("mon", handleStr(target)), F("stat", stat.String()), F("by", fmt.Sprintf("%d", delta)))
		} else if delta < 0 {
			mon.Flags.StatsLoweredThisTurn = true
			b.Log.Emit(b.Field.Turn, EntryUnboost, F("mon", handleStr(target)), F("stat", stat.String()), F("by", fmt.Sprintf("%d", -delta)))
		}
	}
	return Success()
}

// SetStatus attaches id as target's non-volatile status, gated by
// SetStatus and failing outright if target already carries one (§3
// invariant: at most one non-volatile status per mon).
func (b *Battle) SetStatus(source, target Handle, id string) Outcome {
	mon := b.Mon(target)
	if mon.StatusID != "" {
		return Outcome{Kind: OutcomeFailed, Reason: "already has a status"}
	}
	ctx := &Context{Battle: b, Event: EventSetStatus, User: source, Target: target}
	if b.DispatchGate(ctx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "set_status blocked"}
	}
	state := NewEffectState(id, source, target, b.Field.Turn)
	mon.StatusID = id
	mon.StatusState = state
	startCtx := &Context{Battle: b, Event: EventStart, User: source, Target: target}
	b.DispatchVoid(startCtx, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntryStatus, F("mon", handleStr(target)), F("effect", id))
	return Success()
}

// CureStatus removes target's current non-volatile status, running its
// End handlers first.
func (b *Battle) CureStatus(target Handle) Outcome {
	mon := b.Mon(target)
	if mon.StatusID == "" {
		return Outcome{Kind: OutcomeFailed, Reason: "no status"}
	}
	gateCtx := &Context{Battle: b, Event: EventCureStatus, Target: target}
	if b.DispatchGate(gateCtx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "cure_status blocked"}
	}
	id := mon.StatusID
	endCtx := &Context{Battle: b, Event: EventEnd, Target: target}
	b.DispatchVoid(endCtx, StringValue(id))
	mon.StatusID = ""
	mon.StatusState = nil
	b.Log.Emit(b.Field.Turn, EntryCureStatus, F("mon", handleStr(target)), F("effect", id))
	return Success()
}

// TryAddVolatile attaches or restarts a volatile on target (§4.5
// try_add_volatile / restart semantics).
func (b *Battle) TryAddVolatile(source, target Handle, id string) Outcome {
	ctx := &Context{Battle: b, Event: EventTryAddVolatile, User: source, Target: target}
	if b.DispatchGate(ctx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "volatile blocked"}
	}
	mon := b.Mon(target)
	event := EventStart
	if _, exists := mon.Volatiles[id]; exists {
		event = EventDuration
	}
	mon.Volatiles[id] = NewEffectState(id, source, target, b.Field.Turn)
	startCtx := &Context{Battle: b, Event: event, User: source, Target: target}
	b.DispatchVoid(startCtx, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntryStart, F("mon", handleStr(target)), F("effect", id))
	return Success()
}

// RemoveVolatile clears id from target, running its End handlers first.
func (b *Battle) RemoveVolatile(target Handle, id string) Outcome {
	mon := b.Mon(target)
	if _, exists := mon.Volatiles[id]; !exists {
		return Outcome{Kind: OutcomeFailed}
	}
	endCtx := &Context{Battle: b, Event: EventEnd, Target: target}
	b.DispatchVoid(endCtx, StringValue(id))
	delete(mon.Volatiles, id)
	b.Log.Emit(b.Field.Turn, EntryEnd, F("mon", handleStr(target)), F("effect", id))
	return Success()
}

// AddSideCondition sets id on sideIdx's side, creating a fresh
// EffectState. If id is already active it fails with "already active";
// an existing condition is not restarted.
func (b *Battle) AddSideCondition(sideIdx int, id string) Outcome {
	side := b.Side(sideIdx)
	if _, exists := side.Conditions[id]; exists {
		return Outcome{Kind: OutcomeFailed, Reason: "already active"}
	}
	side.Conditions[id] = NewEffectState(id, NilHandle, NilHandle, b.Field.Turn)
	b.DispatchVoid(&Context{Battle: b, Event: EventSideStart}, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntrySideStart, F("side", fmt.Sprintf("%d", sideIdx)), F("effect", id))
	return Success()
}

// RemoveSideCondition clears id from sideIdx's side.
func (b *Battle) RemoveSideCondition(sideIdx int, id string) Outcome {
	side := b.Side(sideIdx)
	if _, exists := side.Conditions[id]; !exists {
		return Outcome{Kind: OutcomeFailed}
	}
	delete(side.Conditions, id)
	b.DispatchVoid(&Context{Battle: b, Event: EventSideEnd}, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntrySideEnd, F("side", fmt.Sprintf("%d", sideIdx)), F("effect", id))
	return Success()
}

// AddSlotCondition sets id on sideIdx's slot, creating a fresh
// EffectState.
func (b *Battle) AddSlotCondition(sideIdx, slot int, id string) Outcome {
	side := b.Side(sideIdx)
	if side.SlotConditions[slot] == nil {
		side.SlotConditions[slot] = make(map[string]*EffectState)
	}
	if _, exists := side.SlotConditions[slot][id]; exists {
		return Outcome{Kind: OutcomeFailed, Reason: "already active"}
	}
	side.SlotConditions[slot][id] = NewEffectState(id, NilHandle, NilHandle, b.Field.Turn)
	b.DispatchVoid(&Context{Battle: b, Event: EventSlotStart}, StringValue(id))
	return Success()
}

// RemoveSlotCondition clears id from sideIdx's slot.
func (b *Battle) RemoveSlotCondition(sideIdx, slot int, id string) Outcome {
	side := b.Side(sideIdx)
	if m, ok := side.SlotConditions[slot]; ok {
		if _, exists := m[id]; exists {
			delete(m, id)
			b.DispatchVoid(&Context{Battle: b, Event: EventSlotEnd}, StringValue(id))
			return Success()
		}
	}
	return Outcome{Kind: OutcomeFailed}
}

// SetWeather replaces the field's weather, gated by the SetWeather event
// so suppression hooks can veto it; the prior weather (if any) gets End
// and FieldEnd, the new one gets FieldStart, then WeatherChange fires.
func (b *Battle) SetWeather(source Handle, id string) Outcome {
	prev := b.Field.Weather
	if prev == id {
		return Outcome{Kind: OutcomeFailed, Reason: "already active"}
	}
	gateCtx := &Context{Battle: b, Event: EventSetWeather, User: source}
	if b.DispatchGate(gateCtx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "set_weather blocked"}
	}
	if prev != "" {
		endCtx := &Context{Battle: b, Event: EventEnd, User: source}
		b.DispatchVoid(endCtx, StringValue(prev))
		b.DispatchVoid(&Context{Battle: b, Event: EventFieldEnd, User: source}, StringValue(prev))
	}
	b.Field.Weather = id
	b.Field.WeatherState = NewEffectState(id, source, NilHandle, b.Field.Turn)
	b.DispatchVoid(&Context{Battle: b, Event: EventFieldStart, User: source}, StringValue(id))
	b.DispatchVoid(&Context{Battle: b, Event: EventWeatherChange, User: source}, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntryWeather, F("weather", id))
	return Success()
}

// ClearWeather restores the field's default weather (possibly none),
// satisfying §8's "setting then clearing weather restores the prior
// weather" round-trip law.
func (b *Battle) ClearWeather() Outcome {
	prev := b.Field.Weather
	b.Field.Weather = b.Field.DefaultWeather
	b.Field.WeatherState = nil
	if prev != "" {
		b.DispatchVoid(&Context{Battle: b, Event: EventFieldEnd}, StringValue(prev))
	}
	b.DispatchVoid(&Context{Battle: b, Event: EventWeatherChange}, StringValue(b.Field.Weather))
	if b.Field.Weather == "" {
		b.Log.Emit(b.Field.Turn, EntryClearWeather)
	} else {
		b.Log.Emit(b.Field.Turn, EntryWeather, F("weather", b.Field.Weather))
	}
	return Success()
}

// SetTerrain replaces the field's terrain the same way SetWeather
// replaces weather.
func (b *Battle) SetTerrain(source Handle, id string) Outcome {
	if b.Field.Terrain == id {
		return Outcome{Kind: OutcomeFailed, Reason: "already active"}
	}
	gateCtx := &Context{Battle: b, Event: EventSetTerrain, User: source}
	if b.DispatchGate(gateCtx) != Advance {
		return Outcome{Kind: OutcomeFailed, Reason: "set_terrain blocked"}
	}
	if b.Field.Terrain != "" {
		b.DispatchVoid(&Context{Battle: b, Event: EventFieldEnd, User: source}, StringValue(b.Field.Terrain))
	}
	b.Field.Terrain = id
	b.Field.TerrainState = NewEffectState(id, source, NilHandle, b.Field.Turn)
	b.DispatchVoid(&Context{Battle: b, Event: EventFieldStart, User: source}, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntryFieldStart, F("terrain", id))
	return Success()
}

// ClearTerrain restores the field's default terrain.
func (b *Battle) ClearTerrain() Outcome {
	prev := b.Field.Terrain
	b.Field.Terrain = b.Field.DefaultTerrain
	b.Field.TerrainState = nil
	if prev != "" {
		b.DispatchVoid(&Context{Battle: b, Event: EventFieldEnd}, StringValue(prev))
	}
	b.Log.Emit(b.Field.Turn, EntryFieldEnd)
	return Success()
}

// AddPseudoWeather adds id to the field's pseudo-weather set, or restarts
// its duration if already active rather than failing outright (§4.5
// restart semantics carried over from TryAddVolatile).
func (b *Battle) AddPseudoWeather(source Handle, id string) Outcome {
	event := EventFieldStart
	if _, exists := b.Field.PseudoWeathers[id]; exists {
		event = EventFieldRestart
	}
	b.Field.PseudoWeathers[id] = NewEffectState(id, source, NilHandle, b.Field.Turn)
	b.DispatchVoid(&Context{Battle: b, Event: event, User: source}, StringValue(id))
	b.Log.Emit(b.Field.Turn, EntryFieldStart, F("pseudoweather", id))
	return Success()
}

// SetAbility replaces target's active ability slot, dispatching SetAbility
// and refreshing the mon's cached weather-suppression flag since the new
// ability may be an Air Lock-like one.
func (b *Battle) SetAbility(target Handle, id string) Outcome {
	mon := b.Mon(target)
	prev := mon.AbilityID
	ctx := &Context{Battle: b, Event: EventSetAbility, Target: target}
	b.DispatchVoid(ctx, StringValue(id))
	mon.AbilityID = id
	updateWeatherSuppression(b, target)
	b.Log.Emit(b.Field.Turn, EntryInfo, F("mon", handleStr(target)), F("ability", id), F("was", prev))
	return Success()
}

// SetItem replaces target's held item slot, refreshing the mon's cached
// weather-suppression flag since the new item may be a Utility
// Umbrella-like one.
func (b *Battle) SetItem(target Handle, id string) Outcome {
	mon := b.Mon(target)
	ctx := &Context{Battle: b, Event: EventSetItem, Target: target}
	b.DispatchVoid(ctx, StringValue(id))
	mon.ItemID = id
	updateWeatherSuppression(b, target)
	b.Log.Emit(b.Field.Turn, EntryInfo, F("mon", handleStr(target)), F("item", id))
	return Success()
}

// TakeItem clears target's held item slot and returns the item ID that
// was removed, dispatching TakeItem first as a void event: handlers
// observe the removal but cannot veto it.
func (b *Battle) TakeItem(target Handle) string {
	mon := b.Mon(target)
	id := mon.ItemID
	if id == "" {
		return ""
	}
	ctx := &Context{Battle: b, Event: EventTakeItem, Target: target}
	b.DispatchVoid(ctx, StringValue(id))
	mon.ItemID = ""
	updateWeatherSuppression(b, target)
	b.Log.Emit(b.Field.Turn, EntryItemEnd, F("mon", handleStr(target)), F("item", id))
	return id
}

// handleStr renders a Handle as a compact "side.player.team" token for
// log fields; the reconstructor keys off position/name elsewhere, this is
// only ever a debugging aid attached to entries this engine controls.
func handleStr(h Handle) string {
	if h.IsNil() {
		return "-"
	}
	return fmt.Sprintf("%d.%d.%d", h.SideIdx, h.PlayerIdx, h.TeamIdx)
}
