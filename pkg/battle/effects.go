package battle

import (
	"battlesim/pkg/data"
	"battlesim/pkg/numeric"
)

// This file is the effect catalogue the rest of the package's doc
// comments promise: concrete Handler registrations for the abilities,
// items and statuses pkg/data's fixtures declare only descriptively.
// New effects join here as a registration function plus a call site,
// never by widening the EventType enum.

// registerBuiltinFieldHooks attaches the handlers present in every
// battle regardless of which mons are on it: rain/sun's damage modifiers
// and burn's physical-damage halving. Both gate on a mon's current
// state (weather, status) read at dispatch time rather than on a
// per-mon registration, so they need registering exactly once, here,
// rather than at every PlaceMon/switch-in call site.
func registerBuiltinFieldHooks(b *Battle) {
	b.Hooks.Register(&Handler{
		EffectID: "weather-rain",
		Source:   SourceField,
		Event:    EventModifyDamageFromWeather,
		Live:     func(b *Battle) bool { return b.Field.Weather == "rain" },
		Fn:       func(ctx *Context, in Value) Value { return weatherDamageModifier(ctx, in, "water", "fire") },
	})
	b.Hooks.Register(&Handler{
		EffectID: "weather-sun",
		Source:   SourceField,
		Event:    EventModifyDamageFromWeather,
		Live:     func(b *Battle) bool { return b.Field.Weather == "sun" },
		Fn:       func(ctx *Context, in Value) Value { return weatherDamageModifier(ctx, in, "fire", "water") },
	})
	b.Hooks.Register(&Handler{
		EffectID: "status-burn",
		Source:   SourceMon,
		Event:    EventModifyDamage,
		Fn:       burnDamageModifier,
	})
}

// weatherDamageModifier halves or boosts in.Range by 1.5x/0.5x depending
// on whether the move's type matches boostType/nerfType, unless either
// combatant carries a weather-suppressing ability or item.
func weatherDamageModifier(ctx *Context, in Value, boostType, nerfType string) Value {
	if ctx.Move == nil || ctx.Battle == nil {
		return in
	}
	if monWeatherSuppressed(ctx.Battle, ctx.User) || monWeatherSuppressed(ctx.Battle, ctx.Target) {
		return in
	}
	switch data.NormalizeID(ctx.Move.Type) {
	case boostType:
		return RangeValue(in.Range.MulFraction(numeric.NewFraction(3, 2)))
	case nerfType:
		return RangeValue(in.Range.MulFraction(numeric.NewFraction(1, 2)))
	default:
		return in
	}
}

// monWeatherSuppressed reports whether h's active ability or held item
// cancels weather's damage modifiers (an Air Lock-like ability, a Utility
// Umbrella-like item), re-deriving from the store rather than trusting a
// cached flag so it stays correct across ability/item changes mid-battle.
func monWeatherSuppressed(b *Battle, h Handle) bool {
	mon := b.Mon(h)
	if ab, err := b.Store.Ability(mon.AbilityID); err == nil && ab.SuppressesWeather {
		return true
	}
	if it, err := b.Store.Item(mon.ItemID); err == nil && it.NegatesWeatherDamageBoost {
		return true
	}
	return mon.WeatherSuppressed
}

// burnDamageModifier halves physical damage dealt by a burned attacker.
func burnDamageModifier(ctx *Context, in Value) Value {
	if ctx.Battle == nil || ctx.Move == nil || ctx.Move.Category != data.CategoryPhysical {
		return in
	}
	if ctx.Battle.Mon(ctx.User).StatusID != "burn" {
		return in
	}
	return DistValue(in.Dist.MulFraction(numeric.NewFraction(1, 2)))
}

// updateWeatherSuppression refreshes h's cached WeatherSuppressed flag
// from its current ability/item, called whenever either changes so code
// reading the flag directly (rather than dispatching a hook) stays
// consistent with monWeatherSuppressed's live computation.
func updateWeatherSuppression(b *Battle, h Handle) {
	mon := b.Mon(h)
	suppressed := false
	if ab, err := b.Store.Ability(mon.AbilityID); err == nil && ab.SuppressesWeather {
		suppressed = true
	}
	if it, err := b.Store.Item(mon.ItemID); err == nil && it.NegatesWeatherDamageBoost {
		suppressed = true
	}
	mon.WeatherSuppressed = suppressed
}
