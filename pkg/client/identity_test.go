package client

import "testing"

func TestDiscoveryRequiredPreciseNarrows(t *testing.T) {
	var d DiscoveryRequired[uint64]
	d = d.Record(Known(uint64(100)), Precise)
	v, ok := d.Value()
	if !ok || v != 100 {
		t.Fatalf("Value() = %v,%v want 100,true", v, ok)
	}
	d = d.Record(Known(uint64(50)), Precise)
	v, ok = d.Value()
	if !ok || v != 50 {
		t.Fatalf("Precise record did not overwrite: Value() = %v,%v want 50,true", v, ok)
	}
}

func TestDiscoveryRequiredAmbiguousUnionsWithoutNarrowing(t *testing.T) {
	var d DiscoveryRequired[string]
	d = d.Record(DiscoveryRequired[string]{possible: []string{"bulbasaur", "ivysaur"}}, Ambiguous)
	if _, ok := d.Value(); ok {
		t.Fatalf("two candidates should not resolve to a single known value")
	}
	if !d.CanBe("bulbasaur") || !d.CanBe("ivysaur") {
		t.Fatalf("CanBe should accept either candidate")
	}
	if d.CanBe("charmander") {
		t.Fatalf("CanBe should reject a value outside the candidate set")
	}
	d = d.Record(DiscoveryRequired[string]{possible: []string{"ivysaur"}}, Ambiguous)
	// merging a single candidate that is already in the set leaves the
	// union unchanged; it does not narrow it: only a Precise record narrows.
	v, ok := d.Value()
	if ok {
		t.Fatalf("merge of overlapping candidate sets unexpectedly resolved to %v", v)
	}
}

func TestDiscoveryRequiredMakeAmbiguousDemotesKnown(t *testing.T) {
	d := Known(uint64(5)).MakeAmbiguous()
	if _, ok := d.Value(); ok {
		t.Fatalf("MakeAmbiguous should demote a known value to a candidate")
	}
	if !d.CanBe(5) {
		t.Fatalf("demoted value should still be a candidate")
	}
}

func TestDiscoveryRequiredSetRecordKnownRemovesFromPossible(t *testing.T) {
	var s DiscoveryRequiredSet[string]
	s.RecordPossible("tackle")
	s.RecordKnown("tackle")
	if len(s.PossibleValues()) != 0 {
		t.Errorf("PossibleValues = %v, want empty once confirmed", s.PossibleValues())
	}
	if len(s.Known()) != 1 || s.Known()[0] != "tackle" {
		t.Errorf("Known = %v, want [tackle]", s.Known())
	}
}

func TestMonPhysicalAppearanceMatchesWildcardsEmptyFields(t *testing.T) {
	known := MonPhysicalAppearance{Species: "pikachu", Shiny: false}
	partial := MonPhysicalAppearance{Shiny: false}
	if !known.Matches(partial) {
		t.Errorf("an appearance with empty fields should match as a wildcard")
	}
	shinyMismatch := MonPhysicalAppearance{Species: "pikachu", Shiny: true}
	if known.Matches(shinyMismatch) {
		t.Errorf("shininess must match exactly")
	}
}

func TestMonBattleAppearanceWithRecoveryRoundTrip(t *testing.T) {
	app := NewInactiveAppearance(MonBattleAppearance{})
	app.RecordLevel(Known(uint64(50)), Precise)
	app.SwitchIn()
	app.RecordAbility(Known("static"), Precise)
	recovered := app.Recover()

	if level, ok := app.Primary().Level.Value(); !ok || level != 50 {
		t.Errorf("primary level after recover = %v,%v want 50,true", level, ok)
	}
	if ability, ok := app.Primary().Ability.Value(); ok {
		t.Errorf("primary ability after recover = %v, want unrecorded (it belongs to the illusion)", ability)
	}
	if ability, ok := recovered.Ability.Value(); !ok || ability != "static" {
		t.Errorf("recovered ability = %v,%v want static,true", ability, ok)
	}
}

func TestMonPushBattleAppearanceRecyclesOldestPastCap(t *testing.T) {
	m := NewMon(MonPhysicalAppearance{Species: "ditto"})
	for i := 0; i < maxBattleAppearances; i++ {
		slot := m.PushBattleAppearance()
		m.BattleAppearances[slot].RecordLevel(Known(uint64(10+i)), Precise)
	}
	if len(m.BattleAppearances) != maxBattleAppearances {
		t.Fatalf("len(BattleAppearances) = %d, want %d", len(m.BattleAppearances), maxBattleAppearances)
	}
	m.PushBattleAppearance()
	if len(m.BattleAppearances) != maxBattleAppearances {
		t.Fatalf("len(BattleAppearances) after exceeding cap = %d, want still %d", len(m.BattleAppearances), maxBattleAppearances)
	}
	newest := m.BattleAppearances[len(m.BattleAppearances)-1]
	if _, ok := newest.Primary().Level.Value(); ok {
		t.Errorf("recycled slot's seed should be demoted to a candidate, not a known value")
	}
	if !newest.Primary().Level.CanBe(10) {
		t.Errorf("recycled slot should carry the oldest slot's level as a candidate")
	}
}
