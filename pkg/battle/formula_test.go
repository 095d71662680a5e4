package battle

import (
	"testing"

	"battlesim/pkg/data"
	"battlesim/pkg/numeric"
)

func mustSpecies(t *testing.T, store data.Store, id string) *data.SpeciesData {
	t.Helper()
	sp, err := store.Species(id)
	if err != nil {
		t.Fatalf("species %s: %v", id, err)
	}
	return sp
}

func TestComputeDamageCalcLevel100NeutralTackle(t *testing.T) {
	store := data.DefaultStore()
	venusaur := mustSpecies(t, store, "venusaur")
	charizard := mustSpecies(t, store, "charizard")
	serious, _ := store.Nature("serious")
	timid, _ := store.Nature("timid")

	attacker := &CalcMon{Species: venusaur, Level: 100, Nature: serious,
		IVs: &data.StatTable{Atk: 31}, EVs: &data.StatTable{}}
	defender := &CalcMon{Species: charizard, Level: 100, Nature: timid,
		IVs: &data.StatTable{Def: 31}, EVs: &data.StatTable{}}

	mh, err := Calculate(CalcRequest{Store: store, Attacker: attacker, Defender: defender, MoveID: "tackle"})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	dmg := mh.PerHit[0].Damage.Value.Reduce()
	if dmg.Min != 31 || dmg.Max != 37 {
		t.Errorf("damage range = [%d,%d], want [31,37]", dmg.Min, dmg.Max)
	}
	atk := mh.PerHit[0].Attack.Value
	if atk.Min != 200 || atk.Max != 200 {
		t.Errorf("attack = %v, want 200", atk)
	}
	def := mh.PerHit[0].Defense.Value
	if def.Min != 192 || def.Max != 192 {
		t.Errorf("defense = %v, want 192", def)
	}
}

func TestComputeDamageCalcTypeEffectivenessStacks(t *testing.T) {
	store := data.DefaultStore()
	pikachu := mustSpecies(t, store, "pikachu")
	gyarados := mustSpecies(t, store, "gyarados")
	hardy, _ := store.Nature("hardy")

	attacker := &CalcMon{Species: pikachu, Level: 50, Nature: hardy,
		IVs: &data.StatTable{SpAtk: 31}, EVs: &data.StatTable{}}
	defender := &CalcMon{Species: gyarados, Level: 50, Nature: hardy,
		IVs: &data.StatTable{SpDef: 31}, EVs: &data.StatTable{}}

	mh, err := Calculate(CalcRequest{Store: store, Attacker: attacker, Defender: defender, MoveID: "thunderbolt"})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	eff := mh.PerHit[0].Effectiveness.Value
	want := numeric.NewFraction(4, 1)
	if !eff.Equal(want) {
		t.Errorf("effectiveness = %v, want x4", eff)
	}
}

func TestFixedDamageSeismicToss(t *testing.T) {
	store := data.DefaultStore()
	bulba := mustSpecies(t, store, "bulbasaur")
	char := mustSpecies(t, store, "charmander")

	attacker := &CalcMon{Species: bulba, Level: 5}
	defender := &CalcMon{Species: char, Level: 5}

	mh, err := Calculate(CalcRequest{Store: store, Attacker: attacker, Defender: defender, MoveID: "seismictoss"})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	dmg := mh.PerHit[0].Damage.Value.Reduce()
	if dmg.Min != 5 || dmg.Max != 5 {
		t.Errorf("seismic toss damage = %v, want [5,5]", dmg)
	}
	if mh.TargetHPRange.Min != 18 || mh.TargetHPRange.Max != 23 {
		t.Errorf("target hp range = %v, want [18,23]", mh.TargetHPRange)
	}
}

func TestCriticalHitClampsBoosts(t *testing.T) {
	store := data.DefaultStore()
	// Re-use pikachu/gyarados as stand-ins with explicit boosts to exercise
	// the crit clamp rule independent of exact worked-example stat values.
	pikachu := mustSpecies(t, store, "pikachu")
	gyarados := mustSpecies(t, store, "gyarados")
	hardy, _ := store.Nature("hardy")

	attacker := &CalcMon{Species: pikachu, Level: 50, Nature: hardy,
		IVs: &data.StatTable{SpAtk: 31}, EVs: &data.StatTable{},
		Boosts: BoostTable{data.StatSpAtk: -3}}
	defender := &CalcMon{Species: gyarados, Level: 50, Nature: hardy,
		IVs: &data.StatTable{SpDef: 31}, EVs: &data.StatTable{},
		Boosts: BoostTable{data.StatSpDef: 6}}

	normal, _ := Calculate(CalcRequest{Store: store, Attacker: attacker, Defender: defender, MoveID: "thunderbolt"})
	crit, _ := Calculate(CalcRequest{Store: store, Attacker: attacker, Defender: defender, MoveID: "thunderbolt", Crit: true})

	normalDmg := normal.PerHit[0].Damage.Value.Reduce()
	critDmg := crit.PerHit[0].Damage.Value.Reduce()
	if critDmg.Max <= normalDmg.Max {
		t.Errorf("crit damage %v should exceed normal damage %v once negative attacker boost and positive defender boost are both ignored", critDmg, normalDmg)
	}
	critAtk := crit.PerHit[0].Attack.Value
	normalAtk := normal.PerHit[0].Attack.Value
	if critAtk.Min <= normalAtk.Min {
		t.Errorf("crit attack %v should be higher than unboosted-clamped normal attack %v", critAtk, normalAtk)
	}
}
