package battle

import (
	"testing"

	"battlesim/pkg/data"
)

func newTestBattle(t *testing.T) (*Battle, Handle, Handle) {
	t.Helper()
	store := data.DefaultStore()
	field := NewSingleBattleField()
	b := NewBattle(field, store, 1)

	bulba := mustSpecies(t, store, "bulbasaur")
	char := mustSpecies(t, store, "charmander")
	hardy, _ := store.Nature("hardy")

	m1 := NewMon("bulbasaur", 50, hardy, data.StatTable{}, data.StatTable{}, bulba)
	m2 := NewMon("charmander", 50, hardy, data.StatTable{}, data.StatTable{}, char)

	h1 := PlaceMon(field, 0, 0, m1)
	h2 := PlaceMon(field, 1, 0, m2)
	return b, h1, h2
}

func TestDamageClampsAtZeroAndFaints(t *testing.T) {
	b, _, target := newTestBattle(t)
	mon := b.Mon(target)
	outcome := b.Damage(NilHandle, target, mon.MaxHP+999, "test")
	if outcome.Kind != OutcomeDamage || outcome.Damage != mon.MaxHP {
		t.Errorf("Damage overshoot = %+v, want Damage(%d)", outcome, mon.MaxHP)
	}
	if mon.HP != 0 || !mon.Fainted {
		t.Errorf("mon after lethal damage: hp=%d fainted=%v, want hp=0 fainted=true", mon.HP, mon.Fainted)
	}
}

func TestDamageOnFaintedMonFails(t *testing.T) {
	b, _, target := newTestBattle(t)
	mon := b.Mon(target)
	b.Damage(NilHandle, target, mon.MaxHP, "ko")
	outcome := b.Damage(NilHandle, target, 1, "again")
	if outcome.Kind != OutcomeFailed {
		t.Errorf("Damage on a fainted mon = %+v, want Failed", outcome)
	}
}

func TestBoostClampsToSixStages(t *testing.T) {
	b, _, target := newTestBattle(t)
	b.Boost(NilHandle, target, map[data.Stat]int{data.StatAtk: 4})
	b.Boost(NilHandle, target, map[data.Stat]int{data.StatAtk: 4})
	mon := b.Mon(target)
	if mon.Boosts.Get(data.StatAtk) != 6 {
		t.Errorf("Atk boost = %d, want clamped to 6", mon.Boosts.Get(data.StatAtk))
	}
}

func TestSetStatusFailsWhenAlreadyStatused(t *testing.T) {
	b, _, target := newTestBattle(t)
	first := b.SetStatus(NilHandle, target, "paralysis")
	if first.Kind != OutcomeSuccess {
		t.Fatalf("first SetStatus = %+v, want Success", first)
	}
	second := b.SetStatus(NilHandle, target, "burn")
	if second.Kind != OutcomeFailed {
		t.Errorf("second SetStatus = %+v, want Failed", second)
	}
	mon := b.Mon(target)
	if mon.StatusID != "paralysis" {
		t.Errorf("StatusID = %q, want unchanged %q", mon.StatusID, "paralysis")
	}
}

func TestCureStatusClearsIt(t *testing.T) {
	b, _, target := newTestBattle(t)
	b.SetStatus(NilHandle, target, "burn")
	b.CureStatus(target)
	mon := b.Mon(target)
	if mon.StatusID != "" {
		t.Errorf("StatusID after cure = %q, want empty", mon.StatusID)
	}
}

func TestWeatherSetThenClearRestoresDefault(t *testing.T) {
	b, source, _ := newTestBattle(t)
	b.Field.DefaultWeather = ""
	b.SetWeather(source, "rain")
	if b.Field.Weather != "rain" {
		t.Fatalf("weather after SetWeather = %q, want rain", b.Field.Weather)
	}
	b.ClearWeather()
	if b.Field.Weather != "" {
		t.Errorf("weather after ClearWeather = %q, want empty (the default)", b.Field.Weather)
	}
}

func TestTryAddVolatileThenRemove(t *testing.T) {
	b, _, target := newTestBattle(t)
	b.TryAddVolatile(NilHandle, target, "confusion")
	mon := b.Mon(target)
	if _, ok := mon.Volatiles["confusion"]; !ok {
		t.Fatalf("volatile not attached")
	}
	b.RemoveVolatile(target, "confusion")
	if _, ok := mon.Volatiles["confusion"]; ok {
		t.Errorf("volatile still present after RemoveVolatile")
	}
}
