package battle

import "testing"

func TestCombineDamageSums(t *testing.T) {
	got := Combine(Damage(10), Damage(5))
	if got.Kind != OutcomeDamage || got.Damage != 15 {
		t.Errorf("Combine(Damage(10), Damage(5)) = %+v, want Damage(15)", got)
	}
}

func TestCombinePrefersMoreInformative(t *testing.T) {
	cases := []struct {
		a, b Outcome
		want OutcomeKind
	}{
		{Outcome{Kind: OutcomeUnknown}, Failed("x"), OutcomeFailed},
		{Failed("x"), Outcome{Kind: OutcomeSkipped}, OutcomeSkipped},
		{Outcome{Kind: OutcomeSkipped}, Success(), OutcomeSuccess},
		{Success(), Damage(3), OutcomeDamage},
		{Immune("no"), Outcome{Kind: OutcomeSkipped}, OutcomeImmune},
	}
	for _, c := range cases {
		got := Combine(c.a, c.b)
		if got.Kind != c.want {
			t.Errorf("Combine(%+v, %+v) = %v, want %v", c.a, c.b, got.Kind, c.want)
		}
	}
}

func TestCombineIsOrderIndependentForRank(t *testing.T) {
	a, b := Success(), Outcome{Kind: OutcomeSkipped}
	if Combine(a, b).Kind != Combine(b, a).Kind {
		t.Errorf("Combine should pick the same winner regardless of argument order")
	}
}
