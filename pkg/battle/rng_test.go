package battle

import "testing"

func TestRNGSameSeedProducesSameSequence(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 20; i++ {
		va := a.Intn(1000)
		vb := b.Intn(1000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
	}
}

func TestRNGTracksDrawCount(t *testing.T) {
	r := NewRNG(1)
	if r.Draws() != 0 {
		t.Fatalf("Draws() before any draw = %d, want 0", r.Draws())
	}
	r.Intn(10)
	r.Chance(1, 2)
	if r.Draws() != 2 {
		t.Errorf("Draws() after two draws = %d, want 2", r.Draws())
	}
}

func TestRNGChanceAlwaysHitsAtFullProbability(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 50; i++ {
		if !r.Chance(1, 1) {
			t.Fatalf("Chance(1, 1) returned false on draw %d", i)
		}
	}
}

func TestRNGChanceNeverHitsAtZeroNumerator(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 50; i++ {
		if r.Chance(0, 100) {
			t.Fatalf("Chance(0, 100) returned true on draw %d", i)
		}
	}
}

func TestMultiHitCountStaysWithinDeclaredRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 200; i++ {
		n := r.MultiHitCount(2, 5)
		if n < 2 || n > 5 {
			t.Fatalf("MultiHitCount(2,5) = %d, out of range", n)
		}
	}
}

func TestRandomDamageFactorIndexWithinBucketRange(t *testing.T) {
	r := NewRNG(9)
	for i := 0; i < 100; i++ {
		idx := r.RandomDamageFactorIndex()
		if idx < 0 || idx > 15 {
			t.Fatalf("RandomDamageFactorIndex() = %d, want within [0,15]", idx)
		}
	}
}
