package numeric

import "testing"

func TestExpandScalarProducesSixteenBuckets(t *testing.T) {
	d := ExpandScalar(100)
	if d.Len() != 16 {
		t.Fatalf("ExpandScalar Len() = %d, want 16", d.Len())
	}
	buckets := d.Buckets()
	if buckets[0].Min != 100 {
		t.Errorf("first bucket (factor 100/100) = %v, want 100", buckets[0])
	}
	if buckets[15].Min != 85 {
		t.Errorf("last bucket (factor 85/100) = %v, want 85", buckets[15])
	}
}

func TestRangeDistributionReduceSpansAllBuckets(t *testing.T) {
	d := ExpandScalar(37)
	r := d.Reduce()
	// 37 * 100/100 = 37 (floored), 37 * 85/100 = 31 (floored)
	if r.Max != 37 {
		t.Errorf("Reduce().Max = %d, want 37", r.Max)
	}
	if r.Min != 31 {
		t.Errorf("Reduce().Min = %d, want 31", r.Min)
	}
}

func TestRangeDistributionMulFractionAppliesToEveryBucket(t *testing.T) {
	d := NewRangeDistribution([]Range{Single(10), Single(20)})
	got := d.MulFraction(NewFraction(3, 2))
	want := []Range{Single(15), Single(30)}
	for i, b := range got.Buckets() {
		if b != want[i] {
			t.Errorf("bucket %d = %v, want %v", i, b, want[i])
		}
	}
}

func TestRangeDistributionClampMin(t *testing.T) {
	d := NewRangeDistribution([]Range{Single(0), Single(-3), Single(5)})
	got := d.ClampMin(1)
	want := []Range{Single(1), Single(1), Single(5)}
	for i, b := range got.Buckets() {
		if b != want[i] {
			t.Errorf("bucket %d = %v, want %v", i, b, want[i])
		}
	}
}
