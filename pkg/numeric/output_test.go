package numeric

import (
	"reflect"
	"testing"
)

func TestOutputTraceAccumulates(t *testing.T) {
	o := NewOutput(int64(40))
	o = Transform(o, "x3/2", "stab", func(v int64) int64 { return v * 3 / 2 })
	o = Transform(o, "÷50", "constant", func(v int64) int64 { return v / 50 })

	if o.Value != 1 {
		t.Errorf("Value = %d, want 1", o.Value)
	}
	want := []string{"stab", "constant"}
	if !reflect.DeepEqual(o.Reasons(), want) {
		t.Errorf("Reasons() = %v, want %v", o.Reasons(), want)
	}
}

func TestOutputCombineConcatenatesTraces(t *testing.T) {
	a := NewOutput(Single(10)).With("base", "base power", Single(10))
	b := NewOutput(NewFraction(3, 2)).With("x3/2", "stab", NewFraction(3, 2))

	combined := Combine(a, b, "apply-stab", "stab multiplier", func(r Range, f Fraction) Range {
		return r.MulFraction(f)
	})

	if combined.Value != (Range{15, 15}) {
		t.Errorf("combined value = %v, want {15 15}", combined.Value)
	}
	if len(combined.Trace) != 3 {
		t.Fatalf("combined trace length = %d, want 3", len(combined.Trace))
	}
	if combined.Trace[2].Reason != "stab multiplier" {
		t.Errorf("final trace step reason = %q, want %q", combined.Trace[2].Reason, "stab multiplier")
	}
}

func TestOutputWithDoesNotMutateOriginal(t *testing.T) {
	o := NewOutput(int64(5))
	o2 := o.With("x2", "double", int64(10))

	if len(o.Trace) != 0 {
		t.Errorf("original trace mutated: %v", o.Trace)
	}
	if len(o2.Trace) != 1 {
		t.Errorf("new trace length = %d, want 1", len(o2.Trace))
	}
}
