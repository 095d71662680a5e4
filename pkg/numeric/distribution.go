package numeric

// RangeDistribution is an ordered sequence of equally-weighted Range
// outcomes. It exists for exactly one reason in the formula: the 16-bucket
// random damage roll (factors 100, 99, 98, ..., 85 over 100) needs to be
// carried through STAB, type effectiveness and the final modifier chain
// before being reduced back to a single Range, instead of being collapsed
// to a min/max immediately — later hooks (e.g. "ModifyDamage") must see
// each of the sixteen buckets independently because they can behave
// non-linearly (a hook that floors per-bucket gives a different final
// range than one applied to the pre-collapsed min/max).
type RangeDistribution struct {
	buckets []Range
}

// NewRangeDistribution wraps an explicit bucket slice.
func NewRangeDistribution(buckets []Range) RangeDistribution {
	cp := make([]Range, len(buckets))
	copy(cp, buckets)
	return RangeDistribution{buckets: cp}
}

// randomDamageFactors are the sixteen /100 multipliers the live engine
// rolls one of uniformly, and the calculator expands a scalar into.
var randomDamageFactors = [16]Fraction{
	{100, 100}, {99, 100}, {98, 100}, {97, 100},
	{96, 100}, {95, 100}, {94, 100}, {93, 100},
	{92, 100}, {91, 100}, {90, 100}, {89, 100},
	{88, 100}, {87, 100}, {86, 100}, {85, 100},
}

// RandomDamageFactors returns the sixteen random-roll factors, listed
// in descending order (100 down to 85, over 100).
func RandomDamageFactors() [16]Fraction {
	return randomDamageFactors
}

// ExpandScalar turns a single base damage value into the 16-bucket
// distribution used by the calculator, applying each of the sixteen
// factors and flooring per bucket as the live engine would for the roll
// it actually drew.
func ExpandScalar(base int64) RangeDistribution {
	buckets := make([]Range, len(randomDamageFactors))
	for i, f := range randomDamageFactors {
		v := int64(FractionFromInt(uint64Abs(base)).Mul(f).Floor())
		buckets[i] = Single(v)
	}
	return NewRangeDistribution(buckets)
}

// Buckets returns a copy of the underlying ranges, in declared order.
func (d RangeDistribution) Buckets() []Range {
	cp := make([]Range, len(d.buckets))
	copy(cp, d.buckets)
	return cp
}

// Len reports the number of buckets.
func (d RangeDistribution) Len() int {
	return len(d.buckets)
}

// mapEach applies fn to every bucket and returns the resulting
// distribution, preserving bucket order and count.
func (d RangeDistribution) mapEach(fn func(Range) Range) RangeDistribution {
	out := make([]Range, len(d.buckets))
	for i, b := range d.buckets {
		out[i] = fn(b)
	}
	return NewRangeDistribution(out)
}

// MulFraction scales every bucket by f.
func (d RangeDistribution) MulFraction(f Fraction) RangeDistribution {
	return d.mapEach(func(r Range) Range { return r.MulFraction(f) })
}

// MulScalar scales every bucket by n.
func (d RangeDistribution) MulScalar(n int64) RangeDistribution {
	return d.mapEach(func(r Range) Range { return r.MulScalar(n) })
}

// AddScalar adds n to every bucket.
func (d RangeDistribution) AddScalar(n int64) RangeDistribution {
	return d.mapEach(func(r Range) Range { return r.AddScalar(n) })
}

// Map applies an arbitrary monotone unary function to every bucket.
func (d RangeDistribution) Map(fn func(int64) int64) RangeDistribution {
	return d.mapEach(func(r Range) Range { return r.Map(fn) })
}

// ClampMin clamps every bucket's endpoints to be at least n.
func (d RangeDistribution) ClampMin(n int64) RangeDistribution {
	return d.mapEach(func(r Range) Range { return r.ClampMin(n) })
}

// Reduce collapses the distribution back to a single Range spanning the
// minimum of all bucket minimums and the maximum of all bucket maximums —
// the final step the calculator performs before reporting a damage range
// to the caller.
func (d RangeDistribution) Reduce() Range {
	if len(d.buckets) == 0 {
		return Range{}
	}
	result := d.buckets[0]
	for _, b := range d.buckets[1:] {
		result = result.Union(b)
	}
	return result
}
