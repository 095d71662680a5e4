package numeric

import "fmt"

// Fraction is an exact rational number represented as numerator/denominator
// over unsigned 64-bit integers. Damage math runs entirely in Fraction to
// avoid the rounding drift floating point would introduce across a long
// modifier chain; floor/round only happen at the specific steps the
// formula calls for.
//
// A Fraction is always kept in lowest terms with a non-zero denominator.
type Fraction struct {
	Num uint64
	Den uint64
}

// NewFraction builds a Fraction in lowest terms. den == 0 is a programmer
// error and panics, matching the "state invariant violation" fatal class:
// a zero denominator can only arise from a bug in the formula, never from
// game data.
func NewFraction(num, den uint64) Fraction {
	if den == 0 {
		panic("numeric: fraction with zero denominator")
	}
	return Fraction{Num: num, Den: den}.reduce()
}

// FractionFromInt lifts a whole number into a Fraction.
func FractionFromInt(n uint64) Fraction {
	return Fraction{Num: n, Den: 1}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func (f Fraction) reduce() Fraction {
	g := gcd(f.Num, f.Den)
	return Fraction{Num: f.Num / g, Den: f.Den / g}
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return NewFraction(f.Num*g.Den+g.Num*f.Den, f.Den*g.Den)
}

// Sub returns f - g. Both operands are unsigned, so the result saturates at
// zero rather than going negative — damage-domain fractions are never
// negative by construction.
func (f Fraction) Sub(g Fraction) Fraction {
	lhs := f.Num * g.Den
	rhs := g.Num * f.Den
	if rhs >= lhs {
		return Fraction{Num: 0, Den: 1}
	}
	return NewFraction(lhs-rhs, f.Den*g.Den)
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	return NewFraction(f.Num*g.Num, f.Den*g.Den)
}

// Div returns f / g. Dividing by zero panics, mirroring NewFraction.
func (f Fraction) Div(g Fraction) Fraction {
	if g.Num == 0 {
		panic("numeric: division by zero fraction")
	}
	return NewFraction(f.Num*g.Den, f.Den*g.Num)
}

// MulInt returns f * n.
func (f Fraction) MulInt(n uint64) Fraction {
	return NewFraction(f.Num*n, f.Den)
}

// DivInt returns f / n.
func (f Fraction) DivInt(n uint64) Fraction {
	if n == 0 {
		panic("numeric: division by zero")
	}
	return NewFraction(f.Num, f.Den*n)
}

// Floor returns the integer part of f, rounding toward zero.
func (f Fraction) Floor() uint64 {
	return f.Num / f.Den
}

// Round returns f rounded to the nearest integer, with ties rounding up
// (half away from zero is not meaningful for unsigned values, so this is
// simply half-up).
func (f Fraction) Round() uint64 {
	return (f.Num*2 + f.Den) / (f.Den * 2)
}

// Float64 converts f to a float64, for logging and external reporting only
// — never used in the arithmetic path itself.
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool {
	return f.Num*g.Den < g.Num*f.Den
}

// Equal reports whether f and g represent the same rational value.
func (f Fraction) Equal(g Fraction) bool {
	return f.Num*g.Den == g.Num*f.Den
}

// String renders the fraction as "num/den", or a bare integer when den == 1.
func (f Fraction) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
