package numeric

// TraceStep is one recorded arithmetic step: the operation applied
// ("x3/2", "floor", "÷50") paired with the human-readable reason it was
// applied ("stab", "constant", "crit"). Output.Trace is an ordered list of
// these, and it is this list the calculator surfaces to the end user as
// its derivation.
type TraceStep struct {
	Op     string
	Reason string
}

// Output is a carrier of a value plus the ordered list of steps that
// produced it. Every modifier hook in the calculator returns an Output so
// the trace round-trips through the whole pipeline; the live engine uses
// the same type but typically discards Trace once a value is final.
type Output[T any] struct {
	Value T
	Trace []TraceStep
}

// NewOutput wraps a bare value with an empty trace.
func NewOutput[T any](v T) Output[T] {
	return Output[T]{Value: v}
}

// With returns a copy of o with one more trace step appended, recording
// the value the step produced.
func (o Output[T]) With(op, reason string, v T) Output[T] {
	trace := make([]TraceStep, len(o.Trace), len(o.Trace)+1)
	copy(trace, o.Trace)
	trace = append(trace, TraceStep{Op: op, Reason: reason})
	return Output[T]{Value: v, Trace: trace}
}

// Transform applies fn to o's value, recording a trace step describing
// the operation and reason.
func Transform[T any](o Output[T], op, reason string, fn func(T) T) Output[T] {
	return o.With(op, reason, fn(o.Value))
}

// Combine merges two Outputs of possibly different value types into a new
// Output whose trace is the concatenation of both inputs' traces followed
// by one step describing the combination itself. Used when a formula step
// folds a scalar modifier (e.g. a boost-derived Output[Fraction]) into a
// running Output[Range].
func Combine[A, B, R any](a Output[A], b Output[B], op, reason string, fn func(A, B) R) Output[R] {
	trace := make([]TraceStep, 0, len(a.Trace)+len(b.Trace)+1)
	trace = append(trace, a.Trace...)
	trace = append(trace, b.Trace...)
	trace = append(trace, TraceStep{Op: op, Reason: reason})
	return Output[R]{Value: fn(a.Value, b.Value), Trace: trace}
}

// Reasons returns just the reason strings, in order, for quick display or
// comparison in tests.
func (o Output[T]) Reasons() []string {
	out := make([]string, len(o.Trace))
	for i, s := range o.Trace {
		out[i] = s.Reason
	}
	return out
}
