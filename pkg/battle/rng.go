package battle

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// RNG is the single seeded source of nondeterminism a battle draws from.
// Every draw is logged at debug level. RNG never seeds itself from
// wall-clock time: every battle is constructed from an explicit seed so
// two runs from the same snapshot and choice stream produce
// byte-identical logs.
type RNG struct {
	source *rand.Rand
	seed   int64
	draws  int
}

// NewRNG builds a battle RNG from an explicit seed. Two RNGs built from
// the same seed draw the same sequence.
func NewRNG(seed int64) *RNG {
	return &RNG{source: rand.New(rand.NewSource(seed)), seed: seed}
}

// RestoreRNG rebuilds an RNG from a persisted seed and draw count. It
// discards draws raw values from the stream before handing control back,
// advancing the generator roughly to where a snapshot was taken; because
// the original Intn(n) call pattern isn't itself persisted this is not a
// bit-exact replay of the pre-pause draw sequence, only a best-effort
// continuation that keeps Draws() accounting consistent across a
// pause/resume cycle.
func RestoreRNG(seed int64, draws int) *RNG {
	r := NewRNG(seed)
	for i := 0; i < draws; i++ {
		r.source.Int63()
	}
	r.draws = draws
	return r
}

// Seed returns the seed this RNG was constructed with, part of the
// persisted-state layout (§6) so a paused battle can resume its RNG
// stream deterministically.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Draws returns how many values have been drawn so far, recorded in
// snapshots alongside Seed so RestoreRNG can fast-forward the stream by
// that many raw draws; as RestoreRNG notes, this is a best-effort
// continuation, not a bit-exact replay.
func (r *RNG) Draws() int {
	return r.draws
}

// Chance draws a uniform value in [0, den) and reports whether it fell
// below num, i.e. a num/den probability. den == 0 always reports true
// without drawing (an unconditional effect expressed as a "chance" for
// uniformity with conditional ones).
func (r *RNG) Chance(num, den int) bool {
	if den <= 0 {
		return true
	}
	v := r.next(den)
	hit := v < num
	logrus.WithFields(logrus.Fields{
		"function": "Chance",
		"package":  "battle",
		"num":      num,
		"den":      den,
		"draw":     v,
		"hit":      hit,
	}).Debug("rng chance draw")
	return hit
}

// Intn draws a uniform integer in [0, n).
func (r *RNG) Intn(n int) int {
	v := r.next(n)
	logrus.WithFields(logrus.Fields{
		"function": "Intn",
		"package":  "battle",
		"n":        n,
		"draw":     v,
	}).Debug("rng intn draw")
	return v
}

// next draws from the underlying source and advances the draw counter.
func (r *RNG) next(n int) int {
	if n <= 0 {
		return 0
	}
	r.draws++
	return r.source.Intn(n)
}

// MultiHitCount samples the hit count for a multi-hit move's [min, max]
// range. The 2..5 range uses the specific 35/35/15/15% distribution
// (§4.4 step 5); any other range is sampled uniformly.
func (r *RNG) MultiHitCount(min, max int) int {
	if min == 2 && max == 5 {
		roll := r.Intn(100)
		logrus.WithFields(logrus.Fields{
			"function": "MultiHitCount",
			"package":  "battle",
			"roll":     roll,
		}).Debug("multi-hit 2-5 distribution roll")
		switch {
		case roll < 35:
			return 2
		case roll < 70:
			return 3
		case roll < 85:
			return 4
		default:
			return 5
		}
	}
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}

// RandomDamageFactorIndex draws one of the sixteen random-damage-roll
// buckets (§4.2 step 11), returning the 0-based bucket index into
// numeric.RandomDamageFactors.
func (r *RNG) RandomDamageFactorIndex() int {
	return r.Intn(16)
}
