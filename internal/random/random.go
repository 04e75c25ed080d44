// Package random provides the seeded number source used to initialize
// network parameters.
//
// The sequence is fully determined by the seed, so a network built from
// the same seed and widths always starts from the same weights.
package random

import (
	"math"
	"math/rand/v2"
)

// DefaultSeed is used by New when no seed is given.
const DefaultSeed uint64 = 42

// Random is a deterministic pseudo-random source.
//
// Random is not safe for concurrent use.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// New creates a source seeded with seed.
func New(seed uint64) *Random {
	r := &Random{}
	r.Reseed(seed)
	return r
}

// Seed returns the seed the current sequence started from.
func (r *Random) Seed() uint64 {
	return r.seed
}

// Reseed restarts the sequence from seed.
func (r *Random) Reseed(seed uint64) {
	r.seed = seed
	r.rng = rand.New(rand.NewPCG(seed, seed))
}

// Float64 returns a number in [0, 1).
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// RandomInt returns an integer in the inclusive range [minVal, maxVal].
//
// Panics if maxVal < minVal.
func (r *Random) RandomInt(minVal, maxVal int) int {
	if maxVal < minVal {
		panic("random: RandomInt called with max < min")
	}
	span := float64(maxVal - minVal + 1)
	return int(math.Floor(r.rng.Float64()*span + float64(minVal)))
}
