// Package entropy provides the single randomness source for a simulation
// run. Every stochastic decision — gender assignment, breeding rolls, check
// ordering, scan ordering — draws from one seeded Source, so a run is
// reproducible bit-for-bit from its seed.
package entropy

import (
	"math/rand"
	"time"
)

// Source is a seedable random provider. Not safe for concurrent use; the
// simulation is turn-based and a run owns exactly one Source.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Source. A zero seed picks one from the clock; the effective
// seed is retained so it can be reported and replayed.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the effective seed of this run.
func (s *Source) Seed() int64 { return s.seed }

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }

// Coin returns true with probability 1/2.
func (s *Source) Coin() bool { return s.rng.Intn(2) == 0 }

// Chance returns true with probability 1-in-n.
func (s *Source) Chance(n int) bool { return s.rng.Intn(n) == 0 }

// Shuffle randomizes the order of n elements through the given swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) { s.rng.Shuffle(n, swap) }
