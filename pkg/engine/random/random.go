// Package random wraps a seeded math/rand source with the two draws the
// generator needs: bounded integers and a copying Fisher–Yates shuffle.
package random

import (
	"math/rand"
	"time"
)

// Source is a seeded random source. It is not safe for concurrent use.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// New returns a deterministic source for the given seed
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewSeed returns a time-based seed for a fresh game
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// Seed returns the seed the source was created with
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a uniformly random integer in [0, bound)
func (s *Source) Intn(bound int) int {
	return s.rng.Intn(bound)
}

// Shuffle returns a shuffled copy of seq; seq itself is left untouched.
// It walks from the last index down to 1 swapping with an index in [0, i].
func Shuffle[T any](s *Source, seq []T) []T {
	shuffled := make([]T, len(seq))
	copy(shuffled, seq)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
