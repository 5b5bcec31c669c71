// Package prng provides a small seeded pseudo-random source for
// reproducible scene generation. Every generator in the repository draws
// from one of these so that a given seed always produces the same backdrop.
package prng

import (
	"math"
	"time"
)

const (
	mulA = 1664525
	mulC = 1013904223
	mod  = 1 << 32
)

// Source is a restartable linear congruential generator. Not suitable for
// anything beyond visual reproducibility.
type Source struct {
	state uint64
	seed  int64

	// cached second Box-Muller deviate
	spare    float64
	hasSpare bool
}

// New returns a source seeded with the given value. A seed of 0 is replaced
// with the current time, matching the CLI's --seed default behavior.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Source{seed: seed}
	s.Reset()
	return s
}

// Seed reports the effective seed, for display and replay.
func (s *Source) Seed() int64 { return s.seed }

// Reset restarts the sequence from the original seed.
func (s *Source) Reset() {
	s.state = uint64(s.seed) % mod
	s.hasSpare = false
}

func (s *Source) next() uint64 {
	s.state = (s.state*mulA + mulC) % mod
	return s.state
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.next()) / float64(mod)
}

// IntN returns an integer in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return int(s.next() % uint64(n))
}

// Range returns a value uniformly distributed in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// Norm returns a standard normal deviate via the Box-Muller transform.
// Deviates are produced in pairs; the second of each pair is cached.
func (s *Source) Norm() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}
	u1 := s.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	u2 := s.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	s.spare = r * math.Sin(2*math.Pi*u2)
	s.hasSpare = true
	return r * math.Cos(2*math.Pi*u2)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.Float64() < p
}
