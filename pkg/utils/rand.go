package utils

import (
	"math"
	"math/rand"
	"time"
)

// RandSource is a seedable random number generator for a single run.
// It is not safe for concurrent use; each run owns its own source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed falls back to the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// UniformAngle returns a uniformly distributed rotation angle in [-pi, pi)
func (r *RandSource) UniformAngle() float64 {
	return r.UniformFloat64(-math.Pi, math.Pi)
}

// UniformAngles returns n independent uniform angles in [-pi, pi)
func (r *RandSource) UniformAngles(n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = r.UniformAngle()
	}
	return angles
}

// BernoulliBool returns true with probability p, false otherwise.
// p <= 0 always returns false and p >= 1 always returns true.
func (r *RandSource) BernoulliBool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}

// Rademacher returns +1 or -1 with equal probability
func (r *RandSource) Rademacher() float64 {
	if r.rng.Intn(2) == 0 {
		return 1.0
	}
	return -1.0
}
