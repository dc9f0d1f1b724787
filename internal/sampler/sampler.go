// Package sampler draws bitstring assignments from the product distribution
// that a parameter vector defines: node i is selected independently with
// probability sin^2(theta_i / 2).
package sampler

import (
	"fmt"
	"math"

	"github.com/qubosched/experiment-core/pkg/utils"
)

// Sampler draws assignments for a fixed node count
type Sampler struct {
	numNodes int
	rng      *utils.RandSource
}

// New creates a sampler over numNodes binary variables
func New(numNodes int, rng *utils.RandSource) (*Sampler, error) {
	if numNodes < 1 {
		return nil, fmt.Errorf("sampler needs at least 1 node, got %d", numNodes)
	}
	return &Sampler{numNodes: numNodes, rng: rng}, nil
}

// Probabilities converts angles to per-node selection probabilities
func Probabilities(params []float64) []float64 {
	probs := make([]float64, len(params))
	for i, theta := range params {
		s := math.Sin(theta / 2)
		probs[i] = s * s
	}
	return probs
}

// Sample draws the given number of independent assignments and returns a
// histogram over all 2^numNodes indices. Bit i of an index is node i's
// selection state, least significant first. The counts always sum to trials.
func (s *Sampler) Sample(params []float64, trials int) ([]int64, error) {
	if len(params) != s.numNodes {
		return nil, fmt.Errorf("expected %d parameters, got %d", s.numNodes, len(params))
	}
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}

	probs := Probabilities(params)
	counts := make([]int64, 1<<s.numNodes)
	for trial := 0; trial < trials; trial++ {
		index := 0
		for i, p := range probs {
			if s.rng.BernoulliBool(p) {
				index |= 1 << i
			}
		}
		counts[index]++
	}
	return counts, nil
}

// TopIndex returns the most frequent assignment in a count histogram,
// preferring the lowest index on ties.
func TopIndex(counts []int64) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}
