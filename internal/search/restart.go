package search

import "github.com/qubosched/experiment-core/pkg/utils"

// RestartStrategy draws the initial parameter vector for one run
type RestartStrategy interface {
	// Draw returns n initial angles from the run's random source
	Draw(rng *utils.RandSource, n int) []float64

	// Name returns the strategy's name for logging
	Name() string
}

// UniformRestart draws every angle uniformly from [-pi, pi)
type UniformRestart struct{}

// NewUniformRestart creates the default restart strategy
func NewUniformRestart() *UniformRestart {
	return &UniformRestart{}
}

func (r *UniformRestart) Name() string {
	return "uniform"
}

func (r *UniformRestart) Draw(rng *utils.RandSource, n int) []float64 {
	return rng.UniformAngles(n)
}

// FixedRestart always starts from the same point. Used for reproducing a
// single run or for the zero-budget evaluation of a known assignment.
type FixedRestart struct {
	params []float64
}

// NewFixedRestart creates a restart strategy pinned to the given point
func NewFixedRestart(params []float64) *FixedRestart {
	return &FixedRestart{params: cloneParams(params)}
}

func (r *FixedRestart) Name() string {
	return "fixed"
}

func (r *FixedRestart) Draw(rng *utils.RandSource, n int) []float64 {
	return cloneParams(r.params)
}
