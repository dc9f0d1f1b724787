// Package search implements black-box minimizers over unconstrained real
// parameter vectors. Minimizers run a fixed iteration budget by default;
// early stopping is opt-in via a convergence strategy. A run that stalls at
// a local minimum is a valid outcome, not an error.
package search

import (
	"context"
	"fmt"

	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/utils"
)

// Objective maps a parameter vector to a scalar cost. It may be noisy.
type Objective func(params []float64) (float64, error)

// Step records the state after one minimizer iteration
type Step struct {
	Iteration int
	Value     float64
	Params    []float64
}

// Result is the outcome of one minimization
type Result struct {
	FinalParams       []float64
	FinalValue        float64
	Iterations        int
	Evaluations       int64
	Converged         bool
	ConvergenceReason string
	History           []Step
}

// Minimizer searches for a parameter vector minimizing an objective
type Minimizer interface {
	// Minimize runs the search from x0. A zero iteration budget evaluates
	// x0 once and returns it unchanged.
	Minimize(ctx context.Context, objective Objective, x0 []float64) (*Result, error)

	// Name returns the minimizer's name for logging
	Name() string
}

// FromSpec builds a minimizer of the configured kind. The random source
// drives SPSA's perturbations; coordinate search ignores it.
func FromSpec(spec *config.OptimizerSpec, maxIterations int, rng *utils.RandSource) (Minimizer, error) {
	strategy, err := strategyFromSpec(spec.EarlyStopping)
	if err != nil {
		return nil, err
	}

	switch spec.Kind {
	case "spsa":
		s := NewSPSA(maxIterations, rng).WithConvergence(strategy)
		if spec.SPSA.A > 0 {
			s.a = spec.SPSA.A
		}
		if spec.SPSA.Alpha > 0 {
			s.alpha = spec.SPSA.Alpha
		}
		if spec.SPSA.C > 0 {
			s.c = spec.SPSA.C
		}
		if spec.SPSA.Gamma > 0 {
			s.gamma = spec.SPSA.Gamma
		}
		if spec.SPSA.Stability > 0 {
			s.stability = spec.SPSA.Stability
		}
		return s, nil
	case "coordinate":
		return NewCoordinate(maxIterations, spec.StepSize).WithConvergence(strategy), nil
	default:
		return nil, fmt.Errorf("unknown optimizer kind: %s", spec.Kind)
	}
}

func strategyFromSpec(name string) (ConvergenceStrategy, error) {
	switch name {
	case "":
		return nil, nil
	case "no_improvement":
		return NewNoImprovementStrategy(nil), nil
	case "plateau":
		return NewPlateauStrategy(nil), nil
	case "combined":
		return NewCombinedStrategy(nil), nil
	default:
		return nil, fmt.Errorf("unknown early stopping strategy: %s", name)
	}
}

func cloneParams(params []float64) []float64 {
	return append([]float64(nil), params...)
}
