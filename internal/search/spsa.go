package search

import (
	"context"
	"fmt"
	"math"

	"github.com/qubosched/experiment-core/pkg/utils"
)

// SPSA minimizes via simultaneous-perturbation stochastic approximation:
// each iteration estimates the gradient from two objective evaluations at a
// random Rademacher perturbation and steps against it. The two-sided
// estimate averages out evaluation noise, so SPSA tolerates the Monte Carlo
// evaluator as well as the analytic one.
type SPSA struct {
	maxIterations int
	rng           *utils.RandSource
	convergence   ConvergenceStrategy

	// gain sequences: a_k = a/(stability + k + 1)^alpha, c_k = c/(k+1)^gamma
	a         float64
	alpha     float64
	c         float64
	gamma     float64
	stability float64
}

// NewSPSA creates an SPSA minimizer with the standard gain defaults
// (alpha 0.602, gamma 0.101) and a stability constant of a tenth of the
// iteration budget.
func NewSPSA(maxIterations int, rng *utils.RandSource) *SPSA {
	return &SPSA{
		maxIterations: maxIterations,
		rng:           rng,
		a:             0.2,
		alpha:         0.602,
		c:             0.1,
		gamma:         0.101,
		stability:     0.1 * float64(maxIterations),
	}
}

// WithConvergence sets an early-stopping strategy. Nil keeps the fixed
// iteration budget.
func (s *SPSA) WithConvergence(strategy ConvergenceStrategy) *SPSA {
	s.convergence = strategy
	return s
}

func (s *SPSA) Name() string {
	return "spsa"
}

func (s *SPSA) Minimize(ctx context.Context, objective Objective, x0 []float64) (*Result, error) {
	if objective == nil {
		return nil, fmt.Errorf("objective function is required")
	}
	if len(x0) == 0 {
		return nil, fmt.Errorf("initial parameters are required")
	}

	var evaluations int64
	eval := func(params []float64) (float64, error) {
		evaluations++
		return objective(params)
	}

	current := cloneParams(x0)
	value, err := eval(current)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate initial parameters: %w", err)
	}

	history := []Step{{Iteration: 0, Value: value, Params: cloneParams(current)}}
	best := cloneParams(current)
	bestValue := value

	delta := make([]float64, len(current))
	plus := make([]float64, len(current))
	minus := make([]float64, len(current))

	for iteration := 1; iteration <= s.maxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		k := float64(iteration - 1)
		ak := s.a / math.Pow(s.stability+k+1, s.alpha)
		ck := s.c / math.Pow(k+1, s.gamma)

		for i := range delta {
			delta[i] = s.rng.Rademacher()
			plus[i] = current[i] + ck*delta[i]
			minus[i] = current[i] - ck*delta[i]
		}

		yPlus, err := eval(plus)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}
		yMinus, err := eval(minus)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}

		gradScale := (yPlus - yMinus) / (2 * ck)
		for i := range current {
			current[i] -= ak * gradScale / delta[i]
		}

		value, err = eval(current)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iteration, err)
		}
		history = append(history, Step{Iteration: iteration, Value: value, Params: cloneParams(current)})

		if value < bestValue {
			bestValue = value
			copy(best, current)
		}

		if s.convergence != nil {
			if converged, reason := s.convergence.CheckConvergence(history); converged {
				return &Result{
					FinalParams:       best,
					FinalValue:        bestValue,
					Iterations:        iteration,
					Evaluations:       evaluations,
					Converged:         true,
					ConvergenceReason: reason,
					History:           history,
				}, nil
			}
		}
	}

	return &Result{
		FinalParams:       best,
		FinalValue:        bestValue,
		Iterations:        s.maxIterations,
		Evaluations:       evaluations,
		Converged:         false,
		ConvergenceReason: "max iterations reached",
		History:           history,
	}, nil
}
