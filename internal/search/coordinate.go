package search

import (
	"context"
	"fmt"
)

// Coordinate is a hill-climbing minimizer over the angle space: each
// iteration evaluates the 2n neighbors one step away along each coordinate
// and moves to the best one if it improves. It assumes a noiseless
// objective; use SPSA for stochastic evaluators.
type Coordinate struct {
	maxIterations int
	stepSize      float64
	convergence   ConvergenceStrategy
}

// NewCoordinate creates a coordinate-search minimizer with the given step
// size in radians
func NewCoordinate(maxIterations int, stepSize float64) *Coordinate {
	if stepSize <= 0 {
		stepSize = 0.1
	}
	return &Coordinate{
		maxIterations: maxIterations,
		stepSize:      stepSize,
	}
}

// WithConvergence sets an early-stopping strategy. Nil keeps the fixed
// iteration budget; the search still stops when no neighbor improves.
func (c *Coordinate) WithConvergence(strategy ConvergenceStrategy) *Coordinate {
	c.convergence = strategy
	return c
}

func (c *Coordinate) Name() string {
	return "coordinate"
}

func (c *Coordinate) Minimize(ctx context.Context, objective Objective, x0 []float64) (*Result, error) {
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
	currentValue, err := eval(current)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate initial parameters: %w", err)
	}

	history := []Step{{Iteration: 0, Value: currentValue, Params: cloneParams(current)}}

	neighbor := make([]float64, len(current))
	for iteration := 1; iteration <= c.maxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		bestValue := currentValue
		bestCoord := -1
		bestDir := 0.0

		for i := range current {
			for _, dir := range []float64{1, -1} {
				copy(neighbor, current)
				neighbor[i] += dir * c.stepSize
				value, err := eval(neighbor)
				if err != nil {
					return nil, fmt.Errorf("iteration %d: %w", iteration, err)
				}
				if value < bestValue {
					bestValue = value
					bestCoord = i
					bestDir = dir
				}
			}
		}

		if bestCoord < 0 {
			return &Result{
				FinalParams:       current,
				FinalValue:        currentValue,
				Iterations:        iteration,
				Evaluations:       evaluations,
				Converged:         true,
				ConvergenceReason: "no improving neighbor",
				History:           history,
			}, nil
		}

		current[bestCoord] += bestDir * c.stepSize
		currentValue = bestValue
		history = append(history, Step{Iteration: iteration, Value: currentValue, Params: cloneParams(current)})

		if c.convergence != nil {
			if converged, reason := c.convergence.CheckConvergence(history); converged {
				return &Result{
					FinalParams:       current,
					FinalValue:        currentValue,
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
		FinalParams:       current,
		FinalValue:        currentValue,
		Iterations:        c.maxIterations,
		Evaluations:       evaluations,
		Converged:         false,
		ConvergenceReason: "max iterations reached",
		History:           history,
	}, nil
}
