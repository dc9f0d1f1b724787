package search

import (
	"fmt"
	"math"
)

// ConvergenceStrategy defines how to detect early stopping
type ConvergenceStrategy interface {
	// CheckConvergence checks if the search has converged based on history
	CheckConvergence(history []Step) (bool, string)
	// Name returns the name of the convergence strategy
	Name() string
}

// ConvergenceConfig holds configuration for convergence detection
type ConvergenceConfig struct {
	// NoImprovementIterations is the number of iterations without improvement before stopping
	NoImprovementIterations int
	// ValueTolerance is the absolute tolerance for values to be considered equal
	ValueTolerance float64
	// MinIterations is the minimum number of iterations before convergence can be detected
	MinIterations int
	// PlateauIterations is the number of iterations with similar values before stopping
	PlateauIterations int
}

// DefaultConvergenceConfig returns a default convergence configuration
func DefaultConvergenceConfig() *ConvergenceConfig {
	return &ConvergenceConfig{
		NoImprovementIterations: 25,
		ValueTolerance:          1e-6,
		MinIterations:           10,
		PlateauIterations:       25,
	}
}

// NoImprovementStrategy detects convergence when the best value has not
// improved for N iterations
type NoImprovementStrategy struct {
	config *ConvergenceConfig
}

// NewNoImprovementStrategy creates a new no-improvement convergence strategy
func NewNoImprovementStrategy(config *ConvergenceConfig) *NoImprovementStrategy {
	if config == nil {
		config = DefaultConvergenceConfig()
	}
	return &NoImprovementStrategy{config: config}
}

func (s *NoImprovementStrategy) Name() string {
	return "no_improvement"
}

func (s *NoImprovementStrategy) CheckConvergence(history []Step) (converged bool, reason string) {
	if len(history) < s.config.MinIterations {
		return false, ""
	}

	bestValue := math.MaxFloat64
	bestIteration := -1
	for i, step := range history {
		if step.Value < bestValue-s.config.ValueTolerance {
			bestValue = step.Value
			bestIteration = i
		}
	}
	if bestIteration < 0 {
		return false, ""
	}

	iterationsSinceBest := len(history) - 1 - bestIteration
	if iterationsSinceBest >= s.config.NoImprovementIterations {
		return true, fmt.Sprintf("no improvement for %d iterations (best at iteration %d)", iterationsSinceBest, bestIteration)
	}

	return false, ""
}

// PlateauStrategy detects convergence when recent values are all within
// tolerance of each other
type PlateauStrategy struct {
	config *ConvergenceConfig
}

// NewPlateauStrategy creates a new plateau convergence strategy
func NewPlateauStrategy(config *ConvergenceConfig) *PlateauStrategy {
	if config == nil {
		config = DefaultConvergenceConfig()
	}
	return &PlateauStrategy{config: config}
}

func (s *PlateauStrategy) Name() string {
	return "plateau"
}

func (s *PlateauStrategy) CheckConvergence(history []Step) (converged bool, reason string) {
	if len(history) < s.config.MinIterations || len(history) < s.config.PlateauIterations {
		return false, ""
	}

	recent := history[len(history)-s.config.PlateauIterations:]
	minValue := recent[0].Value
	maxValue := recent[0].Value
	for _, step := range recent {
		if step.Value < minValue {
			minValue = step.Value
		}
		if step.Value > maxValue {
			maxValue = step.Value
		}
	}

	valueRange := maxValue - minValue
	if valueRange <= s.config.ValueTolerance {
		return true, fmt.Sprintf("value plateaued for %d iterations (range: %.6g)", s.config.PlateauIterations, valueRange)
	}

	return false, ""
}

// CombinedStrategy converges as soon as any of its strategies does
type CombinedStrategy struct {
	strategies []ConvergenceStrategy
}

// NewCombinedStrategy creates a combined strategy from the no-improvement
// and plateau detectors
func NewCombinedStrategy(config *ConvergenceConfig) *CombinedStrategy {
	if config == nil {
		config = DefaultConvergenceConfig()
	}
	return &CombinedStrategy{
		strategies: []ConvergenceStrategy{
			NewNoImprovementStrategy(config),
			NewPlateauStrategy(config),
		},
	}
}

func (s *CombinedStrategy) Name() string {
	return "combined"
}

func (s *CombinedStrategy) CheckConvergence(history []Step) (converged bool, reason string) {
	for _, strategy := range s.strategies {
		if converged, reason := strategy.CheckConvergence(history); converged {
			return true, fmt.Sprintf("%s: %s", strategy.Name(), reason)
		}
	}
	return false, ""
}

// AddStrategy adds a custom strategy to the combined strategy
func (s *CombinedStrategy) AddStrategy(strategy ConvergenceStrategy) {
	s.strategies = append(s.strategies, strategy)
}
