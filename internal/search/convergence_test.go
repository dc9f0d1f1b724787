package search

import (
	"testing"
)

func flatHistory(n int, value float64) []Step {
	history := make([]Step, n)
	for i := range history {
		history[i] = Step{Iteration: i, Value: value}
	}
	return history
}

func improvingHistory(n int) []Step {
	history := make([]Step, n)
	for i := range history {
		history[i] = Step{Iteration: i, Value: float64(-i)}
	}
	return history
}

func TestNoImprovementStrategyDetectsStall(t *testing.T) {
	s := NewNoImprovementStrategy(nil)

	// best at the start, then flat for longer than the window
	history := append([]Step{{Iteration: 0, Value: -5}}, flatHistory(30, -4)...)
	converged, reason := s.CheckConvergence(history)
	if !converged {
		t.Fatal("expected convergence on stalled history")
	}
	if reason == "" {
		t.Error("expected a convergence reason")
	}
}

func TestNoImprovementStrategyKeepsImproving(t *testing.T) {
	s := NewNoImprovementStrategy(nil)
	if converged, _ := s.CheckConvergence(improvingHistory(50)); converged {
		t.Error("expected no convergence while still improving")
	}
}

func TestNoImprovementStrategyRespectsMinIterations(t *testing.T) {
	s := NewNoImprovementStrategy(&ConvergenceConfig{
		NoImprovementIterations: 2,
		ValueTolerance:          1e-6,
		MinIterations:           10,
		PlateauIterations:       5,
	})
	if converged, _ := s.CheckConvergence(flatHistory(5, -4)); converged {
		t.Error("expected no convergence before min iterations")
	}
}

func TestPlateauStrategyDetectsPlateau(t *testing.T) {
	s := NewPlateauStrategy(nil)
	converged, reason := s.CheckConvergence(flatHistory(30, -7.9))
	if !converged {
		t.Fatal("expected convergence on flat history")
	}
	if reason == "" {
		t.Error("expected a convergence reason")
	}
}

func TestPlateauStrategyIgnoresVaryingValues(t *testing.T) {
	s := NewPlateauStrategy(nil)
	if converged, _ := s.CheckConvergence(improvingHistory(50)); converged {
		t.Error("expected no convergence on strictly improving history")
	}
}

func TestCombinedStrategyTriggersOnEither(t *testing.T) {
	s := NewCombinedStrategy(nil)

	converged, reason := s.CheckConvergence(flatHistory(40, -7.9))
	if !converged {
		t.Fatal("expected combined strategy to converge on flat history")
	}
	if reason == "" {
		t.Error("expected a prefixed convergence reason")
	}

	if converged, _ := s.CheckConvergence(improvingHistory(50)); converged {
		t.Error("expected no convergence on improving history")
	}
}

func TestStrategyNames(t *testing.T) {
	if NewNoImprovementStrategy(nil).Name() != "no_improvement" {
		t.Error("unexpected no-improvement strategy name")
	}
	if NewPlateauStrategy(nil).Name() != "plateau" {
		t.Error("unexpected plateau strategy name")
	}
	if NewCombinedStrategy(nil).Name() != "combined" {
		t.Error("unexpected combined strategy name")
	}
}
