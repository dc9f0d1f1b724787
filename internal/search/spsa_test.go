package search

import (
	"context"
	"math"
	"testing"

	"github.com/qubosched/experiment-core/pkg/utils"
)

func quadratic(params []float64) (float64, error) {
	sum := 0.0
	for _, x := range params {
		sum += x * x
	}
	return sum, nil
}

func TestSPSAZeroBudgetReturnsInitial(t *testing.T) {
	s := NewSPSA(0, utils.NewRandSource(1))
	x0 := []float64{1.5, -0.5}
	result, err := s.Minimize(context.Background(), quadratic, x0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Iterations != 0 {
		t.Errorf("expected 0 iterations, got %d", result.Iterations)
	}
	if result.Evaluations != 1 {
		t.Errorf("expected exactly 1 evaluation, got %d", result.Evaluations)
	}
	for i := range x0 {
		if result.FinalParams[i] != x0[i] {
			t.Errorf("expected params unchanged, got %v", result.FinalParams)
		}
	}
	if result.FinalValue != 2.5 {
		t.Errorf("expected initial value 2.5, got %f", result.FinalValue)
	}
	if result.Converged {
		t.Error("zero-budget run must not report convergence")
	}
}

func TestSPSAMinimizesQuadratic(t *testing.T) {
	// in one dimension the two-sided perturbation estimate is the exact
	// central difference regardless of the perturbation sign, so the
	// descent is deterministic
	s := NewSPSA(50, utils.NewRandSource(1))
	result, err := s.Minimize(context.Background(), quadratic, []float64{1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalValue >= 1.0 {
		t.Errorf("expected improvement over initial value 1.0, got %f", result.FinalValue)
	}
	if result.FinalValue > 0.1 {
		t.Errorf("expected final value near 0, got %f", result.FinalValue)
	}
	if math.Abs(result.FinalParams[0]) >= 1.0 {
		t.Errorf("expected final point closer to 0, got %f", result.FinalParams[0])
	}
	if result.Iterations != 50 {
		t.Errorf("expected the full 50 iterations, got %d", result.Iterations)
	}
	// 3 evaluations per iteration plus the initial one
	if result.Evaluations != 151 {
		t.Errorf("expected 151 evaluations, got %d", result.Evaluations)
	}
}

func TestSPSAReproducible(t *testing.T) {
	run := func(seed int64) *Result {
		s := NewSPSA(20, utils.NewRandSource(seed))
		result, err := s.Minimize(context.Background(), quadratic, []float64{0.7, -1.2, 0.3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result
	}

	r1 := run(42)
	r2 := run(42)
	if r1.FinalValue != r2.FinalValue {
		t.Errorf("same seed produced different final values: %f vs %f", r1.FinalValue, r2.FinalValue)
	}
	for i := range r1.FinalParams {
		if r1.FinalParams[i] != r2.FinalParams[i] {
			t.Errorf("same seed produced different params at %d: %f vs %f", i, r1.FinalParams[i], r2.FinalParams[i])
		}
	}
}

func TestSPSATracksBestValue(t *testing.T) {
	s := NewSPSA(30, utils.NewRandSource(3))
	result, err := s.Minimize(context.Background(), quadratic, []float64{2.0, -1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, step := range result.History {
		if step.Value < result.FinalValue {
			t.Errorf("history holds value %f below reported final %f", step.Value, result.FinalValue)
		}
	}
}

func TestSPSAHistoryStartsAtInitial(t *testing.T) {
	s := NewSPSA(5, utils.NewRandSource(1))
	result, err := s.Minimize(context.Background(), quadratic, []float64{1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.History) != 6 {
		t.Fatalf("expected 6 history entries, got %d", len(result.History))
	}
	if result.History[0].Iteration != 0 || result.History[0].Value != 1.0 {
		t.Errorf("expected initial history entry at value 1.0, got %+v", result.History[0])
	}
}

func TestSPSAContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSPSA(100, utils.NewRandSource(1))
	if _, err := s.Minimize(ctx, quadratic, []float64{1.0}); err == nil {
		t.Error("expected error from cancelled context, got nil")
	}
}

func TestSPSAValidation(t *testing.T) {
	s := NewSPSA(10, utils.NewRandSource(1))
	if _, err := s.Minimize(context.Background(), nil, []float64{1.0}); err == nil {
		t.Error("expected error for nil objective, got nil")
	}
	if _, err := s.Minimize(context.Background(), quadratic, nil); err == nil {
		t.Error("expected error for empty initial point, got nil")
	}
}
