package search

import (
	"context"
	"testing"
)

func TestCoordinateMinimizesQuadratic(t *testing.T) {
	c := NewCoordinate(100, 0.1)
	result, err := c.Minimize(context.Background(), quadratic, []float64{0.5, -0.3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalValue > 0.02 {
		t.Errorf("expected final value near 0, got %f", result.FinalValue)
	}
	// steps of 0.1 from 0.5 and -0.3 land exactly on the origin
	if !result.Converged {
		t.Error("expected convergence at the minimum")
	}
	if result.ConvergenceReason != "no improving neighbor" {
		t.Errorf("unexpected convergence reason: %s", result.ConvergenceReason)
	}
}

func TestCoordinateMonotoneHistory(t *testing.T) {
	c := NewCoordinate(100, 0.1)
	result, err := c.Minimize(context.Background(), quadratic, []float64{1.0, 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(result.History); i++ {
		if result.History[i].Value >= result.History[i-1].Value {
			t.Errorf("history not strictly improving at step %d: %f then %f",
				i, result.History[i-1].Value, result.History[i].Value)
		}
	}
}

func TestCoordinateZeroBudget(t *testing.T) {
	c := NewCoordinate(0, 0.1)
	x0 := []float64{0.4, -0.2}
	result, err := c.Minimize(context.Background(), quadratic, x0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Iterations != 0 {
		t.Errorf("expected 0 iterations, got %d", result.Iterations)
	}
	for i := range x0 {
		if result.FinalParams[i] != x0[i] {
			t.Errorf("expected params unchanged, got %v", result.FinalParams)
		}
	}
}

func TestCoordinateStopsAtLocalMinimum(t *testing.T) {
	c := NewCoordinate(10, 0.1)
	// already at the minimum: the first iteration finds no improving neighbor
	result, err := c.Minimize(context.Background(), quadratic, []float64{0.0, 0.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Converged {
		t.Error("expected convergence at the minimum")
	}
	if result.Iterations != 1 {
		t.Errorf("expected convergence on iteration 1, got %d", result.Iterations)
	}
}

func TestCoordinateDefaultStepSize(t *testing.T) {
	c := NewCoordinate(10, 0)
	if c.stepSize != 0.1 {
		t.Errorf("expected default step size 0.1, got %f", c.stepSize)
	}
}
