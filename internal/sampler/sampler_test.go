package sampler

import (
	"math"
	"testing"

	"github.com/qubosched/experiment-core/pkg/utils"
)

func TestSampleCountsSumToTrials(t *testing.T) {
	s, err := New(5, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts, err := s.Sample([]float64{0.3, 1.2, -0.7, 2.1, 0.5}, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(counts))
	}
	var total int64
	for _, c := range counts {
		total += c
	}
	if total != 1000 {
		t.Errorf("expected counts to sum to 1000, got %d", total)
	}
}

func TestSampleDegenerateAngles(t *testing.T) {
	s, err := New(5, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// angles 0 and pi pin every node, so all trials land on one index
	counts, err := s.Sample([]float64{0, math.Pi, 0, math.Pi, 0}, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[10] != 500 {
		t.Errorf("expected all 500 trials at index 10, got %d", counts[10])
	}
	for i, c := range counts {
		if i != 10 && c != 0 {
			t.Errorf("expected 0 trials at index %d, got %d", i, c)
		}
	}
}

func TestSampleAllZeroAngles(t *testing.T) {
	s, err := New(3, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts, err := s.Sample([]float64{0, 0, 0}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[0] != 100 {
		t.Errorf("expected all trials at index 0 for zero angles, got %d", counts[0])
	}
}

func TestSampleReproducible(t *testing.T) {
	params := []float64{0.5, -1.0, 2.0, 0.1, -0.3}

	s1, _ := New(5, utils.NewRandSource(42))
	s2, _ := New(5, utils.NewRandSource(42))
	c1, err := s1.Sample(params, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := s2.Sample(params, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("same seed produced different counts at index %d: %d vs %d", i, c1[i], c2[i])
		}
	}
}

func TestSampleValidation(t *testing.T) {
	s, _ := New(5, utils.NewRandSource(1))
	if _, err := s.Sample([]float64{0, 0}, 100); err == nil {
		t.Error("expected error for wrong parameter count, got nil")
	}
	if _, err := s.Sample([]float64{0, 0, 0, 0, 0}, 0); err == nil {
		t.Error("expected error for zero trials, got nil")
	}
	if _, err := New(0, utils.NewRandSource(1)); err == nil {
		t.Error("expected error for zero nodes, got nil")
	}
}

func TestProbabilities(t *testing.T) {
	probs := Probabilities([]float64{0, math.Pi, math.Pi / 2})
	if probs[0] != 0 {
		t.Errorf("expected probability 0 at angle 0, got %f", probs[0])
	}
	if math.Abs(probs[1]-1) > 1e-12 {
		t.Errorf("expected probability 1 at angle pi, got %f", probs[1])
	}
	if math.Abs(probs[2]-0.5) > 1e-12 {
		t.Errorf("expected probability 0.5 at angle pi/2, got %f", probs[2])
	}
}

func TestTopIndex(t *testing.T) {
	counts := []int64{5, 0, 12, 12, 3}
	if got := TopIndex(counts); got != 2 {
		t.Errorf("expected lowest tied index 2, got %d", got)
	}
}
