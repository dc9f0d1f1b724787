package search

import (
	"testing"

	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/utils"
)

func TestFromSpecSPSA(t *testing.T) {
	m, err := FromSpec(&config.OptimizerSpec{Kind: "spsa"}, 100, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := m.(*SPSA)
	if !ok {
		t.Fatalf("expected SPSA minimizer, got %T", m)
	}
	if s.alpha != 0.602 || s.gamma != 0.101 {
		t.Errorf("expected default gains, got alpha=%f gamma=%f", s.alpha, s.gamma)
	}
	if s.stability != 10 {
		t.Errorf("expected stability 10 for 100 iterations, got %f", s.stability)
	}
}

func TestFromSpecSPSAOverrides(t *testing.T) {
	m, err := FromSpec(&config.OptimizerSpec{
		Kind: "spsa",
		SPSA: config.SPSASpec{A: 0.5, Alpha: 0.7, C: 0.2, Gamma: 0.15, Stability: 3},
	}, 100, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := m.(*SPSA)
	if s.a != 0.5 || s.alpha != 0.7 || s.c != 0.2 || s.gamma != 0.15 || s.stability != 3 {
		t.Errorf("overrides not applied: %+v", s)
	}
}

func TestFromSpecCoordinate(t *testing.T) {
	m, err := FromSpec(&config.OptimizerSpec{Kind: "coordinate", StepSize: 0.2}, 50, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := m.(*Coordinate)
	if !ok {
		t.Fatalf("expected coordinate minimizer, got %T", m)
	}
	if c.stepSize != 0.2 {
		t.Errorf("expected step size 0.2, got %f", c.stepSize)
	}
}

func TestFromSpecEarlyStopping(t *testing.T) {
	m, err := FromSpec(&config.OptimizerSpec{Kind: "spsa", EarlyStopping: "combined"}, 100, utils.NewRandSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.(*SPSA).convergence == nil {
		t.Error("expected a convergence strategy to be set")
	}

	if _, err := FromSpec(&config.OptimizerSpec{Kind: "spsa", EarlyStopping: "whenever"}, 100, utils.NewRandSource(1)); err == nil {
		t.Error("expected error for unknown early stopping, got nil")
	}
}

func TestFromSpecUnknownKind(t *testing.T) {
	if _, err := FromSpec(&config.OptimizerSpec{Kind: "anneal"}, 100, utils.NewRandSource(1)); err == nil {
		t.Error("expected error for unknown optimizer kind, got nil")
	}
}
