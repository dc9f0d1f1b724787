package utils

import (
	"math"
	"testing"
)

func TestNewRandSourceSeeded(t *testing.T) {
	r1 := NewRandSource(42)
	r2 := NewRandSource(42)

	for i := 0; i < 100; i++ {
		v1 := r1.Float64()
		v2 := r2.Float64()
		if v1 != v2 {
			t.Fatalf("same seed should produce same sequence, diverged at %d: %f != %f", i, v1, v2)
		}
	}
}

func TestNewRandSourceDifferentSeeds(t *testing.T) {
	r1 := NewRandSource(1)
	r2 := NewRandSource(2)

	same := true
	for i := 0; i < 10; i++ {
		if r1.Float64() != r2.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical sequences")
	}
}

func TestUniformAngle(t *testing.T) {
	r := NewRandSource(7)
	for i := 0; i < 1000; i++ {
		a := r.UniformAngle()
		if a < -math.Pi || a >= math.Pi {
			t.Fatalf("angle %f outside [-pi, pi)", a)
		}
	}
}

func TestUniformAngles(t *testing.T) {
	r := NewRandSource(7)
	angles := r.UniformAngles(5)
	if len(angles) != 5 {
		t.Fatalf("expected 5 angles, got %d", len(angles))
	}
	for _, a := range angles {
		if a < -math.Pi || a >= math.Pi {
			t.Fatalf("angle %f outside [-pi, pi)", a)
		}
	}
}

func TestBernoulliBoolDegenerate(t *testing.T) {
	r := NewRandSource(13)

	for i := 0; i < 100; i++ {
		if r.BernoulliBool(0) {
			t.Fatalf("p=0 should never yield true")
		}
		if !r.BernoulliBool(1) {
			t.Fatalf("p=1 should always yield true")
		}
		if r.BernoulliBool(-0.5) {
			t.Fatalf("negative p should never yield true")
		}
		if !r.BernoulliBool(1.5) {
			t.Fatalf("p above 1 should always yield true")
		}
	}
}

func TestBernoulliBoolRate(t *testing.T) {
	r := NewRandSource(99)
	const trials = 10000
	hits := 0
	for i := 0; i < trials; i++ {
		if r.BernoulliBool(0.3) {
			hits++
		}
	}
	rate := float64(hits) / trials
	if rate < 0.25 || rate > 0.35 {
		t.Fatalf("expected hit rate near 0.3, got %f", rate)
	}
}

func TestRademacher(t *testing.T) {
	r := NewRandSource(5)
	plus := 0
	minus := 0
	for i := 0; i < 1000; i++ {
		switch r.Rademacher() {
		case 1.0:
			plus++
		case -1.0:
			minus++
		default:
			t.Fatalf("Rademacher returned a value other than +1/-1")
		}
	}
	if plus == 0 || minus == 0 {
		t.Fatalf("expected both signs to occur, got +1 x%d, -1 x%d", plus, minus)
	}
}
