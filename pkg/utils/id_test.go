package utils

import (
	"strings"
	"testing"
)

func TestGenerateExperimentID(t *testing.T) {
	id := GenerateExperimentID()
	if !strings.HasPrefix(id, "exp-") {
		t.Fatalf("expected exp- prefix, got %s", id)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateExperimentID()
		if seen[id] {
			t.Fatalf("duplicate experiment ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == "" || b == "" {
		t.Fatalf("expected non-empty IDs")
	}
	if a == b {
		t.Fatalf("expected unique IDs, got %s twice", a)
	}
}
