package runner

import (
	"context"
	"math"
	"testing"

	"github.com/qubosched/experiment-core/internal/search"
	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/models"
)

func testSpec() *config.Spec {
	spec := config.DefaultSpec()
	spec.NumRuns = 8
	spec.MaxIterations = 30
	spec.Trials = 200
	spec.Seed = 42
	return spec
}

func TestRunZeroIterationsFromZeros(t *testing.T) {
	spec := testSpec()
	spec.NumRuns = 1
	spec.MaxIterations = 0

	r, err := New(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.WithRestart(search.NewFixedRestart([]float64{0, 0, 0, 0, 0}))

	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(result.Runs))
	}

	run := result.Runs[0]
	if run.FinalValue != -4.0 {
		t.Errorf("expected final value -4.0, got %f", run.FinalValue)
	}
	for i, p := range run.FinalParams {
		if p != 0 {
			t.Errorf("expected params unchanged, got %f at %d", p, i)
		}
	}
	// zero angles pin the all-zeros assignment
	if run.Counts[0] != 200 {
		t.Errorf("expected all 200 trials at index 0, got %d", run.Counts[0])
	}
	if run.ReachedGlobal {
		t.Error("-4.0 must not count as reaching the global minimum")
	}
}

func TestRunEveryRepetitionRecorded(t *testing.T) {
	spec := testSpec()
	r, err := New(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Runs) != spec.NumRuns {
		t.Fatalf("expected %d runs, got %d", spec.NumRuns, len(result.Runs))
	}
	for i, run := range result.Runs {
		if run.Index != i {
			t.Errorf("run %d carries index %d", i, run.Index)
		}
		if run.Seed != spec.Seed+int64(i) {
			t.Errorf("run %d carries seed %d, expected %d", i, run.Seed, spec.Seed+int64(i))
		}
		var total int64
		for _, c := range run.Counts {
			total += c
		}
		if total != int64(spec.Trials) {
			t.Errorf("run %d counts sum to %d, expected %d", i, total, spec.Trials)
		}
	}
	if result.Summary.TotalRuns != spec.NumRuns {
		t.Errorf("summary reports %d runs", result.Summary.TotalRuns)
	}
	if result.Penalty != 0.5 {
		t.Errorf("expected penalty 0.5 carried, got %f", result.Penalty)
	}
}

func TestRunReproducibleAcrossParallelism(t *testing.T) {
	run := func(parallelism int) *models.ExperimentResult {
		spec := testSpec()
		spec.Parallelism = parallelism
		r, err := New(spec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result
	}

	sequential := run(1)
	parallel := run(4)

	for i := range sequential.Runs {
		s := sequential.Runs[i]
		p := parallel.Runs[i]
		if s.FinalValue != p.FinalValue {
			t.Errorf("run %d differs across parallelism: %f vs %f", i, s.FinalValue, p.FinalValue)
		}
		for j := range s.FinalParams {
			if s.FinalParams[j] != p.FinalParams[j] {
				t.Errorf("run %d param %d differs: %f vs %f", i, j, s.FinalParams[j], p.FinalParams[j])
			}
		}
		for j := range s.Counts {
			if s.Counts[j] != p.Counts[j] {
				t.Errorf("run %d count %d differs: %d vs %d", i, j, s.Counts[j], p.Counts[j])
			}
		}
	}
	if sequential.Summary.MeanValue != parallel.Summary.MeanValue {
		t.Errorf("summary mean differs: %f vs %f", sequential.Summary.MeanValue, parallel.Summary.MeanValue)
	}
}

func TestRunSameSeedSameResult(t *testing.T) {
	run := func() *models.ExperimentResult {
		r, err := New(testSpec())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result
	}

	r1 := run()
	r2 := run()
	for i := range r1.Runs {
		if r1.Runs[i].FinalValue != r2.Runs[i].FinalValue {
			t.Errorf("run %d differs across repeats: %f vs %f", i, r1.Runs[i].FinalValue, r2.Runs[i].FinalValue)
		}
	}
}

func TestRunObserverFiresPerRun(t *testing.T) {
	spec := testSpec()
	r, err := New(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int]bool)
	r.WithObserver(func(run models.Run) {
		seen[run.Index] = true
	})

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != spec.NumRuns {
		t.Errorf("observer saw %d runs, expected %d", len(seen), spec.NumRuns)
	}
}

func TestRunValuesNeverBelowTrueMinimum(t *testing.T) {
	spec := testSpec()
	spec.NumRuns = 20
	r, err := New(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the analytic expectation is bounded below by the global minimum -8
	for _, run := range result.Runs {
		if run.FinalValue < -8.0-1e-9 {
			t.Errorf("run %d reports %f below the true minimum", run.Index, run.FinalValue)
		}
	}
	if math.IsNaN(result.Summary.MeanValue) {
		t.Error("summary mean is NaN")
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := New(testSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Run(ctx); err == nil {
		t.Error("expected error from cancelled context, got nil")
	}
}

func TestNewRejectsBadSpec(t *testing.T) {
	spec := testSpec()
	spec.Hamiltonian.Kind = "dense"
	if _, err := New(spec); err == nil {
		t.Error("expected error for unknown hamiltonian kind, got nil")
	}
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil spec, got nil")
	}
}
