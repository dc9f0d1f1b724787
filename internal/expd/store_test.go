package expd

import (
	"strings"
	"testing"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
)

const testSpecYAML = `
num_runs: 3
max_iterations: 5
trials: 50
seed: 11
`

func TestStoreCreate(t *testing.T) {
	store := NewExperimentStore()
	rec, err := store.Create(&experimentv1.ExperimentInput{
		Name:     "smoke",
		SpecYaml: testSpecYAML,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Experiment.Id == "" {
		t.Fatalf("expected a generated experiment ID")
	}
	if !strings.HasPrefix(rec.Experiment.Id, "exp-") {
		t.Errorf("expected exp- prefix, got %q", rec.Experiment.Id)
	}
	if rec.Experiment.Status != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_PENDING {
		t.Errorf("expected pending status, got %v", rec.Experiment.Status)
	}
	if rec.Experiment.TotalRuns != 3 {
		t.Errorf("expected 3 total runs, got %d", rec.Experiment.TotalRuns)
	}
	if rec.Experiment.CreatedAtUnixMs == 0 {
		t.Errorf("expected created timestamp")
	}
	if rec.Spec == nil || rec.Spec.NumRuns != 3 {
		t.Errorf("expected parsed spec with 3 runs")
	}
}

func TestStoreCreateInvalidSpec(t *testing.T) {
	store := NewExperimentStore()
	_, err := store.Create(&experimentv1.ExperimentInput{
		SpecYaml: "num_runs: -1",
	})
	if err == nil {
		t.Fatalf("expected error for invalid spec")
	}
}

func TestStoreCreateSeedOverride(t *testing.T) {
	store := NewExperimentStore()
	rec, err := store.Create(&experimentv1.ExperimentInput{
		SpecYaml: testSpecYAML,
		Seed:     99,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Spec.Seed != 99 {
		t.Fatalf("expected input seed to override spec seed, got %d", rec.Spec.Seed)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := NewExperimentStore()
	if _, ok := store.Get("nope"); ok {
		t.Fatalf("expected missing experiment")
	}
}

func TestStoreListFilter(t *testing.T) {
	store := NewExperimentStore()
	a, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	b, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	if _, err := store.SetStatus(b.Experiment.Id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING, ""); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}

	all := store.List(experimentv1.ExperimentStatus_EXPERIMENT_STATUS_UNSPECIFIED)
	if len(all) != 2 {
		t.Fatalf("expected 2 experiments, got %d", len(all))
	}

	pending := store.List(experimentv1.ExperimentStatus_EXPERIMENT_STATUS_PENDING)
	if len(pending) != 1 || pending[0].Experiment.Id != a.Experiment.Id {
		t.Fatalf("expected only the pending experiment")
	}
}

func TestStoreStatusTimestamps(t *testing.T) {
	store := NewExperimentStore()
	rec, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	id := rec.Experiment.Id

	rec, err := store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING, "")
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if rec.Experiment.StartedAtUnixMs == 0 {
		t.Errorf("expected started timestamp on RUNNING")
	}

	rec, err = store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED, "boom")
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if rec.Experiment.CompletedAtUnixMs == 0 {
		t.Errorf("expected completed timestamp on FAILED")
	}
	if rec.Experiment.Error != "boom" {
		t.Errorf("expected error message recorded, got %q", rec.Experiment.Error)
	}
}

func TestStoreSetStatusMissing(t *testing.T) {
	store := NewExperimentStore()
	if _, err := store.SetStatus("nope", experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING, ""); err == nil {
		t.Fatalf("expected error for unknown experiment")
	}
}

func TestStoreAppendRunAndRunsSince(t *testing.T) {
	store := NewExperimentStore()
	rec, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	id := rec.Experiment.Id

	for i := 0; i < 3; i++ {
		if err := store.AppendRun(id, &experimentv1.RunResult{Index: int32(i)}); err != nil {
			t.Fatalf("AppendRun error: %v", err)
		}
	}

	rec, _ = store.Get(id)
	if rec.Experiment.CompletedRuns != 3 {
		t.Fatalf("expected 3 completed runs, got %d", rec.Experiment.CompletedRuns)
	}

	runs, err := store.RunsSince(id, 1)
	if err != nil {
		t.Fatalf("RunsSince error: %v", err)
	}
	if len(runs) != 2 || runs[0].Index != 1 {
		t.Fatalf("expected runs 1 and 2, got %v", runs)
	}

	runs, err = store.RunsSince(id, 3)
	if err != nil {
		t.Fatalf("RunsSince error: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no new runs, got %d", len(runs))
	}
}

func TestStoreGetReturnsSnapshot(t *testing.T) {
	store := NewExperimentStore()
	rec, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	id := rec.Experiment.Id

	before, _ := store.Get(id)
	if _, err := store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING, ""); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if before.Experiment.Status != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_PENDING {
		t.Fatalf("snapshot mutated by a later SetStatus: %v", before.Experiment.Status)
	}

	// Mutating a snapshot must not leak into the store
	before.Experiment.Status = experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED
	after, _ := store.Get(id)
	if after.Experiment.Status != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING {
		t.Fatalf("store record mutated through a snapshot: %v", after.Experiment.Status)
	}
}

func TestStoreConcurrentStatusReads(t *testing.T) {
	store := NewExperimentStore()
	rec, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	id := rec.Experiment.Id

	// One goroutine mutates like the executor, the other reads like the
	// polling stream handlers. Run with -race.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING, "")
			store.AppendRun(id, &experimentv1.RunResult{Index: int32(i)})
		}
		store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED, "")
	}()

	for {
		got, ok := store.Get(id)
		if !ok {
			t.Fatalf("experiment disappeared")
		}
		_ = got.Experiment.Error
		_ = got.Experiment.CompletedRuns
		if got.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED {
			break
		}
	}
	<-done
}

func TestStoreSetResults(t *testing.T) {
	store := NewExperimentStore()
	rec, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	id := rec.Experiment.Id

	if err := store.SetResults(id, &experimentv1.ExperimentResults{ExperimentId: id}); err != nil {
		t.Fatalf("SetResults error: %v", err)
	}
	rec, _ = store.Get(id)
	if rec.Results == nil || rec.Results.ExperimentId != id {
		t.Fatalf("expected stored results")
	}

	if err := store.SetResults("nope", nil); err == nil {
		t.Fatalf("expected error for unknown experiment")
	}
}
