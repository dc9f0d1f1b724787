package expd

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
)

func newTestGRPCServer(t *testing.T) (*ExperimentGRPCServer, *ExperimentStore) {
	t.Helper()
	store := NewExperimentStore()
	exec := NewExecutor(store, nil)
	return NewExperimentGRPCServer(store, exec), store
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("expected code %v, got %v (%s)", code, st.Code(), st.Message())
	}
}

func TestGRPCCreateExperiment(t *testing.T) {
	srv, _ := newTestGRPCServer(t)
	ctx := context.Background()

	resp, err := srv.CreateExperiment(ctx, &experimentv1.CreateExperimentRequest{
		Input: &experimentv1.ExperimentInput{Name: "smoke", SpecYaml: testSpecYAML},
	})
	if err != nil {
		t.Fatalf("CreateExperiment error: %v", err)
	}
	if resp.Experiment.Id == "" {
		t.Fatalf("expected experiment id")
	}
	if resp.Experiment.Status != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_PENDING {
		t.Fatalf("expected pending, got %v", resp.Experiment.Status)
	}

	_, err = srv.CreateExperiment(ctx, nil)
	wantCode(t, err, codes.InvalidArgument)

	_, err = srv.CreateExperiment(ctx, &experimentv1.CreateExperimentRequest{
		Input: &experimentv1.ExperimentInput{},
	})
	wantCode(t, err, codes.InvalidArgument)

	_, err = srv.CreateExperiment(ctx, &experimentv1.CreateExperimentRequest{
		Input: &experimentv1.ExperimentInput{SpecYaml: "num_runs: -1"},
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGRPCStartStopLifecycle(t *testing.T) {
	srv, store := newTestGRPCServer(t)
	ctx := context.Background()

	resp, err := srv.CreateExperiment(ctx, &experimentv1.CreateExperimentRequest{
		Input: &experimentv1.ExperimentInput{SpecYaml: testSpecYAML},
	})
	if err != nil {
		t.Fatalf("CreateExperiment error: %v", err)
	}
	id := resp.Experiment.Id

	startResp, err := srv.StartExperiment(ctx, &experimentv1.StartExperimentRequest{Id: id})
	if err != nil {
		t.Fatalf("StartExperiment error: %v", err)
	}
	if startResp.Experiment.Status != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING {
		t.Fatalf("expected running, got %v", startResp.Experiment.Status)
	}

	waitForStatus(t, store, id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED)

	// Restarting a finished experiment fails
	_, err = srv.StartExperiment(ctx, &experimentv1.StartExperimentRequest{Id: id})
	wantCode(t, err, codes.FailedPrecondition)

	_, err = srv.StopExperiment(ctx, &experimentv1.StopExperimentRequest{Id: id})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestGRPCStartStopValidation(t *testing.T) {
	srv, _ := newTestGRPCServer(t)
	ctx := context.Background()

	_, err := srv.StartExperiment(ctx, &experimentv1.StartExperimentRequest{})
	wantCode(t, err, codes.InvalidArgument)

	_, err = srv.StartExperiment(ctx, &experimentv1.StartExperimentRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)

	_, err = srv.StopExperiment(ctx, &experimentv1.StopExperimentRequest{})
	wantCode(t, err, codes.InvalidArgument)

	_, err = srv.StopExperiment(ctx, &experimentv1.StopExperimentRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)
}

func TestGRPCGetAndList(t *testing.T) {
	srv, store := newTestGRPCServer(t)
	ctx := context.Background()

	rec, _ := store.Create(&experimentv1.ExperimentInput{Name: "smoke", SpecYaml: testSpecYAML})

	getResp, err := srv.GetExperiment(ctx, &experimentv1.GetExperimentRequest{Id: rec.Experiment.Id})
	if err != nil {
		t.Fatalf("GetExperiment error: %v", err)
	}
	if getResp.Experiment.Name != "smoke" {
		t.Fatalf("expected name smoke, got %q", getResp.Experiment.Name)
	}

	_, err = srv.GetExperiment(ctx, &experimentv1.GetExperimentRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)

	listResp, err := srv.ListExperiments(ctx, &experimentv1.ListExperimentsRequest{})
	if err != nil {
		t.Fatalf("ListExperiments error: %v", err)
	}
	if len(listResp.Experiments) != 1 {
		t.Fatalf("expected 1 experiment, got %d", len(listResp.Experiments))
	}

	listResp, err = srv.ListExperiments(ctx, &experimentv1.ListExperimentsRequest{
		StatusFilter: experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING,
	})
	if err != nil {
		t.Fatalf("ListExperiments error: %v", err)
	}
	if len(listResp.Experiments) != 0 {
		t.Fatalf("expected no running experiments, got %d", len(listResp.Experiments))
	}
}

func TestGRPCGetResults(t *testing.T) {
	srv, store := newTestGRPCServer(t)
	ctx := context.Background()

	rec, _ := store.Create(&experimentv1.ExperimentInput{SpecYaml: testSpecYAML})
	id := rec.Experiment.Id

	_, err := srv.GetExperimentResults(ctx, &experimentv1.GetExperimentResultsRequest{Id: id})
	wantCode(t, err, codes.FailedPrecondition)

	if _, err := srv.StartExperiment(ctx, &experimentv1.StartExperimentRequest{Id: id}); err != nil {
		t.Fatalf("StartExperiment error: %v", err)
	}
	waitForStatus(t, store, id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED)

	resp, err := srv.GetExperimentResults(ctx, &experimentv1.GetExperimentResultsRequest{Id: id})
	if err != nil {
		t.Fatalf("GetExperimentResults error: %v", err)
	}
	if resp.Results.ExperimentId != id {
		t.Errorf("expected experiment id %s, got %s", id, resp.Results.ExperimentId)
	}
	if len(resp.Results.Runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(resp.Results.Runs))
	}
	if resp.Results.Summary.Threshold != -7.5 {
		t.Errorf("expected default threshold -7.5, got %v", resp.Results.Summary.Threshold)
	}

	_, err = srv.GetExperimentResults(ctx, &experimentv1.GetExperimentResultsRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)
}
