package expd

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
	"github.com/qubosched/experiment-core/pkg/logger"
)

// ExperimentGRPCServer implements the gRPC ExperimentServiceServer on top of
// an ExperimentStore and Executor.
type ExperimentGRPCServer struct {
	experimentv1.UnimplementedExperimentServiceServer
	store    *ExperimentStore
	Executor *Executor
}

func NewExperimentGRPCServer(store *ExperimentStore, executor *Executor) *ExperimentGRPCServer {
	return &ExperimentGRPCServer{
		store:    store,
		Executor: executor,
	}
}

func (s *ExperimentGRPCServer) CreateExperiment(ctx context.Context, req *experimentv1.CreateExperimentRequest) (*experimentv1.CreateExperimentResponse, error) {
	if req == nil || req.Input == nil {
		return nil, status.Error(codes.InvalidArgument, "input is required")
	}
	if req.Input.SpecYaml == "" {
		return nil, status.Error(codes.InvalidArgument, "spec_yaml is required")
	}

	rec, err := s.store.Create(req.Input)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logger.Info("experiment created", "id", rec.Experiment.Id, "name", rec.Experiment.Name)
	return &experimentv1.CreateExperimentResponse{Experiment: rec.Experiment}, nil
}

func (s *ExperimentGRPCServer) StartExperiment(ctx context.Context, req *experimentv1.StartExperimentRequest) (*experimentv1.StartExperimentResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	exp, err := s.Executor.Start(req.Id)
	if err != nil {
		if errors.Is(err, ErrExperimentNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrExperimentTerminal) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &experimentv1.StartExperimentResponse{Experiment: exp}, nil
}

func (s *ExperimentGRPCServer) StopExperiment(ctx context.Context, req *experimentv1.StopExperimentRequest) (*experimentv1.StopExperimentResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	exp, err := s.Executor.Stop(req.Id)
	if err != nil {
		if errors.Is(err, ErrExperimentNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrExperimentTerminal) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		if errors.Is(err, ErrExperimentIDMissing) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &experimentv1.StopExperimentResponse{Experiment: exp}, nil
}

func (s *ExperimentGRPCServer) GetExperiment(ctx context.Context, req *experimentv1.GetExperimentRequest) (*experimentv1.GetExperimentResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	rec, ok := s.store.Get(req.Id)
	if !ok {
		return nil, status.Error(codes.NotFound, "experiment not found")
	}
	return &experimentv1.GetExperimentResponse{Experiment: rec.Experiment}, nil
}

func (s *ExperimentGRPCServer) ListExperiments(ctx context.Context, req *experimentv1.ListExperimentsRequest) (*experimentv1.ListExperimentsResponse, error) {
	filter := experimentv1.ExperimentStatus_EXPERIMENT_STATUS_UNSPECIFIED
	if req != nil {
		filter = req.StatusFilter
	}
	recs := s.store.List(filter)
	experiments := make([]*experimentv1.Experiment, 0, len(recs))
	for _, rec := range recs {
		experiments = append(experiments, rec.Experiment)
	}
	return &experimentv1.ListExperimentsResponse{Experiments: experiments}, nil
}

func (s *ExperimentGRPCServer) GetExperimentResults(ctx context.Context, req *experimentv1.GetExperimentResultsRequest) (*experimentv1.GetExperimentResultsResponse, error) {
	if req == nil || req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	rec, ok := s.store.Get(req.Id)
	if !ok {
		return nil, status.Error(codes.NotFound, "experiment not found")
	}
	if rec.Results == nil {
		return nil, status.Error(codes.FailedPrecondition, "results not available")
	}
	return &experimentv1.GetExperimentResultsResponse{Results: rec.Results}, nil
}

func (s *ExperimentGRPCServer) StreamExperimentEvents(req *experimentv1.StreamExperimentEventsRequest, stream experimentv1.ExperimentService_StreamExperimentEventsServer) error {
	if req == nil || req.Id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}

	rec, ok := s.store.Get(req.Id)
	if !ok {
		return status.Error(codes.NotFound, "experiment not found")
	}

	// Send initial status event
	previousStatus := rec.Experiment.Status
	if err := stream.Send(&experimentv1.ExperimentEvent{
		ExperimentId:    req.Id,
		TimestampUnixMs: nowUnixMs(),
		StatusChanged: &experimentv1.ExperimentStatusChanged{
			Status: previousStatus,
			Error:  rec.Experiment.Error,
		},
	}); err != nil {
		return err
	}
	sentRuns := 0

	// Poll for status changes and completed runs
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case <-ticker.C:
			rec, ok := s.store.Get(req.Id)
			if !ok {
				return status.Error(codes.NotFound, "experiment not found")
			}

			runs, err := s.store.RunsSince(req.Id, sentRuns)
			if err != nil {
				return status.Error(codes.Internal, err.Error())
			}
			for _, run := range runs {
				if err := stream.Send(&experimentv1.ExperimentEvent{
					ExperimentId:    req.Id,
					TimestampUnixMs: nowUnixMs(),
					RunCompleted:    &experimentv1.RunCompleted{Run: run},
				}); err != nil {
					return err
				}
			}
			sentRuns += len(runs)

			if rec.Experiment.Status != previousStatus {
				if err := stream.Send(&experimentv1.ExperimentEvent{
					ExperimentId:    req.Id,
					TimestampUnixMs: nowUnixMs(),
					StatusChanged: &experimentv1.ExperimentStatusChanged{
						Status: rec.Experiment.Status,
						Error:  rec.Experiment.Error,
					},
				}); err != nil {
					return err
				}
				previousStatus = rec.Experiment.Status
			}

			// Exit when terminal status is reached
			if rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED ||
				rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED ||
				rec.Experiment.Status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED {
				return nil
			}
		}
	}
}
