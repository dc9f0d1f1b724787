package expd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
	"github.com/qubosched/experiment-core/internal/runner"
	"github.com/qubosched/experiment-core/pkg/logger"
	"github.com/qubosched/experiment-core/pkg/models"
)

var (
	ErrExperimentNotFound  = errors.New("experiment not found")
	ErrExperimentTerminal  = errors.New("experiment already finished")
	ErrExperimentIDMissing = errors.New("experiment id is required")
)

// Executor starts and stops experiments asynchronously. Each running
// experiment owns a cancel function so Stop can interrupt it.
type Executor struct {
	store   *ExperimentStore
	metrics *Metrics
	log     *slog.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewExecutor(store *ExperimentStore, metrics *Metrics) *Executor {
	return &Executor{
		store:   store,
		metrics: metrics,
		log:     logger.Default,
		cancels: make(map[string]context.CancelFunc),
	}
}

// WithLogger replaces the executor's logger
func (e *Executor) WithLogger(log *slog.Logger) *Executor {
	e.log = log
	return e
}

// Start launches the experiment in the background. Starting an experiment
// that is already running returns its current state; starting a finished
// one is an error.
func (e *Executor) Start(id string) (*experimentv1.Experiment, error) {
	if id == "" {
		return nil, ErrExperimentIDMissing
	}

	rec, ok := e.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExperimentNotFound, id)
	}

	switch rec.Experiment.Status {
	case experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING:
		return rec.Experiment, nil
	case experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED,
		experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED,
		experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED:
		return nil, fmt.Errorf("%w: %s is %s", ErrExperimentTerminal, id, rec.Experiment.Status)
	}

	rec, err := e.store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING, "")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	e.cancels[id] = cancel
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.ExperimentsStarted.Inc()
	}
	e.log.Info("experiment started", "id", id, "name", rec.Experiment.Name, "runs", rec.Experiment.TotalRuns)

	go e.runExperiment(ctx, id, rec)

	return rec.Experiment, nil
}

// Stop cancels a running experiment. Stopping a pending experiment marks it
// cancelled immediately; stopping a finished one is an error.
func (e *Executor) Stop(id string) (*experimentv1.Experiment, error) {
	if id == "" {
		return nil, ErrExperimentIDMissing
	}

	rec, ok := e.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExperimentNotFound, id)
	}

	switch rec.Experiment.Status {
	case experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED,
		experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED,
		experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED:
		return nil, fmt.Errorf("%w: %s is %s", ErrExperimentTerminal, id, rec.Experiment.Status)
	}

	e.mu.Lock()
	cancel, running := e.cancels[id]
	e.mu.Unlock()
	if running {
		cancel()
	}

	rec, err := e.store.SetStatus(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED, "")
	if err != nil {
		return nil, err
	}
	e.log.Info("experiment stopped", "id", id)
	return rec.Experiment, nil
}

func (e *Executor) runExperiment(ctx context.Context, id string, rec *ExperimentRecord) {
	started := time.Now()
	defer func() {
		e.mu.Lock()
		delete(e.cancels, id)
		e.mu.Unlock()
	}()

	r, err := runner.New(rec.Spec)
	if err != nil {
		e.finish(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED, err.Error(), started)
		return
	}
	r.WithLogger(e.log).WithObserver(func(run models.Run) {
		if appendErr := e.store.AppendRun(id, runToProto(run)); appendErr != nil {
			e.log.Warn("failed to record run", "id", id, "run", run.Index, "error", appendErr)
		}
		if e.metrics != nil {
			e.metrics.RunsCompleted.Inc()
			e.metrics.RunFinalValue.Observe(run.FinalValue)
		}
	})

	result, err := r.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// Stop already set the cancelled status
			e.log.Info("experiment cancelled", "id", id)
			if e.metrics != nil {
				e.metrics.ExperimentsCompleted.WithLabelValues("cancelled").Inc()
			}
			return
		}
		e.finish(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED, err.Error(), started)
		return
	}

	if err := e.store.SetResults(id, resultToProto(id, result)); err != nil {
		e.log.Error("failed to store results", "id", id, "error", err)
	}
	e.finish(id, experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED, "", started)
}

func (e *Executor) finish(id string, status experimentv1.ExperimentStatus, errMsg string, started time.Time) {
	if _, err := e.store.SetStatus(id, status, errMsg); err != nil {
		e.log.Error("failed to set experiment status", "id", id, "error", err)
		return
	}
	label := "completed"
	if status == experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED {
		label = "failed"
		e.log.Error("experiment failed", "id", id, "error", errMsg)
	} else {
		e.log.Info("experiment completed", "id", id, "duration", time.Since(started).Round(time.Millisecond))
	}
	if e.metrics != nil {
		e.metrics.ExperimentsCompleted.WithLabelValues(label).Inc()
		e.metrics.ExperimentDuration.Observe(time.Since(started).Seconds())
	}
}
