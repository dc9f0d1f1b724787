// Package expd implements the experiment daemon: an in-memory experiment
// store, an asynchronous executor, and the HTTP and gRPC surfaces.
package expd

import (
	"fmt"
	"sync"
	"time"

	"google.golang.org/protobuf/proto"

	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/utils"
)

// ExperimentRecord holds an experiment's state, its parsed spec and, once
// available, its results. Runs grow while the experiment executes so
// streaming clients can follow progress.
//
// Accessors return snapshots: the Experiment message is cloned under the
// store lock, so callers can read it while the executor keeps mutating the
// stored record. Spec and Results are immutable once set.
type ExperimentRecord struct {
	Experiment *experimentv1.Experiment
	Spec       *config.Spec
	Runs       []*experimentv1.RunResult
	Results    *experimentv1.ExperimentResults
}

// ExperimentStore is an in-memory experiment registry
type ExperimentStore struct {
	mu          sync.RWMutex
	experiments map[string]*ExperimentRecord
}

func NewExperimentStore() *ExperimentStore {
	return &ExperimentStore{
		experiments: make(map[string]*ExperimentRecord),
	}
}

func nowUnixMs() int64 {
	return time.Now().UTC().UnixMilli()
}

// snapshotLocked clones the mutable parts of a record. Callers must hold at
// least a read lock.
func snapshotLocked(rec *ExperimentRecord) *ExperimentRecord {
	return &ExperimentRecord{
		Experiment: proto.Clone(rec.Experiment).(*experimentv1.Experiment),
		Spec:       rec.Spec,
		Results:    rec.Results,
	}
}

// Create registers a new experiment from its input. The spec YAML is parsed
// and validated here so a bad spec fails at creation, not at start.
func (s *ExperimentStore) Create(input *experimentv1.ExperimentInput) (*ExperimentRecord, error) {
	spec, err := config.ParseSpecYAMLString(input.SpecYaml)
	if err != nil {
		return nil, err
	}
	if input.Seed != 0 {
		spec.Seed = input.Seed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := utils.GenerateExperimentID()
	if _, exists := s.experiments[id]; exists {
		return nil, fmt.Errorf("experiment already exists: %s", id)
	}

	rec := &ExperimentRecord{
		Experiment: &experimentv1.Experiment{
			Id:              id,
			Name:            input.Name,
			Status:          experimentv1.ExperimentStatus_EXPERIMENT_STATUS_PENDING,
			Input:           input,
			CreatedAtUnixMs: nowUnixMs(),
			TotalRuns:       int32(spec.NumRuns),
		},
		Spec: spec,
	}
	s.experiments[id] = rec
	return snapshotLocked(rec), nil
}

func (s *ExperimentStore) Get(id string) (*ExperimentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.experiments[id]
	if !ok {
		return nil, false
	}
	return snapshotLocked(rec), true
}

// List returns experiments, optionally filtered by status. Order is not
// guaranteed.
func (s *ExperimentStore) List(statusFilter experimentv1.ExperimentStatus) []*ExperimentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ExperimentRecord, 0, len(s.experiments))
	for _, rec := range s.experiments {
		if statusFilter != experimentv1.ExperimentStatus_EXPERIMENT_STATUS_UNSPECIFIED &&
			rec.Experiment.Status != statusFilter {
			continue
		}
		out = append(out, snapshotLocked(rec))
	}
	return out
}

// SetStatus transitions an experiment and stamps the lifecycle timestamps
func (s *ExperimentStore) SetStatus(id string, status experimentv1.ExperimentStatus, errMsg string) (*ExperimentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.experiments[id]
	if !ok {
		return nil, fmt.Errorf("experiment not found: %s", id)
	}

	rec.Experiment.Status = status
	if errMsg != "" {
		rec.Experiment.Error = errMsg
	}

	switch status {
	case experimentv1.ExperimentStatus_EXPERIMENT_STATUS_RUNNING:
		if rec.Experiment.StartedAtUnixMs == 0 {
			rec.Experiment.StartedAtUnixMs = nowUnixMs()
		}
	case experimentv1.ExperimentStatus_EXPERIMENT_STATUS_COMPLETED,
		experimentv1.ExperimentStatus_EXPERIMENT_STATUS_FAILED,
		experimentv1.ExperimentStatus_EXPERIMENT_STATUS_CANCELLED:
		rec.Experiment.CompletedAtUnixMs = nowUnixMs()
	}

	return snapshotLocked(rec), nil
}

// AppendRun records one completed run while the experiment executes
func (s *ExperimentStore) AppendRun(id string, run *experimentv1.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.experiments[id]
	if !ok {
		return fmt.Errorf("experiment not found: %s", id)
	}
	rec.Runs = append(rec.Runs, run)
	rec.Experiment.CompletedRuns = int32(len(rec.Runs))
	return nil
}

// RunsSince returns completed runs after the given count, for streaming
func (s *ExperimentStore) RunsSince(id string, after int) ([]*experimentv1.RunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.experiments[id]
	if !ok {
		return nil, fmt.Errorf("experiment not found: %s", id)
	}
	if after >= len(rec.Runs) {
		return nil, nil
	}
	out := make([]*experimentv1.RunResult, len(rec.Runs)-after)
	copy(out, rec.Runs[after:])
	return out, nil
}

// SetResults stores the final aggregated results
func (s *ExperimentStore) SetResults(id string, results *experimentv1.ExperimentResults) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.experiments[id]
	if !ok {
		return fmt.Errorf("experiment not found: %s", id)
	}
	rec.Results = results
	return nil
}
