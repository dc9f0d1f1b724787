// Package runner orchestrates the repeated random-restart experiment: N
// independent optimization attempts over the same Hamiltonian, each with its
// own seed, followed by sampling and aggregation.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/qubosched/experiment-core/internal/evaluator"
	"github.com/qubosched/experiment-core/internal/hamiltonian"
	"github.com/qubosched/experiment-core/internal/sampler"
	"github.com/qubosched/experiment-core/internal/search"
	"github.com/qubosched/experiment-core/internal/stats"
	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/logger"
	"github.com/qubosched/experiment-core/pkg/models"
	"github.com/qubosched/experiment-core/pkg/utils"
)

// Observer is notified after each completed run. Callbacks may arrive from
// worker goroutines when the experiment runs in parallel.
type Observer func(run models.Run)

// Runner executes one experiment spec
type Runner struct {
	spec        *config.Spec
	hamiltonian *hamiltonian.Hamiltonian
	restart     search.RestartStrategy
	observer    Observer
	log         *slog.Logger
}

// New creates a runner for the given spec. The spec must already be
// validated; the Hamiltonian is built once and shared read-only by all runs.
func New(spec *config.Spec) (*Runner, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec is required")
	}
	h, err := hamiltonian.FromSpec(&spec.Hamiltonian)
	if err != nil {
		return nil, fmt.Errorf("failed to build hamiltonian: %w", err)
	}
	return &Runner{
		spec:        spec,
		hamiltonian: h,
		restart:     search.NewUniformRestart(),
		log:         logger.Default,
	}, nil
}

// WithRestart sets a custom restart strategy
func (r *Runner) WithRestart(restart search.RestartStrategy) *Runner {
	r.restart = restart
	return r
}

// WithObserver sets a per-run completion callback
func (r *Runner) WithObserver(observer Observer) *Runner {
	r.observer = observer
	return r
}

// WithLogger sets the runner's logger
func (r *Runner) WithLogger(log *slog.Logger) *Runner {
	r.log = log
	return r
}

// Hamiltonian exposes the shared cost operator
func (r *Runner) Hamiltonian() *hamiltonian.Hamiltonian {
	return r.hamiltonian
}

// Run executes all repetitions and aggregates them. Every repetition
// contributes exactly one Run record in index order regardless of outcome
// quality; only infrastructure failures (cancellation, evaluator errors)
// abort the experiment.
func (r *Runner) Run(ctx context.Context) (*models.ExperimentResult, error) {
	// derive per-run seeds from one base so sequential and parallel
	// execution produce identical results
	baseSeed := r.spec.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	runs := make([]models.Run, r.spec.NumRuns)
	var err error
	if r.spec.Parallelism > 1 {
		err = r.runParallel(ctx, baseSeed, runs)
	} else {
		err = r.runSequential(ctx, baseSeed, runs)
	}
	if err != nil {
		return nil, err
	}

	summary, err := stats.Aggregate(runs, r.spec)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate runs: %w", err)
	}

	r.log.Info("experiment complete",
		"runs", summary.TotalRuns,
		"best", utils.Round(summary.BestValue, 4),
		"mean", utils.Round(summary.MeanValue, 4),
		"global_fraction", summary.GlobalFraction,
	)

	return &models.ExperimentResult{
		Runs:    runs,
		Summary: *summary,
		Penalty: r.spec.Hamiltonian.Penalty,
	}, nil
}

func (r *Runner) runSequential(ctx context.Context, baseSeed int64, runs []models.Run) error {
	for i := range runs {
		run, err := r.runOne(ctx, i, baseSeed+int64(i))
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		runs[i] = *run
		if r.observer != nil {
			r.observer(*run)
		}
	}
	return nil
}

func (r *Runner) runParallel(ctx context.Context, baseSeed int64, runs []models.Run) error {
	semaphore := make(chan struct{}, r.spec.Parallelism)
	var wg sync.WaitGroup
	errs := make([]error, len(runs))
	var mu sync.Mutex

	for i := range runs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			run, err := r.runOne(ctx, idx, baseSeed+int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			runs[idx] = *run

			if r.observer != nil {
				mu.Lock()
				r.observer(*run)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}

// runOne performs one repetition: restart, minimize, sample, record. All
// randomness derives from the run's own seed.
func (r *Runner) runOne(ctx context.Context, index int, seed int64) (*models.Run, error) {
	rng := utils.NewRandSource(seed)

	eval, err := evaluator.FromSpec(&r.spec.Evaluator, r.hamiltonian, rng)
	if err != nil {
		return nil, err
	}
	minimizer, err := search.FromSpec(&r.spec.Optimizer, r.spec.MaxIterations, rng)
	if err != nil {
		return nil, err
	}

	x0 := r.restart.Draw(rng, r.hamiltonian.NumNodes)
	result, err := minimizer.Minimize(ctx, eval.ExpectedValue, x0)
	if err != nil {
		return nil, err
	}

	smp, err := sampler.New(r.hamiltonian.NumNodes, rng)
	if err != nil {
		return nil, err
	}
	counts, err := smp.Sample(result.FinalParams, r.spec.Trials)
	if err != nil {
		return nil, err
	}

	run := &models.Run{
		Index:             index,
		Seed:              seed,
		InitialParams:     x0,
		FinalParams:       result.FinalParams,
		FinalValue:        result.FinalValue,
		Evaluations:       int(result.Evaluations),
		Converged:         result.Converged,
		ConvergenceReason: result.ConvergenceReason,
		Counts:            counts,
		ReachedGlobal:     result.FinalValue <= r.spec.Threshold,
	}

	r.log.Debug("run complete",
		"run", index,
		"value", utils.Round(run.FinalValue, 4),
		"params", utils.RoundAll(run.FinalParams, 4),
		"evaluations", run.Evaluations,
		"reached_global", run.ReachedGlobal,
	)

	return run, nil
}
