package models

import "github.com/qubosched/experiment-core/pkg/utils"

// Run is the record of one independent optimization attempt: a random
// restart, a bounded search, and a sampling pass at the final parameters.
// A Run is immutable once sampling completes.
type Run struct {
	// Index is the position of this run within the experiment (0-based).
	// Insertion order equals run index.
	Index int

	// Seed is the RNG seed this run was derived from.
	Seed int64

	// InitialParams are the rotation angles the search started from,
	// drawn uniformly in [-pi, pi) per node.
	InitialParams []float64

	// FinalParams are the angles the search ended at.
	FinalParams []float64

	// FinalValue is the expectation value at FinalParams.
	FinalValue float64

	// Evaluations is the number of objective evaluations the search spent.
	Evaluations int

	// Converged reports whether the search stopped before exhausting its
	// iteration budget, with the strategy's reason.
	Converged         bool
	ConvergenceReason string

	// Counts is the empirical distribution over bitstring indices
	// [0, 2^n) sampled at FinalParams. Counts sum to the trial budget.
	Counts []int64

	// ReachedGlobal reports whether FinalValue is at or below the
	// experiment's global-minimum threshold.
	ReachedGlobal bool
}

// Summary aggregates final values across all runs of an experiment.
type Summary struct {
	TotalRuns        int
	BestValue        float64
	WorstValue       float64
	MeanValue        float64
	StdDev           float64
	GlobalCount      int
	GlobalFraction   float64
	Threshold        float64
	TotalEvaluations int

	// Histogram bins the final values at the spec's bin width.
	Histogram []utils.Bin
}

// ExperimentResult is the ordered collection of all runs plus the derived
// aggregates. Run order is run index.
type ExperimentResult struct {
	Runs    []Run
	Summary Summary

	// Penalty is the conflict-term coefficient the experiment ran with,
	// kept for penalty-sweep comparisons.
	Penalty float64
}

// OutlierRuns returns the runs whose final value stayed above the
// global-minimum threshold, in run order.
func (r *ExperimentResult) OutlierRuns() []Run {
	outliers := make([]Run, 0)
	for _, run := range r.Runs {
		if !run.ReachedGlobal {
			outliers = append(outliers, run)
		}
	}
	return outliers
}
