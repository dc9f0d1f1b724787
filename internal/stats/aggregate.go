// Package stats aggregates run outcomes into experiment summaries and
// compares experiments across penalty settings.
package stats

import (
	"fmt"

	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/models"
	"github.com/qubosched/experiment-core/pkg/utils"
)

// Aggregate derives the experiment summary from all run records. Every run
// contributes regardless of outcome quality; runs at or below the threshold
// count toward the global-minimum fraction.
func Aggregate(runs []models.Run, spec *config.Spec) (*models.Summary, error) {
	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs to aggregate")
	}

	values := make([]float64, len(runs))
	globalCount := 0
	totalEvaluations := 0
	for i, run := range runs {
		values[i] = run.FinalValue
		if run.ReachedGlobal {
			globalCount++
		}
		totalEvaluations += run.Evaluations
	}

	best := values[0]
	worst := values[0]
	for _, v := range values {
		if v < best {
			best = v
		}
		if v > worst {
			worst = v
		}
	}

	return &models.Summary{
		TotalRuns:        len(runs),
		BestValue:        best,
		WorstValue:       worst,
		MeanValue:        utils.Mean(values),
		StdDev:           utils.StdDev(values),
		GlobalCount:      globalCount,
		GlobalFraction:   float64(globalCount) / float64(len(runs)),
		Threshold:        spec.Threshold,
		TotalEvaluations: totalEvaluations,
		Histogram:        utils.Histogram(values, spec.BinWidth),
	}, nil
}
