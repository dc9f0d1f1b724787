package expd

import (
	experimentv1 "github.com/qubosched/experiment-core/gen/go/experiment/v1"
	"github.com/qubosched/experiment-core/pkg/models"
	"github.com/qubosched/experiment-core/pkg/utils"
)

func runToProto(run models.Run) *experimentv1.RunResult {
	return &experimentv1.RunResult{
		Index:             int32(run.Index),
		Seed:              run.Seed,
		InitialParams:     run.InitialParams,
		FinalParams:       run.FinalParams,
		FinalValue:        run.FinalValue,
		Evaluations:       int64(run.Evaluations),
		Converged:         run.Converged,
		ConvergenceReason: run.ConvergenceReason,
		Counts:            run.Counts,
		ReachedGlobal:     run.ReachedGlobal,
	}
}

func binsToProto(bins []utils.Bin) []*experimentv1.ValueBin {
	out := make([]*experimentv1.ValueBin, len(bins))
	for i, b := range bins {
		out[i] = &experimentv1.ValueBin{
			Lower: b.Lower,
			Upper: b.Upper,
			Count: b.Count,
		}
	}
	return out
}

func summaryToProto(s models.Summary) *experimentv1.ExperimentSummary {
	return &experimentv1.ExperimentSummary{
		TotalRuns:        int32(s.TotalRuns),
		BestValue:        s.BestValue,
		WorstValue:       s.WorstValue,
		MeanValue:        s.MeanValue,
		StdDev:           s.StdDev,
		GlobalCount:      int32(s.GlobalCount),
		GlobalFraction:   s.GlobalFraction,
		Threshold:        s.Threshold,
		TotalEvaluations: int64(s.TotalEvaluations),
		Histogram:        binsToProto(s.Histogram),
	}
}

func resultToProto(id string, result *models.ExperimentResult) *experimentv1.ExperimentResults {
	runs := make([]*experimentv1.RunResult, len(result.Runs))
	for i, run := range result.Runs {
		runs[i] = runToProto(run)
	}
	return &experimentv1.ExperimentResults{
		ExperimentId: id,
		Runs:         runs,
		Summary:      summaryToProto(result.Summary),
		Penalty:      result.Penalty,
	}
}
