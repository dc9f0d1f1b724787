package runner

import (
	"fmt"
	"strings"

	"github.com/qubosched/experiment-core/internal/sampler"
	"github.com/qubosched/experiment-core/pkg/models"
	"github.com/qubosched/experiment-core/pkg/utils"
)

// FormatReport renders a full text report: one line per run, the aggregate
// summary, a histogram of final values, and the runs that stayed above the
// threshold with their sampled distributions.
func FormatReport(result *models.ExperimentResult) string {
	var b strings.Builder
	b.WriteString(FormatRuns(result.Runs))
	b.WriteString("\n")
	b.WriteString(FormatSummary(&result.Summary))
	b.WriteString("\n")
	b.WriteString(FormatHistogram(result.Summary.Histogram))

	outliers := result.OutlierRuns()
	if len(outliers) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatOutliers(outliers, result.Summary.Threshold))
	}
	return b.String()
}

// FormatRuns renders one line per run in index order: final value,
// evaluation count and the final angles at 4 decimals.
func FormatRuns(runs []models.Run) string {
	var b strings.Builder
	for _, run := range runs {
		fmt.Fprintf(&b, "run %3d: value %8.4f, evaluations %4d, params %v\n",
			run.Index, run.FinalValue, run.Evaluations, utils.RoundAll(run.FinalParams, 4))
	}
	return b.String()
}

// FormatSummary renders the aggregate statistics
func FormatSummary(s *models.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "runs:              %d\n", s.TotalRuns)
	fmt.Fprintf(&b, "best value:        %.4f\n", s.BestValue)
	fmt.Fprintf(&b, "worst value:       %.4f\n", s.WorstValue)
	fmt.Fprintf(&b, "mean value:        %.4f\n", s.MeanValue)
	fmt.Fprintf(&b, "stddev:            %.4f\n", s.StdDev)
	fmt.Fprintf(&b, "at/below %.2f:    %d (%.1f%%)\n", s.Threshold, s.GlobalCount, s.GlobalFraction*100)
	fmt.Fprintf(&b, "total evaluations: %d\n", s.TotalEvaluations)
	return b.String()
}

// FormatHistogram renders fixed-width bins as an ASCII bar chart, one bar
// character per count.
func FormatHistogram(bins []utils.Bin) string {
	if len(bins) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("final value histogram:\n")
	for _, bin := range bins {
		fmt.Fprintf(&b, "  [%8.4f, %8.4f)  %4d  %s\n",
			bin.Lower, bin.Upper, bin.Count, strings.Repeat("#", int(bin.Count)))
	}
	return b.String()
}

// FormatOutliers renders the runs stuck above the threshold together with
// their most frequent sampled assignments.
func FormatOutliers(outliers []models.Run, threshold float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "runs above threshold %.2f:\n", threshold)
	for _, run := range outliers {
		top := sampler.TopIndex(run.Counts)
		var total int64
		for _, c := range run.Counts {
			total += c
		}
		fmt.Fprintf(&b, "  run %3d: value %.4f, evaluations %d, top assignment %05b (%d/%d trials)\n",
			run.Index, run.FinalValue, run.Evaluations, top, run.Counts[top], total)
	}
	return b.String()
}
