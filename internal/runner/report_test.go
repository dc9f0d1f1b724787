package runner

import (
	"strings"
	"testing"

	"github.com/qubosched/experiment-core/pkg/models"
	"github.com/qubosched/experiment-core/pkg/utils"
)

func TestFormatSummary(t *testing.T) {
	s := &models.Summary{
		TotalRuns:      4,
		BestValue:      -8.0,
		WorstValue:     -4.0,
		MeanValue:      -6.5,
		GlobalCount:    2,
		GlobalFraction: 0.5,
		Threshold:      -7.5,
	}
	out := FormatSummary(s)
	for _, want := range []string{"-8.0000", "-4.0000", "-6.5000", "50.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatHistogram(t *testing.T) {
	bins := []utils.Bin{
		{Lower: -8.0, Upper: -7.75, Count: 3},
		{Lower: -7.75, Upper: -7.5, Count: 0},
	}
	out := FormatHistogram(bins)
	if !strings.Contains(out, "###") {
		t.Errorf("expected a 3-count bar:\n%s", out)
	}
	if FormatHistogram(nil) != "" {
		t.Error("expected empty output for no bins")
	}
}

func TestFormatOutliers(t *testing.T) {
	counts := make([]int64, 32)
	counts[6] = 900
	counts[0] = 100
	runs := []models.Run{
		{Index: 3, FinalValue: -6.8284, Evaluations: 42, Counts: counts},
	}
	out := FormatOutliers(runs, -7.5)
	if !strings.Contains(out, "run   3") {
		t.Errorf("expected run index in output:\n%s", out)
	}
	if !strings.Contains(out, "00110") {
		t.Errorf("expected top assignment bits in output:\n%s", out)
	}
	if !strings.Contains(out, "900/1000") {
		t.Errorf("expected count fraction in output:\n%s", out)
	}
}

func TestFormatRuns(t *testing.T) {
	runs := []models.Run{
		{Index: 0, FinalValue: -7.99987, Evaluations: 151, FinalParams: []float64{3.14159265, -0.00001}},
		{Index: 1, FinalValue: -4.0, Evaluations: 1, FinalParams: []float64{0, 0}},
	}
	out := FormatRuns(runs)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per run, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "run   0") || !strings.Contains(lines[1], "run   1") {
		t.Errorf("expected run indices in order:\n%s", out)
	}
	if !strings.Contains(lines[0], "-7.9999") {
		t.Errorf("expected 4-decimal value:\n%s", out)
	}
	if !strings.Contains(lines[0], "evaluations  151") {
		t.Errorf("expected evaluation count:\n%s", out)
	}
	if !strings.Contains(lines[0], "3.1416") {
		t.Errorf("expected 4-decimal params:\n%s", out)
	}
}

func TestFormatReportIncludesSections(t *testing.T) {
	counts := make([]int64, 32)
	counts[0] = 10
	result := &models.ExperimentResult{
		Runs: []models.Run{
			{Index: 0, FinalValue: -4.0, Counts: counts, ReachedGlobal: false},
		},
		Summary: models.Summary{
			TotalRuns: 1,
			BestValue: -4.0,
			Threshold: -7.5,
			Histogram: []utils.Bin{{Lower: -4.0, Upper: -3.75, Count: 1}},
		},
	}
	out := FormatReport(result)
	if !strings.Contains(out, "run   0") {
		t.Errorf("expected per-run line:\n%s", out)
	}
	if !strings.Contains(out, "histogram") {
		t.Errorf("expected histogram section:\n%s", out)
	}
	if !strings.Contains(out, "above threshold") {
		t.Errorf("expected outlier section:\n%s", out)
	}
}
