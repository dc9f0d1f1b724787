package utils

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Fatalf("expected mean 2.5, got %f", got)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("expected mean of empty slice to be 0, got %f", got)
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Variance(values); got != 4 {
		t.Fatalf("expected variance 4, got %f", got)
	}
	if got := StdDev(values); got != 2 {
		t.Fatalf("expected stddev 2, got %f", got)
	}
	if got := Variance(nil); got != 0 {
		t.Fatalf("expected variance of empty slice to be 0, got %f", got)
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	if got := Percentile(values, 50); got != 3 {
		t.Fatalf("expected median 3, got %f", got)
	}
	if got := Percentile(values, 0); got != 1 {
		t.Fatalf("expected p0 = 1, got %f", got)
	}
	if got := Percentile(values, 100); got != 5 {
		t.Fatalf("expected p100 = 5, got %f", got)
	}
	if got := Percentile(nil, 50); got != 0 {
		t.Fatalf("expected percentile of empty slice to be 0, got %f", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(3.14159, 4); got != 3.1416 {
		t.Fatalf("expected 3.1416, got %f", got)
	}
	if got := Round(-7.49999, 2); got != -7.5 {
		t.Fatalf("expected -7.5, got %f", got)
	}
}

func TestRoundAll(t *testing.T) {
	got := RoundAll([]float64{1.23456, -0.98765}, 4)
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %d", len(got))
	}
	if got[0] != 1.2346 || got[1] != -0.9877 {
		t.Fatalf("unexpected rounded values: %v", got)
	}
}

func TestHistogram(t *testing.T) {
	values := []float64{-8, -8, -7.9, -7, -6.1}
	bins := Histogram(values, 0.5)

	if len(bins) == 0 {
		t.Fatalf("expected non-empty histogram")
	}

	var total int64
	for _, b := range bins {
		if b.Upper-b.Lower != 0.5 {
			t.Fatalf("expected bin width 0.5, got [%f, %f)", b.Lower, b.Upper)
		}
		total += b.Count
	}
	if total != int64(len(values)) {
		t.Fatalf("expected histogram counts to sum to %d, got %d", len(values), total)
	}

	// -8 is an aligned edge, first bin must start there and hold both -8 values and -7.9
	if bins[0].Lower != -8 {
		t.Fatalf("expected first bin edge -8, got %f", bins[0].Lower)
	}
	if bins[0].Count != 3 {
		t.Fatalf("expected 3 values in first bin, got %d", bins[0].Count)
	}
}

func TestHistogramDeterministic(t *testing.T) {
	a := Histogram([]float64{1.1, 2.2, 3.3}, 1.0)
	b := Histogram([]float64{3.3, 1.1, 2.2}, 1.0)
	if len(a) != len(b) {
		t.Fatalf("histograms differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bin %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestHistogramEmpty(t *testing.T) {
	if bins := Histogram(nil, 1.0); bins != nil {
		t.Fatalf("expected nil histogram for empty input, got %v", bins)
	}
}

func TestHistogramSingleValue(t *testing.T) {
	bins := Histogram([]float64{-4}, 0.25)
	if len(bins) != 1 {
		t.Fatalf("expected 1 bin, got %d", len(bins))
	}
	if bins[0].Count != 1 {
		t.Fatalf("expected count 1, got %d", bins[0].Count)
	}
	if math.Abs(bins[0].Lower - -4) > 1e-12 {
		t.Fatalf("expected bin aligned at -4, got %f", bins[0].Lower)
	}
}
