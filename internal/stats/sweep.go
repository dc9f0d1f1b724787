package stats

import (
	"fmt"
	"sort"

	"github.com/qubosched/experiment-core/pkg/models"
)

// PenaltyComparison compares two experiments run under different conflict
// penalties
type PenaltyComparison struct {
	Penalty1       float64
	Penalty2       float64
	MeanDiff       float64 // mean final value (experiment2 - experiment1)
	BestDiff       float64
	FractionDiff   float64 // global-minimum fraction (experiment2 - experiment1)
	Improvement    bool    // true if experiment2 reaches the minimum more often
	EvaluationDiff int
}

// ComparePenalties compares the outcomes of two experiments
func ComparePenalties(result1, result2 *models.ExperimentResult) (*PenaltyComparison, error) {
	if result1 == nil || result2 == nil {
		return nil, fmt.Errorf("both experiment results are required")
	}

	s1 := result1.Summary
	s2 := result2.Summary

	return &PenaltyComparison{
		Penalty1:       result1.Penalty,
		Penalty2:       result2.Penalty,
		MeanDiff:       s2.MeanValue - s1.MeanValue,
		BestDiff:       s2.BestValue - s1.BestValue,
		FractionDiff:   s2.GlobalFraction - s1.GlobalFraction,
		Improvement:    s2.GlobalFraction > s1.GlobalFraction,
		EvaluationDiff: s2.TotalEvaluations - s1.TotalEvaluations,
	}, nil
}

// SweepPoint is one experiment outcome within a penalty sweep
type SweepPoint struct {
	Penalty        float64
	MeanValue      float64
	BestValue      float64
	GlobalFraction float64
}

// SweepComparison summarizes a set of experiments across penalty values
type SweepComparison struct {
	Points       []SweepPoint
	BestPenalty  float64 // penalty with the highest global-minimum fraction
	WorstPenalty float64
	Trend        string // "improving", "degrading", "stable" with rising penalty
}

// CompareSweep orders experiment results by penalty and reports how the
// global-minimum fraction responds to the penalty coefficient.
func CompareSweep(results []*models.ExperimentResult) (*SweepComparison, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no experiment results provided")
	}

	points := make([]SweepPoint, len(results))
	for i, result := range results {
		if result == nil {
			return nil, fmt.Errorf("experiment result %d is nil", i)
		}
		points[i] = SweepPoint{
			Penalty:        result.Penalty,
			MeanValue:      result.Summary.MeanValue,
			BestValue:      result.Summary.BestValue,
			GlobalFraction: result.Summary.GlobalFraction,
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Penalty < points[j].Penalty })

	bestIdx := 0
	worstIdx := 0
	for i, p := range points {
		if p.GlobalFraction > points[bestIdx].GlobalFraction {
			bestIdx = i
		}
		if p.GlobalFraction < points[worstIdx].GlobalFraction {
			worstIdx = i
		}
	}

	return &SweepComparison{
		Points:       points,
		BestPenalty:  points[bestIdx].Penalty,
		WorstPenalty: points[worstIdx].Penalty,
		Trend:        fractionTrend(points),
	}, nil
}

// fractionTrend fits a least-squares slope of global fraction against the
// point order and buckets it
func fractionTrend(points []SweepPoint) string {
	if len(points) < 2 {
		return "stable"
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range points {
		x := float64(i)
		sumX += x
		sumY += p.GlobalFraction
		sumXY += x * p.GlobalFraction
		sumX2 += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)

	if slope > 0.01 {
		return "improving"
	}
	if slope < -0.01 {
		return "degrading"
	}
	return "stable"
}
