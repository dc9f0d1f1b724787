package utils

import (
	"math"
	"sort"
)

// Mean calculates the mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance calculates the variance of a slice of float64 values
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Percentile calculates the percentile of a slice of float64 values
// percentile should be between 0 and 100
func Percentile(values []float64, percentile float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Create a copy and sort it
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	// Calculate index
	index := (percentile / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return sorted[lower]
	}

	// Linear interpolation between lower and upper
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Round rounds a float64 to the specified number of decimal places
func Round(value float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(value*multiplier) / multiplier
}

// RoundAll rounds every value in a slice to the specified number of decimal
// places, returning a new slice.
func RoundAll(values []float64, decimals int) []float64 {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = Round(v, decimals)
	}
	return rounded
}

// Bin is one histogram bucket over [Lower, Upper).
type Bin struct {
	Lower float64
	Upper float64
	Count int64
}

// Histogram bins values into fixed-width buckets. The bucket edges are
// aligned to multiples of width so identical inputs always produce identical
// bins regardless of ordering. A non-positive width defaults to 1.
func Histogram(values []float64, width float64) []Bin {
	if len(values) == 0 {
		return nil
	}
	if width <= 0 {
		width = 1.0
	}

	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	firstEdge := math.Floor(minVal/width) * width
	numBins := int(math.Floor((maxVal-firstEdge)/width)) + 1

	bins := make([]Bin, numBins)
	for i := range bins {
		bins[i].Lower = firstEdge + float64(i)*width
		bins[i].Upper = bins[i].Lower + width
	}
	for _, v := range values {
		idx := int(math.Floor((v - firstEdge) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx].Count++
	}
	return bins
}
