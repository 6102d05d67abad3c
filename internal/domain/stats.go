package domain

import (
	"math"
	"sort"
)

// lowMedian returns the lower middle element of the sorted samples.
func lowMedian(samples []int64) int64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := append([]int64(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return sorted[(len(sorted)-1)/2]
}

// coefficientOfVariation is the sample standard deviation over the mean.
// It is zero for fewer than two samples or a zero mean.
func coefficientOfVariation(samples []int64) float64 {
	if len(samples) < 2 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}

	mean := sum / float64(len(samples))
	if mean == 0 {
		return 0
	}

	var sq float64
	for _, s := range samples {
		d := float64(s) - mean
		sq += d * d
	}

	stdev := math.Sqrt(sq / float64(len(samples)-1))

	return stdev / mean
}
