// Package statistic provides summary statistics to apply to bootstrap
// resamples. Every statistic is a pure function from a non-empty
// sample to a single value.
package statistic

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistic maps a sample to a single summary value. Implementations
// must not mutate the input slice.
type Statistic func(values []float64) float64

// Named pairs a statistic with the label used in reports.
type Named struct {
	Name string
	Func Statistic
}

// Mean calculates the arithmetic mean of the values.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// StdDev calculates the corrected (n-1) sample standard deviation.
func StdDev(values []float64) float64 {
	return stat.StdDev(values, nil)
}

// Variance calculates the corrected (n-1) sample variance.
func Variance(values []float64) float64 {
	return stat.Variance(values, nil)
}

// Median returns the 50th percentile of the values.
func Median(values []float64) float64 {
	return Percentile(50)(values)
}

// Sum calculates the sum of the values.
func Sum(values []float64) float64 {
	return sumOf(values)
}

// Min returns the smallest value.
func Min(values []float64) float64 {
	return minOf(values)
}

// Max returns the largest value.
func Max(values []float64) float64 {
	return maxOf(values)
}

// Percentile returns a statistic computing the p-th percentile of a
// sample, with p in [0, 100]. Ranks falling between two order
// statistics are resolved by linear interpolation between the two
// nearest ranked values (gonum's LinInterp rule). The returned
// statistic panics for p outside [0, 100]; the input is copied and
// sorted, never mutated.
func Percentile(p float64) Statistic {
	return func(values []float64) float64 {
		if p < 0 || p > 100 {
			panic(fmt.Sprintf("statistic: percentile %v out of range [0, 100]", p))
		}
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		return stat.Quantile(p/100, stat.LinInterp, sorted, nil)
	}
}
