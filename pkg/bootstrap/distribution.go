package bootstrap

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution is the empirical bootstrap distribution of a statistic:
// one value per resample, in iteration order.
type Distribution []float64

// Interval represents the confidence interval calculated by the
// percentile method over a bootstrap distribution.
type Interval struct {
	Lower  float64 // Lower bound of the confidence interval
	Upper  float64 // Upper bound of the confidence interval
	StdDev float64 // Standard deviation of the bootstrap values
	Mean   float64 // Mean of the bootstrap values
}

// Mean returns the mean of the bootstrap values.
func (d Distribution) Mean() float64 {
	return stat.Mean(d, nil)
}

// StdDev returns the standard deviation of the bootstrap values. This
// is the bootstrap estimate of the statistic's standard error.
func (d Distribution) StdDev() float64 {
	return stat.StdDev(d, nil)
}

// StdErr returns the bootstrap standard error of the statistic. For a
// bootstrap distribution this is the standard deviation of the values:
// the spread of the resampled statistic estimates the sampling error
// of the statistic itself.
func (d Distribution) StdErr() float64 {
	return d.StdDev()
}

// Quantile returns the p-quantile of the bootstrap values, p in
// [0, 1], using linear interpolation between order statistics.
func (d Distribution) Quantile(p float64) float64 {
	sorted := d.sorted()
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// Interval computes the confidence interval of the distribution using
// the percentile method. confidence is a fraction, e.g. 0.95.
func (d Distribution) Interval(confidence float64) Interval {
	if len(d) == 0 {
		return Interval{}
	}

	sorted := d.sorted()
	tail := 1 - confidence

	mean, stdDev := stat.MeanStdDev(sorted, nil)
	upper := stat.Quantile(1-tail/2, stat.LinInterp, sorted, nil)
	lower := stat.Quantile(tail/2, stat.LinInterp, sorted, nil)

	return Interval{
		Lower:  lower,
		Upper:  upper,
		StdDev: stdDev,
		Mean:   mean,
	}
}

func (d Distribution) sorted() []float64 {
	sorted := make([]float64, len(d))
	copy(sorted, d)
	sort.Float64s(sorted)
	return sorted
}
