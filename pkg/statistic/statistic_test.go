package statistic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 5.0, Mean([]float64{5}))
}

func TestStdDevAndVariance(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	// Corrected sample variance: sum of squared deviations / (n-1)
	assert.InDelta(t, 5.0/3.0, Variance(values), 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), StdDev(values), 1e-12)
}

func TestSumMinMax(t *testing.T) {
	values := []float64{4, -1, 7, 2}

	assert.Equal(t, 12.0, Sum(values))
	assert.Equal(t, -1.0, Min(values))
	assert.Equal(t, 7.0, Max(values))
}

func TestPercentileBounds(t *testing.T) {
	values := []float64{9, 1, 7, 3, 5}

	assert.Equal(t, 1.0, Percentile(0)(values))
	assert.Equal(t, 9.0, Percentile(100)(values))
}

func TestPercentileConstantSample(t *testing.T) {
	values := []float64{5, 5, 5, 5}

	for _, p := range []float64{0, 25, 50, 75, 95, 100} {
		assert.Equal(t, 5.0, Percentile(p)(values), "percentile %v", p)
	}
}

func TestPercentileMonotonic(t *testing.T) {
	values := []float64{12, 3, 45, 8, 21, 30, 1, 17}

	p25 := Percentile(25)(values)
	p50 := Percentile(50)(values)
	p75 := Percentile(75)(values)

	assert.LessOrEqual(t, p25, p50)
	assert.LessOrEqual(t, p50, p75)
}

func TestMedianMatchesPercentile50(t *testing.T) {
	values := []float64{2, 9, 4, 6, 1}

	assert.Equal(t, Percentile(50)(values), Median(values))
}

func TestPercentileDoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 7, 3}

	Percentile(50)(values)

	assert.Equal(t, []float64{9, 1, 7, 3}, values)
}

func TestPercentileOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Percentile(150)([]float64{1, 2, 3}) })
	assert.Panics(t, func() { Percentile(-5)([]float64{1, 2, 3}) })
}
