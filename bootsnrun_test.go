package bootsnrun_test

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/raykavin/bootsnrun"
	"github.com/raykavin/bootsnrun/pkg/bootstrap"
	"github.com/raykavin/bootsnrun/pkg/statistic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudyDefaults(t *testing.T) {
	study, err := bootsnrun.NewStudy([]float64{1, 2, 3})
	require.NoError(t, err)

	stats := study.Statistics()
	require.Len(t, stats, 2)
	assert.Equal(t, "mean", stats[0].Name)
	assert.Equal(t, "p95", stats[1].Name)
}

func TestNewStudyEmptySample(t *testing.T) {
	study, err := bootsnrun.NewStudy(nil)

	assert.ErrorIs(t, err, bootstrap.ErrEmptySample)
	assert.Nil(t, study)
}

func TestNewStudyInvalidIterations(t *testing.T) {
	study, err := bootsnrun.NewStudy([]float64{1, 2, 3}, bootsnrun.WithIterations(0))

	assert.ErrorIs(t, err, bootstrap.ErrInvalidIterations)
	assert.Nil(t, study)
}

func TestNewStudyInvalidConfidence(t *testing.T) {
	for _, confidence := range []float64{-0.1, 0, 1, 1.5} {
		study, err := bootsnrun.NewStudy([]float64{1, 2, 3, 4, 5},
			bootsnrun.WithConfidence(confidence))

		assert.ErrorIs(t, err, bootstrap.ErrInvalidConfidence, "confidence %v", confidence)
		assert.Nil(t, study)
	}
}

func TestStudyRunEstimatePanicWrapped(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	// Panics only when handed the original sample in its original
	// order, so every resample pass succeeds and the failure happens
	// while computing the point estimate.
	tricky := func(values []float64) float64 {
		if slices.Equal(values, sample) {
			panic("original sample")
		}
		return values[0]
	}

	study, err := bootsnrun.NewStudy(sample,
		bootsnrun.WithIterations(50),
		bootsnrun.WithSeed(5),
		bootsnrun.WithStatistic("tricky", tricky),
	)
	require.NoError(t, err)

	report, err := study.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)

	var statErr *bootstrap.StatisticError
	require.ErrorAs(t, err, &statErr)
	assert.Equal(t, "tricky", statErr.Name)
	assert.Equal(t, -1, statErr.Iteration)
}

func TestStudyDeduplicatesStatistics(t *testing.T) {
	study, err := bootsnrun.NewStudy([]float64{1, 2, 3},
		bootsnrun.WithStatistic("mean", statistic.Mean),
		bootsnrun.WithStatistic("mean", statistic.Mean),
		bootsnrun.WithPercentile(90),
	)
	require.NoError(t, err)

	stats := study.Statistics()
	require.Len(t, stats, 2)
	assert.Equal(t, "mean", stats[0].Name)
	assert.Equal(t, "p90", stats[1].Name)
}

func TestStudyRun(t *testing.T) {
	sample := []float64{2, 4, 6, 8, 10, 12, 14, 16}

	study, err := bootsnrun.NewStudy(sample,
		bootsnrun.WithIterations(400),
		bootsnrun.WithSeed(5),
		bootsnrun.WithStatistic("mean", statistic.Mean),
		bootsnrun.WithStatistic("median", statistic.Median),
	)
	require.NoError(t, err)

	report, err := study.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, 400, report.Iterations)

	mean, ok := report.Result("mean")
	require.True(t, ok)
	assert.Equal(t, statistic.Mean(sample), mean.Estimate)
	assert.Len(t, mean.Distribution, 400)
	assert.LessOrEqual(t, mean.Interval.Lower, mean.Interval.Upper)

	_, ok = report.Result("missing")
	assert.False(t, ok)
}

func TestStudyRunDeterministicWithSeed(t *testing.T) {
	sample := []float64{1, 3, 5, 7, 9}

	run := func() *bootsnrun.Report {
		study, err := bootsnrun.NewStudy(sample,
			bootsnrun.WithIterations(200),
			bootsnrun.WithSeed(21),
		)
		require.NoError(t, err)

		report, err := study.Run(context.Background())
		require.NoError(t, err)
		return report
	}

	first := run()
	second := run()

	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Distribution, second.Results[i].Distribution)
	}
}

func TestReportSummary(t *testing.T) {
	study, err := bootsnrun.NewStudy([]float64{5, 6, 7, 8, 9},
		bootsnrun.WithIterations(100),
		bootsnrun.WithSeed(2),
	)
	require.NoError(t, err)

	report, err := study.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	report.Summary(&buf)

	out := buf.String()
	assert.Contains(t, out, "STATISTIC")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "p95")
	assert.Contains(t, out, "CONFIDENCE INTERVAL (95%)")
}
