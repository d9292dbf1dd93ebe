package bootsnrun

import (
	"context"
	"strconv"

	"github.com/StudioSol/set"
	"github.com/raykavin/bootsnrun/pkg/bootstrap"
	"github.com/raykavin/bootsnrun/pkg/logger"
	"github.com/raykavin/bootsnrun/pkg/sampler"
	"github.com/raykavin/bootsnrun/pkg/statistic"
)

const (
	defaultIterations = 10000
	defaultConfidence = 0.95
)

// Study bundles a sample with the statistics to bootstrap and the run
// settings. Statistics keep registration order; registering the same
// name twice replaces the function without duplicating the report row.
type Study struct {
	sample      []float64
	iterations  int
	confidence  float64
	names       *set.LinkedHashSetString
	funcs       map[string]statistic.Statistic
	sampler     *sampler.Sampler
	parallelism int
	progress    bool
	logger      logger.Logger
}

// NewStudy creates a study over the given sample. Without options the
// study runs 10000 iterations at 95% confidence and bootstraps the
// sample mean and the 95th percentile.
func NewStudy(sample []float64, options ...Option) (*Study, error) {
	if len(sample) == 0 {
		return nil, bootstrap.ErrEmptySample
	}

	study := &Study{
		sample:      sample,
		iterations:  defaultIterations,
		confidence:  defaultConfidence,
		names:       set.NewLinkedHashSetString(),
		funcs:       make(map[string]statistic.Statistic),
		parallelism: 1,
		logger:      DefaultLog,
	}

	for _, option := range options {
		option(study)
	}

	if study.iterations <= 0 {
		return nil, bootstrap.ErrInvalidIterations
	}

	if study.confidence <= 0 || study.confidence >= 1 {
		return nil, bootstrap.ErrInvalidConfidence
	}

	if study.names.Length() == 0 {
		study.addStatistic("mean", statistic.Mean)
		study.addStatistic(percentileLabel(95), statistic.Percentile(95))
	}

	return study, nil
}

func (s *Study) addStatistic(name string, fn statistic.Statistic) {
	s.names.Add(name)
	s.funcs[name] = fn
}

func percentileLabel(p int) string {
	return "p" + strconv.Itoa(p)
}

// Statistics returns the registered statistics in registration order.
func (s *Study) Statistics() []statistic.Named {
	stats := make([]statistic.Named, 0, s.names.Length())
	for name := range s.names.Iter() {
		stats = append(stats, statistic.Named{Name: name, Func: s.funcs[name]})
	}
	return stats
}

// Run executes one resampling pass. Every registered statistic is
// computed from the same resample per iteration, so a study with many
// statistics costs one resampling loop, not one per statistic.
func (s *Study) Run(ctx context.Context) (*Report, error) {
	stats := s.Statistics()

	opts := []bootstrap.Option{
		bootstrap.WithParallelism(s.parallelism),
		bootstrap.WithLogger(s.logger),
		bootstrap.WithProgress(s.progress),
	}
	if s.sampler != nil {
		opts = append(opts, bootstrap.WithSampler(s.sampler))
	}

	dists, err := bootstrap.RunMulti(ctx, s.sample, s.iterations, stats, opts...)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(stats))
	for i, stat := range stats {
		estimate, err := bootstrap.Estimate(stat, s.sample)
		if err != nil {
			return nil, err
		}

		results[i] = Result{
			Name:         stat.Name,
			Estimate:     estimate,
			Distribution: dists[i],
			Interval:     dists[i].Interval(s.confidence),
		}
	}

	return &Report{
		Results:    results,
		Iterations: s.iterations,
		Confidence: s.confidence,
	}, nil
}
