// Package bootstrap implements the resampling estimator: it draws
// repeated resamples (with replacement, same size as the input) from a
// sample and collects the value of one or more statistics per
// resample, producing the empirical bootstrap distribution of each.
package bootstrap

import (
	"context"
	"sync"

	"github.com/raykavin/bootsnrun/pkg/logger"
	"github.com/raykavin/bootsnrun/pkg/sampler"
	"github.com/raykavin/bootsnrun/pkg/statistic"

	"github.com/schollz/progressbar/v3"
)

type config struct {
	sampler     *sampler.Sampler
	parallelism int
	logger      logger.Logger
	progress    bool
}

// Option configures a bootstrap run.
type Option func(*config)

// WithSeed fixes the random source so two runs with the same inputs
// produce identical distributions.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.sampler = sampler.New(seed)
	}
}

// WithSampler sets the sampler used to draw resamples.
func WithSampler(s *sampler.Sampler) Option {
	return func(c *config) {
		c.sampler = s
	}
}

// WithParallelism sets the number of workers drawing resamples.
// Iterations are split into contiguous blocks with one forked sampler
// per worker, so output stays deterministic for a fixed seed and
// worker count. Values below 2 keep the run sequential.
func WithParallelism(n int) Option {
	return func(c *config) {
		c.parallelism = n
	}
}

// WithLogger sets the logger for run progress messages.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithProgress shows a terminal progress bar during the run.
func WithProgress(show bool) Option {
	return func(c *config) {
		c.progress = show
	}
}

// Run draws `iterations` resamples from sample and returns the ordered
// sequence of stat values, one per resample. The sample is treated as
// an unordered multiset and is never mutated. On any error no partial
// distribution is returned.
func Run(ctx context.Context, sample []float64, iterations int, stat statistic.Statistic, opts ...Option) (Distribution, error) {
	dists, err := RunMulti(ctx, sample, iterations, []statistic.Named{{Name: "statistic", Func: stat}}, opts...)
	if err != nil {
		return nil, err
	}
	return dists[0], nil
}

// RunMulti is like Run but computes every statistic from one shared
// resample per iteration, avoiding a full resampling pass per
// statistic. The i-th value of every returned distribution comes from
// the same i-th resample.
func RunMulti(ctx context.Context, sample []float64, iterations int, stats []statistic.Named, opts ...Option) ([]Distribution, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	if iterations <= 0 {
		return nil, ErrInvalidIterations
	}
	if len(stats) == 0 {
		return nil, ErrNoStatistics
	}
	for _, s := range stats {
		if s.Func == nil {
			return nil, ErrNoStatistics
		}
	}

	cfg := &config{
		sampler:     sampler.NewFromTime(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logf(cfg.logger, "starting bootstrap: %d iterations, %d observations, %d statistics",
		iterations, len(sample), len(stats))

	var bar *progressbar.ProgressBar
	if cfg.progress {
		bar = progressbar.Default(int64(iterations))
	}

	dists := make([]Distribution, len(stats))
	for i := range dists {
		dists[i] = make(Distribution, iterations)
	}

	var err error
	if cfg.parallelism > 1 && iterations > 1 {
		err = runParallel(ctx, cfg, bar, sample, iterations, stats, dists)
	} else {
		err = runBlock(ctx, cfg, bar, cfg.sampler, sample, 0, iterations, stats, dists)
	}
	if err != nil {
		return nil, err
	}

	logf(cfg.logger, "bootstrap completed: %d iterations", iterations)
	return dists, nil
}

// runBlock draws the resamples for iterations [start, end) with the
// given sampler and fills the matching slots of every distribution.
func runBlock(ctx context.Context, cfg *config, bar *progressbar.ProgressBar, smp *sampler.Sampler,
	sample []float64, start, end int, stats []statistic.Named, dists []Distribution) error {

	resample := make([]float64, len(sample))
	for i := start; i < end; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		smp.ResampleInto(sample, resample)
		for j, s := range stats {
			value, err := apply(s, resample, i)
			if err != nil {
				return err
			}
			dists[j][i] = value
		}
		if bar != nil {
			if err := bar.Add(1); err != nil {
				logWarnf(cfg.logger, "update progressbar fail: %v", err)
			}
		}
	}
	return nil
}

// runParallel splits the iterations into contiguous blocks, one per
// worker, each with an independently seeded sampler forked from the
// configured one. Workers write to disjoint slots, so no result lock
// is needed.
func runParallel(ctx context.Context, cfg *config, bar *progressbar.ProgressBar,
	sample []float64, iterations int, stats []statistic.Named, dists []Distribution) error {

	workers := cfg.parallelism
	if workers > iterations {
		workers = iterations
	}

	var (
		wg    sync.WaitGroup
		errCh = make(chan error, 1)
	)

	for w, smp := range cfg.sampler.Fork(workers) {
		start := w * iterations / workers
		end := (w + 1) * iterations / workers

		wg.Add(1)
		go func(smp *sampler.Sampler, start, end int) {
			defer wg.Done()

			if err := runBlock(ctx, cfg, bar, smp, sample, start, end, stats, dists); err != nil {
				select {
				case errCh <- err:
				default:
					// Another error was already sent
				}
			}
		}(smp, start, end)
	}

	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// Estimate applies a statistic to the original sample, converting
// panics raised inside the statistic into a StatisticError just like
// resample application does.
func Estimate(stat statistic.Named, sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}
	return apply(stat, sample, -1)
}

// apply runs a statistic over a resample, converting panics raised
// inside the statistic into a StatisticError.
func apply(stat statistic.Named, resample []float64, iteration int) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &StatisticError{Name: stat.Name, Iteration: iteration, Recovered: r}
		}
	}()
	return stat.Func(resample), nil
}

func logf(l logger.Logger, format string, args ...any) {
	if l != nil {
		l.Infof(format, args...)
	}
}

func logWarnf(l logger.Logger, format string, args ...any) {
	if l != nil {
		l.Warnf(format, args...)
	}
}
