package bootsnrun

import (
	"github.com/raykavin/bootsnrun/pkg/logger"
	"github.com/raykavin/bootsnrun/pkg/sampler"
	"github.com/raykavin/bootsnrun/pkg/statistic"
)

// Option is a functional option for configuring a Study instance
type Option func(*Study)

// WithIterations sets how many resamples the study draws. Defaults to 10000.
func WithIterations(iterations int) Option {
	return func(s *Study) {
		s.iterations = iterations
	}
}

// WithConfidence sets the confidence level for the reported intervals,
// as a fraction. eg: 0.95 for 95%
func WithConfidence(confidence float64) Option {
	return func(s *Study) {
		s.confidence = confidence
	}
}

// WithStatistic registers a named statistic to bootstrap. Statistics
// appear in the report in registration order.
func WithStatistic(name string, fn statistic.Statistic) Option {
	return func(s *Study) {
		s.addStatistic(name, fn)
	}
}

// WithPercentile registers the p-th percentile as a statistic, labeled
// p<rank>. eg: WithPercentile(95) registers "p95"
func WithPercentile(p int) Option {
	return func(s *Study) {
		s.addStatistic(percentileLabel(p), statistic.Percentile(float64(p)))
	}
}

// WithSeed fixes the random source so repeated runs produce identical
// bootstrap distributions.
func WithSeed(seed int64) Option {
	return func(s *Study) {
		s.sampler = sampler.New(seed)
	}
}

// WithSampler sets the sampler used to draw resamples.
func WithSampler(smp *sampler.Sampler) Option {
	return func(s *Study) {
		s.sampler = smp
	}
}

// WithParallelism sets the number of workers drawing resamples.
func WithParallelism(n int) Option {
	return func(s *Study) {
		s.parallelism = n
	}
}

// WithProgress shows a terminal progress bar while the study runs.
func WithProgress(show bool) Option {
	return func(s *Study) {
		s.progress = show
	}
}

// WithLogger sets the logger for the study. By default DefaultLog is used.
func WithLogger(log logger.Logger) Option {
	return func(s *Study) {
		s.logger = log
	}
}

// WithLogLevel sets the log level of the study logger. eg: logger.DebugLevel, logger.InfoLevel
func WithLogLevel(level logger.Level) Option {
	return func(s *Study) {
		s.logger.SetLevel(level)
	}
}
