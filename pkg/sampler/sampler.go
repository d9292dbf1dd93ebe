// Package sampler provides the uniform sampling-with-replacement
// primitive used by the bootstrap estimator.
package sampler

import (
	"math/rand"
	"time"
)

// Sampler draws resamples from a sample using its own random source,
// so callers can inject a seed for reproducible runs.
//
// A Sampler is not safe for concurrent use; fork one per goroutine
// with Fork.
type Sampler struct {
	rng *rand.Rand
}

// New creates a sampler with a fixed seed.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// NewFromTime creates a sampler seeded from the current time.
func NewFromTime() *Sampler {
	return New(time.Now().UnixNano())
}

// Resample returns a new slice of len(sample) elements, each drawn
// independently and uniformly at random from sample, with replacement.
// The input is never mutated.
func (s *Sampler) Resample(sample []float64) []float64 {
	out := make([]float64, len(sample))
	s.ResampleInto(sample, out)
	return out
}

// ResampleInto fills dst with a resample of sample, reusing the
// destination buffer. It panics if len(dst) != len(sample).
func (s *Sampler) ResampleInto(sample, dst []float64) {
	if len(dst) != len(sample) {
		panic("sampler: destination length does not match sample length")
	}
	n := len(sample)
	for i := range dst {
		dst[i] = sample[s.rng.Intn(n)]
	}
}

// Fork derives n samplers with seeds drawn from this sampler's source.
// Each child has an independent random stream, so forked samplers can
// run on separate goroutines without sharing state.
func (s *Sampler) Fork(n int) []*Sampler {
	children := make([]*Sampler, n)
	for i := range children {
		children[i] = New(s.rng.Int63())
	}
	return children
}
