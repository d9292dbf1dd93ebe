package bootstrap

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySample       = errors.New("empty sample")
	ErrInvalidIterations = errors.New("iteration count must be positive")
	ErrInvalidConfidence = errors.New("confidence level must be between 0 and 1 exclusive")
	ErrNoStatistics      = errors.New("at least one statistic must be provided")
)

// StatisticError reports a failure raised by a caller-supplied
// statistic function while it was applied to a resample or to the
// original sample. The failure is propagated unchanged; resampling
// again would not change its kind.
type StatisticError struct {
	Name      string // statistic label, when known
	Iteration int    // zero-based resample index, -1 for the original sample
	Recovered any    // value recovered from the statistic's panic
}

func (e *StatisticError) Error() string {
	target := "the original sample"
	if e.Iteration >= 0 {
		target = fmt.Sprintf("resample %d", e.Iteration)
	}

	if e.Name != "" {
		return fmt.Sprintf("statistic %q failed on %s: %v", e.Name, target, e.Recovered)
	}
	return fmt.Sprintf("statistic failed on %s: %v", target, e.Recovered)
}

// Unwrap exposes the cause when the statistic panicked with an error.
func (e *StatisticError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
