package methods

import (
	"math"

	"github.com/amirphl/tastream/internal/core"
)

// StDev is a population standard deviation over a sliding window,
// maintained from a running sum and sum of squares. The variance is
// clamped at zero so float cancellation can never produce NaN.
type StDev struct {
	window *core.Window[float64]
	sum    float64
	sumSq  float64
	period float64
}

// NewStDev creates a StDev of the given period seeded with value.
// Seeded with a constant window, the first output is exactly 0.
func NewStDev(period int, value float64) (*StDev, error) {
	if err := core.ValidatePeriod("stdev", period); err != nil {
		return nil, err
	}
	w, err := core.NewWindow(period, value)
	if err != nil {
		return nil, err
	}
	n := float64(period)
	return &StDev{
		window: w,
		sum:    value * n,
		sumSq:  value * value * n,
		period: n,
	}, nil
}

func (s *StDev) Next(value float64) float64 {
	evicted := s.window.Push(value)
	s.sum += value - evicted
	s.sumSq += value*value - evicted*evicted

	mean := s.sum / s.period
	variance := s.sumSq/s.period - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}
