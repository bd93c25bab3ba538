// Package methods implements streaming statistics over numeric time
// series. Every method is constructed from its parameters plus the
// first observed value, is well-defined from its first output, and
// updates in O(1) amortized time per tick.
package methods

import "github.com/amirphl/tastream/internal/core"

// SMA is a simple moving average over a sliding window.
type SMA struct {
	window *core.Window[float64]
	sum    float64
	period float64
}

// NewSMA creates an SMA of the given period seeded with value.
func NewSMA(period int, value float64) (*SMA, error) {
	if err := core.ValidatePeriod("sma", period); err != nil {
		return nil, err
	}
	w, err := core.NewWindow(period, value)
	if err != nil {
		return nil, err
	}
	return &SMA{
		window: w,
		sum:    value * float64(period),
		period: float64(period),
	}, nil
}

func (s *SMA) Next(value float64) float64 {
	s.sum += value - s.window.Push(value)
	return s.sum / s.period
}
