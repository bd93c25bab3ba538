package methods

import "github.com/amirphl/tastream/internal/core"

// WMA is a linearly weighted moving average: the newest value gets
// weight `period`, the oldest weight 1. Maintained incrementally via
// the recurrence
//
//	numerator += period*new - sum
//	sum       += new - evicted
//
// where sum is the plain window sum before the push. Subtracting the
// whole previous sum lowers every weight by one, which drops the
// evicted value (weight 1) exactly.
type WMA struct {
	window    *core.Window[float64]
	sum       float64
	numerator float64
	divisor   float64
	period    float64
}

// NewWMA creates a WMA of the given period seeded with value.
func NewWMA(period int, value float64) (*WMA, error) {
	if err := core.ValidatePeriod("wma", period); err != nil {
		return nil, err
	}
	w, err := core.NewWindow(period, value)
	if err != nil {
		return nil, err
	}
	n := float64(period)
	divisor := n * (n + 1) / 2
	return &WMA{
		window:    w,
		sum:       value * n,
		numerator: value * divisor,
		divisor:   divisor,
		period:    n,
	}, nil
}

func (m *WMA) Next(value float64) float64 {
	evicted := m.window.Push(value)
	m.numerator += m.period*value - m.sum
	m.sum += value - evicted
	return m.numerator / m.divisor
}
