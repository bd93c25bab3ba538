package methods

import "github.com/amirphl/tastream/internal/core"

// EMA is an exponential moving average with the conventional smoothing
// factor 2 / (period + 1). State is just the previous output.
type EMA struct {
	alpha float64
	value float64
}

// NewEMA creates an EMA of the given period seeded with value.
func NewEMA(period int, value float64) (*EMA, error) {
	if err := core.ValidatePeriod("ema", period); err != nil {
		return nil, err
	}
	return &EMA{
		alpha: 2 / (float64(period) + 1),
		value: value,
	}, nil
}

func (e *EMA) Next(value float64) float64 {
	e.value += e.alpha * (value - e.value)
	return e.value
}

// RMA is Wilder's running moving average, the smoothing used inside
// RSI: same recurrence as EMA but with factor 1 / period.
type RMA struct {
	alpha float64
	value float64
}

// NewRMA creates an RMA of the given period seeded with value.
func NewRMA(period int, value float64) (*RMA, error) {
	if err := core.ValidatePeriod("rma", period); err != nil {
		return nil, err
	}
	return &RMA{
		alpha: 1 / float64(period),
		value: value,
	}, nil
}

func (r *RMA) Next(value float64) float64 {
	r.value += r.alpha * (value - r.value)
	return r.value
}
