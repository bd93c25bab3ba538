package methods

// TRIMA is a triangular moving average: structurally an SMA applied to
// the output stream of another SMA of the same period. No dedicated
// formula, so edge behavior is inherited from the stages; with period
// 1 each stage is the identity and so is the cascade.
type TRIMA struct {
	first  *SMA
	second *SMA
}

// NewTRIMA creates a TRIMA of the given period seeded with value.
func NewTRIMA(period int, value float64) (*TRIMA, error) {
	first, err := NewSMA(period, value)
	if err != nil {
		return nil, err
	}
	second, err := NewSMA(period, value)
	if err != nil {
		return nil, err
	}
	return &TRIMA{first: first, second: second}, nil
}

func (t *TRIMA) Next(value float64) float64 {
	return t.second.Next(t.first.Next(value))
}
