package methods

import "github.com/amirphl/tastream/internal/core"

// Change outputs the difference between the current value and the
// value from `length` ticks ago. The raw inputs live in a window of
// capacity `length`, so the value evicted on each push is exactly the
// lagged one: O(1) differencing for any lag.
type Change struct {
	window *core.Window[float64]
}

// NewChange creates a Change of the given lag seeded with value. The
// seeded window means early outputs measure change from the seed,
// so a constant input yields 0 from the first tick.
func NewChange(length int, value float64) (*Change, error) {
	if err := core.ValidatePeriod("change", length); err != nil {
		return nil, err
	}
	w, err := core.NewWindow(length, value)
	if err != nil {
		return nil, err
	}
	return &Change{window: w}, nil
}

func (c *Change) Next(value float64) float64 {
	return value - c.window.Push(value)
}
