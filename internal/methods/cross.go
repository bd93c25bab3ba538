package methods

import "github.com/amirphl/tastream/internal/core"

// Crossing detectors compare two synchronized streams (value, base)
// and fire exactly on the tick where their ordering flips. Equality
// counts as neither above nor below, so a pair sitting on the boundary
// never fires by itself. The zero value is ready to use; the first
// pair only primes the state and can never fire.

// CrossAbove fires Buy on the tick where value transitions from
// <= base to > base, and None everywhere else.
type CrossAbove struct {
	prevValue float64
	prevBase  float64
	primed    bool
}

func (c *CrossAbove) Next(value, base float64) core.Action {
	fired := c.primed && c.prevValue <= c.prevBase && value > base
	c.prevValue, c.prevBase, c.primed = value, base, true
	if fired {
		return core.Buy
	}
	return core.None
}

// CrossUnder fires Buy on the tick where value transitions from
// >= base to < base, and None everywhere else. Both detectors report
// a positive unit so callers choose the sign when combining, e.g.
// crossUnder(v, -zone) - crossAbove(v, zone) for an oscillator.
type CrossUnder struct {
	prevValue float64
	prevBase  float64
	primed    bool
}

func (c *CrossUnder) Next(value, base float64) core.Action {
	fired := c.primed && c.prevValue >= c.prevBase && value < base
	c.prevValue, c.prevBase, c.primed = value, base, true
	if fired {
		return core.Buy
	}
	return core.None
}

// Cross combines both directions: Buy on an upward crossing, Sell on a
// downward one, None otherwise.
type Cross struct {
	above CrossAbove
	under CrossUnder
}

func (c *Cross) Next(value, base float64) core.Action {
	return c.above.Next(value, base) - c.under.Next(value, base)
}
