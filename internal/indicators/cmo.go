// Package indicators
package indicators

import (
	"strconv"

	"github.com/amirphl/tastream/internal/core"
	"github.com/amirphl/tastream/internal/methods"
)

// ChandeMomentumOscillator config.
//
// One value: the oscillator, in [-1, 1].
// One signal: full buy when the oscillator crosses under -zone, full
// sell when it crosses above +zone, none otherwise.
type ChandeMomentumOscillator struct {
	// Period is the summation window. Range (1, core.MaxPeriod].
	Period int
	// Zone is the overbought/oversold boundary. Range [0, 1].
	Zone float64
	// Source selects the candle field driving the oscillator.
	Source core.Source
}

// NewChandeMomentumOscillator returns the config with default
// parameters: period 9, zone 0.5, close source.
func NewChandeMomentumOscillator() *ChandeMomentumOscillator {
	return &ChandeMomentumOscillator{Period: 9, Zone: 0.5, Source: core.SourceClose}
}

func (c *ChandeMomentumOscillator) Name() string { return "ChandeMomentumOscillator" }

func (c *ChandeMomentumOscillator) Validate() bool {
	return c.Zone >= 0 && c.Zone <= 1 && c.Period > 1 && c.Period <= core.MaxPeriod
}

func (c *ChandeMomentumOscillator) Set(name, value string) error {
	switch name {
	case "period":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return &core.ParameterParseError{Name: name, Value: value}
		}
		c.Period = parsed
	case "zone":
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &core.ParameterParseError{Name: name, Value: value}
		}
		c.Zone = parsed
	case "source":
		parsed, err := core.ParseSource(value)
		if err != nil {
			return &core.ParameterParseError{Name: name, Value: value}
		}
		c.Source = parsed
	default:
		return &core.ParameterParseError{Name: name, Value: value}
	}
	return nil
}

func (c *ChandeMomentumOscillator) Size() (int, int) { return 1, 1 }

func (c *ChandeMomentumOscillator) Init(candle core.OHLCV) (core.IndicatorInstance, error) {
	if !c.Validate() {
		return nil, core.ErrWrongConfig
	}
	cfg := *c
	change, err := methods.NewChange(1, cfg.Source.Of(candle))
	if err != nil {
		return nil, err
	}
	window, err := core.NewWindow(cfg.Period, 0.0)
	if err != nil {
		return nil, err
	}
	return &cmoInstance{
		cfg:    cfg,
		change: change,
		window: window,
	}, nil
}

// cmoInstance keeps running sums of the positive and negative changes
// inside the window, updated from the window's evicted value instead
// of rescanning.
type cmoInstance struct {
	cfg ChandeMomentumOscillator

	change     *methods.Change
	window     *core.Window[float64]
	posSum     float64
	negSum     float64
	crossUnder methods.CrossUnder
	crossAbove methods.CrossAbove
}

func (i *cmoInstance) Config() core.IndicatorConfig { return &i.cfg }

func splitChange(ch float64) (pos, neg float64) {
	if ch > 0 {
		return ch, 0
	}
	return 0, -ch
}

func (i *cmoInstance) Next(candle core.OHLCV) core.IndicatorResult {
	ch := i.change.Next(i.cfg.Source.Of(candle))
	evicted := i.window.Push(ch)

	leftPos, leftNeg := splitChange(evicted)
	rightPos, rightNeg := splitChange(ch)
	i.posSum += rightPos - leftPos
	i.negSum += rightNeg - leftNeg

	// Neutral when the window saw no movement at all.
	value := 0.0
	if i.posSum != 0 || i.negSum != 0 {
		value = (i.posSum - i.negSum) / (i.posSum + i.negSum)
	}

	signal := i.crossUnder.Next(value, -i.cfg.Zone) - i.crossAbove.Next(value, i.cfg.Zone)

	return core.NewIndicatorResult([]float64{value}, []core.Action{signal})
}
