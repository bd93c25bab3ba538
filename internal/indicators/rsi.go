package indicators

import (
	"strconv"

	"github.com/amirphl/tastream/internal/core"
	"github.com/amirphl/tastream/internal/methods"
)

// RelativeStrengthIndex config.
//
// One value: RSI scaled into [0, 1], 0.5 being neutral.
// One signal: full buy when the value crosses under `zone`, full sell
// when it crosses above `1 - zone`, none otherwise.
type RelativeStrengthIndex struct {
	// Period is the Wilder smoothing period. Range (1, core.MaxPeriod].
	Period int
	// Zone is the oversold boundary; the overbought boundary is its
	// mirror 1 - zone. Range [0, 0.5].
	Zone float64
	// Source selects the candle field driving the index.
	Source core.Source
}

// NewRelativeStrengthIndex returns the config with default parameters:
// period 14, zone 0.3, close source.
func NewRelativeStrengthIndex() *RelativeStrengthIndex {
	return &RelativeStrengthIndex{Period: 14, Zone: 0.3, Source: core.SourceClose}
}

func (c *RelativeStrengthIndex) Name() string { return "RelativeStrengthIndex" }

func (c *RelativeStrengthIndex) Validate() bool {
	return c.Zone >= 0 && c.Zone <= 0.5 && c.Period > 1 && c.Period <= core.MaxPeriod
}

func (c *RelativeStrengthIndex) Set(name, value string) error {
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

func (c *RelativeStrengthIndex) Size() (int, int) { return 1, 1 }

func (c *RelativeStrengthIndex) Init(candle core.OHLCV) (core.IndicatorInstance, error) {
	if !c.Validate() {
		return nil, core.ErrWrongConfig
	}
	cfg := *c
	change, err := methods.NewChange(1, cfg.Source.Of(candle))
	if err != nil {
		return nil, err
	}
	// Seeded from a flat history: no gains, no losses.
	avgGain, err := methods.NewRMA(cfg.Period, 0)
	if err != nil {
		return nil, err
	}
	avgLoss, err := methods.NewRMA(cfg.Period, 0)
	if err != nil {
		return nil, err
	}
	return &rsiInstance{
		cfg:     cfg,
		change:  change,
		avgGain: avgGain,
		avgLoss: avgLoss,
	}, nil
}

type rsiInstance struct {
	cfg RelativeStrengthIndex

	change     *methods.Change
	avgGain    *methods.RMA
	avgLoss    *methods.RMA
	crossUnder methods.CrossUnder
	crossAbove methods.CrossAbove
}

func (i *rsiInstance) Config() core.IndicatorConfig { return &i.cfg }

func (i *rsiInstance) Next(candle core.OHLCV) core.IndicatorResult {
	ch := i.change.Next(i.cfg.Source.Of(candle))

	gain, loss := splitChange(ch)
	up := i.avgGain.Next(gain)
	down := i.avgLoss.Next(loss)

	// Neutral until any movement has been smoothed in.
	value := 0.5
	if up != 0 || down != 0 {
		value = up / (up + down)
	}

	signal := i.crossUnder.Next(value, i.cfg.Zone) - i.crossAbove.Next(value, 1-i.cfg.Zone)

	return core.NewIndicatorResult([]float64{value}, []core.Action{signal})
}
