package core

// IndicatorResult is the fixed-width per-tick output of an indicator:
// a tuple of continuous values and discrete signals. Widths are fixed
// per indicator type and never vary across ticks.
type IndicatorResult struct {
	values  []float64
	signals []Action
}

// NewIndicatorResult copies the given slices into a result.
func NewIndicatorResult(values []float64, signals []Action) IndicatorResult {
	r := IndicatorResult{
		values:  make([]float64, len(values)),
		signals: make([]Action, len(signals)),
	}
	copy(r.values, values)
	copy(r.signals, signals)
	return r
}

// Value returns the i-th value.
func (r IndicatorResult) Value(i int) float64 { return r.values[i] }

// Signal returns the i-th signal.
func (r IndicatorResult) Signal(i int) Action { return r.signals[i] }

// Values returns all values, oldest layout order.
func (r IndicatorResult) Values() []float64 { return r.values }

// Signals returns all signals.
func (r IndicatorResult) Signals() []Action { return r.signals }

// Size returns (value count, signal count).
func (r IndicatorResult) Size() (int, int) { return len(r.values), len(r.signals) }

// IndicatorConfig is a named, validated parameter set. It is plain
// data until Init is called; Set mutates the config only, never a live
// instance, so reconfiguration means dropping the instance and calling
// Init again.
type IndicatorConfig interface {
	// Name returns the indicator's registered name.
	Name() string

	// Validate is a pure predicate over the config fields. It is
	// checked by Init before any method is constructed.
	Validate() bool

	// Set parses value into the field called name. It returns a
	// *ParameterParseError when parsing fails or the name is unknown.
	Set(name, value string) error

	// Size returns the fixed (value count, signal count) of every
	// result the indicator will produce.
	Size() (values, signals int)

	// Init validates the config and constructs a live instance seeded
	// from the first observation. Failing validation returns
	// ErrWrongConfig and no instance.
	Init(candle OHLCV) (IndicatorInstance, error)
}

// IndicatorInstance is a live indicator state machine. Next drives
// every constituent method and detector exactly once, in cascade
// order, and assembles the fixed-width result. Identical (state,
// candle) always yields an identical result and next state.
type IndicatorInstance interface {
	Config() IndicatorConfig
	Next(candle OHLCV) IndicatorResult
}

// IndicatorOver folds an instance over a candle sequence, one result
// per candle, in order.
func IndicatorOver[T OHLCV](instance IndicatorInstance, candles []T) []IndicatorResult {
	out := make([]IndicatorResult, len(candles))
	for i, c := range candles {
		out[i] = instance.Next(c)
	}
	return out
}
