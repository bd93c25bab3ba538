package core

import "fmt"

// OHLCV is the observation shape the indicator layer consumes. Any
// candle-like value that exposes these accessors can drive an
// indicator; the core never parses or stores raw market data itself.
type OHLCV interface {
	OpenPrice() float64
	HighPrice() float64
	LowPrice() float64
	ClosePrice() float64
	VolumeAmount() float64
}

// Source selects which numeric field of a candle an indicator reads.
type Source int

const (
	SourceClose Source = iota
	SourceOpen
	SourceHigh
	SourceLow
	SourceVolume
	// SourceHL2 is the midpoint (high + low) / 2.
	SourceHL2
	// SourceTP is the typical price (high + low + close) / 3.
	SourceTP
)

var sourceNames = map[Source]string{
	SourceClose:  "close",
	SourceOpen:   "open",
	SourceHigh:   "high",
	SourceLow:    "low",
	SourceVolume: "volume",
	SourceHL2:    "hl2",
	SourceTP:     "tp",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// ParseSource parses a source name as used in config files and Set calls.
func ParseSource(name string) (Source, error) {
	for s, n := range sourceNames {
		if n == name {
			return s, nil
		}
	}
	return SourceClose, fmt.Errorf("unknown source %q", name)
}

// Of extracts the selected field from a candle. This is the single
// point where indicator code touches the observation shape.
func (s Source) Of(c OHLCV) float64 {
	switch s {
	case SourceOpen:
		return c.OpenPrice()
	case SourceHigh:
		return c.HighPrice()
	case SourceLow:
		return c.LowPrice()
	case SourceVolume:
		return c.VolumeAmount()
	case SourceHL2:
		return (c.HighPrice() + c.LowPrice()) / 2
	case SourceTP:
		return (c.HighPrice() + c.LowPrice() + c.ClosePrice()) / 3
	default:
		return c.ClosePrice()
	}
}
