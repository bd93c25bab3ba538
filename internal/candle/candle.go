// Package candle
package candle

import (
	"errors"
	"math"
	"time"
)

// Candle is a single OHLCV observation. It satisfies core.OHLCV and is
// the value type the indicator layer is normally driven with.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

func (c Candle) OpenPrice() float64    { return c.Open }
func (c Candle) HighPrice() float64    { return c.High }
func (c Candle) LowPrice() float64     { return c.Low }
func (c Candle) ClosePrice() float64   { return c.Close }
func (c Candle) VolumeAmount() float64 { return c.Volume }

// Validate checks if a candle has valid data. The streaming core does
// not guard against non-finite values at tick time, so ingestion code
// is expected to reject bad candles here first.
func (c Candle) Validate() error {
	if !isFinite(c.Open) || !isFinite(c.High) || !isFinite(c.Low) || !isFinite(c.Close) || !isFinite(c.Volume) {
		return errors.New("candle fields must be finite")
	}
	if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
		return errors.New("candle prices must be positive")
	}
	if c.High < c.Low {
		return errors.New("candle high cannot be less than low")
	}
	if c.Open < c.Low || c.Open > c.High {
		return errors.New("candle open price must be between high and low")
	}
	if c.Close < c.Low || c.Close > c.High {
		return errors.New("candle close price must be between high and low")
	}
	if c.Volume < 0 {
		return errors.New("candle volume cannot be negative")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
