package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCandle struct {
	open, high, low, close, volume float64
}

func (c fakeCandle) OpenPrice() float64    { return c.open }
func (c fakeCandle) HighPrice() float64    { return c.high }
func (c fakeCandle) LowPrice() float64     { return c.low }
func (c fakeCandle) ClosePrice() float64   { return c.close }
func (c fakeCandle) VolumeAmount() float64 { return c.volume }

func TestSourceOf(t *testing.T) {
	c := fakeCandle{open: 10, high: 20, low: 5, close: 15, volume: 1000}

	tests := []struct {
		source Source
		want   float64
	}{
		{SourceClose, 15},
		{SourceOpen, 10},
		{SourceHigh, 20},
		{SourceLow, 5},
		{SourceVolume, 1000},
		{SourceHL2, 12.5},
		{SourceTP, 40.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.source.Of(c), 1e-12)
		})
	}
}

func TestParseSource(t *testing.T) {
	for _, name := range []string{"close", "open", "high", "low", "volume", "hl2", "tp"} {
		s, err := ParseSource(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := ParseSource("median")
	assert.Error(t, err)
}
