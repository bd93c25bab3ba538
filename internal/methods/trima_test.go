package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirphl/tastream/internal/candle"
	"github.com/amirphl/tastream/internal/core"
)

func TestTRIMASequence(t *testing.T) {
	trima, err := NewTRIMA(4, 1.0)
	require.NoError(t, err)

	trima.Next(1.0)
	trima.Next(1.0)
	trima.Next(2.0)
	assert.InDelta(t, 1.25, trima.Next(3.0), sigma)
	assert.InDelta(t, 1.625, trima.Next(4.0), sigma)
}

func TestTRIMACompositionLaw(t *testing.T) {
	// A cascade over a sequence equals applying the stages' Over calls
	// one after the other.
	src := candle.RandomCloses(23, 150)

	for _, period := range []int{1, 2, 4, 9} {
		trima, err := NewTRIMA(period, src[0])
		require.NoError(t, err)
		cascaded := core.Over[float64, float64](trima, src)

		first, err := NewSMA(period, src[0])
		require.NoError(t, err)
		intermediate := core.Over[float64, float64](first, src)

		second, err := NewSMA(period, intermediate[0])
		require.NoError(t, err)
		staged := core.Over[float64, float64](second, intermediate)

		require.Len(t, staged, len(cascaded))
		for i := range staged {
			assert.InDelta(t, staged[i], cascaded[i], sigma, "period %d index %d", period, i)
		}
	}
}
