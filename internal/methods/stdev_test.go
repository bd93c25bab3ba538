package methods

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirphl/tastream/internal/candle"
)

func TestStDevMatchesNaiveDeviation(t *testing.T) {
	src := candle.RandomCloses(31, 200)

	for _, period := range []int{1, 2, 5, 14, 50} {
		stdev, err := NewStDev(period, src[0])
		require.NoError(t, err)

		for i, v := range src {
			got := stdev.Next(v)

			window := paddedWindow(src, i, period)
			mean := 0.0
			for _, x := range window {
				mean += x
			}
			mean /= float64(period)
			variance := 0.0
			for _, x := range window {
				variance += (x - mean) * (x - mean)
			}
			variance /= float64(period)

			assert.InDelta(t, math.Sqrt(variance), got, 1e-6, "period %d index %d", period, i)
		}
	}
}

func TestStDevConstantInputIsZero(t *testing.T) {
	stdev, err := NewStDev(10, 42.5)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		got := stdev.Next(42.5)
		assert.Equal(t, 0.0, got, "tick %d", i)
		assert.False(t, math.IsNaN(got))
	}
}

func TestStDevNeverNegativeOrNaN(t *testing.T) {
	// Near-constant large values provoke float cancellation in the
	// sum-of-squares; the clamp must keep the output a real number.
	stdev, err := NewStDev(7, 1e8)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got := stdev.Next(1e8 + float64(i%2)*1e-3)
		assert.False(t, math.IsNaN(got), "tick %d", i)
		assert.GreaterOrEqual(t, got, 0.0, "tick %d", i)
	}
}
