package candle

import (
	"math"
	"math/rand"
	"time"
)

// Random generates n deterministic pseudo-random candles for a given
// seed. The walk is built from sine drift plus uniform noise so the
// series has realistic swings; identical (seed, n) always produces
// the identical sequence, which tests rely on.
func Random(seed int64, n int) []Candle {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Candle, 0, n)

	ts := time.Unix(1_600_000_000, 0).UTC()
	price := 100.0
	for i := 0; i < n; i++ {
		drift := 2 * math.Sin(float64(i)/7)
		open := price
		close := open + drift + (rng.Float64()-0.5)*3
		if close <= 1 {
			close = 1
		}
		high := math.Max(open, close) + rng.Float64()*1.5
		low := math.Min(open, close) - rng.Float64()*1.5
		if low <= 0.5 {
			low = 0.5
		}
		out = append(out, Candle{
			Timestamp: ts.Add(time.Duration(i) * time.Minute),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    100 + rng.Float64()*900,
		})
		price = close
	}
	return out
}

// RandomCloses is a shortcut returning only the close prices.
func RandomCloses(seed int64, n int) []float64 {
	candles := Random(seed, n)
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}
