package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirphl/tastream/internal/candle"
	"github.com/amirphl/tastream/internal/core"
)

func TestCrossAbove(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		bases  []float64
		want   []core.Action
	}{
		{
			name:   "single upward crossing",
			values: []float64{1, 2, 3, 4},
			bases:  []float64{2.5, 2.5, 2.5, 2.5},
			want:   []core.Action{core.None, core.None, core.Buy, core.None},
		},
		{
			name:   "first tick never fires even when already above",
			values: []float64{5, 6, 7},
			bases:  []float64{1, 1, 1},
			want:   []core.Action{core.None, core.None, core.None},
		},
		{
			name:   "equality is not above",
			values: []float64{1, 2, 2, 2},
			bases:  []float64{2, 2, 2, 2},
			want:   []core.Action{core.None, core.None, core.None, core.None},
		},
		{
			name:   "departing from the boundary fires",
			values: []float64{2, 3},
			bases:  []float64{2, 2},
			want:   []core.Action{core.None, core.Buy},
		},
		{
			name:   "repeated oscillation fires each time",
			values: []float64{1, 3, 1, 3, 1, 3},
			bases:  []float64{2, 2, 2, 2, 2, 2},
			want:   []core.Action{core.None, core.Buy, core.None, core.Buy, core.None, core.Buy},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cross CrossAbove
			for i := range tt.values {
				got := cross.Next(tt.values[i], tt.bases[i])
				assert.Equal(t, tt.want[i], got, "index %d", i)
			}
		})
	}
}

func TestCrossUnder(t *testing.T) {
	var cross CrossUnder
	values := []float64{4, 3, 2, 1, 1, 2, 1}
	bases := []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5}
	want := []core.Action{core.None, core.None, core.Buy, core.None, core.None, core.None, core.Buy}

	for i := range values {
		assert.Equal(t, want[i], cross.Next(values[i], bases[i]), "index %d", i)
	}
}

// TestCrossingDeterminism checks the exact index formula against the
// implementation on random paired streams: cross-above is nonzero at
// precisely the indices i > 0 with a[i-1] <= b[i-1] and a[i] > b[i],
// symmetric for cross-under.
func TestCrossingDeterminism(t *testing.T) {
	a := candle.RandomCloses(5, 300)
	b := candle.RandomCloses(6, 300)

	var above CrossAbove
	var under CrossUnder
	var both Cross

	for i := range a {
		gotAbove := above.Next(a[i], b[i])
		gotUnder := under.Next(a[i], b[i])
		gotBoth := both.Next(a[i], b[i])

		wantAbove := core.None
		wantUnder := core.None
		if i > 0 {
			if a[i-1] <= b[i-1] && a[i] > b[i] {
				wantAbove = core.Buy
			}
			if a[i-1] >= b[i-1] && a[i] < b[i] {
				wantUnder = core.Buy
			}
		}

		assert.Equal(t, wantAbove, gotAbove, "index %d", i)
		assert.Equal(t, wantUnder, gotUnder, "index %d", i)
		assert.Equal(t, wantAbove-wantUnder, gotBoth, "index %d", i)
	}
}

func TestCrossDirections(t *testing.T) {
	var cross Cross
	values := []float64{1, 3, 1}
	base := 2.0

	assert.Equal(t, core.None, cross.Next(values[0], base))
	assert.Equal(t, core.Buy, cross.Next(values[1], base))
	assert.Equal(t, core.Sell, cross.Next(values[2], base))
}
