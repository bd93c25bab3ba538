package methods

import "github.com/amirphl/tastream/internal/core"

// extremaState is the shared machinery of Highest and Lowest: a
// monotonic deque of (tick, value) entries. Entries older than the
// period expire off the front; entries dominated by a newer value are
// popped off the back before it is appended. Each input is appended
// and removed at most once, so Next is O(1) amortized.
type extremaState struct {
	entries []extremaEntry
	head    int
	period  int
	tick    int
	// dominates reports whether a newer value b makes a queued value a
	// irrelevant: >= for Highest, <= for Lowest.
	dominates func(b, a float64) bool
}

type extremaEntry struct {
	tick  int
	value float64
}

func newExtremaState(name string, period int, seed float64, dominates func(b, a float64) bool) (*extremaState, error) {
	if err := core.ValidatePeriod(name, period); err != nil {
		return nil, err
	}
	// Tick 0 stands for the whole seeded history.
	return &extremaState{
		entries:   []extremaEntry{{tick: 0, value: seed}},
		period:    period,
		dominates: dominates,
	}, nil
}

func (s *extremaState) next(value float64) float64 {
	s.tick++

	for s.head < len(s.entries) && s.entries[s.head].tick <= s.tick-s.period {
		s.head++
	}
	for len(s.entries) > s.head && s.dominates(value, s.entries[len(s.entries)-1].value) {
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, extremaEntry{tick: s.tick, value: value})

	// Compact once the dead prefix outgrows the live part.
	if s.head > len(s.entries)/2 && s.head > s.period {
		s.entries = append(s.entries[:0], s.entries[s.head:]...)
		s.head = 0
	}
	return s.entries[s.head].value
}

// Highest is the sliding-window maximum over the last `period` inputs.
type Highest struct {
	state *extremaState
}

// NewHighest creates a Highest of the given period seeded with value.
func NewHighest(period int, value float64) (*Highest, error) {
	s, err := newExtremaState("highest", period, value, func(b, a float64) bool { return b >= a })
	if err != nil {
		return nil, err
	}
	return &Highest{state: s}, nil
}

func (h *Highest) Next(value float64) float64 { return h.state.next(value) }

// Lowest is the sliding-window minimum over the last `period` inputs.
type Lowest struct {
	state *extremaState
}

// NewLowest creates a Lowest of the given period seeded with value.
func NewLowest(period int, value float64) (*Lowest, error) {
	s, err := newExtremaState("lowest", period, value, func(b, a float64) bool { return b <= a })
	if err != nil {
		return nil, err
	}
	return &Lowest{state: s}, nil
}

func (l *Lowest) Next(value float64) float64 { return l.state.next(value) }
