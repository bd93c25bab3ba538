// Package core
package core

import "fmt"

// Window is a fixed-capacity ring buffer that always holds exactly
// `capacity` values. Every Push inserts the newest value and returns
// the evicted oldest one, which is what lets sliding-window methods
// maintain running aggregates in O(1) instead of rescanning:
//
//	sum += value - window.Push(value)
type Window[T any] struct {
	buf []T
	idx int
}

// NewWindow creates a window of the given capacity with every slot
// seeded to `seed`, so the window is full from the start.
func NewWindow[T any](capacity int, seed T) (*Window[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("window: capacity must be at least 1, got %d", capacity)
	}
	buf := make([]T, capacity)
	for i := range buf {
		buf[i] = seed
	}
	return &Window[T]{buf: buf}, nil
}

// Push overwrites the oldest slot with v, advances the cursor and
// returns the value that was evicted.
func (w *Window[T]) Push(v T) T {
	evicted := w.buf[w.idx]
	w.buf[w.idx] = v
	w.idx = (w.idx + 1) % len(w.buf)
	return evicted
}

// Len returns the window capacity, which equals the number of held values.
func (w *Window[T]) Len() int { return len(w.buf) }

// Oldest returns the value the next Push would evict.
func (w *Window[T]) Oldest() T { return w.buf[w.idx] }

// Newest returns the most recently pushed value.
func (w *Window[T]) Newest() T {
	return w.buf[(w.idx+len(w.buf)-1)%len(w.buf)]
}

// Slice copies the window contents oldest-first. Introspection and
// tests only; per-tick method code never iterates the window.
func (w *Window[T]) Slice() []T {
	out := make([]T, len(w.buf))
	for i := range w.buf {
		out[i] = w.buf[(w.idx+i)%len(w.buf)]
	}
	return out
}
