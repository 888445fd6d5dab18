package history

import "errors"

// Window is a fixed-capacity FIFO of past prices, oldest first.
// Appending at capacity evicts the oldest entry. Not safe for concurrent use.
type Window struct {
	capacity int
	prices   []int
}

// New creates an empty window. capacity must be positive.
func New(capacity int) (*Window, error) {
	if capacity <= 0 {
		return nil, errors.New("window capacity must be positive")
	}
	return &Window{
		capacity: capacity,
		prices:   make([]int, 0, capacity),
	}, nil
}

// Append adds a price at the newest end, evicting the oldest entry when full.
func (w *Window) Append(price int) {
	if len(w.prices) == w.capacity {
		copy(w.prices, w.prices[1:])
		w.prices = w.prices[:w.capacity-1]
	}
	w.prices = append(w.prices, price)
}

// Clear removes all entries; capacity is unchanged.
func (w *Window) Clear() {
	w.prices = w.prices[:0]
}

// Len returns the current number of entries.
func (w *Window) Len() int { return len(w.prices) }

// Cap returns the fixed capacity.
func (w *Window) Cap() int { return w.capacity }

// Snapshot returns an independent copy of the entries, oldest first.
func (w *Window) Snapshot() []int {
	out := make([]int, len(w.prices))
	copy(out, w.prices)
	return out
}

// Mean returns the arithmetic mean of the entries.
func (w *Window) Mean() (float64, error) {
	if len(w.prices) == 0 {
		return 0, errors.New("not enough data for mean calculation")
	}
	sum := 0
	for _, p := range w.prices {
		sum += p
	}
	return float64(sum) / float64(len(w.prices)), nil
}

// Min returns the smallest entry.
func (w *Window) Min() (int, error) {
	if len(w.prices) == 0 {
		return 0, errors.New("no entries in window")
	}
	min := w.prices[0]
	for _, p := range w.prices[1:] {
		if p < min {
			min = p
		}
	}
	return min, nil
}

// Max returns the largest entry.
func (w *Window) Max() (int, error) {
	if len(w.prices) == 0 {
		return 0, errors.New("no entries in window")
	}
	max := w.prices[0]
	for _, p := range w.prices[1:] {
		if p > max {
			max = p
		}
	}
	return max, nil
}
