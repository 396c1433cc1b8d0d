package app

import "wheel.klederson.com/internal/wheel"

// SpinHistory is a circular buffer of accepted spins.
type SpinHistory struct {
	buf   []wheel.Spin
	pos   int
	count int
	total int
}

// NewSpinHistory creates a new circular buffer with the given capacity.
func NewSpinHistory(capacity int) *SpinHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &SpinHistory{
		buf: make([]wheel.Spin, capacity),
	}
}

// Push adds a spin to the ring buffer.
func (h *SpinHistory) Push(s wheel.Spin) {
	h.buf[h.pos] = s
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
	h.total++
}

// Values returns all stored spins in chronological order.
func (h *SpinHistory) Values() []wheel.Spin {
	if h.count == 0 {
		return nil
	}
	result := make([]wheel.Spin, h.count)
	if h.count < len(h.buf) {
		copy(result, h.buf[:h.count])
	} else {
		n := copy(result, h.buf[h.pos:])
		copy(result[n:], h.buf[:h.pos])
	}
	return result
}

// Newest returns the stored spins, most recent first.
func (h *SpinHistory) Newest() []wheel.Spin {
	values := h.Values()
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// Deltas returns the rotation of each stored spin in chronological order.
func (h *SpinHistory) Deltas() []float64 {
	values := h.Values()
	deltas := make([]float64, len(values))
	for i, s := range values {
		deltas[i] = s.Delta
	}
	return deltas
}

// Last returns the most recent spin.
func (h *SpinHistory) Last() (wheel.Spin, bool) {
	if h.count == 0 {
		return wheel.Spin{}, false
	}
	idx := (h.pos - 1 + len(h.buf)) % len(h.buf)
	return h.buf[idx], true
}

// Len returns the number of stored spins.
func (h *SpinHistory) Len() int {
	return h.count
}

// Total returns the number of spins ever pushed.
func (h *SpinHistory) Total() int {
	return h.total
}
