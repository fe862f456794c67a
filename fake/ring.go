// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake ring implementation for testing consumers of api.Ring.

package fake

import (
	"github.com/momentics/ringkit/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a plain slice-backed FIFO implementing api.Ring. It has none
// of the real buffer's cursor quirks: pushes fail only when the slice
// is at capacity and pops work whenever it is non-empty, which is what
// consumer tests usually want from a stand-in.
type Ring[T any] struct {
	items    []T
	capacity int
	pushes   int
	pops     int
}

// NewRing creates a fake ring with the given capacity.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{capacity: capacity}
}

// Push appends a value; fails with api.ErrOverflow at capacity.
func (r *Ring[T]) Push(value T) error {
	if len(r.items) >= r.capacity {
		return api.NewError(api.ErrCodeOverflow, "fake ring full")
	}
	r.items = append(r.items, value)
	r.pushes++
	return nil
}

// Pop removes the oldest value; fails with api.ErrUnderflow when empty.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	if len(r.items) == 0 {
		return zero, api.NewError(api.ErrCodeUnderflow, "fake ring empty")
	}
	v := r.items[0]
	r.items = r.items[1:]
	r.pops++
	return v, nil
}

// Count returns the number of stored values.
func (r *Ring[T]) Count() int {
	return len(r.items)
}

// Cap returns the configured capacity.
func (r *Ring[T]) Cap() int {
	return r.capacity
}

// Ops reports how many pushes and pops succeeded.
func (r *Ring[T]) Ops() (pushes, pops int) {
	return r.pushes, r.pops
}
