// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity FIFO ring buffer contracts.

package api

// Ring is the minimal FIFO ring buffer contract.
type Ring[T any] interface {
	// Push appends a value; returns ErrOverflow if the target slot is
	// occupied and overwriting is disabled.
	Push(value T) error
	// Pop removes and returns the value at the read position;
	// returns ErrUnderflow if there is nothing to pop.
	Pop() (T, error)
	// Count returns the current number of occupied slots.
	Count() int
	// Cap returns the fixed slot capacity.
	Cap() int
}

// Indexed exposes raw slot access, independent of the FIFO window.
// All methods bounds-check the index against [0, Cap).
type Indexed[T any] interface {
	// At reads a slot. An empty in-range slot yields the zero value.
	At(index int) (T, error)
	// SetAt writes a slot unconditionally, bypassing the overflow check.
	SetAt(index int, value T) error
	// Has reports whether the slot is in range and occupied.
	Has(index int) bool
	// RemoveAt clears a slot without adjusting the FIFO cursors.
	// Clearing a slot inside the live window desynchronizes Count;
	// that is the caller's responsibility.
	RemoveAt(index int) error
}

// Transformer rebuilds the buffer in place from its current contents.
type Transformer[T any] interface {
	// Filter keeps values satisfying the predicate; nil is a no-op.
	Filter(pred func(T) bool)
	// Apply replaces every value with fn(value); nil is a no-op.
	Apply(fn func(T) T)
	// SortFunc reorders values by a three-way comparator; nil is a no-op.
	SortFunc(cmp func(a, b T) int)
}

// Snapshotter produces the durable representation of a buffer.
type Snapshotter interface {
	// Serialize encodes cursors, configuration and all slots.
	// Re-serializing a restored buffer yields byte-identical output.
	Serialize() ([]byte, error)
}

// Projector exposes the read-only projections consumed by external
// collaborators. Both views cover the full backing array, gaps included.
type Projector[T any] interface {
	// ToSlice returns one entry per physical slot; nil marks a gap.
	ToSlice() []*T
	// ToJSON renders the ToSlice view as JSON, gaps as null.
	ToJSON() ([]byte, error)
}
