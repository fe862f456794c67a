// File: ring/buffer.go
// Package ring implements the fixed-capacity FIFO buffer core.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a circular container over a fixed backing array. The cursor
// convention is asymmetric: end wraps modulo capacity and bumps start to
// at least 1 on wrap, while start only grows (pop never wraps it). The
// occupancy formula in Count depends on both conventions; do not change
// one without the other.

package ring

import (
	"github.com/momentics/ringkit/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]        = (*Buffer[any])(nil)
	_ api.Indexed[any]     = (*Buffer[any])(nil)
	_ api.Transformer[any] = (*Buffer[any])(nil)
	_ api.Snapshotter      = (*Buffer[any])(nil)
	_ api.Projector[any]   = (*Buffer[any])(nil)
)

// slot is one backing-array cell: a value plus an occupancy mark.
type slot[T any] struct {
	val      T
	occupied bool
}

// Buffer is a fixed-capacity circular FIFO container.
type Buffer[T any] struct {
	slots          []slot[T]
	capacity       int
	start          int // one past the last popped slot; grows without wrapping
	end            int // next write slot; wraps modulo capacity
	cursor         int // iteration position, independent of start/end
	allowOverwrite bool
	stats          BufferStats
}

// New allocates an empty buffer. Capacity defaults to DefaultCapacity;
// a capacity below 1 is rejected with api.ErrInvalidCapacity.
func New[T any](opts ...Option) (*Buffer[T], error) {
	cfg := config{capacity: DefaultCapacity}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity, "capacity must be at least 1").
			WithContext("capacity", cfg.capacity)
	}
	return &Buffer[T]{
		slots:          make([]slot[T], cfg.capacity),
		capacity:       cfg.capacity,
		allowOverwrite: cfg.allowOverwrite,
	}, nil
}

// Push writes value at the end cursor and advances it.
// With overwriting disabled, pushing into an occupied slot fails with
// api.ErrOverflow; the slot keeps its old value and end stays one past
// the failed slot. When a successful write moves end to capacity, end
// wraps to 0 and start is bumped to at least 1 so Count can tell the
// now-full buffer from an empty one.
func (b *Buffer[T]) Push(value T) error {
	if err := b.push(value); err != nil {
		b.stats.Overflows++
		return err
	}
	b.stats.Pushes++
	return nil
}

// push is Push without stats accounting; transform rebuilds use it.
func (b *Buffer[T]) push(value T) error {
	idx := b.end
	if idx >= b.capacity {
		// A failed push on the last slot parks end at capacity; every
		// push stays an overflow until the cursors reset.
		return api.NewError(api.ErrCodeOverflow, "write cursor past last slot").
			WithContext("end", idx)
	}
	b.end++
	if b.slots[idx].occupied && !b.allowOverwrite {
		return api.NewError(api.ErrCodeOverflow, "buffer full").
			WithContext("slot", idx)
	}
	b.slots[idx] = slot[T]{val: value, occupied: true}
	if b.end == b.capacity {
		b.end = 0
		if b.start < 1 {
			b.start = 1
		}
	}
	return nil
}

// PushAll pushes every value in order. It fails fast on the first
// overflow; values pushed before the failure stay in the buffer.
func (b *Buffer[T]) PushAll(values ...T) error {
	for _, v := range values {
		if err := b.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes and returns the value at slot start-1.
// A negative or out-of-range read index, or an empty slot, fails with
// api.ErrUnderflow and leaves start untouched. On success the slot is
// cleared and start advances by one, without wrapping.
func (b *Buffer[T]) Pop() (T, error) {
	var zero T
	idx := b.start - 1
	if idx < 0 || idx >= b.capacity || !b.slots[idx].occupied {
		b.stats.Underflows++
		return zero, api.NewError(api.ErrCodeUnderflow, "buffer empty").
			WithContext("slot", idx)
	}
	v := b.slots[idx].val
	b.slots[idx] = slot[T]{}
	b.start++
	b.stats.Pops++
	return v, nil
}

// Count returns the occupancy derived from the cursors:
// end-start when end >= start, otherwise capacity-start+end+1.
// The +1 term relies on the wrap bump in push.
func (b *Buffer[T]) Count() int {
	if b.end >= b.start {
		return b.end - b.start
	}
	return b.capacity - b.start + b.end + 1
}

// Cap returns the fixed slot capacity.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// AllowsOverwrite reports whether Push replaces occupied slots.
func (b *Buffer[T]) AllowsOverwrite() bool {
	return b.allowOverwrite
}

// Free empties every slot and resets all three cursors. Capacity and
// the overwrite flag are kept.
func (b *Buffer[T]) Free() {
	b.reset()
}

// reset is the shared clear path for Free and transform rebuilds.
func (b *Buffer[T]) reset() {
	for i := range b.slots {
		b.slots[i] = slot[T]{}
	}
	b.start, b.end, b.cursor = 0, 0, 0
}

// Contains reports whether any occupied slot holds a value equal to v
// under eq. A nil equality function matches nothing.
func (b *Buffer[T]) Contains(v T, eq func(a, b T) bool) bool {
	if eq == nil {
		return false
	}
	for i := range b.slots {
		if b.slots[i].occupied && eq(b.slots[i].val, v) {
			return true
		}
	}
	return false
}
