// File: ring/iterate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Restartable iteration over occupied slots. The iteration cursor is
// part of the buffer state (it survives serialization) and is fully
// independent of the push/pop cursors: walking the buffer consumes
// nothing.

package ring

// Rewind moves the iteration cursor back to the start cursor.
// The cursor is normalized into [0, capacity) since start may sit past
// the last slot after a full drain.
func (b *Buffer[T]) Rewind() {
	b.cursor = b.start % b.capacity
}

// Next yields the next occupied slot in slot order, advancing the
// cursor modulo capacity, and stops once the cursor reaches the end
// cursor. Empty slots between the cursors are skipped. The second
// return is false when the walk is exhausted.
func (b *Buffer[T]) Next() (T, bool) {
	var zero T
	if b.cursor >= b.capacity {
		// A restored snapshot may carry a cursor parked past the last
		// slot; fold it back before walking.
		b.cursor %= b.capacity
	}
	stop := b.end % b.capacity
	for steps := 0; steps <= b.capacity; steps++ {
		if b.cursor == stop {
			return zero, false
		}
		idx := b.cursor
		b.cursor = (b.cursor + 1) % b.capacity
		if b.slots[idx].occupied {
			return b.slots[idx].val, true
		}
	}
	return zero, false
}

// Each rewinds and walks the whole sequence, calling fn per value.
func (b *Buffer[T]) Each(fn func(T)) {
	if fn == nil {
		return
	}
	b.Rewind()
	for v, ok := b.Next(); ok; v, ok = b.Next() {
		fn(v)
	}
}
