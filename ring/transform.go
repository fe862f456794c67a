// File: ring/transform.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk transforms. All of them follow one pattern: collect the occupied
// values in physical slot order, reinitialize the backing array at the
// same capacity, and re-push the results from slot 0. Rebuilding goes
// through the regular push path so a transform that fills the buffer
// leaves the cursors in the same state as capacity direct pushes.

package ring

import (
	"cmp"
	"slices"
)

// values collects occupied slots in physical order, 0 to capacity-1.
func (b *Buffer[T]) values() []T {
	out := make([]T, 0, b.Count())
	for i := range b.slots {
		if b.slots[i].occupied {
			out = append(out, b.slots[i].val)
		}
	}
	return out
}

// rebuild clears the buffer and re-pushes vals in order.
// len(vals) never exceeds capacity here, so push cannot fail.
func (b *Buffer[T]) rebuild(vals []T) {
	b.reset()
	for _, v := range vals {
		_ = b.push(v)
	}
}

// Filter keeps only values satisfying pred and compacts them from
// slot 0. A nil predicate is a no-op.
func (b *Buffer[T]) Filter(pred func(T) bool) {
	if pred == nil {
		return
	}
	kept := make([]T, 0, b.Count())
	for i := range b.slots {
		if b.slots[i].occupied && pred(b.slots[i].val) {
			kept = append(kept, b.slots[i].val)
		}
	}
	b.rebuild(kept)
}

// Apply replaces every occupied value with fn(value) and rebuilds;
// occupancy is preserved. A nil function is a no-op.
func (b *Buffer[T]) Apply(fn func(T) T) {
	if fn == nil {
		return
	}
	vals := b.values()
	for i := range vals {
		vals[i] = fn(vals[i])
	}
	b.rebuild(vals)
}

// SortFunc reorders the occupied values by a three-way comparator
// (negative, zero, positive) and rebuilds from slot 0. A nil
// comparator is a no-op; for the natural ascending order over ordered
// element types use the package-level Sort.
func (b *Buffer[T]) SortFunc(compare func(a, b T) int) {
	if compare == nil {
		return
	}
	vals := b.values()
	slices.SortFunc(vals, compare)
	b.rebuild(vals)
}

// Sort reorders the occupied values of b into ascending order.
func Sort[T cmp.Ordered](b *Buffer[T]) {
	b.SortFunc(func(x, y T) int { return cmp.Compare(x, y) })
}

// WithValues builds a new buffer with the same capacity and overwrite
// flag, cursors reset, and pushes every value of vals in order. On
// overflow the values pushed so far stand and the partially filled
// buffer is returned together with the error.
func (b *Buffer[T]) WithValues(vals []T) (*Buffer[T], error) {
	nb := &Buffer[T]{
		slots:          make([]slot[T], b.capacity),
		capacity:       b.capacity,
		allowOverwrite: b.allowOverwrite,
	}
	for _, v := range vals {
		if err := nb.Push(v); err != nil {
			return nb, err
		}
	}
	return nb, nil
}
