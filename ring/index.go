// File: ring/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw slot access. These operations address physical slots and ignore
// the start/end window entirely; they exist for callers that treat the
// buffer as a fixed-size sparse array.

package ring

import "github.com/momentics/ringkit/api"

func (b *Buffer[T]) boundsCheck(index int) error {
	if index < 0 || index >= b.capacity {
		return api.NewError(api.ErrCodeIndexOutOfRange, "slot index out of range").
			WithContext("index", index).
			WithContext("capacity", b.capacity)
	}
	return nil
}

// At reads the slot at index. An empty in-range slot yields the zero
// value; use Has to distinguish it from a stored zero.
func (b *Buffer[T]) At(index int) (T, error) {
	var zero T
	if err := b.boundsCheck(index); err != nil {
		return zero, err
	}
	return b.slots[index].val, nil
}

// SetAt writes the slot at index unconditionally, bypassing the
// overflow check and leaving the cursors alone. The index-less variant
// of this operation is Push.
func (b *Buffer[T]) SetAt(index int, value T) error {
	if err := b.boundsCheck(index); err != nil {
		return err
	}
	b.slots[index] = slot[T]{val: value, occupied: true}
	return nil
}

// Has reports whether the slot at index is in range and occupied.
func (b *Buffer[T]) Has(index int) bool {
	return index >= 0 && index < b.capacity && b.slots[index].occupied
}

// RemoveAt clears the slot at index without adjusting start or end.
// Clearing a slot inside the live window makes Count disagree with the
// actual occupancy; callers own that trade-off.
func (b *Buffer[T]) RemoveAt(index int) error {
	if err := b.boundsCheck(index); err != nil {
		return err
	}
	b.slots[index] = slot[T]{}
	return nil
}
