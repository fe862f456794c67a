// File: ring/project.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "encoding/json"

// ToSlice returns the full backing array as one entry per physical
// slot, nil marking an empty slot. The returned pointers address
// copies; mutating them does not touch the buffer.
func (b *Buffer[T]) ToSlice() []*T {
	out := make([]*T, b.capacity)
	for i := range b.slots {
		if b.slots[i].occupied {
			v := b.slots[i].val
			out[i] = &v
		}
	}
	return out
}

// ToJSON renders the ToSlice view as a JSON array, gaps as null.
func (b *Buffer[T]) ToJSON() ([]byte, error) {
	return json.Marshal(b.ToSlice())
}
