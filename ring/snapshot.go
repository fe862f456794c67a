// File: ring/snapshot.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Durable snapshot encoding. The record captures every scalar field and
// the occupied slots as a sparse index/value list; the field layout is
// fixed and the slot list is index-ascending, so serializing a restored
// buffer reproduces the original bytes exactly.

package ring

import (
	"encoding/json"

	"github.com/momentics/ringkit/api"
)

type snapshot[T any] struct {
	Start          int             `json:"start"`
	End            int             `json:"end"`
	Cursor         int             `json:"cursor"`
	Capacity       int             `json:"capacity"`
	AllowOverwrite bool            `json:"allowOverwrite"`
	Slots          []slotRecord[T] `json:"slots"`
}

type slotRecord[T any] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Serialize encodes the buffer as a deterministic JSON record.
func (b *Buffer[T]) Serialize() ([]byte, error) {
	snap := snapshot[T]{
		Start:          b.start,
		End:            b.end,
		Cursor:         b.cursor,
		Capacity:       b.capacity,
		AllowOverwrite: b.allowOverwrite,
		Slots:          make([]slotRecord[T], 0, b.Count()),
	}
	for i := range b.slots {
		if b.slots[i].occupied {
			snap.Slots = append(snap.Slots, slotRecord[T]{Index: i, Value: b.slots[i].val})
		}
	}
	return json.Marshal(snap)
}

// Restore decodes a snapshot produced by Serialize. The scalar fields
// come back verbatim after a range check against the restored capacity;
// storage is reinitialized at the restored capacity
// and only slot records with an index inside [0, capacity) are
// repopulated — out-of-range indices are dropped silently so snapshots
// taken at a larger capacity still load.
func Restore[T any](data []byte) (*Buffer[T], error) {
	var snap snapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, api.NewError(api.ErrCodeInternal, "malformed snapshot").
			WithContext("cause", err.Error())
	}
	if snap.Capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity, "snapshot capacity must be at least 1").
			WithContext("capacity", snap.Capacity)
	}
	// Cursor bounds a buffer can actually reach: end wraps inside
	// [0, capacity] (a failed push can park it at capacity), the
	// iteration cursor stays below capacity, and start can walk one
	// past the last slot plus one on a full drain. Anything else is a
	// corrupt or hand-edited snapshot and would index out of range.
	if snap.Start < 0 || snap.Start > snap.Capacity+1 {
		return nil, api.NewError(api.ErrCodeInternal, "snapshot start cursor out of range").
			WithContext("start", snap.Start).
			WithContext("capacity", snap.Capacity)
	}
	if snap.End < 0 || snap.End > snap.Capacity {
		return nil, api.NewError(api.ErrCodeInternal, "snapshot end cursor out of range").
			WithContext("end", snap.End).
			WithContext("capacity", snap.Capacity)
	}
	if snap.Cursor < 0 || snap.Cursor > snap.Capacity {
		return nil, api.NewError(api.ErrCodeInternal, "snapshot iteration cursor out of range").
			WithContext("cursor", snap.Cursor).
			WithContext("capacity", snap.Capacity)
	}
	b := &Buffer[T]{
		slots:          make([]slot[T], snap.Capacity),
		capacity:       snap.Capacity,
		start:          snap.Start,
		end:            snap.End,
		cursor:         snap.Cursor,
		allowOverwrite: snap.AllowOverwrite,
	}
	for _, rec := range snap.Slots {
		if rec.Index < 0 || rec.Index >= snap.Capacity {
			continue
		}
		b.slots[rec.Index] = slot[T]{val: rec.Value, occupied: true}
	}
	return b, nil
}
