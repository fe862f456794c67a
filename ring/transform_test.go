// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// transform_test.go — Filter/Apply/Sort/WithValues rebuild tests.
package ring_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/ringkit/api"
	"github.com/momentics/ringkit/ring"
)

// slotValues flattens the ToSlice projection; nil stays nil.
func slotValues[T any](b *ring.Buffer[T]) []*T {
	return b.ToSlice()
}

func TestFilterCompactsMatches(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(10))
	require.NoError(t, b.PushAll(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))

	b.Filter(func(v int) bool { return v%2 == 0 })

	assert.Equal(t, 5, b.Count())
	view := slotValues(b)
	want := []int{2, 4, 6, 8, 10}
	for i, w := range want {
		require.NotNil(t, view[i], "slot %d should be occupied", i)
		assert.Equal(t, w, *view[i])
	}
	for i := len(want); i < b.Cap(); i++ {
		assert.Nil(t, view[i], "slot %d should be empty", i)
	}
}

func TestFilterNilIsNoop(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(5))
	require.NoError(t, b.PushAll(1, 2, 3))
	b.Filter(nil)
	assert.Equal(t, 3, b.Count())
	v, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestApplyPreservesCount(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(10))
	require.NoError(t, b.PushAll(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))

	b.Apply(func(v int) int { return v * v })

	assert.Equal(t, 10, b.Count())
	view := slotValues(b)
	for i := 0; i < 10; i++ {
		require.NotNil(t, view[i])
		assert.Equal(t, (i+1)*(i+1), *view[i])
	}
}

func TestApplyNilIsNoop(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(5))
	require.NoError(t, b.PushAll(1, 2))
	b.Apply(nil)
	assert.Equal(t, 2, b.Count())
}

func TestSortAscendingDefault(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(10))
	require.NoError(t, b.PushAll(5, 8, 2, 7, 3, 6, 9, 1, 4, 10))

	ring.Sort(b)

	view := slotValues(b)
	for i := 0; i < 10; i++ {
		require.NotNil(t, view[i])
		assert.Equal(t, i+1, *view[i])
	}
	assert.Equal(t, 10, b.Count())
}

func TestSortFuncMatchesPlainSort(t *testing.T) {
	data := []int{5, 8, 2, 7, 3, 6, 9, 1, 4, 10}
	desc := func(a, b int) int { return b - a }

	b := mustNew[int](t, ring.WithCapacity(10))
	require.NoError(t, b.PushAll(data...))
	b.SortFunc(desc)

	want := slices.Clone(data)
	slices.SortFunc(want, desc)

	view := slotValues(b)
	for i, w := range want {
		require.NotNil(t, view[i])
		assert.Equal(t, w, *view[i])
	}
}

func TestSortFuncNilIsNoop(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(5))
	require.NoError(t, b.PushAll(3, 1, 2))
	b.SortFunc(nil)
	v, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestWithValuesPopOrder(t *testing.T) {
	base := mustNew[string](t, ring.WithCapacity(2))
	b, err := base.WithValues([]string{"a", "b"})
	require.NoError(t, err)

	v, err := b.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	v, err = b.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestWithValuesClonesConfigNotContents(t *testing.T) {
	base := mustNew[int](t, ring.WithCapacity(4), ring.WithOverwrite())
	require.NoError(t, base.PushAll(7, 8))

	b, err := base.WithValues([]int{1})
	require.NoError(t, err)

	assert.Equal(t, base.Cap(), b.Cap())
	assert.True(t, b.AllowsOverwrite())
	assert.Equal(t, 1, b.Count())
	assert.False(t, b.Contains(7, func(a, b int) bool { return a == b }))
	// The source buffer is untouched.
	assert.Equal(t, 2, base.Count())
}

func TestWithValuesOverflow(t *testing.T) {
	base := mustNew[int](t, ring.WithCapacity(2))
	b, err := base.WithValues([]int{1, 2, 3})
	assert.ErrorIs(t, err, api.ErrOverflow)
	// The values pushed before the failure stand.
	require.NotNil(t, b)
	v, atErr := b.At(0)
	require.NoError(t, atErr)
	assert.Equal(t, 1, v)
}

func TestWithValuesOverwriteWraps(t *testing.T) {
	base := mustNew[int](t, ring.WithCapacity(2), ring.WithOverwrite())
	b, err := base.WithValues([]int{1, 2, 3})
	require.NoError(t, err)

	v, err := b.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = b.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestPushAllFailFast(t *testing.T) {
	b := mustNew[int](t, ring.WithCapacity(2))
	err := b.PushAll(1, 2, 3)
	assert.ErrorIs(t, err, api.ErrOverflow)
	v, atErr := b.At(0)
	require.NoError(t, atErr)
	assert.Equal(t, 1, v)
	v, atErr = b.At(1)
	require.NoError(t, atErr)
	assert.Equal(t, 2, v)
}
