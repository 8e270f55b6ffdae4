// Package settest checks that a set implementation honours the set.Set
// contract. The same checks run against every implementation in this module.
package settest

import (
	"testing"

	"github.com/adapap/hashset/set"
	"github.com/adapap/hashset/slicehelpers"
	"github.com/stretchr/testify/require"
)

// Check builds a set from 0..9, removes every element, adds them all back and
// removes them again, asserting membership around each step.
func Check(t testing.TB, cons set.Constructor[int]) {
	t.Helper()

	x := make([]int, 10)
	for i := range x {
		x[i] = i
	}
	s := cons(x)
	require.False(t, s.IsEmpty(), "set built from %v is empty", x)

	for _, a := range x {
		require.True(t, s.Contains(a), "missing %d", a)
		require.NoError(t, s.Remove(a))
		require.False(t, s.Contains(a), "%d still present after Remove", a)
	}
	require.True(t, s.IsEmpty(), "set not empty after removing every element")

	for _, a := range x {
		s.Add(a)
	}
	require.True(t, slicehelpers.All(x, s.Contains), "not every element re-added")
	for _, a := range x {
		require.True(t, s.Contains(a), "missing %d", a)
		require.NoError(t, s.Remove(a))
		require.False(t, s.Contains(a), "%d still present after Remove", a)
	}
	require.True(t, s.IsEmpty())
}

// CheckDuplicates builds a set from a slice with repeated values and asserts
// the duplicates collapsed.
func CheckDuplicates(t testing.TB, cons set.Constructor[int]) {
	t.Helper()

	s := cons([]int{1, 2, 2, 3, 1})
	for _, v := range []int{1, 2, 3} {
		require.True(t, s.Contains(v), "missing %d", v)
	}
	require.False(t, s.Contains(0))
	require.False(t, s.Contains(4))

	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Remove(v))
	}
	require.True(t, s.IsEmpty(), "more than three distinct elements stored")
}

// CheckRemoveAbsent asserts Remove of a missing element reports
// set.ErrNotFound and leaves the set as it was.
func CheckRemoveAbsent(t testing.TB, cons set.Constructor[int]) {
	t.Helper()

	s := cons([]int{1, 2, 3})
	require.ErrorIs(t, s.Remove(42), set.ErrNotFound)
	require.True(t, slicehelpers.All([]int{1, 2, 3}, s.Contains))
	require.False(t, slicehelpers.Any([]int{0, 4, 42}, s.Contains))

	require.NoError(t, s.Remove(2))
	require.ErrorIs(t, s.Remove(2), set.ErrNotFound, "double remove")

	e := cons(nil)
	require.True(t, e.IsEmpty())
	require.ErrorIs(t, e.Remove(0), set.ErrNotFound)
	require.True(t, e.IsEmpty())
}

// CheckAll runs every check above.
func CheckAll(t *testing.T, cons set.Constructor[int]) {
	t.Run("scenario", func(t *testing.T) { Check(t, cons) })
	t.Run("duplicates", func(t *testing.T) { CheckDuplicates(t, cons) })
	t.Run("remove absent", func(t *testing.T) { CheckRemoveAbsent(t, cons) })
}
