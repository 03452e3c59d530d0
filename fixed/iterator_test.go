// SPDX-License-Identifier: MIT

package fixed_test

import (
	"testing"

	"github.com/katalvlaran/lvlarray/fixed"
	"github.com/stretchr/testify/require"
)

// TestBeginEndTraversal walks the cursor from Begin to End.
func TestBeginEndTraversal(t *testing.T) {
	a := mustOf[int, [4]int](t, 1, 2, 3, 4)

	var got []int
	for it := a.Begin(); !it.Equal(a.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)
	require.Equal(t, a.Size(), a.Begin().Distance(a.End()))
}

// TestBeginEndRestartable ensures repeated calls yield equivalent cursors.
func TestBeginEndRestartable(t *testing.T) {
	var a ints3
	require.True(t, a.Begin().Equal(a.Begin()))
	require.True(t, a.End().Equal(a.End()))
	require.True(t, a.Begin().Less(a.End()))
}

// TestEmptyBeginIsEnd checks that N == 0 yields an empty range.
func TestEmptyBeginIsEnd(t *testing.T) {
	var a ints0
	require.True(t, a.Begin().Equal(a.End()))
	require.Zero(t, a.Begin().Distance(a.End()))
}

// TestIteratorRandomAccess covers Advance, Prev and writes through Ref.
func TestIteratorRandomAccess(t *testing.T) {
	a := mustOf[int, [5]int](t, 0, 1, 2, 3, 4)

	it := a.Begin().Advance(3)
	require.Equal(t, 3, it.Index())
	require.Equal(t, 3, it.Value())

	last := a.End().Prev()
	require.Equal(t, 4, last.Value())
	require.Equal(t, -1, last.Distance(it))

	*it.Ref() = 30
	require.Equal(t, 30, a.Get(3))

	require.Panics(t, func() { _ = a.End().Value() }) // End is not dereferenceable
}

// TestIteratorsOfDifferentArraysDiffer ensures every cursor relation checks the owner.
func TestIteratorsOfDifferentArraysDiffer(t *testing.T) {
	var a, b ints3
	require.False(t, a.Begin().Equal(b.Begin()))

	// Same positions would order and measure fine within one array.
	require.True(t, a.Begin().Less(a.End()))
	require.False(t, a.Begin().Less(b.End()))
	require.False(t, b.End().Less(a.Begin()))

	require.PanicsWithValue(t, fixed.PanicForeignIterator_TestOnly, func() {
		_ = a.Begin().Distance(b.End())
	})
}

// TestRangeSequences covers All, Values and Backward including early stop.
func TestRangeSequences(t *testing.T) {
	a := mustOf[string, [3]string](t, "a", "b", "c")

	var idx []int
	var vals []string
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []string{"a", "b", "c"}, vals)

	require.Equal(t, []string{"a", "b", "c"}, collect(&a))

	var back []string
	for _, v := range a.Backward() {
		back = append(back, v)
	}
	require.Equal(t, []string{"c", "b", "a"}, back)

	var first []string
	for v := range a.Values() {
		first = append(first, v)
		break
	}
	require.Equal(t, []string{"a"}, first)

	var e ints0
	require.Empty(t, collect(&e))
}
