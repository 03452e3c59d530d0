// SPDX-License-Identifier: MIT
// Package fixed_test contains test helpers
//
// Purpose:
//   • Name the array shapes used across tests once.
//   • Build populated arrays without repeating error plumbing.

package fixed_test

import (
	"testing"

	"github.com/katalvlaran/lvlarray/fixed"
	"github.com/stretchr/testify/require"
)

type (
	ints0   = fixed.Array[int, [0]int]
	ints1   = fixed.Array[int, [1]int]
	ints3   = fixed.Array[int, [3]int]
	ints5   = fixed.Array[int, [5]int]
	int64s3 = fixed.Array[int64, [3]int64]
	f64s3   = fixed.Array[float64, [3]float64]
	strs3   = fixed.Array[string, [3]string]
)

// point is a comparable struct element.
type point struct{ X, Y int }

// mustOf builds an Array from values or fails the test.
func mustOf[T, A any](t testing.TB, values ...T) fixed.Array[T, A] {
	t.Helper()
	a, err := fixed.Of[T, A](values...)
	require.NoError(t, err)

	return a
}

// collect drains an array through its Values sequence.
func collect[T, A any](a *fixed.Array[T, A]) []T {
	var out []T
	for v := range a.Values() {
		out = append(out, v)
	}

	return out
}
