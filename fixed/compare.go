// SPDX-License-Identifier: MIT

// Package fixed - comparisons.
//
// Equal and Less are the two primitives; every other relation is derived
// from them:
//
//	NotEqual(x, y)     = !Equal(x, y)
//	Greater(x, y)      = Less(y, x)
//	LessEqual(x, y)    = !Less(y, x)
//	GreaterEqual(x, y) = !Less(x, y)
//
// x and y have the same type, so they always hold the same number of
// elements; there is no prefix case. All functions require non-nil arrays.

package fixed

import "cmp"

// Equal reports whether x[i] == y[i] for every i, scanning in index order
// and stopping at the first mismatch.
// Complexity: O(N).
func Equal[T comparable, A any](x, y *Array[T, A]) bool {
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality, for element
// types that are not comparable.
// Complexity: O(N).
func EqualFunc[T, A any](x, y *Array[T, A], eq func(a, b T) bool) bool {
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		if !eq(xs[i], ys[i]) {
			return false
		}
	}

	return true
}

// Less reports whether x orders before y lexicographically.
//
// Implementation:
//   - Stage 1: scan pairs in index order.
//   - Stage 2: at the first i where x[i] < y[i] or y[i] < x[i], that decides.
//   - Stage 3: no deciding index means the arrays are equivalent: false.
//
// Behavior highlights:
//   - Uses only the element < operator. Pairs where neither side is less
//     (including NaN against anything) count as equivalent and the scan
//     continues.
//
// Complexity:
//   - Time O(N), Space O(1).
func Less[T cmp.Ordered, A any](x, y *Array[T, A]) bool {
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		if xs[i] < ys[i] {
			return true
		}
		if ys[i] < xs[i] {
			return false
		}
	}

	return false
}

// LessFunc is Less with a caller-supplied strict weak order on elements.
// Complexity: O(N).
func LessFunc[T, A any](x, y *Array[T, A], less func(a, b T) bool) bool {
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		if less(xs[i], ys[i]) {
			return true
		}
		if less(ys[i], xs[i]) {
			return false
		}
	}

	return false
}

// Compare returns -1 when x orders before y, +1 when after, and 0 when
// neither is less. It agrees with Less on every input.
// Complexity: O(N).
func Compare[T cmp.Ordered, A any](x, y *Array[T, A]) int {
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		if xs[i] < ys[i] {
			return -1
		}
		if ys[i] < xs[i] {
			return +1
		}
	}

	return 0
}

// NotEqual is !Equal(x, y).
func NotEqual[T comparable, A any](x, y *Array[T, A]) bool { return !Equal(x, y) }

// Greater is Less(y, x).
func Greater[T cmp.Ordered, A any](x, y *Array[T, A]) bool { return Less(y, x) }

// LessEqual is !Less(y, x).
func LessEqual[T cmp.Ordered, A any](x, y *Array[T, A]) bool { return !Less(y, x) }

// GreaterEqual is !Less(x, y).
func GreaterEqual[T cmp.Ordered, A any](x, y *Array[T, A]) bool { return !Less(x, y) }
