// SPDX-License-Identifier: MIT
// Package: fixed
//
// Purpose:
//   - Single source of truth for the two checks every Array relies on:
//     the storage shape (A must be [N]T) and the index range [0, N).
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.
//   - storageLen is O(1) but does a reflect lookup; it guards construction
//     (FromArray, Of, Len). Hot paths use Array.length, which is pure
//     unsafe.Sizeof arithmetic.

package fixed

import (
	"fmt"
	"reflect"
	"unsafe"
)

// storageLen returns N for a storage type A == [N]T.
//
// Implementation:
//   - Stage 1: resolve A and T through reflect (no values involved).
//   - Stage 2: panic when A is not an array whose element type is exactly T.
//   - Stage 3: return the array length.
//
// Behavior highlights:
//   - The result depends only on the type, never on instance state.
//   - A wrong A is a programmer error, reported by panic on first use.
//
// Complexity:
//   - Time O(1), Space O(1).
func storageLen[T, A any]() int {
	st := reflect.TypeFor[A]()
	if st.Kind() != reflect.Array || st.Elem() != reflect.TypeFor[T]() {
		panic(fmt.Sprintf(panicBadStorage, st, reflect.TypeFor[T]()))
	}

	return st.Len()
}

// length returns N without reflection: sizeof([N]T) / sizeof(T).
// A zero-size T makes the division meaningless, so that case falls back
// to storageLen.
//
// Behavior highlights:
//   - Trusts A == [N]T; the shape itself is checked by storageLen.
//   - n*sizeof(T) never exceeds sizeof(A), so views built from n stay
//     inside the storage even for a mismatched A.
//
// Complexity:
//   - Time O(1), Space O(1); no allocation, no reflect.
func (a *Array[T, A]) length() int {
	var zero T
	if sz := unsafe.Sizeof(zero); sz != 0 {
		return int(unsafe.Sizeof(a.elems) / sz)
	}

	return storageLen[T, A]()
}

// rangeCheck validates 0 ≤ i < n.
// Returns the bare ErrOutOfRange sentinel; public callers add context.
// Complexity: O(1).
func rangeCheck(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// sameLen validates that two operands hold the same number of elements.
// Returns the bare ErrLengthMismatch sentinel.
// Complexity: O(1).
func sameLen(n, m int) error {
	if n != m {
		return ErrLengthMismatch
	}

	return nil
}
