// SPDX-License-Identifier: MIT

// Package fixed - Array storage, accessors and bulk operations.
//
// Purpose:
//   - Expose the embedded [N]T as a flat view without copying (Data).
//   - Keep two access paths: checked (At/RefAt/SetAt return ErrOutOfRange)
//     and unchecked (Ref/Get/Set/Front/Back, which leave misuse to the Go
//     runtime bounds check and never return an error).
//   - Keep deterministic index order in every bulk operation.
//
// Complexity quicksheet:
//   - Size/Empty/At/Ref/Get/Set/Front/Back: O(1); Fill/Clone/Swap/Do/Apply/String: O(N).

package fixed

import (
	"fmt"
	"strings"
	"unsafe"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxRefAt      = "RefAt"      // method tag used in error wrappers
	ctxSetAt      = "SetAt"      // method tag used in error wrappers
	ctxRangeCheck = "RangeCheck" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// arrayErrorf wraps a sentinel with the method name and the offending index.
// Complexity: O(1).
func arrayErrorf(method string, i int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, i, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array[int, [1]int])(nil)

// FromArray builds an Array holding a copy of elems.
// Complexity: O(N).
func FromArray[T, A any](elems A) Array[T, A] {
	storageLen[T, A]() // reject a storage type that is not [N]T

	return Array[T, A]{elems: elems}
}

// Of builds an Array from a list of values, in index order.
//
// Implementation:
//   - Stage 1: reject more than N values with ErrLengthMismatch.
//   - Stage 2: copy values into indices 0..len(values)-1.
//   - Stage 3: leave the remaining indices at the zero value.
//
// Behavior highlights:
//   - Mirrors aggregate initialization: a short list zero-fills the tail.
//
// Complexity:
//   - Time O(N), Space O(1) beyond the returned value.
func Of[T, A any](values ...T) (Array[T, A], error) {
	var a Array[T, A]
	n := storageLen[T, A]()
	if len(values) > n {
		return a, fmt.Errorf("Of(%d values) into %d slots: %w", len(values), n, ErrLengthMismatch)
	}
	copy(a.Data(), values)

	return a, nil
}

// Len returns N for Array[T, A]. It is a property of the type and needs no instance.
// Unlike the methods, it also validates that A is [N]T (panics otherwise).
// Complexity: O(1).
func Len[T, A any]() int { return storageLen[T, A]() }

// Size returns N. Complexity: O(1).
func (a *Array[T, A]) Size() int { return a.length() }

// MaxSize returns N; an Array is always full. Complexity: O(1).
func (a *Array[T, A]) MaxSize() int { return a.length() }

// Empty reports whether N == 0. Complexity: O(1).
func (a *Array[T, A]) Empty() bool { return a.length() == 0 }

// Data returns a slice of length N that aliases the array storage.
// MAIN DESCRIPTION:
//   - Flat-buffer interop: writes through the slice mutate the array.
//
// Implementation:
//   - Stage 1: resolve N; return nil for N == 0.
//   - Stage 2: reinterpret &elems ([N]T) as *T and build the slice header.
//
// Behavior highlights:
//   - No copy, no allocation; the slice stays valid as long as a does.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Use Elems for a read-only copy of the contents.
func (a *Array[T, A]) Data() []T {
	n := a.length()
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&a.elems)), n)
}

// Elems returns a copy of the backing Go array. Mutating the result does
// not affect a. Complexity: O(N).
func (a *Array[T, A]) Elems() A { return a.elems }

// Ref returns a pointer to element i without a range check.
// An index outside [0, N) panics in the Go runtime; use RefAt for a
// recoverable error.
// Complexity: O(1).
func (a *Array[T, A]) Ref(i int) *T { return &a.Data()[i] }

// Get returns element i without a range check (see Ref).
func (a *Array[T, A]) Get(i int) T { return a.Data()[i] }

// Set stores v at index i without a range check (see Ref).
func (a *Array[T, A]) Set(i int, v T) { a.Data()[i] = v }

// RangeCheck returns a wrapped ErrOutOfRange when i is outside [0, N),
// and nil otherwise. It has no other effect.
// Complexity: O(1).
func (a *Array[T, A]) RangeCheck(i int) error {
	if err := rangeCheck(i, a.length()); err != nil {
		return arrayErrorf(ctxRangeCheck, i, err)
	}

	return nil
}

// At returns element i or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read.
//
// Implementation:
//   - Stage 1: range check against N.
//   - Stage 2: load from storage.
//
// Behavior highlights:
//   - Never panics on a bad index; returns the sentinel wrapped with context.
//
// Returns:
//   - (value, nil) on success; (zero, ErrOutOfRange) on an invalid index.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T, A]) At(i int) (T, error) {
	data := a.Data()
	if err := rangeCheck(i, len(data)); err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, i, err)
	}

	return data[i], nil
}

// RefAt returns a pointer to element i or ErrOutOfRange.
// For every valid i, RefAt(i) and Ref(i) point at the same element.
// Complexity: O(1).
func (a *Array[T, A]) RefAt(i int) (*T, error) {
	data := a.Data()
	if err := rangeCheck(i, len(data)); err != nil {
		return nil, arrayErrorf(ctxRefAt, i, err)
	}

	return &data[i], nil
}

// SetAt stores v at index i or returns ErrOutOfRange, leaving the array untouched.
// Complexity: O(1).
func (a *Array[T, A]) SetAt(i int, v T) error {
	data := a.Data()
	if err := rangeCheck(i, len(data)); err != nil {
		return arrayErrorf(ctxSetAt, i, err)
	}
	data[i] = v

	return nil
}

// Front returns element 0. It is unchecked: calling it when N == 0 panics.
func (a *Array[T, A]) Front() T { return a.Data()[0] }

// Back returns element N-1. It is unchecked: calling it when N == 0 panics.
func (a *Array[T, A]) Back() T {
	data := a.Data()

	return data[len(data)-1]
}

// Fill assigns v to every element, in index order 0..N-1.
// Complexity: O(N).
func (a *Array[T, A]) Fill(v T) {
	data := a.Data()
	for i := range data {
		data[i] = v
	}
}

// Clone returns an independent copy of a.
// Complexity: O(N).
func (a *Array[T, A]) Clone() Array[T, A] { return *a }

// Swap exchanges the contents of a and other element by element.
// Complexity: O(N).
func (a *Array[T, A]) Swap(other *Array[T, A]) {
	a.elems, other.elems = other.elems, a.elems
}

// Do visits each element in index order and calls f(i, v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed 0..N-1 order.
//
// Complexity:
//   - Time O(N), Space O(1).
func (a *Array[T, A]) Do(f func(i int, v T) bool) {
	for i, v := range a.Data() {
		if !f(i, v) {
			return // early exit requested by caller
		}
	}
}

// Apply replaces each element with f(i, v), in index order.
// Complexity: O(N).
func (a *Array[T, A]) Apply(f func(i int, v T) T) {
	data := a.Data()
	for i := range data {
		data[i] = f(i, data[i])
	}
}

// String renders the elements as "[e0, e1, ...]" for diagnostics.
// Complexity: O(N).
func (a *Array[T, A]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, v := range a.Data() {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
