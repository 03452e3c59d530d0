// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods wrap
// them with method context; tests MUST match them via errors.Is.
// Panics are reserved for programmer errors (a storage type that is not [N]T).

package fixed

import "errors"

// Every message is prefixed with "fixed: ..." so it greps cleanly in logs.
// Kernels return the bare sentinel; public API wraps it once with its name
// and arguments:
//   - methods:            fmt.Errorf("Array.<Method>(<args>): %w", ErrX)
//   - package functions:  fmt.Errorf("<Func>(<args>): %w", ErrX)

var (
	// ErrOutOfRange indicates that an index is outside [0, N).
	// Only the checked accessors (At, RefAt, SetAt) and RangeCheck return it.
	ErrOutOfRange = errors.New("fixed: index out of range")

	// ErrLengthMismatch indicates that two operands hold a different number
	// of elements (Convert across storage types, Of with more than N values).
	ErrLengthMismatch = errors.New("fixed: length mismatch")

	// ErrNilArray indicates that a nil *Array was passed where an array is required.
	ErrNilArray = errors.New("fixed: nil array")
)

// Panic messages (programmer errors). Exported through the test bridge so
// tests avoid magic strings.
const (
	panicBadStorage      = "fixed: storage type %v is not an array of %v"
	panicForeignIterator = "fixed: iterators belong to different arrays"
)
