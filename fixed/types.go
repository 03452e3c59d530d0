// SPDX-License-Identifier: MIT

// Package fixed: domain types.
// This file contains ONLY the public types (Array, Iterator) and the Number
// constraint. Behavior lives in impl_array.go, iterator.go, compare.go and
// assign.go.

package fixed

// Array is a fixed-length, contiguous, value-semantic sequence of T.
//
// A is the backing Go array type and MUST be [N]T, for example
// Array[int, [3]int]. N is a property of the type: arrays of different
// lengths are different types, so same-element operations between them do
// not compile. FromArray, Of and Len panic on an A that is not [N]T;
// the accessors trust it and do no reflection.
//
//   - The zero value holds N zero elements and is ready to use.
//   - Assigning or passing an Array by value copies all N elements.
//   - The storage is embedded; an Array never allocates on its own.
//
// Array provides no synchronization. Concurrent reads are safe when reads
// of T are; any concurrent mutation needs external locking.
type Array[T any, A any] struct {
	elems A // backing storage, [N]T
}

// Iterator is a random-access cursor over an Array.
// Valid positions are 0..N; position N is the one-past-the-end sentinel
// returned by End. An Iterator stays valid for the lifetime of its Array
// (the storage never moves).
type Iterator[T any, A any] struct {
	arr *Array[T, A] // owning array
	pos int          // current position, 0..N
}

// Number is the set of element types ConvertNumber can convert between
// with a plain Go conversion.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
