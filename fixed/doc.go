// Package fixed provides Array, a fixed-length, value-semantic array
// container with container-style ergonomics.
//
// An Array[T, A] embeds a Go array A == [N]T, so its length is part of
// its type and copying it copies every element:
//
//	var a fixed.Array[int, [3]int]
//	a.Fill(7)          // [7, 7, 7]
//	b := a             // independent copy
//	b.Set(0, 1)        // a is unchanged
//
// Two access paths are offered on purpose:
//
//   - Checked: At, RefAt, SetAt and RangeCheck return ErrOutOfRange for an
//     index outside [0, N). They are the only operations that report it.
//   - Unchecked: Ref, Get, Set, Front and Back skip the check; misuse is a
//     programmer error and the Go runtime panics.
//
// Comparisons are package functions so each can constrain T on its own:
// Equal needs comparable elements, Less and Compare need cmp.Ordered ones,
// and EqualFunc/LessFunc accept any T with a caller-supplied relation.
//
// Iteration uses either the random-access Iterator returned by Begin/End or
// the range-over-func sequences All, Values and Backward.
//
// Array provides no locking; share it read-only or synchronize writers.
package fixed
