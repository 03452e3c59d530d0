// SPDX-License-Identifier: MIT

package fixed

import "iter"

// Begin returns a cursor at index 0. For N == 0 it equals End.
func (a *Array[T, A]) Begin() Iterator[T, A] { return Iterator[T, A]{arr: a, pos: 0} }

// End returns the one-past-the-last cursor (position N). It must not be dereferenced.
func (a *Array[T, A]) End() Iterator[T, A] { return Iterator[T, A]{arr: a, pos: a.Size()} }

// All yields (index, value) pairs in index order.
// Values are read at the moment they are yielded.
func (a *Array[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in index order.
func (a *Array[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs from N-1 down to 0.
func (a *Array[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Index returns the cursor position.
func (it Iterator[T, A]) Index() int { return it.pos }

// Ref returns a pointer to the current element. Unchecked: dereferencing
// End (or any position outside [0, N)) panics.
func (it Iterator[T, A]) Ref() *T { return it.arr.Ref(it.pos) }

// Value returns the current element (see Ref).
func (it Iterator[T, A]) Value() T { return it.arr.Get(it.pos) }

// Next returns the cursor one position forward.
func (it Iterator[T, A]) Next() Iterator[T, A] { return it.Advance(1) }

// Prev returns the cursor one position back.
func (it Iterator[T, A]) Prev() Iterator[T, A] { return it.Advance(-1) }

// Advance returns the cursor moved by n positions (n may be negative).
// Moving outside [0, N] is not checked; the resulting cursor panics on dereference.
func (it Iterator[T, A]) Advance(n int) Iterator[T, A] {
	it.pos += n
	return it
}

// Distance returns the number of steps from it to other (other.Index() - it.Index()).
// Cursors of different arrays have no distance; mixing them is a programmer
// error and panics.
func (it Iterator[T, A]) Distance(other Iterator[T, A]) int {
	if it.arr != other.arr {
		panic(panicForeignIterator)
	}

	return other.pos - it.pos
}

// Equal reports whether both cursors point at the same position of the same array.
func (it Iterator[T, A]) Equal(other Iterator[T, A]) bool {
	return it.arr == other.arr && it.pos == other.pos
}

// Less reports whether it is positioned before other. Cursors of different
// arrays are unordered: Less is false in both directions.
func (it Iterator[T, A]) Less(other Iterator[T, A]) bool {
	return it.arr == other.arr && it.pos < other.pos
}
