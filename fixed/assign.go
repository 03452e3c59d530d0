// SPDX-License-Identifier: MIT

package fixed

import "fmt"

const ctxConvert = "Convert"

// Convert overwrites every element of dst with conv(src[i]), in index order.
//
// Precondition: dst and src must have the same N, i.e. A == [N]T and
// B == [N]U. Go cannot express that link between two type parameters, so
// a mismatch is reported at run time; ErrLengthMismatch signals a caller
// bug, not a normal outcome to branch on.
//
// Implementation:
//   - Stage 1: reject nil operands (ErrNilArray).
//   - Stage 2: reject a length mismatch (ErrLengthMismatch). Go cannot tie
//     the N of [N]T to the N of [N]U at compile time, so this is checked here.
//   - Stage 3: convert element by element, 0..N-1.
//
// Behavior highlights:
//   - On error dst is left untouched.
//   - dst and src may share storage only when T == U and conv is pure;
//     each element is read before it is written.
//
// Complexity:
//   - Time O(N), Space O(1).
func Convert[T, A, U, B any](dst *Array[T, A], src *Array[U, B], conv func(U) T) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%s(nil): %w", ctxConvert, ErrNilArray)
	}
	out, in := dst.Data(), src.Data()
	if err := sameLen(len(out), len(in)); err != nil {
		return fmt.Errorf("%s(%d <- %d): %w", ctxConvert, len(out), len(in), err)
	}
	for i := range in {
		out[i] = conv(in[i])
	}

	return nil
}

// ConvertNumber is Convert with the plain Go numeric conversion T(v).
// Conversions follow Go rules: float to integer truncates toward zero,
// narrowing integer conversions wrap.
// Complexity: O(N).
func ConvertNumber[T, U Number, A, B any](dst *Array[T, A], src *Array[U, B]) error {
	return Convert(dst, src, func(v U) T { return T(v) })
}
