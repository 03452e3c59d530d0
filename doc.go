// Package lvlarray is a home for fixed-size, value-semantic containers.
//
// 🚀 What is in here?
//
//	fixed/  Array[T, [N]T]: a constant-length contiguous array with
//	        checked (At) and unchecked (Get/Ref) access, iterators,
//	        lexicographic comparisons, fill and converting assignment.
//
// ✨ Why?
//
//   - Length lives in the type: mismatched lengths do not compile.
//   - Plain values: copying an array copies its elements; no hidden allocation.
//   - Errors, not surprises: the checked path returns ErrOutOfRange.
//
// Quick example:
//
//	var a fixed.Array[int, [3]int]
//	a.Fill(7)
//	v, err := a.At(2) // 7, nil
//
// See examples/ for a runnable program.
//
//	go get github.com/katalvlaran/lvlarray/fixed
package lvlarray
