// SPDX-License-Identifier: MIT

package fixed

// Test bridge: exposes private kernels and panic messages to fixed_test
// without widening the production API. Keep every bridge in this file.

var (
	// ExportedRangeCheck exposes rangeCheck for white-box tests.
	ExportedRangeCheck = rangeCheck
	// ExportedSameLen exposes sameLen for white-box tests.
	ExportedSameLen = sameLen
)

// PanicBadStorage_TestOnly is the format of the panic raised for a storage type that is not [N]T.
const PanicBadStorage_TestOnly = panicBadStorage

// PanicForeignIterator_TestOnly is the panic raised when cursors of different arrays are measured.
const PanicForeignIterator_TestOnly = panicForeignIterator

// StorageLen_TestOnly forwards to storageLen.
func StorageLen_TestOnly[T, A any]() int { return storageLen[T, A]() }
