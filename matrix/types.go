// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// Vector type. Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Ownership:
//   - At returns a copy; mutating it never changes the matrix.
//   - Set stores a copy; the caller keeps ownership of v.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Rat, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNilEntry if v is nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector is an ordered sequence of exact rationals (a column of a basis, a
// matrix-vector product, ...). Entries are never nil when produced by this
// package.
type Vector []*big.Rat
