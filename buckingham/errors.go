// SPDX-License-Identifier: MIT

package buckingham

import "errors"

var (
	// ErrBasisSize signals that the solver produced a basis whose size is not
	// Cols − Rank. It indicates a kernel bug, never bad input.
	ErrBasisSize = errors.New("buckingham: null-space basis size does not match cols - rank")

	// ErrNotDimensionless is returned by Verify when a term's combined
	// dimension is not M^0 L^0 T^0.
	ErrNotDimensionless = errors.New("buckingham: term is not dimensionless")

	// ErrUnknownSymbol indicates a term factor whose symbol is not a variable of the set.
	ErrUnknownSymbol = errors.New("buckingham: unknown symbol")

	// ErrUnknownFormat indicates an unsupported rendering format name.
	ErrUnknownFormat = errors.New("buckingham: unknown format")
)

// Operation tags for error wrapping.
const (
	opBuild      = "BuildMatrix"
	opSolve      = "Solve"
	opSynthesize = "Synthesize"
	opCompute    = "Compute"
	opVerify     = "Verify"
	opEquivalent = "Equivalent"
)
