// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with matrixErrorf.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden inside the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x has exactly n non-nil entries.
// Time: O(n). Space: O(1).
func ValidateVecLen(x Vector, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for i := range x {
		if x[i] == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVecLen[%d]", i), ErrNilEntry)
		}
	}

	return nil
}

// ValidateRats ensures no entry of xs is nil. Used at construction boundaries.
func ValidateRats(xs []*big.Rat) error {
	for i, x := range xs {
		if x == nil {
			return validatorErrorf(fmt.Sprintf("ValidateRats[%d]", i), ErrNilEntry)
		}
	}

	return nil
}
