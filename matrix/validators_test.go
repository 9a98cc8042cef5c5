// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitheorem/matrix"
)

// TestValidateMulCompatible covers nil inputs, matching and mismatched inner dimensions.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	shape := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, shape(2, 2), matrix.ErrNilMatrix},
		{"second nil", shape(2, 2), nil, matrix.ErrNilMatrix},
		{"2x3 by 3x1", shape(2, 3), shape(3, 1), nil},
		{"3x0 by 0x2", shape(3, 0), shape(0, 2), nil},
		{"inner mismatch", shape(2, 3), shape(2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMulCompatible(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidateVecLen covers length and nil-entry checks.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(matrix.NewVectorInt64(1, 2, 3), 3))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen(matrix.NewVectorInt64(1, 2), 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(matrix.Vector{big.NewRat(1, 1), nil}, 2), matrix.ErrNilEntry)
}

func TestValidateRats(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateRats([]*big.Rat{big.NewRat(1, 2)}))
	require.ErrorIs(t, matrix.ValidateRats([]*big.Rat{big.NewRat(1, 2), nil}), matrix.ErrNilEntry)
}
