// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the rational kernels.
//   • Keep assertions exact: rationals are compared with Cmp, never via floats.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitheorem/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustInt64 builds a *Dense from an integer table or fails the test.
func MustInt64(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseInt64(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) *big.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// rat parses "a/b" or "a" into a *big.Rat or fails the test.
func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, ok := new(big.Rat).SetString(s)
	require.Truef(t, ok, "bad rational literal %q", s)

	return r
}

// vec parses a list of rational literals into a Vector.
func vec(t *testing.T, ss ...string) matrix.Vector {
	t.Helper()
	out := make(matrix.Vector, len(ss))
	for i, s := range ss {
		out[i] = rat(t, s)
	}

	return out
}

// RequireVectorEqual compares two vectors exactly and prints both on failure.
func RequireVectorEqual(t *testing.T, want, got matrix.Vector) {
	t.Helper()
	require.Truef(t, want.Equal(got), "vector mismatch:\nwant %s\ngot  %s", want, got)
}

// RequireInKernel asserts m·x == 0.
func RequireInKernel(t *testing.T, m matrix.Matrix, x matrix.Vector) {
	t.Helper()
	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Truef(t, y.IsZero(), "m·%s = %s, want zero", x, y)
}

// dimensionalRows is the M/L/T matrix of the tip-clearance sub-problem
// tau, rho, dt, DeltaP, Gamma, v.
var dimensionalRows = [][]int64{
	{0, 1, 0, 1, 0, 0},
	{1, -3, 0, -1, 2, 1},
	{0, 0, 1, -2, -1, -1},
}
