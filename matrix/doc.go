// Package matrix offers exact-rational dense matrices and the linear-algebra
// kernels needed for dimensional analysis.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of *big.Rat with copy-in/copy-out accessors.
//   - RREF, Rank and NullSpace: Gauss-Jordan elimination without any numeric
//     tolerance, and the classical free-variable parametrization of the
//     solution set of a homogeneous system.
//   - Mul, MatVec and Transpose for checking results (A·x = 0).
//   - Vector helpers, including ScaleToIntegers for readable bases.
//
// Matrices here are small (a handful of rows, a few dozen columns); every
// kernel favors exactness and determinism over speed.
//
// See the examples in this package for usage patterns.
package matrix
